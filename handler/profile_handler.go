package handler

import (
	"tostreak/dto"
	"tostreak/model"
	"tostreak/usecase"
	"tostreak/utils"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	tracker *usecase.Tracker
}

func NewProfileHandler(tracker *usecase.Tracker) *ProfileHandler {
	return &ProfileHandler{tracker: tracker}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	utils.Success(c, h.tracker.Profile())
}

func (h *ProfileHandler) CheckStreaks(c *gin.Context) {
	profile, changed, err := h.tracker.CheckStreaks(c.Request.Context())
	if err != nil {
		respondError(c, "check streaks", err)
		return
	}

	message := "Streak unchanged"
	if changed {
		message = "Streak reset"
	}
	utils.SuccessMessage(c, message, profile)
}

type SettingsHandler struct {
	tracker *usecase.Tracker
}

func NewSettingsHandler(tracker *usecase.Tracker) *SettingsHandler {
	return &SettingsHandler{tracker: tracker}
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	utils.Success(c, dto.ToSettingsResponse(h.tracker.Settings()))
}

func (h *SettingsHandler) SetTheme(c *gin.Context) {
	var req dto.ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.tracker.SetTheme(c.Request.Context(), req.Theme); err != nil {
		respondError(c, "set theme", err)
		return
	}
	utils.Success(c, dto.ToSettingsResponse(h.tracker.Settings()))
}

func (h *SettingsHandler) ToggleTheme(c *gin.Context) {
	theme, err := h.tracker.ToggleTheme(c.Request.Context())
	if err != nil {
		respondError(c, "toggle theme", err)
		return
	}
	utils.Success(c, gin.H{"theme": theme})
}

func (h *SettingsHandler) SetAPIKey(c *gin.Context) {
	var req dto.APIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.tracker.SetAPIKey(c.Request.Context(), req.APIKey); err != nil {
		respondError(c, "save api key", err)
		return
	}
	utils.SuccessMessage(c, "API key saved", dto.ToSettingsResponse(model.Settings{
		Theme:  h.tracker.Theme(),
		APIKey: h.tracker.APIKey(),
	}))
}
