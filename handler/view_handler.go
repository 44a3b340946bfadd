package handler

import (
	"time"

	"tostreak/accrual"
	"tostreak/dto"
	"tostreak/model"
	"tostreak/usecase"
	"tostreak/utils"

	"github.com/gin-gonic/gin"
)

const monthLayout = "2006-01"

type ViewHandler struct {
	tracker *usecase.Tracker
}

func NewViewHandler(tracker *usecase.Tracker) *ViewHandler {
	return &ViewHandler{tracker: tracker}
}

// GetView returns the data one screen of the client needs.
// daily takes ?date=YYYY-MM-DD and monthly takes ?month=YYYY-MM; both default
// to the current date.
func (h *ViewHandler) GetView(c *gin.Context) {
	view := model.View(c.Param("view"))
	if !view.Valid() {
		utils.NotFound(c, "Unknown view")
		return
	}

	now := h.tracker.Now()

	switch view {
	case model.ViewDashboard:
		utils.Success(c, h.tracker.Dashboard(now))

	case model.ViewDaily:
		date := now
		if raw := c.Query("date"); raw != "" {
			parsed, err := accrual.ParseDateKey(raw)
			if err != nil {
				utils.BadRequest(c, err.Error())
				return
			}
			date = parsed
		}
		utils.Success(c, h.tracker.Daily(date))

	case model.ViewMonthly:
		year, month := now.UTC().Year(), now.UTC().Month()
		if raw := c.Query("month"); raw != "" {
			parsed, err := time.Parse(monthLayout, raw)
			if err != nil {
				utils.BadRequest(c, "month must be YYYY-MM")
				return
			}
			year, month = parsed.Year(), parsed.Month()
		}
		monthly, err := h.tracker.Monthly(year, month)
		if err != nil {
			respondError(c, "build monthly view", err)
			return
		}
		utils.Success(c, monthly)

	case model.ViewReports:
		utils.Success(c, h.tracker.Reports(now))

	case model.ViewRewards:
		utils.Success(c, dto.RewardsResponse{
			Rewards: h.tracker.Rewards(),
			Profile: h.tracker.Profile(),
		})

	case model.ViewNotes:
		utils.Success(c, h.tracker.Notes())

	case model.ViewSettings:
		utils.Success(c, dto.ToSettingsResponse(h.tracker.Settings()))
	}
}
