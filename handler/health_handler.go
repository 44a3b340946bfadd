package handler

import (
	"tostreak/dto"
	"tostreak/usecase"
	"tostreak/utils"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	tracker *usecase.Tracker
	backend string
}

func NewHealthHandler(tracker *usecase.Tracker, backend string) *HealthHandler {
	return &HealthHandler{tracker: tracker, backend: backend}
}

func (h *HealthHandler) Health(c *gin.Context) {
	snapshot := utils.GetSystemSnapshot()
	utils.Success(c, dto.HealthResponse{
		Status:        "ok",
		Backend:       h.backend,
		Tasks:         len(h.tracker.Tasks()),
		CPUPercent:    snapshot.CPUPercent,
		MemoryPercent: snapshot.MemoryPercent,
	})
}
