package handler

import (
	"errors"
	"log/slog"

	"tostreak/accrual"
	"tostreak/dto"
	"tostreak/usecase"
	"tostreak/utils"

	"github.com/gin-gonic/gin"
)

// NotEnoughPoints is the notice shown when a redemption is refused.
const NotEnoughPoints = "Not enough points!"

var validationErrors = []error{
	usecase.ErrTitleRequired,
	usecase.ErrInvalidCriticality,
	usecase.ErrContentRequired,
	usecase.ErrDescriptionRequired,
	usecase.ErrInvalidCost,
	usecase.ErrInvalidTheme,
	usecase.ErrInvalidMonth,
	dto.ErrInvalidDueDate,
}

// respondError maps tracker errors onto HTTP responses. Anything that is not
// a known validation or accrual error is a store failure.
func respondError(c *gin.Context, action string, err error) {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			utils.BadRequest(c, err.Error())
			return
		}
	}

	switch {
	case errors.Is(err, accrual.ErrInsufficientPoints):
		utils.Conflict(c, NotEnoughPoints)
	case errors.Is(err, accrual.ErrRewardNotFound):
		utils.NotFound(c, "Reward not found")
	default:
		slog.ErrorContext(c.Request.Context(), "request failed",
			"action", action,
			"request_id", c.GetString("request_id"),
			"error", err,
		)
		utils.TrackError("handler", action)
		utils.InternalError(c, "Failed to "+action)
	}
}
