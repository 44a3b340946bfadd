package handler

import (
	"errors"

	"tostreak/accrual"
	"tostreak/dto"
	"tostreak/usecase"
	"tostreak/utils"

	"github.com/gin-gonic/gin"
)

type RewardHandler struct {
	tracker *usecase.Tracker
}

func NewRewardHandler(tracker *usecase.Tracker) *RewardHandler {
	return &RewardHandler{tracker: tracker}
}

func (h *RewardHandler) ListRewards(c *gin.Context) {
	utils.Success(c, dto.RewardsResponse{
		Rewards: h.tracker.Rewards(),
		Profile: h.tracker.Profile(),
	})
}

func (h *RewardHandler) CreateReward(c *gin.Context) {
	var req dto.RewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	reward, err := h.tracker.AddReward(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, "create reward", err)
		return
	}
	c.Header("Location", utils.GetBaseURL(c)+"/rewards/"+reward.ID)
	utils.Created(c, reward)
}

// RedeemReward answers 409 with the unchanged balance when points fall short.
func (h *RewardHandler) RedeemReward(c *gin.Context) {
	reward, profile, err := h.tracker.RedeemReward(c.Request.Context(), c.Param("id"))
	if errors.Is(err, accrual.ErrInsufficientPoints) {
		utils.Conflict(c, NotEnoughPoints, dto.RedeemResponse{Reward: reward, Profile: profile})
		return
	}
	if err != nil {
		respondError(c, "redeem reward", err)
		return
	}
	utils.SuccessMessage(c, "Reward redeemed", dto.RedeemResponse{Reward: reward, Profile: profile})
}
