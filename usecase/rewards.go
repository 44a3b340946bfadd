package usecase

import (
	"context"
	"errors"
	"strings"

	"tostreak/accrual"
	"tostreak/model"
	"tostreak/utils"
)

type RewardInput struct {
	Description string
	Cost        int
}

func (t *Tracker) Rewards() []model.CustomReward {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append(make([]model.CustomReward, 0, len(t.state.Rewards)), t.state.Rewards...)
}

// AddReward appends a new reward to the catalogue.
func (t *Tracker) AddReward(ctx context.Context, in RewardInput) (model.CustomReward, error) {
	in.Description = strings.TrimSpace(in.Description)
	if in.Description == "" {
		return model.CustomReward{}, ErrDescriptionRequired
	}
	if in.Cost <= 0 {
		return model.CustomReward{}, ErrInvalidCost
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	reward := model.CustomReward{
		ID:          utils.NewID(),
		Description: in.Description,
		Cost:        in.Cost,
	}
	next := append(append([]model.CustomReward(nil), t.state.Rewards...), reward)

	if err := t.repo.SaveRewards(ctx, next); err != nil {
		return model.CustomReward{}, err
	}
	t.state.Rewards = next
	return reward, nil
}

// RedeemReward deducts the reward's cost and removes it. It returns
// accrual.ErrRewardNotFound or accrual.ErrInsufficientPoints without
// touching any state.
func (t *Tracker) RedeemReward(ctx context.Context, id string) (model.CustomReward, model.UserProfile, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	profile, rewards, reward, err := accrual.Redeem(t.state.Profile, t.state.Rewards, id)
	if err != nil {
		switch {
		case errors.Is(err, accrual.ErrInsufficientPoints):
			utils.TrackRedemption("insufficient_points")
		case errors.Is(err, accrual.ErrRewardNotFound):
			utils.TrackRedemption("not_found")
		}
		return reward, t.state.Profile.Clone(), err
	}

	if err := t.repo.SaveProfile(ctx, profile); err != nil {
		return model.CustomReward{}, t.state.Profile.Clone(), err
	}
	if err := t.repo.SaveRewards(ctx, rewards); err != nil {
		if restoreErr := t.repo.SaveProfile(ctx, t.state.Profile); restoreErr != nil {
			t.logger.Error("failed to restore profile after partial write", "error", restoreErr)
		}
		return model.CustomReward{}, t.state.Profile.Clone(), err
	}
	t.state.Profile = profile
	t.state.Rewards = rewards

	utils.TrackRedemption("redeemed")
	utils.TrackProfile(profile.Points, profile.Streak)
	t.logger.Info("reward redeemed", "reward_id", reward.ID, "cost", reward.Cost, "points", profile.Points)

	t.events.RewardRedeemed(ctx, reward, profile.Clone())
	return reward, profile.Clone(), nil
}
