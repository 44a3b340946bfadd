package accrual

import (
	"errors"

	"tostreak/model"
)

var (
	ErrRewardNotFound     = errors.New("reward not found")
	ErrInsufficientPoints = errors.New("not enough points")
)

// Redeem spends profile points on the reward with rewardID and removes it from
// the list. On error the returned snapshots equal the inputs.
func Redeem(profile model.UserProfile, rewards []model.CustomReward, rewardID string) (model.UserProfile, []model.CustomReward, model.CustomReward, error) {
	idx := -1
	for i, r := range rewards {
		if r.ID == rewardID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return profile, rewards, model.CustomReward{}, ErrRewardNotFound
	}

	reward := rewards[idx]
	if profile.Points < reward.Cost {
		return profile, rewards, reward, ErrInsufficientPoints
	}

	next := profile.Clone()
	next.Points -= reward.Cost

	remaining := make([]model.CustomReward, 0, len(rewards)-1)
	remaining = append(remaining, rewards[:idx]...)
	remaining = append(remaining, rewards[idx+1:]...)
	return next, remaining, reward, nil
}
