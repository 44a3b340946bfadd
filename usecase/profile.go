package usecase

import (
	"context"

	"tostreak/accrual"
	"tostreak/model"
	"tostreak/utils"
)

func (t *Tracker) Profile() model.UserProfile {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.Profile.Clone()
}

// CheckStreaks applies streak decay as of the tracker's clock. The profile is
// written only when the streak actually changed.
func (t *Tracker) CheckStreaks(ctx context.Context) (model.UserProfile, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	current := t.state.Profile
	next := accrual.EvaluateStreakDecay(current, t.now())
	if next.Streak == current.Streak {
		return current.Clone(), false, nil
	}

	if err := t.repo.SaveProfile(ctx, next); err != nil {
		return current.Clone(), false, err
	}
	t.state.Profile = next

	utils.StreakResetsTotal.Inc()
	utils.TrackProfile(next.Points, next.Streak)
	t.logger.Info("streak reset", "previous_streak", current.Streak, "last_completed", current.LastCompletedDate)
	return next.Clone(), true, nil
}
