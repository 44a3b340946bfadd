package accrual

import (
	"time"

	"tostreak/model"
)

// Outcome describes what a single ToggleCompletion call did.
type Outcome struct {
	Completed    bool   `json:"completed"`
	Date         string `json:"date"`
	PointsEarned int    `json:"points_earned"`
	StreakBefore int    `json:"streak_before"`
	StreakAfter  int    `json:"streak_after"`
}

// ToggleCompletion flips the completion state of task on date's calendar day.
//
// Completing adds the date to the task, awards PointsFor(criticality) and
// advances the streak at most once per day. Un-completing only removes the
// date: points and streak already granted are kept.
func ToggleCompletion(task model.Task, profile model.UserProfile, date time.Time) (model.Task, model.UserProfile, Outcome) {
	key := DateKey(date)
	nextTask := task.Clone()
	nextProfile := profile.Clone()
	out := Outcome{
		Date:         key,
		StreakBefore: profile.Streak,
		StreakAfter:  profile.Streak,
	}

	if task.CompletedOn(key) {
		nextTask.CompletedDates = removeDate(nextTask.CompletedDates, key)
		return nextTask, nextProfile, out
	}

	earned := PointsFor(task.Criticality)
	nextTask.CompletedDates = append(nextTask.CompletedDates, key)

	today := Day(date)
	last := profile.LastCompletedDate
	if last == nil || Day(*last).Before(today) {
		if last != nil && Day(*last).Equal(previousDay(today)) {
			nextProfile.Streak = profile.Streak + 1
		} else {
			nextProfile.Streak = 1
		}
	}
	nextProfile.LastCompletedDate = &today
	nextProfile.Points = profile.Points + earned

	out.Completed = true
	out.PointsEarned = earned
	out.StreakAfter = nextProfile.Streak
	return nextTask, nextProfile, out
}

// EvaluateStreakDecay resets the streak when the last completion is older
// than yesterday relative to now. Safe to call any number of times.
func EvaluateStreakDecay(profile model.UserProfile, now time.Time) model.UserProfile {
	out := profile.Clone()
	if profile.LastCompletedDate == nil {
		return out
	}
	yesterday := previousDay(Day(now))
	if Day(*profile.LastCompletedDate).Before(yesterday) {
		out.Streak = 0
	}
	return out
}

func removeDate(dates []string, key string) []string {
	kept := dates[:0]
	for _, d := range dates {
		if d != key {
			kept = append(kept, d)
		}
	}
	return kept
}
