package usecase

import (
	"strings"
	"time"

	"tostreak/accrual"
	"tostreak/model"
)

const (
	upcomingDays = 7
	reportDays   = 7
)

// isOpen reports whether the task has no completion on or after its due day.
func isOpen(task model.Task) bool {
	due := accrual.DateKey(task.DueDate)
	for _, d := range task.CompletedDates {
		if d >= due {
			return false
		}
	}
	return true
}

// Dashboard summarises the task list as of now.
func (t *Tracker) Dashboard(now time.Time) model.DashboardView {
	t.mu.Lock()
	defer t.mu.Unlock()

	today := accrual.Day(now)
	todayKey := accrual.DateKey(today)
	horizon := today.AddDate(0, 0, upcomingDays)

	view := model.DashboardView{
		Profile:        t.state.Profile.Clone(),
		Overdue:        []model.Task{},
		DueToday:       []model.Task{},
		Upcoming:       []model.Task{},
		CompletedToday: []model.Task{},
	}

	for _, task := range t.state.Tasks {
		due := accrual.Day(task.DueDate)
		doneToday := task.CompletedOn(todayKey)

		if doneToday {
			view.CompletedToday = append(view.CompletedToday, task.Clone())
		}

		switch {
		case due.Equal(today):
			if !doneToday {
				view.DueToday = append(view.DueToday, task.Clone())
			}
		case due.Before(today):
			if isOpen(task) {
				view.Overdue = append(view.Overdue, task.Clone())
			}
		case !due.After(horizon):
			if isOpen(task) {
				view.Upcoming = append(view.Upcoming, task.Clone())
			}
		}
	}

	view.Counts.Total = len(t.state.Tasks)
	view.Counts.CompletedToday = len(view.CompletedToday)
	view.Counts.Overdue = len(view.Overdue)
	view.Counts.DueToday = len(view.DueToday)
	view.Counts.Upcoming = len(view.Upcoming)
	return view
}

// Daily lists every task with its completion state on date's calendar day.
func (t *Tracker) Daily(date time.Time) model.DailyView {
	t.mu.Lock()
	defer t.mu.Unlock()

	day := accrual.Day(date)
	key := accrual.DateKey(day)

	view := model.DailyView{
		Date:    key,
		Due:     []model.Task{},
		Entries: make([]model.DailyEntry, 0, len(t.state.Tasks)),
	}
	for _, task := range t.state.Tasks {
		dueToday := accrual.Day(task.DueDate).Equal(day)
		if dueToday {
			view.Due = append(view.Due, task.Clone())
		}
		view.Entries = append(view.Entries, model.DailyEntry{
			Task:      task.Clone(),
			Completed: task.CompletedOn(key),
			DueToday:  dueToday,
		})
	}
	return view
}

// Monthly counts completions per day of the given month.
func (t *Tracker) Monthly(year int, month time.Month) (model.MonthlyView, error) {
	if month < time.January || month > time.December {
		return model.MonthlyView{}, ErrInvalidMonth
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	prefix := first.Format("2006-01-")

	view := model.MonthlyView{
		Year:        year,
		Month:       month,
		Days:        first.AddDate(0, 1, -1).Day(),
		Completions: map[string]int{},
	}
	for _, task := range t.state.Tasks {
		for _, d := range task.CompletedDates {
			if strings.HasPrefix(d, prefix) {
				view.Completions[d]++
				view.Total++
			}
		}
	}
	view.ActiveDays = len(view.Completions)
	return view, nil
}

// Reports aggregates completion history. Points per level are what the
// recorded completions are worth now, not a ledger of past awards.
func (t *Tracker) Reports(now time.Time) model.ReportsView {
	t.mu.Lock()
	defer t.mu.Unlock()

	var view model.ReportsView
	view.Profile = t.state.Profile.Clone()
	view.CompletionStats.ByCriticality = make(map[model.Criticality]int, len(model.Criticalities))
	view.CompletionStats.PointsByLevel = make(map[model.Criticality]int, len(model.Criticalities))
	for _, level := range model.Criticalities {
		view.CompletionStats.ByCriticality[level] = 0
		view.CompletionStats.PointsByLevel[level] = 0
	}

	perDay := map[string]int{}
	for _, task := range t.state.Tasks {
		view.TaskStats.Total++
		if len(task.CompletedDates) > 0 {
			view.TaskStats.EverCompleted++
		}

		n := len(task.CompletedDates)
		view.CompletionStats.Total += n
		view.CompletionStats.ByCriticality[task.Criticality] += n
		view.CompletionStats.PointsByLevel[task.Criticality] += n * accrual.PointsFor(task.Criticality)
		for _, d := range task.CompletedDates {
			perDay[d]++
		}
	}
	view.TaskStats.NeverCompleted = view.TaskStats.Total - view.TaskStats.EverCompleted
	if view.TaskStats.Total > 0 {
		view.TaskStats.CompletionRate = float64(view.TaskStats.EverCompleted) / float64(view.TaskStats.Total)
	}

	today := accrual.Day(now)
	view.CompletionStats.LastSevenDays = make([]model.DayCount, 0, reportDays)
	for i := reportDays - 1; i >= 0; i-- {
		key := accrual.DateKey(today.AddDate(0, 0, -i))
		view.CompletionStats.LastSevenDays = append(view.CompletionStats.LastSevenDays, model.DayCount{Date: key, Count: perDay[key]})
	}
	return view
}

// Now exposes the tracker's clock to callers that build views.
func (t *Tracker) Now() time.Time {
	return t.now()
}
