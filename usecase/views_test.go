package usecase

import (
	"context"
	"testing"
	"time"

	"tostreak/model"
	"tostreak/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.Title)
	}
	return out
}

// seedViews builds a small history around testStart (2024-03-10).
func seedViews(t *testing.T) *fixture {
	t.Helper()
	f := newFixture(t)
	ctx := context.Background()

	late := f.addTask(t, "late", testutils.Date(2024, 3, 8), model.CriticalityHigh)
	f.addTask(t, "forgotten", testutils.Date(2024, 3, 5), model.CriticalityLow)
	today := f.addTask(t, "today", testutils.Date(2024, 3, 10), model.CriticalityUrgent)
	f.addTask(t, "today-open", testutils.Date(2024, 3, 10), model.CriticalityLow)
	f.addTask(t, "soon", testutils.Date(2024, 3, 14), model.CriticalityMedium)
	f.addTask(t, "far", testutils.Date(2024, 4, 30), model.CriticalityLow)

	complete := func(id string, date time.Time) {
		t.Helper()
		_, _, found, err := f.tracker.CompleteTask(ctx, id, date)
		require.NoError(t, err)
		require.True(t, found)
	}
	complete(late.ID, testutils.Date(2024, 3, 9))
	complete(late.ID, testutils.Date(2024, 2, 28))
	complete(today.ID, time.Time{})
	return f
}

func TestDashboard(t *testing.T) {
	f := seedViews(t)

	view := f.tracker.Dashboard(f.tracker.Now())

	assert.Equal(t, []string{"forgotten"}, titles(view.Overdue))
	assert.Equal(t, []string{"today-open"}, titles(view.DueToday))
	assert.Equal(t, []string{"soon"}, titles(view.Upcoming))
	assert.Equal(t, []string{"today"}, titles(view.CompletedToday))

	assert.Equal(t, 6, view.Counts.Total)
	assert.Equal(t, 1, view.Counts.Overdue)
	assert.Equal(t, 1, view.Counts.DueToday)
	assert.Equal(t, 1, view.Counts.Upcoming)
	assert.Equal(t, 1, view.Counts.CompletedToday)
	assert.Equal(t, f.tracker.Profile(), view.Profile)
}

func TestDaily(t *testing.T) {
	f := seedViews(t)

	view := f.tracker.Daily(testutils.Date(2024, 3, 10).Add(22 * time.Hour))

	assert.Equal(t, "2024-03-10", view.Date)
	assert.Equal(t, []string{"today", "today-open"}, titles(view.Due))
	require.Len(t, view.Entries, 6)

	completed := map[string]bool{}
	for _, entry := range view.Entries {
		completed[entry.Task.Title] = entry.Completed
	}
	assert.True(t, completed["today"])
	assert.False(t, completed["today-open"])
	assert.False(t, completed["late"])
}

func TestMonthly(t *testing.T) {
	f := seedViews(t)

	march, err := f.tracker.Monthly(2024, time.March)
	require.NoError(t, err)
	assert.Equal(t, 31, march.Days)
	assert.Equal(t, map[string]int{"2024-03-09": 1, "2024-03-10": 1}, march.Completions)
	assert.Equal(t, 2, march.Total)
	assert.Equal(t, 2, march.ActiveDays)

	feb, err := f.tracker.Monthly(2024, time.February)
	require.NoError(t, err)
	assert.Equal(t, 29, feb.Days)
	assert.Equal(t, 1, feb.Total)

	_, err = f.tracker.Monthly(2024, 13)
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestReports(t *testing.T) {
	f := seedViews(t)

	view := f.tracker.Reports(f.tracker.Now())

	assert.Equal(t, 6, view.TaskStats.Total)
	assert.Equal(t, 2, view.TaskStats.EverCompleted)
	assert.Equal(t, 4, view.TaskStats.NeverCompleted)
	assert.InDelta(t, 2.0/6.0, view.TaskStats.CompletionRate, 1e-9)

	assert.Equal(t, 3, view.CompletionStats.Total)
	assert.Equal(t, 2, view.CompletionStats.ByCriticality[model.CriticalityHigh])
	assert.Equal(t, 1, view.CompletionStats.ByCriticality[model.CriticalityUrgent])
	assert.Equal(t, 0, view.CompletionStats.ByCriticality[model.CriticalityLow])
	assert.Equal(t, 40, view.CompletionStats.PointsByLevel[model.CriticalityHigh])
	assert.Equal(t, 25, view.CompletionStats.PointsByLevel[model.CriticalityUrgent])

	days := view.CompletionStats.LastSevenDays
	require.Len(t, days, 7)
	assert.Equal(t, model.DayCount{Date: "2024-03-04", Count: 0}, days[0])
	assert.Equal(t, model.DayCount{Date: "2024-03-09", Count: 1}, days[5])
	assert.Equal(t, model.DayCount{Date: "2024-03-10", Count: 1}, days[6])
}

func TestReportsEmpty(t *testing.T) {
	f := newFixture(t)

	view := f.tracker.Reports(f.tracker.Now())
	assert.Zero(t, view.TaskStats.CompletionRate)
	assert.Len(t, view.CompletionStats.LastSevenDays, 7)
}
