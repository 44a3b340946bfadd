package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"tostreak/accrual"
	"tostreak/model"
	"tostreak/utils"
)

// TaskInput carries the user-editable fields of a task.
type TaskInput struct {
	Title       string
	Description string
	DueDate     time.Time
	Criticality model.Criticality
}

func (in TaskInput) validate() (TaskInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return in, ErrTitleRequired
	}
	if !in.Criticality.Valid() {
		return in, ErrInvalidCriticality
	}
	return in, nil
}

func cloneTasks(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	for i, task := range tasks {
		out[i] = task.Clone()
	}
	return out
}

func findTask(tasks []model.Task, id string) int {
	for i, task := range tasks {
		if task.ID == id {
			return i
		}
	}
	return -1
}

func (t *Tracker) Tasks() []model.Task {
	t.mu.Lock()
	defer t.mu.Unlock()
	return cloneTasks(t.state.Tasks)
}

func (t *Tracker) Task(id string) (model.Task, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := findTask(t.state.Tasks, id)
	if idx < 0 {
		return model.Task{}, false
	}
	return t.state.Tasks[idx].Clone(), true
}

// AddTask creates a task with a fresh id and no completions. The list stays
// ordered by due date.
func (t *Tracker) AddTask(ctx context.Context, in TaskInput) (model.Task, error) {
	in, err := in.validate()
	if err != nil {
		return model.Task{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	task := model.Task{
		ID:             utils.NewID(),
		Title:          in.Title,
		Description:    in.Description,
		DueDate:        in.DueDate,
		Criticality:    in.Criticality,
		CompletedDates: []string{},
	}

	next := append(cloneTasks(t.state.Tasks), task)
	sort.SliceStable(next, func(i, j int) bool {
		return next[i].DueDate.Before(next[j].DueDate)
	})

	if err := t.repo.SaveTasks(ctx, next); err != nil {
		return model.Task{}, err
	}
	t.state.Tasks = next

	t.logger.Info("task added", "task_id", task.ID, "criticality", task.Criticality)
	return task.Clone(), nil
}

// UpdateTask replaces the editable fields of the task in place. Completion
// dates are kept.
func (t *Tracker) UpdateTask(ctx context.Context, id string, in TaskInput) (model.Task, bool, error) {
	in, err := in.validate()
	if err != nil {
		return model.Task{}, false, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	idx := findTask(t.state.Tasks, id)
	if idx < 0 {
		return model.Task{}, false, nil
	}

	next := cloneTasks(t.state.Tasks)
	next[idx].Title = in.Title
	next[idx].Description = in.Description
	next[idx].DueDate = in.DueDate
	next[idx].Criticality = in.Criticality

	if err := t.repo.SaveTasks(ctx, next); err != nil {
		return model.Task{}, true, err
	}
	t.state.Tasks = next
	return next[idx].Clone(), true, nil
}

func (t *Tracker) DeleteTask(ctx context.Context, id string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := findTask(t.state.Tasks, id)
	if idx < 0 {
		return false, nil
	}

	next := make([]model.Task, 0, len(t.state.Tasks)-1)
	next = append(next, cloneTasks(t.state.Tasks[:idx])...)
	next = append(next, cloneTasks(t.state.Tasks[idx+1:])...)

	if err := t.repo.SaveTasks(ctx, next); err != nil {
		return true, err
	}
	t.state.Tasks = next

	t.logger.Info("task deleted", "task_id", id)
	return true, nil
}

// CompleteTask toggles the task's completion on date's calendar day; a zero
// date means today. Unknown ids report found=false and change nothing.
func (t *Tracker) CompleteTask(ctx context.Context, id string, date time.Time) (model.Task, accrual.Outcome, bool, error) {
	if date.IsZero() {
		date = t.now()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	idx := findTask(t.state.Tasks, id)
	if idx < 0 {
		return model.Task{}, accrual.Outcome{}, false, nil
	}

	task, profile, outcome := accrual.ToggleCompletion(t.state.Tasks[idx], t.state.Profile, date)

	nextTasks := cloneTasks(t.state.Tasks)
	nextTasks[idx] = task

	if err := t.repo.SaveTasks(ctx, nextTasks); err != nil {
		return model.Task{}, accrual.Outcome{}, true, err
	}
	if outcome.Completed {
		if err := t.repo.SaveProfile(ctx, profile); err != nil {
			t.restoreTasks(ctx)
			return model.Task{}, accrual.Outcome{}, true, err
		}
	}
	t.state.Tasks = nextTasks
	t.state.Profile = profile

	utils.TrackCompletion(string(task.Criticality), outcome.Completed, outcome.PointsEarned)
	utils.TrackProfile(profile.Points, profile.Streak)
	t.logger.Info("task completion toggled",
		"task_id", id,
		"date", outcome.Date,
		"completed", outcome.Completed,
		"points_earned", outcome.PointsEarned,
		"streak", outcome.StreakAfter,
	)

	t.events.TaskToggled(ctx, task.Clone(), outcome, profile.Clone())
	return task.Clone(), outcome, true, nil
}

// restoreTasks writes the current in-memory tasks back after a later write
// in the same operation failed. Must be called with t.mu held.
func (t *Tracker) restoreTasks(ctx context.Context) {
	if err := t.repo.SaveTasks(ctx, t.state.Tasks); err != nil {
		t.logger.Error("failed to restore tasks after partial write", "error", err)
	}
}
