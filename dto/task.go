package dto

import (
	"encoding/json"
	"time"

	"tostreak/accrual"
	"tostreak/model"
	"tostreak/usecase"
)

var ErrInvalidDueDate = model.ErrInvalidDueDate

// TaskRequest is the body of POST /tasks and PUT /tasks/:id.
type TaskRequest struct {
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	DueDate     string            `json:"dueDate" binding:"required"`
	Criticality model.Criticality `json:"criticality" binding:"required,criticality"`
}

func (r TaskRequest) ToInput() (usecase.TaskInput, error) {
	due, err := ParseDueDate(r.DueDate)
	if err != nil {
		return usecase.TaskInput{}, err
	}
	return usecase.TaskInput{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     due,
		Criticality: r.Criticality,
	}, nil
}

// ParseDueDate parses a request dueDate the same way stored tasks are read.
func ParseDueDate(value string) (time.Time, error) {
	return model.ParseDueDate(value)
}

// CompleteRequest is the optional body of POST /tasks/:id/complete.
type CompleteRequest struct {
	Date string `json:"date" binding:"datekey"`
}

// TaskResponse adds computed fields to the stored task.
type TaskResponse struct {
	model.Task
	Points         int    `json:"points"`
	CompletedToday bool   `json:"completedToday"`
	Status         string `json:"status"`
}

// UnmarshalJSON decodes the computed fields alongside the embedded task,
// whose own UnmarshalJSON would otherwise swallow the whole object.
func (r *TaskResponse) UnmarshalJSON(data []byte) error {
	var computed struct {
		Points         int    `json:"points"`
		CompletedToday bool   `json:"completedToday"`
		Status         string `json:"status"`
	}
	if err := json.Unmarshal(data, &computed); err != nil {
		return err
	}
	if err := r.Task.UnmarshalJSON(data); err != nil {
		return err
	}
	r.Points = computed.Points
	r.CompletedToday = computed.CompletedToday
	r.Status = computed.Status
	return nil
}

const (
	StatusDone     = "done"
	StatusOverdue  = "overdue"
	StatusDueToday = "due_today"
	StatusPending  = "pending"
)

func ToTaskResponse(task model.Task, now time.Time) TaskResponse {
	todayKey := accrual.DateKey(now)
	response := TaskResponse{
		Task:           task,
		Points:         accrual.PointsFor(task.Criticality),
		CompletedToday: task.CompletedOn(todayKey),
	}

	dueKey := accrual.DateKey(task.DueDate)
	switch {
	case task.CompletedOn(dueKey) || response.CompletedToday:
		response.Status = StatusDone
	case dueKey < todayKey:
		response.Status = StatusOverdue
	case dueKey == todayKey:
		response.Status = StatusDueToday
	default:
		response.Status = StatusPending
	}
	return response
}

func ToTaskResponses(tasks []model.Task, now time.Time) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = ToTaskResponse(task, now)
	}
	return responses
}

// CompletionResponse is returned by the completion toggle.
type CompletionResponse struct {
	Task    TaskResponse      `json:"task"`
	Outcome accrual.Outcome   `json:"outcome"`
	Profile model.UserProfile `json:"profile"`
}
