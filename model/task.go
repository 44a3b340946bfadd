package model

import (
	"encoding/json"
	"errors"
	"time"
)

var ErrInvalidDueDate = errors.New("dueDate must be YYYY-MM-DD or an RFC 3339 timestamp")

type Criticality string

const (
	CriticalityLow    Criticality = "low"
	CriticalityMedium Criticality = "medium"
	CriticalityHigh   Criticality = "high"
	CriticalityUrgent Criticality = "urgent"
)

// Criticalities lists the levels in ascending order.
var Criticalities = []Criticality{
	CriticalityLow,
	CriticalityMedium,
	CriticalityHigh,
	CriticalityUrgent,
}

func (c Criticality) Valid() bool {
	switch c {
	case CriticalityLow, CriticalityMedium, CriticalityHigh, CriticalityUrgent:
		return true
	}
	return false
}

// Rank returns the ordinal of the level, low being 0. Unknown levels rank -1.
func (c Criticality) Rank() int {
	for i, level := range Criticalities {
		if level == c {
			return i
		}
	}
	return -1
}

// Task is stored under the "tasks" key as a JSON array. CompletedDates holds
// YYYY-MM-DD calendar dates, each at most once.
type Task struct {
	ID             string      `json:"id" bson:"id"`
	Title          string      `json:"title" bson:"title"`
	Description    string      `json:"description,omitempty" bson:"description,omitempty"`
	DueDate        time.Time   `json:"dueDate" bson:"due_date"`
	Criticality    Criticality `json:"criticality" bson:"criticality"`
	CompletedDates []string    `json:"completedDates" bson:"completed_dates"`
}

// CompletedOn reports whether the task has the given date key in its
// completion set.
func (t Task) CompletedOn(dateKey string) bool {
	for _, d := range t.CompletedDates {
		if d == dateKey {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slice storage with t.
func (t Task) Clone() Task {
	out := t
	out.CompletedDates = append(make([]string, 0, len(t.CompletedDates)), t.CompletedDates...)
	return out
}

// ParseDueDate accepts a bare calendar date or a full timestamp. The browser
// client stored either depending on the form used.
func ParseDueDate(value string) (time.Time, error) {
	if t, err := time.ParseInLocation(time.DateOnly, value, time.UTC); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, ErrInvalidDueDate
	}
	return t.UTC(), nil
}

// UnmarshalJSON reads dueDate in either form ParseDueDate accepts. A missing
// or null dueDate leaves the zero time.
func (t *Task) UnmarshalJSON(data []byte) error {
	type stored Task
	aux := struct {
		*stored
		DueDate *string `json:"dueDate"`
	}{stored: (*stored)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.DueDate == nil {
		return nil
	}
	due, err := ParseDueDate(*aux.DueDate)
	if err != nil {
		return err
	}
	t.DueDate = due
	return nil
}
