package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskDecodesEitherDueDateForm(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"bare date", `{"id":"1","dueDate":"2024-04-05"}`, time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)},
		{"timestamp", `{"id":"1","dueDate":"2024-04-06T00:00:00.000Z"}`, time.Date(2024, 4, 6, 0, 0, 0, 0, time.UTC)},
		{"offset", `{"id":"1","dueDate":"2024-04-06T22:00:00-03:00"}`, time.Date(2024, 4, 7, 1, 0, 0, 0, time.UTC)},
		{"missing", `{"id":"1"}`, time.Time{}},
		{"null", `{"id":"1","dueDate":null}`, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var task Task
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &task))
			assert.Equal(t, "1", task.ID)
			assert.True(t, tt.want.Equal(task.DueDate), "got %v", task.DueDate)
		})
	}
}

func TestTaskRejectsUnknownDueDate(t *testing.T) {
	var task Task
	err := json.Unmarshal([]byte(`{"id":"1","dueDate":"next week"}`), &task)
	assert.ErrorIs(t, err, ErrInvalidDueDate)
}

func TestTaskRoundTripKeepsFields(t *testing.T) {
	in := Task{
		ID:             "1",
		Title:          "Read",
		DueDate:        time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC),
		Criticality:    CriticalityHigh,
		CompletedDates: []string{"2024-04-04"},
	}
	raw, err := json.Marshal(in)
	require.NoError(t, err)

	var out Task
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)
}
