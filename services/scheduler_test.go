package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"tostreak/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingChecker struct {
	calls atomic.Int32
	err   error
}

func (c *countingChecker) CheckStreaks(_ context.Context) (model.UserProfile, bool, error) {
	c.calls.Add(1)
	return model.UserProfile{}, true, c.err
}

func TestNewStreakScheduler(t *testing.T) {
	tests := []struct {
		name     string
		schedule string
		wantErr  bool
	}{
		{"default", "CRON_TZ=UTC 0 0 * * *", false},
		{"descriptor", "@daily", false},
		{"every minute", "* * * * *", false},
		{"seconds field rejected", "0 0 0 * * *", true},
		{"garbage", "whenever", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStreakScheduler(tt.schedule, &countingChecker{}, nil)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestStreakSchedulerRunOnce(t *testing.T) {
	checker := &countingChecker{}
	scheduler, err := NewStreakScheduler("@daily", checker, nil)
	require.NoError(t, err)

	scheduler.RunOnce()
	assert.EqualValues(t, 1, checker.calls.Load())

	checker.err = errors.New("store down")
	assert.NotPanics(t, scheduler.RunOnce)
	assert.EqualValues(t, 2, checker.calls.Load())
}

func TestStreakSchedulerStartStop(t *testing.T) {
	scheduler, err := NewStreakScheduler("@daily", &countingChecker{}, nil)
	require.NoError(t, err)

	scheduler.Start()
	<-scheduler.Stop().Done()
}
