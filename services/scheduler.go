package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tostreak/model"

	"github.com/robfig/cron/v3"
)

const streakCheckTimeout = 30 * time.Second

// StreakChecker is implemented by usecase.Tracker.
type StreakChecker interface {
	CheckStreaks(ctx context.Context) (model.UserProfile, bool, error)
}

// StreakScheduler runs the streak decay check on a cron schedule, in UTC
// unless the expression carries its own CRON_TZ.
type StreakScheduler struct {
	cron    *cron.Cron
	checker StreakChecker
	logger  *slog.Logger
}

func NewStreakScheduler(schedule string, checker StreakChecker, logger *slog.Logger) (*StreakScheduler, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s := &StreakScheduler{
		cron:    cron.New(cron.WithLocation(time.UTC)),
		checker: checker,
		logger:  logger,
	}

	if _, err := s.cron.AddFunc(schedule, s.RunOnce); err != nil {
		return nil, fmt.Errorf("invalid streak decay schedule %q: %w", schedule, err)
	}
	return s, nil
}

// RunOnce performs one check immediately.
func (s *StreakScheduler) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), streakCheckTimeout)
	defer cancel()

	profile, changed, err := s.checker.CheckStreaks(ctx)
	if err != nil {
		s.logger.Error("streak decay check failed", "error", err)
		return
	}
	if changed {
		s.logger.Info("streak reset after missed day", "last_completed", profile.LastCompletedDate)
	}
}

func (s *StreakScheduler) Start() {
	s.cron.Start()
	for _, entry := range s.cron.Entries() {
		s.logger.Info("streak decay job scheduled", "next_run", entry.Next)
	}
}

// Stop halts the schedule; the returned context is done once a running
// check has finished.
func (s *StreakScheduler) Stop() context.Context {
	return s.cron.Stop()
}
