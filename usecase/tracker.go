// Package usecase hosts the single-session tracker. It owns the in-memory
// copy of the persisted state and is the only writer to the store.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"tostreak/accrual"
	"tostreak/model"
	"tostreak/repository"
)

var (
	ErrTitleRequired       = errors.New("title is required")
	ErrInvalidCriticality  = errors.New("invalid criticality level")
	ErrContentRequired     = errors.New("note content is required")
	ErrDescriptionRequired = errors.New("reward description is required")
	ErrInvalidCost         = errors.New("reward cost must be a positive number of points")
	ErrInvalidTheme        = errors.New("invalid theme")
	ErrInvalidMonth        = errors.New("month must be between 1 and 12")
)

// Clock supplies the current time. testutils.FixedTime satisfies it.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// EventSink receives accrual notifications after they have been persisted.
type EventSink interface {
	TaskToggled(ctx context.Context, task model.Task, outcome accrual.Outcome, profile model.UserProfile)
	RewardRedeemed(ctx context.Context, reward model.CustomReward, profile model.UserProfile)
}

type noopSink struct{}

func (noopSink) TaskToggled(context.Context, model.Task, accrual.Outcome, model.UserProfile) {}
func (noopSink) RewardRedeemed(context.Context, model.CustomReward, model.UserProfile)       {}

type Option func(*Tracker)

func WithClock(clock Clock) Option {
	return func(t *Tracker) { t.clock = clock }
}

func WithEventSink(sink EventSink) Option {
	return func(t *Tracker) { t.events = sink }
}

func WithLogger(logger *slog.Logger) Option {
	return func(t *Tracker) { t.logger = logger }
}

// Tracker serialises every operation behind one mutex. Mutations write
// through to the store first and only then replace the in-memory state, so a
// failed write leaves the tracker where it was.
type Tracker struct {
	mu     sync.Mutex
	repo   *repository.StateRepo
	state  repository.State
	clock  Clock
	events EventSink
	logger *slog.Logger
}

func NewTracker(repo *repository.StateRepo, opts ...Option) *Tracker {
	t := &Tracker{
		repo:   repo,
		clock:  systemClock{},
		events: noopSink{},
		logger: slog.Default(),
		state: repository.State{
			Tasks:   []model.Task{},
			Notes:   []model.Note{},
			Profile: model.DefaultProfile(),
			Rewards: []model.CustomReward{},
			Theme:   model.DefaultTheme,
		},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Load replaces the in-memory state with what the store holds.
func (t *Tracker) Load(ctx context.Context) error {
	state, err := t.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading state: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = *state

	t.logger.Info("state loaded",
		"tasks", len(state.Tasks),
		"notes", len(state.Notes),
		"rewards", len(state.Rewards),
		"points", state.Profile.Points,
		"streak", state.Profile.Streak,
	)
	return nil
}

func (t *Tracker) now() time.Time {
	return t.clock.Now()
}
