package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"tostreak/accrual"
	"tostreak/model"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/google/uuid"
)

const (
	EventTaskCompleted   = "io.tostreak.task.completed"
	EventTaskUncompleted = "io.tostreak.task.uncompleted"
	EventRewardRedeemed  = "io.tostreak.reward.redeemed"

	eventSendTimeout = 5 * time.Second
)

type TaskEventData struct {
	TaskID       string            `json:"task_id"`
	Title        string            `json:"title"`
	Criticality  model.Criticality `json:"criticality"`
	Date         string            `json:"date"`
	PointsEarned int               `json:"points_earned"`
	Points       int               `json:"points"`
	Streak       int               `json:"streak"`
}

type RewardEventData struct {
	RewardID    string `json:"reward_id"`
	Description string `json:"description"`
	Cost        int    `json:"cost"`
	Points      int    `json:"points"`
}

// CloudEventSink posts accrual events to an HTTP CloudEvents receiver.
// Sends happen in the background; failures are logged and dropped.
type CloudEventSink struct {
	client cloudevents.Client
	source string
	logger *slog.Logger
	wg     sync.WaitGroup
}

func NewCloudEventSink(target, source string, logger *slog.Logger) (*CloudEventSink, error) {
	client, err := cloudevents.NewClientHTTP(cloudevents.WithTarget(target))
	if err != nil {
		return nil, fmt.Errorf("creating cloudevents client: %w", err)
	}
	return NewCloudEventSinkFromClient(client, source, logger), nil
}

func NewCloudEventSinkFromClient(client cloudevents.Client, source string, logger *slog.Logger) *CloudEventSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &CloudEventSink{client: client, source: source, logger: logger}
}

// NewEvent builds a JSON CloudEvent with a time-ordered id.
func NewEvent(eventType, source string, data interface{}) cloudevents.Event {
	event := cloudevents.NewEvent()

	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	event.SetID(id.String())
	event.SetSource(source)
	event.SetType(eventType)
	event.SetTime(time.Now())
	event.SetSpecVersion(cloudevents.VersionV1)
	if data != nil {
		_ = event.SetData(cloudevents.ApplicationJSON, data)
	}
	return event
}

func (s *CloudEventSink) TaskToggled(ctx context.Context, task model.Task, outcome accrual.Outcome, profile model.UserProfile) {
	eventType := EventTaskUncompleted
	if outcome.Completed {
		eventType = EventTaskCompleted
	}
	s.emit(ctx, NewEvent(eventType, s.source, TaskEventData{
		TaskID:       task.ID,
		Title:        task.Title,
		Criticality:  task.Criticality,
		Date:         outcome.Date,
		PointsEarned: outcome.PointsEarned,
		Points:       profile.Points,
		Streak:       profile.Streak,
	}))
}

func (s *CloudEventSink) RewardRedeemed(ctx context.Context, reward model.CustomReward, profile model.UserProfile) {
	s.emit(ctx, NewEvent(EventRewardRedeemed, s.source, RewardEventData{
		RewardID:    reward.ID,
		Description: reward.Description,
		Cost:        reward.Cost,
		Points:      profile.Points,
	}))
}

func (s *CloudEventSink) emit(ctx context.Context, event cloudevents.Event) {
	if err := event.Validate(); err != nil {
		s.logger.Error("dropping invalid event", "type", event.Type(), "error", err)
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), eventSendTimeout)
		defer cancel()

		if result := s.client.Send(sendCtx, event); cloudevents.IsUndelivered(result) {
			s.logger.Warn("event not delivered", "type", event.Type(), "id", event.ID(), "error", result)
			return
		}
		s.logger.Debug("event sent", "type", event.Type(), "id", event.ID())
	}()
}

// Close waits for in-flight sends.
func (s *CloudEventSink) Close() {
	s.wg.Wait()
}
