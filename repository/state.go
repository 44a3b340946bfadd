package repository

import (
	"context"

	"tostreak/model"
)

// State is the whole persisted application state, loaded once per session.
type State struct {
	Tasks   []model.Task
	Notes   []model.Note
	Profile model.UserProfile
	Rewards []model.CustomReward
	Theme   model.Theme
	APIKey  string
}

// StateRepo maps the typed records onto their logical keys.
type StateRepo struct {
	store KVStore
}

func NewStateRepo(store KVStore) *StateRepo {
	return &StateRepo{store: store}
}

func (r *StateRepo) Load(ctx context.Context) (*State, error) {
	var (
		state State
		err   error
	)

	if state.Tasks, err = GetJSON(ctx, r.store, KeyTasks, []model.Task{}); err != nil {
		return nil, err
	}
	if state.Notes, err = GetJSON(ctx, r.store, KeyNotes, []model.Note{}); err != nil {
		return nil, err
	}
	if state.Profile, err = GetJSON(ctx, r.store, KeyUserProfile, model.DefaultProfile()); err != nil {
		return nil, err
	}
	if state.Rewards, err = GetJSON(ctx, r.store, KeyCustomRewards, []model.CustomReward{}); err != nil {
		return nil, err
	}
	if state.Theme, err = GetJSON(ctx, r.store, KeyTheme, model.DefaultTheme); err != nil {
		return nil, err
	}
	if state.APIKey, err = GetJSON(ctx, r.store, KeyAPIKey, ""); err != nil {
		return nil, err
	}

	if !state.Theme.Valid() {
		state.Theme = model.DefaultTheme
	}
	if state.Tasks == nil {
		state.Tasks = []model.Task{}
	}
	if state.Notes == nil {
		state.Notes = []model.Note{}
	}
	if state.Rewards == nil {
		state.Rewards = []model.CustomReward{}
	}
	return &state, nil
}

func (r *StateRepo) SaveTasks(ctx context.Context, tasks []model.Task) error {
	return SetJSON(ctx, r.store, KeyTasks, tasks)
}

func (r *StateRepo) SaveNotes(ctx context.Context, notes []model.Note) error {
	return SetJSON(ctx, r.store, KeyNotes, notes)
}

func (r *StateRepo) SaveProfile(ctx context.Context, profile model.UserProfile) error {
	return SetJSON(ctx, r.store, KeyUserProfile, profile)
}

func (r *StateRepo) SaveRewards(ctx context.Context, rewards []model.CustomReward) error {
	return SetJSON(ctx, r.store, KeyCustomRewards, rewards)
}

func (r *StateRepo) SaveTheme(ctx context.Context, theme model.Theme) error {
	return SetJSON(ctx, r.store, KeyTheme, theme)
}

func (r *StateRepo) SaveAPIKey(ctx context.Context, apiKey string) error {
	return SetJSON(ctx, r.store, KeyAPIKey, apiKey)
}
