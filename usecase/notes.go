package usecase

import (
	"context"
	"strings"

	"tostreak/model"
	"tostreak/utils"
)

type NoteInput struct {
	Title   string
	Content string
}

func (in NoteInput) validate() (NoteInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	if strings.TrimSpace(in.Content) == "" {
		return in, ErrContentRequired
	}
	return in, nil
}

func findNote(notes []model.Note, id string) int {
	for i, note := range notes {
		if note.ID == id {
			return i
		}
	}
	return -1
}

// Notes returns the notes newest first.
func (t *Tracker) Notes() []model.Note {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append(make([]model.Note, 0, len(t.state.Notes)), t.state.Notes...)
}

func (t *Tracker) AddNote(ctx context.Context, in NoteInput) (model.Note, error) {
	in, err := in.validate()
	if err != nil {
		return model.Note{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	note := model.Note{
		ID:        utils.NewID(),
		Title:     in.Title,
		Content:   in.Content,
		CreatedAt: t.now().UTC(),
	}

	next := make([]model.Note, 0, len(t.state.Notes)+1)
	next = append(next, note)
	next = append(next, t.state.Notes...)

	if err := t.repo.SaveNotes(ctx, next); err != nil {
		return model.Note{}, err
	}
	t.state.Notes = next
	return note, nil
}

// UpdateNote replaces title and content. The creation time is kept.
func (t *Tracker) UpdateNote(ctx context.Context, id string, in NoteInput) (model.Note, bool, error) {
	in, err := in.validate()
	if err != nil {
		return model.Note{}, false, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	idx := findNote(t.state.Notes, id)
	if idx < 0 {
		return model.Note{}, false, nil
	}

	next := append([]model.Note(nil), t.state.Notes...)
	next[idx].Title = in.Title
	next[idx].Content = in.Content

	if err := t.repo.SaveNotes(ctx, next); err != nil {
		return model.Note{}, true, err
	}
	t.state.Notes = next
	return next[idx], true, nil
}

func (t *Tracker) DeleteNote(ctx context.Context, id string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := findNote(t.state.Notes, id)
	if idx < 0 {
		return false, nil
	}

	next := make([]model.Note, 0, len(t.state.Notes)-1)
	next = append(next, t.state.Notes[:idx]...)
	next = append(next, t.state.Notes[idx+1:]...)

	if err := t.repo.SaveNotes(ctx, next); err != nil {
		return true, err
	}
	t.state.Notes = next
	return true, nil
}
