package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Note backgrounds offered by the composer; the first is the default.
var noteBackgrounds = []string{
	"bg-white",
	"bg-yellow-100",
	"bg-green-100",
	"bg-blue-100",
	"bg-pink-100",
	"bg-purple-100",
}

// NotesStore keeps study notes under the notes document. Same contract
// as the quiz repository: every mutation rewrites the whole collection.
type NotesStore struct {
	store Store
}

func NewNotesStore(store Store) *NotesStore {
	return &NotesStore{store: store}
}

func (s *NotesStore) List() []Note {
	var notes []Note
	s.store.Load(keyNotes, &notes)
	return notes
}

func (s *NotesStore) Create(title, content, background string) (Note, error) {
	if strings.TrimSpace(title) == "" {
		return Note{}, fmt.Errorf("%w: note title is required", ErrValidation)
	}
	if !validNoteBackground(background) {
		background = noteBackgrounds[0]
	}
	note := Note{
		ID:         uuid.New().String(),
		Title:      title,
		Content:    content,
		Background: background,
	}
	notes := append(s.List(), note)
	if err := s.store.Save(keyNotes, notes); err != nil {
		return Note{}, err
	}
	return note, nil
}

func (s *NotesStore) Update(id, title, content, background string) (Note, error) {
	if strings.TrimSpace(title) == "" {
		return Note{}, fmt.Errorf("%w: note title is required", ErrValidation)
	}
	notes := s.List()
	for i := range notes {
		if notes[i].ID != id {
			continue
		}
		notes[i].Title = title
		notes[i].Content = content
		if validNoteBackground(background) {
			notes[i].Background = background
		}
		if err := s.store.Save(keyNotes, notes); err != nil {
			return Note{}, err
		}
		return notes[i], nil
	}
	return Note{}, fmt.Errorf("%w: note %s", ErrNotFound, id)
}

func (s *NotesStore) Delete(id string) error {
	notes := s.List()
	kept := notes[:0]
	for _, n := range notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(notes) {
		return nil
	}
	return s.store.Save(keyNotes, kept)
}

func validNoteBackground(bg string) bool {
	for _, b := range noteBackgrounds {
		if b == bg {
			return true
		}
	}
	return false
}
