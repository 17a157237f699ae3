package main

import (
	"fmt"
	"strings"
)

// DraftState tracks the authoring lifecycle.
type DraftState string

const (
	DraftEmpty   DraftState = "empty"
	DraftEditing DraftState = "editing"
	DraftSaved   DraftState = "saved"
)

const defaultOptionCount = 4

// AuthoringSession is the in-memory editable draft of one quiz. Nothing
// persists until Save hands the finalized quiz to the repository;
// discarding the session discards all edits.
type AuthoringSession struct {
	repo *QuizRepository

	state       DraftState
	title       string
	description string
	difficulty  Difficulty
	duration    int
	questions   []Question
}

func NewAuthoringSession(repo *QuizRepository) *AuthoringSession {
	s := &AuthoringSession{repo: repo}
	s.resetDraft()
	return s
}

func (s *AuthoringSession) resetDraft() {
	s.state = DraftEmpty
	s.title = ""
	s.description = ""
	s.difficulty = DifficultyMedium
	s.duration = defaultDurationMinutes
	s.questions = []Question{blankQuestion()}
}

func blankQuestion() Question {
	return Question{Options: make([]string, defaultOptionCount), Correct: 0}
}

// SetMetadata updates draft title, description, difficulty and duration.
// Zero values leave the corresponding field untouched.
func (s *AuthoringSession) SetMetadata(title, description string, difficulty Difficulty, duration int) {
	s.touch()
	if title != "" {
		s.title = title
	}
	if description != "" {
		s.description = description
	}
	switch difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		s.difficulty = difficulty
	}
	if duration > 0 {
		s.duration = duration
	}
}

// AddQuestion appends a blank question: four empty options, first one
// marked correct.
func (s *AuthoringSession) AddQuestion() {
	s.touch()
	s.questions = append(s.questions, blankQuestion())
}

func (s *AuthoringSession) UpdateQuestionText(question int, text string) error {
	if question < 0 || question >= len(s.questions) {
		return fmt.Errorf("%w: question %d", ErrInvalidSelection, question)
	}
	s.touch()
	s.questions[question].Text = text
	return nil
}

func (s *AuthoringSession) UpdateOption(question, option int, text string) error {
	if question < 0 || question >= len(s.questions) {
		return fmt.Errorf("%w: question %d", ErrInvalidSelection, question)
	}
	if option < 0 || option >= len(s.questions[question].Options) {
		return fmt.Errorf("%w: option %d", ErrInvalidSelection, option)
	}
	s.touch()
	s.questions[question].Options[option] = text
	return nil
}

func (s *AuthoringSession) SetCorrectIndex(question, option int) error {
	if question < 0 || question >= len(s.questions) {
		return fmt.Errorf("%w: question %d", ErrInvalidSelection, question)
	}
	if option < 0 || option >= len(s.questions[question].Options) {
		return fmt.Errorf("%w: option %d", ErrInvalidSelection, option)
	}
	s.touch()
	s.questions[question].Correct = option
	return nil
}

// RemoveQuestion deletes a question from the draft; the draft always
// keeps at least one question.
func (s *AuthoringSession) RemoveQuestion(question int) error {
	if question < 0 || question >= len(s.questions) {
		return fmt.Errorf("%w: question %d", ErrInvalidSelection, question)
	}
	if len(s.questions) == 1 {
		return fmt.Errorf("%w: draft needs at least one question", ErrValidation)
	}
	s.touch()
	s.questions = append(s.questions[:question], s.questions[question+1:]...)
	return nil
}

// Reset discards all edits and returns to an empty draft with one
// blank question.
func (s *AuthoringSession) Reset() {
	s.resetDraft()
}

// Save validates the draft and hands the finalized quiz to the
// repository. On success the session transitions to Saved; a new draft
// starts with Reset.
func (s *AuthoringSession) Save() (Quiz, error) {
	if s.state == DraftSaved {
		return Quiz{}, fmt.Errorf("%w: draft already saved", ErrValidation)
	}
	if strings.TrimSpace(s.title) == "" {
		return Quiz{}, fmt.Errorf("%w: quiz title is required", ErrValidation)
	}
	quiz, err := s.repo.Create(Quiz{
		Title:       s.title,
		Description: s.description,
		Difficulty:  s.difficulty,
		Duration:    s.duration,
		Questions:   s.questions,
	})
	if err != nil {
		return Quiz{}, err
	}
	s.state = DraftSaved
	return quiz, nil
}

func (s *AuthoringSession) State() DraftState {
	return s.state
}

func (s *AuthoringSession) Questions() []Question {
	return s.questions
}

func (s *AuthoringSession) touch() {
	if s.state == DraftEmpty {
		s.state = DraftEditing
	}
}
