package main

import (
	"errors"
	"testing"
)

func TestFlashcardsEmptyQuiz(t *testing.T) {
	if _, err := NewFlashcardSession(Quiz{ID: "e", Title: "Empty"}); !errors.Is(err, ErrEmptyQuiz) {
		t.Fatalf("NewFlashcardSession(empty) = %v, want ErrEmptyQuiz", err)
	}
}

func TestFlashcardsFlipResetsOnNavigation(t *testing.T) {
	s, err := NewFlashcardSession(testQuiz())
	if err != nil {
		t.Fatal(err)
	}

	if view := s.Current(); view.Answer != "" || view.IsFlipped {
		t.Errorf("unflipped card leaked the answer: %+v", view)
	}
	s.Flip()
	if view := s.Current(); view.Answer != "a" || !view.IsFlipped {
		t.Errorf("flipped card = %+v, want answer %q", s.Current(), "a")
	}

	s.Next()
	view := s.Current()
	if view.Index != 1 || view.IsFlipped || view.Answer != "" {
		t.Errorf("navigation must land on the front side, got %+v", view)
	}

	s.Flip()
	s.Previous()
	if s.Current().IsFlipped {
		t.Error("Previous kept the card flipped")
	}
	s.Flip()
	s.GoTo(2)
	if s.Current().IsFlipped {
		t.Error("GoTo kept the card flipped")
	}
}

func TestFlashcardsNavigationClamps(t *testing.T) {
	s, err := NewFlashcardSession(testQuiz())
	if err != nil {
		t.Fatal(err)
	}
	s.Previous()
	if s.Current().Index != 0 {
		t.Errorf("Previous at first card = index %d", s.Current().Index)
	}
	s.GoTo(99)
	if s.Current().Index != 2 {
		t.Errorf("GoTo(99) = index %d, want 2", s.Current().Index)
	}
	s.Next()
	if s.Current().Index != 2 {
		t.Errorf("Next at last card = index %d", s.Current().Index)
	}
}

func TestFlashcardsMarksAndFlags(t *testing.T) {
	s, err := NewFlashcardSession(testQuiz())
	if err != nil {
		t.Fatal(err)
	}
	if err := s.MarkStatus(0, CardKnown); err != nil {
		t.Fatal(err)
	}
	if err := s.MarkStatus(1, CardReview); err != nil {
		t.Fatal(err)
	}
	if err := s.MarkStatus(0, "memorized"); !errors.Is(err, ErrValidation) {
		t.Errorf("bad status = %v, want ErrValidation", err)
	}
	if err := s.MarkStatus(9, CardKnown); !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("out-of-range card = %v, want ErrInvalidSelection", err)
	}
	if err := s.ToggleFlag(0); err != nil {
		t.Fatal(err)
	}
	if view := s.Current(); !view.Flagged || view.Status != CardKnown {
		t.Errorf("card 0 view = %+v, want flagged known", view)
	}
	if err := s.ToggleFlag(0); err != nil {
		t.Fatal(err)
	}
	if s.Current().Flagged {
		t.Error("second toggle left the flag set")
	}
}
