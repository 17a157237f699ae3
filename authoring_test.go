package main

import (
	"errors"
	"testing"

	"go.uber.org/zap"
)

func testSession() *AuthoringSession {
	repo := NewQuizRepository(NewMemStore(), nil, zap.NewNop())
	return NewAuthoringSession(repo)
}

func TestAuthoringFreshDraft(t *testing.T) {
	s := testSession()
	if s.State() != DraftEmpty {
		t.Errorf("fresh draft state = %s, want empty", s.State())
	}
	qs := s.Questions()
	if len(qs) != 1 {
		t.Fatalf("fresh draft has %d questions, want 1", len(qs))
	}
	if len(qs[0].Options) != 4 || qs[0].Correct != 0 {
		t.Errorf("blank question = %d options correct %d, want 4 options correct 0", len(qs[0].Options), qs[0].Correct)
	}
}

func TestAuthoringAddQuestion(t *testing.T) {
	s := testSession()
	s.AddQuestion()
	s.AddQuestion()
	qs := s.Questions()
	if len(qs) != 3 {
		t.Fatalf("after two adds draft has %d questions, want 3", len(qs))
	}
	for i, q := range qs {
		if len(q.Options) != 4 || q.Correct != 0 {
			t.Errorf("question %d = %d options correct %d, want blank shape", i, len(q.Options), q.Correct)
		}
	}
	if s.State() != DraftEditing {
		t.Errorf("state after edit = %s, want editing", s.State())
	}
}

func TestAuthoringRemoveKeepsOneQuestion(t *testing.T) {
	s := testSession()
	if err := s.RemoveQuestion(0); !errors.Is(err, ErrValidation) {
		t.Errorf("removing the only question = %v, want ErrValidation", err)
	}
	s.AddQuestion()
	if err := s.RemoveQuestion(1); err != nil {
		t.Errorf("remove: %v", err)
	}
	if len(s.Questions()) != 1 {
		t.Errorf("question count after remove = %d, want 1", len(s.Questions()))
	}
}

func TestAuthoringSave(t *testing.T) {
	s := testSession()
	if _, err := s.Save(); !errors.Is(err, ErrValidation) {
		t.Fatalf("save without title = %v, want ErrValidation", err)
	}

	s.SetMetadata("Networking Basics", "intro", DifficultyEasy, 20)
	if err := s.UpdateQuestionText(0, "What is a subnet?"); err != nil {
		t.Fatal(err)
	}
	for i, opt := range []string{"w", "x", "y", "z"} {
		if err := s.UpdateOption(0, i, opt); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.SetCorrectIndex(0, 2); err != nil {
		t.Fatal(err)
	}

	quiz, err := s.Save()
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if quiz.Owner != OwnerUser || quiz.Difficulty != DifficultyEasy || quiz.Duration != 20 {
		t.Errorf("saved quiz = %+v", quiz)
	}
	if s.State() != DraftSaved {
		t.Errorf("state after save = %s, want saved", s.State())
	}
	if _, err := s.Save(); !errors.Is(err, ErrValidation) {
		t.Errorf("re-save = %v, want ErrValidation", err)
	}

	s.Reset()
	if s.State() != DraftEmpty || len(s.Questions()) != 1 {
		t.Errorf("reset draft = %s with %d questions, want empty with 1", s.State(), len(s.Questions()))
	}
}

func TestAuthoringMetadataZeroValuesKeepDefaults(t *testing.T) {
	s := testSession()
	s.SetMetadata("Title", "", "", 0)
	s.SetMetadata("", "", "nonsense", -5)
	if err := s.UpdateQuestionText(0, "q"); err != nil {
		t.Fatal(err)
	}
	quiz, err := s.Save()
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if quiz.Title != "Title" || quiz.Difficulty != DifficultyMedium || quiz.Duration != defaultDurationMinutes {
		t.Errorf("saved quiz = title %q difficulty %q duration %d", quiz.Title, quiz.Difficulty, quiz.Duration)
	}
}
