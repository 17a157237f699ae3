package main

import "fmt"

// Card status marks set while browsing.
const (
	CardKnown  = "known"
	CardReview = "review"
)

// FlashcardSession is a read-only traversal of a quiz: flip the card,
// flag it, mark it known or review. No timer, no scoring, nothing
// persisted.
type FlashcardSession struct {
	quiz    Quiz
	current int
	flipped bool
	flags   map[int]bool
	status  map[int]string
}

func NewFlashcardSession(quiz Quiz) (*FlashcardSession, error) {
	if len(quiz.Questions) == 0 {
		return nil, ErrEmptyQuiz
	}
	return &FlashcardSession{
		quiz:   quiz,
		flags:  map[int]bool{},
		status: map[int]string{},
	}, nil
}

// Flip toggles between question and answer side of the current card.
func (s *FlashcardSession) Flip() bool {
	s.flipped = !s.flipped
	return s.flipped
}

// Next moves forward; navigation always lands on the front side.
func (s *FlashcardSession) Next() {
	s.flipped = false
	s.current = clampIndex(s.current+1, len(s.quiz.Questions))
}

func (s *FlashcardSession) Previous() {
	s.flipped = false
	s.current = clampIndex(s.current-1, len(s.quiz.Questions))
}

func (s *FlashcardSession) GoTo(card int) {
	s.flipped = false
	s.current = clampIndex(card, len(s.quiz.Questions))
}

func (s *FlashcardSession) ToggleFlag(card int) error {
	if card < 0 || card >= len(s.quiz.Questions) {
		return fmt.Errorf("%w: card %d", ErrInvalidSelection, card)
	}
	s.flags[card] = !s.flags[card]
	return nil
}

// MarkStatus tags the card as known or needing review.
func (s *FlashcardSession) MarkStatus(card int, status string) error {
	if card < 0 || card >= len(s.quiz.Questions) {
		return fmt.Errorf("%w: card %d", ErrInvalidSelection, card)
	}
	if status != CardKnown && status != CardReview {
		return fmt.Errorf("%w: status %q", ErrValidation, status)
	}
	s.status[card] = status
	return nil
}

// CardView is the current card as rendered by the shell: the answer
// text is only present once the card is flipped.
type CardView struct {
	Index     int    `json:"index"`
	Total     int    `json:"total"`
	Question  string `json:"question"`
	Answer    string `json:"answer,omitempty"`
	IsFlipped bool   `json:"isFlipped"`
	Flagged   bool   `json:"flagged"`
	Status    string `json:"status,omitempty"`
}

func (s *FlashcardSession) Current() CardView {
	q := s.quiz.Questions[s.current]
	view := CardView{
		Index:     s.current,
		Total:     len(s.quiz.Questions),
		Question:  q.Text,
		IsFlipped: s.flipped,
		Flagged:   s.flags[s.current],
		Status:    s.status[s.current],
	}
	if s.flipped && q.Correct < len(q.Options) {
		view.Answer = q.Options[q.Correct]
	}
	return view
}
