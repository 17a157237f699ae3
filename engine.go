package main

import (
	"fmt"
	"sync"
	"time"
)

// AttemptState is the engine's lifecycle phase.
type AttemptState string

const (
	AttemptNotStarted AttemptState = "not_started"
	AttemptInProgress AttemptState = "in_progress"
	AttemptSubmitted  AttemptState = "submitted"
)

// Engine drives one quiz attempt: question pointer, sparse answer and
// flag maps, and the countdown. All transitions go through the mutex,
// so a timer tick racing a manual submit is impossible by construction;
// any transition attempted outside InProgress is rejected.
type Engine struct {
	mu   sync.Mutex
	quiz Quiz

	state     AttemptState
	current   int
	answers   map[int]int
	flags     map[int]bool
	remaining int // seconds

	result *Result
	stop   chan struct{}
}

func NewEngine(quiz Quiz) *Engine {
	return &Engine{quiz: quiz, state: AttemptNotStarted}
}

// Start moves the engine to InProgress and begins the countdown.
func (e *Engine) Start() error {
	if err := e.begin(); err != nil {
		return err
	}
	go e.countdown()
	return nil
}

// begin performs the Start transition without spawning the countdown
// goroutine; tests drive ticks directly for determinism.
func (e *Engine) begin() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != AttemptNotStarted {
		return fmt.Errorf("%w: attempt already started", ErrNotInProgress)
	}
	if len(e.quiz.Questions) == 0 {
		return ErrEmptyQuiz
	}
	e.state = AttemptInProgress
	e.current = 0
	e.answers = map[int]int{}
	e.flags = map[int]bool{}
	e.remaining = e.quiz.Duration * 60
	e.stop = make(chan struct{})
	return nil
}

func (e *Engine) countdown() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			e.tick()
		case <-e.stop:
			return
		}
	}
}

// tick decrements the countdown by one second; hitting zero submits
// the attempt exactly once.
func (e *Engine) tick() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != AttemptInProgress {
		return
	}
	e.remaining--
	if e.remaining <= 0 {
		e.remaining = 0
		e.submitLocked()
	}
}

// SelectAnswer records the chosen option for a question. Re-answering
// overwrites the prior selection; out-of-range indices are rejected.
func (e *Engine) SelectAnswer(question, option int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != AttemptInProgress {
		return ErrNotInProgress
	}
	if question < 0 || question >= len(e.quiz.Questions) {
		return fmt.Errorf("%w: question %d", ErrInvalidSelection, question)
	}
	if option < 0 || option >= len(e.quiz.Questions[question].Options) {
		return fmt.Errorf("%w: option %d", ErrInvalidSelection, option)
	}
	e.answers[question] = option
	return nil
}

// ToggleFlag flips the review marker on a question.
func (e *Engine) ToggleFlag(question int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != AttemptInProgress {
		return ErrNotInProgress
	}
	if question < 0 || question >= len(e.quiz.Questions) {
		return fmt.Errorf("%w: question %d", ErrInvalidSelection, question)
	}
	e.flags[question] = !e.flags[question]
	return nil
}

// GoTo jumps to a question; the target clamps into range.
func (e *Engine) GoTo(question int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != AttemptInProgress {
		return
	}
	e.current = clampIndex(question, len(e.quiz.Questions))
}

// Next advances one question; a no-op at the last question.
func (e *Engine) Next() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != AttemptInProgress {
		return
	}
	e.current = clampIndex(e.current+1, len(e.quiz.Questions))
}

// Previous steps back one question; a no-op at the first.
func (e *Engine) Previous() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != AttemptInProgress {
		return
	}
	e.current = clampIndex(e.current-1, len(e.quiz.Questions))
}

// Submit finalizes the attempt and returns its Result. Submitting an
// already-submitted attempt returns the cached Result unchanged.
func (e *Engine) Submit() (Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch e.state {
	case AttemptSubmitted:
		if e.result == nil { // torn down without submitting
			return Result{}, ErrNotInProgress
		}
		return *e.result, nil
	case AttemptInProgress:
		e.submitLocked()
		return *e.result, nil
	default:
		return Result{}, ErrNotInProgress
	}
}

// submitLocked scores the attempt and stops the countdown. Caller must
// hold the mutex and have verified state == InProgress.
func (e *Engine) submitLocked() {
	correct, incorrect, unanswered := scoreAnswers(e.quiz.Questions, e.answers)
	flagged := 0
	for _, f := range e.flags {
		if f {
			flagged++
		}
	}
	answers := make(map[int]int, len(e.answers))
	for k, v := range e.answers {
		answers[k] = v
	}
	e.result = &Result{
		QuizID:          e.quiz.ID,
		Title:           e.quiz.Title,
		Total:           len(e.quiz.Questions),
		Correct:         correct,
		Incorrect:       incorrect,
		Unanswered:      unanswered,
		Flagged:         flagged,
		Answers:         answers,
		TimeUsedSeconds: e.quiz.Duration*60 - e.remaining,
	}
	e.state = AttemptSubmitted
	e.stopCountdownLocked()
}

// Close tears the attempt down, cancelling the countdown without
// submitting. Safe to call in any state, more than once.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == AttemptInProgress {
		// Abandoned attempt: no result is produced, but the state
		// must leave InProgress so no later tick can mutate it.
		e.state = AttemptSubmitted
	}
	e.stopCountdownLocked()
}

func (e *Engine) stopCountdownLocked() {
	if e.stop != nil {
		select {
		case <-e.stop:
		default:
			close(e.stop)
		}
	}
}

// --- read-only views ---

func (e *Engine) State() AttemptState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Engine) Quiz() Quiz {
	return e.quiz
}

// Snapshot is the live attempt view rendered by the shell.
type Snapshot struct {
	State            AttemptState `json:"state"`
	CurrentIndex     int          `json:"currentIndex"`
	Answers          map[int]int  `json:"answers"`
	Flags            map[int]bool `json:"flags"`
	RemainingSeconds int          `json:"remainingSeconds"`
	Total            int          `json:"total"`
}

func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	answers := make(map[int]int, len(e.answers))
	for k, v := range e.answers {
		answers[k] = v
	}
	flags := make(map[int]bool, len(e.flags))
	for k, v := range e.flags {
		if v {
			flags[k] = v
		}
	}
	return Snapshot{
		State:            e.state,
		CurrentIndex:     e.current,
		Answers:          answers,
		Flags:            flags,
		RemainingSeconds: e.remaining,
		Total:            len(e.quiz.Questions),
	}
}

// Result returns the cached result once submitted.
func (e *Engine) Result() (Result, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.result == nil {
		return Result{}, false
	}
	return *e.result, true
}
