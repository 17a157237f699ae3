package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

/*** DTOs shared across handlers ***/

type QuizSummaryDTO struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Difficulty    Difficulty `json:"difficulty"`
	Duration      int        `json:"duration"`
	QuestionCount int        `json:"questionCount"`
	Icon          string     `json:"icon,omitempty"`
	Color         string     `json:"color,omitempty"`
	Owner         Owner      `json:"owner"`
}

// AttemptQuestionDTO is a question as shown during an attempt: the
// correct index is never sent to the client mid-attempt.
type AttemptQuestionDTO struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

func summarize(q Quiz) QuizSummaryDTO {
	return QuizSummaryDTO{
		ID:            q.ID,
		Title:         q.Title,
		Description:   q.Description,
		Difficulty:    q.Difficulty,
		Duration:      q.Duration,
		QuestionCount: len(q.Questions),
		Icon:          q.Icon,
		Color:         q.Color,
		Owner:         q.Owner,
	}
}

func attemptQuestions(q Quiz) []AttemptQuestionDTO {
	out := make([]AttemptQuestionDTO, 0, len(q.Questions))
	for _, question := range q.Questions {
		out = append(out, AttemptQuestionDTO{Text: question.Text, Options: question.Options})
	}
	return out
}

// writeError maps the core error taxonomy onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidSelection), errors.Is(err, ErrEmptyQuiz):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrNotInProgress), errors.Is(err, ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, ErrWrongPassword):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

/*** Quiz catalog ***/

func ListQuizzes(repo *QuizRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		quizzes := repo.LoadAll()
		out := make([]QuizSummaryDTO, 0, len(quizzes))
		for _, q := range quizzes {
			out = append(out, summarize(q))
		}
		c.JSON(http.StatusOK, out)
	}
}

func GetQuiz(repo *QuizRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		q, ok := repo.Get(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "quiz not found"})
			return
		}
		c.JSON(http.StatusOK, q)
	}
}

type CreateQuizReq struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Difficulty  Difficulty `json:"difficulty"`
	Duration    int        `json:"duration"`
	Questions   []struct {
		Text    string   `json:"text"`
		Options []string `json:"options"`
		Correct int      `json:"correct"`
	} `json:"questions"`
}

// CreateQuiz replays the submitted draft through an authoring session
// so the same validation applies no matter which shell drives it.
func CreateQuiz(repo *QuizRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateQuizReq
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
			return
		}
		if len(req.Questions) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "at least one question is required"})
			return
		}

		session := NewAuthoringSession(repo)
		session.SetMetadata(req.Title, req.Description, req.Difficulty, req.Duration)
		for i, q := range req.Questions {
			if i > 0 {
				session.AddQuestion()
			}
			if err := session.UpdateQuestionText(i, q.Text); err != nil {
				writeError(c, err)
				return
			}
			for oi, opt := range q.Options {
				if err := session.UpdateOption(i, oi, opt); err != nil {
					writeError(c, err)
					return
				}
			}
			if err := session.SetCorrectIndex(i, q.Correct); err != nil {
				writeError(c, err)
				return
			}
		}

		quiz, err := session.Save()
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, summarize(quiz))
	}
}

func DeleteQuiz(repo *QuizRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := repo.Delete(c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		// Builtin and unknown ids fall through here too: deletion of
		// the shipped catalog is silently ignored.
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}

/*** Attempts ***/

type StartAttemptReq struct {
	QuizID string `json:"quizId"`
}

func StartAttempt(repo *QuizRepository, sessions *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StartAttemptReq
		if err := c.BindJSON(&req); err != nil || req.QuizID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quizId required"})
			return
		}
		quiz, ok := repo.Get(req.QuizID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "quiz not found"})
			return
		}
		id, engine, err := sessions.StartAttempt(quiz)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"attemptId":   id,
			"title":       quiz.Title,
			"durationSec": quiz.Duration * 60,
			"questions":   attemptQuestions(engine.Quiz()),
		})
	}
}

func GetAttempt(sessions *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		engine, ok := sessions.Attempt(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "attempt not found"})
			return
		}
		c.JSON(http.StatusOK, engine.Snapshot())
	}
}

type AnswerReq struct {
	Question int `json:"question"`
	Option   int `json:"option"`
}

func AnswerAttempt(sessions *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		engine, ok := sessions.Attempt(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "attempt not found"})
			return
		}
		var req AnswerReq
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
			return
		}
		if err := engine.SelectAnswer(req.Question, req.Option); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"saved": true})
	}
}

type FlagReq struct {
	Question int `json:"question"`
}

func FlagAttempt(sessions *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		engine, ok := sessions.Attempt(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "attempt not found"})
			return
		}
		var req FlagReq
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
			return
		}
		if err := engine.ToggleFlag(req.Question); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, engine.Snapshot())
	}
}

type NavigateReq struct {
	Action   string `json:"action"` // next | previous | goto
	Question int    `json:"question"`
}

func NavigateAttempt(sessions *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		engine, ok := sessions.Attempt(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "attempt not found"})
			return
		}
		var req NavigateReq
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
			return
		}
		switch req.Action {
		case "next":
			engine.Next()
		case "previous":
			engine.Previous()
		case "goto":
			engine.GoTo(req.Question)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown action"})
			return
		}
		c.JSON(http.StatusOK, engine.Snapshot())
	}
}

func SubmitAttempt(sessions *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		engine, ok := sessions.Attempt(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "attempt not found"})
			return
		}
		result, err := engine.Submit()
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, BuildReview(result, engine.Quiz()))
	}
}

func AttemptResult(sessions *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		engine, ok := sessions.Attempt(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "attempt not found"})
			return
		}
		result, ok := engine.Result()
		if !ok {
			c.JSON(http.StatusConflict, gin.H{"error": "attempt not submitted"})
			return
		}
		c.JSON(http.StatusOK, BuildReview(result, engine.Quiz()))
	}
}

// RetakeAttempt discards the previous attempt entirely and starts a
// fresh engine on the same quiz.
func RetakeAttempt(sessions *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		engine, ok := sessions.Attempt(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "attempt not found"})
			return
		}
		quiz := engine.Quiz()
		sessions.EndAttempt(c.Param("id"))
		id, fresh, err := sessions.StartAttempt(quiz)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"attemptId":   id,
			"title":       quiz.Title,
			"durationSec": quiz.Duration * 60,
			"questions":   attemptQuestions(fresh.Quiz()),
		})
	}
}

func EndAttempt(sessions *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessions.EndAttempt(c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"ended": true})
	}
}

/*** Flashcards ***/

type StartDeckReq struct {
	QuizID string `json:"quizId"`
}

func StartFlashcards(repo *QuizRepository, sessions *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StartDeckReq
		if err := c.BindJSON(&req); err != nil || req.QuizID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quizId required"})
			return
		}
		quiz, ok := repo.Get(req.QuizID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "quiz not found"})
			return
		}
		id, deck, err := sessions.StartDeck(quiz)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"deckId": id,
			"title":  quiz.Title,
			"card":   deck.Current(),
		})
	}
}

func GetCard(sessions *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		deck, ok := sessions.Deck(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "deck not found"})
			return
		}
		c.JSON(http.StatusOK, deck.Current())
	}
}

func FlipCard(sessions *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		deck, ok := sessions.Deck(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "deck not found"})
			return
		}
		deck.Flip()
		c.JSON(http.StatusOK, deck.Current())
	}
}

type CardNavigateReq struct {
	Action string `json:"action"` // next | previous | goto
	Card   int    `json:"card"`
}

func NavigateCard(sessions *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		deck, ok := sessions.Deck(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "deck not found"})
			return
		}
		var req CardNavigateReq
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
			return
		}
		switch req.Action {
		case "next":
			deck.Next()
		case "previous":
			deck.Previous()
		case "goto":
			deck.GoTo(req.Card)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown action"})
			return
		}
		c.JSON(http.StatusOK, deck.Current())
	}
}

type CardFlagReq struct {
	Card int `json:"card"`
}

func FlagCard(sessions *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		deck, ok := sessions.Deck(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "deck not found"})
			return
		}
		var req CardFlagReq
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
			return
		}
		if err := deck.ToggleFlag(req.Card); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, deck.Current())
	}
}

type CardStatusReq struct {
	Card   int    `json:"card"`
	Status string `json:"status"` // known | review
}

func MarkCard(sessions *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		deck, ok := sessions.Deck(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "deck not found"})
			return
		}
		var req CardStatusReq
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
			return
		}
		if err := deck.MarkStatus(req.Card, req.Status); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, deck.Current())
	}
}

func EndDeck(sessions *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessions.EndDeck(c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"ended": true})
	}
}
