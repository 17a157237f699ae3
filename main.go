package main

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg := LoadConfig()

	// 1) DB
	db, err := OpenDB(cfg.DBPath)
	if err != nil {
		logger.Fatal("open db", zap.Error(err))
	}
	if err := AutoMigrate(db); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}
	store := NewDocumentStore(db, logger)

	// 2) Builtin catalog (optional seed file overrides the shipped set)
	builtin, err := LoadBuiltinQuizzes(cfg.SeedPath)
	if err != nil {
		logger.Warn("seed file rejected, using shipped catalog", zap.String("path", cfg.SeedPath), zap.Error(err))
		builtin = defaultBuiltinQuizzes()
	}

	// 3) Services
	repo := NewQuizRepository(store, builtin, logger)
	auth := NewAuthService(store)
	notes := NewNotesStore(store)
	tasks := NewTasksStore(store)
	sessions := NewSessionManager()

	// 4) Router
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger))

	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			for _, allowed := range cfg.CORSOrigins {
				if origin == allowed {
					return true
				}
			}
			// allow any http://localhost:PORT during development
			return strings.HasPrefix(origin, "http://localhost:")
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) { c.String(200, "ok") })

	// 5) API routes
	api := r.Group("/api/v1")
	api.Use(WithCurrentUser(auth))
	{
		// Quiz catalog
		api.GET("/quizzes", ListQuizzes(repo))
		api.GET("/quizzes/:id", GetQuiz(repo))
		api.POST("/quizzes", CreateQuiz(repo))
		api.DELETE("/quizzes/:id", DeleteQuiz(repo))

		// Attempts
		api.POST("/attempts", StartAttempt(repo, sessions))
		api.GET("/attempts/:id", GetAttempt(sessions))
		api.POST("/attempts/:id/answer", AnswerAttempt(sessions))
		api.POST("/attempts/:id/flag", FlagAttempt(sessions))
		api.POST("/attempts/:id/navigate", NavigateAttempt(sessions))
		api.POST("/attempts/:id/submit", SubmitAttempt(sessions))
		api.GET("/attempts/:id/result", AttemptResult(sessions))
		api.POST("/attempts/:id/retake", RetakeAttempt(sessions))
		api.DELETE("/attempts/:id", EndAttempt(sessions))

		// Flashcards
		api.POST("/flashcards", StartFlashcards(repo, sessions))
		api.GET("/flashcards/:id", GetCard(sessions))
		api.POST("/flashcards/:id/flip", FlipCard(sessions))
		api.POST("/flashcards/:id/navigate", NavigateCard(sessions))
		api.POST("/flashcards/:id/flag", FlagCard(sessions))
		api.POST("/flashcards/:id/status", MarkCard(sessions))
		api.DELETE("/flashcards/:id", EndDeck(sessions))

		// Notes & tasks
		api.GET("/notes", ListNotes(notes))
		api.POST("/notes", CreateNote(notes))
		api.PUT("/notes/:id", UpdateNote(notes))
		api.DELETE("/notes/:id", DeleteNote(notes))
		api.GET("/tasks", ListTasks(tasks))
		api.POST("/tasks", CreateTask(tasks))
		api.POST("/tasks/:id/toggle", ToggleTask(tasks))
		api.DELETE("/tasks/:id", DeleteTask(tasks))

		// Auth & profile
		api.POST("/auth/register", Register(auth))
		api.POST("/auth/login", Login(auth))
		api.POST("/auth/logout", Logout(auth))
		api.GET("/me", Me(auth))

		// Standings & home counters
		api.GET("/leaderboard", Leaderboard(repo))
		api.GET("/dashboard", Dashboard(repo, notes, tasks))
	}

	// 6) Server
	logger.Info("listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("run", zap.Error(err))
	}
}

// RequestLogger returns a zap-based request logging middleware.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logger.Info("request",
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("method", method),
			zap.String("path", path),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
