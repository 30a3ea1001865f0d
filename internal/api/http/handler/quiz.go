package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/quizboard-server/internal/logger"
	"github.com/dtroode/quizboard-server/internal/model"
)

// QuizService defines quiz submission and leaderboard operations.
type QuizService interface {
	Submit(ctx context.Context, submission model.Submission) (model.QuizResult, error)
	TopScores(ctx context.Context) ([]model.QuizResult, error)
	RecentResults(ctx context.Context) ([]model.QuizResult, error)
	Podium(ctx context.Context) ([]model.QuizResult, error)
}

// Quiz handles the /quiz endpoints.
type Quiz struct {
	quizService QuizService
	logger      *logger.Logger
}

// NewQuiz creates a new Quiz handler.
func NewQuiz(quizService QuizService, logger *logger.Logger) *Quiz {
	return &Quiz{
		quizService: quizService,
		logger:      logger,
	}
}

// SaveScore records a quiz attempt.
func (h *Quiz) SaveScore(c *gin.Context) {
	var submission model.Submission
	if err := c.ShouldBindJSON(&submission); err != nil {
		h.logger.Debug("Quiz handler: malformed body", "error", err)
		c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid request body"})
		return
	}

	if _, err := h.quizService.Submit(c.Request.Context(), submission); err != nil {
		c.JSON(handleError(err))
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "score saved"})
}

// TopScores returns the top 10 board.
func (h *Quiz) TopScores(c *gin.Context) {
	h.board(c, h.quizService.TopScores)
}

// RecentResults returns the 50 most recent attempts.
func (h *Quiz) RecentResults(c *gin.Context) {
	h.board(c, h.quizService.RecentResults)
}

// Podium returns the top 3 board.
func (h *Quiz) Podium(c *gin.Context) {
	h.board(c, h.quizService.Podium)
}

func (h *Quiz) board(c *gin.Context, load func(context.Context) ([]model.QuizResult, error)) {
	results, err := load(c.Request.Context())
	if err != nil {
		c.JSON(handleError(err))
		return
	}
	c.JSON(http.StatusOK, results)
}
