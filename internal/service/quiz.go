package service

import (
	"context"
	"time"

	"github.com/dtroode/quizboard-server/internal/logger"
	"github.com/dtroode/quizboard-server/internal/model"
)

// Quiz records quiz attempts and answers leaderboard queries.
type Quiz struct {
	resultStore model.ResultStore
	logger      *logger.Logger
	now         func() time.Time
}

func NewQuiz(resultStore model.ResultStore, logger *logger.Logger) *Quiz {
	return &Quiz{
		resultStore: resultStore,
		logger:      logger,
		now:         time.Now,
	}
}

// Submit validates and stores a quiz attempt. Invalid input never reaches the store.
func (s *Quiz) Submit(ctx context.Context, submission model.Submission) (model.QuizResult, error) {
	if err := model.ValidateSubmission(submission); err != nil {
		s.logger.Debug("Quiz service: rejected submission", "error", err)
		return model.QuizResult{}, err
	}

	result, err := s.resultStore.Insert(ctx, model.NewQuizResult(submission, s.now()))
	if err != nil {
		s.logger.Error("Quiz service: failed to save result", "email", submission.Email, "error", err)
		return model.QuizResult{}, model.StorageError("save quiz result", err)
	}

	s.logger.Info("Quiz service: result saved", "id", result.ID, "score", result.Score)
	return result, nil
}

// TopScores returns the ten best results, earliest first among equal scores.
func (s *Quiz) TopScores(ctx context.Context) ([]model.QuizResult, error) {
	return s.board(ctx, "top scores", model.ByTopScore, model.TopScoresLimit)
}

// RecentResults returns the fifty newest results regardless of score.
func (s *Quiz) RecentResults(ctx context.Context) ([]model.QuizResult, error) {
	return s.board(ctx, "recent results", model.ByMostRecent, model.RecentResultsLimit)
}

// Podium returns the top three results.
func (s *Quiz) Podium(ctx context.Context) ([]model.QuizResult, error) {
	return s.board(ctx, "podium", model.ByTopScore, model.PodiumLimit)
}

func (s *Quiz) board(ctx context.Context, name string, ordering model.Ordering, limit int) ([]model.QuizResult, error) {
	results, err := s.resultStore.FindSorted(ctx, ordering, limit)
	if err != nil {
		s.logger.Error("Quiz service: failed to load board", "board", name, "error", err)
		return nil, model.StorageError("load "+name, err)
	}
	if results == nil {
		results = []model.QuizResult{}
	}
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
