package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dtroode/quizboard-server/internal/logger"
	"github.com/dtroode/quizboard-server/internal/model"
)

// Boards is the read side of Quiz used for snapshots.
type Boards interface {
	TopScores(ctx context.Context) ([]model.QuizResult, error)
	RecentResults(ctx context.Context) ([]model.QuizResult, error)
	Podium(ctx context.Context) ([]model.QuizResult, error)
}

// LeaderboardSnapshot is the archived form of all boards at one instant.
type LeaderboardSnapshot struct {
	TakenAt   time.Time          `json:"takenAt"`
	TopScores []model.QuizResult `json:"topScores"`
	Podium    []model.QuizResult `json:"podium"`
	Recent    []model.QuizResult `json:"recent"`
}

// Snapshot exports the leaderboards to object storage.
type Snapshot struct {
	boards  Boards
	storage model.Storage
	logger  *logger.Logger
	now     func() time.Time
}

func NewSnapshot(boards Boards, storage model.Storage, logger *logger.Logger) *Snapshot {
	return &Snapshot{
		boards:  boards,
		storage: storage,
		logger:  logger,
		now:     time.Now,
	}
}

// Export uploads the current boards as JSON and returns the object key.
func (s *Snapshot) Export(ctx context.Context) (string, error) {
	snap := LeaderboardSnapshot{TakenAt: s.now().UTC()}

	var err error
	if snap.TopScores, err = s.boards.TopScores(ctx); err != nil {
		return "", err
	}
	if snap.Podium, err = s.boards.Podium(ctx); err != nil {
		return "", err
	}
	if snap.Recent, err = s.boards.RecentResults(ctx); err != nil {
		return "", err
	}

	body, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	key := "snapshots/" + snap.TakenAt.Format("20060102T150405.000000000Z") + ".json"
	if err := s.storage.Upload(ctx, key, bytes.NewReader(body), int64(len(body)), "application/json"); err != nil {
		s.logger.Error("Snapshot service: upload failed", "key", key, "error", err)
		return "", model.StorageError("upload snapshot", err)
	}

	s.logger.Info("Snapshot service: snapshot exported", "key", key, "bytes", len(body))
	return key, nil
}
