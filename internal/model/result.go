package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Leaderboard sizes.
const (
	TopScoresLimit     = 10
	RecentResultsLimit = 50
	PodiumLimit        = 3
)

// ResultStore persists quiz results. It has no update or delete path.
type ResultStore interface {
	Insert(ctx context.Context, result QuizResult) (QuizResult, error)
	FindSorted(ctx context.Context, ordering Ordering, limit int) ([]QuizResult, error)
}

// QuizResult is a single recorded quiz attempt.
type QuizResult struct {
	ID             uuid.UUID `json:"id"`
	DisplayName    *string   `json:"displayName"`
	Email          string    `json:"email"`
	Score          float64   `json:"score"`
	TotalQuestions float64   `json:"totalQuestions"`
	Date           time.Time `json:"date"`
}

// Submission is a quiz attempt as sent by a client. Pointer fields distinguish
// an absent value from a zero one. Clients cannot set the attempt date.
type Submission struct {
	DisplayName    *string  `json:"displayName"`
	Email          string   `json:"email"`
	Score          *float64 `json:"score"`
	TotalQuestions *float64 `json:"totalQuestions"`
}

// ValidateSubmission checks required fields in order and reports the first
// violation. A zero score is valid; zero total questions is not.
func ValidateSubmission(s Submission) error {
	if s.Email == "" {
		return &FieldError{Kind: ErrInvalidSubmission, Field: "email", Reason: "is required"}
	}
	if s.Score == nil {
		return &FieldError{Kind: ErrInvalidSubmission, Field: "score", Reason: "is required"}
	}
	if s.TotalQuestions == nil || *s.TotalQuestions == 0 {
		return &FieldError{Kind: ErrInvalidSubmission, Field: "totalQuestions", Reason: "must be non-zero"}
	}
	return nil
}

// NewQuizResult builds a result from a validated submission, stamped with now.
func NewQuizResult(s Submission, now time.Time) QuizResult {
	return QuizResult{
		ID:             uuid.New(),
		DisplayName:    s.DisplayName,
		Email:          s.Email,
		Score:          *s.Score,
		TotalQuestions: *s.TotalQuestions,
		Date:           now.UTC(),
	}
}
