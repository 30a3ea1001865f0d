package sqlstore

import (
	"context"
	"fmt"

	"github.com/dtroode/quizboard-server/internal/model"
)

var _ model.ResultStore = (*ResultRepository)(nil)

type ResultRepository struct {
	db *Connection
}

func NewResultRepository(db *Connection) *ResultRepository {
	return &ResultRepository{
		db: db,
	}
}

func (r *ResultRepository) Insert(ctx context.Context, result model.QuizResult) (model.QuizResult, error) {
	query := `INSERT INTO quiz_results (id, display_name, email, score, total_questions, submitted_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, display_name, email, score, total_questions, submitted_at`

	var saved model.QuizResult
	err := r.db.QueryRowContext(ctx, query,
		result.ID, result.DisplayName, result.Email, result.Score, result.TotalQuestions, result.Date,
	).Scan(
		&saved.ID, &saved.DisplayName, &saved.Email, &saved.Score, &saved.TotalQuestions, &saved.Date,
	)
	if err != nil {
		return model.QuizResult{}, fmt.Errorf("failed to insert quiz result: %w", err)
	}

	return saved, nil
}

func (r *ResultRepository) FindSorted(ctx context.Context, ordering model.Ordering, limit int) ([]model.QuizResult, error) {
	order, err := orderBy(ordering)
	if err != nil {
		return nil, err
	}

	query := `SELECT id, display_name, email, score, total_questions, submitted_at
			  FROM quiz_results ` + order + ` LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query quiz results: %w", err)
	}
	defer rows.Close()

	results := make([]model.QuizResult, 0)
	for rows.Next() {
		var res model.QuizResult
		if err := rows.Scan(&res.ID, &res.DisplayName, &res.Email, &res.Score, &res.TotalQuestions, &res.Date); err != nil {
			return nil, fmt.Errorf("failed to scan quiz result: %w", err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate quiz results: %w", err)
	}

	return results, nil
}
