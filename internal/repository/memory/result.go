// Package memory provides in-process stores. They back DATABASE_DRIVER=memory
// and serve as fakes in tests.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/dtroode/quizboard-server/internal/model"
)

var _ model.ResultStore = (*ResultRepository)(nil)

// ResultRepository keeps quiz results in an append-only slice.
type ResultRepository struct {
	mu      sync.RWMutex
	results []model.QuizResult
}

func NewResultRepository() *ResultRepository {
	return &ResultRepository{}
}

func (r *ResultRepository) Insert(ctx context.Context, result model.QuizResult) (model.QuizResult, error) {
	if err := ctx.Err(); err != nil {
		return model.QuizResult{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.results {
		if existing.ID == result.ID {
			return model.QuizResult{}, fmt.Errorf("duplicate quiz result id %s", result.ID)
		}
	}
	r.results = append(r.results, result)
	return result, nil
}

func (r *ResultRepository) FindSorted(ctx context.Context, ordering model.Ordering, limit int) ([]model.QuizResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	sorted := slices.Clone(r.results)
	r.mu.RUnlock()

	slices.SortFunc(sorted, func(a, b model.QuizResult) int {
		switch {
		case ordering.Less(a, b):
			return -1
		case ordering.Less(b, a):
			return 1
		default:
			return 0
		}
	})

	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	if sorted == nil {
		sorted = []model.QuizResult{}
	}
	return sorted, nil
}
