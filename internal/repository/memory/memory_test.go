package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/quizboard-server/internal/model"
)

func TestResultRepository_FindSorted(t *testing.T) {
	ctx := context.Background()
	repo := NewResultRepository()

	empty, err := repo.FindSorted(ctx, model.ByTopScore, model.TopScoresLimit)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, score := range []float64{3, 7, 7, 1} {
		_, err := repo.Insert(ctx, model.QuizResult{ID: uuid.New(), Score: score, TotalQuestions: 10, Date: base.Add(time.Duration(i) * time.Minute)})
		require.NoError(t, err)
	}

	podium, err := repo.FindSorted(ctx, model.ByTopScore, model.PodiumLimit)
	require.NoError(t, err)
	require.Len(t, podium, 3)
	assert.Equal(t, 7.0, podium[0].Score)
	assert.Equal(t, base.Add(time.Minute), podium[0].Date)
	assert.Equal(t, base.Add(2*time.Minute), podium[1].Date)
	assert.Equal(t, 3.0, podium[2].Score)
}

func TestResultRepository_ConcurrentInsert(t *testing.T) {
	ctx := context.Background()
	repo := NewResultRepository()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Insert(ctx, model.QuizResult{ID: uuid.New(), TotalQuestions: 1, Date: time.Now()})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	all, err := repo.FindSorted(ctx, model.ByMostRecent, 100)
	require.NoError(t, err)
	assert.Len(t, all, 20)
}

func TestResultRepository_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewResultRepository().FindSorted(ctx, model.ByTopScore, 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestUserRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	now := time.Now()
	u := model.User{ID: uuid.New(), Email: "ann@x.com", CreatedAt: now, UpdatedAt: now}

	_, err := repo.Insert(ctx, u)
	require.NoError(t, err)
	_, err = repo.Insert(ctx, u)
	require.Error(t, err)

	u.Email = "ann@y.com"
	updated, err := repo.UpdateByID(ctx, u.ID, u)
	require.NoError(t, err)
	assert.Equal(t, "ann@y.com", updated.Email)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.DeleteByID(ctx, u.ID))
	require.ErrorIs(t, repo.DeleteByID(ctx, u.ID), model.ErrNotFound)
	_, err = repo.FindByID(ctx, u.ID)
	require.ErrorIs(t, err, model.ErrNotFound)
	_, err = repo.UpdateByID(ctx, u.ID, u)
	require.ErrorIs(t, err, model.ErrNotFound)
}
