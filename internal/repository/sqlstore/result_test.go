package sqlstore

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/quizboard-server/database"
	"github.com/dtroode/quizboard-server/internal/model"
)

func newMockConnection(t *testing.T) (*Connection, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &Connection{DB: db, dialect: database.DialectPostgres}, mock
}

var resultColumns = []string{"id", "display_name", "email", "score", "total_questions", "submitted_at"}

func TestNewResultRepository(t *testing.T) {
	db := &Connection{}
	repo := NewResultRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestResultRepository_Insert(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewResultRepository(conn)

	date := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)
	in := model.QuizResult{ID: uuid.New(), Email: "a@x.com", Score: 0, TotalQuestions: 10, Date: date}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO quiz_results")).
		WithArgs(in.ID, nil, "a@x.com", 0.0, 10.0, date).
		WillReturnRows(sqlmock.NewRows(resultColumns).AddRow(in.ID.String(), nil, "a@x.com", 0.0, 10.0, date))

	got, err := repo.Insert(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, in.ID, got.ID)
	assert.Nil(t, got.DisplayName)
	assert.Equal(t, 0.0, got.Score)
	assert.True(t, date.Equal(got.Date))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResultRepository_InsertError(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewResultRepository(conn)

	boom := errors.New("connection refused")
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO quiz_results")).WillReturnError(boom)

	_, err := repo.Insert(context.Background(), model.QuizResult{ID: uuid.New(), Email: "a@x.com", TotalQuestions: 1})
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResultRepository_FindSorted(t *testing.T) {
	tests := []struct {
		name     string
		ordering model.Ordering
		limit    int
		order    string
	}{
		{
			name:     "top score",
			ordering: model.ByTopScore,
			limit:    model.TopScoresLimit,
			order:    "ORDER BY score DESC, submitted_at ASC, id ASC LIMIT $1",
		},
		{
			name:     "most recent",
			ordering: model.ByMostRecent,
			limit:    model.RecentResultsLimit,
			order:    "ORDER BY submitted_at DESC, id ASC LIMIT $1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			repo := NewResultRepository(conn)

			date := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)
			rows := sqlmock.NewRows(resultColumns).
				AddRow(uuid.NewString(), "Ann", "a@x.com", 9.0, 10.0, date).
				AddRow(uuid.NewString(), nil, "b@x.com", 5.0, 10.0, date)
			mock.ExpectQuery(regexp.QuoteMeta(tt.order)).WithArgs(tt.limit).WillReturnRows(rows)

			got, err := repo.FindSorted(context.Background(), tt.ordering, tt.limit)
			require.NoError(t, err)
			require.Len(t, got, 2)
			require.NotNil(t, got[0].DisplayName)
			assert.Equal(t, "Ann", *got[0].DisplayName)
			assert.Nil(t, got[1].DisplayName)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestResultRepository_FindSortedEmpty(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewResultRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta("FROM quiz_results")).WillReturnRows(sqlmock.NewRows(resultColumns))

	got, err := repo.FindSorted(context.Background(), model.ByTopScore, model.PodiumLimit)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestResultRepository_FindSortedUnknownField(t *testing.T) {
	repo := NewResultRepository(&Connection{})

	_, err := repo.FindSorted(context.Background(), model.Ordering{{Field: "email"}}, 1)
	require.Error(t, err)
}
