package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/quizboard-server/internal/model"
)

// QuizService mocks handler.QuizService.
type QuizService struct {
	mock.Mock
}

// NewQuizService creates a QuizService whose expectations are asserted on cleanup.
func NewQuizService(t interface {
	mock.TestingT
	Cleanup(func())
}) *QuizService {
	m := &QuizService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *QuizService) Submit(ctx context.Context, submission model.Submission) (model.QuizResult, error) {
	args := m.Called(ctx, submission)
	return args.Get(0).(model.QuizResult), args.Error(1)
}

func (m *QuizService) TopScores(ctx context.Context) ([]model.QuizResult, error) {
	return m.results(m.Called(ctx))
}

func (m *QuizService) RecentResults(ctx context.Context) ([]model.QuizResult, error) {
	return m.results(m.Called(ctx))
}

func (m *QuizService) Podium(ctx context.Context) ([]model.QuizResult, error) {
	return m.results(m.Called(ctx))
}

func (m *QuizService) results(args mock.Arguments) ([]model.QuizResult, error) {
	res, _ := args.Get(0).([]model.QuizResult)
	return res, args.Error(1)
}

// UserService mocks handler.UserService.
type UserService struct {
	mock.Mock
}

// NewUserService creates a UserService whose expectations are asserted on cleanup.
func NewUserService(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserService {
	m := &UserService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *UserService) GetAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *UserService) Create(ctx context.Context, payload model.UserPayload) (model.User, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserService) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserService) Update(ctx context.Context, id uuid.UUID, patch model.UserPayload) (model.User, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// SnapshotService mocks handler.SnapshotService.
type SnapshotService struct {
	mock.Mock
}

func (m *SnapshotService) Export(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
