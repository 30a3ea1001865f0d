// Package mocks contains testify mocks of the model interfaces.
package mocks

import (
	"context"
	"io"
	"net"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/quizboard-server/internal/model"
)

// ResultStore mocks model.ResultStore.
type ResultStore struct {
	mock.Mock
}

func (m *ResultStore) Insert(ctx context.Context, result model.QuizResult) (model.QuizResult, error) {
	args := m.Called(ctx, result)
	return args.Get(0).(model.QuizResult), args.Error(1)
}

func (m *ResultStore) FindSorted(ctx context.Context, ordering model.Ordering, limit int) ([]model.QuizResult, error) {
	args := m.Called(ctx, ordering, limit)
	results, _ := args.Get(0).([]model.QuizResult)
	return results, args.Error(1)
}

// UserStore mocks model.UserStore.
type UserStore struct {
	mock.Mock
}

func (m *UserStore) Insert(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) FindAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *UserStore) FindByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) UpdateByID(ctx context.Context, id uuid.UUID, user model.User) (model.User, error) {
	args := m.Called(ctx, id, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) DeleteByID(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Storage mocks model.Storage.
type Storage struct {
	mock.Mock
}

func (m *Storage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, key, reader, size, contentType)
	return args.Error(0)
}

// SecurityLayer mocks model.SecurityLayer.
type SecurityLayer struct {
	mock.Mock
}

func (m *SecurityLayer) Listen(protocol, addr string) (net.Listener, error) {
	args := m.Called(protocol, addr)
	ln, _ := args.Get(0).(net.Listener)
	return ln, args.Error(1)
}

// NewSecurityLayer creates a SecurityLayer whose expectations are asserted on cleanup.
func NewSecurityLayer(t interface {
	mock.TestingT
	Cleanup(func())
}) *SecurityLayer {
	m := &SecurityLayer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Pinger mocks model.Pinger.
type Pinger struct {
	mock.Mock
}

func (m *Pinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
