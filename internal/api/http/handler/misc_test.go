package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/quizboard-server/internal/mocks"
	"github.com/dtroode/quizboard-server/internal/testutil"
)

func TestHealth(t *testing.T) {
	t.Parallel()

	newEngine := func(h *Health) *gin.Engine {
		engine := gin.New()
		engine.GET("/", h.Root)
		engine.GET("/healthz", h.Ready)
		return engine
	}

	t.Run("root banner", func(t *testing.T) {
		t.Parallel()
		rec := perform(newEngine(NewHealth(nil, testutil.MakeNoopLogger())), http.MethodGet, "/", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "quiz backend running", rec.Body.String())
	})

	t.Run("ready without pinger", func(t *testing.T) {
		t.Parallel()
		rec := perform(newEngine(NewHealth(nil, testutil.MakeNoopLogger())), http.MethodGet, "/healthz", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("ready with healthy database", func(t *testing.T) {
		t.Parallel()
		p := &mocks.Pinger{}
		p.On("Ping", mock.Anything).Return(nil)
		rec := perform(newEngine(NewHealth(p, testutil.MakeNoopLogger())), http.MethodGet, "/healthz", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		p.AssertExpectations(t)
	})

	t.Run("database unreachable", func(t *testing.T) {
		t.Parallel()
		p := &mocks.Pinger{}
		p.On("Ping", mock.Anything).Return(errors.New("dial tcp: refused"))
		rec := perform(newEngine(NewHealth(p, testutil.MakeNoopLogger())), http.MethodGet, "/healthz", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"status":"unavailable"}`, rec.Body.String())
	})
}

func TestSnapshot_Create(t *testing.T) {
	t.Parallel()

	newEngine := func(svc SnapshotService) *gin.Engine {
		h := NewSnapshot(svc, testutil.MakeNoopLogger())
		engine := gin.New()
		engine.POST("/quiz/snapshots", h.Create)
		return engine
	}

	t.Run("exported", func(t *testing.T) {
		t.Parallel()
		svc := &mocks.SnapshotService{}
		svc.On("Export", mock.Anything).Return("snapshots/x.json", nil)
		rec := perform(newEngine(svc), http.MethodPost, "/quiz/snapshots", "")
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"key":"snapshots/x.json"}`, rec.Body.String())
	})

	t.Run("upload failure", func(t *testing.T) {
		t.Parallel()
		svc := &mocks.SnapshotService{}
		svc.On("Export", mock.Anything).Return("", errors.New("bucket gone"))
		rec := perform(newEngine(svc), http.MethodPost, "/quiz/snapshots", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
