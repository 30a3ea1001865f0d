// Package dao provides a uniform CRUD wrapper over a model.Repository so new
// resource types only supply their schema.
package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/quizboard-server/internal/logger"
	"github.com/dtroode/quizboard-server/internal/model"
)

// Schema carries everything entity-specific: construction from a payload,
// partial merge, constraint checks and identity.
type Schema[T, P any] interface {
	New(payload P, now time.Time) T
	Merge(current T, patch P, now time.Time) T
	Validate(entity T) error
	ID(entity T) uuid.UUID
}

// DAO exposes create/read/update/delete for one resource type.
type DAO[T, P any] struct {
	name   string
	repo   model.Repository[T]
	schema Schema[T, P]
	logger *logger.Logger
	now    func() time.Time
}

// New creates a DAO for the resource called name.
func New[T, P any](name string, repo model.Repository[T], schema Schema[T, P], logger *logger.Logger) *DAO[T, P] {
	return &DAO[T, P]{
		name:   name,
		repo:   repo,
		schema: schema,
		logger: logger.With("resource", name),
		now:    time.Now,
	}
}

// GetAll returns every stored entity.
func (d *DAO[T, P]) GetAll(ctx context.Context) ([]T, error) {
	items, err := d.repo.FindAll(ctx)
	if err != nil {
		return nil, d.storageError("list "+d.name, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Create validates and persists a new entity built from payload.
func (d *DAO[T, P]) Create(ctx context.Context, payload P) (T, error) {
	var zero T

	entity := d.schema.New(payload, d.now())
	if err := d.schema.Validate(entity); err != nil {
		return zero, err
	}

	saved, err := d.repo.Insert(ctx, entity)
	if err != nil {
		return zero, d.storageError("create "+d.name, err)
	}

	d.logger.Debug("resource created", "id", d.schema.ID(saved))
	return saved, nil
}

// GetByID returns the entity with id or model.ErrNotFound.
func (d *DAO[T, P]) GetByID(ctx context.Context, id uuid.UUID) (T, error) {
	var zero T

	entity, err := d.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return zero, model.ErrNotFound
		}
		return zero, d.storageError("get "+d.name, err)
	}
	return entity, nil
}

// Update merges patch into the stored entity. Fields absent from patch keep
// their values.
func (d *DAO[T, P]) Update(ctx context.Context, id uuid.UUID, patch P) (T, error) {
	current, err := d.GetByID(ctx, id)
	if err != nil {
		var zero T
		return zero, err
	}

	merged := d.schema.Merge(current, patch, d.now())
	if err := d.schema.Validate(merged); err != nil {
		var zero T
		return zero, err
	}

	saved, err := d.repo.UpdateByID(ctx, id, merged)
	if err != nil {
		var zero T
		if errors.Is(err, model.ErrNotFound) {
			return zero, model.ErrNotFound
		}
		return zero, d.storageError("update "+d.name, err)
	}

	d.logger.Debug("resource updated", "id", id)
	return saved, nil
}

// Delete removes the entity. Deleting an absent id, including one already
// deleted, yields model.ErrNotFound.
func (d *DAO[T, P]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := d.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return d.storageError("delete "+d.name, err)
	}

	d.logger.Debug("resource deleted", "id", id)
	return nil
}

func (d *DAO[T, P]) storageError(op string, err error) error {
	d.logger.Error("storage operation failed", "op", op, "error", err)
	return model.StorageError(op, err)
}
