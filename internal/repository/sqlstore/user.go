package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/quizboard-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) Insert(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (id, display_name, email, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, display_name, email, created_at, updated_at`

	var saved model.User
	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.DisplayName, user.Email, user.CreatedAt, user.UpdatedAt,
	).Scan(&saved.ID, &saved.DisplayName, &saved.Email, &saved.CreatedAt, &saved.UpdatedAt)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return saved, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]model.User, error) {
	query := `SELECT id, display_name, email, created_at, updated_at
			  FROM users ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.DisplayName, &u.Email, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `SELECT id, display_name, email, created_at, updated_at
			  FROM users WHERE id = $1`

	var u model.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.DisplayName, &u.Email, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return u, nil
}

func (r *UserRepository) UpdateByID(ctx context.Context, id uuid.UUID, user model.User) (model.User, error) {
	query := `UPDATE users SET display_name = $1, email = $2, updated_at = $3
			  WHERE id = $4
			  RETURNING id, display_name, email, created_at, updated_at`

	var saved model.User
	err := r.db.QueryRowContext(ctx, query,
		user.DisplayName, user.Email, user.UpdatedAt, id,
	).Scan(&saved.ID, &saved.DisplayName, &saved.Email, &saved.CreatedAt, &saved.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return saved, nil
}

func (r *UserRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM users WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}
