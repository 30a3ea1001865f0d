package model

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Repository defines the persistence capabilities of a CRUD resource.
type Repository[T any] interface {
	Insert(ctx context.Context, entity T) (T, error)
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id uuid.UUID) (T, error)
	UpdateByID(ctx context.Context, id uuid.UUID, entity T) (T, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// UserStore defines persistence operations for users.
type UserStore interface {
	Repository[User]
}

// User is a generic user resource.
type User struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"displayName" validate:"max=100"`
	Email       string    `json:"email" validate:"required,email"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UserPayload carries user fields for create and partial update. Nil fields
// are left untouched on update.
type UserPayload struct {
	DisplayName *string `json:"displayName"`
	Email       *string `json:"email"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// UserSchema binds User to the generic DAO.
type UserSchema struct{}

// New builds a user from a create payload.
func (UserSchema) New(p UserPayload, now time.Time) User {
	u := User{
		ID:        uuid.New(),
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}
	return UserSchema{}.Merge(u, p, now)
}

// Merge applies the non-nil payload fields to u.
func (UserSchema) Merge(u User, p UserPayload, now time.Time) User {
	if p.DisplayName != nil {
		u.DisplayName = *p.DisplayName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	u.UpdatedAt = now.UTC()
	return u
}

// Validate checks the user's constraints.
func (UserSchema) Validate(u User) error {
	err := validate.Struct(u)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &FieldError{Kind: ErrValidation, Field: verrs[0].Field(), Reason: "failed " + verrs[0].Tag() + " check"}
	}
	return &FieldError{Kind: ErrValidation, Field: "user", Reason: err.Error()}
}

// ID returns the user's identity.
func (UserSchema) ID(u User) uuid.UUID {
	return u.ID
}
