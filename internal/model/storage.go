package model

import (
	"context"
	"io"
)

// Storage is an object store for exported artifacts.
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
}
