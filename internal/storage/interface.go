package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

var (
	ErrInvalidKey   = errors.New("invalid storage key")
	ErrFileNotFound = errors.New("file not found")
)

// Storage is the backend holding installment receipts
type Storage interface {
	// GenerateUploadURL returns a URL accepting a single PUT of the file at key
	GenerateUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error)

	// GenerateDownloadURL returns a URL serving the file at key
	GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error)

	// FileExists checks if a file exists and returns its size
	FileExists(ctx context.Context, key string) (exists bool, size int64, err error)

	DeleteFile(ctx context.Context, key string) error

	SaveFile(key string, reader io.Reader) error

	ReadFile(key string) (io.ReadCloser, error)
}

// TokenIssuer signs short-lived transfer tokens bound to a storage key
type TokenIssuer interface {
	GenerateTransferToken(key string, ttl time.Duration) (string, error)
}
