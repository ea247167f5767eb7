package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalStorage keeps receipts on the local filesystem and hands out
// links to the server's own upload/download endpoints.
type LocalStorage struct {
	baseURL    string // Server URL (e.g., "http://localhost:8000")
	receiptDir string
	tokens     TokenIssuer
}

func NewLocalStorage(baseURL, uploadsDir string, tokens TokenIssuer) (*LocalStorage, error) {
	receiptDir := filepath.Join(uploadsDir, "receipts")
	if err := os.MkdirAll(receiptDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create receipts directory: %w", err)
	}

	return &LocalStorage{
		baseURL:    strings.TrimRight(baseURL, "/"),
		receiptDir: receiptDir,
		tokens:     tokens,
	}, nil
}

// ReceiptKey builds a unique key for an installment receipt, keeping the file extension
func ReceiptKey(financingID, installmentID int32, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%d/%d/%s%s", financingID, installmentID, uuid.NewString(), ext)
}

func (s *LocalStorage) GenerateUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error) {
	return s.signedURL("upload", key, expiresIn)
}

func (s *LocalStorage) GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	return s.signedURL("download", key, expiresIn)
}

func (s *LocalStorage) signedURL(action, key string, expiresIn time.Duration) (string, error) {
	if _, err := cleanKey(key); err != nil {
		return "", err
	}
	token, err := s.tokens.GenerateTransferToken(key, expiresIn)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", action, err)
	}
	return fmt.Sprintf("%s/api/v1/%s/%s?key=%s", s.baseURL, action, token, url.QueryEscape(key)), nil
}

func (s *LocalStorage) FileExists(ctx context.Context, key string) (bool, int64, error) {
	fullPath, err := s.localPath(key)
	if err != nil {
		return false, 0, err
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, 0, nil
		}
		return false, 0, err
	}
	return true, info.Size(), nil
}

func (s *LocalStorage) DeleteFile(ctx context.Context, key string) error {
	fullPath, err := s.localPath(key)
	if err != nil {
		return err
	}

	err = os.Remove(fullPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalStorage) SaveFile(key string, reader io.Reader) error {
	fullPath, err := s.localPath(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func (s *LocalStorage) ReadFile(key string) (io.ReadCloser, error) {
	fullPath, err := s.localPath(key)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

func (s *LocalStorage) localPath(key string) (string, error) {
	cleaned, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.receiptDir, filepath.FromSlash(cleaned)), nil
}

// cleanKey rejects keys that would escape the storage root
func cleanKey(key string) (string, error) {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, `\`) {
		return "", ErrInvalidKey
	}
	cleaned := path.Clean(key)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", ErrInvalidKey
	}
	return cleaned, nil
}
