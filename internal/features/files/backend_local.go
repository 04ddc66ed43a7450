package files

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"chathub-backend/internal/config"
	files_utils "chathub-backend/internal/util/files"

	"github.com/google/uuid"
)

// LocalBackend writes attachments under the data folder.
type LocalBackend struct {
	baseDir string
}

func NewLocalBackend() *LocalBackend {
	return &LocalBackend{baseDir: config.GetEnv().DataFolder}
}

func (b *LocalBackend) SaveFile(
	ctx context.Context,
	fileID uuid.UUID,
	file io.Reader,
	size int64,
) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := files_utils.EnsureDirectories([]string{b.baseDir}); err != nil {
		return fmt.Errorf("failed to ensure data folder: %w", err)
	}

	target, err := os.Create(b.filePath(fileID))
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		_ = target.Close()
	}()

	if _, err := io.Copy(target, file); err != nil {
		_ = os.Remove(b.filePath(fileID))
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

func (b *LocalBackend) GetFile(
	ctx context.Context,
	fileID uuid.UUID,
) (io.ReadCloser, error) {
	file, err := os.Open(b.filePath(fileID))
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}

func (b *LocalBackend) DeleteFile(ctx context.Context, fileID uuid.UUID) error {
	if err := os.Remove(b.filePath(fileID)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

func (b *LocalBackend) filePath(fileID uuid.UUID) string {
	return filepath.Join(b.baseDir, fileID.String())
}
