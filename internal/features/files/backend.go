package files

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// BlobBackend stores attachment bytes keyed by attachment id. The backend
// is selected once at startup from FILE_STORAGE_TYPE.
type BlobBackend interface {
	SaveFile(ctx context.Context, fileID uuid.UUID, file io.Reader, size int64) error
	GetFile(ctx context.Context, fileID uuid.UUID) (io.ReadCloser, error)
	DeleteFile(ctx context.Context, fileID uuid.UUID) error
}
