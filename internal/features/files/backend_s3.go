package files

import (
	"context"
	"fmt"
	"io"

	"chathub-backend/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Backend stores attachments in any S3-compatible object store.
type S3Backend struct {
	client *minio.Client
	bucket string
}

func NewS3Backend() (*S3Backend, error) {
	env := config.GetEnv()

	client, err := minio.New(env.S3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(env.S3AccessKey, env.S3SecretKey, ""),
		Secure: env.S3UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 client: %w", err)
	}

	return &S3Backend{client: client, bucket: env.S3Bucket}, nil
}

func (b *S3Backend) SaveFile(
	ctx context.Context,
	fileID uuid.UUID,
	file io.Reader,
	size int64,
) error {
	_, err := b.client.PutObject(
		ctx,
		b.bucket,
		fileID.String(),
		file,
		size,
		minio.PutObjectOptions{},
	)
	if err != nil {
		return fmt.Errorf("failed to upload file to s3: %w", err)
	}

	return nil
}

func (b *S3Backend) GetFile(
	ctx context.Context,
	fileID uuid.UUID,
) (io.ReadCloser, error) {
	object, err := b.client.GetObject(ctx, b.bucket, fileID.String(), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get file from s3: %w", err)
	}

	return object, nil
}

func (b *S3Backend) DeleteFile(ctx context.Context, fileID uuid.UUID) error {
	err := b.client.RemoveObject(ctx, b.bucket, fileID.String(), minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete file from s3: %w", err)
	}

	return nil
}
