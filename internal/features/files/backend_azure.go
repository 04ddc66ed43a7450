package files

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"chathub-backend/internal/config"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/google/uuid"
)

// AzureBackend stores attachments in an Azure Blob container.
type AzureBackend struct {
	client    *azblob.Client
	container string
}

func NewAzureBackend() (*AzureBackend, error) {
	env := config.GetEnv()

	connectionString := fmt.Sprintf(
		"DefaultEndpointsProtocol=https;AccountName=%s;AccountKey=%s;EndpointSuffix=core.windows.net",
		env.AzureAccountName,
		env.AzureAccountKey,
	)

	client, err := azblob.NewClientFromConnectionString(connectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create azure blob client: %w", err)
	}

	return &AzureBackend{client: client, container: env.AzureContainer}, nil
}

func (b *AzureBackend) SaveFile(
	ctx context.Context,
	fileID uuid.UUID,
	file io.Reader,
	size int64,
) error {
	_, err := b.client.UploadStream(ctx, b.container, fileID.String(), file, nil)
	if err != nil {
		return fmt.Errorf("failed to upload file to azure: %w", err)
	}

	return nil
}

func (b *AzureBackend) GetFile(
	ctx context.Context,
	fileID uuid.UUID,
) (io.ReadCloser, error) {
	response, err := b.client.DownloadStream(ctx, b.container, fileID.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to download file from azure: %w", err)
	}

	return response.Body, nil
}

func (b *AzureBackend) DeleteFile(ctx context.Context, fileID uuid.UUID) error {
	_, err := b.client.DeleteBlob(ctx, b.container, fileID.String(), nil)
	if err != nil {
		// An already deleted blob is not a failure
		var responseErr *azcore.ResponseError
		if errors.As(err, &responseErr) && responseErr.StatusCode == http.StatusNotFound {
			return nil
		}

		return fmt.Errorf("failed to delete file from azure: %w", err)
	}

	return nil
}
