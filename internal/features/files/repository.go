package files

import (
	"time"

	"chathub-backend/internal/storage"

	"github.com/google/uuid"
)

type AttachmentRepository struct{}

func (r *AttachmentRepository) CreateAttachment(attachment *Attachment) error {
	if attachment.ID == uuid.Nil {
		attachment.ID = uuid.New()
	}

	if attachment.CreatedAt.IsZero() {
		attachment.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(attachment).Error
}

func (r *AttachmentRepository) GetAttachmentByID(attachmentID uuid.UUID) (*Attachment, error) {
	var attachment Attachment

	if err := storage.GetDb().Where("id = ?", attachmentID).First(&attachment).Error; err != nil {
		return nil, err
	}

	return &attachment, nil
}

func (r *AttachmentRepository) GetWorkspaceAttachments(
	workspaceID uuid.UUID,
) ([]*Attachment, error) {
	var attachments []*Attachment

	err := storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Order("created_at DESC").
		Find(&attachments).Error

	return attachments, err
}

func (r *AttachmentRepository) DeleteAttachment(attachmentID uuid.UUID) error {
	return storage.GetDb().Delete(&Attachment{}, attachmentID).Error
}
