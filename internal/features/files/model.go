package files

import (
	"time"

	"github.com/google/uuid"
)

// Attachment is the metadata row for an uploaded file. The bytes live in
// the configured blob backend, keyed by the attachment id.
type Attachment struct {
	ID          uuid.UUID `json:"id"          gorm:"column:id"`
	WorkspaceID uuid.UUID `json:"workspaceId" gorm:"column:workspace_id"`
	UserID      uuid.UUID `json:"userId"      gorm:"column:user_id"`
	FileName    string    `json:"fileName"    gorm:"column:file_name"`
	ContentType string    `json:"contentType" gorm:"column:content_type"`
	SizeBytes   int64     `json:"sizeBytes"   gorm:"column:size_bytes"`
	CreatedAt   time.Time `json:"createdAt"   gorm:"column:created_at"`
}

func (Attachment) TableName() string {
	return "attachments"
}

type GetAttachmentsResponseDTO struct {
	Attachments []*Attachment `json:"attachments"`
}
