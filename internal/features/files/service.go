package files

import (
	"context"
	"errors"
	"fmt"
	"io"

	"chathub-backend/internal/features/audit_logs"
	"chathub-backend/internal/features/permissions"
	users_models "chathub-backend/internal/features/users/models"
	workspaces_repositories "chathub-backend/internal/features/workspaces/repositories"

	"github.com/google/uuid"
)

type FileService struct {
	attachmentRepository *AttachmentRepository
	workspaceRepository  *workspaces_repositories.WorkspaceRepository
	permissionService    *permissions.PermissionService
	auditLogService      *audit_logs.AuditLogService
	blobBackend          BlobBackend
}

func (s *FileService) UploadFile(
	ctx context.Context,
	workspaceID uuid.UUID,
	fileName string,
	contentType string,
	size int64,
	file io.Reader,
	user *users_models.User,
) (*Attachment, error) {
	if err := s.checkWritePermission(workspaceID, user); err != nil {
		return nil, err
	}

	attachment := &Attachment{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		UserID:      user.ID,
		FileName:    fileName,
		ContentType: contentType,
		SizeBytes:   size,
	}

	if err := s.blobBackend.SaveFile(ctx, attachment.ID, file, size); err != nil {
		return nil, err
	}

	if err := s.attachmentRepository.CreateAttachment(attachment); err != nil {
		// Orphaned blob; remove it so storage does not leak.
		_ = s.blobBackend.DeleteFile(ctx, attachment.ID)
		return nil, fmt.Errorf("failed to save attachment: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("File uploaded: %s", fileName),
		&user.ID,
		&workspaceID,
	)

	return attachment, nil
}

func (s *FileService) DownloadFile(
	ctx context.Context,
	attachmentID uuid.UUID,
	user *users_models.User,
) (*Attachment, io.ReadCloser, error) {
	attachment, err := s.attachmentRepository.GetAttachmentByID(attachmentID)
	if err != nil {
		return nil, nil, err
	}

	if err := s.checkReadPermission(attachment.WorkspaceID, user); err != nil {
		return nil, nil, err
	}

	reader, err := s.blobBackend.GetFile(ctx, attachmentID)
	if err != nil {
		return nil, nil, err
	}

	return attachment, reader, nil
}

func (s *FileService) GetWorkspaceAttachments(
	workspaceID uuid.UUID,
	user *users_models.User,
) (*GetAttachmentsResponseDTO, error) {
	if err := s.checkReadPermission(workspaceID, user); err != nil {
		return nil, err
	}

	attachments, err := s.attachmentRepository.GetWorkspaceAttachments(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attachments: %w", err)
	}

	return &GetAttachmentsResponseDTO{Attachments: attachments}, nil
}

func (s *FileService) DeleteFile(
	ctx context.Context,
	attachmentID uuid.UUID,
	user *users_models.User,
) error {
	attachment, err := s.attachmentRepository.GetAttachmentByID(attachmentID)
	if err != nil {
		return err
	}

	if err := s.checkWritePermission(attachment.WorkspaceID, user); err != nil {
		return err
	}

	if err := s.blobBackend.DeleteFile(ctx, attachmentID); err != nil {
		return err
	}

	if err := s.attachmentRepository.DeleteAttachment(attachmentID); err != nil {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("File deleted: %s", attachment.FileName),
		&user.ID,
		&attachment.WorkspaceID,
	)

	return nil
}

func (s *FileService) checkWritePermission(
	workspaceID uuid.UUID,
	user *users_models.User,
) error {
	workspace, err := s.workspaceRepository.GetWorkspaceByID(workspaceID)
	if err != nil {
		return err
	}

	if workspace.OwnerID != user.ID &&
		!s.permissionService.HasPermission(user.ID, workspaceID, permissions.PermissionFilesWrite) {
		return errors.New("insufficient permissions to manage files")
	}

	return nil
}

func (s *FileService) checkReadPermission(
	workspaceID uuid.UUID,
	user *users_models.User,
) error {
	workspace, err := s.workspaceRepository.GetWorkspaceByID(workspaceID)
	if err != nil {
		return err
	}

	if workspace.OwnerID != user.ID &&
		!s.permissionService.HasPermission(user.ID, workspaceID, permissions.PermissionWorkspaceRead) {
		return errors.New("insufficient permissions to view files")
	}

	return nil
}
