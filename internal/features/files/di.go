package files

import (
	"os"
	"sync"

	"chathub-backend/internal/config"
	"chathub-backend/internal/features/audit_logs"
	"chathub-backend/internal/features/permissions"
	workspaces_repositories "chathub-backend/internal/features/workspaces/repositories"
	"chathub-backend/internal/util/logger"
)

var attachmentRepository = &AttachmentRepository{}

var (
	fileService     *FileService
	fileController  *FileController
	initServiceOnce sync.Once
)

func GetFileService() *FileService {
	initServiceOnce.Do(initService)
	return fileService
}

func GetFileController() *FileController {
	initServiceOnce.Do(initService)
	return fileController
}

// Backend selection is config-driven and fails fast: a misconfigured blob
// store should stop startup, not surface on first upload.
func initService() {
	log := logger.GetLogger()

	var backend BlobBackend
	var err error

	switch config.GetEnv().FileStorageType {
	case "s3":
		backend, err = NewS3Backend()
	case "azure":
		backend, err = NewAzureBackend()
	default:
		backend = NewLocalBackend()
	}

	if err != nil {
		log.Error("failed to initialize file storage backend", "error", err)
		os.Exit(1)
	}

	fileService = &FileService{
		attachmentRepository,
		workspaces_repositories.GetWorkspaceRepository(),
		permissions.GetPermissionService(),
		audit_logs.GetAuditLogService(),
		backend,
	}

	fileController = &FileController{fileService}
}
