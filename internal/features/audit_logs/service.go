package audit_logs

import (
	"fmt"

	"chathub-backend/internal/util/logger"

	"github.com/google/uuid"
)

const defaultAuditLogsLimit = 100

var log = logger.GetLogger()

type AuditLogService struct {
	auditLogRepository *AuditLogRepository
}

// WriteAuditLog records an event string. Failures are logged and swallowed:
// audit logging must never fail the operation that produced the event.
func (s *AuditLogService) WriteAuditLog(
	message string,
	userID *uuid.UUID,
	workspaceID *uuid.UUID,
) {
	auditLog := &AuditLog{
		UserID:      userID,
		WorkspaceID: workspaceID,
		Message:     message,
	}

	if err := s.auditLogRepository.CreateAuditLog(auditLog); err != nil {
		log.Error("Failed to write audit log", "message", message, "error", err)
	}
}

func (s *AuditLogService) GetWorkspaceAuditLogs(
	workspaceID uuid.UUID,
	request *GetAuditLogsRequest,
) (*GetAuditLogsResponse, error) {
	if request.Limit <= 0 || request.Limit > defaultAuditLogsLimit {
		request.Limit = defaultAuditLogsLimit
	}
	if request.Offset < 0 {
		request.Offset = 0
	}

	logs, total, err := s.auditLogRepository.GetWorkspaceAuditLogs(workspaceID, request)
	if err != nil {
		return nil, fmt.Errorf("failed to get audit logs: %w", err)
	}

	return &GetAuditLogsResponse{
		AuditLogs: logs,
		Total:     total,
		Limit:     request.Limit,
		Offset:    request.Offset,
	}, nil
}
