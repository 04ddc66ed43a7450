package audit_logs

import (
	"time"

	"chathub-backend/internal/storage"

	"github.com/google/uuid"
)

type AuditLogRepository struct{}

func (r *AuditLogRepository) CreateAuditLog(auditLog *AuditLog) error {
	if auditLog.ID == uuid.Nil {
		auditLog.ID = uuid.New()
	}

	if auditLog.CreatedAt.IsZero() {
		auditLog.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(auditLog).Error
}

func (r *AuditLogRepository) GetWorkspaceAuditLogs(
	workspaceID uuid.UUID,
	request *GetAuditLogsRequest,
) ([]*AuditLogDTO, int64, error) {
	var total int64

	countQuery := storage.GetDb().
		Model(&AuditLog{}).
		Where("workspace_id = ?", workspaceID)

	if request.BeforeDate != nil {
		countQuery = countQuery.Where("created_at < ?", request.BeforeDate)
	}

	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := storage.GetDb().
		Table("audit_logs al").
		Select("al.id, al.user_id, al.workspace_id, al.message, al.created_at, u.email as user_email, u.name as user_name").
		Joins("LEFT JOIN users u ON al.user_id = u.id").
		Where("al.workspace_id = ?", workspaceID)

	if request.BeforeDate != nil {
		query = query.Where("al.created_at < ?", request.BeforeDate)
	}

	var logs []*AuditLogDTO
	err := query.
		Order("al.created_at DESC").
		Limit(request.Limit).
		Offset(request.Offset).
		Scan(&logs).Error

	return logs, total, err
}
