package audit_logs

import (
	users_services "chathub-backend/internal/features/users/services"
)

var auditLogRepository = &AuditLogRepository{}
var auditLogService = &AuditLogService{
	auditLogRepository,
}

func GetAuditLogService() *AuditLogService {
	return auditLogService
}

func SetupDependencies() {
	users_services.GetUserService().SetAuditLogWriter(auditLogService)
}
