package users_interfaces

import (
	"github.com/google/uuid"
)

type AuditLogWriter interface {
	WriteAuditLog(message string, userID *uuid.UUID, workspaceID *uuid.UUID)
}

// UserSignUpListener is notified after a user completes registration.
// The workspaces feature uses it to provision the user's home workspace.
type UserSignUpListener interface {
	OnUserSignUp(userID uuid.UUID, userName string) error
}
