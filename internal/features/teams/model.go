package teams

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// RoleNameOwner is the reserved role string for team creators. Other role
// names are free-form and resolve to workspace-scoped role rows by name.
const RoleNameOwner = "owner"

type Team struct {
	ID        uuid.UUID `json:"id"        gorm:"column:id"`
	Name      string    `json:"name"      gorm:"column:name"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (Team) TableName() string {
	return "teams"
}

// TeamMembership links a user to a team under a role name. The role name is
// a denormalized reference: it is resolved against workspace-scoped role rows
// by exact string equality, not by foreign key.
type TeamMembership struct {
	ID        uuid.UUID `json:"id"        gorm:"column:id"`
	TeamID    uuid.UUID `json:"teamId"    gorm:"column:team_id"`
	UserID    uuid.UUID `json:"userId"    gorm:"column:user_id"`
	Role      string    `json:"role"      gorm:"column:role"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (TeamMembership) TableName() string {
	return "team_members"
}

func (m *TeamMembership) Validate() error {
	if m.TeamID == uuid.Nil {
		return errors.New("team id is required")
	}
	if m.UserID == uuid.Nil {
		return errors.New("user id is required")
	}
	if m.Role == "" {
		return errors.New("role name is required")
	}
	return nil
}
