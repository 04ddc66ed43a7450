package teams

import (
	"time"

	"github.com/google/uuid"
)

type AddMemberStatus string

const (
	AddStatusInvited AddMemberStatus = "INVITED"
	AddStatusAdded   AddMemberStatus = "ADDED"
)

type CreateTeamRequestDTO struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

type AddMemberRequestDTO struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role"  binding:"required,min=1,max=64"`
}

type AddMemberResponseDTO struct {
	Status AddMemberStatus `json:"status"`
}

type TeamMemberResponseDTO struct {
	ID        uuid.UUID `json:"id"        gorm:"column:id"`
	UserID    uuid.UUID `json:"userId"    gorm:"column:user_id"`
	Email     string    `json:"email"     gorm:"column:email"`
	Name      string    `json:"name"      gorm:"column:name"`
	Role      string    `json:"role"      gorm:"column:role"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

type GetMembersResponseDTO struct {
	Members []TeamMemberResponseDTO `json:"members"`
}
