package teams

import (
	"time"

	"chathub-backend/internal/storage"

	"github.com/google/uuid"
)

type TeamRepository struct{}

func (r *TeamRepository) CreateTeam(team *Team) error {
	if team.ID == uuid.Nil {
		team.ID = uuid.New()
	}

	if team.CreatedAt.IsZero() {
		team.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(team).Error
}

func (r *TeamRepository) GetTeamByID(teamID uuid.UUID) (*Team, error) {
	var team Team

	if err := storage.GetDb().Where("id = ?", teamID).First(&team).Error; err != nil {
		return nil, err
	}

	return &team, nil
}

func (r *TeamRepository) DeleteTeam(teamID uuid.UUID) error {
	return storage.GetDb().Delete(&Team{}, teamID).Error
}

// GetEmptyTeamIDs returns teams with no members and no workspaces.
// Such teams are garbage and are removed by the cleanup job.
func (r *TeamRepository) GetEmptyTeamIDs() ([]uuid.UUID, error) {
	var teamIDs []uuid.UUID

	err := storage.GetDb().
		Table("teams t").
		Select("t.id").
		Joins("LEFT JOIN team_members tm ON tm.team_id = t.id").
		Joins("LEFT JOIN workspaces w ON w.team_id = t.id").
		Where("tm.id IS NULL AND w.id IS NULL").
		Scan(&teamIDs).Error

	return teamIDs, err
}

type MembershipRepository struct{}

func (r *MembershipRepository) CreateMembership(membership *TeamMembership) error {
	if membership.ID == uuid.Nil {
		membership.ID = uuid.New()
	}

	if membership.CreatedAt.IsZero() {
		membership.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(membership).Error
}

// GetUserMemberships returns all membership rows a user holds in a team.
// A user may hold several role names in the same team; permissions from
// all of them union.
func (r *MembershipRepository) GetUserMemberships(
	teamID, userID uuid.UUID,
) ([]*TeamMembership, error) {
	var memberships []*TeamMembership

	err := storage.GetDb().
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Find(&memberships).Error

	return memberships, err
}

func (r *MembershipRepository) GetTeamMembers(
	teamID uuid.UUID,
) ([]*TeamMemberResponseDTO, error) {
	var members []*TeamMemberResponseDTO

	err := storage.GetDb().
		Table("team_members tm").
		Select("tm.id, tm.user_id, u.email, u.name, tm.role, tm.created_at").
		Joins("JOIN users u ON tm.user_id = u.id").
		Where("tm.team_id = ?", teamID).
		Order("tm.created_at ASC").
		Scan(&members).Error

	return members, err
}

func (r *MembershipRepository) RemoveMember(teamID, userID uuid.UUID) error {
	return storage.GetDb().
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Delete(&TeamMembership{}).Error
}

func (r *MembershipRepository) CountMembersWithRole(
	teamID uuid.UUID,
	role string,
) (int64, error) {
	var count int64

	err := storage.GetDb().
		Model(&TeamMembership{}).
		Where("team_id = ? AND role = ?", teamID, role).
		Count(&count).Error

	return count, err
}
