package teams

import (
	"errors"
	"fmt"

	"chathub-backend/internal/features/audit_logs"
	users_enums "chathub-backend/internal/features/users/enums"
	users_models "chathub-backend/internal/features/users/models"
	users_services "chathub-backend/internal/features/users/services"

	"github.com/google/uuid"
)

type TeamService struct {
	teamRepository       *TeamRepository
	membershipRepository *MembershipRepository
	userService          *users_services.UserService
	auditLogService      *audit_logs.AuditLogService
}

// CreateTeam creates a team with the creator as its sole owner. It is
// called directly or implicitly when a private workspace converts to
// team mode.
func (s *TeamService) CreateTeam(name string, creator *users_models.User) (*Team, error) {
	team := &Team{
		ID:   uuid.New(),
		Name: name,
	}

	if err := s.teamRepository.CreateTeam(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	membership := &TeamMembership{
		TeamID: team.ID,
		UserID: creator.ID,
		Role:   RoleNameOwner,
	}

	if err := s.membershipRepository.CreateMembership(membership); err != nil {
		return nil, fmt.Errorf("failed to create team membership: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Team created: %s", team.Name),
		&creator.ID,
		nil,
	)

	return team, nil
}

func (s *TeamService) GetTeam(teamID uuid.UUID, user *users_models.User) (*Team, error) {
	isMember, err := s.IsTeamMember(teamID, user)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, errors.New("insufficient permissions to view team")
	}

	return s.teamRepository.GetTeamByID(teamID)
}

func (s *TeamService) GetMembers(
	teamID uuid.UUID,
	user *users_models.User,
) (*GetMembersResponseDTO, error) {
	isMember, err := s.IsTeamMember(teamID, user)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, errors.New("insufficient permissions to view team members")
	}

	members, err := s.membershipRepository.GetTeamMembers(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}

	membersList := make([]TeamMemberResponseDTO, len(members))
	for i, member := range members {
		membersList[i] = *member
	}

	return &GetMembersResponseDTO{Members: membersList}, nil
}

func (s *TeamService) AddMember(
	teamID uuid.UUID,
	request *AddMemberRequestDTO,
	addedBy *users_models.User,
) (*AddMemberResponseDTO, error) {
	canManage, err := s.CanManageTeam(teamID, addedBy)
	if err != nil {
		return nil, err
	}
	if !canManage {
		return nil, errors.New("insufficient permissions to manage team members")
	}

	targetUser, err := s.userService.GetUserByEmail(request.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	status := AddStatusAdded

	if targetUser == nil {
		targetUser, err = s.userService.InviteUser(request.Email, addedBy)
		if err != nil {
			return nil, err
		}

		status = AddStatusInvited
	}

	existing, err := s.membershipRepository.GetUserMemberships(teamID, targetUser.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing membership: %w", err)
	}

	for _, membership := range existing {
		if membership.Role == request.Role {
			return nil, errors.New("user already holds this role in the team")
		}
	}

	membership := &TeamMembership{
		TeamID: teamID,
		UserID: targetUser.ID,
		Role:   request.Role,
	}

	if err := membership.Validate(); err != nil {
		return nil, err
	}

	if err := s.membershipRepository.CreateMembership(membership); err != nil {
		return nil, fmt.Errorf("failed to add team member: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("User %s added to team as %s", request.Email, request.Role),
		&addedBy.ID,
		nil,
	)

	return &AddMemberResponseDTO{Status: status}, nil
}

func (s *TeamService) RemoveMember(
	teamID uuid.UUID,
	memberUserID uuid.UUID,
	removedBy *users_models.User,
) error {
	canManage, err := s.CanManageTeam(teamID, removedBy)
	if err != nil {
		return err
	}
	if !canManage {
		return errors.New("insufficient permissions to remove team members")
	}

	memberships, err := s.membershipRepository.GetUserMemberships(teamID, memberUserID)
	if err != nil {
		return fmt.Errorf("failed to get memberships: %w", err)
	}

	if len(memberships) == 0 {
		return errors.New("user is not a member of this team")
	}

	for _, membership := range memberships {
		if membership.Role != RoleNameOwner {
			continue
		}

		ownersCount, err := s.membershipRepository.CountMembersWithRole(teamID, RoleNameOwner)
		if err != nil {
			return fmt.Errorf("failed to count team owners: %w", err)
		}

		if ownersCount <= 1 {
			return errors.New("cannot remove the last team owner")
		}
	}

	targetUser, err := s.userService.GetUserByID(memberUserID)
	if err != nil {
		return errors.New("user not found")
	}

	if err := s.membershipRepository.RemoveMember(teamID, memberUserID); err != nil {
		return fmt.Errorf("failed to remove team member: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("User %s removed from team", targetUser.Email),
		&removedBy.ID,
		nil,
	)

	return nil
}

// IsTeamMember reports whether the user holds any role in the team.
// Global admins can see every team.
func (s *TeamService) IsTeamMember(teamID uuid.UUID, user *users_models.User) (bool, error) {
	if user.Role == users_enums.UserRoleAdmin {
		return true, nil
	}

	memberships, err := s.membershipRepository.GetUserMemberships(teamID, user.ID)
	if err != nil {
		return false, err
	}

	return len(memberships) > 0, nil
}

// CanManageTeam reports whether the user can add and remove members:
// the reserved "owner" role, the conventional "admin" role, or a
// global admin.
func (s *TeamService) CanManageTeam(teamID uuid.UUID, user *users_models.User) (bool, error) {
	if user.Role == users_enums.UserRoleAdmin {
		return true, nil
	}

	memberships, err := s.membershipRepository.GetUserMemberships(teamID, user.ID)
	if err != nil {
		return false, err
	}

	for _, membership := range memberships {
		if membership.Role == RoleNameOwner || membership.Role == "admin" {
			return true, nil
		}
	}

	return false, nil
}

func (s *TeamService) GetUserMemberships(
	teamID, userID uuid.UUID,
) ([]*TeamMembership, error) {
	return s.membershipRepository.GetUserMemberships(teamID, userID)
}

// CleanupEmptyTeams deletes teams that have no members and no workspaces.
func (s *TeamService) CleanupEmptyTeams() (int, error) {
	teamIDs, err := s.teamRepository.GetEmptyTeamIDs()
	if err != nil {
		return 0, fmt.Errorf("failed to find empty teams: %w", err)
	}

	removed := 0
	for _, teamID := range teamIDs {
		if err := s.teamRepository.DeleteTeam(teamID); err != nil {
			return removed, fmt.Errorf("failed to delete team %s: %w", teamID, err)
		}
		removed++
	}

	return removed, nil
}
