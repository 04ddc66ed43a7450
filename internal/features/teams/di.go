package teams

import (
	"chathub-backend/internal/features/audit_logs"
	users_services "chathub-backend/internal/features/users/services"
	"chathub-backend/internal/util/logger"
)

var teamRepository = &TeamRepository{}
var membershipRepository = &MembershipRepository{}

var teamService = &TeamService{
	teamRepository,
	membershipRepository,
	users_services.GetUserService(),
	audit_logs.GetAuditLogService(),
}

var teamController = &TeamController{
	teamService,
}

func GetTeamService() *TeamService {
	return teamService
}

func GetMembershipRepository() *MembershipRepository {
	return membershipRepository
}

func GetTeamController() *TeamController {
	return teamController
}

// RunEmptyTeamCleanup is scheduled by the background cron. Teams left with
// no members and no workspaces carry no data and are deleted.
func RunEmptyTeamCleanup() {
	log := logger.GetLogger()

	removed, err := teamService.CleanupEmptyTeams()
	if err != nil {
		log.Error("empty team cleanup failed", "error", err)
		return
	}

	if removed > 0 {
		log.Info("removed empty teams", "count", removed)
	}
}
