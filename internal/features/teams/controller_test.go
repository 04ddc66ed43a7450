package teams

import (
	"net/http"
	"testing"

	users_enums "chathub-backend/internal/features/users/enums"
	users_middleware "chathub-backend/internal/features/users/middleware"
	users_services "chathub-backend/internal/features/users/services"
	users_testing "chathub-backend/internal/features/users/testing"
	test_utils "chathub-backend/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func createTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")
	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetUserService()))

	GetTeamController().RegisterRoutes(protected)

	return router
}

func Test_CreateTeam_CreatorBecomesOwner(t *testing.T) {
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)
	router := createTestRouter()

	var team Team
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/teams",
		"Bearer "+user.Token,
		CreateTeamRequestDTO{Name: "Platform Team"},
		http.StatusOK,
		&team,
	)

	defer func() {
		_ = GetMembershipRepository().RemoveMember(team.ID, user.UserID)
		_ = teamRepository.DeleteTeam(team.ID)
	}()

	assert.Equal(t, "Platform Team", team.Name)

	var members GetMembersResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/teams/"+team.ID.String()+"/members",
		"Bearer "+user.Token,
		http.StatusOK,
		&members,
	)

	assert.Len(t, members.Members, 1)
	assert.Equal(t, user.UserID, members.Members[0].UserID)
	assert.Equal(t, RoleNameOwner, members.Members[0].Role)
}

func Test_GetTeam_NonMember_Forbidden(t *testing.T) {
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	outsider := users_testing.CreateTestUser(users_enums.UserRoleMember)
	router := createTestRouter()

	var team Team
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/teams",
		"Bearer "+owner.Token,
		CreateTeamRequestDTO{Name: "Secret Team"},
		http.StatusOK,
		&team,
	)

	defer func() {
		_ = GetMembershipRepository().RemoveMember(team.ID, owner.UserID)
		_ = teamRepository.DeleteTeam(team.ID)
	}()

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/teams/"+team.ID.String(),
		"Bearer "+outsider.Token,
		http.StatusForbidden,
	)
}

func Test_AddMember_UnknownEmail_ReturnsInvited(t *testing.T) {
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	router := createTestRouter()

	var team Team
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/teams",
		"Bearer "+owner.Token,
		CreateTeamRequestDTO{Name: "Growing Team"},
		http.StatusOK,
		&team,
	)

	invitedEmail := "invited-" + team.ID.String() + "@test.local"

	defer func() {
		if invited, err := users_services.GetUserService().GetUserByEmail(invitedEmail); err == nil &&
			invited != nil {
			_ = GetMembershipRepository().RemoveMember(team.ID, invited.ID)
		}
		_ = GetMembershipRepository().RemoveMember(team.ID, owner.UserID)
		_ = teamRepository.DeleteTeam(team.ID)
	}()

	var response AddMemberResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/teams/"+team.ID.String()+"/members",
		"Bearer "+owner.Token,
		AddMemberRequestDTO{Email: invitedEmail, Role: "member"},
		http.StatusOK,
		&response,
	)

	assert.Equal(t, AddStatusInvited, response.Status)
}

func Test_RemoveMember_LastOwner_Rejected(t *testing.T) {
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	router := createTestRouter()

	var team Team
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/teams",
		"Bearer "+owner.Token,
		CreateTeamRequestDTO{Name: "Solo Team"},
		http.StatusOK,
		&team,
	)

	defer func() {
		_ = GetMembershipRepository().RemoveMember(team.ID, owner.UserID)
		_ = teamRepository.DeleteTeam(team.ID)
	}()

	test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         http.MethodDelete,
		URL:            "/api/v1/teams/" + team.ID.String() + "/members/" + owner.UserID.String(),
		AuthToken:      "Bearer " + owner.Token,
		ExpectedStatus: http.StatusBadRequest,
	})
}
