package users_enums

type UserStatus string

const (
	UserStatusActive      UserStatus = "ACTIVE"
	UserStatusInvited     UserStatus = "INVITED"
	UserStatusDeactivated UserStatus = "DEACTIVATED"
)
