package permissions

type SaveRoleRequestDTO struct {
	Name        string   `json:"name"        binding:"required,min=1,max=64"`
	Description string   `json:"description" binding:"max=512"`
	Permissions []string `json:"permissions" binding:"required"`
}

type GetRolesResponseDTO struct {
	Roles []*Role `json:"roles"`
}

type GetPermissionsResponseDTO struct {
	Permissions []Permission `json:"permissions"`
}
