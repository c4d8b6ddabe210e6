package admin

// UpdateRoleRequest changes a user's role
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,role"`
}

// BanRequest sets a user's banned flag
type BanRequest struct {
	Banned *bool `json:"banned" validate:"required"`
}
