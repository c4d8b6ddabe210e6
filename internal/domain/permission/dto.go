package permission

// UpdateGrantRequest toggles a single grant row.
type UpdateGrantRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}
