package profile

// UpdateProfileRequest represents a profile edit by its owner
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name,omitempty" validate:"omitempty,min=2,max=60"`
	Bio         *string `json:"bio,omitempty" validate:"omitempty,max=500"`
}
