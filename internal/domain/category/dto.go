package category

// CreateCategoryRequest represents a new category
type CreateCategoryRequest struct {
	Slug        string `json:"slug" validate:"required,min=2,max=60"`
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description,omitempty" validate:"max=500"`
	Position    int    `json:"position,omitempty" validate:"gte=0"`
}

// UpdateCategoryRequest represents a category edit
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Position    *int    `json:"position,omitempty" validate:"omitempty,gte=0"`
}
