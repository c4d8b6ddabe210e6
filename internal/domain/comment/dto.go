package comment

// CreateCommentRequest represents a new reply
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=10000"`
}
