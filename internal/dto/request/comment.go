package request

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,max=200"`
}

type UpdateCommentRequest struct {
	Text *string `json:"text" validate:"omitempty,max=200"`
}
