package request

type CreateReviewRequest struct {
	Text  string `json:"text" validate:"required,max=200"`
	Score int    `json:"score" validate:"required,gte=1,lte=10"`
}

type UpdateReviewRequest struct {
	Text  *string `json:"text" validate:"omitempty,max=200"`
	Score *int    `json:"score" validate:"omitempty,gte=1,lte=10"`
}
