package request

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=256"`
	// Derived from the name when omitted.
	Slug string `json:"slug" validate:"omitempty,max=50,slug"`
}
