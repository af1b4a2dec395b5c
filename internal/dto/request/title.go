package request

type CreateTitleRequest struct {
	Name        string   `json:"name" validate:"required,max=256"`
	Year        int      `json:"year" validate:"gte=0"`
	Description *string  `json:"description"`
	Category    string   `json:"category" validate:"required,max=50,slug"`
	Genre       []string `json:"genre" validate:"required,min=1,dive,max=50,slug"`
}

type UpdateTitleRequest struct {
	Name        *string  `json:"name" validate:"omitempty,max=256"`
	Year        *int     `json:"year" validate:"omitempty,gte=0"`
	Description *string  `json:"description"`
	Category    *string  `json:"category" validate:"omitempty,max=50,slug"`
	Genre       []string `json:"genre" validate:"omitempty,min=1,dive,max=50,slug"`
}
