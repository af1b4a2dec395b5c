package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type signupPayload struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Username string `json:"username" validate:"required,max=150,username"`
}

type scorePayload struct {
	Score int `json:"score" validate:"required,gte=1,lte=10"`
}

type slugPayload struct {
	Slug string `json:"slug" validate:"omitempty,max=50,slug"`
}

func TestValidateStruct_Valid(t *testing.T) {
	errs := ValidateStruct(signupPayload{
		Email:    "nemo@example.com",
		Username: "capt.nemo",
	})
	assert.Nil(t, errs)
}

func TestValidateStruct_RequiredFields(t *testing.T) {
	errs := ValidateStruct(signupPayload{})

	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "username")
	assert.Contains(t, errs["email"], "This field is required")
}

func TestValidateStruct_UsernameRules(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"plain", "nemo", false},
		{"word chars and symbols", "capt.nemo+1@sub", false},
		{"me is reserved", "me", true},
		{"space rejected", "capt nemo", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStruct(signupPayload{
				Email:    "nemo@example.com",
				Username: tt.username,
			})
			if tt.wantErr {
				assert.Contains(t, errs, "username")
			} else {
				assert.Nil(t, errs)
			}
		})
	}
}

func TestValidateStruct_ScoreBounds(t *testing.T) {
	assert.Nil(t, ValidateStruct(scorePayload{Score: 1}))
	assert.Nil(t, ValidateStruct(scorePayload{Score: 10}))

	errs := ValidateStruct(scorePayload{Score: 11})
	assert.Contains(t, errs["score"], "Must be less than or equal to 10")

	// gte=1 never fires for 0 because required rejects the zero value first
	errs = ValidateStruct(scorePayload{Score: 0})
	assert.Contains(t, errs, "score")
}

func TestValidateStruct_SlugTag(t *testing.T) {
	assert.Nil(t, ValidateStruct(slugPayload{}))
	assert.Nil(t, ValidateStruct(slugPayload{Slug: "sci-fi"}))

	errs := ValidateStruct(slugPayload{Slug: "no spaces"})
	assert.Contains(t, errs["slug"], "May contain only letters, digits, hyphens and underscores")
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Email", "email"},
		{"FirstName", "first_name"},
		{"ConfirmationCode", "confirmation_code"},
		{"already_snake", "already_snake"},
	}

	for _, tt := range tests {
		if got := toSnakeCase(tt.in); got != tt.want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
