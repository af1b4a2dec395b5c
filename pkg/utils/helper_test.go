package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInt(t *testing.T) {
	assert.Equal(t, 5, ParseInt("5", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, -3, ParseInt("-3", 1))
}

func TestGenerateConfirmationCode(t *testing.T) {
	code := GenerateConfirmationCode(6)
	assert.Len(t, code, 6)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9', "code %q contains non-digit %q", code, r)
	}

	// zero and negative lengths fall back to the default
	assert.Len(t, GenerateConfirmationCode(0), 6)
	assert.Len(t, GenerateConfirmationCode(-1), 6)
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(0, 10))
	assert.Equal(t, 1, CalculateTotalPages(10, 10))
	assert.Equal(t, 2, CalculateTotalPages(11, 10))
	assert.Equal(t, 0, CalculateTotalPages(5, 0))
}

func TestBuildPageURL(t *testing.T) {
	assert.Equal(t,
		"/api/v1/titles?page=2&page_size=10",
		BuildPageURL("/api/v1/titles", 2, 10))
}
