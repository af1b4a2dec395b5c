package request

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationFromQuery(t *testing.T) {
	tests := []struct {
		name         string
		url          string
		wantPage     int
		wantPageSize int
	}{
		{"defaults", "/api/v1/titles", 1, 10},
		{"explicit values", "/api/v1/titles?page=3&page_size=25", 3, 25},
		{"zero page clamps to one", "/api/v1/titles?page=0", 1, 10},
		{"negative page clamps to one", "/api/v1/titles?page=-2", 1, 10},
		{"oversized page_size clamps to max", "/api/v1/titles?page_size=500", 1, 100},
		{"garbage falls back", "/api/v1/titles?page=abc&page_size=xyz", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			p := PaginationFromQuery(r)

			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPageSize, p.PageSize)
		})
	}
}

func TestPaginatedRequest_OffsetLimit(t *testing.T) {
	p := PaginatedRequest{Page: 3, PageSize: 20}
	assert.Equal(t, 40, p.Offset())
	assert.Equal(t, 20, p.Limit())

	p = PaginatedRequest{Page: 1, PageSize: 10}
	assert.Equal(t, 0, p.Offset())
}
