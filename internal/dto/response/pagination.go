package response

import (
	"review-platform/pkg/utils"
)

// PaginatedResponse is the list envelope promised to API clients:
// {"count": N, "next": url|null, "previous": url|null, "results": [...]}
type PaginatedResponse[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// NewPaginatedResponse builds the envelope. path is the request path used
// to render the next/previous links.
func NewPaginatedResponse[T any](results []T, path string, page, pageSize int, total int64) *PaginatedResponse[T] {
	if results == nil {
		results = []T{}
	}

	resp := &PaginatedResponse[T]{
		Count:   total,
		Results: results,
	}

	totalPages := utils.CalculateTotalPages(total, pageSize)

	if page < totalPages {
		next := utils.BuildPageURL(path, page+1, pageSize)
		resp.Next = &next
	}
	if page > 1 {
		prev := utils.BuildPageURL(path, page-1, pageSize)
		resp.Previous = &prev
	}

	return resp
}
