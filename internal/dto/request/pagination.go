package request

import (
	"net/http"

	"review-platform/pkg/utils"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PaginatedRequest is never validated as a struct; PaginationFromQuery
// clamps out-of-range values instead of rejecting them.
type PaginatedRequest struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// PaginationFromQuery reads ?page= and ?page_size=, clamping both into
// their legal ranges.
func PaginationFromQuery(r *http.Request) *PaginatedRequest {
	query := r.URL.Query()

	req := &PaginatedRequest{
		Page:     utils.ParseInt(query.Get("page"), 1),
		PageSize: utils.ParseInt(query.Get("page_size"), DefaultPageSize),
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = DefaultPageSize
	}
	if req.PageSize > MaxPageSize {
		req.PageSize = MaxPageSize
	}

	return req
}

func (p PaginatedRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

func (p PaginatedRequest) Limit() int {
	if p.PageSize < 1 {
		return DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		return MaxPageSize
	}
	return p.PageSize
}
