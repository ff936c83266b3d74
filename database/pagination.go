package database

import "errors"

// DefaultPageSize is the number of listings returned when the caller does
// not ask for a specific limit.
const DefaultPageSize = 20

// ErrInvalidLimit rejects non-positive page sizes.
var ErrInvalidLimit = errors.New("limit must be a positive number")

// PageRequest is a 1-based page number plus a page size.
type PageRequest struct {
	Page  int
	Limit int
}

// Validate rejects unusable page sizes. Page numbers below 1 are not an
// error; they are clamped to the first page.
func (p PageRequest) Validate() error {
	if p.Limit <= 0 {
		return ErrInvalidLimit
	}
	return nil
}

// page returns the effective 1-based page number.
func (p PageRequest) page() int {
	if p.Page < 1 {
		return 1
	}
	return p.Page
}

// Skip returns the row offset for the requested page.
func (p PageRequest) Skip() int64 {
	return int64(p.page()-1) * int64(p.Limit)
}

// TotalPages computes ceil(total/limit); zero rows means zero pages.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// ListingPage is the listings list response: one page of results plus the
// counts the client needs to render pagination controls.
type ListingPage struct {
	Listings   []ListingWithUser `json:"listings"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	TotalPages int               `json:"totalPages"`
}
