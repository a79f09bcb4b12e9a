package service

import (
	apperrors "foodgram-backend/internal/errors"
)

// Paginator normalizes page/limit query values into limit/offset pairs
type Paginator struct {
	DefaultSize int
	MaxSize     int
}

// NewPaginator creates a paginator with the given default and maximum page sizes
func NewPaginator(defaultSize, maxSize int) Paginator {
	if defaultSize < 1 {
		defaultSize = 6
	}
	if maxSize < defaultSize {
		maxSize = defaultSize
	}
	return Paginator{DefaultSize: defaultSize, MaxSize: maxSize}
}

// Page is a normalized page request
type Page struct {
	Number int
	Limit  int
}

// Offset returns the number of rows to skip
func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// Normalize applies defaults to zero values, caps the limit and rejects negatives
func (p Paginator) Normalize(page, limit int) (Page, error) {
	if page < 0 || limit < 0 {
		return Page{}, apperrors.ErrInvalidPaginationParams
	}
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = p.DefaultSize
	}
	if limit > p.MaxSize {
		limit = p.MaxSize
	}
	return Page{Number: page, Limit: limit}, nil
}
