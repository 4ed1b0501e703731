package domain

import "errors"

const DefaultPageLimit = 50

var ErrInvalidPage = errors.New("limit and offset must be non-negative")

// Page is the pagination window appended to every list query.
type Page struct {
	Limit  int
	Offset int
}

// NewPage rejects negative values instead of passing them through to
// the store; a zero limit falls back to the default of 50.
func NewPage(limit, offset int) (Page, error) {
	if limit < 0 || offset < 0 {
		return Page{}, ErrInvalidPage
	}
	if limit == 0 {
		limit = DefaultPageLimit
	}
	return Page{Limit: limit, Offset: offset}, nil
}
