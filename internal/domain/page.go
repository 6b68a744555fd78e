package domain

// Page carries page/limit values from the HTTP layer to the repo layer.
// Number is 1-indexed.
type Page struct {
	Number int
	Limit  int
}

// DefaultPageLimit fills a four-column search grid six rows deep.
const DefaultPageLimit = 24

// MaxPageLimit caps the size of a single listing query.
const MaxPageLimit = 100

// NewPage builds a Page from optional query params.
// Nil or non-positive values fall back to page 1 and DefaultPageLimit.
func NewPage(number, limit *int) Page {
	p := Page{Number: 1, Limit: DefaultPageLimit}
	if number != nil && *number >= 1 {
		p.Number = *number
	}
	if limit != nil && *limit >= 1 {
		p.Limit = min(*limit, MaxPageLimit)
	}
	return p
}

// Offset returns the zero-based row offset for a SQL OFFSET clause.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}
