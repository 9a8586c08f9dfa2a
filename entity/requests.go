package entity

// PageSize is the fixed number of plugins requested per page.
const PageSize = 10

type SearchRequest struct {
	Term string
	Page int
}
