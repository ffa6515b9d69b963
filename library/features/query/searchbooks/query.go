package searchbooks

import (
	"strings"
)

const (
	queryType = "SearchBooks"
)

// Query represents the intent to find books by title or author.
// An empty Term matches every book.
type Query struct {
	Term          string
	OnlyAvailable bool
}

// BuildQuery creates a new Query with the trimmed search term.
func BuildQuery(term string, onlyAvailable bool) Query {
	return Query{
		Term:          strings.TrimSpace(term),
		OnlyAvailable: onlyAvailable,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
