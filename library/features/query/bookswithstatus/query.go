package bookswithstatus

const (
	queryType = "BooksWithStatus"
)

// Query represents the intent to list the whole inventory.
type Query struct{}

// BuildQuery creates a new Query.
func BuildQuery() Query {
	return Query{}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
