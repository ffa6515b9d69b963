package pendingadminrequests

const (
	queryType = "PendingAdminRequests"
)

// Query represents the intent to list admin requests awaiting a decision.
// ActorIsAdmin comes from the authenticated principal.
type Query struct {
	ActorIsAdmin bool
}

// BuildQuery creates a new Query.
func BuildQuery(actorIsAdmin bool) Query {
	return Query{
		ActorIsAdmin: actorIsAdmin,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
