package authenticateuser

import (
	"strings"
)

const (
	queryType = "AuthenticateUser"
)

// Query carries the credentials to check.
type Query struct {
	Username string
	Password string
}

// BuildQuery creates a new Query. The username is trimmed like at registration.
func BuildQuery(username, password string) Query {
	return Query{
		Username: strings.TrimSpace(username),
		Password: password,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
