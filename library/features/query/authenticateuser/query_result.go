package authenticateuser

import (
	"github.com/Chalhotra/LibMgmt/library/core"
)

// Principal is the authenticated user as seen by the outer layers.
type Principal struct {
	UserID   core.UserIDString `json:"userId"`
	Username string            `json:"username"`
	IsAdmin  bool              `json:"isAdmin"`
}

// IsQueryResult marks Principal as a query result.
func (r Principal) IsQueryResult() {}
