package core

import (
	"math"
	"time"
)

const (
	// DefaultLoanPeriod is the time between checkout and due date.
	DefaultLoanPeriod = 14 * 24 * time.Hour

	// DefaultFinePerDay is the fine charged per started day of lateness.
	DefaultFinePerDay int64 = 1

	// MaxBookQuantity is the largest quantity the books table can hold.
	MaxBookQuantity = math.MaxInt32
)

// Policy is the single table of lifecycle switches.
// It is loaded once at startup and handed to every Decide function.
type Policy struct {
	// RequireApprovalForCheckout keeps new checkouts pending until an admin approves them.
	// When false, requests are approved on the spot.
	RequireApprovalForCheckout bool

	// RequireApprovalForAdmin keeps admin requests pending until an admin approves them.
	// When false, a request grants admin rights immediately.
	RequireApprovalForAdmin bool

	// DenyRevokesAdmin makes a denied admin request also clear an existing admin flag.
	DenyRevokesAdmin bool

	// BlockAdminRequestWithOpenCheckouts rejects admin requests from users holding an open approved checkout.
	BlockAdminRequestWithOpenCheckouts bool

	LoanPeriod time.Duration
	FinePerDay int64
}

// DefaultPolicy returns the policy the service runs with unless configured otherwise.
func DefaultPolicy() Policy {
	return Policy{
		RequireApprovalForCheckout:         true,
		RequireApprovalForAdmin:            true,
		DenyRevokesAdmin:                   false,
		BlockAdminRequestWithOpenCheckouts: true,
		LoanPeriod:                         DefaultLoanPeriod,
		FinePerDay:                         DefaultFinePerDay,
	}
}
