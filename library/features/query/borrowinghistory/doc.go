// Package borrowinghistory implements the Borrowing History query use case.
//
// The history of a user holds the approved checkouts, returned or not, most recent first.
// Pending and denied requests are not part of it.
package borrowinghistory
