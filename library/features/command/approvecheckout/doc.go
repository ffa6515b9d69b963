// Package approvecheckout implements the Approve Checkout use case.
// Approval starts the loan, the copy was already taken by the request.
package approvecheckout
