// Package core is the functional core of the library:
// books, checkouts and admin requests.
//
// It holds the policy table, the error kinds, the loan arithmetic (due dates and fines)
// and the domain events. Events describe what happened, like CheckoutApproved or BookCheckedIn,
// and double as write instructions for the imperative shell.
//
// Nothing in this package performs I/O. The Decide functions of the feature slices
// receive a state projected from locked rows plus a Policy and return a DecisionResult.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core
