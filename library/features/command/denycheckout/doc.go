// Package denycheckout implements the Deny Checkout use case.
// Denying a pending request puts the held copy back on the shelf.
package denycheckout
