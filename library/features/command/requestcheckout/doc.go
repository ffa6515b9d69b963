// Package requestcheckout implements the Request Checkout use case.
//
// A request takes one copy off the shelf right away. Depending on the policy it stays pending
// until an admin decides, or it is approved in the same transaction.
package requestcheckout
