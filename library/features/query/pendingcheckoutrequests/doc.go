// Package pendingcheckoutrequests implements the Pending Checkout Requests query use case.
// Only admins may see the queue.
package pendingcheckoutrequests
