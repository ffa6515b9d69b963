// Package pendingadminrequests implements the Pending Admin Requests query use case.
// Only admins may see the queue.
package pendingadminrequests
