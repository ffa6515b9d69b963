// Package auth issues and verifies the HS256 bearer tokens that carry the principal
// of an HTTP request, and moves the verified principal through the request context.
package auth
