// Package updatebook implements the Update Book use case: an admin overwrites title, author and quantity.
// Submitting the current values is an idempotent no-op.
package updatebook
