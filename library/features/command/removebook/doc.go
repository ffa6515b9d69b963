// Package removebook implements the Remove Book use case.
//
// A book can only be removed while no checkout is active for it, pending requests included,
// because those hold a copy. Removing a book also deletes its checkout history.
package removebook
