// Package addorrestockbook implements the Add or Restock Book use case.
//
// Admins add copies by title and author. When a book with the same title and author
// already exists its quantity grows, otherwise a new book is inserted. Duplicates are
// merged, never rejected.
package addorrestockbook
