// Package searchbooks implements the Search Books query use case.
package searchbooks
