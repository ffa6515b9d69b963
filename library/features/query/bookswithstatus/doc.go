// Package bookswithstatus implements the Books With Status query use case.
//
// Every book is listed with a human readable availability status and the usernames
// of the users currently borrowing it. Pending requests hold a copy but do not name a borrower.
package bookswithstatus
