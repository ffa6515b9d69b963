// Package checkinbook implements the Check In Book use case.
//
// Returning a book closes the checkout, computes the fine for every started day past the
// due date and puts the copy back on the shelf.
package checkinbook
