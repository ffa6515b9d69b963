// Package registeruser implements the Register User use case.
//
// The password is validated and hashed with bcrypt before the transaction starts,
// so the username lock is not held while hashing.
package registeruser
