// Package authenticateuser implements the Authenticate User query use case.
//
// It checks a username and password against the stored bcrypt hash and returns the principal.
// Every mismatch fails the same way, so callers cannot tell unknown users from wrong passwords.
package authenticateuser
