// Package bootstrapadmin implements the Bootstrap Admin use case of the CLI.
//
// It creates the first admin account, or promotes an existing account, without an approving admin.
// Running it again for an admin does nothing.
package bootstrapadmin
