// Package approveadmin implements the Approve Admin use case.
package approveadmin
