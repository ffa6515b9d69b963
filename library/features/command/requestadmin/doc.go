// Package requestadmin implements the Request Admin use case.
package requestadmin
