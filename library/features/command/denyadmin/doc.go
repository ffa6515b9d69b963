// Package denyadmin implements the Deny Admin use case.
//
// Whether a denial also takes away existing admin rights is a policy switch. By default it does not.
package denyadmin
