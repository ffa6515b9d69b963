// Package features groups the vertical slices of the library service.
//
// Every slice under command/ runs Lock -> Project -> Decide -> Apply in one transaction,
// every slice under query/ runs Query -> Project against a read model.
// The slices share nothing but library/core and library/shell.
package features
