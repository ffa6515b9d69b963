package store

import (
	"errors"
)

// ErrNilDatabaseConnection is returned when a store is constructed without a database connection.
var ErrNilDatabaseConnection = errors.New("database connection must not be nil")

// ErrRowNotFound is returned by Tx lookups when no row matches.
var ErrRowNotFound = errors.New("row not found")

// ErrBuildingQueryFailed is returned when a SQL statement could not be built.
var ErrBuildingQueryFailed = errors.New("building the query failed")

// ErrQueryingFailed is returned when a SELECT statement fails.
var ErrQueryingFailed = errors.New("querying rows failed")

// ErrScanningRowFailed is returned when a result row could not be scanned.
var ErrScanningRowFailed = errors.New("scanning db row failed")

// ErrExecutingFailed is returned when an INSERT, UPDATE or DELETE statement fails.
var ErrExecutingFailed = errors.New("executing statement failed")

// ErrGettingRowsAffectedFailed is returned when the affected row count is not available.
var ErrGettingRowsAffectedFailed = errors.New("getting rows affected failed")

// ErrNoRowsAffected is returned when an UPDATE or DELETE matched no row.
var ErrNoRowsAffected = errors.New("no rows were affected")

// ErrBeginningTxFailed is returned when a transaction could not be started.
var ErrBeginningTxFailed = errors.New("beginning transaction failed")

// ErrCommittingTxFailed is returned when a transaction could not be committed.
var ErrCommittingTxFailed = errors.New("committing transaction failed")

// ErrUniqueViolation is returned when an insert or update collides with a unique constraint.
var ErrUniqueViolation = errors.New("unique constraint violated")
