// Package helper provides test doubles and arrange helpers shared by the library tests.
//
// The spies capture the calls made to the store observability interfaces, so tests can assert
// on metrics, spans and log records without an OpenTelemetry or Prometheus backend.
package helper
