// Package httpapi exposes the library features over HTTP with gorilla/mux.
//
// Requests are decoded with json-iterator, turned into commands and queries, and handed to the
// feature handlers wrapped with the observable decorators. Error kinds from package core are mapped
// to status codes in one place, see writeError. Request counts and latencies are exported to the
// Prometheus registry that also backs GET /metrics.
package httpapi
