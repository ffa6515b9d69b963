// Package observable decorates command and query handlers with metrics, tracing and logging.
//
// The wrappers keep the handlers free of instrumentation: a handler only runs its
// transaction and returns a result, the wrapper derives the status from that result and the error.
package observable
