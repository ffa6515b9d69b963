// Package shell is the imperative shell around the library core.
//
// It holds the contracts shared by the command and query slices, the observability helpers
// used by the observable wrappers, and the step that turns decided domain events into row writes
// plus journal entries (ApplyEvents).
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'infrastructure' layer.
package shell
