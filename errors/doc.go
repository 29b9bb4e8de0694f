// Package errors provides the structured error type shared by the streamkit
// packages.
//
// Every failure the engine can report carries a machine-readable ErrorCode.
// Absence of a result is never an error: finders return an empty
// optional.Optional and numeric terminals return zero.
package errors
