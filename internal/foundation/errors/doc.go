// Package errors provides the classified error type used across linkmigrate.
//
// A ClassifiedError carries a category (what failed), a severity (how badly)
// and a retry strategy, plus a free-form context map. Hard failures are built
// with the fluent ErrorBuilder and turned into exit codes by CLIErrorAdapter.
// Capability failures are classified too, but they are logged and never
// surface as a failed run.
//
// Example usage:
//
//	err := errors.InputError("no content provided on stdin").
//		WithContext("file", path).
//		Build()
package errors
