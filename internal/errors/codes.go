// Package errors provides structured error handling with machine-readable codes.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Roster errors
	CodeRosterUnsupportedFormat Code = "ROSTER_UNSUPPORTED_FORMAT"
	CodeRosterMissingColumn     Code = "ROSTER_MISSING_COLUMN"

	// Guest errors
	CodeGuestEmptyName  Code = "GUEST_EMPTY_NAME"
	CodeGuestEmptyPhone Code = "GUEST_EMPTY_PHONE"

	// Generator errors
	CodeGeneratorInvalidBaseURL Code = "GENERATOR_INVALID_BASE_URL"
)
