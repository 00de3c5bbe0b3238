// Package errors provides structured error handling with i18n support.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Record input errors
	CodeRecordsNotArray    Code = "RECORDS_NOT_ARRAY"
	CodeRecordsInvalidJSON Code = "RECORDS_INVALID_JSON"
	CodeRecordNotObject    Code = "RECORD_NOT_OBJECT"

	// Translation table errors
	CodeTableInvalidEncoding Code = "TABLE_INVALID_ENCODING"
	CodeTableUnreadable      Code = "TABLE_UNREADABLE"

	// Transport errors
	CodeInputMissing  Code = "INPUT_MISSING"
	CodeInputTooLarge Code = "INPUT_TOO_LARGE"

	// Output errors
	CodeOutputWriteFailed Code = "OUTPUT_WRITE_FAILED"
)

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	// Bad request - the caller supplied unusable input
	case CodeRecordsNotArray,
		CodeRecordsInvalidJSON,
		CodeRecordNotObject,
		CodeTableInvalidEncoding,
		CodeInputMissing:
		return http.StatusBadRequest

	// Unprocessable - the stream itself could not be consumed
	case CodeTableUnreadable:
		return http.StatusUnprocessableEntity

	case CodeInputTooLarge:
		return http.StatusRequestEntityTooLarge

	default:
		return http.StatusInternalServerError
	}
}
