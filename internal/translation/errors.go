package translation

import apperrors "github.com/er336250/fish-test/internal/platform/errors"

var (
	// ErrRecordsNotArray is returned when the record input root is not a JSON array.
	ErrRecordsNotArray = apperrors.New(apperrors.CodeRecordsNotArray, "records root must be a JSON array")
	// ErrRecordsInvalidJSON is returned when the record input cannot be decoded.
	ErrRecordsInvalidJSON = apperrors.New(apperrors.CodeRecordsInvalidJSON, "records are not valid JSON")
	// ErrRecordNotObject is returned when an array element is not a JSON object.
	ErrRecordNotObject = apperrors.New(apperrors.CodeRecordNotObject, "record is not a JSON object")
	// ErrTableEncoding is returned when the table content is not UTF-8.
	ErrTableEncoding = apperrors.New(apperrors.CodeTableInvalidEncoding, "translation table is not valid UTF-8")
	// ErrTableUnreadable is returned when the table stream cannot be read.
	ErrTableUnreadable = apperrors.New(apperrors.CodeTableUnreadable, "translation table could not be read")
)
