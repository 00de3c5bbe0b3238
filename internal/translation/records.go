package translation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	apperrors "github.com/er336250/fish-test/internal/platform/errors"
)

// Record is one entry of the input array. Only the configured name and type
// fields carry meaning; every other field passes through untouched.
type Record map[string]any

// Records is an ordered record collection.
type Records []Record

// DecodeRecords parses a JSON array of objects. Numbers are kept as
// json.Number so they re-encode exactly as they were read.
func DecodeRecords(data []byte) (Records, error) {
	text, ok := decodeUTF8(data)
	if !ok {
		return nil, apperrors.WrapWithMetadata(apperrors.CodeRecordsInvalidJSON, "decode records", map[string]string{"Detail": "invalid UTF-8"}, errors.New("invalid UTF-8"))
	}

	decoder := json.NewDecoder(bytes.NewReader(text))
	decoder.UseNumber()

	var root any
	if err := decoder.Decode(&root); err != nil {
		return nil, apperrors.WrapWithMetadata(apperrors.CodeRecordsInvalidJSON, "decode records", map[string]string{"Detail": err.Error()}, err)
	}
	if err := decoder.Decode(new(any)); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, apperrors.WrapWithMetadata(apperrors.CodeRecordsInvalidJSON, "decode records", map[string]string{"Detail": err.Error()}, err)
	}

	items, ok := root.([]any)
	if !ok {
		kind := jsonKind(root)
		return nil, apperrors.WithMetadata(apperrors.CodeRecordsNotArray, fmt.Sprintf("records root must be a JSON array, got %s", kind), map[string]string{"Kind": kind})
	}

	records := make(Records, 0, len(items))
	for i, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			return nil, apperrors.WithMetadata(apperrors.CodeRecordNotObject,
				fmt.Sprintf("record %d is %s, not an object", i, jsonKind(item)),
				map[string]string{"Index": strconv.Itoa(i), "Kind": jsonKind(item)})
		}
		records = append(records, Record(fields))
	}
	return records, nil
}

// EncodeRecords writes records as indented JSON. Non-ASCII text, including
// the line and paragraph separators, and HTML characters are written verbatim.
func EncodeRecords(w io.Writer, records Records) error {
	if records == nil {
		records = Records{}
	}
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return apperrors.Wrap(apperrors.CodeOutputWriteFailed, "encode records", err)
	}
	if _, err := w.Write(UnescapeLineSeparators(buf.Bytes())); err != nil {
		return apperrors.Wrap(apperrors.CodeOutputWriteFailed, "write records", err)
	}
	return nil
}

// Clone returns a deep copy of the collection.
func (r Records) Clone() Records {
	if r == nil {
		return nil
	}
	out := make(Records, len(r))
	for i, record := range r {
		out[i] = record.Clone()
	}
	return out
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for key, value := range r {
		out[key] = cloneValue(value)
	}
	return out
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = cloneValue(item)
		}
		return out
	case Record:
		return v.Clone()
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

func jsonKind(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64:
		return "number"
	default:
		return fmt.Sprintf("%T", value)
	}
}
