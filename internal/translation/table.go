package translation

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	apperrors "github.com/er336250/fish-test/internal/platform/errors"
)

// Table maps canonical source names to their translation.
type Table map[string]string

// Len returns the number of entries.
func (t Table) Len() int {
	return len(t)
}

// Lookup normalizes name and returns its translation.
func (t Table) Lookup(name any) (string, bool) {
	key := Normalize(name)
	if key == "" {
		return "", false
	}
	translated, ok := t[key]
	return translated, ok
}

// ReadTable reads the whole stream and parses it with LoadTable.
func ReadTable(r io.Reader) (Table, error) {
	if r == nil {
		return nil, apperrors.New(apperrors.CodeTableUnreadable, "translation table reader is required")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeTableUnreadable, "read translation table", err)
	}
	return LoadTable(data)
}

// LoadTable parses comma-separated table content. The first line is a header
// and is always discarded, even when blank. Every later row contributes
// Normalize(column 0) -> TrimSpace(column 1) when both are non-empty; shorter
// rows and rows with an empty side are skipped. Quoting is lenient, so no
// row fails to parse.
// Later rows win over earlier rows with the same key.
func LoadTable(data []byte) (Table, error) {
	text, ok := decodeUTF8(data)
	if !ok {
		return nil, ErrTableEncoding
	}

	reader := csv.NewReader(bytes.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	table := Table{}
	// encoding/csv skips blank lines, but a blank first line is still the
	// header row and the next line is data.
	headerSeen := bytes.HasPrefix(text, []byte("\n")) || bytes.HasPrefix(text, []byte("\r\n"))
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, apperrors.Wrap(apperrors.CodeTableUnreadable, "parse translation table", err)
		}
		if !headerSeen {
			headerSeen = true
			continue
		}
		if len(row) < 2 {
			continue
		}
		source := Normalize(row[0])
		translated := strings.TrimSpace(row[1])
		if source == "" || translated == "" {
			continue
		}
		table[source] = translated
	}
	return table, nil
}
