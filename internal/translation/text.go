package translation

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeUTF8 validates data as UTF-8 and strips a leading byte order mark.
// The boolean is false when data is not valid UTF-8.
func decodeUTF8(data []byte) ([]byte, bool) {
	if !utf8.Valid(data) {
		return nil, false
	}
	out, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), data)
	if err != nil {
		return nil, false
	}
	return out, true
}

// UnescapeLineSeparators rewrites the \u2028 and \u2029 escapes that
// encoding/json always emits back into the raw runes. Escaped backslashes are
// consumed in pairs, so a literal backslash followed by u2028 is untouched.
func UnescapeLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' || i+1 >= len(data) {
			out = append(out, data[i])
			continue
		}
		if i+5 < len(data) && data[i+1] == 'u' && data[i+2] == '2' && data[i+3] == '0' && data[i+4] == '2' {
			switch data[i+5] {
			case '8':
				out = append(out, "\u2028"...)
				i += 5
				continue
			case '9':
				out = append(out, "\u2029"...)
				i += 5
				continue
			}
		}
		out = append(out, data[i], data[i+1])
		i++
	}
	return out
}
