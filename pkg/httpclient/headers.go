package httpclient

import "strings"

const headerDelimiter = ": "

// ParseHeaders splits a raw response header block into ordered name/value pairs.
//
// Names are lower-cased here and nowhere else; values keep their case. Only the
// first ": " separates name from value. A line without the delimiter becomes a
// header named after the whole line, minus one trailing colon, with an empty value.
func ParseHeaders(raw string) []Header {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []Header{}
	}

	lines := strings.FieldsFunc(raw, isLineBreak)
	out := make([]Header, 0, len(lines))
	for _, line := range lines {
		name, value, found := strings.Cut(line, headerDelimiter)
		if !found {
			// Trimming the blob drops the space after a trailing empty value.
			name, _ = strings.CutSuffix(line, ":")
		}
		out = append(out, Header{Name: strings.ToLower(name), Value: value})
	}
	return out
}

func isLineBreak(r rune) bool { return r == '\r' || r == '\n' }

// FindHeader returns the value of the first header with the given name.
func FindHeader(headers []Header, name string) (string, bool) {
	name = strings.ToLower(name)
	for _, h := range headers {
		if h.Name == name {
			return h.Value, true
		}
	}
	return "", false
}
