package httpclient

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// DecodeText maps every byte to the code point of the same value (0-255).
func DecodeText(data []byte) string {
	// ISO-8859-1 decoding is total, every byte has a code point.
	s, _ := charmap.ISO8859_1.NewDecoder().Bytes(data)
	return string(s)
}

// EncodeText reverses DecodeText. Code points above 255 are rejected.
func EncodeText(s string) ([]byte, error) {
	out, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return nil, fmt.Errorf("encode single-byte text: %w", err)
	}
	return []byte(out), nil
}
