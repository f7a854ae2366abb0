package httpclient

import "context"

// Header is a single name/value pair. Repeated names stay separate entries.
type Header struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// RawResponse is a completed exchange as reported by a transport.
type RawResponse interface {
	Body() []byte
	StatusCode() int
	StatusText() string
	// RawHeaders returns the response header block, one "Name: value" per line.
	RawHeaders() string
}

// Transport abstracts the network exchange so callers can inject mocks or different transports.
type Transport interface {
	Do(ctx context.Context, method, url string, headers []Header) (RawResponse, error)
}
