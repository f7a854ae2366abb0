package httpclient

import (
	"context"
	"fmt"
)

// Response is the outcome of a successful exchange. The caller owns it.
type Response struct {
	Data    []byte   `json:"data"`
	Headers []Header `json:"headers"`
}

// Text returns the body with every byte mapped to the code point of the same value.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	return DecodeText(r.Data)
}

// Header returns the first response header with the given name.
func (r *Response) Header(name string) (string, bool) {
	if r == nil {
		return "", false
	}
	return FindHeader(r.Headers, name)
}

// Requester issues one blocking request per call and classifies the outcome.
type Requester struct {
	transport Transport
	log       Logger
}

// NewRequester builds a Requester. A nil transport falls back to resty, a nil logger discards traces.
func NewRequester(transport Transport, log Logger) *Requester {
	if transport == nil {
		transport = NewRestyTransport()
	}
	return &Requester{transport: transport, log: ensureLogger(log)}
}

// Request sends a bodyless request with the given headers and returns only once
// the exchange has completed. Statuses outside 2xx yield *TransportError;
// network failures are returned wrapped as reported by the transport.
func (c *Requester) Request(ctx context.Context, method, url string, headers []Header) (*Response, error) {
	if c == nil || c.transport == nil {
		return nil, fmt.Errorf("requester is not initialized")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	c.log.DebugObj("http request", "request", map[string]any{
		"method": method,
		"url":    url,
	})

	raw, err := c.transport.Do(ctx, method, url, headers)
	if err != nil {
		c.log.WarnObj("http request failed", "request_error", map[string]any{
			"method": method,
			"url":    url,
			"error":  err.Error(),
		})
		return nil, fmt.Errorf("%s %s: %w", method, url, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%s %s: transport returned no response", method, url)
	}

	status := raw.StatusCode()
	if status < 200 || status >= 300 {
		return nil, &TransportError{Status: status, StatusText: raw.StatusText()}
	}

	body := raw.Body()
	resp := &Response{
		Data:    append(make([]byte, 0, len(body)), body...),
		Headers: ParseHeaders(raw.RawHeaders()),
	}

	c.log.DebugObj("http response", "response", map[string]any{
		"status":  status,
		"bytes":   len(resp.Data),
		"headers": resp.Headers,
	})
	return resp, nil
}
