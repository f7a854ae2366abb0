package httpclient

import (
	"bytes"
	"context"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
)

// RestyTransport adapts resty.Client to the httpclient.Transport interface.
type RestyTransport struct {
	client *resty.Client
}

// NewRestyTransport creates a transport without a request timeout.
func NewRestyTransport() *RestyTransport {
	return &RestyTransport{client: newRestyBaseClient()}
}

// NewRestyTransportWithClient wraps an already configured resty.Client.
func NewRestyTransportWithClient(client *resty.Client) *RestyTransport {
	if client == nil {
		client = newRestyBaseClient()
	}
	return &RestyTransport{client: client}
}

// newRestyBaseClient creates a resty.Client with no timeout and no retries.
func newRestyBaseClient() *resty.Client {
	c := resty.New()
	c.SetRetryCount(0)
	return c
}

// Do performs a bodyless request and waits for the full response.
func (r *RestyTransport) Do(ctx context.Context, method, url string, headers []Header) (RawResponse, error) {
	req := r.client.R().SetContext(ctx)
	for _, h := range headers {
		req.Header.Add(h.Name, h.Value)
	}
	resp, err := req.Execute(method, url)
	if err != nil {
		return nil, err
	}
	return &restyResponseAdapter{resp: resp}, nil
}

// restyResponseAdapter adapts resty.Response to the httpclient.RawResponse interface.
type restyResponseAdapter struct {
	resp *resty.Response
}

func (r *restyResponseAdapter) Body() []byte    { return r.resp.Body() }
func (r *restyResponseAdapter) StatusCode() int { return r.resp.StatusCode() }

// StatusText strips the numeric code from the status line, "404 Not Found" -> "Not Found".
func (r *restyResponseAdapter) StatusText() string {
	return reasonPhrase(r.resp.StatusCode(), r.resp.Status())
}

func (r *restyResponseAdapter) RawHeaders() string {
	var buf bytes.Buffer
	if err := r.resp.Header().Write(&buf); err != nil {
		return ""
	}
	return buf.String()
}

func reasonPhrase(code int, status string) string {
	status = strings.TrimSpace(status)
	return strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(code)))
}
