package webdir

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/samvad-hq/searcher/pkg/httpclient"
)

// Directory exposes files served below a base URL.
type Directory struct {
	baseURL string
	client  *httpclient.Requester
}

// Open returns a Directory rooted at baseURL. File names are appended verbatim.
func Open(baseURL string, client *httpclient.Requester) *Directory {
	if client == nil {
		client = httpclient.NewRequester(nil, nil)
	}
	return &Directory{baseURL: baseURL, client: client}
}

// File returns a handle for the named file. No request is made.
func (d *Directory) File(name string) *File {
	return &File{url: d.baseURL + name, client: d.client}
}

// AtomicRead fetches the whole named file.
func (d *Directory) AtomicRead(ctx context.Context, name string) ([]byte, error) {
	return d.File(name).ReadAll(ctx)
}

// Exists reports whether the named file is served with a non-zero length.
func (d *Directory) Exists(ctx context.Context, name string) (bool, error) {
	n, err := d.File(name).Len(ctx)
	if err != nil {
		var terr *httpclient.TransportError
		if errors.As(err, &terr) && terr.Status == http.StatusNotFound {
			return false, nil
		}
		return false, err
	}
	return n > 0, nil
}

// File is a remote file read through byte-range requests.
type File struct {
	url    string
	client *httpclient.Requester
}

// URL returns the absolute location of the file.
func (f *File) URL() string { return f.url }

// ReadAll fetches the full file body.
func (f *File) ReadAll(ctx context.Context) ([]byte, error) {
	resp, err := f.client.Request(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.url, err)
	}
	return resp.Data, nil
}

// ReadBytes fetches bytes in [start, end).
func (f *File) ReadBytes(ctx context.Context, start, end int64) ([]byte, error) {
	if start < 0 || start >= end {
		return nil, fmt.Errorf("invalid byte range [%d, %d)", start, end)
	}
	headers := []httpclient.Header{{Name: "Range", Value: rangeValue(start, end)}}
	resp, err := f.client.Request(ctx, http.MethodGet, f.url, headers)
	if err != nil {
		return nil, fmt.Errorf("read %s range [%d, %d): %w", f.url, start, end, err)
	}
	// A server that ignores Range replies with the whole file and no content-range.
	if _, ok := resp.Header("content-range"); !ok {
		return nil, fmt.Errorf("read %s range [%d, %d): server ignored range", f.url, start, end)
	}
	if int64(len(resp.Data)) > end-start {
		return nil, fmt.Errorf("read %s range [%d, %d): got %d bytes", f.url, start, end, len(resp.Data))
	}
	return resp.Data, nil
}

// Len returns the file size reported by the content-length header of a HEAD request.
func (f *File) Len(ctx context.Context) (int64, error) {
	resp, err := f.client.Request(ctx, http.MethodHead, f.url, nil)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", f.url, err)
	}
	raw, ok := resp.Header("content-length")
	if !ok {
		return 0, fmt.Errorf("stat %s: missing content-length", f.url)
	}
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("stat %s: invalid content-length %q", f.url, raw)
	}
	return n, nil
}

// rangeValue formats an inclusive HTTP byte range for the half-open [start, end).
func rangeValue(start, end int64) string {
	return fmt.Sprintf("bytes=%d-%d", start, end-1)
}
