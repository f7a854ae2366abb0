package app

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/samvad-hq/searcher/internal/config"
	"github.com/samvad-hq/searcher/pkg/httpclient"
)

const catalogJSON = `[
  {"title": "Dune", "author": "Herbert", "extension": "epub"},
  {"title": "Dune Messiah", "author": "Herbert", "isbn": "9780593098233"},
  {"title": "Emma", "author": "Austen"}
]`

func testConfig(url string) *config.Config {
	return &config.Config{
		DirectoryURL: url,
		CatalogFile:  "catalog.json",
		SearchLimit:  10,
		SearchFields: []string{"title", "author", "isbn"},
	}
}

func TestSearcherRunWritesResultTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/catalog.json" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(catalogJSON))
	}))
	defer srv.Close()

	s, err := NewSearcher(testConfig(srv.URL+"/"), nil, nil)
	if err != nil {
		t.Fatalf("NewSearcher: %v", err)
	}

	var buf bytes.Buffer
	if err := s.Run(context.Background(), "dune herbert", &buf); err != nil {
		t.Fatalf("Run: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	if got := doc.Find("th").Length(); got != 4 {
		t.Fatalf("expected 4 columns, got %d", got)
	}
	if got := doc.Find("tr").Length(); got != 3 {
		t.Fatalf("expected header + 2 rows, got %d", got)
	}
	if got := doc.Find("tr").Eq(2).Find("td").Eq(3).Text(); got != "9780593098233" {
		t.Fatalf("unexpected isbn cell %q", got)
	}
}

func TestSearcherSurfacesTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	s, err := NewSearcher(testConfig(srv.URL+"/"), nil, nil)
	if err != nil {
		t.Fatalf("NewSearcher: %v", err)
	}

	_, err = s.Search(context.Background(), "dune")
	var terr *httpclient.TransportError
	if !errors.As(err, &terr) || terr.Status != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 TransportError, got %v", err)
	}
}

func TestNewSearcherRequiresConfig(t *testing.T) {
	if _, err := NewSearcher(nil, nil, nil); err == nil {
		t.Fatalf("expected error for nil config")
	}
}
