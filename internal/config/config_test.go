package config

import (
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DirectoryURL != "http://127.0.0.1:8080/" || cfg.CatalogFile != "catalog.json" {
		t.Fatalf("unexpected defaults %#v", cfg)
	}
	if cfg.SearchLimit != 100 || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults %#v", cfg)
	}
	want := []string{"title", "author", "publisher", "extension", "language", "isbn"}
	if !reflect.DeepEqual(cfg.SearchFields, want) {
		t.Fatalf("unexpected search fields %#v", cfg.SearchFields)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DIRECTORY_URL", " http://books.test/index/ ")
	t.Setenv("SEARCH_LIMIT", "5")
	t.Setenv("SEARCH_FIELDS", " Title , ,ISBN")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DirectoryURL != "http://books.test/index/" {
		t.Fatalf("directory_url not trimmed: %q", cfg.DirectoryURL)
	}
	if cfg.SearchLimit != 5 {
		t.Fatalf("search_limit got %d", cfg.SearchLimit)
	}
	if !reflect.DeepEqual(cfg.SearchFields, []string{"title", "isbn"}) {
		t.Fatalf("unexpected search fields %#v", cfg.SearchFields)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"SEARCH_LIMIT":  "0",
		"CATALOG_FILE":  "  ",
		"SEARCH_FIELDS": ", ,",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", key, value)
			}
		})
	}
}
