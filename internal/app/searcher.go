package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/samvad-hq/searcher/internal/catalog"
	"github.com/samvad-hq/searcher/internal/config"
	"github.com/samvad-hq/searcher/internal/domain"
	"github.com/samvad-hq/searcher/internal/logger"
	"github.com/samvad-hq/searcher/pkg/httpclient"
	"github.com/samvad-hq/searcher/pkg/render"
	"github.com/samvad-hq/searcher/pkg/webdir"
)

// Searcher wires the remote directory, the catalog and the table renderer.
// Each Run performs its requests in program order and returns once the table is written.
type Searcher struct {
	cfg *config.Config
	dir *webdir.Directory
	log logger.Logger
}

// NewSearcher builds a searcher runtime from config.
func NewSearcher(cfg *config.Config, transport httpclient.Transport, log logger.Logger) (*Searcher, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}

	client := httpclient.NewRequester(transport, log)
	dir := webdir.Open(cfg.DirectoryURL, client)
	log.InfoObj("directory opened", "directory_config", map[string]any{
		"url":     cfg.DirectoryURL,
		"catalog": cfg.CatalogFile,
	})

	return &Searcher{cfg: cfg, dir: dir, log: log}, nil
}

// Search loads the catalog and returns the records matching query.
func (s *Searcher) Search(ctx context.Context, query string) ([]domain.Record, error) {
	if s == nil || s.dir == nil {
		return nil, fmt.Errorf("searcher is not initialized")
	}

	start := time.Now()
	cat, err := catalog.Load(ctx, s.dir, s.cfg.CatalogFile, s.cfg.SearchFields)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	results := cat.Search(query, s.cfg.SearchLimit)
	s.log.InfoObj("search completed", "search_meta", map[string]any{
		"query":      query,
		"catalog":    cat.Len(),
		"results":    len(results),
		"elapsed_ms": time.Since(start).Milliseconds(),
	})
	return results, nil
}

// Run searches for query and writes the result table to out.
func (s *Searcher) Run(ctx context.Context, query string, out io.Writer) error {
	results, err := s.Search(ctx, query)
	if err != nil {
		return err
	}
	if err := render.WriteTable(out, results); err != nil {
		return err
	}
	return nil
}
