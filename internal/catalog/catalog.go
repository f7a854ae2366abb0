package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/samvad-hq/searcher/internal/domain"
	"github.com/samvad-hq/searcher/pkg/webdir"
)

// Package catalog loads result records from a served file and matches queries against them.

// Catalog holds records in file order.
type Catalog struct {
	records []domain.Record
	fields  []string
}

// Load fetches the named catalog file from dir and decodes it.
func Load(ctx context.Context, dir *webdir.Directory, name string, fields []string) (*Catalog, error) {
	if dir == nil {
		return nil, errors.New("catalog directory is nil")
	}
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("catalog file name is empty")
	}

	raw, err := dir.AtomicRead(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	return Parse(raw, fields)
}

// Parse decodes a JSON or YAML sequence of flat mappings.
func Parse(data []byte, fields []string) (*Catalog, error) {
	records, err := decodeRecords(data)
	if err != nil {
		return nil, err
	}
	return &Catalog{records: records, fields: normalizeFields(fields)}, nil
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// Search returns up to limit records where every query token is contained in
// at least one searchable field. Matching is case-insensitive.
func (c *Catalog) Search(query string, limit int) []domain.Record {
	tokens := strings.Fields(strings.ToLower(query))
	if c == nil || len(tokens) == 0 || limit <= 0 {
		return []domain.Record{}
	}

	out := make([]domain.Record, 0, min(limit, len(c.records)))
	for _, rec := range c.records {
		if len(out) == limit {
			break
		}
		if c.matches(rec, tokens) {
			out = append(out, rec)
		}
	}
	return out
}

func (c *Catalog) matches(rec domain.Record, tokens []string) bool {
	values := make([]string, 0, len(c.fields))
	for _, name := range c.fields {
		if v, ok := rec.Get(name); ok && v != "" {
			values = append(values, strings.ToLower(v))
		}
	}

	for _, tok := range tokens {
		found := false
		for _, v := range values {
			if strings.Contains(v, tok) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func decodeRecords(data []byte) ([]domain.Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return []domain.Record{}, nil
	}

	root := resolve(doc.Content[0])
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("decode catalog: expected a list of records at line %d", root.Line)
	}

	records := make([]domain.Record, 0, len(root.Content))
	for i, item := range root.Content {
		rec, err := decodeRecord(resolve(item))
		if err != nil {
			return nil, fmt.Errorf("record[%d]: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func decodeRecord(node *yaml.Node) (domain.Record, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a mapping at line %d", node.Line)
	}

	rec := make(domain.Record, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := resolve(node.Content[i])
		val := resolve(node.Content[i+1])
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("non-scalar field name at line %d", key.Line)
		}
		if val.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("field %q: nested values are not supported", key.Value)
		}

		field := domain.Field{Name: key.Value}
		if val.ShortTag() != "!!null" {
			field.Value = domain.Str(val.Value)
		}
		rec = append(rec, field)
	}
	return rec, nil
}

func resolve(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func normalizeFields(fields []string) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}
