package render

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/samvad-hq/searcher/internal/domain"
)

// Columns returns the union of field names across records, in first-seen order.
func Columns(records []domain.Record) []string {
	seen := make(map[string]struct{})
	cols := make([]string, 0)
	for _, rec := range records {
		for _, f := range rec {
			if _, ok := seen[f.Name]; ok {
				continue
			}
			seen[f.Name] = struct{}{}
			cols = append(cols, f.Name)
		}
	}
	return cols
}

// Table projects records into a <table> with one header row and one row per record.
// Missing and null cells render empty. Cell content is always text, never markup.
func Table(records []domain.Record) *html.Node {
	cols := Columns(records)
	table := element(atom.Table)

	header := element(atom.Tr)
	for _, c := range cols {
		header.AppendChild(cell(atom.Th, c))
	}
	table.AppendChild(header)

	for _, rec := range records {
		row := element(atom.Tr)
		for _, c := range cols {
			v, _ := rec.Get(c)
			row.AppendChild(cell(atom.Td, v))
		}
		table.AppendChild(row)
	}
	return table
}

// WriteTable renders records as an HTML table to w.
func WriteTable(w io.Writer, records []domain.Record) error {
	if err := html.Render(w, Table(records)); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func cell(a atom.Atom, text string) *html.Node {
	n := element(a)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}
