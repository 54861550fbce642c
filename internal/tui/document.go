package tui

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadDocument parses a YAML (or JSON) file and keeps key order.
func LoadDocument(path string) (*yaml.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &doc, nil
}

// RowsFromDocument reads a sequence of mappings into a header and rows. The
// header follows the key order of the first mapping.
func RowsFromDocument(doc *yaml.Node) ([]string, [][]string, error) {
	n := doc
	if n != nil && n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return nil, nil, nil
		}
		n = n.Content[0]
	}
	if n == nil {
		return nil, nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, nil, errors.New("table data must be a list of records")
	}

	var header []string
	var rows [][]string
	for i, rec := range n.Content {
		if rec.Kind != yaml.MappingNode {
			return nil, nil, fmt.Errorf("record %d is not a mapping", i)
		}
		values := make(map[string]string, len(rec.Content)/2)
		for j := 0; j+1 < len(rec.Content); j += 2 {
			key := rec.Content[j].Value
			if i == 0 {
				header = append(header, key)
			}
			if v := rec.Content[j+1]; v.Tag != "!!null" {
				values[key] = v.Value
			}
		}
		row := make([]string, len(header))
		for k, col := range header {
			row[k] = values[col]
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}
