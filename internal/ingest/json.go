package ingest

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/ohler55/ojg/jp"

	"github.com/agentic-research/radar/internal/dataset"
)

// DefaultSelector treats the document as a top-level array of row objects.
const DefaultSelector = "$[*]"

// ReadJSON selects row objects from data with a JSONPath selector. Columns
// are the union of the objects' keys, sorted.
func ReadJSON(data []byte, selector string) (dataset.Table, error) {
	if selector == "" {
		selector = DefaultSelector
	}
	x, err := jp.ParseString(selector)
	if err != nil {
		return dataset.Table{}, fmt.Errorf("invalid jsonpath '%s': %w", selector, err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return dataset.Table{}, fmt.Errorf("parse json: %w", err)
	}

	matches := x.Get(doc)
	objects := make([]map[string]any, 0, len(matches))
	keys := make(map[string]bool)
	for i, m := range matches {
		obj, ok := m.(map[string]any)
		if !ok {
			return dataset.Table{}, fmt.Errorf("row %d: want object, got %T", i, m)
		}
		for k := range obj {
			keys[k] = true
		}
		objects = append(objects, obj)
	}
	if len(keys) == 0 {
		return dataset.Table{}, dataset.ErrNoColumns
	}

	t := dataset.Table{Columns: make([]string, 0, len(keys))}
	for k := range keys {
		t.Columns = append(t.Columns, k)
	}
	sort.Strings(t.Columns)

	t.Records = make([][]string, len(objects))
	for i, obj := range objects {
		rec := make([]string, len(t.Columns))
		for j, c := range t.Columns {
			rec[j] = cellString(obj[c])
		}
		t.Records[i] = rec
	}
	return t, nil
}
