package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/agentic-research/radar/internal/dataset"
)

const utf8BOM = "\ufeff"

// ReadCSV reads a header row followed by records. Records may be shorter or
// longer than the header; missing cells read as empty.
func ReadCSV(r io.Reader) (dataset.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return dataset.Table{}, dataset.ErrNoColumns
	}
	if err != nil {
		return dataset.Table{}, fmt.Errorf("read csv header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	t := dataset.Table{Columns: header}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return dataset.Table{}, fmt.Errorf("read csv record %d: %w", len(t.Records)+1, err)
		}
		t.Records = append(t.Records, rec)
	}
	return t, nil
}

// Column returns the non-empty values of the named column.
func Column(t dataset.Table, name string) ([]string, error) {
	idx := -1
	for i, c := range t.Columns {
		if strings.EqualFold(strings.TrimSpace(c), name) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("column %q not found", name)
	}
	var out []string
	for _, rec := range t.Records {
		if idx < len(rec) {
			if v := strings.TrimSpace(rec[idx]); v != "" {
				out = append(out, v)
			}
		}
	}
	return out, nil
}
