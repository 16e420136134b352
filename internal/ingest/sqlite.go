package ingest

import (
	"database/sql"
	"fmt"
	"regexp"

	_ "modernc.org/sqlite"

	"github.com/agentic-research/radar/internal/dataset"
)

// DefaultTable is the SQLite table read when a source names none.
const DefaultTable = "radar"

var tableNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_ ]*$`)

// ReadSQLite reads every row of table from the database at dbPath. Column
// names become headers; NULL cells read as empty.
func ReadSQLite(dbPath, table string) (dataset.Table, error) {
	if table == "" {
		table = DefaultTable
	}
	if !tableNameRe.MatchString(table) {
		return dataset.Table{}, fmt.Errorf("invalid table name %q", table)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return dataset.Table{}, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}
	defer func() { _ = db.Close() }() // safe to ignore

	rows, err := db.Query(fmt.Sprintf(`SELECT * FROM "%s"`, table))
	if err != nil {
		return dataset.Table{}, fmt.Errorf("query %s: %w", table, err)
	}
	defer func() { _ = rows.Close() }() // safe to ignore

	cols, err := rows.Columns()
	if err != nil {
		return dataset.Table{}, fmt.Errorf("read columns: %w", err)
	}
	if len(cols) == 0 {
		return dataset.Table{}, dataset.ErrNoColumns
	}

	t := dataset.Table{Columns: cols}
	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return dataset.Table{}, fmt.Errorf("scan row: %w", err)
		}
		rec := make([]string, len(cols))
		for i, v := range vals {
			rec[i] = cellString(v)
		}
		t.Records = append(t.Records, rec)
	}
	if err := rows.Err(); err != nil {
		return dataset.Table{}, fmt.Errorf("iterate rows: %w", err)
	}
	return t, nil
}
