package ingest

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/radar/internal/dataset"
)

const conceptsCSV = "\ufefflevel 1,level 2,Authentication,Authentication retention,Authentication Storage Technology\n" +
	"Account,Email,y,2 years,AWS Lambda\n" +
	"Account,Phone\n"

func TestReadCSV(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader(conceptsCSV))
	require.NoError(t, err)

	assert.Equal(t, "level 1", tbl.Columns[0], "BOM stripped")
	require.Len(t, tbl.Records, 2)
	assert.Equal(t, []string{"Account", "Phone"}, tbl.Records[1])

	ds, err := dataset.New(tbl, dataset.Options{Domain: "Concepts"})
	require.NoError(t, err)
	assert.Equal(t, dataset.Ephemeral, ds.Row(0).StorageType)
	assert.Equal(t, dataset.Persisted, ds.Row(1).StorageType)
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, dataset.ErrNoColumns)
}

func TestColumn(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("name,hex\nblue,#1d70b8\n,\ngreen, #00703c\n"))
	require.NoError(t, err)

	hex, err := Column(tbl, "HEX")
	require.NoError(t, err)
	assert.Equal(t, []string{"#1d70b8", "#00703c"}, hex)

	_, err = Column(tbl, "rgb")
	assert.Error(t, err)
}

func TestReadJSON_DefaultSelector(t *testing.T) {
	tbl, err := ReadJSON([]byte(`[
		{"level 1": "Account", "Audit": "y", "Audit retention": 7},
		{"level 1": "Usage", "Analytics": null}
	]`), "")
	require.NoError(t, err)

	assert.Equal(t, []string{"Analytics", "Audit", "Audit retention", "level 1"}, tbl.Columns)
	assert.Equal(t, []string{"", "y", "7", "Account"}, tbl.Records[0])
	assert.Equal(t, []string{"", "", "", "Usage"}, tbl.Records[1])
}

func TestReadJSON_NestedSelector(t *testing.T) {
	tbl, err := ReadJSON([]byte(`{"meta": {"v": 1}, "rows": [{"level 1": "A"}, {"level 1": "B"}]}`), "$.rows[*]")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A"}, {"B"}}, tbl.Records)
}

func TestReadJSON_Errors(t *testing.T) {
	_, err := ReadJSON([]byte(`[1, 2]`), "")
	assert.Error(t, err)

	_, err = ReadJSON([]byte(`{`), "")
	assert.Error(t, err)

	_, err = ReadJSON([]byte(`[]`), "")
	assert.ErrorIs(t, err, dataset.ErrNoColumns)
}

func TestLoad_DispatchesByExtension(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "data/concepts.csv", []byte(conceptsCSV), 0o644))
	require.NoError(t, util.WriteFile(fs, "data/feed.json", []byte(`[{"level 1": "A"}]`), 0o644))
	require.NoError(t, util.WriteFile(fs, "data/radar.xlsx", []byte("PK"), 0o644))

	tbl, err := Load(fs, Source{File: "data/concepts.csv"})
	require.NoError(t, err)
	assert.Len(t, tbl.Records, 2)

	tbl, err = Load(fs, Source{File: "data/feed.json"})
	require.NoError(t, err)
	assert.Equal(t, []string{"level 1"}, tbl.Columns)

	_, err = Load(fs, Source{File: "data/radar.xlsx"})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(fs, Source{File: "data/missing.csv"})
	assert.Error(t, err)
}

func TestLoad_SQLite(t *testing.T) {
	dir := t.TempDir()
	db, err := sql.Open("sqlite", filepath.Join(dir, "events.db"))
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE events ("level 1" TEXT, "level 2" TEXT, "Audit" TEXT, "Audit retention" INTEGER)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO events VALUES ('Sign in', 'Success', 'y', 7), ('Sign in', NULL, NULL, NULL)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	fs := osfs.New(dir)
	tbl, err := Load(fs, Source{File: "events.db", Table: "events"})
	require.NoError(t, err)

	assert.Equal(t, []string{"level 1", "level 2", "Audit", "Audit retention"}, tbl.Columns)
	assert.Equal(t, [][]string{
		{"Sign in", "Success", "y", "7"},
		{"Sign in", "", "", ""},
	}, tbl.Records)

	_, err = Load(fs, Source{File: "events.db", Table: `events"; DROP TABLE events; --`})
	assert.Error(t, err)

	_, err = Load(fs, Source{File: "missing.db"})
	assert.Error(t, err)
}
