// Package facet filters a dataset by facet selections and derives the options
// each facet may still offer.
//
// Every facet value is precomputed into a row bitmap when the Index is built,
// giving a column-major incidence table of values by rows. Filtering is then
// an AND over a handful of bitmaps, and option derivation is an Intersects
// test per candidate value.
package facet

import (
	"strings"

	"github.com/RoaringBitmap/roaring"

	"github.com/agentic-research/radar/internal/dataset"
)

// valueIndex maps distinct cell values to the rows holding them.
type valueIndex struct {
	order []string // first-seen order
	rows  map[string]*roaring.Bitmap
}

func newValueIndex() *valueIndex {
	return &valueIndex{rows: make(map[string]*roaring.Bitmap)}
}

func (v *valueIndex) add(value string, row uint32) {
	if value == "" {
		return
	}
	bm, ok := v.rows[value]
	if !ok {
		bm = roaring.New()
		v.rows[value] = bm
		v.order = append(v.order, value)
	}
	bm.Add(row)
}

// get returns the rows for value. The result is shared; callers must not modify it.
func (v *valueIndex) get(value string) *roaring.Bitmap {
	if bm, ok := v.rows[value]; ok {
		return bm
	}
	return empty
}

var empty = roaring.New()

// purposeIndex holds the bitmaps of a single purpose.
type purposeIndex struct {
	name      string
	flagged   *roaring.Bitmap
	retention *valueIndex // this purpose's retention column only
	tech      *valueIndex // this purpose's storage technology column only
	hasFlag   bool
	hasRet    bool
	hasTech   bool
}

// Index is the read-only incidence table of one dataset.
type Index struct {
	ds       *dataset.Dataset
	universe *roaring.Bitmap

	search    *valueIndex // domain + level cells
	levels    *valueIndex // level cells, column-major first-seen order
	retention *valueIndex // any retention column
	tech      *valueIndex // any storage technology column
	types     map[dataset.StorageType]*roaring.Bitmap
	purposes  []*purposeIndex
}

// NewIndex scans ds once and builds every facet bitmap.
func NewIndex(ds *dataset.Dataset) *Index {
	schema := ds.Schema()
	ix := &Index{
		ds:        ds,
		universe:  roaring.New(),
		search:    newValueIndex(),
		levels:    newValueIndex(),
		retention: newValueIndex(),
		tech:      newValueIndex(),
		types:     make(map[dataset.StorageType]*roaring.Bitmap, len(dataset.StorageTypes)),
		purposes:  make([]*purposeIndex, len(schema.Purposes)),
	}
	ix.universe.AddRange(0, uint64(ds.Len()))
	for _, st := range dataset.StorageTypes {
		ix.types[st] = roaring.New()
	}
	for p, pc := range schema.Purposes {
		ix.purposes[p] = &purposeIndex{
			name:      pc.Purpose,
			flagged:   roaring.New(),
			retention: newValueIndex(),
			tech:      newValueIndex(),
			hasFlag:   pc.Flag >= 0,
			hasRet:    pc.Retention >= 0,
			hasTech:   pc.StorageTechnology >= 0,
		}
	}

	rows := ds.Rows()
	for i, r := range rows {
		id := uint32(i)
		for _, v := range r.SearchValues() {
			ix.search.add(v, id)
		}
		ix.types[r.StorageType].Add(id)
		for p, pv := range r.Purposes {
			pi := ix.purposes[p]
			if pv.Flagged {
				pi.flagged.Add(id)
			}
			pi.retention.add(pv.Retention, id)
			pi.tech.add(pv.StorageTechnology, id)
			ix.retention.add(pv.Retention, id)
			ix.tech.add(pv.StorageTechnology, id)
		}
	}
	// Level values are ordered column by column: every level 1 value, then
	// every new level 2 value, and so on.
	for l := 0; l < dataset.LevelCount; l++ {
		for i, r := range rows {
			ix.levels.add(r.Levels[l], uint32(i))
		}
	}
	return ix
}

// Dataset returns the indexed snapshot.
func (ix *Index) Dataset() *dataset.Dataset { return ix.ds }

// All returns a fresh bitmap of every row.
func (ix *Index) All() *roaring.Bitmap { return ix.universe.Clone() }

func (ix *Index) purpose(name string) *purposeIndex {
	for _, p := range ix.purposes {
		if p.name == name {
			return p
		}
	}
	return nil
}

// storageTypeRows matches the selection case-insensitively.
func (ix *Index) storageTypeRows(v string) *roaring.Bitmap {
	st, ok := dataset.ParseStorageType(strings.TrimSpace(v))
	if !ok {
		return empty
	}
	return ix.types[st]
}
