// Package hierarchy folds filtered rows into the node list of a sunburst.
package hierarchy

import (
	"strings"

	"github.com/agentic-research/radar/api"
	"github.com/agentic-research/radar/internal/dataset"
)

// NotAvailable replaces missing retention and storage technology values.
const NotAvailable = "N/A"

// builder holds the state of one Build call.
type builder struct {
	purposes []string
	palette  []string
	depth    int

	nodes   []api.Node
	byKey   map[string]int // node ID → index into nodes
	nextCol int
}

// Build projects rows onto paths of at most depth segments and collapses
// equal paths into one node. Palette colors go to the first ring in the order
// its nodes appear; deeper nodes inherit their ring ancestor's color.
func Build(rows []dataset.Row, schema *dataset.Schema, depth int, palette []string) *api.Hierarchy {
	b := &builder{
		purposes: schema.PurposeNames(),
		palette:  palette,
		depth:    api.ClampDepth(depth),
		byKey:    make(map[string]int),
	}
	for _, r := range rows {
		b.add(r)
	}
	h := &api.Hierarchy{Depth: b.depth, Nodes: b.nodes}
	if len(b.nodes) > 0 {
		h.Domain = b.nodes[0].Label
	}
	return h
}

// add walks every prefix of the row's truncated path.
func (b *builder) add(r dataset.Row) {
	path := r.Path()
	if len(path) > b.depth {
		path = path[:b.depth]
	}
	meta := b.metadata(r)
	for k := 1; k <= len(path); k++ {
		prefix := path[:k]
		key := NodeID(prefix)
		if i, ok := b.byKey[key]; ok {
			n := &b.nodes[i]
			n.Count++
			if !n.Metadata.Divergent && !sameDetails(n.Metadata.Purposes, meta.Purposes) {
				n.Metadata.Divergent = true
			}
			continue
		}
		n := api.Node{
			ID:       key,
			Label:    prefix[k-1],
			Path:     append([]string(nil), prefix...),
			Count:    1,
			Metadata: meta,
		}
		if k > 1 {
			parent := b.nodes[b.byKey[NodeID(prefix[:k-1])]]
			n.Parent = parent.ID
			n.Color = parent.Color
			if k == 2 {
				n.Color = b.nextColor()
			}
		}
		b.byKey[key] = len(b.nodes)
		b.nodes = append(b.nodes, n)
	}
}

func (b *builder) nextColor() string {
	if len(b.palette) == 0 {
		return ""
	}
	c := b.palette[b.nextCol%len(b.palette)]
	b.nextCol++
	return c
}

// metadata captures the row's per-purpose annotations.
func (b *builder) metadata(r dataset.Row) api.Metadata {
	details := make([]api.PurposeDetail, len(b.purposes))
	for i, p := range b.purposes {
		d := api.PurposeDetail{Purpose: p, Retention: NotAvailable, StorageTechnology: NotAvailable}
		if i < len(r.Purposes) {
			if v := r.Purposes[i].Retention; v != "" {
				d.Retention = v
			}
			if v := r.Purposes[i].StorageTechnology; v != "" {
				d.StorageTechnology = v
			}
		}
		details[i] = d
	}
	return api.Metadata{Purposes: details}
}

func sameDetails(a, b []api.PurposeDetail) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

var idEscaper = strings.NewReplacer(`\`, `\\`, "/", `\/`)

// NodeID joins path segments with "/". Backslashes and slashes inside a
// segment are escaped so distinct paths never share an ID.
func NodeID(path []string) string {
	segs := make([]string, len(path))
	for i, p := range path {
		segs[i] = idEscaper.Replace(p)
	}
	return strings.Join(segs, "/")
}
