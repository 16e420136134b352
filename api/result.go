package api

import "fmt"

// Option is one selectable entry of a facet control.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ShowAll is the leading entry of every OptionSet.
var ShowAll = Option{Label: ShowAllLabel, Value: All}

// NoData is the sentinel entry offered when narrowing leaves no candidates.
var NoData = Option{Label: NoDataLabel, Value: None}

// OptionSet is the ordered option list for one facet, always led by ShowAll.
type OptionSet []Option

// NoDataOptions returns the set offered when a facet has no candidates.
func NoDataOptions() OptionSet {
	return OptionSet{ShowAll, NoData}
}

// Values returns the option values excluding "all" and "none".
func (o OptionSet) Values() []string {
	var vals []string
	for _, opt := range o {
		if opt.Value == All || opt.Value == None {
			continue
		}
		vals = append(vals, opt.Value)
	}
	return vals
}

// IsNoData reports whether the set is the sentinel set.
func (o OptionSet) IsNoData() bool {
	return len(o) == 2 && o[0] == ShowAll && o[1] == NoData
}

// Contains reports whether v is offered.
func (o OptionSet) Contains(v string) bool {
	for _, opt := range o {
		if opt.Value == v {
			return true
		}
	}
	return false
}

// PurposeDetail is the retention and storage annotation for one purpose.
type PurposeDetail struct {
	Purpose           string `json:"purpose"`
	Retention         string `json:"retention"`
	StorageTechnology string `json:"storage_technology"`
}

// Metadata is the tooltip payload of a hierarchy node.
type Metadata struct {
	Purposes []PurposeDetail `json:"purposes"`
	// Divergent is set when rows folded into the node disagree with the
	// first row's annotations. The first row's values are kept.
	Divergent bool `json:"divergent,omitempty"`
}

// HoverLines renders one tooltip line per purpose.
func (m Metadata) HoverLines() []string {
	lines := make([]string, 0, len(m.Purposes))
	for _, p := range m.Purposes {
		lines = append(lines, fmt.Sprintf("%s: %s | Storage: %s", p.Purpose, p.Retention, p.StorageTechnology))
	}
	return lines
}

// Node is one segment of the sunburst. ID is the path joined with "/", with
// any "/" or "\" inside a label escaped with a backslash.
type Node struct {
	ID       string   `json:"id"`
	Parent   string   `json:"parent"`
	Label    string   `json:"label"`
	Path     []string `json:"path"`
	Color    string   `json:"color,omitempty"`
	Count    int      `json:"count"`
	Metadata Metadata `json:"metadata"`
}

// Depth is the number of path segments, root included.
func (n Node) Depth() int { return len(n.Path) }

// Hierarchy is the tree built from a filtered row set. Nodes are in the order
// the builder produced them, root first; parents always precede children.
type Hierarchy struct {
	Domain string `json:"domain"`
	Depth  int    `json:"depth"`
	Nodes  []Node `json:"nodes"`
}

// Root returns the domain node.
func (h *Hierarchy) Root() (Node, bool) {
	if h == nil || len(h.Nodes) == 0 {
		return Node{}, false
	}
	return h.Nodes[0], true
}

// Children returns the direct children of the node with the given ID.
func (h *Hierarchy) Children(id string) []Node {
	if h == nil {
		return nil
	}
	var out []Node
	for _, n := range h.Nodes {
		if n.Parent == id && n.ID != id {
			out = append(out, n)
		}
	}
	return out
}

// Leaves returns nodes without children.
func (h *Hierarchy) Leaves() []Node {
	if h == nil {
		return nil
	}
	parents := make(map[string]bool, len(h.Nodes))
	for _, n := range h.Nodes {
		if n.Depth() > 1 {
			parents[n.Parent] = true
		}
	}
	var out []Node
	for _, n := range h.Nodes {
		if !parents[n.ID] {
			out = append(out, n)
		}
	}
	return out
}

// PurposeCard is the description panel for the selected purpose.
type PurposeCard struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Visible     bool   `json:"visible"`
}

// Result is everything the presentation layer needs to redraw.
// Results may be shared between callers and must not be mutated.
type Result struct {
	State   FilterState         `json:"state"`
	Rows    int                 `json:"rows"`
	Empty   bool                `json:"empty"`
	Options map[Facet]OptionSet `json:"options"`
	// Hierarchy is nil when Empty is set.
	Hierarchy   *Hierarchy  `json:"hierarchy,omitempty"`
	Placeholder string      `json:"placeholder,omitempty"`
	Purpose     PurposeCard `json:"purpose"`
}
