// Package catalog implements the block-kind registry spec.md §4.2
// describes: a registry of available block kinds (id -> descriptor +
// handler), providing metadata for the editor and a typed execute method for
// the evaluator. Grounded in
// internal/interp/builtins/registry.go's Registry (map+mutex, category
// index, sorted listing), adapted from string-keyed built-in functions to
// uint32-keyed block kinds with Start/Normal/Static categories instead of
// math/string/io/... categories.
package catalog

import (
	"sort"
	"sync"

	"github.com/nodeflow/bme/internal/value"
)

// Category is the block's evaluation policy class (spec.md §4.2).
type Category string

const (
	// CategoryStart marks the unique seed block of a graph.
	CategoryStart Category = "Start"
	// CategoryNormal marks a stateful block, visited by execution flow and
	// cached in the register.
	CategoryNormal Category = "Normal"
	// CategoryStatic marks a pure block, re-evaluated on every data pull.
	CategoryStatic Category = "Static"
)

// OutputValue is one entry a Handler returns: the Value produced for one of
// the block's declared outputs, identified by its conventional port id.
type OutputValue struct {
	PortID uint32
	Value  value.Value
}

// InputPortID and OutputPortID compute the conventional port id for the k-th
// (0-indexed) declared input/output, following the same id=2+2k /
// id=3+2k layout json.go's nodesFor builds the descriptor JSON from. Handler
// implementations use OutputPortID to tag the OutputValue they return for
// each declared output.
func InputPortID(k int) uint32 { return uint32(2 + 2*k) }

// OutputPortID computes the conventional port id for the k-th declared
// output; see InputPortID.
func OutputPortID(k int) uint32 { return uint32(3 + 2*k) }

// Handler is a block kind's typed execute method. It receives inputs in
// declared order and the graph-instance block id that is executing (some
// handlers are id-sensitive only for diagnostics), and returns one
// OutputValue per declared output type, in declared order.
type Handler func(inputs []value.Value, blockID uint32) ([]OutputValue, error)

// Descriptor is one catalog entry (spec.md §4.2).
type Descriptor struct {
	ID          uint32
	Name        string
	Category    Category
	InputTypes  []string
	OutputTypes []string
	Handler     Handler
}

// Registry holds the available block kinds for one engine instance. It is
// built once at program startup and is immutable thereafter (spec.md §3
// lifecycle); all methods are safe for concurrent read access, matching the
// "shared-read-only across runs" resource model in spec.md §5.
type Registry struct {
	mu    sync.RWMutex
	byID  map[uint32]*Descriptor
	order []uint32
}

// NewRegistry returns an empty catalog.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[uint32]*Descriptor)}
}

// Register adds a block kind. Registering a second Start-category kind is
// not rejected here (the catalog may define it; spec.md constrains at most
// one Start *block* to appear in a graph, which the loader enforces) but
// callers should treat a catalog with more than one Start kind as
// misconfigured.
func (r *Registry) Register(d Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := d
	if _, exists := r.byID[d.ID]; !exists {
		r.order = append(r.order, d.ID)
	}
	r.byID[d.ID] = &cp
}

// Get returns the descriptor for a catalog-unique id.
func (r *Registry) Get(id uint32) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byID[id]
	return d, ok
}

// ByCategory returns the descriptors of a given category, in registration
// order.
func (r *Registry) ByCategory(cat Category) []*Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Descriptor
	for _, id := range r.order {
		if d := r.byID[id]; d.Category == cat {
			out = append(out, d)
		}
	}
	return out
}

// StartKind returns the catalog's Start descriptor. spec.md §3: "only one
// Start kind may be present in a well-formed catalog." Registering more
// than one is a configuration bug on the host's part; StartKind reports the
// first one found in registration order and ok=false only when none exist.
func (r *Registry) StartKind() (*Descriptor, bool) {
	starts := r.ByCategory(CategoryStart)
	if len(starts) == 0 {
		return nil, false
	}
	return starts[0], true
}

// All returns every descriptor in registration order.
func (r *Registry) All() []*Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Descriptor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// SortedByID returns every descriptor ordered by numeric id, for
// deterministic catalog JSON export.
func (r *Registry) SortedByID() []*Descriptor {
	out := r.All()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
