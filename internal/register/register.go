// Package register implements the Register spec.md §4.5 describes: a
// per-run cache of producer outputs, keyed by the producing port's
// identity rather than the consumer's, so that multiple consumers of one
// Normal/Start output read the same cached entry without re-triggering a
// side effect.
package register

import "github.com/nodeflow/bme/internal/value"

// Register is trivial keyed storage. Reads never block; writes overwrite.
// It is created empty at the start of each run and dropped at run end
// (spec.md §3 lifecycle); it is never shared across runs.
type Register struct {
	entries map[key]value.Value
}

type key struct {
	blockID uint32
	portID  uint32
}

// New returns an empty register.
func New() *Register {
	return &Register{entries: make(map[key]value.Value)}
}

// Set stores v as the cached output of (blockID, portID), overwriting any
// previous entry.
func (r *Register) Set(blockID, portID uint32, v value.Value) {
	r.entries[key{blockID, portID}] = v
}

// Get returns the cached output of (blockID, portID), if present.
func (r *Register) Get(blockID, portID uint32) (value.Value, bool) {
	v, ok := r.entries[key{blockID, portID}]
	return v, ok
}

// Clear empties the register. The evaluator does not call it: each
// Execute starts from a new register built by New instead.
func (r *Register) Clear() {
	r.entries = make(map[key]value.Value)
}

// Snapshot is one entry of a register dump, used for the façade's
// debugging output on a failed run.
type Snapshot struct {
	BlockID uint32
	PortID  uint32
	Value   value.Value
}

// Dump returns every cached entry, in no particular order - callers
// that need a deterministic rendering (the façade's debug dump) sort it
// themselves.
func (r *Register) Dump() []Snapshot {
	out := make([]Snapshot, 0, len(r.entries))
	for k, v := range r.entries {
		out = append(out, Snapshot{BlockID: k.blockID, PortID: k.portID, Value: v})
	}
	return out
}
