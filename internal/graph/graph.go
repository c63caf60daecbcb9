// Package graph is the in-memory representation of a loaded program:
// blocks, ports, and directed edges between ports (spec.md §3/§4.3).
// It is produced once by internal/loader and is immutable for the
// lifetime of the run (spec.md §3 lifecycle).
package graph

import "encoding/json"

// Direction is a port's I/O direction.
type Direction string

const (
	// DirectionInput marks a port that consumes a value.
	DirectionInput Direction = "input"
	// DirectionOutput marks a port that produces a value.
	DirectionOutput Direction = "output"
)

// ExecutionType is the distinguished connection type name that sequences
// side effects (spec.md Glossary: "execution edge").
const ExecutionType = "Execution"

// PortKey identifies one port uniquely across the whole graph: the owning
// block id and the port's own id. It is also the Register's key (spec.md
// §4.5: "keyed by the producing port's identity").
type PortKey struct {
	BlockID uint32
	PortID  uint32
}

// Edge is the single connection a port carries to the opposite port in
// another block. It is stored on both ends of the wire: an input port's
// Edge points upstream to its producer (used by the evaluator's data pull),
// an output port's Edge points downstream to its consumer (used by
// execution-flow traversal). PeerKindID lets the evaluator decide
// Static-vs-Normal/Start resolution without a second catalog round trip.
type Edge struct {
	PeerBlockID uint32
	PeerPortID  uint32
	PeerKindID  uint32
}

// Port is one typed input or output slot on a block instance.
type Port struct {
	ID        uint32
	Direction Direction
	Type      string

	// Literal is the JSON value used when Edge is nil (spec.md §3: "used
	// when no edge feeds this input"). Only meaningful for input ports.
	Literal json.RawMessage

	// Edge is non-nil iff this port is connected to exactly one
	// opposite-direction port in another block.
	Edge *Edge
}

// IsExecution reports whether this port carries the Execution type.
func (p *Port) IsExecution() bool {
	return p != nil && p.Type == ExecutionType
}

// Block is one graph-instance node: a block id, a foreign key into the
// catalog (KindID), and its ordered ports.
type Block struct {
	ID     uint32
	KindID uint32
	Ports  []*Port
}

// Port returns the port with the given id, or nil.
func (b *Block) Port(id uint32) *Port {
	for _, p := range b.Ports {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// ExecOut returns the block's single execution output port - by iteration
// order over its ports, the first one found (spec.md §4.4 tie-break rule:
// "only the first found... is followed"). Returns nil if the block has no
// execution output.
func (b *Block) ExecOut() *Port {
	for _, p := range b.Ports {
		if p.Direction == DirectionOutput && p.IsExecution() {
			return p
		}
	}
	return nil
}

// DataInputs returns the block's input ports whose type is not Execution,
// in declaration order - spec.md §4.4 pull phase: "gather a Value for each
// of b's data-input ports in declared order."
func (b *Block) DataInputs() []*Port {
	var out []*Port
	for _, p := range b.Ports {
		if p.Direction == DirectionInput && !p.IsExecution() {
			out = append(out, p)
		}
	}
	return out
}

// Graph is a fully loaded, structurally validated program.
type Graph struct {
	Blocks []*Block

	byID map[uint32]*Block
}

// New indexes blocks by id for O(1) lookup.
func New(blocks []*Block) *Graph {
	g := &Graph{Blocks: blocks, byID: make(map[uint32]*Block, len(blocks))}
	for _, b := range blocks {
		g.byID[b.ID] = b
	}
	return g
}

// Block returns the block with the given id, or nil.
func (g *Graph) Block(id uint32) *Block {
	return g.byID[id]
}
