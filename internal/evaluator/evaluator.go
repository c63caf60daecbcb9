// Package evaluator implements the recursive pull/push interpreter spec.md
// §4.4 describes: execution flow drives a depth-first walk over Normal
// blocks, and each block's data inputs are resolved just-in-time by either
// reading the per-run register (Normal/Start producers) or recursively
// re-evaluating a producer (Static producers). Grounded in
// internal/interp/runner/runner.go's top-level run loop and
// internal/interp/evaluator/callstack.go's recursion guard, adapted from a
// tree-walking script interpreter to a port-graph walker.
package evaluator

import (
	"github.com/nodeflow/bme/internal/bmeerrors"
	"github.com/nodeflow/bme/internal/catalog"
	"github.com/nodeflow/bme/internal/graph"
	"github.com/nodeflow/bme/internal/register"
	"github.com/nodeflow/bme/internal/value"
)

// DefaultMaxDepth is the recursion limit applied when a caller does not pick
// one explicitly (spec.md §5 suggests 1024 as a sane default for hand- and
// tool-authored graphs).
const DefaultMaxDepth = 1024

// Evaluator runs one loaded graph against one catalog. It holds no run
// state of its own - Execute creates a fresh register and call stack on
// every invocation (spec.md §3 lifecycle) - so one Evaluator may run the
// same graph repeatedly, or concurrently, with distinct seeds.
type Evaluator struct {
	graph    *graph.Graph
	catalog  *catalog.Registry
	types    *value.TypeRegistry
	maxDepth int
}

// New returns an Evaluator bound to g and cat, using DefaultMaxDepth.
func New(g *graph.Graph, cat *catalog.Registry, types *value.TypeRegistry) *Evaluator {
	return &Evaluator{graph: g, catalog: cat, types: types, maxDepth: DefaultMaxDepth}
}

// NewWithMaxDepth is New with an explicit recursion limit, for callers
// running graphs deep or pathological enough that the default is wrong in
// either direction.
func NewWithMaxDepth(g *graph.Graph, cat *catalog.Registry, types *value.TypeRegistry, maxDepth int) *Evaluator {
	return &Evaluator{graph: g, catalog: cat, types: types, maxDepth: maxDepth}
}

// Execute runs one pass over the graph: it clears a fresh register, seeds
// the Start block's declared outputs with seed (spec.md §4.4: "seed values
// are written to the register under the Start block's own output ports
// before execution begins"), then walks execution flow from Start. It
// returns the register so callers (the façade's debug dump) can inspect
// every cached value after the run, win or lose.
func (e *Evaluator) Execute(seed []value.Value) (*register.Register, error) {
	start, err := e.findStart()
	if err != nil {
		return nil, err
	}

	reg := register.New()
	for i, v := range seed {
		reg.Set(start.ID, catalog.OutputPortID(i), v)
	}

	cs := newCallStack(e.maxDepth)
	if err := e.executeBlock(start, reg, cs); err != nil {
		return reg, err
	}
	return reg, nil
}

// findStart locates the graph's unique Start-category block instance.
// internal/loader validates at most one exists; this also handles a graph
// with zero.
func (e *Evaluator) findStart() (*graph.Block, error) {
	for _, b := range e.graph.Blocks {
		kind, ok := e.catalog.Get(b.KindID)
		if ok && kind.Category == catalog.CategoryStart {
			return b, nil
		}
	}
	return nil, bmeerrors.NoStart()
}

// executeBlock is the push phase: resolve b's own outputs (dispatching its
// handler along the way, via resolveBlock), cache them, then follow the
// single execution-output edge to the next Normal block, if any (spec.md
// §4.4 tie-break: "only the first execution-output port found is
// followed").
func (e *Evaluator) executeBlock(b *graph.Block, reg *register.Register, cs *callStack) error {
	if err := cs.push(); err != nil {
		return err
	}
	defer cs.pop()

	outputs, err := e.resolveBlock(b, reg, cs)
	if err != nil {
		return err
	}
	for _, o := range outputs {
		reg.Set(b.ID, o.PortID, o.Value)
	}

	out := b.ExecOut()
	if out == nil || out.Edge == nil {
		return nil
	}
	next := e.graph.Block(out.Edge.PeerBlockID)
	if next == nil {
		return bmeerrors.MissingBlock(out.Edge.PeerBlockID)
	}
	return e.executeBlock(next, reg, cs)
}

// resolveBlock is the pull phase for a single block: gather a Value for
// each of b's data-input ports (spec.md §4.4 order: declared order), then
// dispatch b's handler and return its declared outputs. It serves two
// callers with the same logic: executeBlock (the block being visited by
// execution flow) and itself, recursively, when a Static producer must be
// re-evaluated to answer a consumer's pull (spec.md §4.4: "a Static
// producer is re-run on every pull, never cached"). A Start block returns no
// outputs - its outputs are the seed, written once by Execute and never
// re-dispatched (spec.md §9 Open Question: Start is seed-only).
func (e *Evaluator) resolveBlock(b *graph.Block, reg *register.Register, cs *callStack) ([]catalog.OutputValue, error) {
	if err := cs.push(); err != nil {
		return nil, err
	}
	defer cs.pop()

	kind, ok := e.catalog.Get(b.KindID)
	if !ok {
		return nil, bmeerrors.MissingBlock(b.ID)
	}
	if kind.Category == catalog.CategoryStart {
		return nil, nil
	}

	inputs := make([]value.Value, 0, len(b.DataInputs()))
	for i, p := range b.DataInputs() {
		v, err := e.resolveInput(p, reg, cs)
		if err != nil {
			return nil, err
		}
		if i < len(kind.InputTypes) && v.TypeName() != kind.InputTypes[i] {
			return nil, bmeerrors.TypeMismatch(b.ID, kind.InputTypes[i], v.TypeName())
		}
		inputs = append(inputs, v)
	}

	// The loader never cross-checks a block instance's port count against
	// its kind's declared arity, so a graph may legally load a block with
	// fewer data-input ports than its handler expects. Catching that here,
	// before dispatch, is what keeps a malformed instance a tagged error
	// instead of an index-out-of-range panic inside the handler.
	if len(inputs) < len(kind.InputTypes) {
		return nil, bmeerrors.TypeMismatch(b.ID, kind.InputTypes[len(inputs)], "missing")
	}

	outputs, err := kind.Handler(inputs, b.ID)
	if err != nil {
		return nil, bmeerrors.BlockFailed(b.ID, err)
	}
	return outputs, nil
}

// resolveInput answers one data-input port's value: a connected Static
// producer is recursively resolved and its matching output located; a
// connected Normal/Start producer is read from the register (a miss means
// execution order was violated, spec.md §7 RegisterMiss); an unconnected
// port falls back to its literal.
func (e *Evaluator) resolveInput(p *graph.Port, reg *register.Register, cs *callStack) (value.Value, error) {
	if p.Edge == nil {
		v, err := e.types.FromJSON(p.Type, p.Literal)
		if err != nil {
			return nil, bmeerrors.TypeUnknown(p.Type)
		}
		return v, nil
	}

	peerKind, ok := e.catalog.Get(p.Edge.PeerKindID)
	if !ok {
		return nil, bmeerrors.MissingBlock(p.Edge.PeerBlockID)
	}

	if peerKind.Category == catalog.CategoryStatic {
		peer := e.graph.Block(p.Edge.PeerBlockID)
		if peer == nil {
			return nil, bmeerrors.MissingBlock(p.Edge.PeerBlockID)
		}
		outputs, err := e.resolveBlock(peer, reg, cs)
		if err != nil {
			return nil, err
		}
		for _, o := range outputs {
			if o.PortID == p.Edge.PeerPortID {
				return o.Value, nil
			}
		}
		return nil, bmeerrors.MissingOutput(p.Edge.PeerBlockID, p.Edge.PeerPortID)
	}

	v, ok := reg.Get(p.Edge.PeerBlockID, p.Edge.PeerPortID)
	if !ok {
		return nil, bmeerrors.RegisterMiss(p.Edge.PeerBlockID, p.Edge.PeerPortID)
	}
	return v.Duplicate(), nil
}
