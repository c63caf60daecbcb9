// Package program is the single public entry point the rest of this module
// builds toward: load a graph once, execute it as many times as needed
// against fresh seeds, and inspect the result. Grounded in
// internal/interp/runner/runner.go's New/NewWithOptions wiring pattern -
// hide the construction of loader/catalog/evaluator behind one façade so a
// caller never imports those packages directly.
package program

import (
	"github.com/nodeflow/bme/internal/bmeerrors"
	"github.com/nodeflow/bme/internal/catalog"
	"github.com/nodeflow/bme/internal/evaluator"
	"github.com/nodeflow/bme/internal/graph"
	"github.com/nodeflow/bme/internal/loader"
	"github.com/nodeflow/bme/internal/register"
	"github.com/nodeflow/bme/internal/value"
)

// Options configures a Program beyond its catalog and type registry.
// A zero Options is valid and selects evaluator.DefaultMaxDepth.
type Options struct {
	// MaxDepth bounds combined execution-chain and Static-pull recursion
	// (spec.md §5). Zero selects evaluator.DefaultMaxDepth.
	MaxDepth int
}

// Program is a catalog bound to a (possibly not-yet-analyzed) body of code.
// SetCode/Analyze/Execute follow spec.md §4.6's façade lifecycle: code may
// be replaced and re-analyzed without constructing a new Program, and
// Execute analyzes lazily if SetCode invalidated the previous analysis.
type Program struct {
	catalog  *catalog.Registry
	types    *value.TypeRegistry
	maxDepth int

	code     []byte
	analyzed bool
	graph    *graph.Graph
	eval     *evaluator.Evaluator

	lastRun *register.Register
}

// New constructs a Program bound to cat and types, and immediately analyzes
// code (spec.md §6 wire JSON, either encoding). It is the single point
// where this module's packages come together, mirroring runner.New's role
// for the teacher's interpreter. Analyzing eagerly here is a convenience
// for the common case of "load once, run many times"; SetCode/Analyze
// remain available for callers that want to swap code on a live Program.
func New(cat *catalog.Registry, types *value.TypeRegistry, code []byte) (*Program, error) {
	return NewWithOptions(cat, types, code, Options{})
}

// NewWithOptions is New with explicit Options, mirroring
// runner.NewWithOptions's shape (the teacher passes *its* evaluator.Config
// through an options struct rather than positional arguments).
func NewWithOptions(cat *catalog.Registry, types *value.TypeRegistry, code []byte, opts Options) (*Program, error) {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = evaluator.DefaultMaxDepth
	}

	p := &Program{catalog: cat, types: types, maxDepth: maxDepth}
	p.SetCode(code)
	if err := p.Analyze(); err != nil {
		return nil, err
	}
	return p, nil
}

// SetCode replaces the Program's code and invalidates any prior analysis
// (spec.md §4.6: "invalidates any prior analysis"). The next Analyze or
// Execute call re-runs the loader against the new code.
func (p *Program) SetCode(code []byte) {
	p.code = code
	p.analyzed = false
	p.graph = nil
	p.eval = nil
}

// Analyze runs the loader and structural validation against the current
// code, if not already done (spec.md §4.6: "idempotent"). Calling it again
// after a successful Analyze with no intervening SetCode is a no-op.
func (p *Program) Analyze() error {
	if p.analyzed {
		return nil
	}

	g, err := loader.Load(p.code, p.catalog, p.types)
	if err != nil {
		return err
	}

	p.graph = g
	p.eval = evaluator.NewWithMaxDepth(g, p.catalog, p.types, p.maxDepth)
	p.analyzed = true
	return nil
}

// Execute runs the loaded graph once, seeding the Start block's outputs
// with seed in declared order (spec.md §4.4), analyzing first if needed
// (spec.md §4.6: "runs analyze if needed"). It returns the engine's tagged
// *bmeerrors.Error on failure; the register as it stood at the moment of
// failure (or at successful completion) is retained and available via Dump
// for diagnostics.
func (p *Program) Execute(seed []value.Value) error {
	if err := p.Analyze(); err != nil {
		return err
	}

	reg, err := p.eval.Execute(seed)
	p.lastRun = reg
	if err != nil {
		return err
	}
	return nil
}

// CatalogJSON renders this Program's catalog as the §6 descriptor JSON, for
// an editor or tool to introspect available block kinds.
func (p *Program) CatalogJSON() any {
	return p.catalog.JSON(p.types)
}

// SeedPortTypes returns the loaded graph's Start block's declared
// data-output port types, in declared (port id) order. A caller seeding a
// run from outside this module (the CLI's --seed flag) uses this to know
// how many seed values are expected and which registered type each one
// must lift through, without needing to inspect the graph model directly.
// It analyzes first if needed, like Execute.
func (p *Program) SeedPortTypes() ([]string, error) {
	if err := p.Analyze(); err != nil {
		return nil, err
	}

	start, err := p.startBlock()
	if err != nil {
		return nil, err
	}

	var types []string
	for _, port := range start.Ports {
		if port.Direction == graph.DirectionOutput && !port.IsExecution() {
			types = append(types, port.Type)
		}
	}
	return types, nil
}

func (p *Program) startBlock() (*graph.Block, error) {
	for _, b := range p.graph.Blocks {
		kind, ok := p.catalog.Get(b.KindID)
		if ok && kind.Category == catalog.CategoryStart {
			return b, nil
		}
	}
	return nil, bmeerrors.NoStart()
}

// Dump returns the register snapshot from the most recent Execute call, or
// nil if Execute has never run. Intended for debugging a failed run; a
// successful run's register is equally inspectable.
func (p *Program) Dump() []register.Snapshot {
	if p.lastRun == nil {
		return nil
	}
	return p.lastRun.Dump()
}
