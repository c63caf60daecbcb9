// Package blocks is the reference default catalog: the handful of block
// kinds every worked example in spec.md assumes, plus the string/integer/
// float/FloatVector3 operation families spec.md §9 asks the expansion to
// enumerate. None of this is required by the engine itself (internal/
// catalog.Registry accepts any Descriptor a host supplies) - it exists so
// bme run has something to execute out of the box, mirroring the original's
// Logic::default() convenience constructor.
package blocks

import (
	"io"

	"github.com/nodeflow/bme/internal/catalog"
	"github.com/nodeflow/bme/internal/value"
)

// registerStart adds the Start kind. It declares no ports beyond the
// execution output every Start carries by convention (internal/catalog/
// json.go's nodesFor); its handler is never called - internal/evaluator
// treats Start as seed-only and returns before dispatching it.
func registerStart(cat *catalog.Registry) {
	cat.Register(catalog.Descriptor{
		ID:       IDStart,
		Name:     "Start",
		Category: catalog.CategoryStart,
	})
}

// registerConsolePrint adds ConsolePrint, the one Normal block in the
// default catalog: it writes its String input to out, followed by a
// newline. Taking an explicit io.Writer rather than reaching for os.Stdout
// mirrors internal/interp/builtins/io.go's Print/PrintLn, which write
// through a Context rather than touching a global stream directly.
func registerConsolePrint(cat *catalog.Registry, out io.Writer) {
	cat.Register(catalog.Descriptor{
		ID:         IDConsolePrint,
		Name:       "ConsolePrint",
		Category:   catalog.CategoryNormal,
		InputTypes: []string{"String"},
		Handler: func(inputs []value.Value, blockID uint32) ([]catalog.OutputValue, error) {
			s, _ := value.AsString(inputs[0])
			_, err := io.WriteString(out, s+"\n")
			return nil, err
		},
	})
}

// registerComment adds Comment, a Static no-op with no ports at all -
// editor-only documentation, grounded in original_source/src/blocks/mod.rs's
// Comment block (typ: Comment in the original's own enum, folded here into
// Static since the engine draws no execution-order distinction between a
// never-connected Static block and one that merely produces nothing).
func registerComment(cat *catalog.Registry) {
	cat.Register(catalog.Descriptor{
		ID:       IDComment,
		Name:     "Comment",
		Category: catalog.CategoryStatic,
		Handler: func(inputs []value.Value, blockID uint32) ([]catalog.OutputValue, error) {
			return nil, nil
		},
	})
}

// registerStaticString adds StaticString, the canonical "literal holder"
// block from spec.md's scenarios: a Static identity passthrough from one
// String input to one String output.
func registerStaticString(cat *catalog.Registry) {
	cat.Register(catalog.Descriptor{
		ID:          IDStaticString,
		Name:        "StaticString",
		Category:    catalog.CategoryStatic,
		InputTypes:  []string{"String"},
		OutputTypes: []string{"String"},
		Handler: func(inputs []value.Value, blockID uint32) ([]catalog.OutputValue, error) {
			return []catalog.OutputValue{{PortID: catalog.OutputPortID(0), Value: inputs[0]}}, nil
		},
	})
}

// RegisterTypes installs the FloatVector3 connection type into types, in
// addition to the four built-ins value.NewTypeRegistry already carries.
// Call it before loading any graph that references FloatVector3 ports.
func RegisterTypes(types *value.TypeRegistry) {
	types.Register(floatVector3Descriptor())
}
