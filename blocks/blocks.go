package blocks

import (
	"io"

	"github.com/nodeflow/bme/internal/catalog"
	"github.com/nodeflow/bme/internal/value"
)

// Default returns a catalog.Registry and value.TypeRegistry populated with
// every block kind and connection type this package defines, mirroring the
// original's Logic::default(). out receives ConsolePrint's writes.
func Default(out io.Writer) (*catalog.Registry, *value.TypeRegistry) {
	types := value.NewTypeRegistry()
	RegisterTypes(types)

	cat := catalog.NewRegistry()
	registerStart(cat)
	registerConsolePrint(cat, out)
	registerComment(cat)
	registerStaticString(cat)
	registerStringOps(cat)
	registerIntegerOps(cat)
	registerFloatOps(cat)
	registerFloatVector3Ops(cat)

	return cat, types
}
