package blocks

import (
	"errors"
	"strconv"

	"github.com/nodeflow/bme/internal/catalog"
	"github.com/nodeflow/bme/internal/value"
)

// errDivideByZero is the cause internal/evaluator wraps into a BlockFailed
// error (spec.md §7) when IntegerDivide's second input is zero.
var errDivideByZero = errors.New("integer division by zero")

// registerIntegerOps adds the Integer operation family, all Static,
// grounded in original_source/src/blocks/integer.rs.
func registerIntegerOps(cat *catalog.Registry) {
	cat.Register(catalog.Descriptor{
		ID: IDIntegerAdd, Name: "IntegerAdd", Category: catalog.CategoryStatic,
		InputTypes: []string{"Integer", "Integer"}, OutputTypes: []string{"Integer"},
		Handler: integerBinOp(func(a, b int64) int64 { return a + b }),
	})

	cat.Register(catalog.Descriptor{
		ID: IDIntegerSubtract, Name: "IntegerSubtract", Category: catalog.CategoryStatic,
		InputTypes: []string{"Integer", "Integer"}, OutputTypes: []string{"Integer"},
		Handler: integerBinOp(func(a, b int64) int64 { return a - b }),
	})

	cat.Register(catalog.Descriptor{
		ID: IDIntegerMultiply, Name: "IntegerMultiply", Category: catalog.CategoryStatic,
		InputTypes: []string{"Integer", "Integer"}, OutputTypes: []string{"Integer"},
		Handler: integerBinOp(func(a, b int64) int64 { return a * b }),
	})

	cat.Register(catalog.Descriptor{
		ID: IDIntegerDivide, Name: "IntegerDivide", Category: catalog.CategoryStatic,
		InputTypes:  []string{"Integer", "Integer"},
		OutputTypes: []string{"Integer"},
		Handler:     integerDivide,
	})

	cat.Register(catalog.Descriptor{
		ID: IDIntegerToStr, Name: "IntegerToString", Category: catalog.CategoryStatic,
		InputTypes: []string{"Integer"}, OutputTypes: []string{"String"},
		Handler: func(inputs []value.Value, blockID uint32) ([]catalog.OutputValue, error) {
			i, _ := value.AsInteger(inputs[0])
			return []catalog.OutputValue{{PortID: catalog.OutputPortID(0), Value: value.String(strconv.FormatInt(i, 10))}}, nil
		},
	})
}

// integerBinOp builds a Handler for a two-Integer-input, one-Integer-output
// arithmetic block from a plain Go function, avoiding three near-identical
// handler bodies for Add/Subtract/Multiply.
func integerBinOp(op func(a, b int64) int64) catalog.Handler {
	return func(inputs []value.Value, blockID uint32) ([]catalog.OutputValue, error) {
		a, _ := value.AsInteger(inputs[0])
		b, _ := value.AsInteger(inputs[1])
		return []catalog.OutputValue{{PortID: catalog.OutputPortID(0), Value: value.Integer(op(a, b))}}, nil
	}
}

// integerDivide is split out from integerBinOp because it alone can fail:
// division by zero surfaces as BlockFailed (spec.md §9: "IntegerDivide ...
// -> BlockFailed on divide-by-zero") rather than panicking or returning a
// sentinel value.
func integerDivide(inputs []value.Value, blockID uint32) ([]catalog.OutputValue, error) {
	a, _ := value.AsInteger(inputs[0])
	b, _ := value.AsInteger(inputs[1])
	if b == 0 {
		return nil, errDivideByZero
	}
	return []catalog.OutputValue{{PortID: catalog.OutputPortID(0), Value: value.Integer(a / b)}}, nil
}
