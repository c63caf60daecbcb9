package blocks

import (
	"errors"
	"strconv"

	"github.com/nodeflow/bme/internal/catalog"
	"github.com/nodeflow/bme/internal/value"
)

// errDivideByZeroFloat mirrors errDivideByZero for FloatDivide. IEEE-754
// division by zero would otherwise silently produce +Inf/-Inf/NaN; the
// default catalog treats it as a block failure instead, matching the
// Integer family's behavior even though the original Rust implementation
// lets Float division by zero through unchecked.
var errDivideByZeroFloat = errors.New("float division by zero")

// registerFloatOps adds the Float operation family, all Static, grounded in
// original_source/src/blocks/float.rs.
func registerFloatOps(cat *catalog.Registry) {
	cat.Register(catalog.Descriptor{
		ID: IDFloatAdd, Name: "FloatAdd", Category: catalog.CategoryStatic,
		InputTypes: []string{"Float", "Float"}, OutputTypes: []string{"Float"},
		Handler: floatBinOp(func(a, b float64) float64 { return a + b }),
	})

	cat.Register(catalog.Descriptor{
		ID: IDFloatSubtract, Name: "FloatSubtract", Category: catalog.CategoryStatic,
		InputTypes: []string{"Float", "Float"}, OutputTypes: []string{"Float"},
		Handler: floatBinOp(func(a, b float64) float64 { return a - b }),
	})

	cat.Register(catalog.Descriptor{
		ID: IDFloatMultiply, Name: "FloatMultiply", Category: catalog.CategoryStatic,
		InputTypes: []string{"Float", "Float"}, OutputTypes: []string{"Float"},
		Handler: floatBinOp(func(a, b float64) float64 { return a * b }),
	})

	cat.Register(catalog.Descriptor{
		ID: IDFloatDivide, Name: "FloatDivide", Category: catalog.CategoryStatic,
		InputTypes:  []string{"Float", "Float"},
		OutputTypes: []string{"Float"},
		Handler:     floatDivide,
	})

	cat.Register(catalog.Descriptor{
		ID: IDFloatToStr, Name: "FloatToString", Category: catalog.CategoryStatic,
		InputTypes: []string{"Float"}, OutputTypes: []string{"String"},
		Handler: func(inputs []value.Value, blockID uint32) ([]catalog.OutputValue, error) {
			f, _ := value.AsFloat(inputs[0])
			return []catalog.OutputValue{{PortID: catalog.OutputPortID(0), Value: value.String(strconv.FormatFloat(f, 'g', -1, 64))}}, nil
		},
	})
}

func floatBinOp(op func(a, b float64) float64) catalog.Handler {
	return func(inputs []value.Value, blockID uint32) ([]catalog.OutputValue, error) {
		a, _ := value.AsFloat(inputs[0])
		b, _ := value.AsFloat(inputs[1])
		return []catalog.OutputValue{{PortID: catalog.OutputPortID(0), Value: value.Float(op(a, b))}}, nil
	}
}

func floatDivide(inputs []value.Value, blockID uint32) ([]catalog.OutputValue, error) {
	a, _ := value.AsFloat(inputs[0])
	b, _ := value.AsFloat(inputs[1])
	if b == 0 {
		return nil, errDivideByZeroFloat
	}
	return []catalog.OutputValue{{PortID: catalog.OutputPortID(0), Value: value.Float(a / b)}}, nil
}
