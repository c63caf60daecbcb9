package blocks

import (
	"github.com/nodeflow/bme/internal/catalog"
	"github.com/nodeflow/bme/internal/value"
)

// registerFloatVector3Ops adds CreateFloatVector3 and SplitFloatVector3,
// the pair of Static blocks that exercise FloatVector3 end to end: three
// Float inputs condense into one FloatVector3 output, and the inverse.
// Grounded in original_source/src/blocks/float_vec3.rs.
func registerFloatVector3Ops(cat *catalog.Registry) {
	cat.Register(catalog.Descriptor{
		ID: IDCreateFloatVector3, Name: "CreateFloatVector3", Category: catalog.CategoryStatic,
		InputTypes:  []string{"Float", "Float", "Float"},
		OutputTypes: []string{"FloatVector3"},
		Handler: func(inputs []value.Value, blockID uint32) ([]catalog.OutputValue, error) {
			x, _ := value.AsFloat(inputs[0])
			y, _ := value.AsFloat(inputs[1])
			z, _ := value.AsFloat(inputs[2])
			v := FloatVector3{X: x, Y: y, Z: z}
			return []catalog.OutputValue{{PortID: catalog.OutputPortID(0), Value: v}}, nil
		},
	})

	cat.Register(catalog.Descriptor{
		ID: IDSplitFloatVector3, Name: "SplitFloatVector3", Category: catalog.CategoryStatic,
		InputTypes:  []string{"FloatVector3"},
		OutputTypes: []string{"Float", "Float", "Float"},
		Handler: func(inputs []value.Value, blockID uint32) ([]catalog.OutputValue, error) {
			v, _ := inputs[0].(FloatVector3)
			return []catalog.OutputValue{
				{PortID: catalog.OutputPortID(0), Value: value.Float(v.X)},
				{PortID: catalog.OutputPortID(1), Value: value.Float(v.Y)},
				{PortID: catalog.OutputPortID(2), Value: value.Float(v.Z)},
			}, nil
		},
	})
}
