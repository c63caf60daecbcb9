package blocks

import (
	"encoding/json"

	"github.com/nodeflow/bme/internal/value"
)

// FloatVector3 is the non-primitive registered Value type spec.md §9's
// design note singles out: a host-extensible registry needs at least one
// type beyond the built-in scalars to prove the registration path actually
// works end to end. Grounded in original_source/src/blocks/float_vec3.rs.
type FloatVector3 struct {
	X, Y, Z float64
}

// TypeName implements value.Value.
func (FloatVector3) TypeName() string { return "FloatVector3" }

// Duplicate implements value.Value. FloatVector3 is already a plain value
// type, so a Go assignment copy is a full duplicate.
func (v FloatVector3) Duplicate() value.Value { return v }

// floatVector3Descriptor registers FloatVector3 as a connection type. Its
// FromJSON unmarshals an {"X":..,"Y":..,"Z":..} literal, falling back to the
// zero vector on any parse failure - FloatVector3 only ever appears on edges
// produced by CreateFloatVector3, never as an editable literal, so the
// fallback path is the one that actually matters in practice.
func floatVector3Descriptor() value.Descriptor {
	return value.Descriptor{
		Name:  "FloatVector3",
		Color: "darkgreen",
		FromJSON: func(raw json.RawMessage) value.Value {
			var v struct{ X, Y, Z float64 }
			if err := json.Unmarshal(raw, &v); err != nil {
				return FloatVector3{}
			}
			return FloatVector3{X: v.X, Y: v.Y, Z: v.Z}
		},
		MultiOutput: true,
	}
}
