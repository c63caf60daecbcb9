package blocks

import (
	"strings"

	"github.com/nodeflow/bme/internal/catalog"
	"github.com/nodeflow/bme/internal/value"
)

// registerStringOps adds the String operation family, all Static, grounded
// in original_source/src/blocks/string.rs.
func registerStringOps(cat *catalog.Registry) {
	cat.Register(catalog.Descriptor{
		ID: IDStringAdd, Name: "StringAdd", Category: catalog.CategoryStatic,
		InputTypes: []string{"String", "String"}, OutputTypes: []string{"String"},
		Handler: func(inputs []value.Value, blockID uint32) ([]catalog.OutputValue, error) {
			a, _ := value.AsString(inputs[0])
			b, _ := value.AsString(inputs[1])
			return []catalog.OutputValue{{PortID: catalog.OutputPortID(0), Value: value.String(a + b)}}, nil
		},
	})

	cat.Register(catalog.Descriptor{
		ID: IDStringLength, Name: "StringLength", Category: catalog.CategoryStatic,
		InputTypes: []string{"String"}, OutputTypes: []string{"Integer"},
		Handler: func(inputs []value.Value, blockID uint32) ([]catalog.OutputValue, error) {
			s, _ := value.AsString(inputs[0])
			return []catalog.OutputValue{{PortID: catalog.OutputPortID(0), Value: value.Integer(len(s))}}, nil
		},
	})

	cat.Register(catalog.Descriptor{
		ID: IDStringTrim, Name: "StringTrim", Category: catalog.CategoryStatic,
		InputTypes: []string{"String"}, OutputTypes: []string{"String"},
		Handler: func(inputs []value.Value, blockID uint32) ([]catalog.OutputValue, error) {
			s, _ := value.AsString(inputs[0])
			return []catalog.OutputValue{{PortID: catalog.OutputPortID(0), Value: value.String(strings.TrimSpace(s))}}, nil
		},
	})

	cat.Register(catalog.Descriptor{
		ID: IDStringToLowercase, Name: "StringToLowercase", Category: catalog.CategoryStatic,
		InputTypes: []string{"String"}, OutputTypes: []string{"String"},
		Handler: func(inputs []value.Value, blockID uint32) ([]catalog.OutputValue, error) {
			s, _ := value.AsString(inputs[0])
			return []catalog.OutputValue{{PortID: catalog.OutputPortID(0), Value: value.String(strings.ToLower(s))}}, nil
		},
	})

	cat.Register(catalog.Descriptor{
		ID: IDStringToUppercase, Name: "StringToUppercase", Category: catalog.CategoryStatic,
		InputTypes: []string{"String"}, OutputTypes: []string{"String"},
		Handler: func(inputs []value.Value, blockID uint32) ([]catalog.OutputValue, error) {
			s, _ := value.AsString(inputs[0])
			return []catalog.OutputValue{{PortID: catalog.OutputPortID(0), Value: value.String(strings.ToUpper(s))}}, nil
		},
	})

	cat.Register(catalog.Descriptor{
		ID: IDStringInsert, Name: "StringInsert", Category: catalog.CategoryStatic,
		InputTypes:  []string{"String", "Integer", "String"},
		OutputTypes: []string{"String"},
		Handler:     stringInsert,
	})
}

// stringInsert inserts inputs[2] into inputs[0] at the byte offset
// inputs[1], clamping the index to the string's length rather than
// erroring, matching original_source/src/blocks/string.rs's StringInsert.
func stringInsert(inputs []value.Value, blockID uint32) ([]catalog.OutputValue, error) {
	s, _ := value.AsString(inputs[0])
	idx, _ := value.AsInteger(inputs[1])
	insert, _ := value.AsString(inputs[2])

	i := int(idx)
	if i < 0 {
		i = 0
	}
	if i > len(s) {
		i = len(s)
	}

	result := s[:i] + insert + s[i:]
	return []catalog.OutputValue{{PortID: catalog.OutputPortID(0), Value: value.String(result)}}, nil
}
