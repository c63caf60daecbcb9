package blocks

import (
	"bytes"
	"errors"
	"testing"

	"github.com/nodeflow/bme/internal/value"
)

func TestStringOps(t *testing.T) {
	cat, _ := Default(&bytes.Buffer{})

	tests := []struct {
		name     string
		kindID   uint32
		inputs   []value.Value
		expected value.Value
	}{
		{"StringAdd", IDStringAdd, []value.Value{value.String("Hello "), value.String("World")}, value.String("Hello World")},
		{"StringLength", IDStringLength, []value.Value{value.String("hello")}, value.Integer(5)},
		{"StringTrim", IDStringTrim, []value.Value{value.String("  hi  ")}, value.String("hi")},
		{"StringToLowercase", IDStringToLowercase, []value.Value{value.String("HI")}, value.String("hi")},
		{"StringToUppercase", IDStringToUppercase, []value.Value{value.String("hi")}, value.String("HI")},
		{"StringInsert", IDStringInsert, []value.Value{value.String("ac"), value.Integer(1), value.String("b")}, value.String("abc")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := cat.Get(tt.kindID)
			if !ok {
				t.Fatalf("kind %d not registered", tt.kindID)
			}
			outputs, err := kind.Handler(tt.inputs, 1)
			if err != nil {
				t.Fatalf("Handler() error = %v", err)
			}
			if len(outputs) != 1 || outputs[0].Value != tt.expected {
				t.Errorf("Handler() = %+v, want %v", outputs, tt.expected)
			}
		})
	}
}

func TestStringInsert_ClampsIndex(t *testing.T) {
	cat, _ := Default(&bytes.Buffer{})
	kind, _ := cat.Get(IDStringInsert)

	outputs, err := kind.Handler([]value.Value{value.String("ab"), value.Integer(99), value.String("c")}, 1)
	if err != nil {
		t.Fatalf("Handler() error = %v", err)
	}
	if s, _ := value.AsString(outputs[0].Value); s != "abc" {
		t.Errorf("out-of-range index: got %q, want %q", s, "abc")
	}
}

func TestIntegerOps(t *testing.T) {
	cat, _ := Default(&bytes.Buffer{})

	tests := []struct {
		name     string
		kindID   uint32
		inputs   []value.Value
		expected value.Value
	}{
		{"IntegerAdd", IDIntegerAdd, []value.Value{value.Integer(2), value.Integer(3)}, value.Integer(5)},
		{"IntegerSubtract", IDIntegerSubtract, []value.Value{value.Integer(5), value.Integer(3)}, value.Integer(2)},
		{"IntegerMultiply", IDIntegerMultiply, []value.Value{value.Integer(4), value.Integer(3)}, value.Integer(12)},
		{"IntegerDivide", IDIntegerDivide, []value.Value{value.Integer(9), value.Integer(3)}, value.Integer(3)},
		{"IntegerToString", IDIntegerToStr, []value.Value{value.Integer(42)}, value.String("42")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := cat.Get(tt.kindID)
			if !ok {
				t.Fatalf("kind %d not registered", tt.kindID)
			}
			outputs, err := kind.Handler(tt.inputs, 1)
			if err != nil {
				t.Fatalf("Handler() error = %v", err)
			}
			if len(outputs) != 1 || outputs[0].Value != tt.expected {
				t.Errorf("Handler() = %+v, want %v", outputs, tt.expected)
			}
		})
	}
}

func TestIntegerDivide_ByZero(t *testing.T) {
	cat, _ := Default(&bytes.Buffer{})
	kind, _ := cat.Get(IDIntegerDivide)

	_, err := kind.Handler([]value.Value{value.Integer(1), value.Integer(0)}, 7)
	if !errors.Is(err, errDivideByZero) {
		t.Fatalf("Handler() error = %v, want errDivideByZero", err)
	}
}

func TestFloatDivide_ByZero(t *testing.T) {
	cat, _ := Default(&bytes.Buffer{})
	kind, _ := cat.Get(IDFloatDivide)

	_, err := kind.Handler([]value.Value{value.Float(1), value.Float(0)}, 7)
	if !errors.Is(err, errDivideByZeroFloat) {
		t.Fatalf("Handler() error = %v, want errDivideByZeroFloat", err)
	}
}

func TestFloatVector3_CreateAndSplit(t *testing.T) {
	cat, _ := Default(&bytes.Buffer{})

	create, _ := cat.Get(IDCreateFloatVector3)
	outputs, err := create.Handler([]value.Value{value.Float(1), value.Float(2), value.Float(3)}, 1)
	if err != nil {
		t.Fatalf("CreateFloatVector3 error = %v", err)
	}
	vec := outputs[0].Value

	split, _ := cat.Get(IDSplitFloatVector3)
	parts, err := split.Handler([]value.Value{vec}, 2)
	if err != nil {
		t.Fatalf("SplitFloatVector3 error = %v", err)
	}
	if len(parts) != 3 {
		t.Fatalf("SplitFloatVector3 returned %d outputs, want 3", len(parts))
	}
	for i, want := range []float64{1, 2, 3} {
		if f, ok := value.AsFloat(parts[i].Value); !ok || f != want {
			t.Errorf("parts[%d] = %v, want %v", i, parts[i].Value, want)
		}
	}
}

func TestConsolePrint_WritesLine(t *testing.T) {
	var buf bytes.Buffer
	cat, _ := Default(&buf)
	kind, _ := cat.Get(IDConsolePrint)

	if _, err := kind.Handler([]value.Value{value.String("hello")}, 1); err != nil {
		t.Fatalf("Handler() error = %v", err)
	}
	if buf.String() != "hello\n" {
		t.Errorf("ConsolePrint wrote %q, want %q", buf.String(), "hello\n")
	}
}

func TestComment_IsNoOp(t *testing.T) {
	cat, _ := Default(&bytes.Buffer{})
	kind, _ := cat.Get(IDComment)

	outputs, err := kind.Handler(nil, 1)
	if err != nil || outputs != nil {
		t.Errorf("Handler() = (%v, %v), want (nil, nil)", outputs, err)
	}
}

func TestDefault_StartHasNoHandler(t *testing.T) {
	cat, _ := Default(&bytes.Buffer{})
	kind, ok := cat.Get(IDStart)
	if !ok {
		t.Fatal("Start not registered")
	}
	if kind.Category != "Start" {
		t.Errorf("Start category = %v, want Start", kind.Category)
	}
	if kind.Handler != nil {
		t.Error("Start should carry no handler; internal/evaluator never dispatches it")
	}
}
