package graph

import "testing"

func TestPort_IsExecution(t *testing.T) {
	var nilPort *Port
	if nilPort.IsExecution() {
		t.Error("nil port IsExecution() = true, want false")
	}

	exec := &Port{Type: ExecutionType}
	if !exec.IsExecution() {
		t.Error("Execution-typed port IsExecution() = false, want true")
	}

	data := &Port{Type: "String"}
	if data.IsExecution() {
		t.Error("String-typed port IsExecution() = true, want false")
	}
}

func TestBlock_Port(t *testing.T) {
	b := &Block{Ports: []*Port{{ID: 0}, {ID: 2}}}
	if p := b.Port(2); p == nil || p.ID != 2 {
		t.Errorf("Port(2) = %v, want id 2", p)
	}
	if p := b.Port(99); p != nil {
		t.Errorf("Port(99) = %v, want nil", p)
	}
}

func TestBlock_ExecOut_FirstFoundWins(t *testing.T) {
	b := &Block{Ports: []*Port{
		{ID: 2, Direction: DirectionInput, Type: "String"},
		{ID: 1, Direction: DirectionOutput, Type: ExecutionType},
		{ID: 5, Direction: DirectionOutput, Type: ExecutionType},
	}}
	out := b.ExecOut()
	if out == nil || out.ID != 1 {
		t.Errorf("ExecOut() = %v, want first execution-output port (id 1)", out)
	}
}

func TestBlock_ExecOut_NoneFound(t *testing.T) {
	b := &Block{Ports: []*Port{{ID: 0, Direction: DirectionInput, Type: ExecutionType}}}
	if out := b.ExecOut(); out != nil {
		t.Errorf("ExecOut() = %v, want nil", out)
	}
}

func TestBlock_DataInputs_ExcludesExecutionAndOutputs(t *testing.T) {
	b := &Block{Ports: []*Port{
		{ID: 0, Direction: DirectionInput, Type: ExecutionType},
		{ID: 2, Direction: DirectionInput, Type: "String"},
		{ID: 3, Direction: DirectionOutput, Type: "String"},
		{ID: 4, Direction: DirectionInput, Type: "Integer"},
	}}
	inputs := b.DataInputs()
	if len(inputs) != 2 {
		t.Fatalf("DataInputs() len = %d, want 2", len(inputs))
	}
	if inputs[0].ID != 2 || inputs[1].ID != 4 {
		t.Errorf("DataInputs() = %+v, want ids 2, 4 in declaration order", inputs)
	}
}

func TestGraph_BlockLookup(t *testing.T) {
	b1 := &Block{ID: 1}
	b2 := &Block{ID: 2}
	g := New([]*Block{b1, b2})

	if got := g.Block(2); got != b2 {
		t.Errorf("Block(2) = %v, want %v", got, b2)
	}
	if got := g.Block(99); got != nil {
		t.Errorf("Block(99) = %v, want nil", got)
	}
}
