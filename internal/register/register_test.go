package register

import (
	"testing"

	"github.com/nodeflow/bme/internal/value"
)

func TestSetGet(t *testing.T) {
	r := New()
	if _, ok := r.Get(1, 2); ok {
		t.Error("Get() on empty register ok = true, want false")
	}

	r.Set(1, 2, value.String("hi"))
	v, ok := r.Get(1, 2)
	if !ok {
		t.Fatal("Get() after Set() ok = false, want true")
	}
	if s, _ := value.AsString(v); s != "hi" {
		t.Errorf("Get() = %v, want hi", v)
	}
}

func TestSet_Overwrites(t *testing.T) {
	r := New()
	r.Set(1, 2, value.Integer(1))
	r.Set(1, 2, value.Integer(2))

	v, _ := r.Get(1, 2)
	if i, _ := value.AsInteger(v); i != 2 {
		t.Errorf("Get() after overwrite = %v, want 2", v)
	}
}

func TestClear(t *testing.T) {
	r := New()
	r.Set(1, 2, value.String("x"))
	r.Clear()

	if _, ok := r.Get(1, 2); ok {
		t.Error("Get() after Clear() ok = true, want false")
	}
}

func TestDump(t *testing.T) {
	r := New()
	r.Set(1, 2, value.String("a"))
	r.Set(3, 4, value.Integer(9))

	snaps := r.Dump()
	if len(snaps) != 2 {
		t.Fatalf("Dump() len = %d, want 2", len(snaps))
	}

	seen := map[[2]uint32]value.Value{}
	for _, s := range snaps {
		seen[[2]uint32{s.BlockID, s.PortID}] = s.Value
	}
	if v, ok := seen[[2]uint32{1, 2}]; !ok || v != value.Value(value.String("a")) {
		t.Errorf("Dump() missing/wrong entry for (1,2): %v", v)
	}
	if v, ok := seen[[2]uint32{3, 4}]; !ok || v != value.Value(value.Integer(9)) {
		t.Errorf("Dump() missing/wrong entry for (3,4): %v", v)
	}
}
