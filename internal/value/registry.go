package value

import (
	"encoding/json"
	"sync"
)

// TypeRegistry is the open registry of Value types the engine knows how to
// lift from JSON. The program façade holds one instance alongside its block
// catalog (catalog.Registry does not reference it); a host inserts additional
// Descriptors before constructing the program façade (spec.md §4.1: "a host
// inserts a type descriptor into the catalog before constructing the
// engine"). Grounded in internal/interp/builtins.Registry's map+mutex shape,
// adapted from string-keyed functions to string-keyed type descriptors.
type TypeRegistry struct {
	mu    sync.RWMutex
	types map[string]Descriptor
	order []string
}

// NewTypeRegistry returns a registry pre-populated with the built-in types
// (Execution, String, Integer, Float, Unknown).
func NewTypeRegistry() *TypeRegistry {
	r := &TypeRegistry{types: make(map[string]Descriptor)}
	for _, d := range defaultDescriptors() {
		r.Register(d)
	}
	return r
}

// Register installs or replaces a type descriptor. Re-registering an
// existing name replaces its descriptor in place without disturbing
// enumeration order.
func (r *TypeRegistry) Register(d Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.types[d.Name]; !exists {
		r.order = append(r.order, d.Name)
	}
	r.types[d.Name] = d
}

// Get returns the descriptor for name, if registered.
func (r *TypeRegistry) Get(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.types[name]
	return d, ok
}

// Has reports whether name is a registered type.
func (r *TypeRegistry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// All returns the registered descriptors in registration order.
func (r *TypeRegistry) All() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.types[name])
	}
	return out
}

// FromJSON lifts a literal into a Value of the given registered type. It
// returns an *UnknownTypeError if typeName was never registered; otherwise it
// never fails, per the Descriptor.FromJSON contract (total-failure falls
// back to the type's zero value rather than raising, spec.md §4.1).
func (r *TypeRegistry) FromJSON(typeName string, raw json.RawMessage) (Value, error) {
	d, ok := r.Get(typeName)
	if !ok {
		return nil, &UnknownTypeError{Name: typeName}
	}
	return d.FromJSON(raw), nil
}

// UnknownTypeError reports a connection type name with no registered
// Descriptor. It is deliberately defined here (rather than in
// internal/bmeerrors) so that internal/value has no dependency on the rest
// of the engine. internal/bmeerrors.TypeUnknown is the taxonomy's
// counterpart; it is built from the type name and does not chain this error.
type UnknownTypeError struct {
	Name string
}

func (e *UnknownTypeError) Error() string {
	return "unknown value type: " + e.Name
}
