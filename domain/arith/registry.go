package arith

import "fmt"

// Entry pairs an operation name with its implementation.
type Entry struct {
	Name Operation
	Func Func
}

// Registry maps operation names to implementations.
// It is immutable once built and safe for concurrent lookups.
type Registry struct {
	funcs map[Operation]Func
	names []Operation
}

// NewRegistry builds a registry from entries, preserving their order.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{
		funcs: make(map[Operation]Func, len(entries)),
		names: make([]Operation, 0, len(entries)),
	}
	for _, e := range entries {
		if err := r.register(e.Name, e.Func); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Default returns the registry with add, subtract, multiply and divide.
func Default() *Registry {
	r, err := NewRegistry(
		Entry{Name: OpAdd, Func: Add},
		Entry{Name: OpSubtract, Func: Subtract},
		Entry{Name: OpMultiply, Func: Multiply},
		Entry{Name: OpDivide, Func: Divide},
	)
	if err != nil {
		panic(fmt.Sprintf("arith: default registry: %v", err))
	}
	return r
}

func (r *Registry) register(name Operation, fn Func) error {
	if name == "" {
		return fmt.Errorf("register: empty operation name")
	}
	if fn == nil {
		return fmt.Errorf("register %q: nil function", name)
	}
	if _, exists := r.funcs[name]; exists {
		return fmt.Errorf("register %q: %w", name, ErrDuplicateOperation)
	}
	r.funcs[name] = fn
	r.names = append(r.names, name)
	return nil
}

// Lookup returns the implementation registered under name.
func (r *Registry) Lookup(name Operation) (Func, error) {
	fn, ok := r.funcs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
	return fn, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name Operation) bool {
	_, ok := r.funcs[name]
	return ok
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []Operation {
	out := make([]Operation, len(r.names))
	copy(out, r.names)
	return out
}

// Evaluate looks up name and applies it to x and y.
func (r *Registry) Evaluate(name Operation, x, y float64) (float64, error) {
	fn, err := r.Lookup(name)
	if err != nil {
		return 0, err
	}
	return fn(x, y)
}
