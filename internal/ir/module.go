package ir

import "fmt"

// Function is a named function of a module. An imported function has a
// non-empty Module and no body: it is host-provided and Base names it
// on the host side. A defined function has an empty Module and owns its
// Body expression tree.
type Function struct {
	Name    string
	Module  string
	Base    string
	Params  []ValueType
	Results []ValueType
	Body    Expression
}

// Imported reports whether the function is host-provided.
func (f *Function) Imported() bool {
	return f.Module != ""
}

// Module is a single compilation unit: an ordered list of functions.
// Declaration order is preserved, transforms that assign ids per
// function rely on it being deterministic.
type Module struct {
	funcs []*Function
	index map[string]*Function
}

// NewModule is [Module] constructor.
func NewModule() *Module {
	return &Module{
		index: map[string]*Function{},
	}
}

// AddFunction appends a function to the module. Function names are
// unique within a module.
func (m *Module) AddFunction(f *Function) error {
	if _, ok := m.index[f.Name]; ok {
		return fmt.Errorf("duplicate function name %q", f.Name)
	}

	m.funcs = append(m.funcs, f)
	m.index[f.Name] = f
	return nil
}

// GetFunction looks a function up by name.
func (m *Module) GetFunction(name string) (*Function, bool) {
	f, ok := m.index[name]
	return f, ok
}

// Functions returns the module's functions in declaration order. The
// returned slice is the module's own, callers must not reorder it.
func (m *Module) Functions() []*Function {
	return m.funcs
}
