package logexec

import (
	"fmt"

	"github.com/midokura/wasmtrace/internal/ir"
	"github.com/midokura/wasmtrace/internal/passes"
)

// LogExecution is the execution-tracing pass. The value itself is
// stateless, every run builds its own walker, so one instance may
// serve any number of independent modules.
type LogExecution struct{}

var _ passes.Pass = (*LogExecution)(nil)

// New is [LogExecution] constructor.
func New() *LogExecution {
	return &LogExecution{}
}

// Name implements [passes.Pass].
func (*LogExecution) Name() string {
	return "log-execution"
}

// AddsEffects implements [passes.Pass]. The pass inserts calls to a
// new import, so the rewritten module must not be assumed pure.
func (*LogExecution) AddsEffects() bool {
	return true
}

// Run implements [passes.Pass]. It rewrites every eligible function in
// declaration order, adds the logger import, and writes the export map
// when a destination was configured.
//
// Running it twice on the same module double-instruments it. That is
// single-application usage working as intended, not a bug the pass
// guards against.
func (p *LogExecution) Run(m *ir.Module, opts *passes.Options) error {
	flt, err := newFilter(opts)
	if err != nil {
		return fmt.Errorf("%s: %w", p.Name(), err)
	}

	w := &walker{filter: flt}
	for _, f := range m.Functions() {
		w.walkFunction(f)
		if w.err != nil {
			return fmt.Errorf("%s: %w", p.Name(), w.err)
		}
	}

	module := resolveLoggerModule(m, opts.ArgumentOrDefault("log-execution", ""))
	if err := addLoggerImport(m, module); err != nil {
		return fmt.Errorf("%s: %w", p.Name(), err)
	}

	if dest := opts.ArgumentOrDefault("log-execution-export-map", ""); dest != "" {
		if err := writeExportMap(dest, w.record); err != nil {
			return fmt.Errorf("%s: %w", p.Name(), err)
		}
	}

	return nil
}

// walker carries the per-run instrumentation state: the sequence
// counter and the export record. It lives for exactly one Run.
type walker struct {
	filter *filter
	nextID uint32
	record []ExportEntry
	err    error
}

// ExportEntry relates one instrumented function to the sequence number
// of its entry site.
type ExportEntry struct {
	Name string
	ID   uint32
}

// walkFunction instruments a single function. Imported functions have
// no body to instrument; functions rejected by the filter are skipped
// wholesale, nothing inside them is visited.
func (w *walker) walkFunction(f *ir.Function) {
	if f.Imported() {
		return
	}
	if !w.filter.instrument(f.Name) {
		return
	}

	// The block check applies to the function's own body node, not to
	// the wrap blocks the rewrite below may put at the root.
	origBlock, _ := f.Body.(*ir.Block)

	f.Body = w.rewrite(f.Body)

	// A block body that ends without an explicit return still leaves
	// the function through its last child. Log that path too.
	if origBlock != nil && len(origBlock.List) > 0 {
		origBlock.List[len(origBlock.List)-1] = w.logCall(origBlock.List[len(origBlock.List)-1], KindReturn)
	}

	entry := w.nextID
	f.Body = w.logCall(f.Body, KindFunctionEntry)
	if w.err == nil {
		w.record = append(w.record, ExportEntry{Name: f.Name, ID: entry})
	}
}

// rewrite walks an expression post-order and returns its owned
// replacement. Blocks recurse into their children, every return gets
// wrapped, every loop body gets a loop-header wrap after its own
// interior was handled. Anything else is an opaque payload and passes
// through untouched.
func (w *walker) rewrite(e ir.Expression) ir.Expression {
	switch n := e.(type) {
	case *ir.Block:
		for i, child := range n.List {
			n.List[i] = w.rewrite(child)
		}
		return n
	case *ir.Loop:
		n.Body = w.logCall(w.rewrite(n.Body), KindLoopHeader)
		return n
	case *ir.Return:
		if n.Value != nil {
			n.Value = w.rewrite(n.Value)
		}
		return w.logCall(n, KindReturn)
	default:
		return e
	}
}

// logCall allocates the next sequence number and prefixes expr with a
// call delivering the packed identifier, preserving expr's own value
// and control behavior. Once the sequence space is exhausted the
// walker goes inert and reports the overflow from Run.
func (w *walker) logCall(expr ir.Expression, kind Kind) ir.Expression {
	if w.err != nil {
		return expr
	}
	if w.nextID >= MaxSequence {
		w.err = fmt.Errorf("more than %d instrumentation sites, sequence numbers exhausted", int64(MaxSequence))
		return expr
	}

	word := Encode(w.nextID, kind)
	w.nextID++

	return ir.MakeSequence(
		ir.MakeCall(LoggerName, ir.MakeConstI32(int32(word))),
		expr,
	)
}
