package passes

import "github.com/midokura/wasmtrace/internal/ir"

// Pass is a single whole-module transform. A Pass instance holds no
// state across runs: everything a run needs lives in locals of Run, so
// independent modules can be transformed concurrently with independent
// instances.
type Pass interface {
	// Name identifies the pass in option keys and logs.
	Name() string

	// Run transforms the module in place. On error the module may be
	// partially rewritten; a caller that needs atomicity operates on a
	// copy and discards it.
	Run(m *ir.Module, opts *Options) error

	// AddsEffects reports whether the pass inserts externally
	// observable behavior, such as calls to a new import. Drivers use
	// it to suppress purity assumptions about the rewritten module.
	AddsEffects() bool
}
