package logexec

import (
	"fmt"

	"github.com/midokura/wasmtrace/internal/ir"
)

// LoggerName is the well-known local and host-side name of the logging
// import the pass adds.
const LoggerName = "log_execution"

// envModule is the conventional environment module imports come from.
const envModule = "env"

// resolveLoggerModule picks the module name the logging function is
// imported from. An explicit override wins; otherwise prefer the
// environment module if the program already imports from it, then the
// module of the first existing import of any kind, then the
// environment module as the hard default.
func resolveLoggerModule(m *ir.Module, override string) string {
	if override != "" {
		return override
	}

	for _, f := range m.Functions() {
		if f.Imported() && f.Module == envModule {
			return envModule
		}
	}

	for _, f := range m.Functions() {
		if f.Imported() {
			return f.Module
		}
	}

	return envModule
}

// addLoggerImport adds the logging import to the module: one i32
// parameter, no results, no body. It is added exactly once per run.
func addLoggerImport(m *ir.Module, module string) error {
	err := m.AddFunction(&ir.Function{
		Name:   LoggerName,
		Module: module,
		Base:   LoggerName,
		Params: []ir.ValueType{ir.I32},
	})
	if err != nil {
		return fmt.Errorf("add logger import: %w", err)
	}

	return nil
}
