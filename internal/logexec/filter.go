package logexec

import (
	"fmt"
	"strings"

	"github.com/midokura/wasmtrace/internal/names"
	"github.com/midokura/wasmtrace/internal/passes"
)

// stdPrefix is the reserved toolchain namespace: names starting with
// it belong to the standard library and its runtime glue.
const stdPrefix = "__"

// filter decides per-function eligibility from the configured name
// lists. With a non-empty include list only listed names participate;
// otherwise every name outside the ignore list does, minus the
// stdPrefix namespace when nostd is on.
//
// TODO decide whether supplying both lists at once should be rejected.
// For now the include list silently wins and the ignore list is
// never consulted.
type filter struct {
	ignore  map[string]struct{}
	include map[string]struct{}
	nostd   bool
}

func newFilter(opts *passes.Options) (*filter, error) {
	ignore, err := splitNameList(opts.ArgumentOrDefault("log-execution-ignorelist", ""))
	if err != nil {
		return nil, fmt.Errorf("build ignore list: %w", err)
	}

	include, err := splitNameList(opts.ArgumentOrDefault("log-execution-includelist", ""))
	if err != nil {
		return nil, fmt.Errorf("build include list: %w", err)
	}

	return &filter{
		ignore:  ignore,
		include: include,
		nostd:   opts.ArgumentOrDefault("log-execution-nostd", "") != "",
	}, nil
}

// instrument reports whether the function with the given internal name
// should be instrumented.
func (f *filter) instrument(name string) bool {
	if len(f.include) > 0 {
		_, ok := f.include[name]
		return ok
	}

	if f.nostd && strings.HasPrefix(name, stdPrefix) {
		return false
	}

	_, ok := f.ignore[name]
	return !ok
}

// splitNameList turns a raw list value into a set of internal names:
// resolve the @file convention, split on newlines or commas, escape
// each entry so it matches the representation function names use
// inside the module.
func splitNameList(raw string) (map[string]struct{}, error) {
	raw, err := passes.ReadPossibleResponseFile(strings.TrimSpace(raw))
	if err != nil {
		return nil, err
	}

	set := map[string]struct{}{}
	for _, entry := range strings.FieldsFunc(strings.TrimSpace(raw), func(r rune) bool {
		return r == '\n' || r == ','
	}) {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		set[names.Escape(entry)] = struct{}{}
	}

	return set, nil
}
