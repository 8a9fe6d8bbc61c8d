package main

import (
	"fmt"
	"strings"

	"github.com/midokura/wasmtrace/internal/passes"
)

// passArgs collects repeatable -pass-arg flags. Each value has the
// form key@value; a value may itself start with @ to reference a
// response file, giving key@@path.
type passArgs []string

// String implements [flag.Value].
func (p *passArgs) String() string {
	return strings.Join(*p, ", ")
}

// Set implements [flag.Value].
func (p *passArgs) Set(value string) error {
	if !strings.Contains(value, "@") {
		return fmt.Errorf("pass argument %q: want key@value", value)
	}

	*p = append(*p, value)
	return nil
}

// apply stores the collected arguments into the option bag, splitting
// each on its first @. Later duplicates win, as do pass arguments over
// config file values since the config file is loaded first.
func (p passArgs) apply(opts *passes.Options) {
	for _, arg := range p {
		key, value, _ := strings.Cut(arg, "@")
		opts.Set(key, value)
	}
}
