package passes

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Options is the raw string option bag handed to a pass run. Keys and
// values arrive as-is from the driver; interpretation is up to each
// pass.
type Options struct {
	args map[string]string
}

// NewOptions is [Options] constructor.
func NewOptions() *Options {
	return &Options{
		args: map[string]string{},
	}
}

// Set stores a raw option value, overwriting any previous one.
func (o *Options) Set(key, value string) {
	o.args[key] = value
}

// Argument returns the raw value for key and whether it was set.
func (o *Options) Argument(key string) (string, bool) {
	v, ok := o.args[key]
	return v, ok
}

// ArgumentOrDefault returns the raw value for key, or def when the key
// was never set.
func (o *Options) ArgumentOrDefault(key, def string) string {
	if v, ok := o.args[key]; ok {
		return v
	}

	return def
}

// LoadConfig merges options from a YAML file mapping option names to
// string values. File values overwrite whatever was set before, so a
// driver loads the config first and applies explicit pass arguments
// on top of it.
func (o *Options) LoadConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	for k, v := range raw {
		o.args[k] = v
	}

	return nil
}

// ReadPossibleResponseFile resolves the response-file convention: a
// value of the form @path is replaced with the contents of path, any
// other value is returned unchanged. A reference to a missing or
// unreadable file is a hard error, substituting an empty list behind
// the caller's back is not an option.
func ReadPossibleResponseFile(value string) (string, error) {
	if !strings.HasPrefix(value, "@") {
		return value, nil
	}

	data, err := os.ReadFile(value[1:])
	if err != nil {
		return "", fmt.Errorf("read response file: %w", err)
	}

	return string(data), nil
}
