package passes

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOptions_Arguments(t *testing.T) {
	o := NewOptions()
	o.Set("log-execution", "env")

	if v, ok := o.Argument("log-execution"); !ok || v != "env" {
		t.Errorf("Argument = %q, %v; want %q, true", v, ok, "env")
	}
	if _, ok := o.Argument("missing"); ok {
		t.Error("Argument reported an unset key as present")
	}
	if v := o.ArgumentOrDefault("missing", "fallback"); v != "fallback" {
		t.Errorf("ArgumentOrDefault = %q, want %q", v, "fallback")
	}
}

func TestOptions_LoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opts.yaml")
	content := "log-execution: custom_env\nlog-execution-nostd: \"1\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	o := NewOptions()
	if err := o.LoadConfig(path); err != nil {
		t.Fatal(err)
	}
	// Explicit arguments set after loading override the file.
	o.Set("log-execution", "override")

	if v := o.ArgumentOrDefault("log-execution", ""); v != "override" {
		t.Errorf("log-execution = %q, want %q", v, "override")
	}
	if v := o.ArgumentOrDefault("log-execution-nostd", ""); v != "1" {
		t.Errorf("log-execution-nostd = %q, want %q", v, "1")
	}
}

func TestOptions_LoadConfigMissing(t *testing.T) {
	o := NewOptions()
	if err := o.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestReadPossibleResponseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.txt")
	if err := os.WriteFile(path, []byte("one,two\nthree"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{name: "literal value", value: "one,two", want: "one,two"},
		{name: "file reference", value: "@" + path, want: "one,two\nthree"},
		{name: "missing file", value: "@" + path + ".gone", wantErr: true},
		{name: "empty value", value: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadPossibleResponseFile(tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
