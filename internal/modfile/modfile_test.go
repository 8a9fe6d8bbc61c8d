package modfile

import (
	"strings"
	"testing"

	"github.com/sirkon/deepequal"

	"github.com/midokura/wasmtrace/internal/ir"
)

const sampleModule = `
functions:
  - name: fd_write
    import: {module: wasi_snapshot_preview1, base: fd_write}
    params: [i32, i32, i32, i32]
    results: [i32]
  - name: main
    body:
      block:
        - opaque: "setup"
        - loop:
            block:
              - call:
                  target: fd_write
                  operands:
                    - const: 1
              - return:
        - nop:
`

func sampleIR(t *testing.T) *ir.Module {
	t.Helper()

	m := ir.NewModule()
	imp := &ir.Function{
		Name:    "fd_write",
		Module:  "wasi_snapshot_preview1",
		Base:    "fd_write",
		Params:  []ir.ValueType{ir.I32, ir.I32, ir.I32, ir.I32},
		Results: []ir.ValueType{ir.I32},
	}
	if err := m.AddFunction(imp); err != nil {
		t.Fatal(err)
	}

	main := &ir.Function{
		Name: "main",
		Body: &ir.Block{List: []ir.Expression{
			&ir.Opaque{Text: "setup"},
			&ir.Loop{Body: &ir.Block{List: []ir.Expression{
				&ir.Call{Target: "fd_write", Operands: []ir.Expression{&ir.ConstI32{Value: 1}}},
				&ir.Return{},
			}}},
			&ir.Nop{},
		}},
	}
	if err := m.AddFunction(main); err != nil {
		t.Fatal(err)
	}

	return m
}

func TestDecode(t *testing.T) {
	m, err := Decode([]byte(sampleModule))
	if err != nil {
		t.Fatal(err)
	}

	want := sampleIR(t)
	deepequal.SideBySide(t, "functions", want.Functions(), m.Functions())
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	want := sampleIR(t)

	data, err := Encode(want)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("decode rendered module: %v\n%s", err, data)
	}

	deepequal.SideBySide(t, "functions", want.Functions(), got.Functions())
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "imported function with a body",
			src: `
functions:
  - name: f
    import: {module: env, base: f}
    body:
      nop:
`,
			want: "cannot have a body",
		},
		{
			name: "function without body or import",
			src: `
functions:
  - name: f
`,
			want: "neither a body nor an import",
		},
		{
			name: "unknown expression kind",
			src: `
functions:
  - name: f
    body:
      teleport:
`,
			want: "unknown expression kind",
		},
		{
			name: "duplicate function name",
			src: `
functions:
  - name: f
    body: {nop: }
  - name: f
    body: {nop: }
`,
			want: "duplicate function name",
		},
		{
			name: "multi-key expression",
			src: `
functions:
  - name: f
    body:
      nop:
      return:
`,
			want: "single-key mapping",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.src))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}
