// Package modfile reads and writes the YAML module format the CLI
// works with. A module file lists functions in declaration order;
// every body expression is a single-key mapping naming its kind:
//
//	functions:
//	  - name: fd_write
//	    import: {module: wasi_snapshot_preview1, base: fd_write}
//	    params: [i32, i32, i32, i32]
//	    results: [i32]
//	  - name: main
//	    body:
//	      block:
//	        - opaque: "setup"
//	        - loop:
//	            return:
//
// The format round-trips the IR exactly, modulo YAML formatting.
package modfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/midokura/wasmtrace/internal/ir"
)

type fileModule struct {
	Functions []fileFunction `yaml:"functions"`
}

type fileFunction struct {
	Name    string         `yaml:"name"`
	Import  *fileImport    `yaml:"import,omitempty"`
	Params  []ir.ValueType `yaml:"params,omitempty"`
	Results []ir.ValueType `yaml:"results,omitempty"`
	Body    *exprNode      `yaml:"body,omitempty"`
}

type fileImport struct {
	Module string `yaml:"module"`
	Base   string `yaml:"base"`
}

type fileCall struct {
	Target   string     `yaml:"target"`
	Operands []exprNode `yaml:"operands,omitempty"`
}

// exprNode adapts the expression union to YAML's single-key mapping
// convention in both directions.
type exprNode struct {
	e ir.Expression
}

func (n *exprNode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode || len(value.Content) != 2 {
		return fmt.Errorf("line %d: an expression must be a single-key mapping", value.Line)
	}

	kind := value.Content[0].Value
	payload := value.Content[1]

	switch kind {
	case "block":
		var kids []exprNode
		if err := payload.Decode(&kids); err != nil {
			return fmt.Errorf("block children: %w", err)
		}
		block := &ir.Block{}
		for _, kid := range kids {
			block.List = append(block.List, kid.e)
		}
		n.e = block
	case "loop":
		var kid exprNode
		if err := payload.Decode(&kid); err != nil {
			return fmt.Errorf("loop body: %w", err)
		}
		n.e = &ir.Loop{Body: kid.e}
	case "return":
		if payload.Tag == "!!null" {
			n.e = &ir.Return{}
			return nil
		}
		var kid exprNode
		if err := payload.Decode(&kid); err != nil {
			return fmt.Errorf("return value: %w", err)
		}
		n.e = &ir.Return{Value: kid.e}
	case "call":
		var call fileCall
		if err := payload.Decode(&call); err != nil {
			return fmt.Errorf("call: %w", err)
		}
		c := &ir.Call{Target: call.Target}
		for _, op := range call.Operands {
			c.Operands = append(c.Operands, op.e)
		}
		n.e = c
	case "const":
		var v int32
		if err := payload.Decode(&v); err != nil {
			return fmt.Errorf("const: %w", err)
		}
		n.e = &ir.ConstI32{Value: v}
	case "nop":
		n.e = &ir.Nop{}
	case "opaque":
		var text string
		if err := payload.Decode(&text); err != nil {
			return fmt.Errorf("opaque: %w", err)
		}
		n.e = &ir.Opaque{Text: text}
	default:
		return fmt.Errorf("line %d: unknown expression kind %q", value.Line, kind)
	}

	return nil
}

func (n exprNode) MarshalYAML() (any, error) {
	switch v := n.e.(type) {
	case *ir.Block:
		kids := make([]exprNode, 0, len(v.List))
		for _, kid := range v.List {
			kids = append(kids, exprNode{e: kid})
		}
		return map[string]any{"block": kids}, nil
	case *ir.Loop:
		return map[string]any{"loop": exprNode{e: v.Body}}, nil
	case *ir.Return:
		if v.Value == nil {
			return map[string]any{"return": nil}, nil
		}
		return map[string]any{"return": exprNode{e: v.Value}}, nil
	case *ir.Call:
		call := fileCall{Target: v.Target}
		for _, op := range v.Operands {
			call.Operands = append(call.Operands, exprNode{e: op})
		}
		return map[string]any{"call": call}, nil
	case *ir.ConstI32:
		return map[string]any{"const": v.Value}, nil
	case *ir.Nop:
		return map[string]any{"nop": nil}, nil
	case *ir.Opaque:
		return map[string]any{"opaque": v.Text}, nil
	default:
		return nil, fmt.Errorf("unknown expression kind %T", n.e)
	}
}

// Decode builds a module from YAML text.
func Decode(data []byte) (*ir.Module, error) {
	var file fileModule
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse module file: %w", err)
	}

	m := ir.NewModule()
	for _, fn := range file.Functions {
		f := &ir.Function{
			Name:    fn.Name,
			Params:  fn.Params,
			Results: fn.Results,
		}
		switch {
		case fn.Import != nil:
			if fn.Body != nil {
				return nil, fmt.Errorf("function %q is imported and cannot have a body", fn.Name)
			}
			f.Module = fn.Import.Module
			f.Base = fn.Import.Base
		case fn.Body != nil:
			f.Body = fn.Body.e
		default:
			return nil, fmt.Errorf("function %q has neither a body nor an import", fn.Name)
		}

		if err := m.AddFunction(f); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Encode renders a module back to YAML text.
func Encode(m *ir.Module) ([]byte, error) {
	var file fileModule
	for _, f := range m.Functions() {
		fn := fileFunction{
			Name:    f.Name,
			Params:  f.Params,
			Results: f.Results,
		}
		if f.Imported() {
			fn.Import = &fileImport{Module: f.Module, Base: f.Base}
		} else {
			fn.Body = &exprNode{e: f.Body}
		}
		file.Functions = append(file.Functions, fn)
	}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return nil, fmt.Errorf("render module file: %w", err)
	}

	return data, nil
}

// Read loads a module from a YAML file.
func Read(path string) (*ir.Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read module file: %w", err)
	}

	m, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Write stores a module to a YAML file, replacing its contents.
func Write(path string, m *ir.Module) error {
	data, err := Encode(m)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write module file: %w", err)
	}

	return nil
}
