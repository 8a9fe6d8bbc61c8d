package logexec

import (
	"bufio"
	"fmt"
	"os"

	"github.com/midokura/wasmtrace/internal/names"
)

// writeExportMap serializes the id→name table, one
// <decimal id>:<unescaped name> line per instrumented function in
// visitation order. The file is truncated on every run.
func writeExportMap(path string, record []ExportEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export map: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, e := range record {
		if _, err := fmt.Fprintf(w, "%d:%s\n", e.ID, names.Unescape(e.Name)); err != nil {
			_ = f.Close()
			return fmt.Errorf("write export map: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("flush export map: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export map: %w", err)
	}

	return nil
}
