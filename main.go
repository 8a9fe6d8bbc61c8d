package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/midokura/wasmtrace/internal/logexec"
	"github.com/midokura/wasmtrace/internal/modfile"
	"github.com/midokura/wasmtrace/internal/passes"
)

const doc = `wasmtrace instruments a module with execution logging at every function
entry, loop header and return, to capture run traces for diffing`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("wasmtrace", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "%s\n\nusage: wasmtrace [flags] module.yaml\n", doc)
		fs.PrintDefaults()
	}

	var (
		output  = fs.String("o", "", "output module file (default stdout)")
		config  = fs.String("config", "", "YAML file with pass options")
		verbose = fs.Bool("v", false, "log pass progress")
		rawArgs passArgs
	)
	fs.Var(&rawArgs, "pass-arg", "pass option as key@value (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected exactly one module file, got %d arguments", fs.NArg())
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if !*verbose {
		log.SetLevel(logrus.WarnLevel)
	}

	opts := passes.NewOptions()
	if *config != "" {
		if err := opts.LoadConfig(*config); err != nil {
			return err
		}
	}
	// Explicit pass arguments override the config file.
	rawArgs.apply(opts)

	m, err := modfile.Read(fs.Arg(0))
	if err != nil {
		return err
	}

	pass := logexec.New()
	start := time.Now()
	if err := pass.Run(m, opts); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"pass":         pass.Name(),
		"functions":    len(m.Functions()),
		"adds_effects": pass.AddsEffects(),
		"duration":     time.Since(start),
	}).Info("pass finished")

	if *output == "" {
		data, err := modfile.Encode(m)
		if err != nil {
			return err
		}
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("write module to stdout: %w", err)
		}
		return nil
	}

	if err := modfile.Write(*output, m); err != nil {
		return err
	}
	log.WithField("output", *output).Info("module written")

	return nil
}
