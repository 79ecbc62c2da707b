package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"
	"syscall"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/schemald/internal/analysis"
	"github.com/reoring/schemald/internal/config"
	"github.com/reoring/schemald/internal/gen"
)

// Exit codes.
const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return exitUsage
	}
	switch args[0] {
	case "generate":
		return generateCmd(ctx, args[1:], stderr)
	case "inspect":
		return inspectCmd(ctx, args[1:], stdout, stderr)
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return exitOK
	default:
		usage(stderr)
		return exitUsage
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, `schemald generates allocation-light JSON-LD writers for //schemald:type structs.

Usage:
  schemald generate [-config schemald.yaml] [-o zz_generated.schemald.go] [-type T1,T2] [-workers n] [-tags t1,t2] [-strict] [-v] [packages...]
  schemald inspect  [-config schemald.yaml] [-format json|yaml] [-type T1,T2] [packages...]

Exit codes: 0 ok, 1 analysis or generation failure, 2 usage error.`)
}

// options are the flags shared by both subcommands.
type options struct {
	configPath string
	output     string
	types      string
	tags       string
	workers    int
	strict     bool
	verbose    bool
}

func (o *options) register(fs *flag.FlagSet, generate bool) {
	fs.StringVar(&o.configPath, "config", "", "config file (default ./"+config.DefaultFile+" when present)")
	fs.StringVar(&o.types, "type", "", "comma-separated Go type names to process")
	fs.StringVar(&o.tags, "tags", "", "comma-separated build tags")
	fs.IntVar(&o.workers, "workers", 0, "packages analyzed concurrently")
	fs.BoolVar(&o.verbose, "v", false, "enable verbose logs")
	if generate {
		fs.StringVar(&o.output, "o", "", "generated file name, written next to the sources")
		fs.BoolVar(&o.strict, "strict", false, "treat warnings as failures")
	}
}

// resolve merges the config file with the flags that were set explicitly.
func (o *options) resolve(fs *flag.FlagSet) (config.Config, []string, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			cfg.Output = o.output
		case "type":
			cfg.Types = splitCSV(o.types)
		case "tags":
			cfg.Tags = splitCSV(o.tags)
		case "workers":
			cfg.Workers = o.workers
		case "strict":
			cfg.Strict = o.strict
		}
	})
	patterns := fs.Args()
	if len(patterns) == 0 {
		patterns = cfg.Packages
	}
	return cfg, patterns, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func generateCmd(ctx context.Context, args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var o options
	o.register(fs, true)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	log := newLogger(stderr, o.verbose)
	cfg, patterns, err := o.resolve(fs)
	if err != nil {
		log.Error("configuration", "err", err)
		return exitUsage
	}
	if filepath.Base(cfg.Output) != cfg.Output || !strings.HasSuffix(cfg.Output, ".go") {
		log.Error("output must be a .go file name without directories", "output", cfg.Output)
		return exitUsage
	}
	log.Debug("loading packages", "patterns", patterns, "workers", cfg.Workers)

	// A generated file holds every writer of its package; -type only picks
	// the packages to regenerate.
	lc := loadConfig(cfg)
	lc.Options.Types = nil
	pkgs, err := analysis.Load(ctx, lc, patterns...)
	if err != nil {
		log.Error("load", "err", err)
		return exitFail
	}

	failed := false
	for _, t := range cfg.Types {
		if !slices.ContainsFunc(pkgs, func(p *analysis.Package) bool { return slices.Contains(p.Annotated, t) }) {
			log.Warn("no annotated type matches", "type", t)
		}
	}
	for _, p := range pkgs {
		if !selected(p, cfg.Types) {
			log.Debug("skipped", "package", p.Path)
			continue
		}
		report(log, p)
		if p.Diags.HasErrors() || (cfg.Strict && len(p.Diags) > 0) {
			failed = true
			continue
		}
		if err := writePackage(log, p, cfg.Output); err != nil {
			log.Error("write", "package", p.Path, "err", err)
			failed = true
		}
	}
	if failed {
		return exitFail
	}
	return exitOK
}

func loadConfig(cfg config.Config) analysis.LoadConfig {
	return analysis.LoadConfig{
		Tags:    cfg.Tags,
		Workers: cfg.Workers,
		Output:  cfg.Output,
		Options: analysis.Options{Types: cfg.Types},
	}
}

// selected reports whether generate should rewrite p: always without a type
// filter, otherwise when p declares one of types or failed to load.
func selected(p *analysis.Package, types []string) bool {
	if len(types) == 0 || (len(p.Annotated) == 0 && p.Diags.HasErrors()) {
		return true
	}
	return slices.ContainsFunc(p.Annotated, func(name string) bool { return slices.Contains(types, name) })
}

// writePackage writes the generated file of p, or removes a stale one when the
// package no longer has annotated types.
func writePackage(log *slog.Logger, p *analysis.Package, output string) error {
	if p.Dir == "" {
		return nil
	}
	path := filepath.Join(p.Dir, output)
	if len(p.Annotated) == 0 {
		if err := os.Remove(path); err == nil {
			log.Info("removed stale output", "file", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	}
	code, err := gen.RenderFile(gen.File{Package: p.Name, Decls: p.Decls})
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, code, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	log.Info("generated", "file", path, "types", len(p.Decls))
	return nil
}

func report(log *slog.Logger, p *analysis.Package) {
	for _, d := range p.Diags {
		attrs := []any{"pos", d.Pos.String(), "code", d.Code}
		if d.Hint != "" {
			attrs = append(attrs, "hint", d.Hint)
		}
		if d.Severity == analysis.SeverityError {
			log.Error(d.Message, attrs...)
		} else {
			log.Warn(d.Message, attrs...)
		}
	}
	for _, d := range p.Decls {
		log.Debug("declaration", "package", p.Path, "type", d.GoName, "vocabulary", d.Vocabulary, "properties", len(d.Properties))
	}
}

func inspectCmd(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var o options
	var format string
	o.register(fs, false)
	fs.StringVar(&format, "format", "json", "output format: json or yaml")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	log := newLogger(stderr, o.verbose)
	if format != "json" && format != "yaml" {
		log.Error("unsupported format", "format", format)
		return exitUsage
	}
	cfg, patterns, err := o.resolve(fs)
	if err != nil {
		log.Error("configuration", "err", err)
		return exitUsage
	}
	pkgs, err := analysis.Load(ctx, loadConfig(cfg), patterns...)
	if err != nil {
		log.Error("load", "err", err)
		return exitFail
	}
	if err := encode(stdout, format, pkgs); err != nil {
		log.Error("encode", "err", err)
		return exitFail
	}
	for _, p := range pkgs {
		if p.Diags.HasErrors() {
			return exitFail
		}
	}
	return exitOK
}

func encode(w io.Writer, format string, v any) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	b, err := gojson.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
