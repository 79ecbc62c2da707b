package analysis

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"

	"github.com/reoring/schemald/internal/ir"
)

// GeneratedFile is the name of the file written next to the annotated sources.
const GeneratedFile = "zz_generated.schemald.go"

// ErrNoPackages reports patterns that matched nothing.
var ErrNoPackages = errors.New("analysis: no packages matched")

// LoadConfig controls package loading.
type LoadConfig struct {
	Dir     string   // working directory for pattern resolution; empty means the current one
	Tags    []string // build tags
	Workers int      // concurrent package analyses; <= 0 means one per package
	// Output is the generated file name, reduced to its package clause while
	// loading. Empty means GeneratedFile.
	Output  string
	Options Options
}

// Package is the analysis result of one Go package.
type Package struct {
	Path string `json:"path" yaml:"path"`
	Name string `json:"name" yaml:"name"`
	Dir  string `json:"dir" yaml:"dir"`
	// Annotated names every marked type, including those Options.Types
	// filtered out or dropped for errors.
	Annotated []string         `json:"annotated,omitempty" yaml:"annotated,omitempty"`
	Decls     []ir.Declaration `json:"declarations" yaml:"declarations"`
	Diags     Diagnostics      `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// Load type-checks the packages matching patterns and analyzes them
// concurrently. Results keep the order reported by the loader. Previously
// generated files are ignored so stale output never blocks regeneration.
func Load(ctx context.Context, cfg LoadConfig, patterns ...string) ([]*Package, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}
	pcfg := &packages.Config{
		Context: ctx,
		Dir:     cfg.Dir,
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
			packages.NeedTypes | packages.NeedTypesInfo | packages.NeedImports,
		ParseFile: skipGenerated(cfg.Output),
	}
	if len(cfg.Tags) > 0 {
		pcfg.BuildFlags = []string{"-tags=" + strings.Join(cfg.Tags, ",")}
	}
	pkgs, err := packages.Load(pcfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoPackages, patterns)
	}

	opts := cfg.Options
	opts.Annotated = markedIn(pkgs)

	out := make([]*Package, len(pkgs))
	g, gctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}
	for i, p := range pkgs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = analyzePackage(p, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// markedIn collects annotated types across the loaded packages. A package that
// imports another loaded package sees it type-checked from source, where the
// generated methods are missing.
func markedIn(pkgs []*packages.Package) map[*types.TypeName]bool {
	marked := make(map[*types.TypeName]bool)
	for _, p := range pkgs {
		if len(p.Errors) > 0 || p.Types == nil {
			continue
		}
		for _, obj := range Marked(input(p)) {
			marked[obj] = true
		}
	}
	return marked
}

func input(p *packages.Package) Input {
	return Input{Fset: p.Fset, Files: p.Syntax, Pkg: p.Types, Info: p.TypesInfo}
}

func analyzePackage(p *packages.Package, opts Options) *Package {
	res := &Package{Path: p.PkgPath, Name: p.Name}
	if len(p.GoFiles) > 0 {
		res.Dir = filepath.Dir(p.GoFiles[0])
	}
	if len(p.Errors) > 0 {
		for _, e := range p.Errors {
			res.Diags = append(res.Diags, Diagnostic{
				Pos:      parsePos(e.Pos),
				Code:     CodeLoad,
				Message:  e.Msg,
				Severity: SeverityError,
			})
		}
		return res
	}
	in := input(p)
	for _, obj := range Marked(in) {
		res.Annotated = append(res.Annotated, obj.Name())
	}
	res.Decls, res.Diags = Analyze(in, opts)
	return res
}

// skipGenerated returns a parser that reads every file normally except our own
// output, which is reduced to its package clause. Packages outside the patterns
// come from export data and keep their generated methods.
func skipGenerated(output string) func(*token.FileSet, string, []byte) (*ast.File, error) {
	if output == "" {
		output = GeneratedFile
	}
	return func(fset *token.FileSet, filename string, src []byte) (*ast.File, error) {
		mode := parser.AllErrors | parser.ParseComments
		if filepath.Base(filename) == output {
			mode = parser.PackageClauseOnly
		}
		return parser.ParseFile(fset, filename, src, mode)
	}
}

// parsePos turns a loader position ("file:line:col" or "file:line") into a
// token.Position.
func parsePos(s string) token.Position {
	var pos token.Position
	if s == "" || s == "-" {
		return pos
	}
	var nums []int
	for len(nums) < 2 {
		i := strings.LastIndexByte(s, ':')
		if i <= 0 {
			break
		}
		n, err := strconv.Atoi(s[i+1:])
		if err != nil {
			break
		}
		nums = append([]int{n}, nums...)
		s = s[:i]
	}
	pos.Filename = s
	if len(nums) > 0 {
		pos.Line = nums[0]
	}
	if len(nums) > 1 {
		pos.Column = nums[1]
	}
	return pos
}
