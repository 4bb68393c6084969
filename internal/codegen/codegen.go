// Package codegen describes the interface a downstream code generator is
// expected to consume, per spec §6.4. plumec ships no backend: wiring an
// LLVM binding is explicitly out of scope (spec §1), so Target exists only
// to let callers like cmd/plumec's build subcommand describe what such a
// backend would need, and to give ManifestFor a concrete, testable shape.
package codegen

import (
	"fmt"
	"sort"

	"github.com/plume-lang/plumec/internal/ast"
	"github.com/plume-lang/plumec/internal/resolver"
)

// Unit is the flat, per-file view a code generator consumes: top-level
// expressions restricted to the kinds spec §6.4 names (Function,
// Declare(Function), Export(Function), Import, ExportFromFile, and
// top-level Comment). Anything else found at the top level is dropped from
// Unit.Expressions but reported in Unit.Skipped so a caller can see what a
// real backend would still need to reject or support.
type Unit struct {
	Path        string
	Expressions []ast.Expression
	Skipped     []ast.Expression
}

// Target is the interface a downstream code generator implements. plumec
// itself never calls Emit; it exists so a future backend (or a test double)
// has a concrete contract to satisfy.
type Target interface {
	// Name identifies the target, e.g. "llvm-ir" or "x86_64-object".
	Name() string
	// Emit consumes every Unit of a resolved Program and produces
	// target-specific output, or an error.
	Emit(units []Unit) ([]byte, error)
}

// UnitsFor reduces a resolved Program to the flat per-file Units a Target
// expects, in path-sorted order so output is deterministic across runs.
func UnitsFor(program *resolver.Program) []Unit {
	paths := make([]string, 0, len(program.Files))
	for path := range program.Files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	units := make([]Unit, 0, len(paths))
	for _, path := range paths {
		units = append(units, unitFor(program.Files[path]))
	}
	return units
}

func unitFor(file *resolver.SourceFile) Unit {
	u := Unit{Path: file.Path}
	for _, e := range file.Expressions {
		if isDownstreamExpression(e) {
			u.Expressions = append(u.Expressions, e)
		} else {
			u.Skipped = append(u.Skipped, e)
		}
	}
	return u
}

func isDownstreamExpression(e ast.Expression) bool {
	switch n := e.(type) {
	case *ast.Function, *ast.Import, *ast.ExportFromFile, *ast.Comment:
		return true
	case *ast.Declare:
		_, ok := n.Value.(*ast.Function)
		return ok
	case *ast.Export:
		_, ok := n.Value.(*ast.Function)
		return ok
	default:
		return false
	}
}

// Manifest summarizes what a Target would be asked to consume, the
// "manifest of what a code generator would need" that plumec build prints
// instead of invoking a real backend.
type Manifest struct {
	FileCount  int
	UnitCounts map[string]int
}

// ManifestFor builds a Manifest describing units without emitting anything.
func ManifestFor(units []Unit) Manifest {
	m := Manifest{FileCount: len(units), UnitCounts: map[string]int{}}
	for _, u := range units {
		m.UnitCounts[u.Path] = len(u.Expressions)
	}
	return m
}

func (m Manifest) String() string {
	paths := make([]string, 0, len(m.UnitCounts))
	for path := range m.UnitCounts {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	out := fmt.Sprintf("%d file(s)\n", m.FileCount)
	for _, path := range paths {
		out += fmt.Sprintf("  %s: %d downstream expression(s)\n", path, m.UnitCounts[path])
	}
	return out
}
