package resolver_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plume-lang/plumec/internal/resolver"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestParseFile_CollectsImportDependency(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "util.plume", `export function helper() -> void {}`)
	entry := writeFile(t, dir, "main.plume", `import { helper } from "util.plume"`)

	file, err := resolver.ParseFile(entry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(file.Dependencies) != 1 || file.Dependencies[0] != "util.plume" {
		t.Fatalf("unexpected dependencies: %v", file.Dependencies)
	}
	if !file.Validate() {
		t.Fatal("Validate should always return true")
	}
}

func TestBuildProgram_ResolvesTransitiveDependency(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "leaf.plume", `function leaf() -> void {}`)
	writeFile(t, dir, "mid.plume", `import { leaf } from "leaf.plume"`)
	entry := writeFile(t, dir, "main.plume", `import { mid } from "mid.plume"`)

	program, err := resolver.BuildProgram(entry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(program.Files) != 3 {
		t.Fatalf("got %d files, want 3: %v", len(program.Files), program.Files)
	}
	for _, path := range []string{entry, filepath.Join(dir, "mid.plume"), filepath.Join(dir, "leaf.plume")} {
		if _, ok := program.Files[path]; !ok {
			t.Fatalf("missing file %s in program: %v", path, program.Files)
		}
	}
}

func TestBuildProgram_TerminatesOnSelfImportCycle(t *testing.T) {
	dir := t.TempDir()
	entry := writeFile(t, dir, "main.plume", `import { main } from "main.plume"`)

	program, err := resolver.BuildProgram(entry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(program.Files) != 1 {
		t.Fatalf("got %d files, want 1 (cycle must terminate): %v", len(program.Files), program.Files)
	}
}

func TestBuildProgram_TerminatesOnMutualCycle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.plume", `import { a } from "a.plume"`)
	entry := writeFile(t, dir, "a.plume", `import { b } from "b.plume"`)

	program, err := resolver.BuildProgram(entry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(program.Files) != 2 {
		t.Fatalf("got %d files, want 2 (mutual cycle must terminate): %v", len(program.Files), program.Files)
	}
}

func TestBuildProgram_MissingFileIsAnError(t *testing.T) {
	dir := t.TempDir()
	entry := writeFile(t, dir, "main.plume", `import { missing } from "missing.plume"`)

	if _, err := resolver.BuildProgram(entry); err == nil {
		t.Fatal("expected an error for a missing dependency file")
	}
}

func TestProgram_ValidateReturnsTrueForEveryFile(t *testing.T) {
	dir := t.TempDir()
	entry := writeFile(t, dir, "main.plume", `function main() -> void {}`)

	program, err := resolver.BuildProgram(entry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for path, ok := range program.Validate() {
		if !ok {
			t.Fatalf("expected Validate() to report true for %s", path)
		}
	}
}
