package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI invokes rootCmd with args, redirecting both cobra's own output and
// any fmt.Print* calls the subcommand handlers make (which write to the
// real os.Stdout rather than through cobra) to buf.
func runCLI(t *testing.T, args []string) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("creating pipe: %v", err)
	}
	os.Stdout = w

	rootCmd.SetArgs(args)
	var outBuf bytes.Buffer
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&outBuf)
	runErr := rootCmd.Execute()

	w.Close()
	os.Stdout = origStdout

	var captured bytes.Buffer
	captured.ReadFrom(r)

	return outBuf.String() + captured.String(), runErr
}

func TestLexCmd_TokenizesInlineSnippet(t *testing.T) {
	out, err := runCLI(t, []string{"lex", "-e", "1 + 2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Number") || !strings.Contains(out, "EOF") {
		t.Fatalf("unexpected lex output: %q", out)
	}
}

func TestParseCmd_CountsTopLevelExpressions(t *testing.T) {
	out, err := runCLI(t, []string{"parse", "-e", "1; 2; 3;"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "3 top-level expression(s)") {
		t.Fatalf("unexpected parse output: %q", out)
	}
}

func TestParseCmd_DumpASTPrintsExpressions(t *testing.T) {
	out, err := runCLI(t, []string{"parse", "-e", "1;", "--dump-ast"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Number") {
		t.Fatalf("expected a Number node in dump-ast output: %q", out)
	}
}

func TestFmtCmd_PrintsCorrectedExportFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.plume")
	if err := os.WriteFile(path, []byte(`export { add } from "math.plume"`), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	out, err := runCLI(t, []string{"fmt", path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "export {add} from \"math.plume\"") {
		t.Fatalf("expected corrected export rendering, got %q", out)
	}
}

func TestFmtCmd_CompatFlagReproducesImportBug(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.plume")
	if err := os.WriteFile(path, []byte(`export { add } from "math.plume"`), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	out, err := runCLI(t, []string{"fmt", "--compat", path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "import {add} from \"math.plume\"") {
		t.Fatalf("expected bug-compatible import rendering, got %q", out)
	}
}

func TestBuildCmd_PrintsManifestFromProjectJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "main.plume"), []byte(`function main() -> void {}`), 0o644); err != nil {
		t.Fatalf("writing entry: %v", err)
	}
	manifestPath := filepath.Join(dir, "project.json")
	if err := os.WriteFile(manifestPath, []byte(`{"name":"demo","version":"0.1.0","kind":"executable","entry":"`+filepath.Join(dir, "main.plume")+`"}`), 0o644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}

	out, err := runCLI(t, []string{"build", "--manifest", manifestPath})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "1 file(s)") {
		t.Fatalf("unexpected build output: %q", out)
	}
}
