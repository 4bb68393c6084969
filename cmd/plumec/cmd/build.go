package cmd

import (
	"fmt"

	"github.com/plume-lang/plumec/internal/codegen"
	"github.com/plume-lang/plumec/internal/manifest"
	"github.com/plume-lang/plumec/internal/resolver"
	"github.com/spf13/cobra"
)

var (
	buildManifestPath string
	buildTarget       string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Resolve a plume project's dependency graph",
	Long: `Resolve every file a project.json project depends on, starting
from its "entry" field, and print a manifest of what a downstream code
generator would need to consume.

plumec stops here: it does not link against an LLVM backend or emit
object code (see internal/codegen.Target). --target is accepted and
included in the printed manifest purely to describe which backend a
future codegen invocation would select.`,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVar(&buildManifestPath, "manifest", "project.json", "path to the project manifest")
	buildCmd.Flags().StringVarP(&buildTarget, "target", "t", "", "name of the downstream code generation target")
}

func runBuild(cmd *cobra.Command, args []string) error {
	proj, err := manifest.Load(buildManifestPath)
	if err != nil {
		return err
	}

	program, err := resolver.BuildProgram(proj.Entry)
	if err != nil {
		return err
	}

	units := codegen.UnitsFor(program)
	m := codegen.ManifestFor(units)

	if buildTarget != "" {
		fmt.Printf("target: %s\n", buildTarget)
	}
	fmt.Print(m.String())
	return nil
}
