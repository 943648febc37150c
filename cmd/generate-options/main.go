// Command generate-options regenerates the typed options of a service package
// from its embedded OpenAPI definition.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/watson-developer-cloud/assistant-go-sdk/internal/optionsgen"
	"github.com/watson-developer-cloud/assistant-go-sdk/openapi_schema"
)

func main() {
	var (
		api    string
		pkg    string
		outDir string
	)
	cmd := &cobra.Command{
		Use:          "generate-options",
		Short:        "Generate typed options, builders and service methods",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			files, err := optionsgen.Generate(openapi_schema.API(api), pkg)
			if err != nil {
				return err
			}
			names := make([]string, 0, len(files))
			for name := range files {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				path := filepath.Join(outDir, name)
				if err := os.WriteFile(path, files[name], 0o644); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", path)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d files for %s\n", len(names), api)
			return nil
		},
	}
	cmd.Flags().StringVar(&api, "api", string(openapi_schema.AssistantV1), "embedded definition to generate from")
	cmd.Flags().StringVar(&pkg, "pkg", "assistantv1", "package name of the generated files")
	cmd.Flags().StringVar(&outDir, "out", ".", "output directory")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
