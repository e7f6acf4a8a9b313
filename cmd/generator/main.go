// Command generator compiles CDP IDL documents into typed Go protocol
// bindings.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cdptools/cdpgen/codegen"
	"github.com/cdptools/cdpgen/codegen/cdp"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		generatorName string
		outputDir     string
		packageName   string
		importBase    string
		runtimeImport string
		noFormat      bool
		listGens      bool
		debug         bool
	)

	cmd := &cobra.Command{
		Use:          "cdpgen [flags] <schema-file>...",
		Short:        "cdpgen — generate typed Go protocol bindings from CDP IDL documents",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			setupLogging(debug)

			if listGens {
				listGenerators()
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("at least one schema file is required")
			}

			generator, err := pickGenerator(generatorName, args[0])
			if err != nil {
				return err
			}

			for _, schema := range args {
				if err := generator.ValidateSchema(schema); err != nil {
					return fmt.Errorf("schema validation failed: %w", err)
				}
			}

			config := codegen.GenerateConfig{
				SchemaPaths: args,
				OutputDir:   outputDir,
				PackageName: packageName,
				Options: &cdp.Options{GeneratorOptions: &cdp.GeneratorOptions{
					ImportBase:    importBase,
					RuntimeImport: runtimeImport,
					FormatOutput:  !noFormat,
				}},
			}

			if err := generator.Generate(config); err != nil {
				return fmt.Errorf("failed to generate code: %w", err)
			}

			fmt.Printf("Successfully generated Go bindings using '%s' generator in %s\n",
				generator.Name(), outputDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&generatorName, "generator", "", "specific generator to use (auto-detected if not specified)")
	cmd.Flags().StringVarP(&outputDir, "out", "o", "cdp", "output directory for generated files")
	cmd.Flags().StringVar(&packageName, "package", "cdp", "name of the generated root package")
	cmd.Flags().StringVar(&importBase, "import-base", "github.com/cdptools/cdpgen/cdp", "import path of the generated root package")
	cmd.Flags().StringVar(&runtimeImport, "runtime", cdp.DefaultRuntimeImport, "import path of the wire runtime package")
	cmd.Flags().BoolVar(&noFormat, "no-format", false, "disable automatic go fmt on the output")
	cmd.Flags().BoolVar(&listGens, "list", false, "list available generators")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable verbose logging (also via LOG_LEVEL=debug)")
	return cmd
}

// setupLogging configures the process logger. The --debug flag or the
// LOG_LEVEL environment variable select verbosity.
func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug || strings.EqualFold(os.Getenv("LOG_LEVEL"), "debug") {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func pickGenerator(name, schemaFile string) (codegen.Generator, error) {
	if name != "" {
		return codegen.Get(name)
	}

	generators := codegen.GetByFormat(schemaFile)
	if len(generators) == 0 {
		return nil, fmt.Errorf("no generators found that support file format of %s", schemaFile)
	}
	if len(generators) > 1 {
		var names []string
		for _, g := range generators {
			names = append(names, g.Name())
		}
		slog.Info("multiple generators support this format, using first",
			"candidates", strings.Join(names, ", "), "selected", generators[0].Name())
	}
	return generators[0], nil
}

func listGenerators() {
	fmt.Println("Available Generators:")
	fmt.Println()

	infos := codegen.ListGeneratorInfo()
	if len(infos) == 0 {
		fmt.Println("No generators registered.")
		return
	}

	for _, info := range infos {
		fmt.Printf("  %s\n", info.Name)
		fmt.Printf("    Description: %s\n", info.Description)
		fmt.Printf("    Supported formats: %s\n", strings.Join(info.SupportedFormats, ", "))
		fmt.Println()
	}
}
