package cdp

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cdptools/cdpgen/codegen"
	"github.com/cdptools/cdpgen/naming"
)

// DefaultRuntimeImport is the wire runtime package generated code imports
// unless overridden.
const DefaultRuntimeImport = "github.com/cdptools/cdpgen/wire"

// markerFile is the zero-byte file written next to the generated index to
// signal that the package carries type metadata.
const markerFile = ".typed"

// GeneratorOptions configure CDP code generation.
type GeneratorOptions struct {
	// PackageName is the name of the generated root package.
	PackageName string

	// ImportBase is the import path of the generated root package. Domain
	// packages are imported as ImportBase + "/" + package.
	ImportBase string

	// RuntimeImport is the import path of the wire runtime package.
	RuntimeImport string

	// FormatOutput determines whether to run go fmt on the output files.
	FormatOutput bool
}

// Options wraps GeneratorOptions for codegen.GenerateConfig.
type Options struct {
	*GeneratorOptions
}

// CDPGenerator implements the Generator interface for CDP IDL documents.
type CDPGenerator struct{}

// Name returns the unique identifier for this generator
func (g *CDPGenerator) Name() string {
	return "cdp"
}

// Description returns a human-readable description
func (g *CDPGenerator) Description() string {
	return "Generates typed Go protocol bindings from CDP IDL documents"
}

// SupportedFormats returns the file extensions this generator can process
func (g *CDPGenerator) SupportedFormats() []string {
	return []string{".json", ".yaml", ".yml"}
}

// ValidateSchema checks that the document loads and declares the supported
// protocol version.
func (g *CDPGenerator) ValidateSchema(schemaPath string) error {
	doc, err := LoadDocument(schemaPath)
	if err != nil {
		return err
	}
	return CheckVersion(doc, schemaPath)
}

// Generate compiles the configured IDL documents into Go source artifacts.
// The whole run is atomic: every domain is parsed, validated, and rendered
// in memory before the output directory is touched.
func (g *CDPGenerator) Generate(config codegen.GenerateConfig) error {
	var options *GeneratorOptions

	if config.Options != nil {
		if opts, ok := config.Options.(*Options); ok && opts.GeneratorOptions != nil {
			options = opts.GeneratorOptions
		} else if opts, ok := config.Options.(*GeneratorOptions); ok {
			options = opts
		}
	}

	if options == nil {
		options = &GeneratorOptions{FormatOutput: true}
	}
	if config.PackageName != "" {
		options.PackageName = config.PackageName
	}
	if options.PackageName == "" {
		options.PackageName = "cdp"
	}
	if options.RuntimeImport == "" {
		options.RuntimeImport = DefaultRuntimeImport
	}
	if options.ImportBase == "" {
		return fmt.Errorf("import base is required: generated domain packages import each other through it")
	}

	domains, err := Compile(config.SchemaPaths)
	if err != nil {
		return err
	}

	files, err := Render(domains, options)
	if err != nil {
		return err
	}

	if err := writeFiles(config.OutputDir, files); err != nil {
		return err
	}

	if options.FormatOutput {
		formatFiles(config.OutputDir, files)
	}
	return nil
}

// Compile parses the IDL documents into one validated compilation unit,
// sorted by domain name for reproducible output.
func Compile(schemaPaths []string) ([]Domain, error) {
	if len(schemaPaths) == 0 {
		return nil, fmt.Errorf("no schema files given")
	}

	var domains []Domain
	for _, path := range schemaPaths {
		slog.Info("parsing schema", "path", path)
		doc, err := LoadDocument(path)
		if err != nil {
			return nil, err
		}
		if err := CheckVersion(doc, path); err != nil {
			return nil, err
		}
		for _, node := range doc.Domains {
			domains = append(domains, NewDomain(node))
		}
	}

	sort.Slice(domains, func(i, j int) bool {
		return domains[i].Name < domains[j].Name
	})

	if err := ValidateReferences(domains); err != nil {
		return nil, err
	}
	if err := ValidateEventTags(domains); err != nil {
		return nil, err
	}
	return domains, nil
}

// Render generates every output file in memory: one source file per domain,
// the aggregate index, and the zero-byte type-metadata marker. Keys are
// paths relative to the output directory.
func Render(domains []Domain, options *GeneratorOptions) (map[string][]byte, error) {
	rc := renderContext{
		importBase:    options.ImportBase,
		runtimeImport: options.RuntimeImport,
	}

	files := make(map[string][]byte)
	for i := range domains {
		pkg := naming.PackageName(domains[i].Name)
		slog.Debug("generating module", "domain", domains[i].Name, "package", pkg)
		content, err := renderDomain(&domains[i], rc)
		if err != nil {
			return nil, err
		}
		files[filepath.Join(pkg, pkg+".go")] = content
	}
	files[options.PackageName+".go"] = renderIndex(domains, options.PackageName, rc)
	files[markerFile] = []byte{}
	return files, nil
}

func writeFiles(outputDir string, files map[string][]byte) error {
	for path, content := range files {
		full := filepath.Join(outputDir, path)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(full, content, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", full, err)
		}
	}
	return nil
}

func formatFiles(outputDir string, files map[string][]byte) {
	for path := range files {
		if !strings.HasSuffix(path, ".go") {
			continue
		}
		full := filepath.Join(outputDir, path)
		if err := exec.Command("go", "fmt", full).Run(); err != nil {
			slog.Warn("failed to format generated file", "path", full, "error", err)
		}
	}
}

// NewCDPGenerator creates a new instance of the CDP generator
func NewCDPGenerator() *CDPGenerator {
	return &CDPGenerator{}
}

// Register automatically registers the CDP generator with the default registry
func init() {
	generator := NewCDPGenerator()
	if err := codegen.Register(generator); err != nil {
		panic(fmt.Sprintf("Failed to register CDP generator: %v", err))
	}
}
