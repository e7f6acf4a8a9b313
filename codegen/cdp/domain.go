package cdp

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/cdptools/cdpgen/naming"
)

// sharedHeaderLines open every generated file.
var sharedHeaderLines = []string{
	"// Code generated by cdpgen from the CDP specification. DO NOT EDIT.",
	"//",
	"// If you need to make changes, edit the generator and regenerate all of",
	"// the modules.",
}

// renderContext carries the import paths generated files refer to.
type renderContext struct {
	// importBase is the import path of the generated root package; domain
	// packages live directly beneath it.
	importBase string
	// runtimeImport is the import path of the wire runtime package.
	runtimeImport string
}

// importSet accumulates the imports one generated domain file needs.
type importSet struct {
	needFmt  bool
	needJSON bool
	needWire bool
	domains  map[string]bool
}

func newImportSet() *importSet {
	return &importSet{domains: make(map[string]bool)}
}

func (s *importSet) addDomain(pkg string) {
	s.domains[pkg] = true
}

// renderDomain generates the complete source file for one domain: header,
// imports, then all types in schema order, all commands, and all events,
// separated by a fixed blank-line convention. Intra-package forward
// references need no topological ordering; cross-domain references become
// package imports.
func renderDomain(d *Domain, rc renderContext) ([]byte, error) {
	imports := newImportSet()
	r := newResolver(d.Name, imports)

	var blocks []string
	for i := range d.Types {
		block, err := emitTypeDef(&d.Types[i], r)
		if err != nil {
			return nil, fmt.Errorf("domain %s: %w", d.Name, err)
		}
		blocks = append(blocks, block)
	}
	for i := range d.Commands {
		block, err := emitCommand(&d.Commands[i], r)
		if err != nil {
			return nil, fmt.Errorf("domain %s: %w", d.Name, err)
		}
		blocks = append(blocks, block)
	}
	for i := range d.Events {
		block, err := emitEvent(&d.Events[i], r)
		if err != nil {
			return nil, fmt.Errorf("domain %s: %w", d.Name, err)
		}
		blocks = append(blocks, block)
	}
	if len(d.Events) > 0 {
		blocks = append(blocks, emitEventTable(d.Events, r))
	}

	var buf bytes.Buffer
	for _, line := range sharedHeaderLines {
		buf.WriteString(line + "\n")
	}
	buf.WriteString("//\n")
	fmt.Fprintf(&buf, "// Domain: %s\n", d.Name)
	fmt.Fprintf(&buf, "// Experimental: %t\n", d.Experimental)
	buf.WriteString("\n")
	fmt.Fprintf(&buf, "package %s\n", naming.PackageName(d.Name))
	writeImportBlock(&buf, imports, rc)

	for _, block := range blocks {
		buf.WriteString("\n")
		buf.WriteString(block)
		buf.WriteString("\n")
	}
	return buf.Bytes(), nil
}

func writeImportBlock(buf *bytes.Buffer, imports *importSet, rc renderContext) {
	var external []string
	if imports.needJSON {
		external = append(external, fmt.Sprintf("json %q", "github.com/goccy/go-json"))
	}
	if imports.needWire {
		external = append(external, fmt.Sprintf("wire %q", rc.runtimeImport))
	}
	pkgs := make([]string, 0, len(imports.domains))
	for pkg := range imports.domains {
		pkgs = append(pkgs, pkg)
	}
	sort.Strings(pkgs)
	for _, pkg := range pkgs {
		external = append(external, fmt.Sprintf("%q", rc.importBase+"/"+pkg))
	}

	if !imports.needFmt && len(external) == 0 {
		return
	}

	buf.WriteString("\nimport (\n")
	if imports.needFmt {
		buf.WriteString("\t\"fmt\"\n")
		if len(external) > 0 {
			buf.WriteString("\n")
		}
	}
	for _, imp := range external {
		buf.WriteString("\t" + imp + "\n")
	}
	buf.WriteString(")\n")
}

// renderIndex generates the aggregate package: it imports every generated
// domain package (blank imports for domains without events) and assembles
// the process-wide event registry from the per-domain decoder tables.
func renderIndex(domains []Domain, packageName string, rc renderContext) []byte {
	var buf bytes.Buffer
	for _, line := range sharedHeaderLines {
		buf.WriteString(line + "\n")
	}
	buf.WriteString("\n")
	fmt.Fprintf(&buf, "// Package %s indexes every generated CDP domain package.\n", packageName)
	fmt.Fprintf(&buf, "package %s\n", packageName)

	buf.WriteString("\nimport (\n")
	fmt.Fprintf(&buf, "\twire %q\n", rc.runtimeImport)
	if len(domains) > 0 {
		buf.WriteString("\n")
	}
	for _, d := range domains {
		pkg := naming.PackageName(d.Name)
		if len(d.Events) > 0 {
			fmt.Fprintf(&buf, "\t%q\n", rc.importBase+"/"+pkg)
		} else {
			fmt.Fprintf(&buf, "\t_ %q\n", rc.importBase+"/"+pkg)
		}
	}
	buf.WriteString(")\n")

	buf.WriteString("\n")
	buf.WriteString("// Events builds the registry of event decoders across every generated\n")
	buf.WriteString("// domain. Tags are unique; the registry is read-only after construction.\n")
	buf.WriteString("func Events() (*wire.Registry, error) {\n")
	buf.WriteString("\treturn wire.NewRegistry(\n")
	for _, d := range domains {
		if len(d.Events) > 0 {
			fmt.Fprintf(&buf, "\t\t%s.EventDecoders(),\n", naming.PackageName(d.Name))
		}
	}
	buf.WriteString("\t)\n")
	buf.WriteString("}\n")
	return buf.Bytes()
}
