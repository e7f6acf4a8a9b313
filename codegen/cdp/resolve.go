package cdp

import (
	"fmt"
	"strings"

	"github.com/cdptools/cdpgen/naming"
)

// SplitRef splits a raw type reference into its domain and local name
// components. The domain is empty for a local reference.
func SplitRef(ref string) (domain, name string) {
	if i := strings.IndexByte(ref, '.'); i >= 0 {
		return ref[:i], ref[i+1:]
	}
	return "", ref
}

// Resolve converts a raw type reference into the qualified Go identifier it
// denotes when emitted from currentDomain. A reference into another domain
// becomes "<package>.Name"; a local reference, or a dotted reference into the
// current domain itself, stays a bare name because a Go package cannot import
// itself. Resolution is purely syntactic: it does not verify the referent
// exists (see ValidateReferences).
func Resolve(ref, currentDomain string) string {
	domain, name := SplitRef(ref)
	if domain == "" || domain == currentDomain {
		return name
	}
	return naming.PackageName(domain) + "." + name
}

// resolver qualifies type references during emission of one domain and
// records the imports they imply.
type resolver struct {
	domain  string
	imports *importSet
}

func newResolver(domain string, imports *importSet) *resolver {
	return &resolver{domain: domain, imports: imports}
}

// qualify resolves ref and records any cross-domain import it requires.
func (r *resolver) qualify(ref string) string {
	domain, _ := SplitRef(ref)
	if domain != "" && domain != r.domain {
		r.imports.addDomain(naming.PackageName(domain))
	}
	return Resolve(ref, r.domain)
}

// typeExpr renders the Go type for a value shape described by a scalar kind,
// a type reference, or a repeated-element descriptor.
func (r *resolver) typeExpr(scalarKind, typeRef string, items *Items) (string, error) {
	if items != nil {
		if items.TypeRef != "" {
			return "[]" + r.qualify(items.TypeRef), nil
		}
		elem, ok := primitiveTypes[items.ScalarKind]
		if !ok {
			return "", fmt.Errorf("unknown primitive type %q", items.ScalarKind)
		}
		return "[]" + elem, nil
	}
	if typeRef != "" {
		return r.qualify(typeRef), nil
	}
	goType, ok := primitiveTypes[scalarKind]
	if !ok {
		return "", fmt.Errorf("unknown primitive type %q", scalarKind)
	}
	return goType, nil
}

// propType renders the Go type for a property, widening optional values to a
// nil-able type so the absent marker is nil. Slices, maps, and any are
// already nil-able; everything else gains a pointer.
func (r *resolver) propType(p *Property) (string, error) {
	expr, err := r.typeExpr(p.ScalarKind, p.TypeRef, p.Items)
	if err != nil {
		return "", fmt.Errorf("property %q: %w", p.WireName, err)
	}
	if p.Optional && !nilable(expr) {
		expr = "*" + expr
	}
	return expr, nil
}

func nilable(expr string) bool {
	return expr == "any" ||
		strings.HasPrefix(expr, "[]") ||
		strings.HasPrefix(expr, "map[") ||
		strings.HasPrefix(expr, "*")
}
