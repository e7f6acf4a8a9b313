package cdp

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/cdptools/cdpgen/naming"
)

// emitTypeDef generates the Go source for one type definition according to
// its shape.
func emitTypeDef(t *TypeDef, r *resolver) (string, error) {
	switch Classify(t) {
	case ShapeEnumeration:
		return emitEnum(t, r)
	case ShapeComposite:
		return emitComposite(t, r)
	case ShapePrimitiveWrapper:
		return emitWrapper(t, r)
	}
	return "", fmt.Errorf("type %s: unclassifiable shape", t.ID)
}

// emitWrapper generates a named alias over a scalar or a sequence. The alias
// is its own wire form in both directions; only a debug representation is
// added.
func emitWrapper(t *TypeDef, r *resolver) (string, error) {
	underlying, err := r.typeExpr(t.ScalarKind, "", t.Items)
	if err != nil {
		return "", fmt.Errorf("type %s: %w", t.ID, err)
	}

	var buf bytes.Buffer
	buf.WriteString(formatDoc(t.Description))

	if underlying == "any" {
		// Methods cannot be declared on an interface type, so a plain alias
		// stands in for the wrapper.
		fmt.Fprintf(&buf, "type %s = any", t.ID)
		return buf.String(), nil
	}

	fmt.Fprintf(&buf, "type %s %s\n", t.ID, underlying)
	buf.WriteString("\n")
	fmt.Fprintf(&buf, "func (v %s) String() string {\n", t.ID)
	fmt.Fprintf(&buf, "\treturn fmt.Sprintf(\"%s(%%v)\", %s(v))\n", t.ID, underlying)
	buf.WriteString("}")

	r.imports.needFmt = true
	return buf.String(), nil
}

// emitEnum generates a closed string type: one constant per variant in
// schema order, and an UnmarshalJSON that rejects literals outside the
// declared set.
func emitEnum(t *TypeDef, r *resolver) (string, error) {
	constNames := make([]string, len(t.EnumValues))
	for i, literal := range t.EnumValues {
		constNames[i] = fmt.Sprintf("%s_%s", t.ID, naming.ConstName(literal))
	}

	var buf bytes.Buffer
	buf.WriteString(formatDoc(t.Description))
	fmt.Fprintf(&buf, "type %s string\n", t.ID)
	buf.WriteString("\nconst (\n")
	for i, literal := range t.EnumValues {
		fmt.Fprintf(&buf, "\t%s %s = %q\n", constNames[i], t.ID, literal)
	}
	buf.WriteString(")\n")

	buf.WriteString("\n")
	fmt.Fprintf(&buf, "func (v %s) String() string {\n", t.ID)
	buf.WriteString("\treturn string(v)\n")
	buf.WriteString("}\n")

	buf.WriteString("\n")
	fmt.Fprintf(&buf, "// UnmarshalJSON rejects any literal outside the declared variant set.\n")
	fmt.Fprintf(&buf, "func (v *%s) UnmarshalJSON(data []byte) error {\n", t.ID)
	buf.WriteString("\tvar s string\n")
	buf.WriteString("\tif err := json.Unmarshal(data, &s); err != nil {\n")
	buf.WriteString("\t\treturn err\n")
	buf.WriteString("\t}\n")
	fmt.Fprintf(&buf, "\tswitch %s(s) {\n", t.ID)
	buf.WriteString("\tcase " + strings.Join(constNames, ",\n\t\t") + ":\n")
	fmt.Fprintf(&buf, "\t\t*v = %s(s)\n", t.ID)
	buf.WriteString("\t\treturn nil\n")
	buf.WriteString("\t}\n")
	fmt.Fprintf(&buf, "\treturn fmt.Errorf(\"unknown %s value: %%q\", s)\n", t.ID)
	buf.WriteString("}")

	r.imports.needFmt = true
	r.imports.needJSON = true
	return buf.String(), nil
}

// emitComposite generates a record with one field per property. Required
// fields come first, then optional fields, preserving relative schema order
// within each group; optional fields are nil-able and tagged omitempty so an
// absent value never reaches the wire.
func emitComposite(t *TypeDef, r *resolver) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(formatDoc(t.Description))
	fmt.Fprintf(&buf, "type %s struct {\n", t.ID)
	if err := emitStructFields(&buf, t.Properties, r); err != nil {
		return "", fmt.Errorf("type %s: %w", t.ID, err)
	}
	buf.WriteString("}")
	return buf.String(), nil
}

// orderFields returns properties with required fields before optional ones,
// preserving relative order within each group. Optional fields must trail so
// generated constructors and literals can leave them absent.
func orderFields(props []Property) []Property {
	ordered := make([]Property, 0, len(props))
	for _, p := range props {
		if !p.Optional {
			ordered = append(ordered, p)
		}
	}
	for _, p := range props {
		if p.Optional {
			ordered = append(ordered, p)
		}
	}
	return ordered
}

// emitStructFields writes the field list shared by composite types and
// events.
func emitStructFields(buf *bytes.Buffer, props []Property, r *resolver) error {
	for i, p := range orderFields(props) {
		if i > 0 {
			buf.WriteString("\n")
		}
		if doc := formatDoc(p.Description); doc != "" {
			for _, line := range strings.Split(strings.TrimSuffix(doc, "\n"), "\n") {
				buf.WriteString("\t" + line + "\n")
			}
		}
		goType, err := r.propType(&p)
		if err != nil {
			return err
		}
		tag := p.WireName
		if p.Optional {
			tag += ",omitempty"
		}
		fmt.Fprintf(buf, "\t%s %s `json:%q`\n", naming.FieldName(p.WireName), goType, tag)
	}
	return nil
}
