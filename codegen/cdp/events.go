package cdp

import (
	"bytes"
	"fmt"

	"github.com/cdptools/cdpgen/naming"
)

// emitEvent generates the record for one event, its wire tag constant, and
// the decoder registered in the domain's decoder table.
func emitEvent(e *Event, r *resolver) (string, error) {
	typeName := naming.FieldName(e.Name)

	var buf bytes.Buffer
	buf.WriteString(formatDoc(e.Description))
	if len(e.Parameters) == 0 {
		fmt.Fprintf(&buf, "type %s struct{}\n", typeName)
	} else {
		fmt.Fprintf(&buf, "type %s struct {\n", typeName)
		if err := emitStructFields(&buf, e.Parameters, r); err != nil {
			return "", fmt.Errorf("event %s: %w", e.Name, err)
		}
		buf.WriteString("}\n")
	}

	buf.WriteString("\n")
	fmt.Fprintf(&buf, "// %sTag identifies %s events on the wire.\n", typeName, typeName)
	fmt.Fprintf(&buf, "const %sTag = %q\n", typeName, e.Tag())

	buf.WriteString("\n")
	fmt.Fprintf(&buf, "func decode%s(data []byte) (any, error) {\n", typeName)
	fmt.Fprintf(&buf, "\tvar ev %s\n", typeName)
	buf.WriteString("\terr := json.Unmarshal(data, &ev)\n")
	buf.WriteString("\treturn &ev, err\n")
	buf.WriteString("}")

	r.imports.needJSON = true
	return buf.String(), nil
}

// emitEventTable generates the per-domain tag-to-decoder table consumed by
// the generated index when it assembles the process-wide event registry.
func emitEventTable(events []Event, r *resolver) string {
	var buf bytes.Buffer
	buf.WriteString("// EventDecoders maps this domain's event tags to decoders, for use with\n")
	buf.WriteString("// wire.NewRegistry.\n")
	buf.WriteString("func EventDecoders() map[string]wire.EventDecoder {\n")
	buf.WriteString("\treturn map[string]wire.EventDecoder{\n")
	for _, e := range events {
		typeName := naming.FieldName(e.Name)
		fmt.Fprintf(&buf, "\t\t%sTag: decode%s,\n", typeName, typeName)
	}
	buf.WriteString("\t}\n")
	buf.WriteString("}")

	r.imports.needWire = true
	return buf.String()
}
