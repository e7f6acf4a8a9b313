package cdp

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/cdptools/cdpgen/naming"
)

// emitCommand generates the callable unit for one command: a constructor
// building the wire request, and a single-shot call object that yields the
// request and decodes the response when resumed.
func emitCommand(c *Command, r *resolver) (string, error) {
	funcName := naming.FieldName(c.Name)
	callName := funcName + "Call"
	params := orderFields(c.Parameters)

	var buf bytes.Buffer
	buf.WriteString(commandDoc(c))

	// Constructor: required parameters first, then optional parameters as
	// nil-able arguments.
	args := make([]string, len(params))
	for i, p := range params {
		goType, err := r.propType(&p)
		if err != nil {
			return "", fmt.Errorf("command %s: %w", c.Name, err)
		}
		args[i] = naming.ParamName(p.WireName) + " " + goType
	}
	fmt.Fprintf(&buf, "func %s(%s) *%s {\n", funcName, strings.Join(args, ", "), callName)
	if len(params) > 0 {
		buf.WriteString("\tparams := make(map[string]any)\n")
		for _, p := range params {
			name := naming.ParamName(p.WireName)
			switch {
			case !p.Optional:
				fmt.Fprintf(&buf, "\tparams[%q] = %s\n", p.WireName, name)
			default:
				goType, err := r.propType(&p)
				if err != nil {
					return "", fmt.Errorf("command %s: %w", c.Name, err)
				}
				value := name
				if strings.HasPrefix(goType, "*") {
					value = "*" + name
				}
				fmt.Fprintf(&buf, "\tif %s != nil {\n", name)
				fmt.Fprintf(&buf, "\t\tparams[%q] = %s\n", p.WireName, value)
				buf.WriteString("\t}\n")
			}
		}
		fmt.Fprintf(&buf, "\treturn &%s{req: wire.Request{Method: %q, Params: params}}\n", callName, c.Tag())
	} else {
		fmt.Fprintf(&buf, "\treturn &%s{req: wire.Request{Method: %q}}\n", callName, c.Tag())
	}
	buf.WriteString("}\n")

	// The call object is an explicit two-state machine: AwaitingResponse
	// until the first Resume, Done afterwards.
	buf.WriteString("\n")
	fmt.Fprintf(&buf, "// %s is the in-flight state of the %s.%s command. It accepts\n", callName, c.Domain, c.Name)
	buf.WriteString("// exactly one response.\n")
	fmt.Fprintf(&buf, "type %s struct {\n", callName)
	buf.WriteString("\treq wire.Request\n")
	buf.WriteString("\tdone bool\n")
	buf.WriteString("}\n")

	buf.WriteString("\n")
	fmt.Fprintf(&buf, "// Request returns the wire request to hand to the transport.\n")
	fmt.Fprintf(&buf, "func (c *%s) Request() wire.Request {\n", callName)
	buf.WriteString("\treturn c.req\n")
	buf.WriteString("}\n")

	buf.WriteString("\n")
	resume, err := emitResume(c, callName, r)
	if err != nil {
		return "", err
	}
	buf.WriteString(resume)

	r.imports.needWire = true
	if len(c.Returns) > 0 {
		r.imports.needJSON = true
	}
	return buf.String(), nil
}

// emitResume generates the resume transition. Zero returns produce no value,
// one return produces that value, several returns produce an ordered
// aggregate in schema declaration order.
func emitResume(c *Command, callName string, r *resolver) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("// Resume decodes the wire response and completes the call. Resuming a\n")
	buf.WriteString("// completed call reports wire.ErrCallDone.\n")

	if len(c.Returns) == 0 {
		fmt.Fprintf(&buf, "func (c *%s) Resume(result []byte) error {\n", callName)
		buf.WriteString("\tif c.done {\n")
		buf.WriteString("\t\treturn wire.ErrCallDone\n")
		buf.WriteString("\t}\n")
		buf.WriteString("\tc.done = true\n")
		buf.WriteString("\treturn nil\n")
		buf.WriteString("}")
		return buf.String(), nil
	}

	returnTypes := make([]string, len(c.Returns))
	fieldRefs := make([]string, len(c.Returns))
	for i, ret := range c.Returns {
		goType, err := r.propType(&ret)
		if err != nil {
			return "", fmt.Errorf("command %s: %w", c.Name, err)
		}
		returnTypes[i] = goType
		fieldRefs[i] = "res." + naming.FieldName(ret.WireName)
	}

	fmt.Fprintf(&buf, "func (c *%s) Resume(result []byte) (%s, error) {\n",
		callName, strings.Join(returnTypes, ", "))
	buf.WriteString("\tvar res struct {\n")
	for i, ret := range c.Returns {
		tag := ret.WireName
		if ret.Optional {
			tag += ",omitempty"
		}
		fmt.Fprintf(&buf, "\t\t%s %s `json:%q`\n", naming.FieldName(ret.WireName), returnTypes[i], tag)
	}
	buf.WriteString("\t}\n")
	values := strings.Join(fieldRefs, ", ")
	buf.WriteString("\tif c.done {\n")
	fmt.Fprintf(&buf, "\t\treturn %s, wire.ErrCallDone\n", values)
	buf.WriteString("\t}\n")
	buf.WriteString("\tc.done = true\n")
	buf.WriteString("\terr := json.Unmarshal(result, &res)\n")
	fmt.Fprintf(&buf, "\treturn %s, err\n", values)
	buf.WriteString("}")
	return buf.String(), nil
}

func commandDoc(c *Command) string {
	doc := formatDoc(c.Description)
	if c.Experimental {
		if doc != "" {
			doc += "//\n"
		}
		doc += "// Experimental.\n"
	}
	return doc
}
