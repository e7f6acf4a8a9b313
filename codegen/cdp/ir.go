// Package cdp implements the CDP IDL-to-Go compiler: an intermediate
// representation built from the raw schema nodes, reference resolution
// across domains, per-type shape classification, and source emitters for
// types, commands, and events.
package cdp

// primitiveTypes maps IDL scalar tags to the Go types used in generated
// code.
var primitiveTypes = map[string]string{
	"any":     "any",
	"boolean": "bool",
	"integer": "int64",
	"number":  "float64",
	"object":  "map[string]any",
	"string":  "string",
}

// Items describes the element type of a repeated property. Exactly one of
// ScalarKind and TypeRef is set.
type Items struct {
	ScalarKind string
	TypeRef    string
}

func newItems(node *ItemsNode) *Items {
	if node == nil {
		return nil
	}
	return &Items{ScalarKind: node.Type, TypeRef: node.Ref}
}

// Property is one field of a composite type, or a command parameter, command
// return, or event parameter. Exactly one of ScalarKind, TypeRef, and Items
// describes the value shape; inline EnumValues degrade to the scalar kind.
type Property struct {
	WireName    string
	Description string
	ScalarKind  string
	TypeRef     string
	EnumValues  []string
	Items       *Items
	Optional    bool
}

func newProperty(node PropertyNode) Property {
	return Property{
		WireName:    node.Name,
		Description: node.Description,
		ScalarKind:  node.Type,
		TypeRef:     node.Ref,
		EnumValues:  node.Enum,
		Items:       newItems(node.Items),
		Optional:    node.Optional,
	}
}

func newProperties(nodes []PropertyNode) []Property {
	if len(nodes) == 0 {
		return nil
	}
	props := make([]Property, len(nodes))
	for i, node := range nodes {
		props[i] = newProperty(node)
	}
	return props
}

// TypeDef is a top-level type definition within a domain.
type TypeDef struct {
	ID          string
	Description string
	ScalarKind  string
	Items       *Items
	EnumValues  []string
	Properties  []Property
}

func newTypeDef(node TypeNode) TypeDef {
	return TypeDef{
		ID:          node.ID,
		Description: node.Description,
		ScalarKind:  node.Type,
		Items:       newItems(node.Items),
		EnumValues:  node.Enum,
		Properties:  newProperties(node.Properties),
	}
}

// Command is a protocol command owned by a domain.
type Command struct {
	Name         string
	Description  string
	Experimental bool
	Parameters   []Property
	Returns      []Property
	Domain       string
}

func newCommand(node CommandNode, domain string) Command {
	return Command{
		Name:         node.Name,
		Description:  node.Description,
		Experimental: node.Experimental,
		Parameters:   newProperties(node.Parameters),
		Returns:      newProperties(node.Returns),
		Domain:       domain,
	}
}

// Tag is the fully qualified method identifier, "Domain.commandName".
func (c *Command) Tag() string {
	return c.Domain + "." + c.Name
}

// Event is a protocol event owned by a domain.
type Event struct {
	Name        string
	Description string
	Parameters  []Property
	Domain      string
}

func newEvent(node EventNode, domain string) Event {
	return Event{
		Name:        node.Name,
		Description: node.Description,
		Parameters:  newProperties(node.Parameters),
		Domain:      domain,
	}
}

// Tag is the stable wire key for this event, "Domain.eventName".
func (e *Event) Tag() string {
	return e.Domain + "." + e.Name
}

// Domain is the immutable IR for one protocol domain. It is constructed once
// from a schema node and consumed once by the domain emitter.
type Domain struct {
	Name         string
	Experimental bool
	Dependencies []string
	Types        []TypeDef
	Commands     []Command
	Events       []Event
}

// NewDomain builds the IR for one raw domain node.
func NewDomain(node DomainNode) Domain {
	d := Domain{
		Name:         node.Domain,
		Experimental: node.Experimental,
		Dependencies: node.Dependencies,
	}
	for _, t := range node.Types {
		d.Types = append(d.Types, newTypeDef(t))
	}
	for _, c := range node.Commands {
		d.Commands = append(d.Commands, newCommand(c, node.Domain))
	}
	for _, e := range node.Events {
		d.Events = append(d.Events, newEvent(e, node.Domain))
	}
	return d
}
