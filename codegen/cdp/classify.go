package cdp

// TypeShape is the code shape a TypeDef compiles to.
type TypeShape int

const (
	// ShapeEnumeration is a closed set of named string variants.
	ShapeEnumeration TypeShape = iota
	// ShapeComposite is a record with one field per property.
	ShapeComposite
	// ShapePrimitiveWrapper is a named alias over a scalar or a sequence.
	ShapePrimitiveWrapper
)

func (s TypeShape) String() string {
	switch s {
	case ShapeEnumeration:
		return "enumeration"
	case ShapeComposite:
		return "composite"
	default:
		return "primitive-wrapper"
	}
}

// Classify determines the code shape of a type definition. The decision
// order is fixed: enum values win over properties, and anything else is a
// primitive wrapper. Malformed input carrying both enum values and
// properties therefore classifies deterministically instead of failing.
func Classify(t *TypeDef) TypeShape {
	switch {
	case len(t.EnumValues) > 0:
		return ShapeEnumeration
	case len(t.Properties) > 0:
		return ShapeComposite
	default:
		return ShapePrimitiveWrapper
	}
}
