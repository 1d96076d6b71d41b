package gen

import "strings"

// FieldNamer maps a field's source identifier to its wire-visible name.
// A FieldName annotation on the declaration always wins over the namer.
type FieldNamer interface {
	WireName(owner, field string) string
}

// FieldNamerFunc adapts a function to the FieldNamer interface.
type FieldNamerFunc func(owner, field string) string

// WireName implements FieldNamer.
func (f FieldNamerFunc) WireName(owner, field string) string {
	return f(owner, field)
}

// SnakeNamer is the default naming context: field identifiers become
// snake_case wire names.
type SnakeNamer struct{}

// WireName implements FieldNamer.
func (SnakeNamer) WireName(_, field string) string {
	return snake(field)
}

// IdentityNamer keeps field identifiers as-is on the wire.
type IdentityNamer struct{}

// WireName implements FieldNamer.
func (IdentityNamer) WireName(_, field string) string {
	return field
}

// graphQLTypeNameFor derives the schema-visible name of a generated type
// from its host class name. The conventional leading prefix token is
// stripped first. Input types keep exactly one trailing "Input" and an
// underscore prefix unless already present; output types always gain the
// underscore prefix.
func graphQLTypeNameFor(name, stripPrefix string, input bool) string {
	n := name
	if stripPrefix != "" {
		n = strings.TrimPrefix(n, stripPrefix)
	}
	if input {
		n = strings.TrimSuffix(n, "Input") + "Input"
		if !strings.HasPrefix(n, "_") {
			n = "_" + n
		}
		return n
	}
	return "_" + n
}

// bindingNameFor derives the identifier of the generated package-level
// descriptor binding for a host class name.
func bindingNameFor(name, stripPrefix string, input bool) string {
	n := name
	if stripPrefix != "" {
		n = strings.TrimPrefix(n, stripPrefix)
	}
	n = camel(n)
	if input && !strings.HasSuffix(n, "Input") {
		n += "Input"
	}
	return n + "GraphQLType"
}

// refNameFor derives the reference name the inference engine hands out
// for an output-marked class: the host name with a single conventional
// leading underscore stripped.
func refNameFor(name string) string {
	return strings.TrimPrefix(name, "_")
}
