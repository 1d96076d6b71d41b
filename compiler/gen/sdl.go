package gen

import (
	"bytes"
	"os"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"

	"github.com/syssam/graphgen/graph"
)

// writeSDL exports the planned schema shape as a GraphQL schema
// definition document.
func (g *Generator) writeSDL(path string, plans []plan) error {
	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatSchemaDocument(g.schemaDocument(plans))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return NewGenerationError("sdl", path, "write schema document", err)
	}
	return nil
}

// schemaDocument builds the schema definition document for the planned
// types, in request order. The custom DateTime scalar is declared up
// front when any member uses it.
func (g *Generator) schemaDocument(plans []plan) *ast.SchemaDocument {
	doc := &ast.SchemaDocument{}
	dateTime := false
	for _, p := range plans {
		switch p := p.(type) {
		case *objectPlan:
			doc.Definitions = append(doc.Definitions, g.objectDefinition(p))
			for _, f := range p.Fields {
				dateTime = dateTime || f.Type.Leaf() == graph.DateTimeType
				for _, a := range f.Args {
					dateTime = dateTime || a.Type.Leaf() == graph.DateTimeType
				}
			}
		case *inputPlan:
			doc.Definitions = append(doc.Definitions, g.inputDefinition(p))
			for _, f := range p.Fields {
				dateTime = dateTime || f.Type.Leaf() == graph.DateTimeType
			}
		case *unionPlan:
			doc.Definitions = append(doc.Definitions, g.unionDefinition(p))
		case *enumPlan:
			doc.Definitions = append(doc.Definitions, g.enumDefinition(p))
		}
	}
	if dateTime {
		doc.Definitions = append(
			ast.DefinitionList{{Kind: ast.Scalar, Name: "DateTime"}},
			doc.Definitions...)
	}
	return doc
}

// objectDefinition renders an output object or interface definition.
func (g *Generator) objectDefinition(p *objectPlan) *ast.Definition {
	kind := ast.Object
	if p.IsInterface {
		kind = ast.Interface
	}
	def := &ast.Definition{
		Kind:        kind,
		Name:        p.TypeName,
		Description: p.Description,
	}
	for _, n := range p.Interfaces {
		def.Interfaces = append(def.Interfaces, g.sdlName(graph.ObjectRef(n), ""))
	}
	for _, f := range p.Fields {
		fd := &ast.FieldDefinition{
			Name:        f.WireName,
			Description: f.Description,
			Type:        g.astType(f.Type, ""),
			Directives:  deprecatedDirective(f.DeprecationReason),
		}
		for _, a := range f.Args {
			fd.Arguments = append(fd.Arguments, &ast.ArgumentDefinition{
				Name: a.Name,
				Type: g.astType(a.Type, ""),
			})
		}
		def.Fields = append(def.Fields, fd)
	}
	return def
}

// inputDefinition renders an input object definition. Self references
// render as the enclosing type's own name.
func (g *Generator) inputDefinition(p *inputPlan) *ast.Definition {
	def := &ast.Definition{
		Kind:        ast.InputObject,
		Name:        p.TypeName,
		Description: p.Description,
	}
	for _, f := range p.Fields {
		def.Fields = append(def.Fields, &ast.FieldDefinition{
			Name:        f.WireName,
			Description: f.Description,
			Type:        g.astType(f.Type, p.TypeName),
			Directives:  deprecatedDirective(f.DeprecationReason),
		})
	}
	return def
}

// unionDefinition renders a union definition over its member types.
func (g *Generator) unionDefinition(p *unionPlan) *ast.Definition {
	def := &ast.Definition{
		Kind:        ast.Union,
		Name:        p.TypeName,
		Description: p.Description,
	}
	for _, m := range p.Members {
		def.Types = append(def.Types, g.sdlName(graph.ObjectRef(m), ""))
	}
	return def
}

// enumDefinition renders an enum definition and its values.
func (g *Generator) enumDefinition(p *enumPlan) *ast.Definition {
	def := &ast.Definition{
		Kind:        ast.Enum,
		Name:        p.TypeName,
		Description: p.Description,
	}
	for _, v := range p.Values {
		def.EnumValues = append(def.EnumValues, &ast.EnumValueDefinition{
			Name:        v.Name,
			Description: v.Description,
			Directives:  deprecatedDirective(v.DeprecationReason),
		})
	}
	return def
}

// astType converts a schema-type expression to its document form. self
// names the enclosing input type for Self placeholders.
func (g *Generator) astType(t *graph.SchemaType, self string) *ast.Type {
	switch t.Kind() {
	case graph.List:
		return ast.ListType(g.astType(t.Elem(), self), nil)
	case graph.NonNull:
		inner := g.astType(t.Elem(), self)
		inner.NonNull = true
		return inner
	default:
		return ast.NamedType(g.sdlName(t, self), nil)
	}
}

// sdlName maps a type reference to the schema-visible name its
// definition is exported under. Object and input references carry host
// names; everything else is already schema-visible.
func (g *Generator) sdlName(t *graph.SchemaType, self string) string {
	switch t.Kind() {
	case graph.Object:
		if n, ok := g.outputNames[t.Name()]; ok {
			return n
		}
	case graph.Input:
		if n, ok := g.inputNames[t.Name()]; ok {
			return n
		}
	case graph.Self:
		if d := t.Target(); d != nil {
			return d.Name
		}
		return self
	}
	return t.Name()
}

// deprecatedDirective renders the standard deprecation directive.
func deprecatedDirective(reason string) ast.DirectiveList {
	if reason == "" {
		return nil
	}
	return ast.DirectiveList{{
		Name: "deprecated",
		Arguments: ast.ArgumentList{{
			Name:  "reason",
			Value: &ast.Value{Raw: reason, Kind: ast.StringValue},
		}},
	}}
}
