package gen

import (
	"github.com/syssam/graphgen/compiler/load"
	"github.com/syssam/graphgen/schema"
)

// unionNameFor derives the schema-visible name of a union-marked class:
// the marker's explicit override, or the standard derivation.
func unionNameFor(c *load.ClassDecl, stripPrefix string) string {
	u := new(schema.UnionType)
	if load.DecodeAnnotation(c.Annotations, u) && u.SDLName != "" {
		return u.SDLName
	}
	return graphQLTypeNameFor(c.Name, stripPrefix, false)
}

// planUnion synthesizes the plan of a union-marked class from the member
// types its marker lists. Entries that resolve to no class declaration
// are skipped; a union with no members left cannot exist in a schema and
// fails synthesis.
func (g *Generator) planUnion(c *load.ClassDecl) (*unionPlan, error) {
	name := unionNameFor(c, g.cfg.StripPrefix)
	u := new(schema.UnionType)
	load.DecodeAnnotation(c.Annotations, u)
	p := &unionPlan{
		Binding:     bindingNameFor(c.Name, g.cfg.StripPrefix, false),
		TypeName:    name,
		Description: description(c.Doc, c.Annotations),
	}
	for _, m := range u.Types {
		if g.pkg.Class(m) == nil {
			continue
		}
		p.Members = append(p.Members, refNameFor(m))
	}
	if len(p.Members) == 0 {
		return nil, NewEmptyUnionError(name)
	}
	return p, nil
}
