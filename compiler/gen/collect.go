package gen

import "github.com/syssam/graphgen/compiler/load"

// collectFields walks the inheritance chain from the declared class up to
// the universal root and returns its instance fields in derived-to-base
// order. Static and synthetic members are skipped; on a name collision
// the most derived declaration wins.
func collectFields(c *load.ClassDecl) []*load.FieldDecl {
	var out []*load.FieldDecl
	seen := make(map[string]struct{})
	for cur := c; !isObjectRoot(cur); cur = cur.Supertype() {
		for _, f := range cur.Fields {
			if f.Static || f.Synthetic {
				continue
			}
			if _, ok := seen[f.Name]; ok {
				continue
			}
			seen[f.Name] = struct{}{}
			out = append(out, f)
		}
	}
	return out
}

// collectResolverMethods walks the inheritance chain like collectFields
// and returns the resolver-marked methods, most derived declaration first
// on a name collision.
func collectResolverMethods(c *load.ClassDecl) []*load.MethodDecl {
	var out []*load.MethodDecl
	seen := make(map[string]struct{})
	for cur := c; !isObjectRoot(cur); cur = cur.Supertype() {
		for _, m := range cur.Methods {
			if !isMarkedResolver(m) {
				continue
			}
			if _, ok := seen[m.Name]; ok {
				continue
			}
			seen[m.Name] = struct{}{}
			out = append(out, m)
		}
	}
	return out
}
