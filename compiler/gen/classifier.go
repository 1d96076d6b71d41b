package gen

import (
	"github.com/syssam/graphgen/compiler/load"
	"github.com/syssam/graphgen/graph"
	"github.com/syssam/graphgen/schema"
)

// scalarNames maps host type names to the built-in scalar they infer to.
// Matching is by assignability: a class extending a scalar-mapped name
// still infers to that scalar.
var scalarNames = map[string]*graph.SchemaType{
	"String":    graph.StringType,
	"string":    graph.StringType,
	"int":       graph.IntType,
	"Int":       graph.IntType,
	"int32":     graph.IntType,
	"int64":     graph.IntType,
	"double":    graph.FloatType,
	"float":     graph.FloatType,
	"float32":   graph.FloatType,
	"float64":   graph.FloatType,
	"Float":     graph.FloatType,
	"num":       graph.FloatType,
	"bool":      graph.BooleanType,
	"boolean":   graph.BooleanType,
	"Boolean":   graph.BooleanType,
	"DateTime":  graph.DateTimeType,
	"time.Time": graph.DateTimeType,
	"ID":        graph.IDType,
	"UUID":      graph.IDType,
	"uuid.UUID": graph.IDType,
}

// scalarFor resolves a type reference to a built-in scalar, walking the
// declared inheritance chain so subtypes of a scalar-mapped name match.
func scalarFor(t *load.TypeRef) (*graph.SchemaType, bool) {
	if s, ok := scalarNames[t.Name]; ok {
		return s, true
	}
	for c := t.Decl(); c != nil; c = c.Supertype() {
		// The chain ends at the first unresolved supertype, so the raw
		// extends name is checked too: it may point outside the package.
		if s, ok := scalarNames[c.Extends]; ok {
			return s, true
		}
	}
	return nil, false
}

// iterableNames are the host container types that infer to a list.
var iterableNames = map[string]bool{
	"List":     true,
	"Set":      true,
	"Iterable": true,
	"[]":       true,
}

// isIterable reports whether the reference is a known iterable container
// or declared as a subtype of one.
func isIterable(t *load.TypeRef) bool {
	if iterableNames[t.Name] {
		return true
	}
	for c := t.Decl(); c != nil; c = c.Supertype() {
		if iterableNames[c.Extends] {
			return true
		}
	}
	return false
}

// iterableElementType returns the element type of an iterable reference,
// or nil when the declaration carries no type argument.
func iterableElementType(t *load.TypeRef) *load.TypeRef {
	return t.Arg(0)
}

// futureNames are the host asynchronous wrappers unwrapped on method
// return types only.
var futureNames = map[string]bool{
	"Future":   true,
	"FutureOr": true,
}

// isFuture reports whether the reference is an asynchronous wrapper.
func isFuture(t *load.TypeRef) bool {
	return futureNames[t.Name]
}

// futureInner returns the wrapped type of an asynchronous wrapper, or
// nil for a bare wrapper.
func futureInner(t *load.TypeRef) *load.TypeRef {
	return t.Arg(0)
}

// isMarkedOutputType reports whether the class or any of its supertypes
// carries the output marker. The marker is inherited.
func isMarkedOutputType(c *load.ClassDecl) bool {
	for ; c != nil; c = c.Supertype() {
		if c.HasAnnotation(schema.OutputType{}.Name()) {
			return true
		}
	}
	return false
}

// isMarkedInputType reports whether the class itself carries the input
// marker. Unlike the output marker it is not inherited.
func isMarkedInputType(c *load.ClassDecl) bool {
	return c.HasAnnotation(schema.InputType{}.Name())
}

// isMarkedUnion reports whether the class carries the union marker.
func isMarkedUnion(c *load.ClassDecl) bool {
	return c.HasAnnotation(schema.UnionType{}.Name())
}

// isMarkedResolver reports whether the method carries the resolver
// marker.
func isMarkedResolver(m *load.MethodDecl) bool {
	return m.HasAnnotation(schema.Resolver{}.Name())
}

// isObjectRoot reports whether the class is the universal root supertype,
// where member collection stops.
func isObjectRoot(c *load.ClassDecl) bool {
	return c == nil || c.Name == load.ObjectRoot
}

// isInterfaceKind reports whether an output-marked class maps to a
// schema interface rather than a concrete object type. An abstract class
// following the serializable data-class pattern stays concrete.
func isInterfaceKind(c *load.ClassDecl) bool {
	return c.Abstract && !c.HasAnnotation(schema.Serializable{}.Name()) && !c.Serializable
}

// isSelfType reports whether the reference points back at the class
// under construction.
func isSelfType(t *load.TypeRef, owner *load.ClassDecl) bool {
	if owner == nil {
		return false
	}
	if t.Decl() != nil {
		return t.Decl() == owner
	}
	return t.Name == owner.Name
}
