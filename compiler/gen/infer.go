package gen

import (
	"fmt"

	"github.com/syssam/graphgen/compiler/load"
	"github.com/syssam/graphgen/graph"
)

// Direction selects the serialization side a type is inferred for.
type Direction uint8

const (
	// Output infers types for output object fields and resolver returns.
	Output Direction = iota + 1
	// Input infers types for input object fields and resolver arguments.
	Input
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Output:
		return "output"
	case Input:
		return "input"
	default:
		return fmt.Sprintf("Direction(%d)", d)
	}
}

// typeCache memoizes marker classification per referenced type name for
// the duration of one synthesis pass.
type typeCache map[string]*graph.SchemaType

// inferrer resolves declared type references into schema types for one
// declaration. The rules below never wrap their result in NonNull; the
// declaration's own requirement is applied by wrapped at every level,
// including list elements.
type inferrer struct {
	dir    Direction
	owner  *load.ClassDecl // enclosing declaration; names error sites and anchors self references
	self   bool            // resolve references back at owner as Self placeholders
	prefix string          // leading token stripped when deriving schema names
	cache  typeCache
}

func (in *inferrer) ownerName() string {
	if in.owner != nil {
		return in.owner.Name
	}
	return ""
}

// wrapped infers the schema type of a reference and applies the
// declaration's non-null requirement on top.
func (in *inferrer) wrapped(member string, t *load.TypeRef) (*graph.SchemaType, error) {
	st, err := in.infer(member, t)
	if err != nil {
		return nil, err
	}
	if t.NonNull {
		st = graph.NonNullOf(st)
	}
	return st, nil
}

// returnType infers a resolver method's field type. A single level of
// asynchronous wrapping is unwrapped first; everywhere else the wrapper
// stays opaque and fails inference.
func (in *inferrer) returnType(m *load.MethodDecl) (*graph.SchemaType, error) {
	t := m.Returns
	if isFuture(t) {
		inner := futureInner(t)
		if inner == nil {
			return nil, NewTypeInferenceError(in.ownerName(), m.Name, t.String())
		}
		t = inner
	}
	return in.wrapped(m.Name, t)
}

// infer applies the inference rules in priority order: self reference,
// scalar by assignability, iterable, enum, output marker, input marker,
// union marker. A reference matching no rule is a TypeInferenceError.
func (in *inferrer) infer(member string, t *load.TypeRef) (*graph.SchemaType, error) {
	if t == nil {
		return nil, NewTypeInferenceError(in.ownerName(), member, "<missing>")
	}
	// A reference back at the type under construction resolves to a
	// placeholder, direct or one list level deep. Input side only:
	// output objects cross-reference by name through the registry.
	if in.self && in.dir == Input {
		if isSelfType(t, in.owner) {
			return graph.SelfRef(), nil
		}
		if isIterable(t) {
			if e := iterableElementType(t); e != nil && isSelfType(e, in.owner) {
				if e.NonNull {
					return graph.ListOf(graph.NonNullOf(graph.SelfRef())), nil
				}
				return graph.ListOf(graph.SelfRef()), nil
			}
		}
	}
	if s, ok := scalarFor(t); ok {
		return s, nil
	}
	if isIterable(t) {
		e := iterableElementType(t)
		if e == nil {
			return nil, NewTypeInferenceError(in.ownerName(), member, t.String())
		}
		elem, err := in.wrapped(member, e)
		if err != nil {
			return nil, err
		}
		return graph.ListOf(elem), nil
	}
	if e := t.Enum(); e != nil {
		return graph.EnumRef(e.Name), nil
	}
	if d := t.Decl(); d != nil {
		if st, ok := in.cache[d.Name]; ok {
			return st, nil
		}
		switch {
		case isMarkedOutputType(d):
			st := graph.ObjectRef(refNameFor(d.Name))
			in.cache[d.Name] = st
			return st, nil
		case isMarkedInputType(d):
			st := graph.InputRef(d.Name)
			in.cache[d.Name] = st
			return st, nil
		case isMarkedUnion(d):
			// Never cached: the same reference is an error on the input
			// side.
			if in.dir == Input {
				return nil, NewInvalidUsageError(in.ownerName(), member,
					fmt.Sprintf("union %s cannot be used as an input type", d.Name))
			}
			return graph.UnionRef(unionNameFor(d, in.prefix)), nil
		}
	}
	return nil, NewTypeInferenceError(in.ownerName(), member, t.String())
}
