// Package graph defines the schema-type descriptors produced by the
// graphgen compiler, and the construction API the generated code calls
// to rebuild them at program startup.
//
// Descriptors are immutable once synthesized. Cross-references between
// descriptors are expressed by name and resolved through a TypeRegistry,
// never by direct embedding, since declarations are compiled independently
// and out of order. The single exception is a self-referential input
// object, whose field type points back at the enclosing descriptor by
// identity (see DeferredInputObjectType).
package graph

import "fmt"

// Kind is the tag of a SchemaType variant.
type Kind uint8

// SchemaType variants.
const (
	Scalar Kind = iota + 1
	List
	NonNull
	Enum
	Object
	Input
	Union
	Self
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Scalar:
		return "Scalar"
	case List:
		return "List"
	case NonNull:
		return "NonNull"
	case Enum:
		return "Enum"
	case Object:
		return "Object"
	case Input:
		return "Input"
	case Union:
		return "Union"
	case Self:
		return "Self"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// SchemaType is a schema-type expression: a scalar reference, a list or
// non-null wrapper, or a named reference to an enum, object, input or
// union type. Self is a placeholder that only exists while a
// self-referential input object is under construction.
type SchemaType struct {
	kind Kind
	name string
	elem *SchemaType

	// target holds the identity of the enclosing input descriptor once a
	// Self placeholder has been resolved by AttachFields.
	target *InputObjectDescriptor
}

// Built-in scalar references.
var (
	StringType   = &SchemaType{kind: Scalar, name: "String"}
	IntType      = &SchemaType{kind: Scalar, name: "Int"}
	FloatType    = &SchemaType{kind: Scalar, name: "Float"}
	BooleanType  = &SchemaType{kind: Scalar, name: "Boolean"}
	DateTimeType = &SchemaType{kind: Scalar, name: "DateTime"}
	IDType       = &SchemaType{kind: Scalar, name: "ID"}
)

// ListOf wraps the given type in a list.
func ListOf(elem *SchemaType) *SchemaType {
	return &SchemaType{kind: List, elem: elem}
}

// NonNullOf marks the given type as required.
func NonNullOf(elem *SchemaType) *SchemaType {
	return &SchemaType{kind: NonNull, elem: elem}
}

// EnumRef returns a named reference to an enum type.
func EnumRef(name string) *SchemaType {
	return &SchemaType{kind: Enum, name: name}
}

// ObjectRef returns a named reference to an output object type.
func ObjectRef(name string) *SchemaType {
	return &SchemaType{kind: Object, name: name}
}

// InputRef returns a named reference to an input object type.
func InputRef(name string) *SchemaType {
	return &SchemaType{kind: Input, name: name}
}

// UnionRef returns a named reference to a union type.
func UnionRef(name string) *SchemaType {
	return &SchemaType{kind: Union, name: name}
}

// SelfRef returns a placeholder reference to the input object under
// construction. It is resolved to the enclosing descriptor by
// AttachFields and must never appear in a completed descriptor
// without a target.
func SelfRef() *SchemaType {
	return &SchemaType{kind: Self}
}

// Kind returns the variant tag.
func (t *SchemaType) Kind() Kind { return t.kind }

// Name returns the scalar or referenced type name. For wrappers it
// returns the name of the innermost type.
func (t *SchemaType) Name() string {
	if t.elem != nil {
		return t.elem.Name()
	}
	return t.name
}

// Elem returns the wrapped type of a List or NonNull, or nil.
func (t *SchemaType) Elem() *SchemaType { return t.elem }

// Unwrap strips a single NonNull wrapper, if present.
func (t *SchemaType) Unwrap() *SchemaType {
	if t.kind == NonNull {
		return t.elem
	}
	return t
}

// Leaf returns the innermost type after stripping all wrappers.
func (t *SchemaType) Leaf() *SchemaType {
	for t.elem != nil {
		t = t.elem
	}
	return t
}

// Target returns the enclosing input descriptor a resolved
// self-reference points at, or nil. Wrappers are traversed.
func (t *SchemaType) Target() *InputObjectDescriptor {
	return t.Leaf().target
}

// String renders the type expression in SDL notation.
func (t *SchemaType) String() string {
	switch t.kind {
	case List:
		return "[" + t.elem.String() + "]"
	case NonNull:
		return t.elem.String() + "!"
	case Self:
		if t.target != nil {
			return t.target.Name
		}
		return "<self>"
	default:
		return t.name
	}
}

// FieldDescriptor describes one output field: its wire name, schema
// type, optional documentation, the arguments it accepts (resolver
// methods only) and the accessor that reads its value at query time.
type FieldDescriptor struct {
	Name              string
	Type              *SchemaType
	Description       string
	DeprecationReason string
	Args              []*InputArgDescriptor
	Resolve           FieldResolver
}

// InputArgDescriptor describes one argument of a resolver-method field.
type InputArgDescriptor struct {
	Name string
	Type *SchemaType
}

// InputFieldDescriptor describes one input-object field. Input fields
// never carry resolve behavior.
type InputFieldDescriptor struct {
	Name              string
	Type              *SchemaType
	Description       string
	DeprecationReason string
}

// ObjectDescriptor describes an output object or interface type.
type ObjectDescriptor struct {
	Name        string
	Description string
	IsInterface bool
	Interfaces  []*SchemaType
	Fields      []*FieldDescriptor
}

// InputObjectDescriptor describes an input object type.
type InputObjectDescriptor struct {
	Name        string
	Description string
	Fields      []*InputFieldDescriptor

	deferred bool
	attached bool
}

// UnionDescriptor describes a union type and its object members.
type UnionDescriptor struct {
	Name  string
	Types []*SchemaType
}

// EnumValueDescriptor describes one enum constant. Value holds the
// backing value: the constant's wire-name string for weakly typed
// consumers, or the source constant itself for strongly typed ones.
type EnumValueDescriptor struct {
	Name              string
	Value             any
	Description       string
	DeprecationReason string
}

// EnumTypeDescriptor describes an enum type and its ordered values.
type EnumTypeDescriptor struct {
	Name        string
	Description string
	Values      []*EnumValueDescriptor
}

// ObjectOption configures an ObjectType construction.
type ObjectOption func(*ObjectDescriptor)

// WithDescription sets the type description.
func WithDescription(s string) ObjectOption {
	return func(d *ObjectDescriptor) { d.Description = s }
}

// AsInterface marks the object type as a schema interface.
func AsInterface() ObjectOption {
	return func(d *ObjectDescriptor) { d.IsInterface = true }
}

// WithInterfaces sets the object references of the interfaces the type
// implements.
func WithInterfaces(refs ...*SchemaType) ObjectOption {
	return func(d *ObjectDescriptor) { d.Interfaces = refs }
}

// InputOption configures an input object construction.
type InputOption func(*InputObjectDescriptor)

// WithInputDescription sets the input type description.
func WithInputDescription(s string) InputOption {
	return func(d *InputObjectDescriptor) { d.Description = s }
}

// ObjectType constructs an output object descriptor and registers it in
// the default type registry.
func ObjectType(name string, fields []*FieldDescriptor, opts ...ObjectOption) *ObjectDescriptor {
	d := &ObjectDescriptor{Name: name, Fields: fields}
	for _, opt := range opts {
		opt(d)
	}
	Types.register(name, d)
	return d
}

// InputObjectType constructs an input object descriptor in a single
// step. Use DeferredInputObjectType when a field references the
// enclosing type itself.
func InputObjectType(name string, fields []*InputFieldDescriptor, opts ...InputOption) *InputObjectDescriptor {
	d := &InputObjectDescriptor{Name: name, Fields: fields}
	for _, opt := range opts {
		opt(d)
	}
	Types.register(name, d)
	return d
}

// DeferredInputObjectType constructs an input object descriptor with no
// fields, so the in-progress descriptor has a stable identity before its
// field list is built. Self references inside the field list resolve to
// that identity when the list is attached with AttachFields.
func DeferredInputObjectType(name string, opts ...InputOption) *InputObjectDescriptor {
	d := &InputObjectDescriptor{Name: name, deferred: true}
	for _, opt := range opts {
		opt(d)
	}
	Types.register(name, d)
	return d
}

// AttachFields completes a deferred construction: it attaches the fully
// built field list and resolves every Self placeholder, direct or inside
// wrappers, to the descriptor itself. It returns the same descriptor so
// a construction can remain a single expression.
func (d *InputObjectDescriptor) AttachFields(fields ...*InputFieldDescriptor) *InputObjectDescriptor {
	if !d.deferred || d.attached {
		panic(fmt.Sprintf("graph: AttachFields on non-deferred or completed input type %q", d.Name))
	}
	for _, f := range fields {
		for t := f.Type; t != nil; t = t.elem {
			if t.kind == Self {
				t.target = d
				t.name = d.Name
			}
		}
	}
	d.Fields = fields
	d.attached = true
	return d
}

// UnionType constructs a union descriptor from its object members and
// registers it in the default type registry.
func UnionType(name string, members ...*SchemaType) *UnionDescriptor {
	d := &UnionDescriptor{Name: name, Types: members}
	Types.register(name, d)
	return d
}

// EnumType constructs an enum descriptor from value descriptors.
func EnumType(name string, values ...*EnumValueDescriptor) *EnumTypeDescriptor {
	d := &EnumTypeDescriptor{Name: name, Values: values}
	Types.register(name, d)
	return d
}

// EnumTypeFromStrings constructs an enum descriptor whose backing values
// are the bare constant names.
func EnumTypeFromStrings(name string, values ...string) *EnumTypeDescriptor {
	vs := make([]*EnumValueDescriptor, len(values))
	for i, v := range values {
		vs[i] = &EnumValueDescriptor{Name: v, Value: v}
	}
	return EnumType(name, vs...)
}

// WithEnumDescription sets the description of an enum descriptor and
// returns it, keeping a construction a single expression.
func (d *EnumTypeDescriptor) WithEnumDescription(s string) *EnumTypeDescriptor {
	d.Description = s
	return d
}

// Value returns the value descriptor with the given wire name, or nil.
func (d *EnumTypeDescriptor) Value(name string) *EnumValueDescriptor {
	for _, v := range d.Values {
		if v.Name == name {
			return v
		}
	}
	return nil
}
