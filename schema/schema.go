// Package schema defines the marker annotations a declaration can carry
// to take part in GraphQL schema generation.
//
// The host build pipeline resolves annotations from source and hands them
// to the compiler as a name-keyed bag on each declaration; this package
// is the single authority for annotation names and payload shapes.
//
//	classes:
//	  - name: Todo
//	    annotations:
//	      OutputType: {}
//	  - name: TodoInput
//	    annotations:
//	      InputType: {}
package schema

// Annotation is the interface every marker implements. Name identifies
// the annotation in a declaration's annotation bag.
type Annotation interface {
	Name() string
}

// Merger wraps the Merge method, allowing an annotation to combine with
// another instance of itself collected from a supertype.
type Merger interface {
	Merge(Annotation) Annotation
}

// OutputType marks a class as a GraphQL output object type. The marker
// is inherited: a subclass of a marked class counts as marked.
type OutputType struct{}

// Name implements Annotation.
func (OutputType) Name() string { return "OutputType" }

// InputType marks a class as a GraphQL input object type.
type InputType struct{}

// Name implements Annotation.
func (InputType) Name() string { return "InputType" }

// UnionType marks a class as a GraphQL union over the named member
// types. SDLName optionally overrides the derived union name.
type UnionType struct {
	Types   []string `json:"types,omitempty" yaml:"types,omitempty"`
	SDLName string   `json:"sdl_name,omitempty" yaml:"sdl_name,omitempty"`
}

// Name implements Annotation.
func (UnionType) Name() string { return "UnionType" }

// Resolver marks a method as a resolver field. Its implementation is
// looked up at query time in the process-wide resolver registry under
// the composite "ClassName.methodName" key.
type Resolver struct{}

// Name implements Annotation.
func (Resolver) Name() string { return "Resolver" }

// Serializable marks a class as a general-purpose serializable data
// class. A Dart-style abstract class carrying this marker follows the
// concrete data-class pattern and is not treated as a GraphQL interface.
type Serializable struct{}

// Name implements Annotation.
func (Serializable) Name() string { return "Serializable" }

// FieldName overrides the wire-visible name of a field, taking
// precedence over the naming context's default transformation.
type FieldName struct {
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

// Name implements Annotation.
func (FieldName) Name() string { return "FieldName" }

// Include selects the serialization directions a field takes part in.
// A nil pointer means included.
type Include struct {
	Input  *bool `json:"input,omitempty" yaml:"input,omitempty"`
	Output *bool `json:"output,omitempty" yaml:"output,omitempty"`
}

// Name implements Annotation.
func (Include) Name() string { return "Include" }

// Deprecated records a deprecation reason for a field, method or enum
// value.
type Deprecated struct {
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Name implements Annotation.
func (Deprecated) Name() string { return "Deprecated" }

// Description overrides the documentation-derived description of a
// declaration.
type Description struct {
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
}

// Name implements Annotation.
func (Description) Name() string { return "Description" }
