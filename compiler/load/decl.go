// Package load defines the declaration model the generator compiles:
// classes, enums, fields, resolver methods and type references, as
// resolved by the host build pipeline and handed over one declaration
// at a time.
package load

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"

	"github.com/syssam/graphgen/schema"
)

// ObjectRoot is the name of the universal root supertype. Walking an
// inheritance chain stops when it is reached.
const ObjectRoot = "Object"

// TypeRef is a reference to a declared type: its name, whether the
// declaration requires a value (non-null), and the type arguments of a
// generic or iterable type. Every TypeRef is nullable XOR non-null.
type TypeRef struct {
	Name    string     `json:"name" yaml:"name" validate:"required"`
	NonNull bool       `json:"non_null,omitempty" yaml:"non_null,omitempty"`
	Args    []*TypeRef `json:"args,omitempty" yaml:"args,omitempty"`

	decl *ClassDecl
	enum *EnumDecl
}

// Decl returns the resolved class declaration this reference targets,
// or nil for scalars, enums and unresolved names.
func (t *TypeRef) Decl() *ClassDecl { return t.decl }

// Enum returns the resolved enum declaration this reference targets,
// or nil.
func (t *TypeRef) Enum() *EnumDecl { return t.enum }

// Arg returns the i-th type argument, or nil.
func (t *TypeRef) Arg(i int) *TypeRef {
	if i < len(t.Args) {
		return t.Args[i]
	}
	return nil
}

// String renders the reference for error messages.
func (t *TypeRef) String() string {
	s := t.Name
	if len(t.Args) > 0 {
		s += "<"
		for i, a := range t.Args {
			if i > 0 {
				s += ", "
			}
			s += a.String()
		}
		s += ">"
	}
	if t.NonNull {
		s += "!"
	}
	return s
}

// ClassDecl is a class declaration: its members, inheritance and the
// marker annotations present on it.
type ClassDecl struct {
	Name         string         `json:"name" yaml:"name" validate:"required"`
	Doc          string         `json:"doc,omitempty" yaml:"doc,omitempty"`
	Abstract     bool           `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	Serializable bool           `json:"serializable,omitempty" yaml:"serializable,omitempty"`
	Extends      string         `json:"extends,omitempty" yaml:"extends,omitempty"`
	Implements   []string       `json:"implements,omitempty" yaml:"implements,omitempty"`
	Fields       []*FieldDecl   `json:"fields,omitempty" yaml:"fields,omitempty" validate:"dive"`
	Methods      []*MethodDecl  `json:"methods,omitempty" yaml:"methods,omitempty" validate:"dive"`
	Annotations  map[string]any `json:"annotations,omitempty" yaml:"annotations,omitempty"`

	supertype  *ClassDecl
	interfaces []*ClassDecl
}

// Supertype returns the resolved direct supertype, or nil for classes
// extending the universal root.
func (c *ClassDecl) Supertype() *ClassDecl { return c.supertype }

// Interfaces returns the resolved directly implemented interfaces.
func (c *ClassDecl) Interfaces() []*ClassDecl { return c.interfaces }

// HasAnnotation reports whether the annotation bag carries the given
// marker on this declaration only; inheritance-aware checks belong to
// the classifier.
func (c *ClassDecl) HasAnnotation(name string) bool {
	if c == nil || c.Annotations == nil {
		return false
	}
	_, ok := c.Annotations[name]
	return ok
}

// FieldDecl is a field declaration with the directives affecting its
// wire representation already decoded from the annotation bag.
type FieldDecl struct {
	Name              string         `json:"name" yaml:"name" validate:"required"`
	Type              *TypeRef       `json:"type" yaml:"type" validate:"required"`
	Static            bool           `json:"static,omitempty" yaml:"static,omitempty"`
	Synthetic         bool           `json:"synthetic,omitempty" yaml:"synthetic,omitempty"`
	Doc               string         `json:"doc,omitempty" yaml:"doc,omitempty"`
	DeprecationReason string         `json:"deprecation_reason,omitempty" yaml:"deprecation_reason,omitempty"`
	WireName          string         `json:"wire_name,omitempty" yaml:"wire_name,omitempty"`
	SkipInput         bool           `json:"skip_input,omitempty" yaml:"skip_input,omitempty"`
	SkipOutput        bool           `json:"skip_output,omitempty" yaml:"skip_output,omitempty"`
	Annotations       map[string]any `json:"annotations,omitempty" yaml:"annotations,omitempty"`
}

// MethodDecl is a method declaration. Only methods carrying the
// resolver marker take part in generation.
type MethodDecl struct {
	Name              string         `json:"name" yaml:"name" validate:"required"`
	Returns           *TypeRef       `json:"returns" yaml:"returns" validate:"required"`
	Params            []*ParamDecl   `json:"params,omitempty" yaml:"params,omitempty" validate:"dive"`
	Doc               string         `json:"doc,omitempty" yaml:"doc,omitempty"`
	DeprecationReason string         `json:"deprecation_reason,omitempty" yaml:"deprecation_reason,omitempty"`
	Annotations       map[string]any `json:"annotations,omitempty" yaml:"annotations,omitempty"`
}

// HasAnnotation reports whether the annotation bag carries the given
// marker.
func (m *MethodDecl) HasAnnotation(name string) bool {
	if m == nil || m.Annotations == nil {
		return false
	}
	_, ok := m.Annotations[name]
	return ok
}

// ParamDecl is one ordered method parameter.
type ParamDecl struct {
	Name string   `json:"name" yaml:"name" validate:"required"`
	Type *TypeRef `json:"type" yaml:"type" validate:"required"`
}

// EnumDecl is an enum declaration and its ordered constants.
type EnumDecl struct {
	Name   string           `json:"name" yaml:"name" validate:"required"`
	Doc    string           `json:"doc,omitempty" yaml:"doc,omitempty"`
	Values []*EnumValueDecl `json:"values,omitempty" yaml:"values,omitempty" validate:"dive"`
}

// EnumValueDecl is one enum constant. Synthetic members, such as a
// generated all-values accessor, are not real constants and are skipped
// during generation.
type EnumValueDecl struct {
	Name              string `json:"name" yaml:"name" validate:"required"`
	Doc               string `json:"doc,omitempty" yaml:"doc,omitempty"`
	DeprecationReason string `json:"deprecation_reason,omitempty" yaml:"deprecation_reason,omitempty"`
	Synthetic         bool   `json:"synthetic,omitempty" yaml:"synthetic,omitempty"`
}

// Request is one build request: a declaration plus the marker that
// triggered generation for it.
type Request struct {
	Class  *ClassDecl
	Enum   *EnumDecl
	Marker string
}

// Package is the linked set of declarations of one compilation unit.
type Package struct {
	Classes []*ClassDecl
	Enums   []*EnumDecl

	classes map[string]*ClassDecl
	enums   map[string]*EnumDecl
}

// NewPackage links the given declarations: supertypes, implemented
// interfaces and every type reference are resolved by name. Names that
// match no declaration (scalars, external types) are left unresolved.
func NewPackage(classes []*ClassDecl, enums []*EnumDecl) (*Package, error) {
	p := &Package{
		Classes: classes,
		Enums:   enums,
		classes: make(map[string]*ClassDecl, len(classes)),
		enums:   make(map[string]*EnumDecl, len(enums)),
	}
	for _, c := range classes {
		if _, ok := p.classes[c.Name]; ok {
			return nil, fmt.Errorf("load: class %q redeclared", c.Name)
		}
		p.classes[c.Name] = c
	}
	for _, e := range enums {
		if _, ok := p.enums[e.Name]; ok {
			return nil, fmt.Errorf("load: enum %q redeclared", e.Name)
		}
		p.enums[e.Name] = e
	}
	for _, c := range classes {
		if err := p.link(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Class returns the class declaration with the given name, or nil.
func (p *Package) Class(name string) *ClassDecl { return p.classes[name] }

// Enum returns the enum declaration with the given name, or nil.
func (p *Package) Enum(name string) *EnumDecl { return p.enums[name] }

// Requests returns one build request per triggering marker, in
// declaration order. A class carrying both output and input markers
// produces two requests.
func (p *Package) Requests() []*Request {
	var reqs []*Request
	for _, c := range p.Classes {
		switch {
		case c.HasAnnotation(schema.UnionType{}.Name()):
			reqs = append(reqs, &Request{Class: c, Marker: schema.UnionType{}.Name()})
		default:
			if c.HasAnnotation(schema.OutputType{}.Name()) {
				reqs = append(reqs, &Request{Class: c, Marker: schema.OutputType{}.Name()})
			}
			if c.HasAnnotation(schema.InputType{}.Name()) {
				reqs = append(reqs, &Request{Class: c, Marker: schema.InputType{}.Name()})
			}
		}
	}
	for _, e := range p.Enums {
		reqs = append(reqs, &Request{Enum: e, Marker: "Enum"})
	}
	return reqs
}

// Validate checks the structural validity of every declaration.
func (p *Package) Validate() error {
	v := validator.New()
	for _, c := range p.Classes {
		if err := v.Struct(c); err != nil {
			return fmt.Errorf("load: class %q: %w", c.Name, err)
		}
	}
	for _, e := range p.Enums {
		if err := v.Struct(e); err != nil {
			return fmt.Errorf("load: enum %q: %w", e.Name, err)
		}
	}
	return nil
}

// link resolves a class's inheritance and type references. Supertypes
// and interfaces declared outside the package (scalar subtypes, external
// base classes) stay unresolved; the chain simply ends there.
func (p *Package) link(c *ClassDecl) error {
	if c.Extends != "" && c.Extends != ObjectRoot {
		if cycle := p.extendsCycle(c); cycle {
			return fmt.Errorf("load: class %q has a cyclic extends chain", c.Name)
		}
		c.supertype = p.classes[c.Extends]
	}
	for _, name := range c.Implements {
		if iface := p.classes[name]; iface != nil {
			c.interfaces = append(c.interfaces, iface)
		}
	}
	for _, f := range c.Fields {
		p.linkRef(f.Type)
		applyFieldAnnotations(f)
	}
	for _, m := range c.Methods {
		p.linkRef(m.Returns)
		for _, param := range m.Params {
			p.linkRef(param.Type)
		}
		if d := new(schema.Deprecated); m.DeprecationReason == "" && DecodeAnnotation(m.Annotations, d) {
			m.DeprecationReason = d.Reason
		}
	}
	return nil
}

// extendsCycle reports whether following the extends names from c
// revisits a class before reaching an external name or the root. A cycle
// would hang every inheritance walk downstream.
func (p *Package) extendsCycle(c *ClassDecl) bool {
	seen := map[string]struct{}{c.Name: {}}
	for cur := p.classes[c.Extends]; cur != nil; cur = p.classes[cur.Extends] {
		if _, ok := seen[cur.Name]; ok {
			return true
		}
		seen[cur.Name] = struct{}{}
	}
	return false
}

// linkRef resolves a type reference and its arguments, depth first.
func (p *Package) linkRef(t *TypeRef) {
	if t == nil {
		return
	}
	t.decl = p.classes[t.Name]
	t.enum = p.enums[t.Name]
	for _, a := range t.Args {
		p.linkRef(a)
	}
}

// applyFieldAnnotations folds the wire directives of a field's
// annotation bag into its typed fields. Explicit declaration fields
// win over annotation payloads.
func applyFieldAnnotations(f *FieldDecl) {
	if n := new(schema.FieldName); f.WireName == "" && DecodeAnnotation(f.Annotations, n) {
		f.WireName = n.Value
	}
	if d := new(schema.Deprecated); f.DeprecationReason == "" && DecodeAnnotation(f.Annotations, d) {
		f.DeprecationReason = d.Reason
	}
	if inc := new(schema.Include); DecodeAnnotation(f.Annotations, inc) {
		if inc.Input != nil && !*inc.Input {
			f.SkipInput = true
		}
		if inc.Output != nil && !*inc.Output {
			f.SkipOutput = true
		}
	}
}

// DecodeAnnotation extracts a typed annotation payload from a loaded
// annotation bag. It reports whether the annotation was present.
func DecodeAnnotation(bag map[string]any, out schema.Annotation) bool {
	if bag == nil {
		return false
	}
	raw, ok := bag[out.Name()]
	if !ok {
		return false
	}
	if raw == nil {
		return true
	}
	if buf, err := json.Marshal(raw); err == nil {
		_ = json.Unmarshal(buf, out)
	}
	return true
}
