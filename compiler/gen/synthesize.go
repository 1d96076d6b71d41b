package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/graphgen/compiler/load"
	"github.com/syssam/graphgen/graph"
	"github.com/syssam/graphgen/schema"
)

// Marker names that trigger generation, as they appear in requests.
var (
	outputMarker = schema.OutputType{}.Name()
	inputMarker  = schema.InputType{}.Name()
	unionMarker  = schema.UnionType{}.Name()
)

// Generator compiles one linked declaration package into descriptor
// plans, and from them either live descriptors or generated source.
type Generator struct {
	pkg *load.Package
	cfg *Config

	// Schema-visible names per reference name, built up front so cross
	// references in exported schema documents resolve without ordering
	// constraints.
	outputNames map[string]string
	inputNames  map[string]string
}

// NewGenerator returns a generator over the given declaration package.
func NewGenerator(pkg *load.Package, cfg *Config) (*Generator, error) {
	if pkg == nil {
		return nil, NewConfigError("Package", nil, "no declaration package")
	}
	if cfg == nil {
		cfg = NewConfig()
	}
	cfg.defaults()
	g := &Generator{
		pkg:         pkg,
		cfg:         cfg,
		outputNames: make(map[string]string),
		inputNames:  make(map[string]string),
	}
	for _, c := range pkg.Classes {
		if isMarkedOutputType(c) {
			g.outputNames[refNameFor(c.Name)] = graphQLTypeNameFor(c.Name, cfg.StripPrefix, false)
		}
		if isMarkedInputType(c) {
			g.inputNames[c.Name] = graphQLTypeNameFor(c.Name, cfg.StripPrefix, true)
		}
	}
	return g, nil
}

// Config returns the generation settings.
func (g *Generator) Config() *Config { return g.cfg }

// accessorKind selects the runtime accessor attached to an output field.
type accessorKind uint8

const (
	accessProperty accessorKind = iota + 1
	accessTime
	accessID
	accessEnum
	accessEnumList
	accessMethod
)

// fieldPlan is the synthesized shape of one output field: everything
// needed to construct its descriptor or emit the construction call.
type fieldPlan struct {
	WireName          string
	Prop              string // exported property name for the typed-instance branch
	Type              *graph.SchemaType
	Description       string
	DeprecationReason string
	Access            accessorKind
	EnumName          string
	Typed             bool
	MethodKey         string
	Args              []*argPlan
}

// argPlan is one argument of a resolver-method field.
type argPlan struct {
	Name string
	Type *graph.SchemaType
}

// objectPlan is the synthesized shape of an output object or interface.
type objectPlan struct {
	Binding     string
	TypeName    string
	Description string
	IsInterface bool
	Interfaces  []string
	Fields      []*fieldPlan
}

// inputFieldPlan is the synthesized shape of one input field.
type inputFieldPlan struct {
	WireName          string
	Type              *graph.SchemaType
	Description       string
	DeprecationReason string
}

// inputPlan is the synthesized shape of an input object. Deferred marks
// a self-referential type whose descriptor must gain identity before its
// field list is attached.
type inputPlan struct {
	Binding     string
	TypeName    string
	Description string
	Deferred    bool
	Fields      []*inputFieldPlan
}

// unionPlan is the synthesized shape of a union.
type unionPlan struct {
	Binding     string
	TypeName    string
	Description string
	Members     []string
}

// enumValuePlan is one enum constant.
type enumValuePlan struct {
	Name              string
	Description       string
	DeprecationReason string
}

// enumPlan is the synthesized shape of an enum type.
type enumPlan struct {
	Binding     string
	TypeName    string
	Description string
	Values      []*enumValuePlan
}

// plan is one planned descriptor, ready to be emitted as source.
type plan interface {
	emit(f *jen.File)
}

// planRequest dispatches a build request to the matching planner.
func (g *Generator) planRequest(req *load.Request) (plan, error) {
	if req.Enum != nil {
		return g.planEnum(req.Enum), nil
	}
	switch req.Marker {
	case unionMarker:
		return g.planUnion(req.Class)
	case inputMarker:
		return g.planInput(req.Class)
	default:
		return g.planObject(req.Class)
	}
}

// planObject synthesizes the plan of an output object or interface:
// collected fields in derived-to-base order, then resolver-method fields.
func (g *Generator) planObject(c *load.ClassDecl) (*objectPlan, error) {
	p := &objectPlan{
		Binding:     bindingNameFor(c.Name, g.cfg.StripPrefix, false),
		TypeName:    graphQLTypeNameFor(c.Name, g.cfg.StripPrefix, false),
		Description: description(c.Doc, c.Annotations),
		IsInterface: isInterfaceKind(c),
	}
	for _, iface := range c.Interfaces() {
		if isMarkedOutputType(iface) {
			p.Interfaces = append(p.Interfaces, refNameFor(iface.Name))
		}
	}
	in := &inferrer{dir: Output, owner: c, prefix: g.cfg.StripPrefix, cache: typeCache{}}
	for _, f := range collectFields(c) {
		if f.SkipOutput {
			continue
		}
		st, err := in.wrapped(f.Name, f.Type)
		if err != nil {
			return nil, err
		}
		fp := &fieldPlan{
			WireName:          g.wireName(c, f),
			Prop:              pascal(f.Name),
			Type:              st,
			Description:       description(f.Doc, f.Annotations),
			DeprecationReason: f.DeprecationReason,
		}
		fp.Access, fp.EnumName = accessorFor(st)
		if fp.Access == accessEnum {
			fp.Typed = g.cfg.TypedEnums
		}
		p.Fields = append(p.Fields, fp)
	}
	// Resolver arguments are inferred on the input side; the marker
	// classification cache is shared with the field pass.
	args := &inferrer{dir: Input, owner: c, prefix: g.cfg.StripPrefix, cache: in.cache}
	for _, m := range collectResolverMethods(c) {
		st, err := in.returnType(m)
		if err != nil {
			return nil, err
		}
		fp := &fieldPlan{
			WireName:          m.Name,
			Type:              st,
			Description:       description(m.Doc, m.Annotations),
			DeprecationReason: m.DeprecationReason,
			Access:            accessMethod,
			MethodKey:         c.Name + "." + m.Name,
		}
		for _, param := range m.Params {
			at, err := args.wrapped(m.Name, param.Type)
			if err != nil {
				return nil, err
			}
			fp.Args = append(fp.Args, &argPlan{Name: param.Name, Type: at})
		}
		p.Fields = append(p.Fields, fp)
	}
	return p, nil
}

// planInput synthesizes the plan of an input object. A field referencing
// the enclosing type, directly or one list level deep, turns the plan
// into a deferred two-phase construction.
func (g *Generator) planInput(c *load.ClassDecl) (*inputPlan, error) {
	p := &inputPlan{
		Binding:     bindingNameFor(c.Name, g.cfg.StripPrefix, true),
		TypeName:    graphQLTypeNameFor(c.Name, g.cfg.StripPrefix, true),
		Description: description(c.Doc, c.Annotations),
	}
	in := &inferrer{dir: Input, owner: c, self: true, prefix: g.cfg.StripPrefix, cache: typeCache{}}
	for _, f := range collectFields(c) {
		if f.SkipInput {
			continue
		}
		st, err := in.wrapped(f.Name, f.Type)
		if err != nil {
			return nil, err
		}
		if st.Leaf().Kind() == graph.Self {
			p.Deferred = true
		}
		p.Fields = append(p.Fields, &inputFieldPlan{
			WireName:          g.wireName(c, f),
			Type:              st,
			Description:       description(f.Doc, f.Annotations),
			DeprecationReason: f.DeprecationReason,
		})
	}
	return p, nil
}

// planEnum synthesizes the plan of an enum type, skipping synthetic
// members.
func (g *Generator) planEnum(e *load.EnumDecl) *enumPlan {
	p := &enumPlan{
		Binding:     bindingNameFor(e.Name, g.cfg.StripPrefix, false),
		TypeName:    e.Name,
		Description: cleanDoc(e.Doc),
	}
	for _, v := range e.Values {
		if v.Synthetic {
			continue
		}
		p.Values = append(p.Values, &enumValuePlan{
			Name:              v.Name,
			Description:       cleanDoc(v.Doc),
			DeprecationReason: v.DeprecationReason,
		})
	}
	return p
}

// BuildObject synthesizes and registers the live descriptor of an
// output-marked class.
func (g *Generator) BuildObject(c *load.ClassDecl) (*graph.ObjectDescriptor, error) {
	p, err := g.planObject(c)
	if err != nil {
		return nil, err
	}
	return p.descriptor(), nil
}

// BuildInput synthesizes and registers the live descriptor of an
// input-marked class. Self-referential types are constructed in two
// phases and keep a single identity.
func (g *Generator) BuildInput(c *load.ClassDecl) (*graph.InputObjectDescriptor, error) {
	p, err := g.planInput(c)
	if err != nil {
		return nil, err
	}
	return p.descriptor(), nil
}

// BuildUnion synthesizes and registers the live descriptor of a
// union-marked class.
func (g *Generator) BuildUnion(c *load.ClassDecl) (*graph.UnionDescriptor, error) {
	p, err := g.planUnion(c)
	if err != nil {
		return nil, err
	}
	return p.descriptor(), nil
}

// BuildEnum synthesizes and registers the live descriptor of an enum
// declaration.
func (g *Generator) BuildEnum(e *load.EnumDecl) *graph.EnumTypeDescriptor {
	return g.planEnum(e).descriptor()
}

// wireName resolves the wire-visible name of a field: an explicit
// override wins, then the configured naming context applies.
func (g *Generator) wireName(c *load.ClassDecl, f *load.FieldDecl) string {
	if f.WireName != "" {
		return f.WireName
	}
	return g.cfg.Namer.WireName(c.Name, f.Name)
}

// description resolves a declaration's schema description: an explicit
// annotation wins over the cleaned documentation comment.
func description(doc string, bag map[string]any) string {
	if d := new(schema.Description); load.DecodeAnnotation(bag, d) && d.Text != "" {
		return d.Text
	}
	return cleanDoc(doc)
}

// accessorFor selects the runtime accessor for a field's schema type.
// Date-time, ID and enum leaves get coercing accessors; everything else
// reads as a plain property.
func accessorFor(t *graph.SchemaType) (accessorKind, string) {
	leaf := t.Leaf()
	list := isListType(t)
	switch {
	case leaf.Kind() == graph.Enum && list:
		return accessEnumList, leaf.Name()
	case leaf.Kind() == graph.Enum:
		return accessEnum, leaf.Name()
	case leaf == graph.DateTimeType && !list:
		return accessTime, ""
	case leaf == graph.IDType && !list:
		return accessID, ""
	}
	return accessProperty, ""
}

// isListType reports whether the type has a list wrapper at any level.
func isListType(t *graph.SchemaType) bool {
	for ; t != nil; t = t.Elem() {
		if t.Kind() == graph.List {
			return true
		}
	}
	return false
}

// descriptor constructs and registers the live output descriptor.
func (p *objectPlan) descriptor() *graph.ObjectDescriptor {
	fields := make([]*graph.FieldDescriptor, 0, len(p.Fields))
	for _, f := range p.Fields {
		fd := &graph.FieldDescriptor{
			Name:              f.WireName,
			Type:              f.Type,
			Description:       f.Description,
			DeprecationReason: f.DeprecationReason,
			Resolve:           f.resolver(),
		}
		for _, a := range f.Args {
			fd.Args = append(fd.Args, &graph.InputArgDescriptor{Name: a.Name, Type: a.Type})
		}
		fields = append(fields, fd)
	}
	var opts []graph.ObjectOption
	if p.Description != "" {
		opts = append(opts, graph.WithDescription(p.Description))
	}
	if p.IsInterface {
		opts = append(opts, graph.AsInterface())
	}
	if len(p.Interfaces) > 0 {
		refs := make([]*graph.SchemaType, len(p.Interfaces))
		for i, n := range p.Interfaces {
			refs[i] = graph.ObjectRef(n)
		}
		opts = append(opts, graph.WithInterfaces(refs...))
	}
	return graph.ObjectType(p.TypeName, fields, opts...)
}

// resolver constructs the runtime accessor the plan selected.
func (f *fieldPlan) resolver() graph.FieldResolver {
	switch f.Access {
	case accessTime:
		return graph.TimeResolver(f.WireName, f.Prop)
	case accessID:
		return graph.IDResolver(f.WireName, f.Prop)
	case accessEnum:
		return graph.EnumResolver(f.WireName, f.Prop, f.EnumName, f.Typed)
	case accessEnumList:
		return graph.EnumListResolver(f.WireName, f.Prop)
	case accessMethod:
		return graph.MethodResolver(f.MethodKey)
	default:
		return graph.PropertyResolver(f.WireName, f.Prop)
	}
}

// descriptor constructs and registers the live input descriptor.
func (p *inputPlan) descriptor() *graph.InputObjectDescriptor {
	fields := make([]*graph.InputFieldDescriptor, 0, len(p.Fields))
	for _, f := range p.Fields {
		fields = append(fields, &graph.InputFieldDescriptor{
			Name:              f.WireName,
			Type:              f.Type,
			Description:       f.Description,
			DeprecationReason: f.DeprecationReason,
		})
	}
	var opts []graph.InputOption
	if p.Description != "" {
		opts = append(opts, graph.WithInputDescription(p.Description))
	}
	if p.Deferred {
		return graph.DeferredInputObjectType(p.TypeName, opts...).AttachFields(fields...)
	}
	return graph.InputObjectType(p.TypeName, fields, opts...)
}

// descriptor constructs and registers the live union descriptor.
func (p *unionPlan) descriptor() *graph.UnionDescriptor {
	members := make([]*graph.SchemaType, len(p.Members))
	for i, m := range p.Members {
		members[i] = graph.ObjectRef(m)
	}
	return graph.UnionType(p.TypeName, members...)
}

// descriptor constructs and registers the live enum descriptor with the
// constants' wire strings as backing values. A strongly typed consumer
// re-registers the descriptor with its own constants; the registry keeps
// the last registration.
func (p *enumPlan) descriptor() *graph.EnumTypeDescriptor {
	values := make([]*graph.EnumValueDescriptor, len(p.Values))
	for i, v := range p.Values {
		values[i] = &graph.EnumValueDescriptor{
			Name:              v.Name,
			Value:             v.Name,
			Description:       v.Description,
			DeprecationReason: v.DeprecationReason,
		}
	}
	d := graph.EnumType(p.TypeName, values...)
	if p.Description != "" {
		d.WithEnumDescription(p.Description)
	}
	return d
}
