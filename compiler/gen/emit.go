package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/graphgen/graph"
)

// graphPkg is the import path of the runtime package the generated code
// constructs its descriptors from.
const graphPkg = "github.com/syssam/graphgen/graph"

// scalarIdent returns the exported binding name of a built-in scalar.
func scalarIdent(t *graph.SchemaType) string {
	switch t {
	case graph.IntType:
		return "IntType"
	case graph.FloatType:
		return "FloatType"
	case graph.BooleanType:
		return "BooleanType"
	case graph.DateTimeType:
		return "DateTimeType"
	case graph.IDType:
		return "IDType"
	default:
		return "StringType"
	}
}

// typeExpr renders a schema-type expression as the construction call the
// generated code makes at startup.
func typeExpr(t *graph.SchemaType) jen.Code {
	switch t.Kind() {
	case graph.List:
		return jen.Qual(graphPkg, "ListOf").Call(typeExpr(t.Elem()))
	case graph.NonNull:
		return jen.Qual(graphPkg, "NonNullOf").Call(typeExpr(t.Elem()))
	case graph.Enum:
		return jen.Qual(graphPkg, "EnumRef").Call(jen.Lit(t.Name()))
	case graph.Object:
		return jen.Qual(graphPkg, "ObjectRef").Call(jen.Lit(t.Name()))
	case graph.Input:
		return jen.Qual(graphPkg, "InputRef").Call(jen.Lit(t.Name()))
	case graph.Union:
		return jen.Qual(graphPkg, "UnionRef").Call(jen.Lit(t.Name()))
	case graph.Self:
		return jen.Qual(graphPkg, "SelfRef").Call()
	default:
		return jen.Qual(graphPkg, scalarIdent(t))
	}
}

// resolverExpr renders the accessor construction for an output field.
func (f *fieldPlan) resolverExpr() jen.Code {
	switch f.Access {
	case accessTime:
		return jen.Qual(graphPkg, "TimeResolver").Call(jen.Lit(f.WireName), jen.Lit(f.Prop))
	case accessID:
		return jen.Qual(graphPkg, "IDResolver").Call(jen.Lit(f.WireName), jen.Lit(f.Prop))
	case accessEnum:
		return jen.Qual(graphPkg, "EnumResolver").Call(
			jen.Lit(f.WireName), jen.Lit(f.Prop), jen.Lit(f.EnumName), jen.Lit(f.Typed))
	case accessEnumList:
		return jen.Qual(graphPkg, "EnumListResolver").Call(jen.Lit(f.WireName), jen.Lit(f.Prop))
	case accessMethod:
		return jen.Qual(graphPkg, "MethodResolver").Call(jen.Lit(f.MethodKey))
	default:
		return jen.Qual(graphPkg, "PropertyResolver").Call(jen.Lit(f.WireName), jen.Lit(f.Prop))
	}
}

// expr renders one field-descriptor element of the construction call.
func (f *fieldPlan) expr() jen.Code {
	d := jen.Dict{
		jen.Id("Name"):    jen.Lit(f.WireName),
		jen.Id("Type"):    typeExpr(f.Type),
		jen.Id("Resolve"): f.resolverExpr(),
	}
	if f.Description != "" {
		d[jen.Id("Description")] = jen.Lit(f.Description)
	}
	if f.DeprecationReason != "" {
		d[jen.Id("DeprecationReason")] = jen.Lit(f.DeprecationReason)
	}
	if len(f.Args) > 0 {
		args := make([]jen.Code, len(f.Args))
		for i, a := range f.Args {
			args[i] = jen.Values(jen.Dict{
				jen.Id("Name"): jen.Lit(a.Name),
				jen.Id("Type"): typeExpr(a.Type),
			})
		}
		d[jen.Id("Args")] = jen.Index().Op("*").Qual(graphPkg, "InputArgDescriptor").Values(args...)
	}
	return jen.Values(d)
}

// emit renders the package-level binding constructing the output
// descriptor.
func (p *objectPlan) emit(f *jen.File) {
	fields := make([]jen.Code, len(p.Fields))
	for i, fp := range p.Fields {
		fields[i] = fp.expr()
	}
	args := []jen.Code{
		jen.Lit(p.TypeName),
		jen.Index().Op("*").Qual(graphPkg, "FieldDescriptor").Values(fields...),
	}
	if p.Description != "" {
		args = append(args, jen.Qual(graphPkg, "WithDescription").Call(jen.Lit(p.Description)))
	}
	if p.IsInterface {
		args = append(args, jen.Qual(graphPkg, "AsInterface").Call())
	}
	if len(p.Interfaces) > 0 {
		refs := make([]jen.Code, len(p.Interfaces))
		for i, n := range p.Interfaces {
			refs[i] = jen.Qual(graphPkg, "ObjectRef").Call(jen.Lit(n))
		}
		args = append(args, jen.Qual(graphPkg, "WithInterfaces").Call(refs...))
	}
	kind := "object"
	if p.IsInterface {
		kind = "interface"
	}
	f.Commentf("%s is the schema descriptor for the %s %s type.", p.Binding, p.TypeName, kind)
	f.Var().Id(p.Binding).Op("=").Qual(graphPkg, "ObjectType").Call(args...)
	f.Line()
}

// expr renders one input-field descriptor element.
func (f *inputFieldPlan) expr() jen.Dict {
	d := jen.Dict{
		jen.Id("Name"): jen.Lit(f.WireName),
		jen.Id("Type"): typeExpr(f.Type),
	}
	if f.Description != "" {
		d[jen.Id("Description")] = jen.Lit(f.Description)
	}
	if f.DeprecationReason != "" {
		d[jen.Id("DeprecationReason")] = jen.Lit(f.DeprecationReason)
	}
	return d
}

// emit renders the package-level binding constructing the input
// descriptor. Self-referential types construct in two phases through a
// single chained expression so the binding keeps one identity.
func (p *inputPlan) emit(f *jen.File) {
	f.Commentf("%s is the schema descriptor for the %s input type.", p.Binding, p.TypeName)
	if p.Deferred {
		args := []jen.Code{jen.Lit(p.TypeName)}
		if p.Description != "" {
			args = append(args, jen.Qual(graphPkg, "WithInputDescription").Call(jen.Lit(p.Description)))
		}
		attach := make([]jen.Code, len(p.Fields))
		for i, fp := range p.Fields {
			attach[i] = jen.Op("&").Qual(graphPkg, "InputFieldDescriptor").Values(fp.expr())
		}
		f.Var().Id(p.Binding).Op("=").
			Qual(graphPkg, "DeferredInputObjectType").Call(args...).
			Dot("AttachFields").Call(attach...)
		f.Line()
		return
	}
	fields := make([]jen.Code, len(p.Fields))
	for i, fp := range p.Fields {
		fields[i] = jen.Values(fp.expr())
	}
	args := []jen.Code{
		jen.Lit(p.TypeName),
		jen.Index().Op("*").Qual(graphPkg, "InputFieldDescriptor").Values(fields...),
	}
	if p.Description != "" {
		args = append(args, jen.Qual(graphPkg, "WithInputDescription").Call(jen.Lit(p.Description)))
	}
	f.Var().Id(p.Binding).Op("=").Qual(graphPkg, "InputObjectType").Call(args...)
	f.Line()
}

// emit renders the package-level binding constructing the union
// descriptor.
func (p *unionPlan) emit(f *jen.File) {
	args := []jen.Code{jen.Lit(p.TypeName)}
	for _, m := range p.Members {
		args = append(args, jen.Qual(graphPkg, "ObjectRef").Call(jen.Lit(m)))
	}
	f.Commentf("%s is the schema descriptor for the %s union type.", p.Binding, p.TypeName)
	f.Var().Id(p.Binding).Op("=").Qual(graphPkg, "UnionType").Call(args...)
	f.Line()
}

// emit renders the package-level binding constructing the enum
// descriptor. Plain enums use the compact string form; values carrying
// documentation or deprecation emit full value descriptors.
func (p *enumPlan) emit(f *jen.File) {
	f.Commentf("%s is the schema descriptor for the %s enum type.", p.Binding, p.TypeName)
	plain := true
	for _, v := range p.Values {
		if v.Description != "" || v.DeprecationReason != "" {
			plain = false
			break
		}
	}
	args := []jen.Code{jen.Lit(p.TypeName)}
	ctor := "EnumTypeFromStrings"
	if plain {
		for _, v := range p.Values {
			args = append(args, jen.Lit(v.Name))
		}
	} else {
		ctor = "EnumType"
		for _, v := range p.Values {
			d := jen.Dict{
				jen.Id("Name"):  jen.Lit(v.Name),
				jen.Id("Value"): jen.Lit(v.Name),
			}
			if v.Description != "" {
				d[jen.Id("Description")] = jen.Lit(v.Description)
			}
			if v.DeprecationReason != "" {
				d[jen.Id("DeprecationReason")] = jen.Lit(v.DeprecationReason)
			}
			args = append(args, jen.Op("&").Qual(graphPkg, "EnumValueDescriptor").Values(d))
		}
	}
	stmt := f.Var().Id(p.Binding).Op("=").Qual(graphPkg, ctor).Call(args...)
	if p.Description != "" {
		stmt.Dot("WithEnumDescription").Call(jen.Lit(p.Description))
	}
	f.Line()
}
