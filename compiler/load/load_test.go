package load

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/graphgen/schema"
)

const yamlManifest = `
classes:
  - name: _Todo
    doc: /// A todo item.
    annotations:
      OutputType: {}
    fields:
      - name: id
        type: {name: UUID, non_null: true}
      - name: title
        type: {name: String, non_null: true}
        annotations:
          FieldName: {value: headline}
      - name: tags
        type:
          name: List
          args:
            - {name: String, non_null: true}
  - name: _TodoInput
    extends: Object
    annotations:
      InputType: {}
    fields:
      - name: title
        type: {name: String, non_null: true}
enums:
  - name: Priority
    values:
      - {name: LOW}
      - {name: HIGH}
`

const jsonManifest = `{
  "classes": [
    {
      "name": "_User",
      "annotations": {"OutputType": {}},
      "fields": [{"name": "name", "type": {"name": "String"}}]
    }
  ]
}`

func TestDecodeManifestFormats(t *testing.T) {
	m, err := DecodeManifest([]byte(yamlManifest))
	require.NoError(t, err)
	require.Len(t, m.Classes, 2)
	assert.Equal(t, "_Todo", m.Classes[0].Name)
	require.Len(t, m.Enums, 1)

	m, err = DecodeManifest([]byte(jsonManifest))
	require.NoError(t, err)
	require.Len(t, m.Classes, 1)
	assert.Equal(t, "_User", m.Classes[0].Name)

	_, err = DecodeManifest([]byte("{not json"))
	assert.Error(t, err)
}

func TestReadDirMergesLexically(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.json"), []byte(jsonManifest), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte(yamlManifest), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignore.txt"), []byte("x"), 0o644))

	m, err := ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, m.Classes, 3)
	assert.Equal(t, "_Todo", m.Classes[0].Name)
	assert.Equal(t, "_User", m.Classes[2].Name)

	// A file path reads a single manifest.
	single, err := ReadDir(filepath.Join(dir, "b.json"))
	require.NoError(t, err)
	assert.Len(t, single.Classes, 1)
}

func TestPackageLinksDeclarations(t *testing.T) {
	m, err := DecodeManifest([]byte(yamlManifest))
	require.NoError(t, err)
	p, err := m.Package()
	require.NoError(t, err)

	todo := p.Class("_Todo")
	require.NotNil(t, todo)
	assert.Nil(t, todo.Supertype())

	// The FieldName annotation folds into the typed field.
	assert.Equal(t, "headline", todo.Fields[1].WireName)

	// Type arguments link depth first.
	tags := todo.Fields[2].Type
	require.NotNil(t, tags.Arg(0))
	assert.True(t, tags.Arg(0).NonNull)
	assert.Equal(t, "List<String!>", tags.String())

	// Extending the universal root resolves to no supertype.
	assert.Nil(t, p.Class("_TodoInput").Supertype())

	require.NotNil(t, p.Enum("Priority"))
	assert.Nil(t, p.Class("missing"))
}

func TestPackageInheritanceLinks(t *testing.T) {
	base := &ClassDecl{Name: "_Base", Annotations: map[string]any{"OutputType": map[string]any{}}}
	derived := &ClassDecl{Name: "_Derived", Extends: "_Base", Implements: []string{"_Base", "External"}}
	external := &ClassDecl{Name: "_Alien", Extends: "SomeExternal"}

	p, err := NewPackage([]*ClassDecl{base, derived, external}, nil)
	require.NoError(t, err)

	assert.Same(t, base, p.Class("_Derived").Supertype())
	require.Len(t, derived.Interfaces(), 1)
	assert.Same(t, base, derived.Interfaces()[0])
	// An extends name outside the package ends the chain.
	assert.Nil(t, external.Supertype())
}

func TestPackageRejectsCycles(t *testing.T) {
	a := &ClassDecl{Name: "A", Extends: "B"}
	b := &ClassDecl{Name: "B", Extends: "A"}
	_, err := NewPackage([]*ClassDecl{a, b}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cyclic")
}

func TestPackageRejectsRedeclaration(t *testing.T) {
	_, err := NewPackage([]*ClassDecl{{Name: "A"}, {Name: "A"}}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redeclared")

	_, err = NewPackage(nil, []*EnumDecl{{Name: "E"}, {Name: "E"}})
	require.Error(t, err)
}

func TestRequests(t *testing.T) {
	both := &ClassDecl{Name: "_Doc", Annotations: map[string]any{
		"OutputType": map[string]any{},
		"InputType":  map[string]any{},
	}}
	union := &ClassDecl{Name: "_Result", Annotations: map[string]any{
		// The union marker is exclusive: other markers on the same class
		// produce no extra requests.
		"UnionType":  map[string]any{"types": []any{"_Doc"}},
		"OutputType": map[string]any{},
	}}
	plain := &ClassDecl{Name: "Helper"}
	e := &EnumDecl{Name: "Priority"}

	p, err := NewPackage([]*ClassDecl{both, union, plain}, []*EnumDecl{e})
	require.NoError(t, err)

	reqs := p.Requests()
	require.Len(t, reqs, 4)
	assert.Equal(t, "OutputType", reqs[0].Marker)
	assert.Same(t, both, reqs[0].Class)
	assert.Equal(t, "InputType", reqs[1].Marker)
	assert.Same(t, both, reqs[1].Class)
	assert.Equal(t, "UnionType", reqs[2].Marker)
	assert.Equal(t, "Enum", reqs[3].Marker)
	assert.Same(t, e, reqs[3].Enum)
}

func TestValidate(t *testing.T) {
	p, err := NewPackage([]*ClassDecl{{Name: "_Todo", Fields: []*FieldDecl{{Name: "id"}}}}, nil)
	require.NoError(t, err)
	// A field with no type reference is structurally invalid.
	assert.Error(t, p.Validate())
}

func TestDecodeAnnotation(t *testing.T) {
	bag := map[string]any{
		"FieldName":  map[string]any{"value": "display"},
		"Deprecated": map[string]any{"reason": "gone"},
		"Resolver":   nil,
	}

	n := new(schema.FieldName)
	require.True(t, DecodeAnnotation(bag, n))
	assert.Equal(t, "display", n.Value)

	d := new(schema.Deprecated)
	require.True(t, DecodeAnnotation(bag, d))
	assert.Equal(t, "gone", d.Reason)

	// A bare marker decodes as present with an empty payload.
	assert.True(t, DecodeAnnotation(bag, new(schema.Resolver)))
	assert.False(t, DecodeAnnotation(bag, new(schema.Description)))
	assert.False(t, DecodeAnnotation(nil, new(schema.FieldName)))
}
