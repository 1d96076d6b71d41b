package gen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/graphgen/compiler/load"
)

func generateFixture() ([]*load.ClassDecl, []*load.EnumDecl) {
	classes := append(personFixture(),
		&load.ClassDecl{
			Name: "_TreeNodeInput",
			Fields: []*load.FieldDecl{
				{Name: "name", Type: nonNull(typeRef("String"))},
				{Name: "children", Type: typeRef("List", nonNull(typeRef("_TreeNodeInput")))},
			},
			Annotations: map[string]any{"InputType": map[string]any{}},
		},
		&load.ClassDecl{
			Name: "_SearchResult",
			Annotations: map[string]any{
				"UnionType": map[string]any{"types": []any{"_Person", "_Employee"}},
			},
		},
	)
	enums := []*load.EnumDecl{{
		Name:   "Priority",
		Values: []*load.EnumValueDecl{{Name: "LOW"}, {Name: "HIGH"}},
	}}
	return classes, enums
}

func TestGenerateWritesDescriptorSource(t *testing.T) {
	dir := t.TempDir()
	classes, enums := generateFixture()
	g := newTestGenerator(t, classes, enums,
		WithTarget(dir),
		WithPackage("schemagen"),
		WithSDL(filepath.Join(dir, "schema.graphql")),
		WithSnapshot(filepath.Join(dir, "schema.snap")),
	)
	require.NoError(t, g.Generate(context.Background()))

	src, err := os.ReadFile(filepath.Join(dir, GeneratedFile))
	require.NoError(t, err)
	s := string(src)

	assert.Contains(t, s, "// Code generated by graphgen. DO NOT EDIT.")
	assert.Contains(t, s, "package schemagen")
	assert.Contains(t, s, `ObjectType("_Person"`)
	assert.Contains(t, s, "var personGraphQLType")
	assert.Contains(t, s, "var employeeGraphQLType")
	assert.Contains(t, s, `DeferredInputObjectType("_TreeNodeInput")`)
	assert.Contains(t, s, "AttachFields")
	assert.Contains(t, s, "SelfRef()")
	assert.Contains(t, s, `MethodResolver("_Person.friends")`)
	assert.Contains(t, s, `IDResolver("id", "ID")`)
	assert.Contains(t, s, `TimeResolver("created_at", "CreatedAt")`)
	assert.Contains(t, s, `UnionType("_SearchResult"`)
	assert.Contains(t, s, `EnumTypeFromStrings("Priority", "LOW", "HIGH")`)
}

func TestGenerateExportsSchemaDocument(t *testing.T) {
	dir := t.TempDir()
	classes, enums := generateFixture()
	sdl := filepath.Join(dir, "schema.graphql")
	g := newTestGenerator(t, classes, enums, WithTarget(dir), WithPackage("schemagen"), WithSDL(sdl))
	require.NoError(t, g.Generate(context.Background()))

	doc, err := os.ReadFile(sdl)
	require.NoError(t, err)
	s := string(doc)

	assert.Contains(t, s, "scalar DateTime")
	assert.Contains(t, s, "interface _Person")
	assert.Contains(t, s, "type _Employee implements _Person")
	assert.Contains(t, s, "input _TreeNodeInput")
	assert.Contains(t, s, "union _SearchResult = _Person | _Employee")
	assert.Contains(t, s, "enum Priority")
	// Self references render as the enclosing type's own name.
	assert.Contains(t, s, "children: [_TreeNodeInput!]")
	// Resolver methods carry their arguments.
	assert.Contains(t, s, "friends(limit: Int!): [_Person!]")
}

func TestSnapshotDiff(t *testing.T) {
	dir := t.TempDir()
	classes, enums := generateFixture()
	snap := filepath.Join(dir, "schema.snap")
	g := newTestGenerator(t, classes, enums, WithTarget(dir), WithPackage("schemagen"), WithSnapshot(snap))
	require.NoError(t, g.Generate(context.Background()))

	s, err := ReadSnapshot(snap)
	require.NoError(t, err)
	assert.Equal(t, SnapshotVersion, s.Version)
	assert.Empty(t, Diff(s, s))

	// Self references snapshot as the enclosing type's name, the same
	// form the schema document renders.
	var tree *TypeSnapshot
	for _, ts := range s.Types {
		if ts.Name == "_TreeNodeInput" {
			tree = ts
		}
	}
	require.NotNil(t, tree)
	require.Len(t, tree.Fields, 2)
	assert.Equal(t, "[_TreeNodeInput!]", tree.Fields[1].Type)

	// Drop the union and rename a field: the diff names both changes.
	classes, enums = generateFixture()
	classes = classes[:len(classes)-1]
	classes[1].Fields[0].WireName = "badge_no"
	g = newTestGenerator(t, classes, enums, WithTarget(dir), WithPackage("schemagen"), WithSnapshot(snap))
	require.NoError(t, g.Generate(context.Background()))

	next, err := ReadSnapshot(snap)
	require.NoError(t, err)
	changes := Diff(s, next)
	assert.Contains(t, changes, "removed union _SearchResult")
	assert.Contains(t, changes, "removed field _Employee.badge")
	assert.Contains(t, changes, "added field _Employee.badge_no: String!")
}

func TestGenerateRequiresTarget(t *testing.T) {
	classes, enums := generateFixture()
	g := newTestGenerator(t, classes, enums)
	err := g.Generate(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingConfig)
}

func TestGenerateHonorsCancellation(t *testing.T) {
	dir := t.TempDir()
	classes, enums := generateFixture()
	g := newTestGenerator(t, classes, enums, WithTarget(dir))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := g.Generate(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(filepath.Join(dir, GeneratedFile))
	assert.True(t, os.IsNotExist(statErr))
}
