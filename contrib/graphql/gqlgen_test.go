package graphql

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadGQLGenConfigMissingFile(t *testing.T) {
	cfg, err := LoadGQLGenConfig(filepath.Join(t.TempDir(), "gqlgen.yml"))
	require.NoError(t, err)
	assert.Empty(t, cfg.SchemaFilename)
	assert.NotNil(t, cfg.Models)
}

func TestLoadGQLGenConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gqlgen.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
schema: graph/*.graphql
exec:
  filename: graph/generated.go
autobind:
  - example.com/app/models
models:
  Todo:
    model:
      - example.com/app/models.Todo
    fields:
      owner:
        resolver: true
`), 0o644))

	cfg, err := LoadGQLGenConfig(path)
	require.NoError(t, err)
	// A scalar schema entry decodes as a one-element list.
	assert.Equal(t, StringList{"graph/*.graphql"}, cfg.SchemaFilename)
	assert.Equal(t, "graph/generated.go", cfg.Exec.Filename)
	assert.Equal(t, []string{"example.com/app/models"}, cfg.Autobind)
	require.Contains(t, cfg.Models, "Todo")
	assert.Equal(t, StringList{"example.com/app/models.Todo"}, cfg.Models["Todo"].Model)
	assert.True(t, cfg.Models["Todo"].Fields["owner"].Resolver)

	_, err = LoadGQLGenConfig(writeTemp(t, "schema: {bad: kind}"))
	assert.Error(t, err)
}

func TestInjectGraphgenBindings(t *testing.T) {
	cfg := &GQLGenConfig{}
	cfg.InjectGraphgenBindings("example.com/app/schemagen", "schema/schema.graphql")

	assert.Equal(t, StringList{"schema/schema.graphql"}, cfg.SchemaFilename)
	assert.Equal(t, []string{"example.com/app/schemagen"}, cfg.Autobind)
	assert.Equal(t, StringList{"github.com/99designs/gqlgen/graphql.Time"}, cfg.Models["DateTime"].Model)
	assert.Equal(t, StringList{"github.com/99designs/gqlgen/graphql.UUID"}, cfg.Models["ID"].Model)
	assert.Equal(t, StringList{"github.com/99designs/gqlgen/graphql.UUID"}, cfg.Models["UUID"].Model)

	// Injection is idempotent.
	cfg.InjectGraphgenBindings("example.com/app/schemagen", "schema/schema.graphql")
	assert.Len(t, cfg.SchemaFilename, 1)
	assert.Len(t, cfg.Autobind, 1)
	assert.Len(t, cfg.Models["DateTime"].Model, 1)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "gqlgen.yml")
	cfg := &GQLGenConfig{}
	cfg.InjectGraphgenBindings("example.com/app/schemagen", "schema/schema.graphql")
	cfg.SetModel("Todo", "example.com/app/models.Todo")
	require.NoError(t, SaveGQLGenConfig(path, cfg))

	loaded, err := LoadGQLGenConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.SchemaFilename, loaded.SchemaFilename)
	assert.Equal(t, cfg.Autobind, loaded.Autobind)
	assert.Equal(t, cfg.Models, loaded.Models)
}

func TestStringListYAML(t *testing.T) {
	// A single element marshals back to a scalar.
	out, err := yaml.Marshal(StringList{"one"})
	require.NoError(t, err)
	assert.Equal(t, "one\n", string(out))

	out, err = yaml.Marshal(StringList{"one", "two"})
	require.NoError(t, err)

	var list StringList
	require.NoError(t, yaml.Unmarshal(out, &list))
	assert.Equal(t, StringList{"one", "two"}, list)

	assert.Error(t, yaml.Unmarshal([]byte("a: b"), &list))
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gqlgen.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
