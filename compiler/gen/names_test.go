package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraphQLTypeNameFor(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		input    bool
		expected string
	}{
		{"PrefixFoo", "Prefix", false, "_Foo"},
		{"PrefixFooInput", "Prefix", true, "_FooInput"},
		{"PrefixFoo", "Prefix", true, "_FooInput"},
		{"_Todo", "_", false, "_Todo"},
		{"_Todo", "_", true, "_TodoInput"},
		{"_TodoInput", "_", true, "_TodoInput"},
		{"Todo", "_", false, "_Todo"},
		{"Todo", "", false, "_Todo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, graphQLTypeNameFor(tt.name, tt.prefix, tt.input))
		})
	}
}

func TestBindingNameFor(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		input    bool
		expected string
	}{
		{"_Todo", "_", false, "todoGraphQLType"},
		{"_Todo", "_", true, "todoInputGraphQLType"},
		{"_TodoInput", "_", true, "todoInputGraphQLType"},
		{"PrefixUserProfile", "Prefix", false, "userProfileGraphQLType"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, bindingNameFor(tt.name, tt.prefix, tt.input))
		})
	}
}

func TestRefNameFor(t *testing.T) {
	assert.Equal(t, "Todo", refNameFor("_Todo"))
	assert.Equal(t, "Todo", refNameFor("Todo"))
	assert.Equal(t, "_Todo", refNameFor("__Todo"))
}

func TestNamers(t *testing.T) {
	assert.Equal(t, "created_at", SnakeNamer{}.WireName("_Todo", "createdAt"))
	assert.Equal(t, "createdAt", IdentityNamer{}.WireName("_Todo", "createdAt"))
	upper := FieldNamerFunc(func(_, field string) string { return pascal(field) })
	assert.Equal(t, "CreatedAt", upper.WireName("_Todo", "createdAt"))
}
