package graph

import (
	"context"
	"sync"
)

// FieldResolver reads a field's value at query time. The source is
// either a keyed record (map with wire-form values) or a typed instance;
// args carry the coerced arguments of a resolver-method field and are
// empty for plain fields.
type FieldResolver func(ctx context.Context, source any, args map[string]any) (any, error)

// TypeRegistry is a name-keyed arena of produced descriptors. It is
// populated incrementally as declarations are compiled, so a reference
// may be registered after the descriptor that names it. Lookups are by
// name only; registered descriptors are never mutated.
type TypeRegistry struct {
	mu    sync.RWMutex
	types map[string]any
}

// NewTypeRegistry returns an empty registry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{types: make(map[string]any)}
}

// Types is the default registry the construction API registers into.
var Types = NewTypeRegistry()

// register stores a descriptor under its type name. A later registration
// under the same name wins, which keeps re-running a generation pass in
// the same process harmless.
func (r *TypeRegistry) register(name string, d any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[name] = d
}

// Lookup returns the descriptor registered under the given name.
func (r *TypeRegistry) Lookup(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.types[name]
	return d, ok
}

// Object returns the output object descriptor with the given name.
func (r *TypeRegistry) Object(name string) (*ObjectDescriptor, bool) {
	d, ok := r.Lookup(name)
	if !ok {
		return nil, false
	}
	o, ok := d.(*ObjectDescriptor)
	return o, ok
}

// Input returns the input object descriptor with the given name.
func (r *TypeRegistry) Input(name string) (*InputObjectDescriptor, bool) {
	d, ok := r.Lookup(name)
	if !ok {
		return nil, false
	}
	i, ok := d.(*InputObjectDescriptor)
	return i, ok
}

// Union returns the union descriptor with the given name.
func (r *TypeRegistry) Union(name string) (*UnionDescriptor, bool) {
	d, ok := r.Lookup(name)
	if !ok {
		return nil, false
	}
	u, ok := d.(*UnionDescriptor)
	return u, ok
}

// Enum returns the enum descriptor with the given name.
func (r *TypeRegistry) Enum(name string) (*EnumTypeDescriptor, bool) {
	d, ok := r.Lookup(name)
	if !ok {
		return nil, false
	}
	e, ok := d.(*EnumTypeDescriptor)
	return e, ok
}

// Len returns the number of registered descriptors.
func (r *TypeRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.types)
}

// ResolverRegistry maps composite "ClassName.methodName" keys to the
// callbacks application startup code registers for resolver-marked
// methods. The generated code only references keys symbolically; it
// never writes the registry.
type ResolverRegistry struct {
	mu sync.RWMutex
	m  map[string]FieldResolver
}

// NewResolverRegistry returns an empty resolver registry.
func NewResolverRegistry() *ResolverRegistry {
	return &ResolverRegistry{m: make(map[string]FieldResolver)}
}

// Resolvers is the process-wide registry the generated dispatch
// accessors consult.
var Resolvers = NewResolverRegistry()

// Register binds a resolver callback to its composite key.
func (r *ResolverRegistry) Register(key string, fn FieldResolver) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[key] = fn
}

// Lookup returns the callback registered under the given key.
func (r *ResolverRegistry) Lookup(key string) (FieldResolver, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.m[key]
	return fn, ok
}

// Resolve invokes the callback registered under the given key, failing
// with a MissingResolverError if none was registered.
func (r *ResolverRegistry) Resolve(ctx context.Context, key string, source any, args map[string]any) (any, error) {
	fn, ok := r.Lookup(key)
	if !ok {
		return nil, NewMissingResolverError(key)
	}
	return fn(ctx, source, args)
}
