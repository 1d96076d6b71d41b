package gen

import "runtime"

// DefaultStripPrefix is the conventional leading token stripped from host
// class names when deriving schema-visible type names.
const DefaultStripPrefix = "_"

// Config carries the generation settings.
type Config struct {
	// Target is the directory the generated source is written to.
	Target string
	// Package is the name of the generated package. Defaults to the base
	// name of Target.
	Package string
	// StripPrefix is the leading token stripped from host class names.
	StripPrefix string
	// Namer derives wire names for fields with no explicit override.
	Namer FieldNamer
	// TypedEnums makes the record branch of enum accessors project wire
	// strings into registered enum constants instead of passing them
	// through.
	TypedEnums bool
	// Workers bounds the number of declarations planned concurrently.
	Workers int
	// SDL is an optional path the schema definition document is exported
	// to after generation.
	SDL string
	// Snapshot is an optional path a binary schema snapshot is written
	// to, used to diff schema shape between generation runs.
	Snapshot string
}

// Option configures generation settings.
type Option func(*Config)

// WithTarget sets the output directory.
func WithTarget(dir string) Option {
	return func(c *Config) { c.Target = dir }
}

// WithPackage sets the generated package name.
func WithPackage(pkg string) Option {
	return func(c *Config) { c.Package = pkg }
}

// WithStripPrefix sets the leading token stripped from host class names.
func WithStripPrefix(p string) Option {
	return func(c *Config) { c.StripPrefix = p }
}

// WithNamer sets the naming context for field wire names.
func WithNamer(n FieldNamer) Option {
	return func(c *Config) { c.Namer = n }
}

// WithTypedEnums turns on typed enum projection in record accessors.
func WithTypedEnums() Option {
	return func(c *Config) { c.TypedEnums = true }
}

// WithWorkers sets the number of parallel planning workers.
func WithWorkers(n int) Option {
	return func(c *Config) { c.Workers = n }
}

// WithSDL sets the schema definition export path.
func WithSDL(path string) Option {
	return func(c *Config) { c.SDL = path }
}

// WithSnapshot sets the schema snapshot path.
func WithSnapshot(path string) Option {
	return func(c *Config) { c.Snapshot = path }
}

// NewConfig builds a Config from options and fills in the defaults.
func NewConfig(opts ...Option) *Config {
	c := &Config{}
	for _, opt := range opts {
		opt(c)
	}
	c.defaults()
	return c
}

// defaults fills unset settings with their default values.
func (c *Config) defaults() {
	if c.StripPrefix == "" {
		c.StripPrefix = DefaultStripPrefix
	}
	if c.Namer == nil {
		c.Namer = SnakeNamer{}
	}
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
}
