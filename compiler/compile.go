// Package compiler ties the loading and generation stages together: it
// reads declaration manifests, links them into a package and hands the
// result to the generator.
package compiler

import (
	"context"

	"github.com/syssam/graphgen/compiler/gen"
	"github.com/syssam/graphgen/compiler/load"
)

// Generate reads the manifest at the given path (a single file or a
// directory of manifests), links and validates its declarations, and
// generates the descriptor source per the options.
func Generate(ctx context.Context, manifestPath string, opts ...gen.Option) error {
	m, err := load.ReadDir(manifestPath)
	if err != nil {
		return err
	}
	pkg, err := m.Package()
	if err != nil {
		return err
	}
	g, err := gen.NewGenerator(pkg, gen.NewConfig(opts...))
	if err != nil {
		return err
	}
	return g.Generate(ctx)
}
