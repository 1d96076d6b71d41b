package gen

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/dave/jennifer/jen"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"
)

// GeneratedFile is the name of the assembled descriptor source file.
const GeneratedFile = "graphgen_types.go"

// Generate compiles every build request of the package and writes the
// assembled descriptor source to the target directory, plus the optional
// schema document and snapshot outputs. Requests plan in parallel; the
// assembled file keeps declaration order, so output is deterministic.
func (g *Generator) Generate(ctx context.Context) error {
	if g.cfg.Target == "" {
		return NewConfigError("Target", nil, "missing target directory")
	}
	reqs := g.pkg.Requests()
	plans := make([]plan, len(reqs))

	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(g.cfg.Workers)
	for i, req := range reqs {
		errg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := g.planRequest(req)
			if err != nil {
				return err
			}
			plans[i] = p
			return nil
		})
	}
	if err := errg.Wait(); err != nil {
		return err
	}

	if err := os.MkdirAll(g.cfg.Target, 0o755); err != nil {
		return NewGenerationError("write", g.cfg.Target, "create target directory", err)
	}
	if err := g.writeSource(plans); err != nil {
		return err
	}
	if g.cfg.SDL != "" {
		if err := g.writeSDL(g.cfg.SDL, plans); err != nil {
			return err
		}
	}
	if g.cfg.Snapshot != "" {
		if err := g.writeSnapshot(g.cfg.Snapshot, plans); err != nil {
			return err
		}
	}
	return nil
}

// writeSource renders every plan into the single descriptor source file
// and writes it through the import formatter.
func (g *Generator) writeSource(plans []plan) error {
	pkg := g.cfg.Package
	if pkg == "" {
		pkg = filepath.Base(g.cfg.Target)
	}
	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by graphgen. DO NOT EDIT.")
	for _, p := range plans {
		p.emit(f)
	}
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return NewGenerationError("render", GeneratedFile, "render descriptor source", err)
	}
	path := filepath.Join(g.cfg.Target, GeneratedFile)
	src, err := imports.Process(path, buf.Bytes(), nil)
	if err != nil {
		return NewGenerationError("render", path, "format descriptor source", err)
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return NewGenerationError("write", path, "write descriptor source", err)
	}
	return nil
}
