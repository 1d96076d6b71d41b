// graphgen generates GraphQL schema-type descriptors and accessor glue
// from declaration manifests.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/syssam/graphgen/compiler"
	"github.com/syssam/graphgen/compiler/gen"
)

var logger = log.New(os.Stderr, "graphgen: ", 0)

func main() {
	var (
		manifest   = flag.String("manifest", "graphgen.yaml", "declaration manifest file or directory")
		target     = flag.String("target", "./graphgen", "output directory for generated source")
		pkg        = flag.String("pkg", "", "generated package name (default: target base name)")
		prefix     = flag.String("prefix", gen.DefaultStripPrefix, "leading token stripped from class names")
		sdl        = flag.String("sdl", "", "export the schema document to this path")
		snapshot   = flag.String("snapshot", "", "write a schema snapshot to this path and report changes")
		typedEnums = flag.Bool("typed-enums", false, "project record enum values into registered constants")
		workers    = flag.Int("workers", 0, "number of parallel planning workers (default: GOMAXPROCS)")
		watch      = flag.Bool("watch", false, "watch the manifest and regenerate on change")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []gen.Option{
		gen.WithTarget(*target),
		gen.WithStripPrefix(*prefix),
	}
	if *pkg != "" {
		opts = append(opts, gen.WithPackage(*pkg))
	}
	if *sdl != "" {
		opts = append(opts, gen.WithSDL(*sdl))
	}
	if *snapshot != "" {
		opts = append(opts, gen.WithSnapshot(*snapshot))
	}
	if *typedEnums {
		opts = append(opts, gen.WithTypedEnums())
	}
	if *workers > 0 {
		opts = append(opts, gen.WithWorkers(*workers))
	}

	if err := generate(ctx, *manifest, *snapshot, opts); err != nil {
		logger.Fatal(err)
	}
	if !*watch {
		return
	}
	if err := watchLoop(ctx, *manifest, *snapshot, opts); err != nil && ctx.Err() == nil {
		logger.Fatal(err)
	}
}

// generate runs one generation pass and reports schema-shape changes
// against the previous snapshot, when one exists.
func generate(ctx context.Context, manifest, snapshot string, opts []gen.Option) error {
	var prev *gen.Snapshot
	if snapshot != "" {
		if s, err := gen.ReadSnapshot(snapshot); err == nil {
			prev = s
		}
	}
	start := time.Now()
	if err := compiler.Generate(ctx, manifest, opts...); err != nil {
		return err
	}
	logger.Printf("generated in %s", time.Since(start).Round(time.Millisecond))
	if prev != nil {
		if next, err := gen.ReadSnapshot(snapshot); err == nil {
			for _, change := range gen.Diff(prev, next) {
				logger.Println(change)
			}
		}
	}
	return nil
}

// watchLoop regenerates whenever the manifest changes. Bursts of events
// from editors saving in multiple steps collapse into one run.
func watchLoop(ctx context.Context, manifest, snapshot string, opts []gen.Option) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(manifest); err != nil {
		return err
	}
	logger.Printf("watching %s", manifest)

	debounce := time.NewTimer(0)
	if !debounce.Stop() {
		<-debounce.C
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			debounce.Reset(200 * time.Millisecond)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Println(err)
		case <-debounce.C:
			if err := generate(ctx, manifest, snapshot, opts); err != nil {
				logger.Println(err)
			}
		}
	}
}
