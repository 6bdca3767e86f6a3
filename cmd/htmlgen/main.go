package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/goliatone/go-htmlgen/internal/discover"
	"github.com/goliatone/go-htmlgen/internal/lint"
	"github.com/goliatone/go-htmlgen/pkg/codegen"
	"github.com/goliatone/go-htmlgen/pkg/config"
	"github.com/goliatone/go-htmlgen/pkg/repl"
	"github.com/goliatone/go-htmlgen/pkg/serve"
)

func usage(fs *flag.FlagSet) func() {
	return func() {
		out := fs.Output()
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintln(out, "  htmlgen [flags] [paths...]      generate one .go file next to each component file")
		_, _ = fmt.Fprintln(out, "  htmlgen lint [paths...]         report suspicious attributes")
		_, _ = fmt.Fprintln(out, "  htmlgen repl [file]             try markup interactively")
		_, _ = fmt.Fprintln(out, "  htmlgen preview [-addr] [dir]   serve component previews")
		_, _ = fmt.Fprintln(out, "")
		_, _ = fmt.Fprintln(out, "Paths behave like Go patterns: ./..., ./dir, ./dir/..., ./file.htmlg")
		_, _ = fmt.Fprintln(out, "")
		fs.PrintDefaults()
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("htmlgen: ")

	args := os.Args[1:]
	if len(args) > 0 {
		switch args[0] {
		case "lint":
			os.Exit(runLint(args[1:]))
		case "repl":
			runREPL(args[1:])
			return
		case "preview":
			runPreview(args[1:])
			return
		}
	}
	runGenerate(args)
}

type project struct {
	cwd  string
	root string
	cfg  config.Config
}

func (p project) discover() discover.Options {
	return discover.Options{Extension: p.cfg.Extension, Skip: p.cfg.Skip}
}

func loadProject(rootFlag, configFlag string) project {
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}
	root := rootFlag
	if root == "" {
		if root, err = discover.FindModuleRoot(cwd); err != nil {
			root = cwd
		}
	}
	if root, err = filepath.Abs(root); err != nil {
		log.Fatal(err)
	}

	var cfg config.Config
	if configFlag != "" {
		cfg, err = config.Load(configFlag)
	} else {
		cfg, err = config.LoadDir(root)
	}
	if err != nil {
		log.Fatal(err)
	}
	return project{cwd: cwd, root: root, cfg: cfg}
}

func runGenerate(args []string) {
	fs := flag.NewFlagSet("htmlgen", flag.ExitOnError)
	fs.Usage = usage(fs)
	rootFlag := fs.String("root", "", "project root holding htmlgen.yaml (defaults to the go.mod parent of cwd)")
	configFlag := fs.String("config", "", "config file (defaults to htmlgen.yaml, .yml or .json in the root)")
	dirFlag := fs.String("dir", "", "only generate for this directory (non-recursive). Useful with go:generate.")
	watch := fs.Bool("watch", false, "regenerate when component files change")
	interval := fs.Duration("interval", 500*time.Millisecond, "polling interval for -watch")
	verbose := fs.Bool("v", false, "log every written file")
	_ = fs.Parse(args)

	if strings.TrimSpace(*dirFlag) != "" && fs.NArg() != 0 {
		log.Fatal("cannot use -dir with positional paths")
	}
	p := loadProject(*rootFlag, *configFlag)

	collect := func() ([]string, error) {
		if dir := strings.TrimSpace(*dirFlag); dir != "" {
			if !filepath.IsAbs(dir) {
				dir = filepath.Join(p.cwd, dir)
			}
			return discover.Dir(dir, p.discover())
		}
		return discover.Collect(p.cwd, fs.Args(), p.discover())
	}

	paths, err := collect()
	if err != nil {
		log.Fatal(err)
	}
	if err := generate(paths, p.cfg, *verbose); err != nil && !*watch {
		log.Fatal(err)
	} else if err != nil {
		log.Print(err)
	}
	if !*watch {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log.Printf("watching %d file(s), interval %s", len(paths), *interval)

	stamps := discover.Stamps(paths)
	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		paths, err := collect()
		if err != nil {
			log.Print(err)
			continue
		}
		next := discover.Stamps(paths)
		if changed := discover.Changed(stamps, next); len(changed) > 0 {
			if err := generate(changed, p.cfg, true); err != nil {
				log.Print(err)
			}
		}
		stamps = next
	}
}

func generate(paths []string, cfg config.Config, verbose bool) error {
	opts := cfg.CodegenOptions()
	var allErr error
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			allErr = errors.Join(allErr, err)
			continue
		}
		out, err := codegen.CompileFile(path, src, opts...)
		if err != nil {
			allErr = errors.Join(allErr, err)
			continue
		}
		target := discover.OutputPath(path)
		changed, err := discover.WriteGenerated(target, out)
		if err != nil {
			allErr = errors.Join(allErr, err)
			continue
		}
		if verbose && changed {
			log.Printf("wrote %s", target)
		}
	}
	return allErr
}

func runLint(args []string) int {
	fs := flag.NewFlagSet("htmlgen lint", flag.ExitOnError)
	fs.Usage = usage(fs)
	rootFlag := fs.String("root", "", "project root holding htmlgen.yaml")
	configFlag := fs.String("config", "", "config file")
	_ = fs.Parse(args)

	p := loadProject(*rootFlag, *configFlag)
	paths, err := discover.Collect(p.cwd, fs.Args(), p.discover())
	if err != nil {
		log.Fatal(err)
	}

	var violations []lint.Violation
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			log.Fatal(err)
		}
		rel, err := filepath.Rel(p.cwd, path)
		if err != nil {
			rel = path
		}
		f, err := codegen.ParseFile(rel, src)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		violations = append(violations, lint.File(f)...)
	}
	if len(violations) == 0 {
		return 0
	}
	lint.Sort(violations)
	for _, v := range violations {
		fmt.Fprintln(os.Stderr, v)
	}
	return 1
}

func runREPL(args []string) {
	fs := flag.NewFlagSet("htmlgen repl", flag.ExitOnError)
	fs.Usage = usage(fs)
	strict := fs.Bool("strict", false, "escape single quotes as well")
	_ = fs.Parse(args)

	cfg := config.Default()
	cfg.StrictQuotes = *strict
	opts := []repl.Option{repl.WithPolicy(cfg.Policy())}
	if fs.NArg() > 0 {
		path := fs.Arg(0)
		src, err := os.ReadFile(path)
		if err != nil {
			log.Fatal(err)
		}
		f, err := codegen.ParseFile(path, src)
		if err != nil {
			log.Fatal(err)
		}
		opts = append(opts, repl.WithFile(f))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := repl.New(repl.NewTerminal(os.Stdout), opts...).Run(ctx); err != nil {
		log.Fatal(err)
	}
}

func runPreview(args []string) {
	fs := flag.NewFlagSet("htmlgen preview", flag.ExitOnError)
	fs.Usage = usage(fs)
	rootFlag := fs.String("root", "", "project root holding htmlgen.yaml")
	configFlag := fs.String("config", "", "config file")
	addr := fs.String("addr", "", "listen address (overrides preview.addr)")
	_ = fs.Parse(args)

	p := loadProject(*rootFlag, *configFlag)
	if *addr != "" {
		p.cfg.Preview.Addr = *addr
	}
	dir := p.cfg.Preview.Dir
	if fs.NArg() > 0 {
		dir = fs.Arg(0)
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(p.root, dir)
	}

	level, err := config.ParseLevel(p.cfg.Preview.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	srv, err := serve.New(dir,
		serve.WithLogger(logger),
		serve.WithPolicy(p.cfg.Policy()),
		serve.WithExtension(p.cfg.Extension),
		serve.WithSkip(p.cfg.Skip),
	)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := srv.ListenAndServe(ctx, p.cfg.Preview.Addr); err != nil {
		log.Fatal(err)
	}
}
