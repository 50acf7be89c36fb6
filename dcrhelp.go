// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2015-2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/decred/dcrhelp/errors"
	"github.com/decred/dcrhelp/internal/catalog"
	"github.com/decred/dcrhelp/internal/declfile"
	"github.com/decred/dcrhelp/internal/loggers"
	"github.com/decred/dcrhelp/internal/mddoc"
	"github.com/decred/dcrhelp/rpchelp"
	"github.com/decred/dcrhelp/version"
	"golang.org/x/sync/errgroup"
)

func init() {
	// Format nested errors without newlines (better for logs).
	errors.Separator = ":: "
}

func main() {
	// Create a context that is cancelled when a shutdown request is received
	// through an interrupt signal.
	ctx := withShutdownCancel(context.Background())

	if err := run(ctx, os.Args[1:]); err != nil && !errors.Is(err, context.Canceled) {
		os.Exit(1)
	}
}

// run loads the configuration, builds the method catalog, and writes the
// requested help text.
func run(ctx context.Context, args []string) error {
	cfg, methodNames, err := loadConfig(args)
	if err != nil {
		return err
	}
	defer loggers.CloseLogRotator()

	log.Debugf("Version %s (Go version %s %s/%s)", version.String(), runtime.Version(),
		runtime.GOOS, runtime.GOARCH)

	c, err := catalog.New(cfg.params)
	if err != nil {
		log.Errorf("Unable to declare methods: %v", err)
		return err
	}
	for _, path := range cfg.Decl {
		if err := addDeclarations(c, path); err != nil {
			log.Error(err)
			return err
		}
	}

	methods, err := selectMethods(c, methodNames, cfg.All || cfg.OutDir != "")
	if err != nil {
		log.Error(err)
		return err
	}

	if cfg.OutDir != "" {
		err = writeFiles(ctx, cfg.OutDir, cfg.Format, methods)
		if err != nil {
			log.Errorf("Unable to write help files: %v", err)
		}
		return err
	}

	var out string
	if methods == nil {
		out = usageListing(c, cfg.Format)
	} else {
		out = renderAll(methods, cfg.Format, cfg.params.Name)
	}
	_, err = os.Stdout.WriteString(out)
	return err
}

func addDeclarations(c *catalog.Catalog, path string) error {
	const op errors.Op = "addDeclarations"
	methods, err := declfile.Load(path)
	if err != nil {
		return errors.E(op, err)
	}
	for _, m := range methods {
		if err := c.Add(m); err != nil {
			return errors.E(op, errors.Errorf("%s: %w", path, err))
		}
	}
	log.Infof("Added %d methods from %s", len(methods), path)
	return nil
}

// selectMethods returns the named methods in the order given.  Without names,
// all methods are returned if all is set, and nil otherwise.
func selectMethods(c *catalog.Catalog, names []string, all bool) ([]*rpchelp.Method, error) {
	const op errors.Op = "selectMethods"
	if len(names) == 0 {
		if all {
			return c.Methods(), nil
		}
		return nil, nil
	}
	methods := make([]*rpchelp.Method, 0, len(names))
	for _, name := range names {
		m, ok := c.Lookup(name)
		if !ok {
			return nil, errors.E(op, errors.NotExist,
				errors.Errorf("unknown method %q", name))
		}
		methods = append(methods, m)
	}
	return methods, nil
}

func usageListing(c *catalog.Catalog, format string) string {
	if format == "markdown" {
		return "```\n" + c.Usage() + "```\n"
	}
	return c.Usage()
}

func renderAll(methods []*rpchelp.Method, format, network string) string {
	if format == "markdown" {
		return mddoc.Catalog("Wallet JSON-RPC methods ("+network+")", methods)
	}
	texts := make([]string, len(methods))
	for i, m := range methods {
		texts[i] = m.Render()
	}
	return strings.Join(texts, "\n")
}

func renderMethod(m *rpchelp.Method, format string) (name, text string) {
	if format == "markdown" {
		return m.Name() + ".md", mddoc.Method(m)
	}
	return m.Name() + ".txt", m.Render()
}

// writeFiles writes the help of each method to its own file in dir.  Files
// are rendered and written concurrently, and the first error cancels the
// remaining writes.
func writeFiles(ctx context.Context, dir, format string, methods []*rpchelp.Method) error {
	const op errors.Op = "writeFiles"
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.E(op, errors.IO, err)
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, m := range methods {
		m := m
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			name, text := renderMethod(m, format)
			if !filepath.IsLocal(name) || filepath.Base(name) != name {
				return errors.E(op, errors.Invalid,
					errors.Errorf("method name %q is not a file name", m.Name()))
			}
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, []byte(text), 0644); err != nil {
				return errors.E(op, errors.IO, err)
			}
			log.Debugf("Wrote %s", path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	log.Infof("Wrote help for %d methods to %s", len(methods), dir)
	return nil
}
