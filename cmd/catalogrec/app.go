// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/catalogrec/internal/catalog"
	"github.com/tomtom215/catalogrec/internal/config"
	"github.com/tomtom215/catalogrec/internal/logging"
	"github.com/tomtom215/catalogrec/internal/metrics"
	"github.com/tomtom215/catalogrec/internal/models"
	"github.com/tomtom215/catalogrec/internal/recommend"
	"github.com/tomtom215/catalogrec/internal/resource"
	"github.com/tomtom215/catalogrec/internal/store"
)

// app carries the state of one invocation.
type app struct {
	cfg     *config.Config
	backend resource.Backend
	svc     *catalog.Service

	payload interface{}
	err     error
}

// run executes one command and writes its JSON document to stdout. It
// returns the process exit code.
func run(args []string, stdout io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.ContextWithNewRequestID(ctx)

	a := &app{}
	defer a.close()

	root := newRootCommand(a)
	root.SetOut(stdout)
	// never nil: cobra falls back to os.Args for nil
	root.SetArgs(append([]string{}, rewriteLegacyArgs(args)...))
	if err := root.ExecuteContext(ctx); err != nil && a.err == nil {
		a.err = usageError(err)
	}
	if a.payload == nil && a.err == nil {
		// --help was printed instead of running a command
		return catalog.ExitOK
	}

	out, code := catalog.Render(a.payload, a.err)
	fmt.Fprintln(stdout, out)

	a.writeMetrics()
	return code
}

// open loads configuration and wires the service. It runs once, after the
// command line has been validated.
func (a *app) open(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}
	a.cfg = cfg

	logging.Init(cfg.LoggerConfig())

	backend, err := resource.Open(cfg.ResourceConfig())
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrResourceAccess, err)
	}
	a.backend = backend

	st := store.New(backend,
		store.WithLogger(logging.WithComponent("store")),
		store.WithSeed(cfg.Storage.SeedDefaults),
	)

	engine, err := recommend.NewEngine(cfg.EngineConfig(), logging.WithComponent("recommend"))
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	svc, err := catalog.NewService(st, engine, catalog.Config{
		StrictWrites: cfg.Storage.StrictWrites,
	}, logging.Logger())
	if err != nil {
		return err
	}
	a.svc = svc

	logging.Ctx(ctx).Debug().
		Str("backend", backend.Kind()).
		Bool("seed_defaults", cfg.Storage.SeedDefaults).
		Msg("catalog opened")
	return nil
}

func (a *app) close() {
	if a.backend != nil {
		if err := a.backend.Close(); err != nil {
			logging.Err(err).Msg("failed to close backend")
		}
	}
	if err := logging.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close log file: %v\n", err)
	}
}

// writeMetrics exports the default registry when a textfile is configured.
func (a *app) writeMetrics() {
	if a.cfg == nil || a.cfg.Metrics.Textfile == "" {
		return
	}
	if err := metrics.WriteTextfile(a.cfg.Metrics.Textfile); err != nil {
		logging.Warn().Err(err).Str("path", a.cfg.Metrics.Textfile).Msg("failed to write metrics textfile")
	}
}

// finish records the outcome of a command. Command functions return nil to
// cobra so that a command error is rendered as a payload, not as a usage
// error.
func (a *app) finish(payload interface{}, err error) error {
	a.payload, a.err = payload, err
	return nil
}

func usageError(err error) error {
	return fmt.Errorf("%w: invalid command or missing parameters: %v", models.ErrInvalidInput, err)
}
