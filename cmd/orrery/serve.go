// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"cogentcore.org/orrery/planets"
	"cogentcore.org/orrery/web"
	"golang.org/x/sync/errgroup"
)

// Serve serves the solar system viewers over HTTP until interrupted.
func Serve(c *Config) error {
	if err := applyEnv(c); err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return serve(ctx, c, nil)
}

// serve runs the server until ctx is done. If ready is non-nil, the
// listening address is sent on it.
func serve(ctx context.Context, c *Config, ready chan<- string) error {
	cat, err := loadCatalog(c)
	if err != nil {
		return err
	}
	var wc web.Config
	wc.Defaults()
	wc.FPS = c.FPS
	wc.Viewer = viewerConfig(c)
	if wc.Format, err = frameFormat(c.Format); err != nil {
		return err
	}
	sv := web.NewServer(cat, wc)

	ln, err := net.Listen("tcp", c.Addr)
	if err != nil {
		return err
	}
	hs := &http.Server{Handler: sv, BaseContext: func(net.Listener) context.Context { return ctx }, ReadHeaderTimeout: 10 * time.Second}
	slog.Info("orrery: serving", "addr", "http://"+ln.Addr().String(), "bodies", cat.Len())
	if ready != nil {
		ready <- ln.Addr().String()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := hs.Serve(ln); err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return hs.Shutdown(sctx)
	})
	if c.Catalog != "" && c.Watch {
		g.Go(func() error {
			return planets.Watch(gctx, c.Catalog, sv.SetCatalog)
		})
	}
	return g.Wait()
}
