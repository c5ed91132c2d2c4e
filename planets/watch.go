// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package planets

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchDelay is how long Watch waits after the last change to a catalog
// file before reloading it, so that editors writing in several steps
// only cause one reload.
var WatchDelay = 100 * time.Millisecond

// Watch reloads the catalog in the given file whenever it changes, and
// calls fn with each newly loaded catalog that passes validation.
// Invalid catalogs are logged and skipped. Watch blocks until ctx is done.
// The directory is watched rather than the file, so that editors that
// replace the file on save are followed.
func Watch(ctx context.Context, filename string, fn func(c *Catalog)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	abs, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	var reload <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				reload = time.After(WatchDelay)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("planets.Watch: watcher error", "file", filename, "err", err)
		case <-reload:
			reload = nil
			c, err := Open(abs)
			if err != nil {
				slog.Warn("planets.Watch: keeping previous catalog", "file", filename, "err", err)
				continue
			}
			slog.Info("planets.Watch: catalog reloaded", "file", filename, "bodies", c.Len())
			fn(c)
		}
	}
}
