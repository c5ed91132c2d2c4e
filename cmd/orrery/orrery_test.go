// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/core/cli"
	"cogentcore.org/orrery/planets"
	"cogentcore.org/orrery/xyz/raster"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Addr:        "127.0.0.1:0",
		FPS:         30,
		Format:      "png",
		Seed:        1,
		Stars:       50,
		Output:      "orrery.png",
		Width:       64,
		Height:      48,
		Frames:      2,
		Supersample: 2,
	}
}

func TestCommands(t *testing.T) {
	args := os.Args
	t.Cleanup(func() { os.Args = args })
	opts := options()
	opts.Fatal = false
	opts.PrintSuccess = false
	opts.DefaultFiles = nil

	run := func(args ...string) (string, *Config) {
		var ran string
		var got *Config
		cmds := commands()
		for _, cmd := range cmds {
			name := cmd.Name
			cmd.Func = func(c *Config) error {
				ran, got = name, c
				return nil
			}
		}
		os.Args = append([]string{"orrery"}, args...)
		require.NoError(t, cli.Run(opts, &Config{}, cmds...))
		return ran, got
	}

	ran, c := run()
	assert.Equal(t, "serve", ran)
	assert.Equal(t, "localhost:8080", c.Addr)
	assert.Equal(t, 30, c.FPS)

	ran, c = run("-addr", "127.0.0.1:9")
	assert.Equal(t, "serve", ran)
	assert.Equal(t, "127.0.0.1:9", c.Addr)

	ran, c = run("snapshot", "-b", "saturn")
	assert.Equal(t, "snapshot", ran)
	assert.Equal(t, "saturn", c.Body)
	assert.Equal(t, 800, c.Width)

	ran, _ = run("list")
	assert.Equal(t, "list", ran)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("ORRERY_ADDR", ":9999")
	t.Setenv("ORRERY_FPS", "12")
	t.Setenv("ORRERY_SEED", "42")
	t.Setenv("ORRERY_DELTA_TIME", "true")
	c := testConfig()
	require.NoError(t, applyEnv(c))
	assert.Equal(t, ":9999", c.Addr)
	assert.Equal(t, 12, c.FPS)
	assert.Equal(t, int64(42), c.Seed)
	assert.True(t, c.DeltaTime)
	assert.Equal(t, "png", c.Format)

	t.Setenv("ORRERY_FPS", "fast")
	assert.Error(t, applyEnv(c))
}

func TestLoadCatalog(t *testing.T) {
	c := testConfig()
	cat, err := loadCatalog(c)
	require.NoError(t, err)
	assert.Equal(t, planets.Default().Len(), cat.Len())

	fn := filepath.Join(t.TempDir(), "bodies.toml")
	require.NoError(t, os.WriteFile(fn, []byte(`
[[bodies]]
id = "vulcan"
name = "Vulcan"
type = "Rocky"
distance = 20
color = "#FF8800"
size = 1
`), 0o644))
	c.Catalog = fn
	cat, err = loadCatalog(c)
	require.NoError(t, err)
	assert.Equal(t, []string{"vulcan"}, cat.IDs())

	c.Catalog = filepath.Join(t.TempDir(), "missing.toml")
	_, err = loadCatalog(c)
	assert.Error(t, err)
}

func TestViewerConfig(t *testing.T) {
	c := testConfig()
	c.DeltaTime = true
	cfg := viewerConfig(c)
	assert.Equal(t, 50, cfg.Stars)
	assert.True(t, cfg.DeltaTime)
	assert.Equal(t, int64(1), cfg.Seed)
	assert.Nil(t, cfg.Rand)
}

func TestFrameFormat(t *testing.T) {
	f, err := frameFormat("jpeg")
	require.NoError(t, err)
	assert.Equal(t, raster.JPEG, f)
	f, err = frameFormat("png")
	require.NoError(t, err)
	assert.Equal(t, raster.PNG, f)
	_, err = frameFormat("gif")
	assert.Error(t, err)
}

func TestSnapshot(t *testing.T) {
	c := testConfig()
	c.Output = filepath.Join(t.TempDir(), "overview.png")
	require.NoError(t, Snapshot(c))
	img, err := imgio.Open(c.Output)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())

	c.Body = "saturn"
	c.Supersample = 1
	c.Output = filepath.Join(t.TempDir(), "saturn.jpg")
	require.NoError(t, Snapshot(c))
	img, err = imgio.Open(c.Output)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())

	c.Body = "pluto"
	assert.ErrorIs(t, Snapshot(c), planets.ErrUnknownBody)

	c.Body = ""
	c.Width = 0
	assert.Error(t, Snapshot(c))
}

func TestList(t *testing.T) {
	var buf bytes.Buffer
	out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))
	require.NoError(t, list(out, planets.Default()))
	s := buf.String()
	assert.Contains(t, s, "ID")
	assert.Contains(t, s, "saturn")
	assert.Contains(t, s, "Saturn")
	assert.Contains(t, s, "1434 million km")
	assert.Contains(t, s, "yes")
}

func TestServe(t *testing.T) {
	c := testConfig()
	ctx, cancel := context.WithCancel(context.Background())
	ready := make(chan string, 1)
	done := make(chan error, 1)
	go func() { done <- serve(ctx, c, ready) }()

	var addr string
	select {
	case addr = <-ready:
	case err := <-done:
		t.Fatalf("serve returned early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	resp, err := http.Get(fmt.Sprintf("http://%s/api/planets/earth", addr))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"Earth"`)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServeBadFormat(t *testing.T) {
	c := testConfig()
	c.Format = "bmp"
	assert.Error(t, serve(context.Background(), c, nil))
}
