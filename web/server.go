// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package web hosts the overview and detail viewers over HTTP. Pages are
// thin shells around a canvas; the scenes run on the server, one session
// per WebSocket connection, and stream rendered frames to the browser.
package web

import (
	"embed"
	"encoding/json"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/orrery/detail"
	"cogentcore.org/orrery/overview"
	"cogentcore.org/orrery/planets"
	"cogentcore.org/orrery/surface"
	"cogentcore.org/orrery/viewer"
	"cogentcore.org/orrery/xyz/raster"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Config has the server parameters.
type Config struct {

	// FPS is the number of frames per second sent to each viewer.
	FPS int

	// Format is the encoding of frames.
	Format raster.Formats

	// WriteTimeout bounds each WebSocket write.
	WriteTimeout time.Duration

	// Viewer is the base configuration for every session.
	Viewer viewer.Config
}

// Defaults sets the default values.
func (cf *Config) Defaults() {
	cf.FPS = 30
	cf.Format = raster.PNG
	cf.WriteTimeout = 10 * time.Second
	cf.Viewer = viewer.DefaultConfig()
}

// Server is the HTTP handler for the viewers.
type Server struct {
	Config Config

	catalog  atomic.Pointer[planets.Catalog]
	mux      *http.ServeMux
	pages    *template.Template
	upgrader websocket.Upgrader
}

// NewServer returns a server for the catalog.
func NewServer(cat *planets.Catalog, cfg Config) *Server {
	sv := &Server{Config: cfg, mux: http.NewServeMux()}
	sv.catalog.Store(cat)
	sv.pages = template.Must(template.New("").Funcs(template.FuncMap{
		"legend": func(b *planets.Body) string {
			return overview.LegendEntry{Name: b.Name, Distance: b.DistanceFromSun}.String()
		},
	}).ParseFS(templateFS, "templates/*.html"))

	static, _ := fs.Sub(staticFS, "static")
	sv.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))
	sv.mux.HandleFunc("GET /{$}", sv.handleOverview)
	sv.mux.HandleFunc("GET /planets", sv.handlePlanets)
	sv.mux.HandleFunc("GET /planets/{id}", sv.handlePlanet)
	sv.mux.HandleFunc("GET /api/planets", sv.handleAPIPlanets)
	sv.mux.HandleFunc("GET /api/planets/{id}", sv.handleAPIPlanet)
	sv.mux.HandleFunc("GET /ws/overview", sv.handleWSOverview)
	sv.mux.HandleFunc("GET /ws/planets/{id}", sv.handleWSPlanet)
	sv.mux.HandleFunc("/", sv.notFound)
	return sv
}

// Catalog returns the current catalog.
func (sv *Server) Catalog() *planets.Catalog {
	return sv.catalog.Load()
}

// SetCatalog replaces the catalog for new pages and connections.
// Connected viewers keep the catalog they were mounted with.
// It is safe to call from any goroutine.
func (sv *Server) SetCatalog(cat *planets.Catalog) {
	sv.catalog.Store(cat)
	slog.Info("web: catalog updated", "bodies", cat.Len())
}

func (sv *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sv.mux.ServeHTTP(w, r)
}

func (sv *Server) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	errors.Log(sv.pages.ExecuteTemplate(w, name, data))
}

func (sv *Server) notFound(w http.ResponseWriter, r *http.Request) {
	sv.render(w, http.StatusNotFound, "notfound.html", nil)
}

// overviewPage is the data of the overview page.
type overviewPage struct {
	Bodies []*planets.Body

	// Interactive shows the distance controls; the viewer follows it.
	Interactive bool

	// WS is the viewer socket path.
	WS string
}

func (sv *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	interactive := queryBool(r, "interactive", true)
	q := url.Values{}
	q.Set("interactive", strconv.FormatBool(interactive))
	q.Set("autoRotate", strconv.FormatBool(queryBool(r, "autoRotate", false)))
	sv.render(w, http.StatusOK, "overview.html", &overviewPage{Bodies: sv.Catalog().All(), Interactive: interactive, WS: "/ws/overview?" + q.Encode()})
}

func (sv *Server) handlePlanets(w http.ResponseWriter, r *http.Request) {
	sv.render(w, http.StatusOK, "planets.html", sv.Catalog().All())
}

func (sv *Server) handlePlanet(w http.ResponseWriter, r *http.Request) {
	pb, err := sv.Catalog().Lookup(r.PathValue("id"))
	if err != nil {
		sv.notFound(w, r)
		return
	}
	sv.render(w, http.StatusOK, "planet.html", pb)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	errors.Log(json.NewEncoder(w).Encode(v))
}

func (sv *Server) handleAPIPlanets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sv.Catalog().All())
}

func (sv *Server) handleAPIPlanet(w http.ResponseWriter, r *http.Request) {
	pb, err := sv.Catalog().Lookup(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, pb)
}

// queryBool returns the boolean query parameter, or def if it is absent or invalid.
func queryBool(r *http.Request, name string, def bool) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(name))
	if err != nil {
		return def
	}
	return v
}

func (sv *Server) handleWSOverview(w http.ResponseWriter, r *http.Request) {
	cat := sv.Catalog()
	interactive := queryBool(r, "interactive", true)
	autoRotate := queryBool(r, "autoRotate", false)
	sv.serveConn(w, r, "overview", func(sf surface.Surface, navigate func(id string)) (view, error) {
		cfg := sv.Config.Viewer
		return overview.Mount(sf, cat, overview.Options{Interactive: interactive, AutoRotate: autoRotate, Navigate: navigate, Viewer: &cfg})
	})
}

func (sv *Server) handleWSPlanet(w http.ResponseWriter, r *http.Request) {
	cat := sv.Catalog()
	id := r.PathValue("id")
	if _, err := cat.Lookup(id); err != nil {
		http.Error(w, "404 Planet Not Found", http.StatusNotFound)
		return
	}
	sv.serveConn(w, r, "detail:"+id, func(sf surface.Surface, navigate func(id string)) (view, error) {
		cfg := sv.Config.Viewer
		return detail.Mount(sf, cat, detail.Options{BodyID: id, Viewer: &cfg})
	})
}

// serveConn upgrades the request and serves the viewer connection until it closes.
func (sv *Server) serveConn(w http.ResponseWriter, r *http.Request, kind string, mount mountFunc) {
	ws, err := sv.upgrader.Upgrade(w, r, nil)
	if errors.Log(err) != nil {
		return
	}
	defer ws.Close()
	name := kind + "/" + uuid.NewString()[:8]
	slog.Info("web: viewer connected", "conn", name, "remote", r.RemoteAddr)
	c := newConn(name, mount, sv.Config.Format)
	err = c.serve(r.Context(), ws, sv.Config.FPS, sv.Config.WriteTimeout)
	if err != nil {
		slog.Warn("web: viewer connection failed", "conn", name, "err", err)
		return
	}
	slog.Info("web: viewer disconnected", "conn", name)
}
