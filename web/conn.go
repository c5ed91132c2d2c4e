// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package web

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/orrery/overview"
	"cogentcore.org/orrery/surface"
	"cogentcore.org/orrery/viewer"
	"cogentcore.org/orrery/xyz/raster"
	"github.com/gorilla/websocket"
)

// view is a mounted scene.
type view interface {
	Unmount() error
}

// mountFunc mounts a scene on the surface. Navigation requests from
// the scene are passed to navigate.
type mountFunc func(sf surface.Surface, navigate func(id string)) (view, error)

// conn is one viewer connection. All of its state, including the
// mounted scene, is only used from the goroutine running [conn.run].
type conn struct {
	name   string
	sf     *wsSurface
	mount  mountFunc
	view   view
	format raster.Formats

	send      func(msg *serverMessage) error
	sendFrame func(data []byte) error

	unavailable bool
	buf         bytes.Buffer
}

func newConn(name string, mount mountFunc, format raster.Formats) *conn {
	return &conn{name: name, sf: newSurface(), mount: mount, format: format}
}

// handle handles one client message.
func (c *conn) handle(m *clientMessage) error {
	switch m.Type {
	case msgResize:
		changed := c.sf.resize(m.Width, m.Height, m.PixelRatio)
		if c.view == nil {
			return c.tryMount()
		}
		if changed {
			c.sf.listeners.Call(&surface.Event{Type: surface.Resize, Time: time.Now()})
		}
	case msgToggle:
		ov, ok := c.view.(*overview.Overview)
		if !ok {
			return nil
		}
		switch m.Name {
		case "distances":
			if !ov.Interactive() {
				slog.Debug("web: distances toggle ignored on a non-interactive overview", "conn", c.name)
				return nil
			}
			ov.SetShowDistances(!ov.ShowDistances())
		case "autoRotate":
			ov.SetAutoRotate(!ov.AutoRotate())
		default:
			slog.Warn("web: unknown toggle", "conn", c.name, "name", m.Name)
		}
	default:
		ev, ok := m.event()
		if !ok {
			slog.Warn("web: unknown message", "conn", c.name, "type", m.Type)
			return nil
		}
		ev.Time = time.Now()
		c.sf.listeners.Call(ev)
	}
	return nil
}

// tryMount mounts the scene if the surface has a size. A surface that is
// not laid out yet is retried on the next resize.
func (c *conn) tryMount() error {
	if c.unavailable {
		return nil
	}
	v, err := c.mount(c.sf, c.navigate)
	switch {
	case errors.Is(err, viewer.ErrMissingSurface):
		slog.Debug("web: deferring mount until the surface is sized", "conn", c.name)
		return nil
	case errors.Is(err, viewer.ErrUnavailable):
		c.unavailable = true
		slog.Warn("web: visualization unavailable", "conn", c.name, "err", err)
		return c.send(&serverMessage{Type: msgUnavailable, Error: err.Error()})
	case err != nil:
		return err
	}
	c.view = v
	return c.send(&serverMessage{Type: msgReady})
}

func (c *conn) navigate(id string) {
	errors.Log(c.send(&serverMessage{Type: msgNavigate, ID: id}))
}

// frame runs a frame and sends the rendered image, if any.
func (c *conn) frame(now time.Time) error {
	img := c.sf.frame(now)
	if img == nil {
		return nil
	}
	c.buf.Reset()
	if err := raster.Encode(&c.buf, img, c.format); err != nil {
		return err
	}
	return c.sendFrame(c.buf.Bytes())
}

// close unmounts the scene.
func (c *conn) close() {
	if c.view == nil {
		return
	}
	errors.Log(c.view.Unmount())
	c.view = nil
}

// serve runs the connection over the WebSocket until the client goes
// away or ctx is done. Client messages are read on a separate goroutine
// and handled here, between frames.
func (c *conn) serve(ctx context.Context, ws *websocket.Conn, fps int, writeTimeout time.Duration) error {
	c.send = func(msg *serverMessage) error {
		ws.SetWriteDeadline(time.Now().Add(writeTimeout))
		return ws.WriteJSON(msg)
	}
	c.sendFrame = func(data []byte) error {
		ws.SetWriteDeadline(time.Now().Add(writeTimeout))
		return ws.WriteMessage(websocket.BinaryMessage, data)
	}
	defer c.close()

	msgs := make(chan clientMessage)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			typ, data, err := ws.ReadMessage()
			if err != nil {
				readErr <- err
				return
			}
			if typ != websocket.TextMessage {
				continue
			}
			var m clientMessage
			if err := json.Unmarshal(data, &m); err != nil {
				slog.Warn("web: invalid message", "conn", c.name, "err", err)
				continue
			}
			select {
			case msgs <- m:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(max(fps, 1)))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			ws.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(writeTimeout))
			return nil
		case err := <-readErr:
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return err
		case m := <-msgs:
			if err := c.handle(&m); err != nil {
				return err
			}
		case now := <-ticker.C:
			if err := c.frame(now); err != nil {
				return err
			}
		}
	}
}
