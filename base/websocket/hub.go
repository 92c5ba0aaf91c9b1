// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package websocket

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"cogentcore.org/plotinteract/base/errors"
	"github.com/gorilla/websocket"
)

// Hub is an [http.Handler] that upgrades requests to WebSocket
// connections and broadcasts messages to all of them.
// Messages received from clients are passed to OnMessage if set,
// and otherwise discarded.
type Hub struct {

	// Upgrader upgrades the HTTP requests.
	Upgrader websocket.Upgrader

	// OnMessage is called with each message received from a client.
	OnMessage func(typ MessageTypes, msg []byte)

	// mu guards conns, and serializes writes to them.
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewHub returns a new hub.
func NewHub() *Hub {
	return &Hub{conns: map[*websocket.Conn]struct{}{}}
}

// ServeHTTP upgrades the request and reads from the connection
// until it is closed.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if errors.Log(err) != nil {
		return
	}
	h.mu.Lock()
	if h.conns == nil {
		h.conns = map[*websocket.Conn]struct{}{}
	}
	h.conns[conn] = struct{}{}
	n := len(h.conns)
	h.mu.Unlock()
	slog.Info("websocket: client connected", "remote", r.RemoteAddr, "clients", n)

	for {
		typ, msg, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Debug("websocket: read", "remote", r.RemoteAddr, "err", err)
			}
			break
		}
		if h.OnMessage != nil {
			h.OnMessage(MessageTypes(typ), msg)
		}
	}
	h.remove(conn)
	slog.Info("websocket: client disconnected", "remote", r.RemoteAddr)
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
	conn.Close()
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Broadcast sends the message to all connected clients. Clients that
// fail are disconnected, and their errors are returned joined.
func (h *Hub) Broadcast(typ MessageTypes, msg []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	var errs []error
	for conn := range h.conns {
		if err := conn.WriteMessage(int(typ), msg); err != nil {
			errs = append(errs, err)
			delete(h.conns, conn)
			conn.Close()
		}
	}
	return errors.Join(errs...)
}

// BroadcastJSON sends v encoded as JSON to all connected clients.
func (h *Hub) BroadcastJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return h.Broadcast(TextMessage, b)
}

// Close sends a close message to all connected clients and
// disconnects them.
func (h *Hub) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	var errs []error
	for conn := range h.conns {
		errs = append(errs, conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "")))
		delete(h.conns, conn)
		conn.Close()
	}
	return errors.Join(errs...)
}
