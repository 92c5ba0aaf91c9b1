// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package websocket

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub(t *testing.T) {
	h := NewHub()
	received := make(chan string, 1)
	h.OnMessage = func(typ MessageTypes, msg []byte) { received <- string(msg) }
	srv := httptest.NewServer(h)
	defer srv.Close()

	c, err := Connect("ws" + strings.TrimPrefix(srv.URL, "http"))
	require.NoError(t, err)
	msgs := make(chan string, 4)
	c.OnMessage(func(typ MessageTypes, msg []byte) {
		assert.Equal(t, TextMessage, typ)
		msgs <- string(msg)
	})
	closed := make(chan struct{})
	c.OnClose(func() { close(closed) })
	require.Eventually(t, func() bool { return h.Len() == 1 }, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, h.BroadcastJSON(map[string]any{"type": "click", "x": 1.5}))
	select {
	case msg := <-msgs:
		assert.JSONEq(t, `{"type":"click","x":1.5}`, msg)
	case <-time.After(5 * time.Second):
		t.Fatal("no message")
	}

	require.NoError(t, c.Send(TextMessage, []byte("hello")))
	select {
	case msg := <-received:
		assert.Equal(t, "hello", msg)
	case <-time.After(5 * time.Second):
		t.Fatal("no message")
	}

	require.NoError(t, c.Close())
	select {
	case <-closed:
	case <-time.After(5 * time.Second):
		t.Fatal("not closed")
	}
	assert.Eventually(t, func() bool { return h.Len() == 0 }, 5*time.Second, 10*time.Millisecond)
	assert.NoError(t, h.Broadcast(TextMessage, []byte("nobody")))
}

func TestHubClose(t *testing.T) {
	h := NewHub()
	srv := httptest.NewServer(h)
	defer srv.Close()
	c, err := Connect("ws" + strings.TrimPrefix(srv.URL, "http"))
	require.NoError(t, err)
	closed := make(chan struct{})
	c.OnMessage(func(typ MessageTypes, msg []byte) {})
	c.OnClose(func() { close(closed) })
	require.Eventually(t, func() bool { return h.Len() == 1 }, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, h.Close())
	assert.Equal(t, 0, h.Len())
	select {
	case <-closed:
	case <-time.After(5 * time.Second):
		t.Fatal("not closed")
	}
}
