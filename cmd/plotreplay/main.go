// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command plotreplay plays a script of pointer events against a chart
// figure and prints the chart events as lines of JSON. It can also
// serve the events to WebSocket clients as they happen, and, with
// --connect, send a script to another plotreplay serving a chart.
package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"cogentcore.org/plotinteract/base/errors"
	"cogentcore.org/plotinteract/base/logx"
	"cogentcore.org/plotinteract/base/websocket"
	"cogentcore.org/plotinteract/events"
	"cogentcore.org/plotinteract/plot/chart"
	"cogentcore.org/plotinteract/plot/gesture"
	"cogentcore.org/plotinteract/plot/replay"
	"github.com/spf13/cobra"
)

// options are the command line options.
type options struct {
	settings string
	watch    bool
	serve    string
	clients  int
	realtime bool
	listen   bool
	connect  string
	linger   time.Duration
	vv, v, q bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "plotreplay [figure.yaml] script.yaml",
		Short: "Play a pointer event script against a chart figure",
		Long: `plotreplay loads a chart figure and a script of pointer events and host
calls, both in YAML, plays the script against the chart, and prints the
chart events (click, doubleclick, hover, unhover, relayout) as lines of JSON.

With --connect, it takes only the script, sends its pointer steps to a
plotreplay running with --serve and --listen, and prints the chart events
that it receives back.`,
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.connect != "" {
				if len(args) != 1 {
					return fmt.Errorf("--connect takes only a script file, got %d files", len(args))
				}
				return connect(cmd, opts, args[0])
			}
			if len(args) != 2 {
				return fmt.Errorf("need a figure file and a script file")
			}
			return run(cmd, opts, args[0], args[1])
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&opts.settings, "settings", "", "gesture settings TOML file")
	fs.BoolVar(&opts.watch, "watch", false, "reload the settings file when it changes")
	fs.StringVar(&opts.serve, "serve", "", "serve the events to WebSocket clients at ws://`addr`/ws")
	fs.IntVar(&opts.clients, "clients", 1, "number of WebSocket clients to wait for with --serve")
	fs.BoolVar(&opts.realtime, "realtime", false, "play the steps at their script times")
	fs.BoolVar(&opts.listen, "listen", false, "with --serve, keep applying pointer events sent by clients after the script ends")
	fs.StringVar(&opts.connect, "connect", "", "send the script to the chart served at WebSocket `url`")
	fs.DurationVar(&opts.linger, "linger", time.Second, "with --connect, how long to wait for chart events after the last step")
	fs.BoolVar(&opts.vv, "vv", false, "log debug messages")
	fs.BoolVarP(&opts.v, "verbose", "v", false, "log info messages")
	fs.BoolVarP(&opts.q, "quiet", "q", false, "only log errors")
	cmd.MarkFlagsMutuallyExclusive("connect", "serve")
	return cmd
}

func setupLog(cmd *cobra.Command, opts *options) context.Context {
	logx.UserLevel = logx.LevelFromFlags(opts.vv, opts.v, opts.q)
	slog.SetDefault(slog.New(logx.NewHandler(cmd.ErrOrStderr())))
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func run(cmd *cobra.Command, opts *options, figureFile, scriptFile string) error {
	ctx := setupLog(cmd, opts)

	fig, err := chart.OpenFigure(figureFile)
	if err != nil {
		return fmt.Errorf("figure: %w", err)
	}
	sc, err := replay.OpenScript(scriptFile)
	if err != nil {
		return fmt.Errorf("script: %w", err)
	}
	settings := gesture.NewSettings()
	if opts.settings != "" {
		if err := settings.Open(opts.settings); err != nil {
			return fmt.Errorf("settings: %w", err)
		}
	}
	c, err := chart.New(fig, settings)
	if err != nil {
		return err
	}
	c.OnAny(replay.JSONLines(cmd.OutOrStdout()))
	p := replay.NewPlayer(c)
	p.Realtime = opts.realtime

	if opts.watch && opts.settings != "" {
		stop, err := gesture.WatchSettings(opts.settings, func(s *gesture.Settings) {
			slog.Info("plotreplay: settings changed", "file", opts.settings)
			p.Do(func() { c.SetSettings(s) })
		})
		if err != nil {
			return err
		}
		defer func() { errors.Log(stop()) }()
	}

	var queue events.Queue
	if opts.serve != "" {
		hub := websocket.NewHub()
		c.OnAny(func(ev chart.Event) { errors.Log(hub.BroadcastJSON(ev)) })
		if opts.listen {
			hub.OnMessage = func(typ websocket.MessageTypes, msg []byte) {
				queueMessage(&queue, msg)
			}
		}
		ln, err := net.Listen("tcp", opts.serve)
		if err != nil {
			return err
		}
		mux := http.NewServeMux()
		mux.Handle("/ws", hub)
		srv := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}
		go func() {
			if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
				slog.Error("plotreplay: serve", "err", err)
			}
		}()
		defer srv.Close()
		defer func() { errors.Log(hub.Close()) }()
		slog.Warn("plotreplay: waiting for clients", "url", "ws://"+ln.Addr().String()+"/ws", "clients", opts.clients)
		if err := waitForClients(ctx, hub, opts.clients); err != nil {
			return err
		}
		p.Start = time.Now()
	}
	if err := p.Play(ctx, sc); err != nil {
		return err
	}
	if opts.serve == "" || !opts.listen {
		return nil
	}
	slog.Warn("plotreplay: script done, applying client events until interrupted")
	if err := p.Run(ctx, &queue); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// connect sends the pointer steps of the script to the chart served
// at opts.connect, and prints the chart events it sends back until
// opts.linger after the last step.
func connect(cmd *cobra.Command, opts *options, scriptFile string) error {
	ctx := setupLog(cmd, opts)
	sc, err := replay.OpenScript(scriptFile)
	if err != nil {
		return fmt.Errorf("script: %w", err)
	}
	cl, err := websocket.Connect(opts.connect)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	out := cmd.OutOrStdout()
	cl.OnMessage(func(typ websocket.MessageTypes, msg []byte) {
		if typ == websocket.TextMessage {
			fmt.Fprintf(out, "%s\n", bytes.TrimSpace(msg))
		}
	})
	closed := make(chan struct{})
	cl.OnClose(func() { close(closed) })
	slog.Info("plotreplay: connected", "url", opts.connect)

	send := func(msg []byte) error { return cl.Send(websocket.TextMessage, msg) }
	if err := replay.SendScript(ctx, sc, time.Now(), opts.realtime, send); err != nil {
		errors.Log(cl.Close())
		return err
	}
	select {
	case <-ctx.Done():
	case <-closed:
		return nil
	case <-time.After(opts.linger):
	}
	if err := cl.Close(); err != nil {
		return err
	}
	select {
	case <-closed:
	case <-time.After(5 * time.Second):
		slog.Warn("plotreplay: server did not close the connection", "url", opts.connect)
	}
	return nil
}

// queueMessage sends the pointer event of a client message to q.
func queueMessage(q *events.Queue, msg []byte) {
	m, err := replay.ReadMessage(msg)
	if errors.Log(err) != nil {
		return
	}
	ev, err := m.Event(time.Now())
	if errors.Log(err) != nil {
		return
	}
	q.Send(ev)
}

// waitForClients waits until the hub has at least n clients.
func waitForClients(ctx context.Context, hub *websocket.Hub, n int) error {
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for hub.Len() < n {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
		}
	}
	return nil
}
