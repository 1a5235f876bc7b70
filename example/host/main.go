// Command host is a toy desktop host. By default it serves one client over
// stdio; with -listen it accepts websocket clients on /ws and exposes
// Prometheus metrics on /metrics.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	desktopapi "github.com/zed-industries/desktop-api-bindings"
	"github.com/zed-industries/desktop-api-bindings/internal/logging"
)

func main() {
	listen := flag.String("listen", "", "serve websocket clients on this address instead of stdio")
	root := flag.String("root", "", "directory that file requests are confined to (defaults to a temp dir)")
	flag.Parse()

	// stdout carries frames in stdio mode, so logs go to stderr.
	log := logging.New(logging.ProfileRuntime, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	dir := *root
	if dir == "" {
		tmp, err := os.MkdirTemp("", "desktop-host-")
		if err != nil {
			log.Fatal().Err(err).Msg("create root")
		}
		defer os.RemoveAll(tmp)
		dir = tmp
	}
	handler := newExampleHost(dir, log)

	reg := prometheus.NewRegistry()
	metrics := desktopapi.NewMetrics(reg)
	opts := []desktopapi.Option{desktopapi.WithLogger(log), desktopapi.WithMetrics(metrics)}

	if *listen == "" {
		host := desktopapi.NewHost(handler, desktopapi.NewStreamTransport(os.Stdout, os.Stdin), opts...)
		select {
		case <-host.Done():
		case <-ctx.Done():
			_ = host.Close()
		}
		return
	}
	if err := serveWebSocket(ctx, *listen, handler, reg, log, opts); err != nil {
		log.Fatal().Err(err).Msg("host stopped")
	}
}

func serveWebSocket(ctx context.Context, addr string, handler desktopapi.Handler, reg *prometheus.Registry, log zerolog.Logger, opts []desktopapi.Option) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		t, err := desktopapi.UpgradeWebSocket(w, r)
		if err != nil {
			log.Warn().Err(err).Msg("websocket upgrade failed")
			return
		}
		log.Info().Str("remote", r.RemoteAddr).Msg("client connected")
		host := desktopapi.NewHost(handler, t, opts...)
		<-host.Done()
		log.Info().Str("remote", r.RemoteAddr).Msg("client disconnected")
	})

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	log.Info().Str("addr", addr).Msg("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
