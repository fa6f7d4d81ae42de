package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const opsShutdownTimeout = 5 * time.Second

// ReadinessFunc は社員一覧が提供可能かを返します。
type ReadinessFunc func() bool

// OpsServer はヘルスチェックとメトリクスを公開する HTTP サーバーです。
type OpsServer struct {
	httpServer *http.Server
}

// NewOpsServer は /healthz, /readyz, /metrics を持つ HTTP サーバーを構築します。
func NewOpsServer(listenAddr string, ready ReadinessFunc, gatherer prometheus.Gatherer) *OpsServer {
	return &OpsServer{
		httpServer: &http.Server{
			Addr:              listenAddr,
			Handler:           NewOpsRouter(ready, gatherer),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// NewOpsRouter は ops エンドポイントのルーターを返します。
func NewOpsRouter(ready ReadinessFunc, gatherer prometheus.Gatherer) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	r.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		if ready == nil || !ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("not ready"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	}).Methods(http.MethodGet)

	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	return r
}

// Run はサーバーを起動し、コンテキストがキャンセルされると Shutdown します。
func (s *OpsServer) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpServer.Addr, err)
	}

	stopped := make(chan struct{})
	defer close(stopped)

	go func() {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), opsShutdownTimeout)
			defer cancel()
			_ = s.httpServer.Shutdown(shutdownCtx)
		case <-stopped:
		}
	}()

	if err := s.httpServer.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve ops: %w", err)
	}
	return nil
}
