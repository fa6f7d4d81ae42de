package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/ogurasousui/codex-hr-dashboard/internal/adapters/grpc/handler"
	"github.com/ogurasousui/codex-hr-dashboard/internal/adapters/peoplesource/dummyjson"
	"github.com/ogurasousui/codex-hr-dashboard/internal/adapters/repository"
	"github.com/ogurasousui/codex-hr-dashboard/internal/core/bookmark"
	"github.com/ogurasousui/codex-hr-dashboard/internal/core/directory"
	"github.com/ogurasousui/codex-hr-dashboard/internal/platform/config"
	"github.com/ogurasousui/codex-hr-dashboard/internal/platform/logging"
	"github.com/ogurasousui/codex-hr-dashboard/internal/platform/metrics"
	"github.com/ogurasousui/codex-hr-dashboard/internal/platform/server"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("failed to load .env: %v", err)
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("server stopped with error", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	m := metrics.New()

	storage, closeStorage, err := repository.OpenStorage(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStorage(); err != nil {
			logger.Warn("failed to close storage", zap.Error(err))
		}
	}()

	storeOpts := []bookmark.Option{bookmark.WithLogger(logger), bookmark.WithRecorder(m)}
	if cfg.Storage.Key != "" {
		storeOpts = append(storeOpts, bookmark.WithKey(cfg.Storage.Key))
	}
	bookmarks := bookmark.NewStore(ctx, storage, storeOpts...)
	m.SetBookmarks(bookmarks.Count())

	source := dummyjson.NewClient(cfg.PeopleSource.BaseURL, cfg.PeopleSource.Timeout)
	dir := directory.New(source,
		directory.WithPageSize(cfg.PeopleSource.PageSize),
		directory.WithLogger(logger),
		directory.WithRecorder(m),
	)
	defer dir.Close()

	grpcServer := server.New(cfg.Server.ListenAddr, handler.NewDashboardGrpcHandler(dir, bookmarks), logger)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		snap := dir.Load(gctx)
		logger.Info("initial employee load finished",
			zap.String("status", string(snap.Status)),
			zap.Int("employees", len(snap.Employees)))
		return nil
	})

	g.Go(func() error {
		logger.Info("gRPC server listening", zap.String("addr", cfg.Server.ListenAddr))
		return grpcServer.Run(gctx)
	})

	if cfg.Ops.ListenAddr != "" {
		ops := server.NewOpsServer(cfg.Ops.ListenAddr, func() bool { return dir.Snapshot().Ready() }, m.Registry)
		g.Go(func() error {
			logger.Info("ops server listening", zap.String("addr", cfg.Ops.ListenAddr))
			return ops.Run(gctx)
		})
	}

	return g.Wait()
}
