package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	labelsv1 "labels-tracker/gen/proto/labels/v1"
	"labels-tracker/internal/common"
	"labels-tracker/internal/export"
	"labels-tracker/internal/generator"
	"labels-tracker/internal/labels"
	"labels-tracker/internal/pdf"
	"labels-tracker/internal/repository"
	"labels-tracker/internal/server"
	"labels-tracker/internal/storage"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	zlog, _ := zap.NewProduction()
	defer zlog.Sync()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("database health OK")

	resolver, err := storage.NewResolver(cfg.Storage.LabelsDir)
	if err != nil {
		logger.Error("failed to prepare labels directory", "error", err, "dir", cfg.Storage.LabelsDir)
		os.Exit(1)
	}
	validator := storage.NewValidator(cfg.Storage.MaxFileSize)
	repo := repository.NewLabelRepository(entc, logger)
	store := labels.NewStore(repo, resolver, validator, logger)
	merger := pdf.NewMerger(logger)
	printer := labels.NewPrinter(store, merger, logger)
	registry := generator.NewRegistry(store, logger)
	exporter := export.NewService(store, logger)

	// gRPC server
	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)
	labelsv1.RegisterLabelsServiceServer(grpcServer, server.NewLabelsService(store, registry, exporter, zlog))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "error", err, "addr", cfg.Server.GRPCAddr)
		os.Exit(1)
	}
	go func() {
		logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve", "error", err)
			stop()
		}
	}()

	// HTTP delivery server
	httpSrv, err := server.NewHTTPServer(store, printer, logger)
	if err != nil {
		logger.Error("failed to build HTTP server", "error", err)
		os.Exit(1)
	}
	httpd := &http.Server{
		Addr:         cfg.Server.HTTPAddr,
		Handler:      httpSrv.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
	}
	go func() {
		logger.Info("HTTP serving", "addr", cfg.Server.HTTPAddr)
		if err := httpd.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpd.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", "error", err)
	}
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
