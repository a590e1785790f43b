package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"cloudbox/internal/handler"
	"cloudbox/internal/logging"
	"cloudbox/internal/metrics"
)

const grpcServiceName = "cloudbox"

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the gRPC health endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.String("port", "2525", "HTTP port")
	flags.String("grpc-port", "50051", "gRPC health port")
	opts.v.BindPFlag("server.port", flags.Lookup("port"))
	opts.v.BindPFlag("server.grpc_port", flags.Lookup("grpc-port"))

	return cmd
}

func runServer(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	cfg := opts.cfg
	logger := logging.L()

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := buildApp(ctx, cfg, true)
	if err != nil {
		return err
	}
	defer a.Close()

	metrics.SetCollectionSize(a.files.Counts())

	router := handler.NewRouter(handler.Services{
		Files:     a.fileSvc,
		Trash:     a.trashSvc,
		Shares:    a.shareSvc,
		Analytics: a.analytics,
		Sessions:  a.sessions,
	}, handler.RouterOptions{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RequestTimeout: cfg.Server.RequestTimeout,
	})

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// gRPC сервер отдает только стандартный health сервис
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(grpcServiceName, healthpb.HealthCheckResponse_SERVING)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Server.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen for gRPC: %w", err)
	}

	errCh := make(chan error, 2)

	go func() {
		logger.Info("starting gRPC server", zap.String("port", cfg.Server.GRPCPort))
		if err := grpcServer.Serve(lis); err != nil {
			errCh <- fmt.Errorf("gRPC server: %w", err)
		}
	}()

	go func() {
		logger.Info("starting HTTP server", zap.String("port", cfg.Server.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server: %w", err)
		}
	}()

	// Запускаем очистку корзины
	go runTrashCleanup(ctx, a, cfg.Trash.CleanupInterval)

	select {
	case <-ctx.Done():
	case err = <-errCh:
		logger.Error("server failed", zap.Error(err))
	}

	logger.Info("shutting down servers")
	healthServer.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if shutdownErr := httpServer.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Warn("HTTP server forced to shutdown", zap.Error(shutdownErr))
	}
	grpcServer.GracefulStop()

	logger.Info("server exited properly")
	return err
}

func runTrashCleanup(ctx context.Context, a *app, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			n, err := a.trashSvc.AutoCleanup(ctx)
			if err != nil {
				logging.L().Error("error during trash auto cleanup", zap.Error(err))
				continue
			}
			if n > 0 {
				logging.L().Info("trash auto cleanup finished", zap.Int("purged", n))
			}
		case <-ctx.Done():
			return
		}
	}
}
