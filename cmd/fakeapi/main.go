package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/Wang-tianhao/dummyjson-apitest-go/config"
	"github.com/Wang-tianhao/dummyjson-apitest-go/fakeapi"
	"github.com/Wang-tianhao/dummyjson-apitest-go/jwtauth"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	logger, err := cfg.Logger(os.Stdout)
	if err != nil {
		log.Fatalf("Logger error: %v", err)
	}

	auth, err := jwtauth.NewConfig(
		jwtauth.WithHS256([]byte(cfg.JWTSecret)),
		jwtauth.WithClockSkew(cfg.ClockSkew),
		jwtauth.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	srv, err := fakeapi.New(auth,
		fakeapi.WithDataset(fakeapi.NewDataset(cfg.DatasetSeed)),
		fakeapi.WithTokenTTL(cfg.AccessTokenTTL, cfg.RefreshTokenTTL),
		fakeapi.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("Server error: %v", err)
	}

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Handler()}
	grpcSrv, health := srv.NewGRPCServer()

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", cfg.GRPCAddr, err)
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		logger.Info("http server listening", "addr", cfg.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	eg.Go(func() error {
		logger.Info("grpc server listening", "addr", cfg.GRPCAddr)
		return grpcSrv.Serve(lis)
	})

	eg.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down", "timeout", cfg.ShutdownTimeout)
		health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		stopped := make(chan struct{})
		go func() {
			grpcSrv.GracefulStop()
			close(stopped)
		}()
		err := httpSrv.Shutdown(shutdownCtx)
		select {
		case <-stopped:
		case <-shutdownCtx.Done():
			grpcSrv.Stop()
		}
		return err
	})

	if err := eg.Wait(); err != nil {
		logger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
