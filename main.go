package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"Dunklab/internal/catalog"
	"Dunklab/internal/config"
	"Dunklab/pkg/logger"
	"github.com/gorilla/mux"
)

var wg sync.WaitGroup

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.LogFormat); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.Named("server")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	repo, closeDB, err := catalog.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseURL, cfg.Migrate, log)
	if err != nil {
		log.Error(ctx, "open catalog", logger.Error(err))
		os.Exit(1)
	}
	defer closeDB()

	router := mux.NewRouter()
	if err := HandleList(ctx, router, cfg, repo, logger.Named("http")); err != nil {
		log.Error(ctx, "register routes", logger.Error(err))
		os.Exit(1)
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           CORS(cfg, router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info(ctx, "starting server", logger.String("addr", cfg.Addr), logger.Any("tls", cfg.TLSEnabled()))
		var err error
		if cfg.TLSEnabled() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "server error", logger.Error(err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info(context.Background(), "shutdown signal received, closing active connections")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "server shutdown", logger.Error(err))
	}
	wg.Wait()
	log.Info(shutdownCtx, "server stopped")
}
