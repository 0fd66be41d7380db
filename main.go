package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/parsa000721/records/api/handlers"
	"github.com/parsa000721/records/api/scheduler"
	"github.com/parsa000721/records/config"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Initialize(ctx); err != nil { //initialize state store and router
		zap.S().Fatalw("failed to initialize", "error", err)
	}
	defer a.Close()

	if a.Config.ArchiveSchedule != "" {
		sink, err := scheduler.SinkFromConfig(ctx, &a.Config)
		if err != nil {
			zap.S().Errorw("archive disabled", "error", err)
		} else {
			s := scheduler.NewScheduler(a.Store, sink, a.Config.ArchiveSchedule)
			if err := s.Start(); err == nil {
				defer s.Stop()
			}
		}
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%v", a.Config.Port),
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	zap.S().Infow("records is up and running",
		"port", a.Config.Port,
		"url", a.Config.BaseURL,
		"driver", a.Config.StoreDriver,
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zap.S().Fatalw("server stopped", "error", err)
	}
}
