package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/bloops-games/wordday/internal/app"
	"github.com/bloops-games/wordday/internal/logging"
	"github.com/bloops-games/wordday/internal/server"
	"github.com/bloops-games/wordday/internal/shutdown"
	"github.com/bloops-games/wordday/internal/wordday/resource"
	"golang.org/x/sync/errgroup"
)

var version string

func main() {
	_, _ = fmt.Fprintf(os.Stdout, resource.GreetingCLI, resource.ProjectName, version, resource.GithubURL)

	ctx, done := shutdown.New()
	defer done()

	config, err := app.Load(".env")
	if err != nil {
		logging.DefaultLogger().Fatalf("load config: %v", err)
	}

	logger := logging.NewLogger(config.Debug)
	ctx = logging.WithLogger(ctx, logger)

	if err := realMain(ctx, config); err != nil {
		done()
		logger.Fatalf("main.realMain: %v", err)
	}
}

func realMain(ctx context.Context, config app.Config) error {
	logger := logging.FromContext(ctx).Named("main.realMain")

	a, err := app.New(ctx, config)
	if err != nil {
		return fmt.Errorf("app.New: %w", err)
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Errorf("close: %v", err)
		}
	}()

	srv, err := server.New(config.Port)
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/health", server.HandleHealth(ctx))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.ServeHTTP(gctx, &http.Server{Handler: mux})
	})

	prof := &http.Server{Addr: ":" + config.ProfPort, Handler: http.DefaultServeMux}
	g.Go(func() error {
		if err := prof.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("pprof default server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		return prof.Close()
	})

	g.Go(func() error {
		logger.Infof("ticking every %s", config.TickInterval)
		return a.Manager.Run(gctx, config.TickInterval)
	})

	return g.Wait()
}
