package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bloops-games/wordday/internal/app"
	"github.com/bloops-games/wordday/internal/logging"
	"github.com/bloops-games/wordday/internal/shutdown"
	"github.com/bloops-games/wordday/internal/wordday/resource"
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

// realMain runs exactly one tick, the scheduler (cron, systemd timer) decides
// how often.
func realMain(ctx context.Context, config app.Config) error {
	a, err := app.New(ctx, config)
	if err != nil {
		return fmt.Errorf("app.New: %w", err)
	}

	tickErr := a.Manager.Tick(ctx)
	if err := a.Close(); err != nil {
		logging.FromContext(ctx).Named("main.realMain").Errorf("close: %v", err)
	}

	return tickErr
}
