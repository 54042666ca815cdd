package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/bloops-games/wordday/internal/logging"
	"github.com/bloops-games/wordday/internal/shutdown"
	"github.com/kelseyhightower/envconfig"
)

// Probes wordday-srv's /health, for container health checks. Exit code 0 when
// the server answers {"status": "ok"}.

type Config struct {
	URL     string        `envconfig:"WORDDAY_HEALTH_URL" default:"http://localhost:1234/health"`
	Timeout time.Duration `envconfig:"WORDDAY_HEALTH_TIMEOUT" default:"5s"`
}

type okResponse struct {
	Status string `json:"status"`
}

func main() {
	ctx, cancel := shutdown.New()
	defer cancel()

	logger := logging.FromContext(ctx)
	config := Config{}
	if err := envconfig.Process("", &config); err != nil {
		logger.Fatalf("processing the config: %v", err)
	}

	status, err := probe(ctx, config)
	if err != nil {
		cancel()
		logger.Fatalf("probe %s: %v", config.URL, err)
	}

	_, _ = fmt.Fprintln(os.Stdout, status)
}

func probe(ctx context.Context, config Config) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, config.URL, nil)
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("client get: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}

	var ok okResponse
	if err := json.NewDecoder(resp.Body).Decode(&ok); err != nil {
		return "", fmt.Errorf("body unmarshal: %w", err)
	}
	if ok.Status != "ok" {
		return "", fmt.Errorf("status %q", ok.Status)
	}

	return ok.Status, nil
}
