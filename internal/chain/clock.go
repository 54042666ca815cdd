package chain

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Endpoint returning the current block height as plain text
	URL     string        `envconfig:"WORDDAY_CLOCK_URL" default:"https://blockchain.info/q/getblockcount"`
	Timeout time.Duration `envconfig:"WORDDAY_CLOCK_TIMEOUT" default:"15s"`
}

// Clock reads the bitcoin block height from a plain text HTTP endpoint.
type Clock struct {
	url    string
	client *http.Client
}

func NewClock(config Config) *Clock {
	return &Clock{
		url:    config.URL,
		client: &http.Client{Timeout: config.Timeout},
	}
}

func (c *Clock) Height(ctx context.Context) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return 0, fmt.Errorf("new request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("get %s: %w", c.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("get %s: unexpected status %s", c.url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64))
	if err != nil {
		return 0, fmt.Errorf("read body: %w", err)
	}

	height, err := strconv.ParseInt(strings.TrimSpace(string(body)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse height %q: %w", body, err)
	}

	if height < 0 {
		return 0, fmt.Errorf("negative height %d", height)
	}

	return height, nil
}
