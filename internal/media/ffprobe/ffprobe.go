package ffprobe

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Executor abstracts command execution for testability.
type Executor interface {
	CombinedOutput(ctx context.Context, binary string, args []string) ([]byte, error)
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(executor Executor) Option {
	return func(c *Client) {
		if executor != nil {
			c.exec = executor
		}
	}
}

// Client wraps prober invocations.
type Client struct {
	binary string
	exec   Executor
}

// New constructs a prober client. An empty binary falls back to "ffprobe".
func New(binary string, opts ...Option) *Client {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	client := &Client{binary: binary, exec: commandExecutor{}}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Report executes the prober against the provided path and returns its
// textual stream report. The report is written to the diagnostic stream, so
// combined output is captured.
func (c *Client) Report(ctx context.Context, path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("ffprobe report: empty path")
	}

	output, err := c.exec.CombinedOutput(ctx, c.binary, []string{"-hide_banner", "-i", path})
	if err != nil {
		return "", fmt.Errorf("ffprobe report: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return string(output), nil
}

type commandExecutor struct{}

func (commandExecutor) CombinedOutput(ctx context.Context, binary string, args []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	return cmd.CombinedOutput()
}
