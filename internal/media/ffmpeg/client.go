package ffmpeg

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"m4vify/internal/plan"
)

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string, onLine func(string)) error
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

// Client wraps encoder invocations.
type Client struct {
	binary   string
	logLevel string
	exec     Executor
}

// New constructs an encoder client. Empty binary and log level fall back to
// "ffmpeg" and "error".
func New(binary, logLevel string, opts ...Option) *Client {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffmpeg"
	}
	logLevel = strings.TrimSpace(logLevel)
	if logLevel == "" {
		logLevel = "error"
	}
	client := &Client{binary: binary, logLevel: logLevel, exec: commandExecutor{}}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Encode realizes a directive, writing the container to outputPath. Tool
// output lines are forwarded to onLine when provided.
func (c *Client) Encode(ctx context.Context, directive plan.Directive, outputPath string, onLine func(string)) error {
	if strings.TrimSpace(outputPath) == "" {
		return fmt.Errorf("ffmpeg encode: empty output path")
	}
	args := Arguments(directive, c.logLevel, outputPath)
	if err := c.exec.Run(ctx, c.binary, args, onLine); err != nil {
		return fmt.Errorf("ffmpeg encode: %w", err)
	}
	return nil
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string, onLine func(string)) error {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start command: %w", err)
	}

	var wg sync.WaitGroup
	scan := func(r io.Reader) {
		defer wg.Done()
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if onLine != nil {
				onLine(scanner.Text())
			}
		}
	}
	wg.Add(2)
	go scan(stdout)
	go scan(stderr)
	wg.Wait()

	return cmd.Wait()
}
