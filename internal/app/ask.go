package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"horse.fit/inquisitive/internal/cli"
	"horse.fit/inquisitive/internal/config"
	"horse.fit/inquisitive/internal/logging"
	"horse.fit/inquisitive/internal/pipeline"
)

func runAsk(args []string) int {
	fs := flag.NewFlagSet("ask", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	file := fs.String("file", "", "Read the input text from this file (default: stdin)")
	timeout := fs.Duration("timeout", 5*time.Minute, "Overall pipeline timeout")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if envLoader != nil {
		if _, err := envLoader.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}

	text, err := readInput(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read input: %v\n", err)
		return 1
	}

	pipe, _, err := buildPipeline(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to assemble pipeline: %v\n", err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	outcome, err := pipe.Run(ctx, pipeline.Request{Text: text})
	if err != nil {
		var rejected *pipeline.RejectedError
		if errors.As(err, &rejected) {
			fmt.Fprintf(os.Stderr, "Input rejected: %v\n", rejected)
			return 2
		}
		fmt.Fprintf(os.Stderr, "Question generation failed: %v\n", err)
		return 1
	}

	for _, notice := range outcome.Notices {
		fmt.Fprintf(os.Stderr, "[%s] %s\n", notice.Code, notice.Message)
	}
	fmt.Println(outcome.Questions)
	return 0
}

func readInput(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
