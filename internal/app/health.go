package app

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"horse.fit/inquisitive/internal/cli"
	"horse.fit/inquisitive/internal/config"
	"horse.fit/inquisitive/internal/logging"
)

func runHealth(args []string) int {
	fs := flag.NewFlagSet("health", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")

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
		fmt.Fprintf(os.Stderr, "Configuration check failed: %v\n", err)
		return 1
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}

	_, genSvc, err := buildPipeline(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Pipeline assembly failed: %v\n", err)
		return 1
	}

	fmt.Printf("environment:  %s\n", cfg.Environment)
	fmt.Printf("working lang: %s\n", cfg.WorkingLanguage())
	fmt.Printf("min words:    %d\n", cfg.MinWords)
	fmt.Printf("generators:   %s\n", strings.Join(genSvc.Providers(), ", "))
	fmt.Printf("translation:  %s\n", cfg.TranslationProvider)
	fmt.Println("ok")
	return 0
}
