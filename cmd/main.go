package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yungbote/learnhub/internal/config"
	"github.com/yungbote/learnhub/internal/platform/logger"
)

var rootCmd = &cobra.Command{
	Use:          "learnhub",
	Short:        "Course catalog page with a subject tutor and an assistant chat",
	SilenceUsage: true,
	RunE:         runServe,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// bootstrap loads config and builds the logger every command shares.
func bootstrap() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(cfg.Env)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, log, nil
}

// quietLogger is used by the interactive commands so zap output does not
// interleave with the terminal transcript.
func quietLogger() *logger.Logger {
	log, err := logger.New("test")
	if err != nil {
		return logger.Nop()
	}
	return log
}
