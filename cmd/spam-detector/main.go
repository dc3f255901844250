package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/mikey/spam-detector-api/internal/adapters/filter"
	"github.com/mikey/spam-detector-api/internal/di"
	"go.uber.org/zap"
)

func main() {
	flags, err := di.ParseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	// Build the dependency injection container
	container, err := di.BuildCLIContainer(flags, os.Stdout)
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	if err := container.Invoke(run); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(logger *zap.Logger, flags *di.CLIFlags, cliFilter *filter.CliFilter) error {
	defer logger.Sync()

	input, err := di.OpenInput(flags)
	if err != nil {
		logger.Error("Failed to open input file", zap.Error(err), zap.String("file", flags.InputFile))
		return err
	}
	defer input.Close()

	if flags.InputFile != "" {
		logger.Info("Reading email from file", zap.String("file", flags.InputFile))
	} else {
		logger.Info("Reading email from stdin")
	}

	if _, err := cliFilter.ProcessMessage(context.Background(), input); err != nil {
		logger.Error("Failed to process email", zap.Error(err))
		return err
	}
	return nil
}
