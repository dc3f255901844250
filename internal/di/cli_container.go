package di

import (
	"flag"
	"io"
	"os"
	"strings"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/spam-detector-api/internal/adapters/filter"
	"github.com/mikey/spam-detector-api/internal/classifier"
	"github.com/mikey/spam-detector-api/internal/config"
	"github.com/mikey/spam-detector-api/internal/core"
	"github.com/mikey/spam-detector-api/internal/factory"
	"github.com/mikey/spam-detector-api/internal/logging"
	"github.com/mikey/spam-detector-api/internal/utils"
)

// CLIFlags contains all command line flags for the CLI application
type CLIFlags struct {
	// Spam detection flags
	Whitelist string

	// Input flags
	InputFile  string
	Verbose    bool
	JSONLog    bool
	ConfigFile string
}

// ParseFlags parses command line arguments into a CLIFlags struct
func ParseFlags(args []string) (*CLIFlags, error) {
	flags := &CLIFlags{}
	fs := flag.NewFlagSet("spam-detector", flag.ContinueOnError)

	// Spam detection flags
	fs.StringVar(&flags.Whitelist, "whitelist", "", "Comma-separated list of whitelisted domains")

	// Input flags
	fs.StringVar(&flags.InputFile, "file", "", "Input email file (use stdin if not specified)")
	fs.BoolVar(&flags.Verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&flags.JSONLog, "json-log", false, "Output logs in JSON format")
	fs.StringVar(&flags.ConfigFile, "config", "", "Path to config file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return flags, nil
}

// BuildCLIContainer creates and configures a dependency injection container
// for the CLI application. The report is written to out.
func BuildCLIContainer(flags *CLIFlags, out io.Writer) (*dig.Container, error) {
	container := dig.New()

	// Register flags
	if err := container.Provide(func() *CLIFlags { return flags }); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(func(flags *CLIFlags) (*zap.Logger, error) {
		return logging.InitConsoleLogger(flags.Verbose, flags.JSONLog)
	}); err != nil {
		return nil, err
	}

	// Register configuration
	if err := container.Provide(func(flags *CLIFlags, logger *zap.Logger) (*config.Config, error) {
		return loadCLIConfig(flags, logger)
	}); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewFilterFactory); err != nil {
		return nil, err
	}

	// Register text processor
	if err := container.Provide(utils.NewTextProcessor); err != nil {
		return nil, err
	}

	// Register classifier
	if err := container.Provide(func() core.Classifier {
		return classifier.New()
	}); err != nil {
		return nil, err
	}

	// Register CLI filter
	if err := container.Provide(func(f *factory.FilterFactory) *filter.CliFilter {
		return f.CreateCliFilter(out)
	}); err != nil {
		return nil, err
	}

	return container, nil
}

// loadCLIConfig reads the config file when one is given, then lets command
// line flags override it
func loadCLIConfig(flags *CLIFlags, logger *zap.Logger) (*config.Config, error) {
	var cfg *config.Config
	if flags.ConfigFile != "" {
		loaded, err := config.Load(flags.ConfigFile)
		if err != nil {
			return nil, err
		}
		logger.Info("Loaded configuration from file", zap.String("file", loaded.GetViper().ConfigFileUsed()))
		cfg = loaded
	} else {
		cfg = config.NewFromViper(config.NewEmptyViper())
	}

	v := cfg.GetViper()
	if flags.Verbose {
		v.Set("cli.verbose", true)
	}
	if flags.Whitelist != "" {
		domains := strings.Split(flags.Whitelist, ",")
		for i, domain := range domains {
			domains[i] = strings.TrimSpace(domain)
		}
		v.Set("whitelist.domains", domains)
	}

	return cfg, nil
}

// OpenInput returns the message source named by the flags, defaulting to stdin
func OpenInput(flags *CLIFlags) (io.ReadCloser, error) {
	if flags.InputFile == "" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(flags.InputFile)
}
