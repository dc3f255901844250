package factory

import (
	"io"
	"strings"

	"github.com/mikey/spam-detector-api/internal/adapters/filter"
	"github.com/mikey/spam-detector-api/internal/config"
	"github.com/mikey/spam-detector-api/internal/core"
	"github.com/mikey/spam-detector-api/internal/utils"
	"github.com/mikey/spam-detector-api/internal/whitelist"
	"go.uber.org/zap"
)

// FilterFactory creates email filters based on configuration
type FilterFactory struct {
	cfg           *config.Config
	logger        *zap.Logger
	classifier    core.Classifier
	textProcessor *utils.TextProcessor
}

// NewFilterFactory creates a new filter factory
func NewFilterFactory(cfg *config.Config, logger *zap.Logger, classifier core.Classifier, textProcessor *utils.TextProcessor) *FilterFactory {
	return &FilterFactory{
		cfg:           cfg,
		logger:        logger,
		classifier:    classifier,
		textProcessor: textProcessor,
	}
}

// CreateCliFilter creates a CLI filter printing its report to out
func (f *FilterFactory) CreateCliFilter(out io.Writer) *filter.CliFilter {
	checker := whitelist.NewChecker(f.WhitelistedDomains(), f.logger)
	return filter.NewCliFilter(f.classifier, checker, f.textProcessor, f.logger, out, f.cfg.GetBool("cli.verbose"))
}

// WhitelistedDomains returns the configured sender domains that skip scoring
func (f *FilterFactory) WhitelistedDomains() []string {
	var domains []string
	for _, d := range f.cfg.GetStringSlice("whitelist.domains") {
		// Env values arrive as a single comma separated string
		for _, part := range strings.Split(d, ",") {
			if part = strings.TrimSpace(part); part != "" {
				domains = append(domains, part)
			}
		}
	}
	return domains
}
