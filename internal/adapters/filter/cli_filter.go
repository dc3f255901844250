// Package filter adapts email input sources to the classifier.
package filter

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mikey/spam-detector-api/internal/core"
	"github.com/mikey/spam-detector-api/internal/utils"
	"github.com/mikey/spam-detector-api/internal/whitelist"
	"go.uber.org/zap"
)

// previewChars is how much of the body is shown in verbose mode
const previewChars = 500

// Verdict is the outcome of scoring one message from the command line
type Verdict struct {
	Email       *core.Email
	Whitelisted bool
	Result      core.ScoreResult
	Duration    time.Duration
}

// CliFilter implements a command-line interface for spam detection
type CliFilter struct {
	classifier    core.Classifier
	whitelist     *whitelist.Checker
	textProcessor *utils.TextProcessor
	logger        *zap.Logger
	out           io.Writer
	verbose       bool
}

// NewCliFilter creates a new CLI filter writing its report to out
func NewCliFilter(
	classifier core.Classifier,
	checker *whitelist.Checker,
	textProcessor *utils.TextProcessor,
	logger *zap.Logger,
	out io.Writer,
	verbose bool,
) *CliFilter {
	return &CliFilter{
		classifier:    classifier,
		whitelist:     checker,
		textProcessor: textProcessor,
		logger:        logger,
		out:           out,
		verbose:       verbose,
	}
}

// ProcessMessage parses a raw RFC 822 message and processes it
func (f *CliFilter) ProcessMessage(ctx context.Context, r io.Reader) (*Verdict, error) {
	email, err := ParseEmail(r)
	if err != nil {
		return nil, err
	}
	return f.ProcessEmail(ctx, email)
}

// ProcessEmail scores an email and displays the results
func (f *CliFilter) ProcessEmail(ctx context.Context, email *core.Email) (*Verdict, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.logger.Debug("Processing email", zap.String("sender", email.From))

	subject := f.textProcessor.Normalize(email.Subject)
	body := f.textProcessor.Normalize(email.Body)

	fmt.Fprintf(f.out, "\n=== Email Summary ===\n")
	fmt.Fprintf(f.out, "From: %s\n", email.From)
	fmt.Fprintf(f.out, "To: %s\n", strings.Join(email.To, ", "))
	fmt.Fprintf(f.out, "Subject: %s\n", subject)
	fmt.Fprintf(f.out, "Body length: %d characters\n", f.textProcessor.Length(body))
	if f.verbose {
		fmt.Fprintf(f.out, "\nBody preview:\n%s\n", f.textProcessor.Preview(body, previewChars))
	}

	verdict := &Verdict{Email: email}
	start := time.Now()

	if f.whitelist != nil && f.whitelist.IsWhitelisted(email.From) {
		verdict.Whitelisted = true
		verdict.Result = core.ScoreResult{RiskLevel: core.RiskLow}
		verdict.Duration = time.Since(start)

		fmt.Fprintf(f.out, "\n=== Results ===\n")
		fmt.Fprintf(f.out, "Is spam: false (sender domain is whitelisted)\n")
		fmt.Fprintf(f.out, "Processing time: %v\n", verdict.Duration)
		return verdict, nil
	}

	verdict.Result = f.classifier.Classify(subject, body)
	verdict.Duration = time.Since(start)

	indicators := "none"
	if len(verdict.Result.Indicators) > 0 {
		indicators = strings.Join(verdict.Result.Indicators, ", ")
	}

	fmt.Fprintf(f.out, "\n=== Results ===\n")
	fmt.Fprintf(f.out, "Is spam: %t\n", verdict.Result.IsSpam)
	fmt.Fprintf(f.out, "Confidence: %.3f\n", verdict.Result.Confidence)
	fmt.Fprintf(f.out, "Risk level: %s\n", verdict.Result.RiskLevel)
	fmt.Fprintf(f.out, "Score: %d\n", verdict.Result.Score)
	fmt.Fprintf(f.out, "Indicators: %s\n", indicators)
	fmt.Fprintf(f.out, "Processing time: %v\n", verdict.Duration)

	return verdict, nil
}
