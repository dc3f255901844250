package filter

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mikey/spam-detector-api/internal/classifier"
	"github.com/mikey/spam-detector-api/internal/core"
	"github.com/mikey/spam-detector-api/internal/core/mocks"
	"github.com/mikey/spam-detector-api/internal/utils"
	"github.com/mikey/spam-detector-api/internal/whitelist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const spamMessage = "From: promo@lottery.example\r\n" +
	"To: you@example.com\r\n" +
	"Subject: WINNER\r\n" +
	"\r\n" +
	"CONGRATULATIONS!!! claim your FREE MONEY now!!!\r\n"

func newTestFilter(c core.Classifier, domains []string, out *bytes.Buffer, verbose bool) *CliFilter {
	logger := zap.NewNop()
	return NewCliFilter(c, whitelist.NewChecker(domains, logger), utils.NewTextProcessor(logger), logger, out, verbose)
}

func TestProcessMessage_Spam(t *testing.T) {
	var out bytes.Buffer
	f := newTestFilter(classifier.New(), nil, &out, false)

	verdict, err := f.ProcessMessage(context.Background(), strings.NewReader(spamMessage))
	require.NoError(t, err)

	assert.False(t, verdict.Whitelisted)
	assert.True(t, verdict.Result.IsSpam)
	assert.Equal(t, 12, verdict.Result.Score)
	assert.Equal(t, core.RiskHigh, verdict.Result.RiskLevel)

	report := out.String()
	assert.Contains(t, report, "From: promo@lottery.example")
	assert.Contains(t, report, "To: you@example.com")
	assert.Contains(t, report, "Is spam: true")
	assert.Contains(t, report, "Confidence: 1.000")
	assert.Contains(t, report, "Risk level: high")
	assert.Contains(t, report, "Score: 12")
	assert.Contains(t, report, "Indicators: ")
	assert.NotContains(t, report, "Body preview")
}

func TestProcessMessage_WhitelistedSkipsClassifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	// No expectations: the classifier must not be called.
	c := mocks.NewMockClassifier(ctrl)

	var out bytes.Buffer
	f := newTestFilter(c, []string{"lottery.example"}, &out, false)

	verdict, err := f.ProcessMessage(context.Background(), strings.NewReader(spamMessage))
	require.NoError(t, err)

	assert.True(t, verdict.Whitelisted)
	assert.False(t, verdict.Result.IsSpam)
	assert.Contains(t, out.String(), "Is spam: false (sender domain is whitelisted)")
}

func TestProcessEmail_NormalizesAndPreviews(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mocks.NewMockClassifier(ctrl)
	c.EXPECT().Classify("Hello", "short body").Return(core.ScoreResult{Confidence: 0.1, RiskLevel: core.RiskLow, Score: 1})

	var out bytes.Buffer
	f := newTestFilter(c, nil, &out, true)

	_, err := f.ProcessEmail(context.Background(), &core.Email{From: "a@b.c", Subject: "  Hello ", Body: "\nshort body\n"})
	require.NoError(t, err)

	report := out.String()
	assert.Contains(t, report, "Body preview:\nshort body\n")
	assert.Contains(t, report, "Body length: 10 characters")
	assert.Contains(t, report, "Indicators: none")
}

func TestProcessEmail_CancelledContext(t *testing.T) {
	var out bytes.Buffer
	f := newTestFilter(classifier.New(), nil, &out, false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.ProcessEmail(ctx, &core.Email{Subject: "hi"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestProcessMessage_ParseError(t *testing.T) {
	var out bytes.Buffer
	f := newTestFilter(classifier.New(), nil, &out, false)

	_, err := f.ProcessMessage(context.Background(), strings.NewReader("garbage"))
	assert.Error(t, err)
}
