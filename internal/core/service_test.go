package core_test

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mikey/spam-detector-api/internal/core"
	"github.com/mikey/spam-detector-api/internal/core/mocks"
	"github.com/mikey/spam-detector-api/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type serviceFixture struct {
	service    *core.DetectionService
	classifier *mocks.MockClassifier
	stats      *mocks.MockStatsAccumulator
}

func newServiceFixture(t *testing.T) *serviceFixture {
	ctrl := gomock.NewController(t)
	logger := zap.NewNop()

	classifier := mocks.NewMockClassifier(ctrl)
	stats := mocks.NewMockStatsAccumulator(ctrl)
	return &serviceFixture{
		service:    core.NewDetectionService(classifier, stats, utils.NewTextProcessor(logger), logger),
		classifier: classifier,
		stats:      stats,
	}
}

func TestDetect_ClassifiesAndRecords(t *testing.T) {
	f := newServiceFixture(t)

	result := core.ScoreResult{IsSpam: true, Confidence: 0.8, RiskLevel: core.RiskHigh, Score: 8}
	f.classifier.EXPECT().Classify("Win big", "claim now").Return(result)
	f.stats.EXPECT().Record(result)

	resp, err := f.service.Detect(context.Background(), core.DetectRequest{Subject: "  Win big ", Body: "\nclaim now\t"})
	require.NoError(t, err)

	assert.True(t, resp.IsSpam)
	assert.Equal(t, 0.8, resp.Confidence)
	assert.Equal(t, resp.Confidence, resp.Probability)
	assert.Equal(t, core.RiskHigh, resp.RiskLevel)
	assert.False(t, resp.Timestamp.IsZero())
}

func TestDetect_RoundsReportedConfidence(t *testing.T) {
	f := newServiceFixture(t)

	result := core.ScoreResult{Confidence: 0.12345}
	f.classifier.EXPECT().Classify(gomock.Any(), gomock.Any()).Return(result)
	f.stats.EXPECT().Record(result)

	resp, err := f.service.Detect(context.Background(), core.DetectRequest{Subject: "s"})
	require.NoError(t, err)
	assert.Equal(t, 0.123, resp.Confidence)
}

func TestDetect_ValidationHappensBeforeAnyMutation(t *testing.T) {
	tests := []struct {
		name    string
		req     core.DetectRequest
		message string
	}{
		{
			name:    "both empty",
			req:     core.DetectRequest{},
			message: "At least email_subject or email_body is required",
		},
		{
			name:    "whitespace only",
			req:     core.DetectRequest{Subject: "   ", Body: "\n\t"},
			message: "At least email_subject or email_body is required",
		},
		{
			name:    "subject too long",
			req:     core.DetectRequest{Subject: strings.Repeat("s", core.MaxSubjectLength+1)},
			message: "Email content exceeds maximum length",
		},
		{
			name:    "body too long",
			req:     core.DetectRequest{Body: strings.Repeat("b", core.MaxBodyLength+1)},
			message: "Email content exceeds maximum length",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No expectations: any call to the classifier or stats fails the test.
			f := newServiceFixture(t)

			_, err := f.service.Detect(context.Background(), tt.req)

			require.Error(t, err)
			assert.True(t, core.IsValidationError(err))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestDetect_LengthLimitsCountCharacters(t *testing.T) {
	f := newServiceFixture(t)

	subject := strings.Repeat("é", core.MaxSubjectLength)
	f.classifier.EXPECT().Classify(subject, "").Return(core.ScoreResult{})
	f.stats.EXPECT().Record(gomock.Any())

	_, err := f.service.Detect(context.Background(), core.DetectRequest{Subject: subject})
	assert.NoError(t, err)
}

func TestDetectBatch_MixedItems(t *testing.T) {
	f := newServiceFixture(t)

	spam := core.ScoreResult{IsSpam: true, Confidence: 0.9, RiskLevel: core.RiskHigh}
	ham := core.ScoreResult{IsSpam: false, Confidence: 0.1, RiskLevel: core.RiskLow}
	gomock.InOrder(
		f.classifier.EXPECT().Classify("buy", "now").Return(spam),
		f.classifier.EXPECT().Classify("", "lunch?").Return(ham),
	)
	f.stats.EXPECT().RecordBatch([]core.ScoreResult{spam, ham})

	resp, err := f.service.DetectBatch(context.Background(), []core.BatchItem{
		{Subject: "buy", Body: "now"},
		{Subject: " ", Body: ""},
		{Body: "lunch?"},
		{Malformed: true},
	})
	require.NoError(t, err)

	require.Len(t, resp.Results, 4)
	assert.Equal(t, 4, resp.TotalProcessed)
	assert.Equal(t, 1, resp.SpamCount)
	assert.Equal(t, 1, resp.LegitimateCount)

	require.NotNil(t, resp.Results[0].IsSpam)
	assert.True(t, *resp.Results[0].IsSpam)
	assert.Equal(t, 0.9, *resp.Results[0].Confidence)
	assert.Equal(t, core.RiskHigh, resp.Results[0].RiskLevel)

	assert.Equal(t, core.BatchItemResult{Error: "Subject or body required"}, resp.Results[1])
	assert.Equal(t, core.BatchItemResult{Error: "Subject or body required"}, resp.Results[3])

	require.NotNil(t, resp.Results[2].IsSpam)
	assert.False(t, *resp.Results[2].IsSpam)
}

func TestDetectBatch_TooManyItems(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.service.DetectBatch(context.Background(), make([]core.BatchItem, core.MaxBatchSize+1))

	require.Error(t, err)
	assert.True(t, core.IsValidationError(err))
	assert.Equal(t, "Maximum 100 emails per batch request", err.Error())
}

func TestDetectBatch_Empty(t *testing.T) {
	f := newServiceFixture(t)
	f.stats.EXPECT().RecordBatch([]core.ScoreResult{})

	resp, err := f.service.DetectBatch(context.Background(), nil)
	require.NoError(t, err)

	assert.Empty(t, resp.Results)
	assert.Zero(t, resp.TotalProcessed)
}

func TestStatsAndReset(t *testing.T) {
	f := newServiceFixture(t)

	report := core.StatsReport{TotalAnalyzed: 2, SpamDetected: 1, LegitimateEmails: 1}
	gomock.InOrder(
		f.stats.EXPECT().Snapshot().Return(report),
		f.stats.EXPECT().Reset(),
	)

	assert.Equal(t, report, f.service.Stats())
	f.service.ResetStats()
}

func TestRiskFor(t *testing.T) {
	assert.Equal(t, core.RiskLow, core.RiskFor(0))
	assert.Equal(t, core.RiskLow, core.RiskFor(0.4))
	assert.Equal(t, core.RiskMedium, core.RiskFor(0.41))
	assert.Equal(t, core.RiskMedium, core.RiskFor(0.7))
	assert.Equal(t, core.RiskHigh, core.RiskFor(0.71))
	assert.Equal(t, core.RiskHigh, core.RiskFor(1))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.123, core.Round(0.12345, 3))
	assert.Equal(t, 33.33, core.Round(100.0/3, 2))
	assert.Equal(t, 0.0, core.Round(0, 3))
}
