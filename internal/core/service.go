package core

import (
	"context"
	"fmt"
	"time"

	"github.com/mikey/spam-detector-api/internal/utils"
	"go.uber.org/zap"
)

// DetectionService is the core service for spam detection. Rate limiting
// happens in front of it, at the transport boundary.
type DetectionService struct {
	classifier    Classifier
	stats         StatsAccumulator
	textProcessor *utils.TextProcessor
	logger        *zap.Logger
	now           func() time.Time
}

// NewDetectionService creates a new detection service
func NewDetectionService(
	classifier Classifier,
	stats StatsAccumulator,
	textProcessor *utils.TextProcessor,
	logger *zap.Logger,
) *DetectionService {
	return &DetectionService{
		classifier:    classifier,
		stats:         stats,
		textProcessor: textProcessor,
		logger:        logger,
		now:           time.Now,
	}
}

// Detect scores a single email and records it in the statistics
func (s *DetectionService) Detect(ctx context.Context, req DetectRequest) (*DetectResponse, error) {
	subject := s.textProcessor.Normalize(req.Subject)
	body := s.textProcessor.Normalize(req.Body)

	if subject == "" && body == "" {
		return nil, NewValidationError("At least email_subject or email_body is required")
	}
	if s.textProcessor.Length(subject) > MaxSubjectLength || s.textProcessor.Length(body) > MaxBodyLength {
		return nil, NewValidationError("Email content exceeds maximum length")
	}

	result := s.classifier.Classify(subject, body)
	s.stats.Record(result)

	s.logger.Debug("Email classified",
		zap.Bool("is_spam", result.IsSpam),
		zap.Float64("confidence", result.Confidence),
		zap.Int("score", result.Score),
		zap.Strings("indicators", result.Indicators))

	confidence := Round(result.Confidence, 3)
	return &DetectResponse{
		IsSpam:      result.IsSpam,
		Confidence:  confidence,
		Probability: confidence,
		RiskLevel:   result.RiskLevel,
		Timestamp:   s.now(),
	}, nil
}

// DetectBatch scores every item of a batch. Items without content get an
// error slot instead of failing the whole batch.
func (s *DetectionService) DetectBatch(ctx context.Context, items []BatchItem) (*BatchResponse, error) {
	if len(items) > MaxBatchSize {
		return nil, NewValidationError(fmt.Sprintf("Maximum %d emails per batch request", MaxBatchSize))
	}

	results := make([]BatchItemResult, 0, len(items))
	scored := make([]ScoreResult, 0, len(items))
	spamCount := 0

	for _, item := range items {
		subject := s.textProcessor.Normalize(item.Subject)
		body := s.textProcessor.Normalize(item.Body)
		if item.Malformed || (subject == "" && body == "") {
			results = append(results, BatchItemResult{Error: "Subject or body required"})
			continue
		}

		result := s.classifier.Classify(subject, body)
		scored = append(scored, result)
		if result.IsSpam {
			spamCount++
		}

		isSpam := result.IsSpam
		confidence := Round(result.Confidence, 3)
		results = append(results, BatchItemResult{
			IsSpam:     &isSpam,
			Confidence: &confidence,
			RiskLevel:  result.RiskLevel,
		})
	}

	s.stats.RecordBatch(scored)

	s.logger.Debug("Batch classified",
		zap.Int("items", len(items)),
		zap.Int("scored", len(scored)),
		zap.Int("spam", spamCount))

	return &BatchResponse{
		Results:         results,
		TotalProcessed:  len(results),
		SpamCount:       spamCount,
		LegitimateCount: len(scored) - spamCount,
		Timestamp:       s.now(),
	}, nil
}

// Stats returns the current statistics report
func (s *DetectionService) Stats() StatsReport {
	return s.stats.Snapshot()
}

// ResetStats clears the statistics
func (s *DetectionService) ResetStats() {
	s.stats.Reset()
	s.logger.Info("Statistics reset")
}
