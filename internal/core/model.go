package core

import (
	"time"
)

const (
	// MaxSubjectLength is the longest accepted subject, in characters
	MaxSubjectLength = 1000
	// MaxBodyLength is the longest accepted body, in characters
	MaxBodyLength = 10000
	// MaxBatchSize is the largest number of emails accepted in one batch request
	MaxBatchSize = 100
)

// RiskLevel is a coarse bucket of the spam confidence
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// RiskFor maps a confidence to its risk bucket. Both thresholds are strict,
// so 0.4 is low and 0.7 is medium.
func RiskFor(confidence float64) RiskLevel {
	switch {
	case confidence > 0.7:
		return RiskHigh
	case confidence > 0.4:
		return RiskMedium
	default:
		return RiskLow
	}
}

// Email represents an email message
type Email struct {
	From    string
	To      []string
	Subject string
	Body    string
	Headers map[string][]string
}

// ScoreResult represents the result of scoring a subject/body pair
type ScoreResult struct {
	IsSpam     bool
	Confidence float64
	RiskLevel  RiskLevel
	// Score is the raw heuristic score before normalisation
	Score int
	// Indicators lists the keywords and patterns that contributed to Score
	Indicators []string
}

// Stats holds the running tallies of every classified email
type Stats struct {
	TotalAnalyzed     int64
	SpamCount         int64
	LegitimateCount   int64
	AverageConfidence float64
}

// StatsReport is the externally reported view of Stats
type StatsReport struct {
	TotalAnalyzed     int64   `json:"total_emails_analyzed"`
	SpamDetected      int64   `json:"spam_detected"`
	LegitimateEmails  int64   `json:"legitimate_emails"`
	SpamPercentage    float64 `json:"spam_percentage"`
	AccuracyRate      float64 `json:"accuracy_rate"`
	AverageConfidence float64 `json:"average_confidence"`
}

// DetectRequest is a single email submitted for scoring
type DetectRequest struct {
	Subject string
	Body    string
}

// DetectResponse is the verdict for a single email
type DetectResponse struct {
	IsSpam      bool      `json:"is_spam"`
	Confidence  float64   `json:"confidence"`
	Probability float64   `json:"probability"`
	RiskLevel   RiskLevel `json:"risk_level"`
	Timestamp   time.Time `json:"timestamp"`
}

// BatchItem is one entry of a batch request. Malformed marks entries that
// could not be decoded into a subject/body pair.
type BatchItem struct {
	Subject   string
	Body      string
	Malformed bool
}

// BatchItemResult is either a verdict or an error message
type BatchItemResult struct {
	IsSpam     *bool     `json:"is_spam,omitempty"`
	Confidence *float64  `json:"confidence,omitempty"`
	RiskLevel  RiskLevel `json:"risk_level,omitempty"`
	Error      string    `json:"error,omitempty"`
}

// BatchResponse is the verdict for a whole batch
type BatchResponse struct {
	Results         []BatchItemResult `json:"results"`
	TotalProcessed  int               `json:"total_processed"`
	SpamCount       int               `json:"spam_count"`
	LegitimateCount int               `json:"legitimate_count"`
	Timestamp       time.Time         `json:"timestamp"`
}
