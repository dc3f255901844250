// Package classifier implements the keyword and pattern heuristic used to
// score email text.
//
// The score is an integer built from three sources:
//
//   - one point per occurrence of a spam phrase in the lower-cased text
//   - two points per match of a suspicious pattern in the original text
//   - a length penalty for very long or very short text
//
// Ten points or more is full confidence. The classifier holds no state and
// is safe for concurrent use.
package classifier

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mikey/spam-detector-api/internal/core"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	patternWeight      = 2
	longTextThreshold  = 2000
	longTextPenalty    = 2
	shortTextThreshold = 10
	shortTextPenalty   = 1
	fullScore          = 10.0
	spamThreshold      = 0.5
)

var spamKeywords = []string{
	"claim", "prize", "winner", "congratulations", "click here",
	"limited time", "urgent", "act now", "free money", "guaranteed",
	"risk free", "no obligation", "credit card", "bank account",
	"verify", "confirm identity", "update payment", "special offer",
	"unsubscribe", "viagra", "cialis", "pharmacy", "casino",
	"lottery", "inheritance", "nigerian prince", "weight loss",
}

type pattern struct {
	name string
	re   *regexp.Regexp
}

var suspiciousPatterns = []pattern{
	{name: "uppercase_run", re: regexp.MustCompile(`\b[A-Z]{5,}\b`)},
	{name: "exclamation_run", re: regexp.MustCompile(`!{2,}`)},
	{name: "dollar_amount", re: regexp.MustCompile(`\$+\d+`)},
	{name: "at_run", re: regexp.MustCompile(`@{2,}`)},
}

// Heuristic is the rule based classifier
type Heuristic struct{}

// New creates a heuristic classifier
func New() *Heuristic {
	return &Heuristic{}
}

// Classify implements core.Classifier
func (h *Heuristic) Classify(subject, body string) core.ScoreResult {
	// cases.Caser keeps state between calls, so one is made per call.
	lowered := cases.Lower(language.Und).String(subject + " " + body)

	score := 0
	var indicators []string

	for _, keyword := range spamKeywords {
		if n := strings.Count(lowered, keyword); n > 0 {
			score += n
			indicators = append(indicators, keyword)
		}
	}

	// Patterns run over the raw concatenation, without the separator.
	raw := subject + body
	for _, p := range suspiciousPatterns {
		if n := len(p.re.FindAllStringIndex(raw, -1)); n > 0 {
			score += n * patternWeight
			indicators = append(indicators, p.name)
		}
	}

	length := utf8.RuneCountInString(lowered)
	if length > longTextThreshold {
		score += longTextPenalty
		indicators = append(indicators, "long_text")
	}
	if length < shortTextThreshold {
		score += shortTextPenalty
		indicators = append(indicators, "short_text")
	}

	confidence := Confidence(score)
	return core.ScoreResult{
		IsSpam:     confidence > spamThreshold,
		Confidence: confidence,
		RiskLevel:  core.RiskFor(confidence),
		Score:      score,
		Indicators: indicators,
	}
}

// Confidence normalises a raw score into [0, 1]
func Confidence(score int) float64 {
	return math.Min(float64(score)/fullScore, 1.0)
}
