package assist

import "strings"

// Sentiment labels.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

var positiveWords = []string{"excellent", "amazing", "great", "wonderful", "fantastic", "love", "best", "delicious"}
var negativeWords = []string{"terrible", "awful", "bad", "worst", "horrible", "disappointed", "poor"}

// AnalyzeSentiment scores text by counting positive and negative keyword
// occurrences; a tie is neutral.
func (s *Service) AnalyzeSentiment(text string) string {
	lower := strings.ToLower(text)
	positive := 0
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			positive++
		}
	}
	negative := 0
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			negative++
		}
	}
	switch {
	case positive > negative:
		return SentimentPositive
	case negative > positive:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}
