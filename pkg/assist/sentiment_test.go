package assist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeSentiment(t *testing.T) {
	s := New("")

	tests := []struct {
		name string
		text string
		want string
	}{
		{"positive", "The pasta was delicious and the service excellent!", SentimentPositive},
		{"negative", "Terrible experience, the food was awful.", SentimentNegative},
		{"neutral no keywords", "We came in on a Tuesday around seven.", SentimentNeutral},
		{"tie is neutral", "The starter was delicious but the main was awful.", SentimentNeutral},
		{"case insensitive", "AMAZING food, LOVE this place", SentimentPositive},
		{"empty", "", SentimentNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.AnalyzeSentiment(tt.text))
		})
	}
}
