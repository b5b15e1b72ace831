package assist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChatKeywordRouting(t *testing.T) {
	s := New("")

	tests := []struct {
		name          string
		message       string
		wantAction    string
		wantSubstring string
	}{
		{"hours", "What time do you close?", "Make a reservation", "open"},
		{"menu", "Can I see the menu?", "Get recommendations", "menu"},
		{"reservation", "I'd like to book a table for four", "Make a reservation", "reservation"},
		{"delivery", "Do you do takeout?", "Place an order", "delivery"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := s.Chat(tt.message)
			assert.Contains(t, reply.SuggestedActions, tt.wantAction)
			assert.Contains(t, reply.Response, tt.wantSubstring)
		})
	}
}

func TestChatDefaultReply(t *testing.T) {
	s := New("")
	reply := s.Chat("asdf qwerty")
	assert.Equal(t, chatDefault.Response, reply.Response)
	assert.Equal(t, chatDefault.SuggestedActions, reply.SuggestedActions)
}

func TestChatFirstMatchWins(t *testing.T) {
	s := New("")
	// "time" (hours group) appears before "menu" in the rule order
	reply := s.Chat("what time does the menu change?")
	assert.Contains(t, reply.Response, "open")
}
