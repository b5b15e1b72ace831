package assist

import "strings"

// ChatReply is a canned chatbot answer with follow-up suggestions.
type ChatReply struct {
	Response         string   `json:"response"`
	SuggestedActions []string `json:"suggested_actions"`
}

// keyword groups checked in order; the first match wins.
var chatRules = []struct {
	keywords []string
	reply    ChatReply
}{
	{
		keywords: []string{"hours", "open", "close", "time"},
		reply: ChatReply{
			Response:         "We're open Monday-Friday: 11AM-10PM, Saturday-Sunday: 10AM-11PM. How can I assist you further?",
			SuggestedActions: []string{"Make a reservation", "View menu"},
		},
	},
	{
		keywords: []string{"menu", "food", "dish"},
		reply: ChatReply{
			Response:         "We have a diverse menu including appetizers, main courses, desserts, and beverages. Would you like to see our menu or get personalized recommendations?",
			SuggestedActions: []string{"View menu", "Get recommendations"},
		},
	},
	{
		keywords: []string{"reservation", "book", "table"},
		reply: ChatReply{
			Response:         "I'd be happy to help you make a reservation! You can book a table through our reservation form. What date and time works for you?",
			SuggestedActions: []string{"Make a reservation"},
		},
	},
	{
		keywords: []string{"delivery", "order", "takeout"},
		reply: ChatReply{
			Response:         "We offer both delivery and pickup options! You can place an order online and choose your preferred method. Would you like to see our menu?",
			SuggestedActions: []string{"View menu", "Place an order"},
		},
	},
}

var chatDefault = ChatReply{
	Response:         "Thank you for your message! I'm here to help with information about our menu, hours, reservations, and ordering. What would you like to know?",
	SuggestedActions: []string{"View menu", "Make a reservation", "Contact us"},
}

// Chat returns a keyword-matched canned reply.
func (s *Service) Chat(message string) ChatReply {
	lower := strings.ToLower(message)
	for _, rule := range chatRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.reply
			}
		}
	}
	return chatDefault
}
