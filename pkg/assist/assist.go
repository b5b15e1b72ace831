// Package assist implements the assistant features: menu recommendations,
// a canned chatbot, sentiment scoring and menu search. All of it is
// keyword-based; an OpenAI key only flips the health flag, the replies are
// always the keyword fallback.
package assist

// Service holds the assistant configuration.
type Service struct {
	openAIKey string
}

// New builds a Service. An empty key is fine; everything degrades to the
// keyword fallbacks.
func New(openAIKey string) *Service {
	return &Service{openAIKey: openAIKey}
}

// HasOpenAI reports whether an API key is configured.
func (s *Service) HasOpenAI() bool {
	return s.openAIKey != ""
}
