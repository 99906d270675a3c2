package mock

import "context"

// MockGenerator is a test double for ai.Generator.
// It allows custom behavior injection via function fields.
type MockGenerator struct {
	// GenerateFunc is called by Generate if set.
	// If nil, returns a canned response.
	GenerateFunc func(ctx context.Context, prompt string, maxTokens int) (string, error)

	callCount   int
	lastPrompt  string
	lastMaxToks int
}

// NewMockGenerator creates a mock generator with a canned default response.
// Note: Returns concrete type to allow test assertions via GetMockGenerator().
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// Generate records the call and returns either the injected behavior's result
// or a canned summary string.
func (m *MockGenerator) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	m.callCount++
	m.lastPrompt = prompt
	m.lastMaxToks = maxTokens

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt, maxTokens)
	}

	return "Reviews in this period are mixed, with service speed the most common concern.", nil
}

// CallCount returns the number of times Generate was called.
func (m *MockGenerator) CallCount() int {
	return m.callCount
}

// LastPrompt returns the prompt passed to the most recent Generate call.
func (m *MockGenerator) LastPrompt() string {
	return m.lastPrompt
}

// LastMaxTokens returns the token cap passed to the most recent Generate call.
func (m *MockGenerator) LastMaxTokens() int {
	return m.lastMaxToks
}

// Reset clears the recorded state and custom functions.
func (m *MockGenerator) Reset() {
	m.callCount = 0
	m.lastPrompt = ""
	m.lastMaxToks = 0
	m.GenerateFunc = nil
}
