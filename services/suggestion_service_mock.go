package services

import (
	"context"
	"fmt"
	"sync"
)

// MockSuggestionService is a mock implementation of SuggestionService for testing
type MockSuggestionService struct {
	mu          sync.Mutex
	suggestions map[string]string
	failWith    error
	callCount   int
}

// NewMockSuggestionService creates a new mock suggestion service
func NewMockSuggestionService() *MockSuggestionService {
	return &MockSuggestionService{
		suggestions: make(map[string]string),
	}
}

// SetAsMockForTesting sets this mock as the global suggestion service instance for testing
func (m *MockSuggestionService) SetAsMockForTesting() {
	SetSuggestionService(m)
}

// StubSuggestion registers the description returned for an item name.
func (m *MockSuggestionService) StubSuggestion(itemName, description string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.suggestions[itemName] = description
}

// FailWith makes every subsequent call return err.
func (m *MockSuggestionService) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWith = err
}

// CallCount returns how many times SuggestDescription was invoked.
func (m *MockSuggestionService) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// SuggestDescription returns the stubbed description for the item name.
func (m *MockSuggestionService) SuggestDescription(ctx context.Context, itemName string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount++

	if m.failWith != nil {
		return "", m.failWith
	}
	if description, ok := m.suggestions[itemName]; ok {
		return description, nil
	}
	return fmt.Sprintf("A delicious %s prepared with care.", itemName), nil
}
