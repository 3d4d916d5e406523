package services

import (
	"sync"
)

// MockPrinter is a mock Printer that captures printed documents for testing
type MockPrinter struct {
	mu       sync.Mutex
	jobs     [][]byte
	failWith error
}

// NewMockPrinter creates a new mock printer
func NewMockPrinter() *MockPrinter {
	return &MockPrinter{}
}

// FailWith makes every subsequent print return err.
func (m *MockPrinter) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWith = err
}

// Jobs returns the captured print payloads.
func (m *MockPrinter) Jobs() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	jobs := make([][]byte, len(m.jobs))
	copy(jobs, m.jobs)
	return jobs
}

// Print captures the payload.
func (m *MockPrinter) Print(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	payload := make([]byte, len(data))
	copy(payload, data)
	m.jobs = append(m.jobs, payload)
	return nil
}

// IsConnected always reports a connected printer.
func (m *MockPrinter) IsConnected() bool {
	return true
}
