package services

import (
	"fmt"
	"sync"

	"github.com/lamanila-kanishka/pos-api/models"
	"github.com/lamanila-kanishka/pos-api/receipt"
)

// MockDocumentService is a mock implementation of DocumentService for testing
type MockDocumentService struct {
	mu       sync.Mutex
	exported []MockExport
	failWith error
}

// MockExport records one ExportOrder call.
type MockExport struct {
	OrderID string
	Kind    receipt.Kind
}

// NewMockDocumentService creates a new mock document service
func NewMockDocumentService() *MockDocumentService {
	return &MockDocumentService{}
}

// SetAsMockForTesting sets this mock as the global document service instance for testing
func (m *MockDocumentService) SetAsMockForTesting() {
	SetDocumentService(m)
}

// FailWith makes every subsequent export return err.
func (m *MockDocumentService) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWith = err
}

// Exports returns the recorded export calls.
func (m *MockDocumentService) Exports() []MockExport {
	m.mu.Lock()
	defer m.mu.Unlock()
	exports := make([]MockExport, len(m.exported))
	copy(exports, m.exported)
	return exports
}

// ExportOrder records the call and returns a fake file path.
func (m *MockDocumentService) ExportOrder(order models.Order, kind receipt.Kind, settings models.PrintSettings) (string, error) {
	if len(order.Items) == 0 {
		return "", fmt.Errorf("cannot export an empty order")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return "", m.failWith
	}
	m.exported = append(m.exported, MockExport{OrderID: order.ID, Kind: kind})

	name := "Bill"
	if kind == receipt.KindKOT {
		name = "KOT"
	}
	return fmt.Sprintf("exports/%s_%s.pdf", name, order.ID), nil
}
