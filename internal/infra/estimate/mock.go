package estimate

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"permit-quotation-service/internal/domain/quotation"
	"permit-quotation-service/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

// MockEstimate is the state MockProvider keeps per estimate.
type MockEstimate struct {
	ID     string
	Draft  commands.EstimateDraft
	Total  decimal.Decimal
	Sent   bool
	Status string
}

// MockProvider is an in-memory estimate provider for local runs and e2e tests.
type MockProvider struct {
	mu        sync.Mutex
	seq       int
	estimates map[string]*MockEstimate
}

func NewMockProvider() *MockProvider {
	return &MockProvider{estimates: make(map[string]*MockEstimate)}
}

func (p *MockProvider) CreateEstimate(_ context.Context, draft commands.EstimateDraft) (*commands.EstimateReceipt, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.seq++
	e := &MockEstimate{
		ID:     fmt.Sprintf("EST-%05d", p.seq),
		Draft:  draft,
		Total:  quotation.Total(draft.Items),
		Status: "Draft",
	}
	p.estimates[e.ID] = e
	slog.Debug("mock estimate created", "estimate_id", e.ID, "total", e.Total.StringFixed(2))
	return &commands.EstimateReceipt{ID: e.ID, Total: e.Total}, nil
}

func (p *MockProvider) UpdateEstimate(_ context.Context, estimateID string, draft commands.EstimateDraft) (*commands.EstimateReceipt, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	e, ok := p.estimates[estimateID]
	if !ok {
		return nil, commands.ErrEstimateGone
	}
	e.Draft = draft
	e.Total = quotation.Total(draft.Items)
	return &commands.EstimateReceipt{ID: e.ID, Total: e.Total}, nil
}

func (p *MockProvider) DeleteEstimate(_ context.Context, estimateID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.estimates[estimateID]; !ok {
		return commands.ErrEstimateGone
	}
	delete(p.estimates, estimateID)
	return nil
}

func (p *MockProvider) MarkSent(_ context.Context, estimateID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	e, ok := p.estimates[estimateID]
	if !ok {
		return commands.ErrEstimateGone
	}
	e.Sent = true
	e.Status = "Sent"
	return nil
}

func (p *MockProvider) UpdateStatus(_ context.Context, estimateID string, action quotation.Action) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	e, ok := p.estimates[estimateID]
	if !ok {
		return commands.ErrEstimateGone
	}
	e.Status = "Rejected"
	if action == quotation.ActionApprove {
		e.Status = "Accepted"
	}
	return nil
}

// Get returns a copy of the stored estimate.
func (p *MockProvider) Get(estimateID string) (MockEstimate, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	e, ok := p.estimates[estimateID]
	if !ok {
		return MockEstimate{}, false
	}
	return *e, true
}
