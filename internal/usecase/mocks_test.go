package usecase

import (
	"context"
	"sync"

	"github.com/DRSN-tech/storefront/internal/domain"
)

// MockGenerativeInfra implements GenerativeInfra for testing
type MockGenerativeInfra struct {
	mu      sync.Mutex
	Reply   string
	Err     error
	Block   chan struct{} // если не nil, Generate ждёт закрытия канала
	Calls   int
	LastReq *GenerateReq
}

func (m *MockGenerativeInfra) Generate(ctx context.Context, req *GenerateReq) (string, error) {
	if m.Block != nil {
		select {
		case <-m.Block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	m.LastReq = req
	return m.Reply, m.Err
}

func (m *MockGenerativeInfra) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls
}

// MockProductRepository implements ProductRepository for testing
type MockProductRepository struct {
	Products []domain.Product
	Err      error
	Calls    int
}

func (m *MockProductRepository) ListProducts(_ context.Context) ([]domain.Product, error) {
	m.Calls++
	return m.Products, m.Err
}

// MockCacheRepository implements CacheRepository for testing
type MockCacheRepository struct {
	mu       sync.Mutex
	Products []domain.Product
	GetErr   error
	SetErr   error
	Stored   []domain.Product
	SetCalls int
}

func (m *MockCacheRepository) GetCatalog(_ context.Context) ([]domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Products, m.GetErr
}

func (m *MockCacheRepository) SetCatalog(_ context.Context, products []domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCalls++
	m.Stored = products
	return m.SetErr
}

func (m *MockCacheRepository) StoredCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Stored)
}

// MockCheckoutPublisher implements CheckoutPublisher for testing
type MockCheckoutPublisher struct {
	mu     sync.Mutex
	Events []*domain.CheckoutEvent
	Err    error
}

func (m *MockCheckoutPublisher) PublishCheckout(_ context.Context, event *domain.CheckoutEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, event)
	return m.Err
}

// MockImagesInfra implements ImagesInfra for testing
type MockImagesInfra struct {
	Prefix string
	Err    error
}

func (m *MockImagesInfra) ResolveImage(_ context.Context, ref string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Prefix + ref, nil
}

// MockAssistant implements AssistantUC for testing
type MockAssistant struct {
	mu        sync.Mutex
	Reply     string
	Release   chan struct{}
	Texts     []string
	Histories [][]domain.Turn
}

func (m *MockAssistant) Converse(_ context.Context, text string, history []domain.Turn) string {
	if m.Release != nil {
		<-m.Release
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Texts = append(m.Texts, text)
	m.Histories = append(m.Histories, history)
	return m.Reply
}
