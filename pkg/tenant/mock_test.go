package tenant_test

import (
	"context"
	"sync"

	"github.com/trasealla/crm-api/pkg/tenant"
)

// mockStore is an in-memory tenant.Store for middleware tests. Setting err
// makes every method fail with it, simulating an unreachable data store.
type mockStore struct {
	mu sync.Mutex

	subdomains map[string]int64
	records    map[int64]*tenant.Record
	subs       map[int64]*tenant.Subscription
	err        error

	subdomainCalls int
	recordCalls    int
	subCalls       int
}

func newMockStore() *mockStore {
	return &mockStore{
		subdomains: make(map[string]int64),
		records:    make(map[int64]*tenant.Record),
		subs:       make(map[int64]*tenant.Subscription),
	}
}

func (s *mockStore) FindIDBySubdomain(_ context.Context, subdomain string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subdomainCalls++
	if s.err != nil {
		return 0, s.err
	}
	return s.subdomains[subdomain], nil
}

func (s *mockStore) GetWithSubscription(_ context.Context, id int64) (*tenant.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recordCalls++
	if s.err != nil {
		return nil, s.err
	}
	rec, ok := s.records[id]
	if !ok {
		return nil, tenant.ErrTenantNotFound
	}
	return rec, nil
}

func (s *mockStore) ActiveSubscription(_ context.Context, tenantID int64) (*tenant.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subCalls++
	if s.err != nil {
		return nil, s.err
	}
	sub, ok := s.subs[tenantID]
	if !ok {
		return nil, tenant.ErrNoActiveSubscription
	}
	return sub, nil
}
