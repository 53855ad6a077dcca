package storage

import (
	"context"
	"sync"
	"time"

	"walletsync/internal/domain"
)

// MemoryStore keeps vendor records indexed by email and marketplace id, plus
// the reports of past batch runs. Records are cloned on the way in and out so
// in-run mutation never leaks into persisted state before a save.
type MemoryStore struct {
	byEmail map[string]*domain.VendorRecord
	byShop  map[int64]*domain.VendorRecord
	runs    map[string]*domain.RunReport
	mu      sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byEmail: make(map[string]*domain.VendorRecord),
		byShop:  make(map[int64]*domain.VendorRecord),
		runs:    make(map[string]*domain.RunReport),
	}
}

func (s *MemoryStore) FindByEmail(ctx context.Context, email string) (*domain.VendorRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, exists := s.byEmail[email]
	if !exists {
		return nil, domain.ErrVendorNotFound
	}

	return record.Clone(), nil
}

func (s *MemoryStore) FindByMarketplaceID(ctx context.Context, marketplaceID int64) (*domain.VendorRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, exists := s.byShop[marketplaceID]
	if !exists {
		return nil, domain.ErrVendorNotFound
	}

	return record.Clone(), nil
}

func (s *MemoryStore) Save(ctx context.Context, record *domain.VendorRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.save(record)

	return nil
}

func (s *MemoryStore) SaveAll(ctx context.Context, records []*domain.VendorRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range records {
		s.save(record)
	}

	return nil
}

func (s *MemoryStore) save(record *domain.VendorRecord) {
	stored := record.Clone()
	stored.UpdatedAt = time.Now()
	s.byEmail[stored.Email] = stored
	s.byShop[stored.MarketplaceID] = stored
}

func (s *MemoryStore) CreateRun(ctx context.Context, report *domain.RunReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.runs[report.ID] = report.Clone()

	return nil
}

func (s *MemoryStore) GetRun(ctx context.Context, runID string) (*domain.RunReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report, exists := s.runs[runID]
	if !exists {
		return nil, domain.ErrRunNotFound
	}

	return report.Clone(), nil
}

func (s *MemoryStore) UpdateRun(ctx context.Context, report *domain.RunReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.runs[report.ID]; !exists {
		return domain.ErrRunNotFound
	}

	s.runs[report.ID] = report.Clone()

	return nil
}
