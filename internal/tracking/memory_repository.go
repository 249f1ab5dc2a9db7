package tracking

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu      sync.RWMutex
	records map[int64]WeightRecord
	nextID  int64
}

// NewMemoryRepository builds an in-memory weight record store for development and tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{records: make(map[int64]WeightRecord), nextID: 1}
}

func (r *memoryRepository) Create(_ context.Context, rec WeightRecord) (WeightRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec.ID = r.nextID
	r.nextID++
	r.records[rec.ID] = rec
	return rec, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id int64) (WeightRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[id]
	if !ok {
		return WeightRecord{}, ErrNotFound
	}
	return rec, nil
}

func (r *memoryRepository) ListByUser(_ context.Context, userID int64) ([]WeightRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	records := make([]WeightRecord, 0)
	for _, rec := range r.records {
		if rec.UserID == userID {
			records = append(records, rec)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].RecordedAt.After(records[j].RecordedAt)
	})
	return records, nil
}

func (r *memoryRepository) Update(_ context.Context, rec WeightRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[rec.ID]; !ok {
		return ErrNotFound
	}
	r.records[rec.ID] = rec
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return ErrNotFound
	}
	delete(r.records, id)
	return nil
}
