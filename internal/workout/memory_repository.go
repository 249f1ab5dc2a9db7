package workout

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu       sync.RWMutex
	workouts map[int64]Workout
	nextID   int64
}

// NewMemoryRepository builds an in-memory workout store for development and tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{workouts: make(map[int64]Workout), nextID: 1}
}

func (r *memoryRepository) Create(_ context.Context, w Workout) (Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w.ID = r.nextID
	r.nextID++
	r.workouts[w.ID] = w
	return w, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id int64) (Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.workouts[id]
	if !ok {
		return Workout{}, ErrNotFound
	}
	return w, nil
}

func (r *memoryRepository) ListByUser(_ context.Context, userID int64) ([]Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	workouts := make([]Workout, 0)
	for _, w := range r.workouts {
		if w.UserID == userID {
			workouts = append(workouts, w)
		}
	}
	sort.Slice(workouts, func(i, j int) bool {
		return workouts[i].WorkoutDate.After(workouts[j].WorkoutDate)
	})
	return workouts, nil
}

func (r *memoryRepository) Update(_ context.Context, w Workout) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.workouts[w.ID]; !ok {
		return ErrNotFound
	}
	r.workouts[w.ID] = w
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.workouts[id]; !ok {
		return ErrNotFound
	}
	delete(r.workouts, id)
	return nil
}
