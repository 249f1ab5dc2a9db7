package exercise

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu        sync.RWMutex
	exercises []Exercise
}

// NewMemoryRepository builds an in-memory exercise catalog, optionally
// pre-seeded. Used in development and tests.
func NewMemoryRepository(seed ...Exercise) Repository {
	return &memoryRepository{exercises: append([]Exercise(nil), seed...)}
}

func (r *memoryRepository) ListMuscleGroups(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]struct{})
	groups := make([]string, 0)
	for _, e := range r.exercises {
		if _, dup := seen[e.MuscleGroup]; dup {
			continue
		}
		seen[e.MuscleGroup] = struct{}{}
		groups = append(groups, e.MuscleGroup)
	}
	sort.Strings(groups)
	return groups, nil
}

func (r *memoryRepository) ListByMuscleGroup(_ context.Context, muscleGroup string) ([]Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	exercises := make([]Exercise, 0)
	for _, e := range r.exercises {
		if e.MuscleGroup == muscleGroup {
			exercises = append(exercises, e)
		}
	}
	sort.Slice(exercises, func(i, j int) bool { return exercises[i].Name < exercises[j].Name })
	return exercises, nil
}
