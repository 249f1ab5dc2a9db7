package nutrition

import (
	"context"
	"sort"
	"sync"
	"time"
)

type memoryRepository struct {
	mu     sync.RWMutex
	meals  map[int64]Meal
	nextID int64
}

// NewMemoryRepository builds an in-memory meal store for development and tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{meals: make(map[int64]Meal), nextID: 1}
}

func (r *memoryRepository) Create(_ context.Context, m Meal) (Meal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.ID = r.nextID
	r.nextID++
	r.meals[m.ID] = m
	return m, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id int64) (Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.meals[id]
	if !ok {
		return Meal{}, ErrNotFound
	}
	return m, nil
}

func (r *memoryRepository) ListByUser(_ context.Context, userID int64) ([]Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	meals := make([]Meal, 0)
	for _, m := range r.meals {
		if m.UserID == userID {
			meals = append(meals, m)
		}
	}
	sortByMealDateDesc(meals)
	return meals, nil
}

func (r *memoryRepository) ListByUserBetween(_ context.Context, userID int64, from, to time.Time) ([]Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	meals := make([]Meal, 0)
	for _, m := range r.meals {
		if m.UserID == userID && !m.MealDate.Before(from) && !m.MealDate.After(to) {
			meals = append(meals, m)
		}
	}
	sortByMealDateDesc(meals)
	return meals, nil
}

func (r *memoryRepository) Update(_ context.Context, m Meal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.meals[m.ID]; !ok {
		return ErrNotFound
	}
	r.meals[m.ID] = m
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.meals[id]; !ok {
		return ErrNotFound
	}
	delete(r.meals, id)
	return nil
}

func sortByMealDateDesc(meals []Meal) {
	sort.Slice(meals, func(i, j int) bool {
		return meals[i].MealDate.After(meals[j].MealDate)
	})
}
