package nutrition

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/EnesKotay/Fitness-App/internal/apperr"
	"github.com/EnesKotay/Fitness-App/internal/auth"
	"github.com/EnesKotay/Fitness-App/internal/user"
)

const mealNotFoundMsg = "Yemek kaydı bulunamadı veya yetkiniz yok!"

// Service exposes meal operations. Daily calorie totals are cached in Redis
// and invalidated whenever a meal for the affected day changes; the cache is
// optional and a nil client disables it.
type Service struct {
	meals    Repository
	users    user.Repository
	cache    *redis.Client
	cacheTTL time.Duration
	now      func() time.Time
}

// NewService builds a nutrition service instance.
func NewService(meals Repository, users user.Repository, cache *redis.Client, cacheTTL time.Duration) *Service {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &Service{meals: meals, users: users, cache: cache, cacheTTL: cacheTTL, now: time.Now}
}

// MealInput carries meal fields; nil pointers mean "not provided". Create
// substitutes zero values, update skips the field.
type MealInput struct {
	Name     *string
	MealType *string
	Calories *int
	Protein  *float64
	Carbs    *float64
	Fat      *float64
	MealDate *time.Time
	Notes    *string
}

// CreateMeal records a meal for the user, stamping ownership and timestamps.
func (s *Service) CreateMeal(ctx context.Context, userID int64, in MealInput) (Meal, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Meal{}, apperr.New(apperr.NotFound, "Kullanıcı bulunamadı!")
		}
		return Meal{}, err
	}

	now := s.now().UTC()
	m := Meal{
		UserID:    userID,
		MealDate:  now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Name != nil {
		m.Name = *in.Name
	}
	if in.MealType != nil {
		m.MealType = *in.MealType
	}
	if in.Calories != nil {
		m.Calories = *in.Calories
	}
	m.Protein = in.Protein
	m.Carbs = in.Carbs
	m.Fat = in.Fat
	if in.MealDate != nil {
		m.MealDate = in.MealDate.UTC()
	}
	if in.Notes != nil {
		m.Notes = *in.Notes
	}

	created, err := s.meals.Create(ctx, m)
	if err != nil {
		return Meal{}, err
	}
	s.invalidateCalories(ctx, userID, created.MealDate)
	return created, nil
}

// ListMeals returns all of the user's meals, newest first.
func (s *Service) ListMeals(ctx context.Context, userID int64) ([]Meal, error) {
	return s.meals.ListByUser(ctx, userID)
}

// MealsByDate returns the user's meals on the given calendar day.
func (s *Service) MealsByDate(ctx context.Context, userID int64, date time.Time) ([]Meal, error) {
	from, to := dayBounds(date)
	return s.meals.ListByUserBetween(ctx, userID, from, to)
}

// DailyCalories sums the calories of the user's meals on the given day,
// reading through the Redis cache when one is configured.
func (s *Service) DailyCalories(ctx context.Context, userID int64, date time.Time) (int, error) {
	key := caloriesKey(userID, date)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key).Result(); err == nil {
			if total, err := strconv.Atoi(cached); err == nil {
				return total, nil
			}
		}
	}

	meals, err := s.MealsByDate(ctx, userID, date)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, m := range meals {
		total += m.Calories
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, key, strconv.Itoa(total), s.cacheTTL).Err()
	}
	return total, nil
}

// UpdateMeal applies the provided fields to a meal the user owns. A missing
// meal and a meal owned by someone else report the same not-found outcome.
func (s *Service) UpdateMeal(ctx context.Context, userID, mealID int64, in MealInput) (Meal, error) {
	m, err := s.meals.FindByID(ctx, mealID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Meal{}, apperr.New(apperr.NotFound, mealNotFoundMsg)
		}
		return Meal{}, err
	}
	if err := auth.AuthorizeOwnership(userID, m.UserID, mealNotFoundMsg); err != nil {
		return Meal{}, err
	}

	oldDate := m.MealDate
	if in.Name != nil {
		m.Name = *in.Name
	}
	if in.MealType != nil {
		m.MealType = *in.MealType
	}
	if in.Calories != nil {
		m.Calories = *in.Calories
	}
	if in.Protein != nil {
		m.Protein = in.Protein
	}
	if in.Carbs != nil {
		m.Carbs = in.Carbs
	}
	if in.Fat != nil {
		m.Fat = in.Fat
	}
	if in.MealDate != nil {
		m.MealDate = in.MealDate.UTC()
	}
	if in.Notes != nil {
		m.Notes = *in.Notes
	}
	m.UpdatedAt = s.now().UTC()

	if err := s.meals.Update(ctx, m); err != nil {
		return Meal{}, err
	}
	s.invalidateCalories(ctx, userID, oldDate, m.MealDate)
	return m, nil
}

// DeleteMeal removes a meal the user owns.
func (s *Service) DeleteMeal(ctx context.Context, userID, mealID int64) error {
	m, err := s.meals.FindByID(ctx, mealID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperr.New(apperr.NotFound, mealNotFoundMsg)
		}
		return err
	}
	if err := auth.AuthorizeOwnership(userID, m.UserID, mealNotFoundMsg); err != nil {
		return err
	}
	if err := s.meals.Delete(ctx, mealID); err != nil {
		return err
	}
	s.invalidateCalories(ctx, userID, m.MealDate)
	return nil
}

func (s *Service) invalidateCalories(ctx context.Context, userID int64, dates ...time.Time) {
	if s.cache == nil {
		return
	}
	seen := make(map[string]struct{}, len(dates))
	keys := make([]string, 0, len(dates))
	for _, d := range dates {
		key := caloriesKey(userID, d)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	_ = s.cache.Del(ctx, keys...).Err()
}

func caloriesKey(userID int64, date time.Time) string {
	return fmt.Sprintf("calories:%d:%s", userID, date.UTC().Format("2006-01-02"))
}

func dayBounds(date time.Time) (time.Time, time.Time) {
	d := date.UTC()
	from := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, time.UTC)
	return from, to
}
