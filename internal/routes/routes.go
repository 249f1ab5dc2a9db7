package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/EnesKotay/Fitness-App/internal/auth"
	"github.com/EnesKotay/Fitness-App/internal/config"
	"github.com/EnesKotay/Fitness-App/internal/exercise"
	"github.com/EnesKotay/Fitness-App/internal/middleware"
	"github.com/EnesKotay/Fitness-App/internal/notification"
	"github.com/EnesKotay/Fitness-App/internal/nutrition"
	"github.com/EnesKotay/Fitness-App/internal/tracking"
	"github.com/EnesKotay/Fitness-App/internal/user"
	"github.com/EnesKotay/Fitness-App/internal/workout"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Enforce DB/Redis presence outside of dev, even though main also checks.
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	// Health
	RegisterHealthRoutes(app, d)

	// Repositories
	var users user.Repository
	var meals nutrition.Repository
	var workouts workout.Repository
	var records tracking.Repository
	var exercises exercise.Repository
	if d.DB != nil {
		users = user.NewPostgresRepository(d.DB)
		meals = nutrition.NewPostgresRepository(d.DB)
		workouts = workout.NewPostgresRepository(d.DB)
		records = tracking.NewPostgresRepository(d.DB)
		exercises = exercise.NewPostgresRepository(d.DB)
	} else {
		users = user.NewMemoryRepository()
		meals = nutrition.NewMemoryRepository()
		workouts = workout.NewMemoryRepository()
		records = tracking.NewMemoryRepository()
		exercises = exercise.NewMemoryRepository()
	}

	// Services and handlers
	tokens := auth.NewTokenService(d.Cfg.JWTSecret, d.Cfg.TokenTTL)
	notifier := notification.NewLoggerNotifier(d.Logger)
	authSvc := auth.NewService(users, tokens, notifier)
	authHandler := auth.NewHandler(authSvc)
	nutritionHandler := nutrition.NewHandler(nutrition.NewService(meals, users, d.Cache, d.Cfg.CalorieCacheTTL))
	workoutHandler := workout.NewHandler(workout.NewService(workouts, users))
	trackingHandler := tracking.NewHandler(tracking.NewService(records, users))
	exerciseHandler := exercise.NewHandler(exercises)

	// API routes
	api := app.Group("/api")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	// Public routes. These must be registered before the bearer group is
	// created: the group installs its middleware on the /api prefix, and
	// Fiber runs handlers in registration order.
	RegisterAuthRoutes(api, authHandler)
	RegisterExerciseRoutes(api, exerciseHandler)

	// Protected routes. Handlers behind this group additionally enforce
	// that the path user matches the token user.
	protected := api.Group("", middleware.BearerAuth(tokens))
	RegisterProfileRoutes(protected, authHandler)
	RegisterNutritionRoutes(protected, nutritionHandler)
	RegisterWorkoutRoutes(protected, workoutHandler)
	RegisterTrackingRoutes(protected, trackingHandler)

	return nil
}
