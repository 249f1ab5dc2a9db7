package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EnesKotay/Fitness-App/internal/config"
	"github.com/EnesKotay/Fitness-App/internal/logging"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Config{
		AppName:         "Fitness-App",
		AppEnv:          "development",
		Port:            "8080",
		JWTSecret:       "test-secret-test-secret-test-secret!",
		TokenTTL:        time.Hour,
		ShutdownPeriod:  time.Second,
		CalorieCacheTTL: time.Minute,
	}
	srv, err := New(cfg, nil, nil, logging.Discard())
	require.NoError(t, err)
	return srv
}

func doJSON(t *testing.T, srv *Server, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(payload))
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := srv.App().Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var decoded map[string]any
	if len(raw) > 0 && strings.HasPrefix(strings.TrimSpace(string(raw)), "{") {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp, decoded
}

func register(t *testing.T, srv *Server, email, password, name string) (string, int64) {
	t.Helper()
	resp, body := doJSON(t, srv, fiber.MethodPost, "/api/auth/register", "", map[string]string{
		"email": email, "password": password, "name": name,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "body: %v", body)

	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	userObj, _ := body["user"].(map[string]any)
	require.NotNil(t, userObj)
	id, _ := userObj["id"].(float64)
	return token, int64(id)
}

func TestRegisterLoginAndProfileAccess(t *testing.T) {
	srv := newTestServer(t)

	// Registration normalizes the email before storing and echoing it.
	resp, body := doJSON(t, srv, fiber.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "A@Test.com", "password": "secret1", "name": "Ava",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "body: %v", body)
	userObj := body["user"].(map[string]any)
	assert.Equal(t, "a@test.com", userObj["email"])
	assert.NotEmpty(t, body["token"])
	userID := int64(userObj["id"].(float64))

	// Wrong password and unknown email collapse into the same 401.
	resp, body = doJSON(t, srv, fiber.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "a@test.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Email veya şifre hatalı!", body["error"])

	resp, body = doJSON(t, srv, fiber.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "unknown@test.com", "password": "secret1",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Email veya şifre hatalı!", body["error"])

	// Case-folded login succeeds and the token works on /me.
	resp, body = doJSON(t, srv, fiber.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "A@TEST.COM", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "body: %v", body)
	token := body["token"].(string)

	resp, body = doJSON(t, srv, fiber.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, "body: %v", body)
	assert.Equal(t, "a@test.com", body["email"])
	assert.Equal(t, float64(userID), body["id"])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, srv, fiber.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Geçersiz veya eksik Authorization header", body["error"])

	resp, body = doJSON(t, srv, fiber.MethodGet, "/api/nutrition/users/1/meals", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Geçersiz token", body["error"])
}

func TestProfileReadCrossAccountForbidden(t *testing.T) {
	srv := newTestServer(t)

	tokenA, idA := register(t, srv, "a@test.com", "secret1", "Ava")
	_, idB := register(t, srv, "b@test.com", "secret2", "Ben")

	resp, body := doJSON(t, srv, fiber.MethodGet, fmt.Sprintf("/api/auth/user/%d", idB), tokenA, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Sadece kendi kullanıcı bilginize erişebilirsiniz.", body["error"])

	resp, body = doJSON(t, srv, fiber.MethodGet, fmt.Sprintf("/api/auth/user/%d", idA), tokenA, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, "body: %v", body)
	assert.Equal(t, "a@test.com", body["email"])
}

func TestMealLifecycleOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	token, userID := register(t, srv, "a@test.com", "secret1", "Ava")
	base := fmt.Sprintf("/api/nutrition/users/%d", userID)

	resp, body := doJSON(t, srv, fiber.MethodPost, base+"/meals", token, map[string]any{
		"name": "Omlet", "mealType": "BREAKFAST", "calories": 350, "mealDate": "2024-01-26T09:00:00Z",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "body: %v", body)
	mealID := int64(body["id"].(float64))
	assert.Equal(t, float64(350), body["calories"])

	resp, body = doJSON(t, srv, fiber.MethodGet, base+"/calories?date=2024-01-26", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, "body: %v", body)
	assert.Equal(t, "2024-01-26", body["date"])
	assert.Equal(t, float64(350), body["totalCalories"])

	resp, body = doJSON(t, srv, fiber.MethodGet, base+"/calories?date=26-01-2024", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Geçersiz tarih formatı. Örnek: 2024-01-26", body["error"])

	resp, body = doJSON(t, srv, fiber.MethodPut, fmt.Sprintf("%s/meals/%d", base, mealID), token, map[string]any{
		"calories": 420,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "body: %v", body)
	assert.Equal(t, float64(420), body["calories"])
	assert.Equal(t, "Omlet", body["name"])

	resp, _ = doJSON(t, srv, fiber.MethodDelete, fmt.Sprintf("%s/meals/%d", base, mealID), token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body = doJSON(t, srv, fiber.MethodDelete, fmt.Sprintf("%s/meals/%d", base, mealID), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Yemek kaydı bulunamadı veya yetkiniz yok!", body["error"])
}

func TestResourcePathsEnforceSelf(t *testing.T) {
	srv := newTestServer(t)

	tokenA, _ := register(t, srv, "a@test.com", "secret1", "Ava")
	_, idB := register(t, srv, "b@test.com", "secret2", "Ben")

	// Another user's resource collection is off limits regardless of content.
	resp, body := doJSON(t, srv, fiber.MethodGet, fmt.Sprintf("/api/nutrition/users/%d/meals", idB), tokenA, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Sadece kendi kullanıcı bilginize erişebilirsiniz.", body["error"])

	resp, body = doJSON(t, srv, fiber.MethodGet, fmt.Sprintf("/api/workouts/users/%d", idB), tokenA, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Sadece kendi kullanıcı bilginize erişebilirsiniz.", body["error"])

	resp, body = doJSON(t, srv, fiber.MethodGet, fmt.Sprintf("/api/tracking/users/%d/weight-records", idB), tokenA, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Sadece kendi kullanıcı bilginize erişebilirsiniz.", body["error"])

	// A non-numeric path id reads as a missing user, not a malformed request.
	resp, body = doJSON(t, srv, fiber.MethodGet, "/api/nutrition/users/abc/meals", tokenA, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Kullanıcı bulunamadı!", body["error"])
}

func TestWorkoutLifecycleOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	token, userID := register(t, srv, "a@test.com", "secret1", "Ava")
	base := fmt.Sprintf("/api/workouts/users/%d", userID)

	resp, body := doJSON(t, srv, fiber.MethodPost, base, token, map[string]any{
		"name": "Göğüs günü", "workoutType": "STRENGTH", "durationMinutes": 60,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "body: %v", body)
	workoutID := int64(body["id"].(float64))

	resp, body = doJSON(t, srv, fiber.MethodGet, fmt.Sprintf("%s/%d", base, workoutID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, "body: %v", body)
	assert.Equal(t, "Göğüs günü", body["name"])

	resp, body = doJSON(t, srv, fiber.MethodGet, fmt.Sprintf("%s/%d", base, workoutID+100), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Antrenman bulunamadı veya yetkiniz yok!", body["error"])
}

func TestWeightRecordOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	token, userID := register(t, srv, "a@test.com", "secret1", "Ava")
	base := fmt.Sprintf("/api/tracking/users/%d/weight-records", userID)

	resp, body := doJSON(t, srv, fiber.MethodPost, base, token, map[string]any{"weight": 82.5})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "body: %v", body)
	assert.Equal(t, 82.5, body["weight"])

	resp, body = doJSON(t, srv, fiber.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, "body: %v", body)
	// /me keeps its compact shape; the synced weight shows on the record list.
	resp, _ = doJSON(t, srv, fiber.MethodGet, base, token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestPublicRoutesNeedNoToken(t *testing.T) {
	srv := newTestServer(t)

	// Registration and login must work without any Authorization header,
	// even though the bearer middleware guards the rest of /api.
	resp, body := doJSON(t, srv, fiber.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "a@test.com", "password": "secret1", "name": "Ava",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "body: %v", body)

	resp, body = doJSON(t, srv, fiber.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "a@test.com", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "body: %v", body)

	resp, _ = doJSON(t, srv, fiber.MethodGet, "/api/auth/test", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, srv, fiber.MethodGet, "/api/exercises/groups", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, srv, fiber.MethodGet, "/api/exercises?muscleGroup=CHEST", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The guard still holds for everything registered behind it.
	resp, body = doJSON(t, srv, fiber.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Geçersiz veya eksik Authorization header", body["error"])
}

func TestPublicEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, srv, fiber.MethodGet, "/api/auth/test", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Auth endpoint çalışıyor!", body["message"])

	resp, body = doJSON(t, srv, fiber.MethodGet, "/api/exercises?muscleGroup=", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "muscleGroup gerekli", body["error"])

	resp, _ = doJSON(t, srv, fiber.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
