package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/comitanigiacomo/progress-tracker/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/progress-tracker/internal/adapters/handler/http"
	"github.com/comitanigiacomo/progress-tracker/internal/adapters/repository"
	"github.com/comitanigiacomo/progress-tracker/internal/core/domain"
	"github.com/comitanigiacomo/progress-tracker/internal/core/services"
)

const ownerPassword = "correct-horse-battery"

type testServer struct {
	router  *gin.Engine
	repo    *repository.InMemorySessionRepository
	catalog *repository.InMemoryExerciseCatalog
	tokens  *services.TokenService
}

func newTestServer(t *testing.T, withAuth bool) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cal := domain.NewCalendar(time.UTC)
	repo := repository.NewInMemorySessionRepository()
	catalog := repository.NewInMemoryExerciseCatalog()
	resultCache := cache.NewMemoryCache(1)

	sessionSvc := services.NewSessionService(repo, resultCache, nil, cal)
	statsSvc := services.NewStatsService(repo, catalog, resultCache, cal)
	exerciseSvc := services.NewExerciseService(repo, catalog, resultCache, cal)

	deps := adapterHTTP.RouterDependencies{
		SessionHandler:  adapterHTTP.NewSessionHandler(sessionSvc, cal),
		StatsHandler:    adapterHTTP.NewStatsHandler(statsSvc),
		ExerciseHandler: adapterHTTP.NewExerciseHandler(exerciseSvc),
	}

	srv := &testServer{repo: repo, catalog: catalog}

	if withAuth {
		hash, err := bcrypt.GenerateFromPassword([]byte(ownerPassword), bcrypt.MinCost)
		require.NoError(t, err)

		srv.tokens = services.NewTokenService("handler-test-secret", "progress-tracker", time.Hour)
		authSvc := services.NewAuthService(domain.NewOwner("", string(hash)), srv.tokens)
		deps.AuthHandler = adapterHTTP.NewAuthHandler(authSvc)
		deps.TokenValidator = srv.tokens
	}

	srv.router = adapterHTTP.NewRouter(deps)
	return srv
}

func (s *testServer) do(t *testing.T, method, path string, body any, header ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

type sessionEnvelope struct {
	Session *domain.Session `json:"session"`
}

func pushPayload(date string, weight float64) map[string]any {
	return map[string]any{
		"date":         date,
		"body_weight":  80.5,
		"workout_type": "push",
		"workout": []map[string]any{
			{"name": "Bench Press", "sets": []map[string]any{
				{"weight": weight, "reps": 5},
				{"weight": weight - 10, "reps": 8},
			}},
		},
	}
}

func mustCreate(t *testing.T, s *testServer, payload map[string]any, header ...string) *domain.Session {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/v1/sessions", payload, header...)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[sessionEnvelope](t, w).Session
}
