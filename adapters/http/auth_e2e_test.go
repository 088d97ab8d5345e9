package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"devfolio/adapters/persistence"
	authUC "devfolio/internal/application/usecase/auth"
	"devfolio/internal/config"
	"devfolio/internal/domain/user"
	"devfolio/pkg/auth"
	"devfolio/pkg/logger"
)

// memoryDenylist keeps revoked token IDs in-process so the E2E suite only
// needs Postgres.
type memoryDenylist struct {
	mu      sync.Mutex
	revoked map[string]struct{}
}

func newMemoryDenylist() *memoryDenylist {
	return &memoryDenylist{revoked: make(map[string]struct{})}
}

func (d *memoryDenylist) Revoke(_ context.Context, jti string, _ time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.revoked[jti] = struct{}{}
	return nil
}

func (d *memoryDenylist) IsRevoked(_ context.Context, jti string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.revoked[jti]
	return ok, nil
}

type AuthE2ETestSuite struct {
	suite.Suite
	Router   *gin.Engine
	testUser user.User
	testPass string
}

func (s *AuthE2ETestSuite) SetupSuite() {
	cfg, err := config.LoadConfig("../..")
	if err != nil {
		s.T().Fatalf("Failed to load config for E2E test: %v", err)
	}

	dbPool, err := pgxpool.New(context.Background(), cfg.DB.DSN)
	if err != nil {
		s.T().Fatalf("E2E test failed to connect postgres: %v", err)
	}

	appLogger := logger.NewZapLogger("development")

	s.testPass = "e2e_test_password_123"
	hash, _ := auth.HashPassword(s.testPass)
	s.testUser = user.User{
		ID:           uuid.New(),
		Email:        "e2e_test@example.com",
		PasswordHash: hash,
	}
	query := `INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3) ON CONFLICT (email) DO UPDATE SET password_hash = $3`
	_, err = dbPool.Exec(context.Background(), query, s.testUser.ID, s.testUser.Email, s.testUser.PasswordHash)
	if err != nil {
		s.T().Fatalf("E2E test failed to seed user: %v", err)
	}

	userRepo := persistence.NewPostgresUserRepo(dbPool)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	denylist := newMemoryDenylist()

	registerUseCase := authUC.NewRegisterUseCase(userRepo, profileRepo, appLogger)
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	logoutUseCase := authUC.NewLogoutUseCase(denylist)
	authHandler := NewAuthHandler(registerUseCase, loginUseCase, logoutUseCase)
	authMiddleware := AuthMiddleware(jwtSvc, denylist, appLogger)
	errorMiddleware := ErrorMiddleware(appLogger)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(errorMiddleware)

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/signup", authHandler.Register)
			authGroup.POST("/signin", authHandler.Login)
			authGroup.POST("/signout", authMiddleware, authHandler.Logout)
		}

		dashboard := api.Group("/dashboard")
		dashboard.Use(authMiddleware)
		{
			dashboard.GET("/health-auth", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"status": "OK"})
			})
		}
	}

	s.Router = router
}

func (s *AuthE2ETestSuite) TearDownSuite() {}

func TestAuthE2E(t *testing.T) {
	if os.Getenv("E2E_TESTS") == "" {
		t.Skip("Skipping E2E tests. Set E2E_TESTS=1 to run.")
	}
	suite.Run(t, new(AuthE2ETestSuite))
}

func (s *AuthE2ETestSuite) postJSON(path string, body gin.H, token string) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	return rr
}

func (s *AuthE2ETestSuite) Test_Login_Flow() {
	rrBad := s.postJSON("/api/auth/signin", gin.H{"email": s.testUser.Email, "password": "wrongpassword"}, "")
	assert.Equal(s.T(), http.StatusUnauthorized, rrBad.Code)

	rrGood := s.postJSON("/api/auth/signin", gin.H{"email": s.testUser.Email, "password": s.testPass}, "")
	assert.Equal(s.T(), http.StatusOK, rrGood.Code)

	var loginResponse map[string]string
	json.Unmarshal(rrGood.Body.Bytes(), &loginResponse)
	accessToken := loginResponse["access_token"]
	assert.NotEmpty(s.T(), accessToken)

	reqAuth := httptest.NewRequest(http.MethodGet, "/api/dashboard/health-auth", nil)
	reqAuth.Header.Set("Authorization", "Bearer "+accessToken)
	rrAuth := httptest.NewRecorder()
	s.Router.ServeHTTP(rrAuth, reqAuth)
	assert.Equal(s.T(), http.StatusOK, rrAuth.Code)

	reqNoAuth := httptest.NewRequest(http.MethodGet, "/api/dashboard/health-auth", nil)
	rrNoAuth := httptest.NewRecorder()
	s.Router.ServeHTTP(rrNoAuth, reqNoAuth)
	assert.Equal(s.T(), http.StatusUnauthorized, rrNoAuth.Code)
}

func (s *AuthE2ETestSuite) Test_Logout_RevokesToken() {
	rr := s.postJSON("/api/auth/signin", gin.H{"email": s.testUser.Email, "password": s.testPass}, "")
	assert.Equal(s.T(), http.StatusOK, rr.Code)

	var loginResponse map[string]string
	json.Unmarshal(rr.Body.Bytes(), &loginResponse)
	accessToken := loginResponse["access_token"]
	assert.NotEmpty(s.T(), accessToken)

	rrLogout := s.postJSON("/api/auth/signout", gin.H{}, accessToken)
	assert.Equal(s.T(), http.StatusNoContent, rrLogout.Code)

	// The same token no longer opens the dashboard.
	reqAfter := httptest.NewRequest(http.MethodGet, "/api/dashboard/health-auth", nil)
	reqAfter.Header.Set("Authorization", "Bearer "+accessToken)
	rrAfter := httptest.NewRecorder()
	s.Router.ServeHTTP(rrAfter, reqAfter)
	assert.Equal(s.T(), http.StatusUnauthorized, rrAfter.Code)
}
