package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecoquest/ecoquest-backend/internal/model"
	"github.com/ecoquest/ecoquest-backend/internal/repository"
	"github.com/ecoquest/ecoquest-backend/internal/service"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuth(t *testing.T, ttl time.Duration) (service.AuthService, string) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&model.User{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	svc := service.NewAuthService(repository.NewUserRepository(db), "test-secret", ttl, bcrypt.MinCost)
	_, token, err := svc.Register(context.Background(), "alice", "alice@example.com", "pw")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	return svc, token
}

func invoke(t *testing.T, mw *AuthMiddleware, authz string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	h := mw.RequireAuth(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec, called
}

func TestRequireAuth(t *testing.T) {
	svc, token := setupAuth(t, time.Hour)
	mw := NewAuthMiddleware(svc)

	t.Run("valid token", func(t *testing.T) {
		rec, called := invoke(t, mw, "Bearer "+token)
		if !called || rec.Code != http.StatusOK {
			t.Fatalf("expected pass-through, got code=%d called=%v", rec.Code, called)
		}
	})

	t.Run("missing header", func(t *testing.T) {
		rec, called := invoke(t, mw, "")
		if called || rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got code=%d called=%v", rec.Code, called)
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		rec, called := invoke(t, mw, "Token abc")
		if called || rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got code=%d called=%v", rec.Code, called)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		rec, called := invoke(t, mw, "Bearer garbage")
		if called || rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got code=%d called=%v", rec.Code, called)
		}
	})
}

func TestRequireAuthExpiredToken(t *testing.T) {
	svc, token := setupAuth(t, -time.Hour)
	mw := NewAuthMiddleware(svc)

	rec, called := invoke(t, mw, "Bearer "+token)
	if called || rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got code=%d called=%v", rec.Code, called)
	}
}

func TestRequireAuthSetsUser(t *testing.T) {
	svc, token := setupAuth(t, time.Hour)
	mw := NewAuthMiddleware(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := mw.RequireAuth(func(c echo.Context) error {
		u, ok := c.Get(UserContextKey).(*model.User)
		if !ok || u.Username != "alice" {
			t.Fatalf("user not set on context: %v", c.Get(UserContextKey))
		}
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
