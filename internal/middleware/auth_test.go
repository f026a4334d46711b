package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"integral-analytics/internal/model"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Info(ctx context.Context, arg ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Error(ctx context.Context, arg ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func TestAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := New(nopLogger{})

	newRouter := func(capture *model.Scope) *gin.Engine {
		r := gin.New()
		r.GET("/protected", mw.Auth(), func(c *gin.Context) {
			sc, ok := ScopeFromContext(c)
			if !ok {
				c.Status(http.StatusInternalServerError)
				return
			}
			*capture = sc
			c.Status(http.StatusOK)
		})
		return r
	}

	t.Run("header becomes scope", func(t *testing.T) {
		var got model.Scope
		r := newRouter(&got)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("X-User-ID", "u1")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if got.UserID != "u1" {
			t.Errorf("scope user = %q, want u1", got.UserID)
		}
	})

	t.Run("missing header rejected", func(t *testing.T) {
		var got model.Scope
		r := newRouter(&got)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
		if got.UserID != "" {
			t.Errorf("handler ran with scope %+v, want untouched", got)
		}
	})
}

func TestScopeFromContextMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if _, ok := ScopeFromContext(c); ok {
		t.Error("expected no scope on a fresh context")
	}
}
