package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	authUtils "civicseva-be/utils"

	"github.com/gin-gonic/gin"
)

func protectedRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := []gin.HandlerFunc{AuthMiddleware()}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		role, _ := c.Get("role")
		c.JSON(http.StatusOK, gin.H{"role": role})
	})
	r.GET("/protected", handlers...)
	return r
}

func get(r *gin.Engine, modify func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if modify != nil {
		modify(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareCookie(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := authUtils.GenerateRoleToken("citizen")
	if err != nil {
		t.Fatalf("GenerateRoleToken returned error: %v", err)
	}

	w := get(protectedRouter(), func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
	})
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestAuthMiddlewareBearerHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := authUtils.GenerateRoleToken("admin")
	if err != nil {
		t.Fatalf("GenerateRoleToken returned error: %v", err)
	}

	w := get(protectedRouter(), func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestAuthMiddlewareRejects(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if w := get(protectedRouter(), nil); w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", w.Code)
	}

	w := get(protectedRouter(), func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: "not-a-jwt"})
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status = %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "signing-secret")
	token, err := authUtils.GenerateRoleToken("citizen")
	if err != nil {
		t.Fatalf("GenerateRoleToken returned error: %v", err)
	}

	t.Setenv("JWT_SECRET", "different-secret")
	w := get(protectedRouter(), func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestRequireRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	citizenToken, err := authUtils.GenerateRoleToken("citizen")
	if err != nil {
		t.Fatalf("GenerateRoleToken returned error: %v", err)
	}
	adminToken, err := authUtils.GenerateRoleToken("admin")
	if err != nil {
		t.Fatalf("GenerateRoleToken returned error: %v", err)
	}

	adminOnly := protectedRouter("admin")

	w := get(adminOnly, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: citizenToken})
	})
	if w.Code != http.StatusForbidden {
		t.Errorf("citizen on admin route: status = %d, want 403", w.Code)
	}

	w = get(adminOnly, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: adminToken})
	})
	if w.Code != http.StatusOK {
		t.Errorf("admin on admin route: status = %d, body %s", w.Code, w.Body.String())
	}
}
