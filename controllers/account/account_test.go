package accountControllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRegisterAndLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)

	r := gin.New()
	r.POST("/auth/register", RegisterHandler(db))
	r.POST("/auth/token", LoginHandler(db, "test-secret", time.Hour))

	register := `{"username":"alice","email":"alice@example.com","password":"supersecret"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(register))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d, want 201: %s", w.Code, w.Body.String())
	}

	// duplicate username is rejected
	req = httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(register))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("duplicate register status = %d, want 400", w.Code)
	}

	login := `{"username":"alice","password":"supersecret"}`
	req = httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(login))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "access") {
		t.Errorf("login response should carry a token, got %s", w.Body.String())
	}

	wrong := `{"username":"alice","password":"wrongpass"}`
	req = httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(wrong))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad password status = %d, want 401", w.Code)
	}
}
