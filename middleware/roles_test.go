package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Kushalvgowda/Food-Chain-API/models"
)

func testContext(user *models.User) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if user != nil {
		SetCurrentUser(c, user)
	}
	return c, w
}

func userWith(groups ...string) *models.User {
	u := &models.User{ID: 1, Username: "u"}
	for _, name := range groups {
		u.Groups = append(u.Groups, models.Group{Name: name})
	}
	return u
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name     string
		user     *models.User
		required []string
		want     int
	}{
		{"manager allowed", userWith(models.GroupManager), []string{models.GroupManager}, 0},
		{"customer forbidden", userWith(), []string{models.GroupManager}, http.StatusForbidden},
		{"crew forbidden for manager route", userWith(models.GroupDeliveryCrew), []string{models.GroupManager}, http.StatusForbidden},
		{"either role passes", userWith(models.GroupDeliveryCrew), []string{models.GroupManager, models.GroupDeliveryCrew}, 0},
		{"unauthenticated", nil, []string{models.GroupManager}, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		c, w := testContext(tt.user)
		RequireRole(tt.required...)(c)
		if tt.want == 0 {
			if c.IsAborted() {
				t.Errorf("%s: request aborted with %d", tt.name, w.Code)
			}
		} else if w.Code != tt.want {
			t.Errorf("%s: status = %d, want %d", tt.name, w.Code, tt.want)
		}
	}
}

func TestRequireCustomer(t *testing.T) {
	tests := []struct {
		name string
		user *models.User
		want int
	}{
		{"plain user is a customer", userWith(), 0},
		{"manager is not a customer", userWith(models.GroupManager), http.StatusForbidden},
		{"crew is not a customer", userWith(models.GroupDeliveryCrew), http.StatusForbidden},
		{"unauthenticated", nil, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		c, w := testContext(tt.user)
		RequireCustomer(c)
		if tt.want == 0 {
			if c.IsAborted() {
				t.Errorf("%s: request aborted with %d", tt.name, w.Code)
			}
		} else if w.Code != tt.want {
			t.Errorf("%s: status = %d, want %d", tt.name, w.Code, tt.want)
		}
	}
}

func TestRequireAdminOrRole(t *testing.T) {
	admin := &models.User{ID: 2, Username: "root", IsStaff: true}

	tests := []struct {
		name string
		user *models.User
		want int
	}{
		{"admin passes", admin, 0},
		{"manager passes", userWith(models.GroupManager), 0},
		{"customer forbidden", userWith(), http.StatusForbidden},
	}
	for _, tt := range tests {
		c, w := testContext(tt.user)
		RequireAdminOrRole(models.GroupManager)(c)
		if tt.want == 0 {
			if c.IsAborted() {
				t.Errorf("%s: request aborted with %d", tt.name, w.Code)
			}
		} else if w.Code != tt.want {
			t.Errorf("%s: status = %d, want %d", tt.name, w.Code, tt.want)
		}
	}
}

func TestRequireAdmin(t *testing.T) {
	c, w := testContext(userWith(models.GroupManager))
	RequireAdmin(c)
	if w.Code != http.StatusForbidden {
		t.Errorf("manager on admin route: status = %d, want 403", w.Code)
	}

	c, w = testContext(&models.User{ID: 3, IsStaff: true})
	RequireAdmin(c)
	if c.IsAborted() {
		t.Errorf("admin aborted with %d", w.Code)
	}
}
