package customer_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend_savanna/pkg/database"
	"backend_savanna/pkg/models"
	"backend_savanna/pkg/testutil"

	"github.com/gin-gonic/gin"
)

func dashboardRequest(router *gin.Engine, token string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/customer/dashboard/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestDashboardGreetsOncePerDay(t *testing.T) {
	router := testutil.Setup(t)
	user := testutil.CreateUser(t, "amina@example.com", models.RoleOnlineCustomer)
	token := testutil.TokenFor(t, user)

	w := dashboardRequest(router, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var first struct {
		Greeting string `json:"greeting"`
	}
	testutil.DecodeBody(t, w, &first)
	if first.Greeting != "👋 Welcome back, Test!" {
		t.Errorf("first visit greeting = %q", first.Greeting)
	}

	// Carry the session cookie into the second visit.
	w = dashboardRequest(router, token, w.Result().Cookies())
	var second struct {
		Greeting string `json:"greeting"`
	}
	testutil.DecodeBody(t, w, &second)
	if second.Greeting != "" {
		t.Errorf("second visit greeting = %q, want empty", second.Greeting)
	}
}

func TestDashboardBirthdayMessage(t *testing.T) {
	router := testutil.Setup(t)
	user := testutil.CreateUser(t, "amina@example.com", models.RoleOnlineCustomer)

	birthday := time.Date(1994, time.Now().Month(), time.Now().Day(), 0, 0, 0, 0, time.UTC)
	profile := models.OnlineCustomerProfile{UserID: user.ID, Birthday: &birthday}
	if err := database.DB.Create(&profile).Error; err != nil {
		t.Fatal(err)
	}

	w := dashboardRequest(router, testutil.TokenFor(t, user), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Greeting string `json:"greeting"`
	}
	testutil.DecodeBody(t, w, &resp)
	if resp.Greeting != "🎉 Happy Birthday, Test!" {
		t.Errorf("greeting = %q", resp.Greeting)
	}
}

func TestDashboardStaffForbidden(t *testing.T) {
	router := testutil.Setup(t)
	cook := testutil.CreateUser(t, "cook@example.com", models.RoleCook)

	w := dashboardRequest(router, testutil.TokenFor(t, cook), nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}
