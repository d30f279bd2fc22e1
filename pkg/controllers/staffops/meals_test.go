package staffops_test

import (
	"net/http"
	"strconv"
	"testing"

	"backend_savanna/pkg/database"
	"backend_savanna/pkg/models"
	"backend_savanna/pkg/testutil"
)

func TestSetAvailability(t *testing.T) {
	router := testutil.Setup(t)
	waiter := testutil.CreateUser(t, "waiter@example.com", models.RoleWaiter)
	meal := testutil.CreateMeal(t, "Pilau", 8.00)

	w := testutil.Request(t, router, http.MethodPatch,
		"/api/meals/"+strconv.Itoa(meal.ID)+"/availability/",
		map[string]any{"is_available": false}, testutil.TokenFor(t, waiter))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var reloaded models.Meal
	database.DB.First(&reloaded, meal.ID)
	if reloaded.IsAvailable {
		t.Error("meal should be unavailable")
	}
}

func TestSetAvailabilityCookAllowed(t *testing.T) {
	router := testutil.Setup(t)
	cook := testutil.CreateUser(t, "cook@example.com", models.RoleCook)
	meal := testutil.CreateMeal(t, "Pilau", 8.00)

	w := testutil.Request(t, router, http.MethodPatch,
		"/api/meals/"+strconv.Itoa(meal.ID)+"/availability/",
		map[string]any{"is_available": false}, testutil.TokenFor(t, cook))
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestSetAvailabilityUnknownMeal(t *testing.T) {
	router := testutil.Setup(t)
	waiter := testutil.CreateUser(t, "waiter@example.com", models.RoleWaiter)

	w := testutil.Request(t, router, http.MethodPatch, "/api/meals/999/availability/",
		map[string]any{"is_available": true}, testutil.TokenFor(t, waiter))
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestSetAvailabilityForbiddenForCustomer(t *testing.T) {
	router := testutil.Setup(t)
	customer := testutil.CreateUser(t, "amina@example.com", models.RoleOnlineCustomer)
	meal := testutil.CreateMeal(t, "Pilau", 8.00)

	w := testutil.Request(t, router, http.MethodPatch,
		"/api/meals/"+strconv.Itoa(meal.ID)+"/availability/",
		map[string]any{"is_available": false}, testutil.TokenFor(t, customer))
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

func TestWaiterDashboardAveragesAndComments(t *testing.T) {
	router := testutil.Setup(t)
	waiter := testutil.CreateUser(t, "waiter@example.com", models.RoleWaiter)
	customer := testutil.CreateUser(t, "amina@example.com", models.RoleOnlineCustomer)
	meal := testutil.CreateMeal(t, "Pilau", 8.00)

	for i, rating := range []int{5, 4} {
		order := models.Order{CustomerID: customer.ID, MealID: meal.ID, Status: models.OrderStatusDelivered}
		if err := database.DB.Create(&order).Error; err != nil {
			t.Fatal(err)
		}
		fb := models.Feedback{
			OrderID: order.ID, MealID: meal.ID, CustomerID: customer.ID,
			Rating: rating, Comment: []string{"excellent", ""}[i],
		}
		if err := database.DB.Create(&fb).Error; err != nil {
			t.Fatal(err)
		}
	}

	w := testutil.Request(t, router, http.MethodGet, "/api/waiter/dashboard/", nil, testutil.TokenFor(t, waiter))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp []struct {
		Name          string   `json:"name"`
		AverageRating *float64 `json:"average_rating"`
		TopFeedback   []string `json:"top_feedback"`
	}
	testutil.DecodeBody(t, w, &resp)

	if len(resp) != 1 {
		t.Fatalf("got %d meals, want 1", len(resp))
	}
	if resp[0].AverageRating == nil || *resp[0].AverageRating != 4.5 {
		t.Errorf("average_rating = %v, want 4.5", resp[0].AverageRating)
	}
	if len(resp[0].TopFeedback) != 1 || resp[0].TopFeedback[0] != "excellent" {
		t.Errorf("top_feedback = %v", resp[0].TopFeedback)
	}
}

func TestWaiterDashboardNoFeedback(t *testing.T) {
	router := testutil.Setup(t)
	waiter := testutil.CreateUser(t, "waiter@example.com", models.RoleWaiter)
	testutil.CreateMeal(t, "Chapati", 2.00)

	w := testutil.Request(t, router, http.MethodGet, "/api/waiter/dashboard/", nil, testutil.TokenFor(t, waiter))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp []struct {
		AverageRating *float64 `json:"average_rating"`
	}
	testutil.DecodeBody(t, w, &resp)
	if len(resp) != 1 || resp[0].AverageRating != nil {
		t.Errorf("expected nil average for unrated meal, got %+v", resp)
	}
}
