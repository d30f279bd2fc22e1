package customer_test

import (
	"net/http"
	"strconv"
	"testing"

	"backend_savanna/pkg/database"
	"backend_savanna/pkg/models"
	"backend_savanna/pkg/testutil"
)

func TestPlaceOrderOnlineCustomerIsDelivery(t *testing.T) {
	router := testutil.Setup(t)
	user := testutil.CreateUser(t, "amina@example.com", models.RoleOnlineCustomer)
	meal := testutil.CreateMeal(t, "Nyama Choma", 12.50)
	token := testutil.TokenFor(t, user)

	w := testutil.Request(t, router, http.MethodPost, "/api/orders/place/",
		map[string]any{"meal_id": meal.ID}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		OrderID int `json:"order_id"`
	}
	testutil.DecodeBody(t, w, &resp)

	var order models.Order
	if err := database.DB.First(&order, resp.OrderID).Error; err != nil {
		t.Fatalf("order not persisted: %v", err)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("status = %s, want pending", order.Status)
	}
	if !order.IsDelivery {
		t.Error("online customer orders must be delivery orders")
	}
	if order.CustomerID != user.ID {
		t.Errorf("customer_id = %d, want %d", order.CustomerID, user.ID)
	}
}

func TestPlaceOrderOnsiteCustomerIsPickup(t *testing.T) {
	router := testutil.Setup(t)
	user := testutil.CreateUser(t, "joseph@example.com", models.RoleOnsiteCustomer)
	meal := testutil.CreateMeal(t, "Ugali", 4.00)

	w := testutil.Request(t, router, http.MethodPost, "/api/orders/place/",
		map[string]any{"meal_id": meal.ID}, testutil.TokenFor(t, user))
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		OrderID int `json:"order_id"`
	}
	testutil.DecodeBody(t, w, &resp)

	var order models.Order
	database.DB.First(&order, resp.OrderID)
	if order.IsDelivery {
		t.Error("onsite customer orders must not be delivery orders")
	}
}

func TestPlaceOrderUnknownMeal(t *testing.T) {
	router := testutil.Setup(t)
	user := testutil.CreateUser(t, "amina@example.com", models.RoleOnlineCustomer)

	w := testutil.Request(t, router, http.MethodPost, "/api/orders/place/",
		map[string]any{"meal_id": 999}, testutil.TokenFor(t, user))
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestPlaceOrderForbiddenForStaff(t *testing.T) {
	router := testutil.Setup(t)
	waiter := testutil.CreateUser(t, "waiter@example.com", models.RoleWaiter)
	meal := testutil.CreateMeal(t, "Ugali", 4.00)

	w := testutil.Request(t, router, http.MethodPost, "/api/orders/place/",
		map[string]any{"meal_id": meal.ID}, testutil.TokenFor(t, waiter))
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

func TestPlaceOrderRequiresToken(t *testing.T) {
	router := testutil.Setup(t)
	meal := testutil.CreateMeal(t, "Ugali", 4.00)

	w := testutil.Request(t, router, http.MethodPost, "/api/orders/place/",
		map[string]any{"meal_id": meal.ID}, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestMyOrdersIncludesTip(t *testing.T) {
	router := testutil.Setup(t)
	user := testutil.CreateUser(t, "amina@example.com", models.RoleOnlineCustomer)
	meal := testutil.CreateMeal(t, "Pilau", 8.00)

	order := models.Order{
		CustomerID: user.ID,
		MealID:     meal.ID,
		Status:     models.OrderStatusDelivered,
		IsDelivery: true,
	}
	if err := database.DB.Create(&order).Error; err != nil {
		t.Fatal(err)
	}
	feedback := models.Feedback{
		OrderID: order.ID, MealID: meal.ID, CustomerID: user.ID,
		Rating: 5, Tip: 3.50, Comment: "great",
	}
	if err := database.DB.Create(&feedback).Error; err != nil {
		t.Fatal(err)
	}

	w := testutil.Request(t, router, http.MethodGet, "/api/orders/my/", nil, testutil.TokenFor(t, user))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp []struct {
		ID     int                `json:"id"`
		Meal   string             `json:"meal"`
		Status models.OrderStatus `json:"status"`
		Tip    float64            `json:"tip"`
	}
	testutil.DecodeBody(t, w, &resp)

	if len(resp) != 1 {
		t.Fatalf("got %d orders, want 1", len(resp))
	}
	if resp[0].Meal != "Pilau" || resp[0].Tip != 3.50 {
		t.Errorf("got %+v", resp[0])
	}
}

func TestMyOrdersScopedToCaller(t *testing.T) {
	router := testutil.Setup(t)
	alice := testutil.CreateUser(t, "alice@example.com", models.RoleOnlineCustomer)
	bob := testutil.CreateUser(t, "bob@example.com", models.RoleOnlineCustomer)
	meal := testutil.CreateMeal(t, "Chapati", 2.00)

	database.DB.Create(&models.Order{CustomerID: alice.ID, MealID: meal.ID, Status: models.OrderStatusPending})

	w := testutil.Request(t, router, http.MethodGet, "/api/orders/my/", nil, testutil.TokenFor(t, bob))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp []map[string]any
	testutil.DecodeBody(t, w, &resp)
	if len(resp) != 0 {
		t.Errorf("expected no orders for bob, got %d", len(resp))
	}
}

func TestChangeDeliveryPersonPendingOnly(t *testing.T) {
	router := testutil.Setup(t)
	user := testutil.CreateUser(t, "amina@example.com", models.RoleOnlineCustomer)
	courier := testutil.CreateUser(t, "courier@example.com", models.RoleDelivery)
	meal := testutil.CreateMeal(t, "Pilau", 8.00)
	token := testutil.TokenFor(t, user)

	pending := models.Order{CustomerID: user.ID, MealID: meal.ID, Status: models.OrderStatusPending, IsDelivery: true}
	preparing := models.Order{CustomerID: user.ID, MealID: meal.ID, Status: models.OrderStatusPreparing, IsDelivery: true}
	database.DB.Create(&pending)
	database.DB.Create(&preparing)

	w := testutil.Request(t, router, http.MethodPatch,
		"/api/orders/"+strconv.Itoa(pending.ID)+"/delivery-person/",
		map[string]any{"delivery_person_id": courier.ID}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("pending reassign status = %d, body = %s", w.Code, w.Body.String())
	}

	var reloaded models.Order
	database.DB.First(&reloaded, pending.ID)
	if reloaded.DeliveryPersonID == nil || *reloaded.DeliveryPersonID != courier.ID {
		t.Error("delivery person was not assigned")
	}

	w = testutil.Request(t, router, http.MethodPatch,
		"/api/orders/"+strconv.Itoa(preparing.ID)+"/delivery-person/",
		map[string]any{"delivery_person_id": courier.ID}, token)
	if w.Code != http.StatusConflict {
		t.Errorf("preparing reassign status = %d, want 409", w.Code)
	}
}

func TestChangeDeliveryPersonRejectsNonCourier(t *testing.T) {
	router := testutil.Setup(t)
	user := testutil.CreateUser(t, "amina@example.com", models.RoleOnlineCustomer)
	waiter := testutil.CreateUser(t, "waiter@example.com", models.RoleWaiter)
	meal := testutil.CreateMeal(t, "Pilau", 8.00)

	order := models.Order{CustomerID: user.ID, MealID: meal.ID, Status: models.OrderStatusPending, IsDelivery: true}
	database.DB.Create(&order)

	w := testutil.Request(t, router, http.MethodPatch,
		"/api/orders/"+strconv.Itoa(order.ID)+"/delivery-person/",
		map[string]any{"delivery_person_id": waiter.ID}, testutil.TokenFor(t, user))
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestChangeDeliveryPersonOthersOrder(t *testing.T) {
	router := testutil.Setup(t)
	alice := testutil.CreateUser(t, "alice@example.com", models.RoleOnlineCustomer)
	bob := testutil.CreateUser(t, "bob@example.com", models.RoleOnlineCustomer)
	courier := testutil.CreateUser(t, "courier@example.com", models.RoleDelivery)
	meal := testutil.CreateMeal(t, "Pilau", 8.00)

	order := models.Order{CustomerID: alice.ID, MealID: meal.ID, Status: models.OrderStatusPending, IsDelivery: true}
	database.DB.Create(&order)

	w := testutil.Request(t, router, http.MethodPatch,
		"/api/orders/"+strconv.Itoa(order.ID)+"/delivery-person/",
		map[string]any{"delivery_person_id": courier.ID}, testutil.TokenFor(t, bob))
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestPublicMenuListsOnlyAvailable(t *testing.T) {
	router := testutil.Setup(t)
	testutil.CreateMeal(t, "Pilau", 8.00)
	hidden := testutil.CreateMeal(t, "Seasonal Special", 15.00)
	database.DB.Model(&hidden).Update("is_available", false)

	w := testutil.Request(t, router, http.MethodGet, "/api/menu/", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var meals []models.Meal
	testutil.DecodeBody(t, w, &meals)
	if len(meals) != 1 || meals[0].Name != "Pilau" {
		t.Errorf("got %d meals, want only Pilau", len(meals))
	}
}
