package customer_test

import (
	"net/http"
	"strconv"
	"testing"

	"backend_savanna/pkg/database"
	"backend_savanna/pkg/models"
	"backend_savanna/pkg/testutil"
)

func deliveredOrder(t *testing.T, customer models.User, courier *models.User) models.Order {
	t.Helper()

	meal := testutil.CreateMeal(t, "Samosa", 3.00)
	order := models.Order{
		CustomerID: customer.ID,
		MealID:     meal.ID,
		Status:     models.OrderStatusDelivered,
		IsDelivery: true,
	}
	if courier != nil {
		order.DeliveryPersonID = &courier.ID
	}
	if err := database.DB.Create(&order).Error; err != nil {
		t.Fatal(err)
	}
	return order
}

func TestSubmitFeedbackCreditsTip(t *testing.T) {
	router := testutil.Setup(t)
	customer := testutil.CreateUser(t, "amina@example.com", models.RoleOnlineCustomer)
	courier := testutil.CreateUser(t, "courier@example.com", models.RoleDelivery)

	profile := models.DeliveryPersonnelProfile{UserID: courier.ID, TransportMethod: models.TransportBike}
	if err := database.DB.Create(&profile).Error; err != nil {
		t.Fatal(err)
	}

	order := deliveredOrder(t, customer, &courier)

	w := testutil.Request(t, router, http.MethodPost,
		"/api/orders/"+strconv.Itoa(order.ID)+"/feedback/",
		map[string]any{"rating": 5, "tip": 4.25, "comment": "fast and friendly"},
		testutil.TokenFor(t, customer))
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var reloaded models.DeliveryPersonnelProfile
	database.DB.First(&reloaded, profile.ID)
	if reloaded.TipsEarned != 4.25 {
		t.Errorf("tips_earned = %v, want 4.25", reloaded.TipsEarned)
	}
}

func TestSubmitFeedbackRatingRange(t *testing.T) {
	router := testutil.Setup(t)
	customer := testutil.CreateUser(t, "amina@example.com", models.RoleOnlineCustomer)
	order := deliveredOrder(t, customer, nil)
	token := testutil.TokenFor(t, customer)
	path := "/api/orders/" + strconv.Itoa(order.ID) + "/feedback/"

	for _, rating := range []int{0, 6, -1} {
		w := testutil.Request(t, router, http.MethodPost, path,
			map[string]any{"rating": rating}, token)
		if w.Code != http.StatusBadRequest {
			t.Errorf("rating %d: status = %d, want 400", rating, w.Code)
		}
	}
}

func TestSubmitFeedbackNegativeTip(t *testing.T) {
	router := testutil.Setup(t)
	customer := testutil.CreateUser(t, "amina@example.com", models.RoleOnlineCustomer)
	order := deliveredOrder(t, customer, nil)

	w := testutil.Request(t, router, http.MethodPost,
		"/api/orders/"+strconv.Itoa(order.ID)+"/feedback/",
		map[string]any{"rating": 4, "tip": -2.0}, testutil.TokenFor(t, customer))
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSubmitFeedbackRequiresDelivered(t *testing.T) {
	router := testutil.Setup(t)
	customer := testutil.CreateUser(t, "amina@example.com", models.RoleOnlineCustomer)
	meal := testutil.CreateMeal(t, "Samosa", 3.00)

	order := models.Order{CustomerID: customer.ID, MealID: meal.ID, Status: models.OrderStatusPreparing}
	database.DB.Create(&order)

	w := testutil.Request(t, router, http.MethodPost,
		"/api/orders/"+strconv.Itoa(order.ID)+"/feedback/",
		map[string]any{"rating": 4}, testutil.TokenFor(t, customer))
	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", w.Code)
	}
}

func TestSubmitFeedbackOncePerOrder(t *testing.T) {
	router := testutil.Setup(t)
	customer := testutil.CreateUser(t, "amina@example.com", models.RoleOnlineCustomer)
	order := deliveredOrder(t, customer, nil)
	token := testutil.TokenFor(t, customer)
	path := "/api/orders/" + strconv.Itoa(order.ID) + "/feedback/"

	w := testutil.Request(t, router, http.MethodPost, path, map[string]any{"rating": 5}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("first submission status = %d, body = %s", w.Code, w.Body.String())
	}

	w = testutil.Request(t, router, http.MethodPost, path, map[string]any{"rating": 3}, token)
	if w.Code != http.StatusConflict {
		t.Errorf("second submission status = %d, want 409", w.Code)
	}

	var count int64
	database.DB.Model(&models.Feedback{}).Where("order_id = ?", order.ID).Count(&count)
	if count != 1 {
		t.Errorf("feedback rows = %d, want 1", count)
	}
}

func TestSubmitFeedbackOthersOrder(t *testing.T) {
	router := testutil.Setup(t)
	alice := testutil.CreateUser(t, "alice@example.com", models.RoleOnlineCustomer)
	bob := testutil.CreateUser(t, "bob@example.com", models.RoleOnlineCustomer)
	order := deliveredOrder(t, alice, nil)

	w := testutil.Request(t, router, http.MethodPost,
		"/api/orders/"+strconv.Itoa(order.ID)+"/feedback/",
		map[string]any{"rating": 5}, testutil.TokenFor(t, bob))
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestMealFeedbackListing(t *testing.T) {
	router := testutil.Setup(t)
	customer := testutil.CreateUser(t, "amina@example.com", models.RoleOnlineCustomer)
	order := deliveredOrder(t, customer, nil)

	database.DB.Create(&models.Feedback{
		OrderID: order.ID, MealID: order.MealID, CustomerID: customer.ID,
		Rating: 4, Comment: "good",
	})

	w := testutil.Request(t, router, http.MethodGet,
		"/api/meals/"+strconv.Itoa(order.MealID)+"/feedback/", nil,
		testutil.TokenFor(t, customer))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var feedbacks []models.Feedback
	testutil.DecodeBody(t, w, &feedbacks)
	if len(feedbacks) != 1 || feedbacks[0].Comment != "good" {
		t.Errorf("got %+v", feedbacks)
	}
}
