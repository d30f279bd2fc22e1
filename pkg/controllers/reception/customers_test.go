package reception_test

import (
	"net/http"
	"strconv"
	"testing"

	"backend_savanna/pkg/database"
	"backend_savanna/pkg/models"
	"backend_savanna/pkg/testutil"
)

func TestOnsiteCustomersScope(t *testing.T) {
	router := testutil.Setup(t)
	receptionistUser, _ := receptionist(t, "reception@example.com", "Achieng")
	alice := testutil.CreateUser(t, "alice@example.com", models.RoleOnsiteCustomer)
	bob := testutil.CreateUser(t, "bob@example.com", models.RoleOnsiteCustomer)

	database.DB.Create(&models.OnsiteCustomerProfile{UserID: alice.ID, FullName: "Alice", TableNumber: "4"})
	database.DB.Create(&models.OnsiteCustomerProfile{UserID: bob.ID, FullName: "Bob", TableNumber: "7"})

	// Receptionist sees both profiles.
	w := testutil.Request(t, router, http.MethodGet, "/api/onsite-customers/", nil, testutil.TokenFor(t, receptionistUser))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var profiles []models.OnsiteCustomerProfile
	testutil.DecodeBody(t, w, &profiles)
	if len(profiles) != 2 {
		t.Errorf("receptionist sees %d profiles, want 2", len(profiles))
	}

	// A customer sees only their own.
	w = testutil.Request(t, router, http.MethodGet, "/api/onsite-customers/", nil, testutil.TokenFor(t, alice))
	testutil.DecodeBody(t, w, &profiles)
	if len(profiles) != 1 || profiles[0].FullName != "Alice" {
		t.Errorf("customer sees %+v", profiles)
	}

	// Kitchen staff see nothing.
	cook := testutil.CreateUser(t, "cook@example.com", models.RoleCook)
	w = testutil.Request(t, router, http.MethodGet, "/api/onsite-customers/", nil, testutil.TokenFor(t, cook))
	if w.Code != http.StatusForbidden {
		t.Errorf("cook status = %d, want 403", w.Code)
	}
}

func TestUpdateOnsiteCustomerAssignsWaiter(t *testing.T) {
	router := testutil.Setup(t)
	receptionistUser, _ := receptionist(t, "reception@example.com", "Achieng")
	alice := testutil.CreateUser(t, "alice@example.com", models.RoleOnsiteCustomer)
	waiter := testutil.CreateUser(t, "waiter@example.com", models.RoleWaiter)
	cook := testutil.CreateUser(t, "cook@example.com", models.RoleCook)

	profile := models.OnsiteCustomerProfile{UserID: alice.ID, FullName: "Alice", TableNumber: "4"}
	database.DB.Create(&profile)
	path := "/api/onsite-customers/" + strconv.Itoa(profile.ID) + "/"
	token := testutil.TokenFor(t, receptionistUser)

	w := testutil.Request(t, router, http.MethodPut, path,
		map[string]any{"waiterId": cook.ID}, token)
	if w.Code != http.StatusNotFound {
		t.Errorf("non-waiter assignment status = %d, want 404", w.Code)
	}

	w = testutil.Request(t, router, http.MethodPut, path,
		map[string]any{"waiterId": waiter.ID, "tableNumber": "9"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var reloaded models.OnsiteCustomerProfile
	database.DB.First(&reloaded, profile.ID)
	if reloaded.WaiterID == nil || *reloaded.WaiterID != waiter.ID || reloaded.TableNumber != "9" {
		t.Errorf("got %+v", reloaded)
	}
}

func TestOnlineCustomersOwnProfileOnly(t *testing.T) {
	router := testutil.Setup(t)
	alice := testutil.CreateUser(t, "alice@example.com", models.RoleOnlineCustomer)
	bob := testutil.CreateUser(t, "bob@example.com", models.RoleOnlineCustomer)

	database.DB.Create(&models.OnlineCustomerProfile{UserID: alice.ID, FullName: "Alice", Location: "Kilimani"})
	other := models.OnlineCustomerProfile{UserID: bob.ID, FullName: "Bob"}
	database.DB.Create(&other)

	w := testutil.Request(t, router, http.MethodGet,
		"/api/online-customers/"+strconv.Itoa(other.ID)+"/", nil, testutil.TokenFor(t, alice))
	if w.Code != http.StatusNotFound {
		t.Errorf("peeking at another profile status = %d, want 404", w.Code)
	}
}
