package authz

import (
	"backend_savanna/pkg/models"
	"testing"
)

func TestAllowed(t *testing.T) {
	cases := []struct {
		op   Operation
		role models.Role
		want bool
	}{
		{OpPlaceOrder, models.RoleOnsiteCustomer, true},
		{OpPlaceOrder, models.RoleOnlineCustomer, true},
		{OpPlaceOrder, models.RoleWaiter, false},
		{OpPlaceOrder, models.RoleAdmin, false},
		{OpClockShift, models.RoleWaiter, true},
		{OpClockShift, models.RoleCook, false},
		{OpToggleAvailability, models.RoleWaiter, true},
		{OpToggleAvailability, models.RoleCook, true},
		{OpToggleAvailability, models.RoleCleaner, false},
		{OpDeliveryWork, models.RoleDelivery, true},
		{OpDeliveryWork, models.RoleAdmin, false},
		{OpReceptionCRUD, models.RoleReceptionist, true},
		{OpReceptionCRUD, models.RoleAdmin, true},
		{OpReceptionCRUD, models.RoleManager, false},
		{OpTwoFactor, models.RoleAdmin, true},
		{OpTwoFactor, models.RoleManager, true},
		{OpTwoFactor, models.RoleWaiter, false},
		{OpAdminStats, models.RoleAdmin, true},
		{OpAdminStats, models.RoleManager, false},
	}

	for _, tc := range cases {
		if got := Allowed(tc.op, tc.role); got != tc.want {
			t.Errorf("Allowed(%s, %s) = %v, want %v", tc.op, tc.role, got, tc.want)
		}
	}
}

func TestAllowedUnknownOperation(t *testing.T) {
	if Allowed(Operation("nonexistent"), models.RoleAdmin) {
		t.Error("unknown operations must be denied for every role")
	}
}

func TestReceptionScope(t *testing.T) {
	if ReceptionScope(models.RoleAdmin) != ScopeAll {
		t.Error("admin should see all reception records")
	}
	if ReceptionScope(models.RoleReceptionist) != ScopeOwn {
		t.Error("receptionist should see only own records")
	}
	if ReceptionScope(models.RoleWaiter) != ScopeNone {
		t.Error("waiter should see no reception records")
	}
}

func TestCustomerProfileScope(t *testing.T) {
	if CustomerProfileScope(models.RoleReceptionist) != ScopeAll {
		t.Error("receptionist should see all customer profiles")
	}
	if CustomerProfileScope(models.RoleOnlineCustomer) != ScopeOwn {
		t.Error("customer should see only their own profile")
	}
	if CustomerProfileScope(models.RoleDelivery) != ScopeNone {
		t.Error("delivery personnel should see no customer profiles")
	}
}
