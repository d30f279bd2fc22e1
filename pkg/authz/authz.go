// Package authz is the single place role requirements live. Handlers and
// middleware consult the rule table instead of comparing roles inline;
// ownership predicates that need row data stay next to the query that
// loads the row.
package authz

import "backend_savanna/pkg/models"

// Operation identifies a role-gated action.
type Operation string

const (
	OpPlaceOrder         Operation = "order.place"
	OpViewOwnOrders      Operation = "order.view_own"
	OpChangeDelivery     Operation = "order.change_delivery_person"
	OpSubmitFeedback     Operation = "feedback.submit"
	OpCustomerDashboard  Operation = "customer.dashboard"
	OpToggleAvailability Operation = "meal.toggle_availability"
	OpWaiterDashboard    Operation = "waiter.dashboard"
	OpClockShift         Operation = "waiter.clock"
	OpDeliveryWork       Operation = "delivery.work"
	OpReceptionCRUD      Operation = "reception.crud"
	OpCustomerProfiles   Operation = "reception.customer_profiles"
	OpTwoFactor          Operation = "auth.two_factor"
	OpAdminStats         Operation = "admin.stats"
	OpAdminReports       Operation = "admin.reports"
	OpManageMeals        Operation = "admin.manage_meals"
	OpManageOrders       Operation = "admin.manage_orders"
	OpManageUsers        Operation = "admin.manage_users"
)

// rules maps each operation to the roles allowed to perform it.
var rules = map[Operation][]models.Role{
	OpPlaceOrder:         {models.RoleOnsiteCustomer, models.RoleOnlineCustomer},
	OpViewOwnOrders:      {models.RoleOnsiteCustomer, models.RoleOnlineCustomer},
	OpChangeDelivery:     {models.RoleOnsiteCustomer, models.RoleOnlineCustomer},
	OpSubmitFeedback:     {models.RoleOnsiteCustomer, models.RoleOnlineCustomer},
	OpCustomerDashboard:  {models.RoleOnsiteCustomer, models.RoleOnlineCustomer},
	OpToggleAvailability: {models.RoleWaiter, models.RoleCook, models.RoleManager, models.RoleAdmin},
	OpWaiterDashboard:    {models.RoleWaiter},
	OpClockShift:         {models.RoleWaiter},
	OpDeliveryWork:       {models.RoleDelivery},
	OpReceptionCRUD:      {models.RoleAdmin, models.RoleReceptionist},
	OpCustomerProfiles:   {models.RoleAdmin, models.RoleReceptionist, models.RoleOnsiteCustomer, models.RoleOnlineCustomer},
	OpTwoFactor:          {models.RoleAdmin, models.RoleManager},
	OpAdminStats:         {models.RoleAdmin},
	OpAdminReports:       {models.RoleAdmin},
	OpManageMeals:        {models.RoleAdmin},
	OpManageOrders:       {models.RoleAdmin},
	OpManageUsers:        {models.RoleAdmin},
}

// Allowed reports whether the role may perform the operation.
func Allowed(op Operation, role models.Role) bool {
	for _, r := range rules[op] {
		if r == role {
			return true
		}
	}
	return false
}

// Scope is the visibility a role gets over record collections.
type Scope int

const (
	ScopeNone Scope = iota
	ScopeOwn
	ScopeAll
)

// ReceptionScope is the capability set shared by receptionist profiles,
// shift rosters and CRM call logs: admins see everything, receptionists
// see their own records, everyone else sees an empty set.
func ReceptionScope(role models.Role) Scope {
	switch role {
	case models.RoleAdmin:
		return ScopeAll
	case models.RoleReceptionist:
		return ScopeOwn
	default:
		return ScopeNone
	}
}

// CustomerProfileScope covers the onsite/online customer profile
// collections: front-of-house staff see everything, a customer sees only
// their own profile.
func CustomerProfileScope(role models.Role) Scope {
	switch role {
	case models.RoleAdmin, models.RoleReceptionist:
		return ScopeAll
	case models.RoleOnsiteCustomer, models.RoleOnlineCustomer:
		return ScopeOwn
	default:
		return ScopeNone
	}
}
