package models

// Role enum
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleOnsiteCustomer Role = "onsite_customer"
	RoleOnlineCustomer Role = "online_customer"
	RoleWaiter         Role = "waiter"
	RoleDelivery       Role = "delivery"
	RoleCook           Role = "cook"
	RoleCleaner        Role = "cleaner"
	RoleReceptionist   Role = "receptionist"
	RoleManager        Role = "manager"
)

// AllRoles lists every recognized role, used to validate report queries.
var AllRoles = []Role{
	RoleAdmin,
	RoleOnsiteCustomer,
	RoleOnlineCustomer,
	RoleWaiter,
	RoleDelivery,
	RoleCook,
	RoleCleaner,
	RoleReceptionist,
	RoleManager,
}

// IsValidRole reports whether s names a recognized role.
func IsValidRole(s string) bool {
	for _, r := range AllRoles {
		if Role(s) == r {
			return true
		}
	}
	return false
}

// IsCustomer reports whether the role may place orders.
func (r Role) IsCustomer() bool {
	return r == RoleOnsiteCustomer || r == RoleOnlineCustomer
}

// Gender enum
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// TransportMethod enum
type TransportMethod string

const (
	TransportBike      TransportMethod = "bike"
	TransportMotorbike TransportMethod = "motorbike"
	TransportCar       TransportMethod = "car"
	TransportOnFoot    TransportMethod = "on_foot"
)

// MealCategory enum
type MealCategory string

const (
	CategoryMains     MealCategory = "mains"
	CategoryStarters  MealCategory = "starters"
	CategoryDesserts  MealCategory = "desserts"
	CategoryBeverages MealCategory = "beverages"
	CategorySpecials  MealCategory = "specials"
)
