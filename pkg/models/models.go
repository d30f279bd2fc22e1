package models

import (
	"time"

	"gorm.io/gorm"
)

// User model
type User struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      Role      `gorm:"type:text;not null;default:'online_customer'" json:"role"`
	IsActive  bool      `gorm:"default:true" json:"isActive"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	// 2FA, available to admin and manager accounts
	TwoFactorEnabled bool    `gorm:"default:false" json:"twoFactorEnabled"`
	TwoFactorSecret  *string `json:"-"`

	// Relationships
	DeliveryProfile     *DeliveryPersonnelProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"deliveryProfile,omitempty"`
	ReceptionistProfile *ReceptionistProfile      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"receptionistProfile,omitempty"`
	OnsiteProfile       *OnsiteCustomerProfile    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"onsiteProfile,omitempty"`
	OnlineProfile       *OnlineCustomerProfile    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"onlineProfile,omitempty"`
	ClockInRecords      []ClockInRecord           `gorm:"foreignKey:WaiterID;constraint:OnDelete:CASCADE" json:"clockInRecords,omitempty"`
}

// FullName returns "First Last", trimmed when either part is empty.
func (u User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Meal model
type Meal struct {
	ID          int          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string       `gorm:"not null" json:"name"`
	Description string       `json:"description"`
	Price       float64      `gorm:"not null" json:"price"`
	ImageURL    *string      `json:"imageUrl"`
	IsAvailable bool         `gorm:"default:true" json:"isAvailable"`
	Category    MealCategory `gorm:"type:text;default:'mains'" json:"category"`
	CreatedAt   time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	Orders    []Order    `gorm:"foreignKey:MealID" json:"orders,omitempty"`
	Feedbacks []Feedback `gorm:"foreignKey:MealID" json:"feedbacks,omitempty"`
}

// Order model. Deleting the customer removes the order history; deleting
// the delivery person only detaches them (order rows survive).
type Order struct {
	ID               int         `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID       int         `gorm:"not null;index" json:"customerId"`
	MealID           int         `gorm:"not null;index" json:"mealId"`
	Status           OrderStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	IsDelivery       bool        `gorm:"default:false" json:"isDelivery"`
	DeliveryPersonID *int        `gorm:"index" json:"deliveryPersonId"`
	CreatedAt        time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	Customer       User             `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"customer,omitempty"`
	Meal           Meal             `gorm:"foreignKey:MealID;constraint:OnDelete:CASCADE" json:"meal,omitempty"`
	DeliveryPerson *User            `gorm:"foreignKey:DeliveryPersonID;constraint:OnDelete:SET NULL" json:"deliveryPerson,omitempty"`
	Feedback       *Feedback        `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"feedback,omitempty"`
	Proof          *ProofOfDelivery `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"proof,omitempty"`
}

// Feedback model. The unique index on OrderID is what makes "one feedback
// per order" hold under concurrent submissions.
type Feedback struct {
	ID                  int       `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID             int       `gorm:"uniqueIndex;not null" json:"orderId"`
	MealID              int       `gorm:"not null;index" json:"mealId"`
	CustomerID          int       `gorm:"not null;index" json:"customerId"`
	Rating              int       `gorm:"not null" json:"rating"`
	Tip                 float64   `gorm:"default:0" json:"tip"`
	Comment             string    `json:"comment"`
	DeliveryPersonnelID *int      `json:"deliveryPersonnelId"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"createdAt"`

	// Relationships
	Meal              Meal  `gorm:"foreignKey:MealID;constraint:OnDelete:CASCADE" json:"-"`
	Customer          User  `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
	DeliveryPersonnel *User `gorm:"foreignKey:DeliveryPersonnelID;constraint:OnDelete:SET NULL" json:"-"`
}

// MaxShiftDuration caps runaway open shifts, e.g. from crashed clients.
const MaxShiftDuration = 12 * time.Hour

// ClockInRecord model. A partial unique index on (waiter_id) where
// clock_out_time IS NULL enforces at most one open shift per waiter; see
// database.createIndexes.
type ClockInRecord struct {
	ID           int        `gorm:"primaryKey;autoIncrement" json:"id"`
	WaiterID     int        `gorm:"not null;index" json:"waiterId"`
	ClockInTime  time.Time  `gorm:"autoCreateTime" json:"clockInTime"`
	ClockOutTime *time.Time `json:"clockOutTime"`

	Waiter User `gorm:"foreignKey:WaiterID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeSave closes any record left open past the shift cap.
func (r *ClockInRecord) BeforeSave(tx *gorm.DB) error {
	if r.ClockOutTime == nil && !r.ClockInTime.IsZero() && time.Since(r.ClockInTime) > MaxShiftDuration {
		capped := r.ClockInTime.Add(MaxShiftDuration)
		r.ClockOutTime = &capped
	}
	return nil
}

// IsOpen reports whether the shift has not been clocked out yet.
func (r ClockInRecord) IsOpen() bool {
	return r.ClockOutTime == nil
}
