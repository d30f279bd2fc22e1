package models

import "time"

// DeliveryPersonnelProfile model, 1:1 with a user whose role is delivery.
type DeliveryPersonnelProfile struct {
	ID              int             `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          int             `gorm:"uniqueIndex;not null" json:"userId"`
	TransportMethod TransportMethod `gorm:"type:text;default:'bike'" json:"transportMethod"`
	CurrentLocation string          `json:"currentLocation"`
	Upvotes         int             `gorm:"default:0" json:"upvotes"`
	TipsEarned      float64         `gorm:"default:0" json:"tipsEarned"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// ProofOfDelivery model, 1:1 with an order.
type ProofOfDelivery struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID    int       `gorm:"uniqueIndex;not null" json:"orderId"`
	ImageURL   string    `gorm:"not null" json:"imageUrl"`
	Notes      string    `json:"notes"`
	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploadedAt"`
}

// ReceptionistProfile model
type ReceptionistProfile struct {
	ID           int        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       int        `gorm:"uniqueIndex;not null" json:"userId"`
	FullName     string     `gorm:"not null" json:"fullName"`
	Gender       Gender     `gorm:"type:text" json:"gender"`
	ClockInTime  *time.Time `json:"clockInTime"`
	ClockOutTime *time.Time `json:"clockOutTime"`

	User         User          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	ShiftRosters []ShiftRoster `gorm:"foreignKey:ReceptionistID;constraint:OnDelete:CASCADE" json:"shiftRosters,omitempty"`
	CallLogs     []CRMCallLog  `gorm:"foreignKey:ReceptionistID;constraint:OnDelete:CASCADE" json:"callLogs,omitempty"`
}

// ShiftRoster model. ShiftEnd must be after ShiftStart, validated at the
// request boundary.
type ShiftRoster struct {
	ID             int       `gorm:"primaryKey;autoIncrement" json:"id"`
	ReceptionistID int       `gorm:"not null;index" json:"receptionistId"`
	ShiftDate      time.Time `gorm:"not null" json:"shiftDate"`
	ShiftStart     time.Time `gorm:"not null" json:"shiftStart"`
	ShiftEnd       time.Time `gorm:"not null" json:"shiftEnd"`
	IsOnDuty       bool      `gorm:"default:false" json:"isOnDuty"`

	Receptionist ReceptionistProfile `gorm:"foreignKey:ReceptionistID;constraint:OnDelete:CASCADE" json:"-"`
}

// CRMCallLog model
type CRMCallLog struct {
	ID             int        `gorm:"primaryKey;autoIncrement" json:"id"`
	ReceptionistID int        `gorm:"not null;index" json:"receptionistId"`
	CustomerName   string     `gorm:"not null" json:"customerName"`
	Phone          string     `json:"phone"`
	CallTime       time.Time  `gorm:"autoCreateTime" json:"callTime"`
	Notes          string     `json:"notes"`
	Reason         string     `json:"reason"`
	FollowUpDate   *time.Time `json:"followUpDate"`

	Receptionist ReceptionistProfile `gorm:"foreignKey:ReceptionistID;constraint:OnDelete:CASCADE" json:"-"`
}

// OnsiteCustomerProfile model
type OnsiteCustomerProfile struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      int       `gorm:"uniqueIndex;not null" json:"userId"`
	FullName    string    `gorm:"not null" json:"fullName"`
	Gender      Gender    `gorm:"type:text" json:"gender"`
	TableNumber string    `json:"tableNumber"`
	WaiterID    *int      `json:"waiterId"`
	JoinedAt    time.Time `gorm:"autoCreateTime" json:"joinedAt"`

	User   User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Waiter *User `gorm:"foreignKey:WaiterID;constraint:OnDelete:SET NULL" json:"-"`
}

// OnlineCustomerProfile model. Birthday feeds the dashboard greeting.
type OnlineCustomerProfile struct {
	ID       int        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID   int        `gorm:"uniqueIndex;not null" json:"userId"`
	FullName string     `gorm:"not null" json:"fullName"`
	Gender   Gender     `gorm:"type:text" json:"gender"`
	Location string     `json:"location"`
	Birthday *time.Time `json:"birthday"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
