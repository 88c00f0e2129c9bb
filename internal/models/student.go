package models

import "time"

// Payment method names accepted for Student.DefaultPaymentMethod.
const (
	PaymentMethodCard     = "Card"
	PaymentMethodApplePay = "Apple Pay"
	PaymentMethodCash     = "Cash"
)

// Student is the mandatory profile, one per identity. PictureURL, Email,
// FirstName, LastName and Headline are shared with the tutor row and must
// mirror it at all times.
type Student struct {
	ID                   string  `gorm:"type:varchar(128);primaryKey" json:"id"`
	PictureURL           *string `json:"pictureURL,omitempty"`
	Email                string  `gorm:"not null" json:"email"`
	FirstName            string  `gorm:"not null" json:"firstName"`
	LastName             string  `gorm:"not null" json:"lastName"`
	Headline             *string `json:"headline,omitempty"`
	DefaultPaymentMethod string  `gorm:"type:varchar(20);default:'Cash'" json:"defaultPaymentMethod"`
	UserType             string  `gorm:"type:varchar(10);not null" json:"userType"`

	// Provider-opaque references, never settable or visible to clients.
	StripeID string  `json:"-"`
	CardID   *string `json:"-"`

	CreatedAt time.Time `gorm:"default:now()" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}
