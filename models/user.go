package models

import "time"

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleUser            UserRole = "USER"
	RoleRestaurantOwner UserRole = "RESTAURANT_OWNER"
	RoleDeliveryPartner UserRole = "DELIVERY_PARTNER"
	RoleAdmin           UserRole = "ADMIN"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleUser, RoleRestaurantOwner, RoleDeliveryPartner, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Phone        string    `json:"phone"`
	Role         UserRole  `json:"role" gorm:"not null;default:'USER'"`
	ImageURL     string    `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Address is a delivery address owned by exactly one user.
type Address struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	UserID      uint   `json:"user_id" gorm:"not null;index"`
	AddressLine string `json:"address_line" gorm:"not null"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
}
