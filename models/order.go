package models

import (
	"fmt"
	"strings"
	"time"
)

// OrderStatus represents all possible states of a food delivery order
type OrderStatus string

const (
	StatusPlaced         OrderStatus = "PLACED"
	StatusConfirmed      OrderStatus = "CONFIRMED"
	StatusPreparing      OrderStatus = "PREPARING"
	StatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	StatusDelivered      OrderStatus = "DELIVERED"
	StatusCancelled      OrderStatus = "CANCELLED"
)

// OrderLifecycle is the normal status sequence. CANCELLED is reachable from
// any non-terminal state; callers with a sufficient role may set any status,
// there are no transition guards.
var OrderLifecycle = []OrderStatus{
	StatusPlaced,
	StatusConfirmed,
	StatusPreparing,
	StatusOutForDelivery,
	StatusDelivered,
}

// ParseOrderStatus matches a free-form token against the known statuses.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch status := OrderStatus(strings.ToUpper(strings.TrimSpace(s))); status {
	case StatusPlaced, StatusConfirmed, StatusPreparing,
		StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return status, nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// PaymentMethod is how the customer pays for an order
type PaymentMethod string

const (
	PaymentCOD  PaymentMethod = "COD"
	PaymentCard PaymentMethod = "CARD"
	PaymentUPI  PaymentMethod = "UPI"
)

// ParsePaymentMethod resolves a token to a payment method, defaulting to
// cash on delivery when empty.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	if s == "" {
		return PaymentCOD, nil
	}
	switch method := PaymentMethod(strings.ToUpper(strings.TrimSpace(s))); method {
	case PaymentCOD, PaymentCard, PaymentUPI:
		return method, nil
	}
	return "", fmt.Errorf("unknown payment method %q", s)
}

type Order struct {
	ID                    uint          `json:"id" gorm:"primaryKey"`
	UserID                uint          `json:"user_id" gorm:"not null;index"`
	User                  User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	RestaurantID          uint          `json:"restaurant_id" gorm:"not null;index"`
	Restaurant            Restaurant    `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	AddressID             uint          `json:"address_id" gorm:"not null"`
	Address               Address       `json:"address,omitempty" gorm:"foreignKey:AddressID"`
	DeliveryPartnerID     *uint         `json:"delivery_partner_id"`
	DeliveryPartner       *User         `json:"delivery_partner,omitempty" gorm:"foreignKey:DeliveryPartnerID"`
	Items                 []OrderItem   `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalAmount           float64       `json:"total_amount"`
	Status                OrderStatus   `json:"status" gorm:"not null;default:'PLACED'"`
	PaymentMethod         PaymentMethod `json:"payment_method"`
	PaymentStatus         string        `json:"payment_status"`
	CreatedAt             time.Time     `json:"created_at"`
	UpdatedAt             time.Time     `json:"updated_at"`
	EstimatedDeliveryTime time.Time     `json:"estimated_delivery_time"`
	DeliveredAt           *time.Time    `json:"delivered_at"`
}

// OrderItem is an immutable snapshot of a cart line at order time.
type OrderItem struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	OrderID    uint     `json:"order_id" gorm:"not null;index"`
	MenuItemID uint     `json:"menu_item_id" gorm:"not null"`
	MenuItem   MenuItem `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int      `json:"quantity" gorm:"not null"`
	Price      float64  `json:"price" gorm:"not null"`
}
