package models

import "time"

type Restaurant struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Name         string     `json:"name" gorm:"not null"`
	Description  string     `json:"description"`
	Address      string     `json:"address"`
	CuisineType  string     `json:"cuisine_type"`
	ImageURL     string     `json:"image_url"`
	AvgRating    float64    `json:"avg_rating" gorm:"default:0"`
	DeliveryTime int        `json:"delivery_time"` // estimate in minutes
	OwnerID      uint       `json:"owner_id" gorm:"not null"`
	Owner        User       `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	MenuItems    []MenuItem `json:"menu_items,omitempty" gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type MenuItem struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null;index"`
	Name         string    `json:"name" gorm:"not null"`
	Description  string    `json:"description"`
	Price        float64   `json:"price" gorm:"not null"`
	IsVeg        bool      `json:"is_veg" gorm:"default:false"`
	ImageURL     string    `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
