package services

import (
	"errors"
	"strings"

	"food-ordering-api/models"

	"gorm.io/gorm"
)

// ListRestaurants returns all active restaurants. Inactive ones are excluded
// from the listing but remain fetchable by id.
func ListRestaurants(db *gorm.DB) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := db.Where("is_active = ?", true).Find(&restaurants).Error
	return restaurants, err
}

// GetRestaurant fetches a restaurant by id regardless of its active flag.
func GetRestaurant(db *gorm.DB, id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := db.First(&restaurant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return &restaurant, nil
}

// SearchRestaurants does a case-insensitive substring match on the name.
func SearchRestaurants(db *gorm.DB, query string) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%").Find(&restaurants).Error
	return restaurants, err
}

// SearchRestaurantsByCuisine does a case-insensitive substring match on the
// cuisine type.
func SearchRestaurantsByCuisine(db *gorm.DB, cuisine string) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := db.Where("LOWER(cuisine_type) LIKE ?", "%"+strings.ToLower(cuisine)+"%").Find(&restaurants).Error
	return restaurants, err
}

// RestaurantsByOwner returns all restaurants owned by the given user.
func RestaurantsByOwner(db *gorm.DB, ownerEmail string) ([]models.Restaurant, error) {
	owner, err := UserByEmail(db, ownerEmail)
	if err != nil {
		return nil, err
	}
	var restaurants []models.Restaurant
	err = db.Where("owner_id = ?", owner.ID).Find(&restaurants).Error
	return restaurants, err
}

// CreateRestaurant attributes the restaurant to its owner and persists it.
func CreateRestaurant(db *gorm.DB, restaurant *models.Restaurant, ownerEmail string) error {
	owner, err := UserByEmail(db, ownerEmail)
	if err != nil {
		return err
	}
	restaurant.OwnerID = owner.ID
	return db.Create(restaurant).Error
}

// MenuByRestaurant lists a restaurant's menu items.
func MenuByRestaurant(db *gorm.DB, restaurantID uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := db.Where("restaurant_id = ?", restaurantID).Find(&items).Error
	return items, err
}

// AddMenuItem attaches a new menu item to the restaurant.
func AddMenuItem(db *gorm.DB, restaurantID uint, item *models.MenuItem) error {
	restaurant, err := GetRestaurant(db, restaurantID)
	if err != nil {
		return err
	}
	item.RestaurantID = restaurant.ID
	return db.Create(item).Error
}

// UpdateMenuItem replaces every mutable field of the item.
func UpdateMenuItem(db *gorm.DB, id uint, details models.MenuItem) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}

	item.Name = details.Name
	item.Description = details.Description
	item.Price = details.Price
	item.IsVeg = details.IsVeg
	item.ImageURL = details.ImageURL

	if err := db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteMenuItem hard-deletes the item. No order-history backfill check;
// order items keep their own snapshots.
func DeleteMenuItem(db *gorm.DB, id uint) error {
	var item models.MenuItem
	if err := db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMenuItemNotFound
		}
		return err
	}
	return db.Delete(&item).Error
}
