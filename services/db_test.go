package services

import (
	"fmt"
	"strings"
	"testing"

	"food-ordering-api/config"
	"food-ordering-api/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database carrying the real schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the shared in-memory database alive for the
	// whole test.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string, role models.UserRole) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{
		Name:         "Test " + email,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedRestaurant(t *testing.T, db *gorm.DB, owner *models.User, name string, deliveryTime int) *models.Restaurant {
	t.Helper()
	restaurant := &models.Restaurant{
		Name:         name,
		Address:      "12 Test Street",
		CuisineType:  "Italian",
		DeliveryTime: deliveryTime,
		OwnerID:      owner.ID,
		IsActive:     true,
	}
	require.NoError(t, db.Create(restaurant).Error)
	return restaurant
}

func seedMenuItem(t *testing.T, db *gorm.DB, restaurant *models.Restaurant, name string, price float64) *models.MenuItem {
	t.Helper()
	item := &models.MenuItem{
		RestaurantID: restaurant.ID,
		Name:         name,
		Price:        price,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func seedAddress(t *testing.T, db *gorm.DB, user *models.User) *models.Address {
	t.Helper()
	address := &models.Address{
		UserID:      user.ID,
		AddressLine: "42 Delivery Lane",
		City:        "New York",
		State:       "NY",
		Pincode:     "10001",
	}
	require.NoError(t, db.Create(address).Error)
	return address
}
