package config

import (
	"log"
	"os"

	"food-ordering-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret signs access tokens. Populated by Load so values from a .env
// file are honoured.
var JWTSecret []byte

// Load reads an optional .env file and resolves config values that are
// needed before the server starts.
func Load() {
	_ = godotenv.Load()
	JWTSecret = []byte(Getenv("JWT_SECRET", "food_ordering_super_secret_2024"))
}

// Getenv returns the environment value for key or the fallback.
func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	// The foreign_keys pragma enables the cascade deletes declared on the
	// models (restaurant→menu items, cart→items, order→items).
	dsn := "file:" + Getenv("DB_PATH", "food_ordering.db") + "?_pragma=foreign_keys(1)"

	var err error
	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}

// Migrate runs the schema migration for every model. Shared with tests so
// in-memory databases carry the same schema as the real one.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
}
