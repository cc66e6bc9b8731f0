package services

import (
	"errors"

	"food-ordering-api/models"

	"gorm.io/gorm"
)

// GetCart returns the user's cart, creating an empty one on first access.
// Idempotent.
func GetCart(db *gorm.DB, userEmail string) (*models.Cart, error) {
	user, err := UserByEmail(db, userEmail)
	if err != nil {
		return nil, err
	}

	var cart models.Cart
	err = db.Preload("Items.MenuItem").Where("user_id = ?", user.ID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: user.ID, TotalAmount: 0}
		if err := db.Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddToCart appends a line for the menu item at its current price, or bumps
// the quantity of an existing line for the same menu item. The price
// snapshot of an existing line is not refreshed.
func AddToCart(db *gorm.DB, userEmail string, menuItemID uint, quantity int) (*models.Cart, error) {
	var cart *models.Cart
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		cart, err = GetCart(tx, userEmail)
		if err != nil {
			return err
		}

		var menuItem models.MenuItem
		if err := tx.First(&menuItem, menuItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMenuItemNotFound
			}
			return err
		}

		var line models.CartItem
		err = tx.Where("cart_id = ? AND menu_item_id = ?", cart.ID, menuItemID).First(&line).Error
		switch {
		case err == nil:
			line.Quantity += quantity
			if err := tx.Save(&line).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			line = models.CartItem{
				CartID:     cart.ID,
				MenuItemID: menuItem.ID,
				Quantity:   quantity,
				Price:      menuItem.Price,
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
		default:
			return err
		}

		return saveCartTotal(tx, cart)
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveFromCart deletes the line if present and silently succeeds when it
// is absent.
func RemoveFromCart(db *gorm.DB, userEmail string, cartItemID uint) (*models.Cart, error) {
	var cart *models.Cart
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		cart, err = GetCart(tx, userEmail)
		if err != nil {
			return err
		}
		if err := tx.Where("id = ? AND cart_id = ?", cartItemID, cart.ID).
			Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return saveCartTotal(tx, cart)
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateCartItemQuantity sets the line's quantity, removing the line when
// quantity drops to zero or below.
func UpdateCartItemQuantity(db *gorm.DB, userEmail string, cartItemID uint, quantity int) (*models.Cart, error) {
	var cart *models.Cart
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		cart, err = GetCart(tx, userEmail)
		if err != nil {
			return err
		}

		var line models.CartItem
		if err := tx.Where("id = ? AND cart_id = ?", cartItemID, cart.ID).First(&line).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCartItemNotFound
			}
			return err
		}

		if quantity <= 0 {
			if err := tx.Delete(&line).Error; err != nil {
				return err
			}
		} else {
			line.Quantity = quantity
			if err := tx.Save(&line).Error; err != nil {
				return err
			}
		}
		return saveCartTotal(tx, cart)
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// ClearCart empties all lines and resets the total to zero.
func ClearCart(db *gorm.DB, userEmail string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		cart, err := GetCart(tx, userEmail)
		if err != nil {
			return err
		}
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		cart.Items = nil
		cart.TotalAmount = 0
		return tx.Model(&models.Cart{}).Where("id = ?", cart.ID).
			Update("total_amount", 0).Error
	})
}

// saveCartTotal reloads the cart's lines, recomputes the total and persists
// it, keeping the invariant total == Σ(price × quantity).
func saveCartTotal(tx *gorm.DB, cart *models.Cart) error {
	var items []models.CartItem
	if err := tx.Preload("MenuItem").Where("cart_id = ?", cart.ID).Find(&items).Error; err != nil {
		return err
	}
	cart.Items = items
	cart.RecalculateTotal()
	return tx.Model(&models.Cart{}).Where("id = ?", cart.ID).
		Update("total_amount", cart.TotalAmount).Error
}
