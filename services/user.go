package services

import (
	"errors"

	"food-ordering-api/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserByEmail resolves the authenticated principal to its user record.
func UserByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ProfileUpdate carries the optional fields of a profile patch. Empty fields
// are left untouched.
type ProfileUpdate struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// UpdateProfile applies a partial patch. Email uniqueness is re-checked only
// when the email actually changes.
func UpdateProfile(db *gorm.DB, userEmail string, req ProfileUpdate) (*models.User, error) {
	user, err := UserByEmail(db, userEmail)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		if req.Email != userEmail {
			if _, err := UserByEmail(db, req.Email); err == nil {
				return nil, ErrEmailTaken
			}
		}
		user.Email = req.Email
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}

	if err := db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// UpdatePassword verifies the current password before accepting the new one.
func UpdatePassword(db *gorm.DB, userEmail, oldPassword, newPassword string) error {
	user, err := UserByEmail(db, userEmail)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	return db.Save(user).Error
}

// Addresses lists the user's delivery addresses.
func Addresses(db *gorm.DB, userEmail string) ([]models.Address, error) {
	user, err := UserByEmail(db, userEmail)
	if err != nil {
		return nil, err
	}
	var addresses []models.Address
	err = db.Where("user_id = ?", user.ID).Find(&addresses).Error
	return addresses, err
}

// AddAddress stores a new delivery address owned by the user.
func AddAddress(db *gorm.DB, userEmail string, address *models.Address) error {
	user, err := UserByEmail(db, userEmail)
	if err != nil {
		return err
	}
	address.UserID = user.ID
	return db.Create(address).Error
}

// UpdateAddress replaces the address fields after verifying ownership.
func UpdateAddress(db *gorm.DB, userEmail string, addressID uint, updated models.Address) (*models.Address, error) {
	user, err := UserByEmail(db, userEmail)
	if err != nil {
		return nil, err
	}

	address, err := addressOwnedBy(db, addressID, user.ID)
	if err != nil {
		return nil, err
	}

	address.AddressLine = updated.AddressLine
	address.City = updated.City
	address.State = updated.State
	address.Pincode = updated.Pincode

	if err := db.Save(address).Error; err != nil {
		return nil, err
	}
	return address, nil
}

// DeleteAddress removes the address after verifying ownership.
func DeleteAddress(db *gorm.DB, userEmail string, addressID uint) error {
	user, err := UserByEmail(db, userEmail)
	if err != nil {
		return err
	}
	address, err := addressOwnedBy(db, addressID, user.ID)
	if err != nil {
		return err
	}
	return db.Delete(address).Error
}

func addressOwnedBy(db *gorm.DB, addressID, userID uint) (*models.Address, error) {
	var address models.Address
	if err := db.First(&address, addressID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAddressNotFound
		}
		return nil, err
	}
	if address.UserID != userID {
		return nil, ErrUnauthorized
	}
	return &address, nil
}
