package handlers

import (
	"net/http"

	"food-ordering-api/config"
	"food-ordering-api/middleware"
	"food-ordering-api/models"
	"food-ordering-api/services"

	"github.com/gin-gonic/gin"
)

type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type AddressRequest struct {
	AddressLine string `json:"address_line" binding:"required"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
}

// GetProfile returns the authenticated user's profile
func GetProfile(c *gin.Context) {
	user, err := services.UserByEmail(config.DB, middleware.GetEmail(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateProfile applies a partial patch of name/email/phone
func UpdateProfile(c *gin.Context) {
	var req services.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := services.UpdateProfile(config.DB, middleware.GetEmail(c), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "user": user})
}

// UpdatePassword verifies the current password before setting a new one
func UpdatePassword(c *gin.Context) {
	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := services.UpdatePassword(config.DB, middleware.GetEmail(c), req.OldPassword, req.NewPassword); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// GetAddresses lists the caller's delivery addresses
func GetAddresses(c *gin.Context) {
	addresses, err := services.Addresses(config.DB, middleware.GetEmail(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(addresses), "addresses": addresses})
}

// AddAddress stores a new delivery address for the caller
func AddAddress(c *gin.Context) {
	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	address := models.Address{
		AddressLine: req.AddressLine,
		City:        req.City,
		State:       req.State,
		Pincode:     req.Pincode,
	}
	if err := services.AddAddress(config.DB, middleware.GetEmail(c), &address); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Address added", "address": address})
}

// UpdateAddress replaces an address owned by the caller
func UpdateAddress(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	address, err := services.UpdateAddress(config.DB, middleware.GetEmail(c), id, models.Address{
		AddressLine: req.AddressLine,
		City:        req.City,
		State:       req.State,
		Pincode:     req.Pincode,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Address updated", "address": address})
}

// DeleteAddress removes an address owned by the caller
func DeleteAddress(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := services.DeleteAddress(config.DB, middleware.GetEmail(c), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
