package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus("PLACED")
	require.NoError(t, err)
	assert.Equal(t, StatusPlaced, status)

	status, err = ParseOrderStatus("  out_for_delivery ")
	require.NoError(t, err)
	assert.Equal(t, StatusOutForDelivery, status)

	_, err = ParseOrderStatus("TELEPORTED")
	assert.Error(t, err)

	_, err = ParseOrderStatus("")
	assert.Error(t, err)
}

func TestParsePaymentMethod(t *testing.T) {
	method, err := ParsePaymentMethod("")
	require.NoError(t, err)
	assert.Equal(t, PaymentCOD, method)

	method, err = ParsePaymentMethod("upi")
	require.NoError(t, err)
	assert.Equal(t, PaymentUPI, method)

	_, err = ParsePaymentMethod("BARTER")
	assert.Error(t, err)
}

func TestCartRecalculateTotal(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{Price: 9.50, Quantity: 2},
		{Price: 2.50, Quantity: 4},
	}}
	cart.RecalculateTotal()
	assert.InDelta(t, 29.00, cart.TotalAmount, 1e-9)

	cart.Items = nil
	cart.RecalculateTotal()
	assert.Zero(t, cart.TotalAmount)
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleUser))
	assert.True(t, ValidRole(RoleAdmin))
	assert.False(t, ValidRole("SUPERHERO"))
}
