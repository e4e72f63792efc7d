package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePrice(t *testing.T) {
	for price := MinPrice; price <= MaxPrice; price++ {
		assert.NoError(t, ValidatePrice(price), "price %d should be accepted", price)
	}

	for _, price := range []int{-100, -1, 0, 31, 32, 1000} {
		t.Run(fmt.Sprintf("rejects %d", price), func(t *testing.T) {
			err := ValidatePrice(price)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidPrice)
			assert.Equal(t, "Price must be between 1 and 30", err.Error())
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestNewRestaurantPizza(t *testing.T) {
	rp, err := NewRestaurantPizza(10, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 10, rp.Price)
	assert.Equal(t, uint(1), rp.RestaurantID)
	assert.Equal(t, uint(2), rp.PizzaID)

	rp, err = NewRestaurantPizza(0, 1, 2)
	assert.Nil(t, rp)
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestSetPriceKeepsPreviousValueOnError(t *testing.T) {
	rp := &RestaurantPizza{Price: 10}

	require.NoError(t, rp.SetPrice(30))
	assert.Equal(t, 30, rp.Price)

	assert.ErrorIs(t, rp.SetPrice(31), ErrInvalidPrice)
	assert.Equal(t, 30, rp.Price)
}

func TestBeforeSave(t *testing.T) {
	assert.NoError(t, (&RestaurantPizza{Price: 1}).BeforeSave(nil))
	assert.ErrorIs(t, (&RestaurantPizza{Price: 0}).BeforeSave(nil), ErrInvalidPrice)
}

func TestIsValidationErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("create restaurant pizza: %w", ErrInvalidPrice)
	assert.True(t, IsValidationError(wrapped))
	assert.False(t, IsValidationError(fmt.Errorf("boom")))
}
