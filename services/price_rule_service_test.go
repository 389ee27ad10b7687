package services

import (
	"testing"

	"stayhub/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeFinalPricePercentage(t *testing.T) {
	finalPrice, err := ComputeFinalPrice(500000, models.DiscountTypePercentage, 20)

	assert.NoError(t, err)
	assert.Equal(t, 400000, finalPrice)
}

func TestComputeFinalPricePercentageTruncates(t *testing.T) {
	// 1000 - 1000*33/100 = 1000 - 330
	finalPrice, err := ComputeFinalPrice(1000, models.DiscountTypePercentage, 33)

	assert.NoError(t, err)
	assert.Equal(t, 670, finalPrice)
}

func TestComputeFinalPricePercentageFull(t *testing.T) {
	finalPrice, err := ComputeFinalPrice(500000, models.DiscountTypePercentage, 100)

	assert.NoError(t, err)
	assert.Equal(t, 0, finalPrice)
}

func TestComputeFinalPriceNominal(t *testing.T) {
	finalPrice, err := ComputeFinalPrice(500000, models.DiscountTypeNominal, 150000)

	assert.NoError(t, err)
	assert.Equal(t, 350000, finalPrice)
}

func TestComputeFinalPriceInvalidType(t *testing.T) {
	_, err := ComputeFinalPrice(500000, "bogof", 10)

	assert.Error(t, err)
}
