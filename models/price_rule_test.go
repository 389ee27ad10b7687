package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceRuleValidateDiscountType(t *testing.T) {
	rule := PriceRule{DiscountType: DiscountTypePercentage}
	assert.NoError(t, rule.ValidateDiscountType())

	rule.DiscountType = DiscountTypeNominal
	assert.NoError(t, rule.ValidateDiscountType())

	rule.DiscountType = "coupon"
	assert.Error(t, rule.ValidateDiscountType())

	rule.DiscountType = ""
	assert.Error(t, rule.ValidateDiscountType())
}

func TestPriceRuleValidateStatus(t *testing.T) {
	rule := PriceRule{Status: 1}
	assert.NoError(t, rule.ValidateStatus())

	rule.Status = 0
	assert.NoError(t, rule.ValidateStatus())

	rule.Status = 2
	assert.Error(t, rule.ValidateStatus())
}
