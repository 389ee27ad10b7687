package validator

import (
	"testing"
	"time"

	"stayhub/models"

	"github.com/stretchr/testify/assert"
)

func d(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestValidatePriceRule(t *testing.T) {
	rule := models.PriceRule{
		NameOfSale:     "Sale tháng 3",
		DiscountType:   models.DiscountTypePercentage,
		DiscountAmount: 20,
		StartDate:      d(2025, 3, 1),
		EndDate:        d(2025, 3, 31),
	}
	assert.NoError(t, ValidatePriceRule(&rule))

	// Rule một ngày vẫn hợp lệ vì hai đầu đều tính
	rule.EndDate = rule.StartDate
	assert.NoError(t, ValidatePriceRule(&rule))
}

func TestValidatePriceRuleRejectsBadInput(t *testing.T) {
	valid := models.PriceRule{
		NameOfSale:     "Sale",
		DiscountType:   models.DiscountTypeNominal,
		DiscountAmount: 100000,
		StartDate:      d(2025, 3, 1),
		EndDate:        d(2025, 3, 31),
	}

	rule := valid
	rule.NameOfSale = ""
	assert.Error(t, ValidatePriceRule(&rule))

	rule = valid
	rule.DiscountType = "coupon"
	assert.Error(t, ValidatePriceRule(&rule))

	rule = valid
	rule.DiscountAmount = 0
	assert.Error(t, ValidatePriceRule(&rule))

	rule = valid
	rule.DiscountType = models.DiscountTypePercentage
	rule.DiscountAmount = 120
	assert.Error(t, ValidatePriceRule(&rule))

	rule = valid
	rule.EndDate = d(2025, 2, 1)
	assert.Error(t, ValidatePriceRule(&rule))
}

func TestValidateBookingDates(t *testing.T) {
	assert.NoError(t, ValidateBookingDates(d(2025, 3, 10), d(2025, 3, 15)))

	// Phải ở ít nhất một đêm
	assert.Error(t, ValidateBookingDates(d(2025, 3, 10), d(2025, 3, 10)))
	assert.Error(t, ValidateBookingDates(d(2025, 3, 15), d(2025, 3, 10)))
}

func TestValidateGuestInfo(t *testing.T) {
	assert.NoError(t, ValidateGuestInfo("Nguyễn Văn A", "0912345678"))

	assert.Error(t, ValidateGuestInfo("", "0912345678"))
	assert.Error(t, ValidateGuestInfo("Nguyễn Văn A", ""))
	assert.Error(t, ValidateGuestInfo("Nguyễn Văn A", "12345"))
	assert.Error(t, ValidateGuestInfo("Nguyễn Văn A", "09123456789x"))
}
