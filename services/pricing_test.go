package services

import (
	"testing"
	"time"

	"stayhub/constants"
	"stayhub/models"

	"github.com/stretchr/testify/assert"
)

func d(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func activeRule(name string, finalPrice int, start, end time.Time) models.PriceRule {
	return models.PriceRule{
		NameOfSale: name,
		FinalPrice: finalPrice,
		StartDate:  start,
		EndDate:    end,
		Status:     constants.PriceRuleStatusActive,
	}
}

func TestResolvePromotionNoRules(t *testing.T) {
	res := ResolvePromotion(500000, nil, d(2025, 3, 10))

	assert.Equal(t, 500000, res.Price)
	assert.Equal(t, PriceSourceRegular, res.Source)
	assert.Nil(t, res.AppliedRule)
}

func TestResolvePromotionActiveRuleWins(t *testing.T) {
	rules := []models.PriceRule{
		activeRule("Sale tháng 3", 400000, d(2025, 3, 1), d(2025, 3, 31)),
	}

	res := ResolvePromotion(500000, rules, d(2025, 3, 10))

	assert.Equal(t, 400000, res.Price)
	assert.Equal(t, PriceSourcePromotion, res.Source)
	assert.Equal(t, "Sale tháng 3", res.AppliedRule.NameOfSale)
}

func TestResolvePromotionSkipsInactiveRule(t *testing.T) {
	// Rule đã tắt không áp dụng dù khoảng ngày vẫn bao trùm onDate
	rules := []models.PriceRule{
		{NameOfSale: "Đã tắt", FinalPrice: 100000, StartDate: d(2025, 3, 1), EndDate: d(2025, 3, 31),
			Status: constants.PriceRuleStatusInactive},
	}

	res := ResolvePromotion(500000, rules, d(2025, 3, 10))

	assert.Equal(t, 500000, res.Price)
	assert.Equal(t, PriceSourceRegular, res.Source)
	assert.Nil(t, res.AppliedRule)
}

func TestResolvePromotionInactiveRuleDoesNotShadowActive(t *testing.T) {
	rules := []models.PriceRule{
		{NameOfSale: "Đã tắt", FinalPrice: 100000, StartDate: d(2025, 3, 1), EndDate: d(2025, 3, 31),
			Status: constants.PriceRuleStatusInactive},
		activeRule("Đang chạy", 450000, d(2025, 3, 1), d(2025, 3, 31)),
	}

	res := ResolvePromotion(500000, rules, d(2025, 3, 10))

	assert.Equal(t, 450000, res.Price)
	assert.Equal(t, "Đang chạy", res.AppliedRule.NameOfSale)
}

func TestResolvePromotionWindowInclusive(t *testing.T) {
	rules := []models.PriceRule{
		activeRule("Sale", 400000, d(2025, 3, 1), d(2025, 3, 31)),
	}

	// Cả hai đầu của khoảng khuyến mãi đều tính
	assert.Equal(t, PriceSourcePromotion, ResolvePromotion(500000, rules, d(2025, 3, 1)).Source)
	assert.Equal(t, PriceSourcePromotion, ResolvePromotion(500000, rules, d(2025, 3, 31)).Source)

	assert.Equal(t, PriceSourceRegular, ResolvePromotion(500000, rules, d(2025, 2, 28)).Source)
	assert.Equal(t, PriceSourceRegular, ResolvePromotion(500000, rules, d(2025, 4, 1)).Source)
}

func TestResolvePromotionNotCheaperThanBase(t *testing.T) {
	rules := []models.PriceRule{
		activeRule("Sale", 600000, d(2025, 3, 1), d(2025, 3, 31)),
	}

	res := ResolvePromotion(500000, rules, d(2025, 3, 10))

	assert.Equal(t, 500000, res.Price)
	assert.Equal(t, PriceSourceRegular, res.Source)
}

func TestResolvePromotionEqualToBaseIsRegular(t *testing.T) {
	rules := []models.PriceRule{
		activeRule("Sale", 500000, d(2025, 3, 1), d(2025, 3, 31)),
	}

	res := ResolvePromotion(500000, rules, d(2025, 3, 10))

	assert.Equal(t, PriceSourceRegular, res.Source)
}

func TestResolvePromotionPicksCheapestRule(t *testing.T) {
	rules := []models.PriceRule{
		activeRule("A", 450000, d(2025, 3, 1), d(2025, 3, 31)),
		activeRule("B", 380000, d(2025, 3, 1), d(2025, 3, 31)),
		activeRule("C", 420000, d(2025, 3, 1), d(2025, 3, 31)),
	}

	res := ResolvePromotion(500000, rules, d(2025, 3, 10))

	assert.Equal(t, 380000, res.Price)
	assert.Equal(t, "B", res.AppliedRule.NameOfSale)
}

func TestResolvePromotionTieFirstRuleWins(t *testing.T) {
	rules := []models.PriceRule{
		activeRule("A", 400000, d(2025, 3, 1), d(2025, 3, 31)),
		activeRule("B", 400000, d(2025, 3, 1), d(2025, 3, 31)),
	}

	res := ResolvePromotion(500000, rules, d(2025, 3, 10))

	assert.Equal(t, "A", res.AppliedRule.NameOfSale)
}

func TestResolvePromotionSkipsExpiredRule(t *testing.T) {
	rules := []models.PriceRule{
		activeRule("Hết hạn", 300000, d(2025, 1, 1), d(2025, 1, 31)),
		activeRule("Đang chạy", 450000, d(2025, 3, 1), d(2025, 3, 31)),
	}

	res := ResolvePromotion(500000, rules, d(2025, 3, 10))

	assert.Equal(t, 450000, res.Price)
	assert.Equal(t, "Đang chạy", res.AppliedRule.NameOfSale)
}

func TestResolvePromotionTrustsStoredFinalPrice(t *testing.T) {
	// FinalPrice được tính lúc tạo rule, base price đổi sau đó không tính lại
	rules := []models.PriceRule{
		{DiscountType: models.DiscountTypePercentage, DiscountAmount: 20, FinalPrice: 400000,
			StartDate: d(2025, 3, 1), EndDate: d(2025, 3, 31), Status: constants.PriceRuleStatusActive},
	}

	res := ResolvePromotion(600000, rules, d(2025, 3, 10))

	assert.Equal(t, 400000, res.Price)
}

func TestResolvePromotionRepeatedCallsSameResult(t *testing.T) {
	// Gọi lại với cùng input phải cho cùng kết quả, input không bị sửa
	rules := []models.PriceRule{
		activeRule("A", 450000, d(2025, 3, 1), d(2025, 3, 31)),
		activeRule("B", 380000, d(2025, 3, 1), d(2025, 3, 31)),
	}

	first := ResolvePromotion(500000, rules, d(2025, 3, 10))
	second := ResolvePromotion(500000, rules, d(2025, 3, 10))

	assert.Equal(t, first, second)
	assert.Equal(t, "A", rules[0].NameOfSale)
	assert.Equal(t, 380000, rules[1].FinalPrice)
}

func TestLowestPriceForRoomTypeNoRooms(t *testing.T) {
	roomType := models.RoomType{Name: "Deluxe", BasePrice: 500000}

	res := LowestPriceForRoomType(roomType, d(2025, 3, 10))

	assert.Equal(t, 0, res.LowestPrice)
	assert.Equal(t, PriceSourceUnavailable, res.Source)
	assert.Nil(t, res.Promotion)
}

func TestLowestPriceForRoomTypePromotionDetails(t *testing.T) {
	roomType := models.RoomType{
		Name:      "Deluxe",
		BasePrice: 500000,
		RoomNumbers: []models.RoomNumber{
			{ID: 1, RoomNumber: "A101"},
			{ID: 2, RoomNumber: "A102", PriceRules: []models.PriceRule{
				{NameOfSale: "Sale xuân", DiscountType: models.DiscountTypePercentage, DiscountAmount: 20,
					FinalPrice: 400000, StartDate: d(2025, 3, 1), EndDate: d(2025, 3, 31),
					Status: constants.PriceRuleStatusActive},
			}},
		},
	}

	res := LowestPriceForRoomType(roomType, d(2025, 3, 10))

	assert.Equal(t, 400000, res.LowestPrice)
	assert.Equal(t, PriceSourcePromotion, res.Source)
	assert.NotNil(t, res.Promotion)
	assert.Equal(t, "Sale xuân", res.Promotion.NameOfSale)
	assert.Equal(t, "A102", res.Promotion.RoomNumber)
	assert.Equal(t, "Deluxe", res.Promotion.RoomTypeName)
}

func TestLowestPriceForRoomTypeRegularWhenNoActivePromotion(t *testing.T) {
	roomType := models.RoomType{
		Name:      "Standard",
		BasePrice: 300000,
		RoomNumbers: []models.RoomNumber{
			{ID: 1, RoomNumber: "B201"},
		},
	}

	res := LowestPriceForRoomType(roomType, d(2025, 3, 10))

	assert.Equal(t, 300000, res.LowestPrice)
	assert.Equal(t, PriceSourceRegular, res.Source)
	assert.Nil(t, res.Promotion)
}

func TestLowestPriceForRoomTypeRepeatedCallsSameResult(t *testing.T) {
	roomType := models.RoomType{
		Name:      "Deluxe",
		BasePrice: 500000,
		RoomNumbers: []models.RoomNumber{
			{ID: 1, RoomNumber: "A101"},
			{ID: 2, RoomNumber: "A102", PriceRules: []models.PriceRule{
				activeRule("Sale", 400000, d(2025, 3, 1), d(2025, 3, 31)),
			}},
		},
	}

	first := LowestPriceForRoomType(roomType, d(2025, 3, 10))
	second := LowestPriceForRoomType(roomType, d(2025, 3, 10))

	assert.Equal(t, first, second)
}

func TestLowestPriceForPropertySkipsEmptyRoomTypes(t *testing.T) {
	roomTypes := []models.RoomType{
		{Name: "Chưa có phòng", BasePrice: 100000},
		{Name: "Standard", BasePrice: 300000, RoomNumbers: []models.RoomNumber{{ID: 1, RoomNumber: "B201"}}},
		{Name: "Deluxe", BasePrice: 500000, RoomNumbers: []models.RoomNumber{
			{ID: 2, RoomNumber: "A101", PriceRules: []models.PriceRule{
				activeRule("Sale", 250000, d(2025, 3, 1), d(2025, 3, 31)),
			}},
		}},
	}

	res := LowestPriceForProperty(roomTypes, d(2025, 3, 10))

	assert.Equal(t, 250000, res.LowestPrice)
	assert.Equal(t, PriceSourcePromotion, res.Source)
}

func TestLowestPriceForPropertyAllUnavailable(t *testing.T) {
	roomTypes := []models.RoomType{
		{Name: "A", BasePrice: 100000},
		{Name: "B", BasePrice: 200000},
	}

	res := LowestPriceForProperty(roomTypes, d(2025, 3, 10))

	assert.Equal(t, 0, res.LowestPrice)
	assert.Equal(t, PriceSourceUnavailable, res.Source)
}
