package services

import (
	"time"

	"stayhub/constants"
	"stayhub/models"
)

// Nguồn giá trả về khi tính giá cho phòng
const (
	PriceSourceRegular     = "regular"
	PriceSourcePromotion   = "promotion"
	PriceSourceUnavailable = "unavailable"
)

// PriceResolution là kết quả tính giá cho một phòng tại một ngày
type PriceResolution struct {
	Price       int               `json:"price"`
	Source      string            `json:"source"`
	AppliedRule *models.PriceRule `json:"appliedRule,omitempty"`
}

// PromotionDetails là thông tin khuyến mãi thắng khi tính giá thấp nhất
type PromotionDetails struct {
	NameOfSale     string    `json:"nameOfSale"`
	DiscountType   string    `json:"discountType"`
	DiscountAmount int       `json:"discountAmount"`
	RoomNumber     string    `json:"roomNumber"`
	RoomTypeName   string    `json:"roomTypeName"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
}

// LowestPriceResult là kết quả giá thấp nhất của một loại phòng hoặc một property
type LowestPriceResult struct {
	LowestPrice int               `json:"lowestPrice"`
	Source      string            `json:"source"`
	Promotion   *PromotionDetails `json:"promotion,omitempty"`
}

// ruleActiveOn kiểm tra rule có hiệu lực tại onDate không, tính cả hai đầu.
// Rule đã tắt không áp dụng dù còn trong khoảng ngày.
func ruleActiveOn(rule *models.PriceRule, onDate time.Time) bool {
	if rule.Status != constants.PriceRuleStatusActive {
		return false
	}
	return !onDate.Before(rule.StartDate) && !onDate.After(rule.EndDate)
}

// ResolvePromotion chọn giá áp dụng cho một phòng tại onDate.
// Trong các rule còn hiệu lực, lấy rule có final_price nhỏ nhất (rule đứng
// trước thắng khi bằng giá). Không có rule nào rẻ hơn giá gốc thì trả giá gốc.
// FinalPrice được tin như đã lưu, không tính lại từ discount_amount.
func ResolvePromotion(basePrice int, rules []models.PriceRule, onDate time.Time) PriceResolution {
	var best *models.PriceRule
	for i := range rules {
		if !ruleActiveOn(&rules[i], onDate) {
			continue
		}
		if best == nil || rules[i].FinalPrice < best.FinalPrice {
			best = &rules[i]
		}
	}

	if best == nil || best.FinalPrice >= basePrice {
		return PriceResolution{Price: basePrice, Source: PriceSourceRegular}
	}

	return PriceResolution{Price: best.FinalPrice, Source: PriceSourcePromotion, AppliedRule: best}
}

// LowestPriceForRoomType tính giá thấp nhất trong tất cả các phòng của một
// loại phòng. Loại phòng chưa có phòng nào thì trả sentinel "unavailable"
// với giá 0 để phía hiển thị luôn có giá trị.
func LowestPriceForRoomType(roomType models.RoomType, onDate time.Time) LowestPriceResult {
	if len(roomType.RoomNumbers) == 0 {
		return LowestPriceResult{LowestPrice: 0, Source: PriceSourceUnavailable}
	}

	var bestRes PriceResolution
	var bestRoom *models.RoomNumber
	for i := range roomType.RoomNumbers {
		room := &roomType.RoomNumbers[i]
		res := ResolvePromotion(roomType.BasePrice, room.PriceRules, onDate)
		if bestRoom == nil || res.Price < bestRes.Price {
			bestRes = res
			bestRoom = room
		}
	}

	result := LowestPriceResult{LowestPrice: bestRes.Price, Source: bestRes.Source}
	if bestRes.Source == PriceSourcePromotion && bestRes.AppliedRule != nil {
		rule := bestRes.AppliedRule
		result.Promotion = &PromotionDetails{
			NameOfSale:     rule.NameOfSale,
			DiscountType:   rule.DiscountType,
			DiscountAmount: rule.DiscountAmount,
			RoomNumber:     bestRoom.RoomNumber,
			RoomTypeName:   roomType.Name,
			StartDate:      rule.StartDate,
			EndDate:        rule.EndDate,
		}
	}
	return result
}

// LowestPriceForProperty tính giá thấp nhất của cả property: chạy lại phép
// gộp trên kết quả tốt nhất của từng loại phòng.
func LowestPriceForProperty(roomTypes []models.RoomType, onDate time.Time) LowestPriceResult {
	best := LowestPriceResult{LowestPrice: 0, Source: PriceSourceUnavailable}
	found := false
	for i := range roomTypes {
		r := LowestPriceForRoomType(roomTypes[i], onDate)
		if r.Source == PriceSourceUnavailable {
			continue
		}
		if !found || r.LowestPrice < best.LowestPrice {
			best = r
			found = true
		}
	}
	return best
}
