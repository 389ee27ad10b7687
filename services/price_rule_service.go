package services

import (
	"stayhub/errors"
	"stayhub/models"

	"gorm.io/gorm"
)

// PriceRuleService xử lý logic liên quan đến khuyến mãi giá phòng
type PriceRuleService struct {
	db *gorm.DB
}

// NewPriceRuleService tạo instance mới của PriceRuleService
func NewPriceRuleService(db *gorm.DB) *PriceRuleService {
	return &PriceRuleService{db: db}
}

// ComputeFinalPrice tính giá sau giảm tại thời điểm tạo rule. Giá này được
// lưu vào final_price và dùng nguyên như vậy khi đọc, base price đổi sau đó
// không làm tính lại.
func ComputeFinalPrice(basePrice int, discountType string, discountAmount int) (int, error) {
	switch discountType {
	case models.DiscountTypePercentage:
		return basePrice - basePrice*discountAmount/100, nil
	case models.DiscountTypeNominal:
		return basePrice - discountAmount, nil
	}
	return 0, errors.NewAppError(errors.ErrCodeInvalidDiscountType, "Loại giảm giá không hợp lệ: "+discountType, nil)
}

// Create tạo price rule mới, tính sẵn final_price từ base price của loại phòng
func (s *PriceRuleService) Create(rule *models.PriceRule) error {
	var room models.RoomNumber
	if err := s.db.First(&room, rule.RoomNumberID).Error; err != nil {
		return errors.ErrRoomNumberNotFound
	}

	var roomType models.RoomType
	if err := s.db.First(&roomType, room.RoomTypeID).Error; err != nil {
		return errors.ErrRoomTypeNotFound
	}

	finalPrice, err := ComputeFinalPrice(roomType.BasePrice, rule.DiscountType, rule.DiscountAmount)
	if err != nil {
		return err
	}
	rule.FinalPrice = finalPrice

	return s.db.Create(rule).Error
}

// Update cập nhật price rule, tính lại final_price khi mức giảm thay đổi
func (s *PriceRuleService) Update(rule *models.PriceRule) error {
	var room models.RoomNumber
	if err := s.db.First(&room, rule.RoomNumberID).Error; err != nil {
		return errors.ErrRoomNumberNotFound
	}

	var roomType models.RoomType
	if err := s.db.First(&roomType, room.RoomTypeID).Error; err != nil {
		return errors.ErrRoomTypeNotFound
	}

	finalPrice, err := ComputeFinalPrice(roomType.BasePrice, rule.DiscountType, rule.DiscountAmount)
	if err != nil {
		return err
	}
	rule.FinalPrice = finalPrice

	return s.db.Save(rule).Error
}
