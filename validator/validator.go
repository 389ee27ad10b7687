package validator

import (
	"regexp"
	"time"

	"stayhub/errors"
	"stayhub/models"
)

// ValidateProperty validate thông tin property
func ValidateProperty(property *models.Property) error {
	if property.Code == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mã property không được để trống", nil)
	}

	if property.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên property không được để trống", nil)
	}

	if property.City == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Thành phố không được để trống", nil)
	}

	return nil
}

// ValidateRoomType validate thông tin loại phòng
func ValidateRoomType(roomType *models.RoomType) error {
	if roomType.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên loại phòng không được để trống", nil)
	}

	if roomType.BasePrice <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá gốc phải lớn hơn 0", nil)
	}

	if roomType.QuantityRoom <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Số lượng phòng phải lớn hơn 0", nil)
	}

	return nil
}

// ValidatePriceRule validate thông tin khuyến mãi giá phòng
func ValidatePriceRule(rule *models.PriceRule) error {
	if rule.NameOfSale == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khuyến mãi không được để trống", nil)
	}

	if err := rule.ValidateDiscountType(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidDiscountType, "Loại giảm giá không hợp lệ", err)
	}

	if rule.DiscountAmount <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Mức giảm phải lớn hơn 0", nil)
	}

	if rule.DiscountType == models.DiscountTypePercentage && rule.DiscountAmount > 100 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Mức giảm theo phần trăm phải nằm trong khoảng từ 0 đến 100", nil)
	}

	// Hai đầu đều tính nên start == end là rule một ngày, vẫn hợp lệ
	if rule.EndDate.Before(rule.StartDate) {
		return errors.NewAppError(errors.ErrCodeInvalidDateRange, "Ngày kết thúc phải sau hoặc bằng ngày bắt đầu", nil)
	}

	return nil
}

// ValidateBookingDates validate khoảng ngày đặt phòng, phải ở ít nhất một đêm
func ValidateBookingDates(checkInDate, checkOutDate time.Time) error {
	if !checkOutDate.After(checkInDate) {
		return errors.NewAppError(errors.ErrCodeInvalidDateRange, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}
	return nil
}

// ValidateGuestInfo validate thông tin khách vãng lai khi booking không gắn user
func ValidateGuestInfo(guestName, guestPhone string) error {
	if guestName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách không được để trống", nil)
	}
	if guestPhone == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại khách không được để trống", nil)
	}
	if !isValidPhone(guestPhone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại khách không hợp lệ", nil)
	}
	return nil
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10}$`)
	return phoneRegex.MatchString(phone)
}
