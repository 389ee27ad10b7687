package services

import (
	"time"

	"stayhub/constants"
	"stayhub/models"
	"stayhub/services/logger"

	"gorm.io/gorm"
)

// PropertyService xử lý logic liên quan đến property
type PropertyService struct {
	db     *gorm.DB
	logger logger.Logger
}

// PropertyServiceOptions chứa các dependency của PropertyService
type PropertyServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

// NewPropertyService tạo instance mới của PropertyService
func NewPropertyService(opts PropertyServiceOptions) *PropertyService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &PropertyService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// RefreshLowestPrice tính lại giá thấp nhất hiện tại của property và lưu vào
// cột price. Giá tính qua LowestPriceForProperty nên khuyến mãi đang chạy
// cũng được tính.
func (s *PropertyService) RefreshLowestPrice(propertyID uint) error {
	var roomTypes []models.RoomType
	if err := s.db.
		Preload("RoomNumbers", "status = ?", constants.RoomNumberStatusAvailable).
		Preload("RoomNumbers.PriceRules").
		Where("property_id = ? AND status = ?", propertyID, constants.RoomTypeStatusActive).
		Find(&roomTypes).Error; err != nil {
		s.logger.Error("Không lấy được loại phòng cho property %d: %v", propertyID, err)
		return err
	}

	result := LowestPriceForProperty(roomTypes, time.Now())
	if result.Source == PriceSourceUnavailable {
		// Chưa có phòng nào, giữ nguyên giá cũ
		return nil
	}

	if err := s.db.Model(&models.Property{}).
		Where("id = ?", propertyID).
		Update("price", result.LowestPrice).Error; err != nil {
		s.logger.Error("Không cập nhật được giá thấp nhất cho property %d: %v", propertyID, err)
		return err
	}

	s.logger.Info("Đã cập nhật giá thấp nhất cho property %d: %d (%s)", propertyID, result.LowestPrice, result.Source)
	return nil
}

// RefreshAllLowestPrices tính lại giá thấp nhất cho tất cả property, chạy
// từ cron job hằng đêm vì khuyến mãi hết hạn làm giá lưu sẵn lệch đi
func (s *PropertyService) RefreshAllLowestPrices() error {
	var propertyIDs []uint
	if err := s.db.Model(&models.Property{}).Pluck("id", &propertyIDs).Error; err != nil {
		return err
	}

	for _, id := range propertyIDs {
		if err := s.RefreshLowestPrice(id); err != nil {
			s.logger.Error("Bỏ qua property %d: %v", id, err)
		}
	}
	return nil
}
