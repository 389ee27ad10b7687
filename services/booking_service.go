package services

import (
	"time"

	"stayhub/errors"
	"stayhub/models"

	"gorm.io/gorm"
)

// BookingService xử lý logic liên quan đến booking
type BookingService struct {
	db *gorm.DB
}

// NewBookingService tạo instance mới của BookingService
func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

// ActiveBookingsForRoomType lấy các booking chưa hủy của một loại phòng có
// đụng khoảng ngày yêu cầu
func (s *BookingService) ActiveBookingsForRoomType(roomTypeID uint, checkIn, checkOut time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Where("room_type_id = ? AND status != ? AND check_in_date < ? AND check_out_date > ?",
		roomTypeID, models.BookingStatusCancelled, checkOut, checkIn).Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// ActiveBookingsByRoomNumber gom các booking chưa hủy của một loại phòng
// theo room number id, chỉ lấy booking gắn với phòng cụ thể
func (s *BookingService) ActiveBookingsByRoomNumber(roomTypeID uint, checkIn, checkOut time.Time) (map[uint][]models.Booking, error) {
	bookings, err := s.ActiveBookingsForRoomType(roomTypeID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	return GroupBookingsByRoomNumber(bookings), nil
}

// Create tạo booking mới
func (s *BookingService) Create(booking *models.Booking) error {
	return s.db.Create(booking).Error
}

// GetByID lấy booking theo ID
func (s *BookingService) GetByID(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, bookingID).Error; err != nil {
		return nil, errors.ErrBookingNotFound
	}
	return &booking, nil
}

// Confirm xác nhận booking
func (s *BookingService) Confirm(booking *models.Booking) error {
	if booking.Status == models.BookingStatusCancelled {
		return errors.ErrBookingCancelled
	}
	if booking.Status == models.BookingStatusConfirmed {
		return errors.ErrBookingConfirmed
	}
	booking.Status = models.BookingStatusConfirmed
	return s.db.Save(booking).Error
}

// Cancel hủy booking
func (s *BookingService) Cancel(booking *models.Booking) error {
	if booking.Status == models.BookingStatusCancelled {
		return errors.ErrBookingCancelled
	}
	booking.Status = models.BookingStatusCancelled
	return s.db.Save(booking).Error
}
