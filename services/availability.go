package services

import (
	"time"

	"stayhub/constants"
	"stayhub/models"
)

// AvailabilityResult là kết quả tính phòng trống cho một loại phòng
type AvailabilityResult struct {
	AvailableRooms int  `json:"availableRooms"`
	IsAvailable    bool `json:"isAvailable"`
}

// Overlaps kiểm tra khoảng ngày yêu cầu có đụng booking đã có không.
// Check-in tính là đêm ở, check-out thì không. Yêu cầu 0 đêm
// (requestedStart == requestedEnd) không bao giờ đụng.
func Overlaps(requestedStart, requestedEnd, existingStart, existingEnd time.Time) bool {
	if !requestedEnd.After(requestedStart) {
		return false
	}
	return requestedStart.Before(existingEnd) && requestedEnd.After(existingStart)
}

// CountOverlappingBookings đếm số booking đụng khoảng ngày yêu cầu.
// Danh sách booking do caller lọc sẵn (chỉ booking còn hiệu lực).
func CountOverlappingBookings(bookings []models.Booking, checkIn, checkOut time.Time) int {
	count := 0
	for _, booking := range bookings {
		if Overlaps(checkIn, checkOut, booking.CheckInDate, booking.CheckOutDate) {
			count++
		}
	}
	return count
}

// RoomTypeAvailability tính số phòng trống của một loại phòng trong khoảng
// ngày yêu cầu. Kết quả âm nghĩa là dữ liệu booking vượt quá số phòng, trả
// nguyên như vậy chứ không ép về 0 để lỗi dữ liệu còn nhìn thấy được.
func RoomTypeAvailability(quantityRoom int, bookings []models.Booking, checkIn, checkOut time.Time) AvailabilityResult {
	available := quantityRoom - CountOverlappingBookings(bookings, checkIn, checkOut)
	return AvailabilityResult{
		AvailableRooms: available,
		IsAvailable:    available > 0,
	}
}

// GroupBookingsByRoomNumber gom booking theo room number id, bỏ qua booking
// chưa gắn phòng cụ thể
func GroupBookingsByRoomNumber(bookings []models.Booking) map[uint][]models.Booking {
	byRoom := make(map[uint][]models.Booking)
	for _, booking := range bookings {
		if booking.RoomNumberID == nil {
			continue
		}
		byRoom[*booking.RoomNumberID] = append(byRoom[*booking.RoomNumberID], booking)
	}
	return byRoom
}

// FreeRoomNumbers trả về các phòng chưa có booking nào đụng khoảng ngày yêu
// cầu. bookingsByRoom là booking còn hiệu lực gom theo room number id.
// Phòng đang bảo trì không tính là trống.
func FreeRoomNumbers(roomNumbers []models.RoomNumber, bookingsByRoom map[uint][]models.Booking, checkIn, checkOut time.Time) []models.RoomNumber {
	free := make([]models.RoomNumber, 0)
	for _, room := range roomNumbers {
		if room.Status != constants.RoomNumberStatusAvailable {
			continue
		}
		if CountOverlappingBookings(bookingsByRoom[room.ID], checkIn, checkOut) == 0 {
			free = append(free, room)
		}
	}
	return free
}
