package services

import (
	"testing"

	"stayhub/constants"
	"stayhub/models"

	"github.com/stretchr/testify/assert"
)

func uintPtr(v uint) *uint {
	return &v
}

func TestOverlaps(t *testing.T) {
	// Booking có sẵn: nhận 10/03, trả 15/03
	existingStart := d(2025, 3, 10)
	existingEnd := d(2025, 3, 15)

	// Đè lên giữa khoảng
	assert.True(t, Overlaps(d(2025, 3, 14), d(2025, 3, 16), existingStart, existingEnd))
	assert.True(t, Overlaps(d(2025, 3, 8), d(2025, 3, 11), existingStart, existingEnd))
	assert.True(t, Overlaps(d(2025, 3, 11), d(2025, 3, 13), existingStart, existingEnd))
	assert.True(t, Overlaps(d(2025, 3, 1), d(2025, 3, 31), existingStart, existingEnd))

	// Trả phòng đúng ngày booking kia nhận phòng thì không đụng
	assert.False(t, Overlaps(d(2025, 3, 1), d(2025, 3, 10), existingStart, existingEnd))
	assert.False(t, Overlaps(d(2025, 3, 15), d(2025, 3, 20), existingStart, existingEnd))
	assert.False(t, Overlaps(d(2025, 3, 20), d(2025, 3, 25), existingStart, existingEnd))
}

func TestOverlapsZeroNights(t *testing.T) {
	// Yêu cầu 0 đêm không bao giờ đụng, kể cả nằm giữa booking có sẵn
	assert.False(t, Overlaps(d(2025, 3, 12), d(2025, 3, 12), d(2025, 3, 10), d(2025, 3, 15)))
	assert.False(t, Overlaps(d(2025, 3, 12), d(2025, 3, 11), d(2025, 3, 10), d(2025, 3, 15)))
}

func TestCountOverlappingBookings(t *testing.T) {
	bookings := []models.Booking{
		{CheckInDate: d(2025, 3, 10), CheckOutDate: d(2025, 3, 15)},
		{CheckInDate: d(2025, 3, 14), CheckOutDate: d(2025, 3, 16)},
		{CheckInDate: d(2025, 3, 1), CheckOutDate: d(2025, 3, 10)},
	}

	// 01/03-10/03 chỉ chạm ngày trả phòng, không tính
	assert.Equal(t, 2, CountOverlappingBookings(bookings, d(2025, 3, 12), d(2025, 3, 15)))
	assert.Equal(t, 1, CountOverlappingBookings(bookings, d(2025, 3, 15), d(2025, 3, 16)))
	assert.Equal(t, 0, CountOverlappingBookings(bookings, d(2025, 3, 20), d(2025, 3, 22)))
}

func TestRoomTypeAvailability(t *testing.T) {
	bookings := []models.Booking{
		{CheckInDate: d(2025, 3, 10), CheckOutDate: d(2025, 3, 15)},
		{CheckInDate: d(2025, 3, 14), CheckOutDate: d(2025, 3, 16)},
	}

	res := RoomTypeAvailability(3, bookings, d(2025, 3, 14), d(2025, 3, 15))

	assert.Equal(t, 1, res.AvailableRooms)
	assert.True(t, res.IsAvailable)
}

func TestRoomTypeAvailabilityFullyBooked(t *testing.T) {
	bookings := []models.Booking{
		{CheckInDate: d(2025, 3, 10), CheckOutDate: d(2025, 3, 15)},
		{CheckInDate: d(2025, 3, 12), CheckOutDate: d(2025, 3, 14)},
	}

	res := RoomTypeAvailability(2, bookings, d(2025, 3, 12), d(2025, 3, 14))

	assert.Equal(t, 0, res.AvailableRooms)
	assert.False(t, res.IsAvailable)
}

func TestRoomTypeAvailabilityNegativeNotClamped(t *testing.T) {
	// Dữ liệu booking vượt số phòng thì trả số âm nguyên như vậy
	bookings := []models.Booking{
		{CheckInDate: d(2025, 3, 10), CheckOutDate: d(2025, 3, 15)},
		{CheckInDate: d(2025, 3, 11), CheckOutDate: d(2025, 3, 14)},
	}

	res := RoomTypeAvailability(1, bookings, d(2025, 3, 12), d(2025, 3, 13))

	assert.Equal(t, -1, res.AvailableRooms)
	assert.False(t, res.IsAvailable)
}

func TestGroupBookingsByRoomNumber(t *testing.T) {
	bookings := []models.Booking{
		{ID: 1, RoomNumberID: uintPtr(10)},
		{ID: 2, RoomNumberID: uintPtr(10)},
		{ID: 3, RoomNumberID: nil},
		{ID: 4, RoomNumberID: uintPtr(11)},
	}

	byRoom := GroupBookingsByRoomNumber(bookings)

	assert.Len(t, byRoom, 2)
	assert.Len(t, byRoom[10], 2)
	assert.Len(t, byRoom[11], 1)
}

func TestFreeRoomNumbers(t *testing.T) {
	rooms := []models.RoomNumber{
		{ID: 10, RoomNumber: "A101", Status: constants.RoomNumberStatusAvailable},
		{ID: 11, RoomNumber: "A102", Status: constants.RoomNumberStatusAvailable},
		{ID: 12, RoomNumber: "A103", Status: constants.RoomNumberStatusAvailable},
	}
	bookingsByRoom := map[uint][]models.Booking{
		10: {{CheckInDate: d(2025, 3, 10), CheckOutDate: d(2025, 3, 15)}},
		11: {{CheckInDate: d(2025, 3, 1), CheckOutDate: d(2025, 3, 10)}},
	}

	free := FreeRoomNumbers(rooms, bookingsByRoom, d(2025, 3, 12), d(2025, 3, 14))

	assert.Len(t, free, 2)
	assert.Equal(t, "A102", free[0].RoomNumber)
	assert.Equal(t, "A103", free[1].RoomNumber)
}

func TestFreeRoomNumbersExcludesMaintenanceRooms(t *testing.T) {
	// Phòng đang bảo trì không tính là trống dù không có booking nào
	rooms := []models.RoomNumber{
		{ID: 10, RoomNumber: "A101", Status: constants.RoomNumberStatusMaintenance},
		{ID: 11, RoomNumber: "A102", Status: constants.RoomNumberStatusAvailable},
	}

	free := FreeRoomNumbers(rooms, map[uint][]models.Booking{}, d(2025, 3, 12), d(2025, 3, 14))

	assert.Len(t, free, 1)
	assert.Equal(t, "A102", free[0].RoomNumber)
}

func TestRoomTypeAvailabilityRepeatedCallsSameResult(t *testing.T) {
	// Gọi lại với cùng input phải cho cùng kết quả, input không bị sửa
	bookings := []models.Booking{
		{CheckInDate: d(2025, 3, 10), CheckOutDate: d(2025, 3, 15)},
		{CheckInDate: d(2025, 3, 14), CheckOutDate: d(2025, 3, 16)},
	}

	first := RoomTypeAvailability(3, bookings, d(2025, 3, 14), d(2025, 3, 15))
	second := RoomTypeAvailability(3, bookings, d(2025, 3, 14), d(2025, 3, 15))

	assert.Equal(t, first, second)
	assert.Equal(t, d(2025, 3, 10), bookings[0].CheckInDate)
}
