package controllers

import (
	"testing"
	"time"

	"stayhub/models"
	"stayhub/services"

	"github.com/stretchr/testify/assert"
)

func TestConvertToBookingResponse(t *testing.T) {
	roomNumberID := uint(7)
	booking := models.Booking{
		ID:         12,
		GuestName:  "Nguyễn Văn A",
		GuestEmail: "a@example.com",
		GuestPhone: "0912345678",
		Property: models.Property{
			ID:   3,
			Code: "TTL01",
			Name: "Trọ Thả Lỏng",
			City: "Đà Nẵng",
		},
		RoomType: models.RoomType{
			ID:        5,
			Name:      "Deluxe",
			BasePrice: 500000,
		},
		RoomNumberID: &roomNumberID,
		RoomNumber:   &models.RoomNumber{ID: 7, RoomNumber: "A102"},
		CheckInDate:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		Status:       models.BookingStatusPending,
		NightlyPrice: 400000,
		PriceSource:  services.PriceSourcePromotion,
		TotalPrice:   2000000,
	}

	res := convertToBookingResponse(booking)

	assert.Equal(t, uint(12), res.ID)
	assert.Equal(t, "Nguyễn Văn A", res.User.Name)
	assert.Equal(t, "TTL01", res.Property.Code)
	assert.Equal(t, "Deluxe", res.RoomType.Name)
	assert.Equal(t, "A102", res.RoomNumber)
	assert.Equal(t, "10/03/2025", res.CheckInDate)
	assert.Equal(t, "15/03/2025", res.CheckOutDate)
	assert.Equal(t, 400000, res.NightlyPrice)
	assert.Equal(t, services.PriceSourcePromotion, res.PriceSource)
	assert.Equal(t, 2000000, res.TotalPrice)
}

func TestConvertToBookingResponsePrefersRegisteredUser(t *testing.T) {
	userID := uint(9)
	booking := models.Booking{
		UserID:    &userID,
		User:      &models.User{ID: 9, Name: "Trần Thị B", Email: "b@example.com", PhoneNumber: "0987654321"},
		GuestName: "Khách cũ",
	}

	res := convertToBookingResponse(booking)

	assert.Equal(t, "Trần Thị B", res.User.Name)
	assert.Equal(t, "0987654321", res.User.PhoneNumber)
}
