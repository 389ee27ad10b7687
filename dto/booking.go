package dto

import "time"

// ActorResponse là thông tin người đặt, user đã đăng ký hoặc khách vãng lai
type ActorResponse struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

type BookingPropertyResponse struct {
	ID      uint   `json:"id"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Avatar  string `json:"avatar"`
}

type BookingRoomTypeResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	BasePrice int    `json:"basePrice"`
}

// CreateBookingRequest là DTO cho request tạo booking.
// Ngày theo định dạng dd/mm/yyyy, check-out không tính đêm ở.
type CreateBookingRequest struct {
	UserID       uint   `json:"userId"`
	PropertyID   uint   `json:"propertyId" binding:"required"`
	RoomTypeID   uint   `json:"roomTypeId" binding:"required"`
	RoomNumberID *uint  `json:"roomNumberId"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	GuestName    string `json:"guestName,omitempty"`
	GuestEmail   string `json:"guestEmail,omitempty"`
	GuestPhone   string `json:"guestPhone,omitempty"`
}

type BookingResponse struct {
	ID           uint                    `json:"id"`
	User         ActorResponse           `json:"user"`
	Property     BookingPropertyResponse `json:"property"`
	RoomType     BookingRoomTypeResponse `json:"roomType"`
	RoomNumber   string                  `json:"roomNumber,omitempty"`
	CheckInDate  string                  `json:"checkInDate"`
	CheckOutDate string                  `json:"checkOutDate"`
	Status       int                     `json:"status"`
	NightlyPrice int                     `json:"nightlyPrice"`
	PriceSource  string                  `json:"priceSource,omitempty"`
	TotalPrice   int                     `json:"totalPrice"`
	CreatedAt    time.Time               `json:"createdAt"`
	UpdatedAt    time.Time               `json:"updatedAt"`
}
