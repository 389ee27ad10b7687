package models

import (
	"time"
)

// Booking status constants
const (
	BookingStatusPending   = 0
	BookingStatusConfirmed = 1
	BookingStatusCancelled = 2
)

type Booking struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	UserID       *uint       `json:"userId"`
	User         *User       `json:"user" gorm:"foreignKey:UserID"`
	PropertyID   uint        `json:"propertyId"`
	Property     Property    `json:"property" gorm:"foreignKey:PropertyID"`
	RoomTypeID   uint        `json:"roomTypeId" gorm:"index"`
	RoomType     RoomType    `json:"roomType" gorm:"foreignKey:RoomTypeID"`
	RoomNumberID *uint       `json:"roomNumberId" gorm:"index"`
	RoomNumber   *RoomNumber `json:"roomNumber" gorm:"foreignKey:RoomNumberID"`
	CheckInDate  time.Time   `json:"checkInDate" gorm:"index"`  // Ngày nhận phòng (tính đêm này)
	CheckOutDate time.Time   `json:"checkOutDate" gorm:"index"` // Ngày trả phòng (không tính đêm này)
	Status       int         `json:"status"`
	GuestName    string      `json:"guestName,omitempty"`
	GuestEmail   string      `json:"guestEmail,omitempty"`
	GuestPhone   string      `json:"guestPhone,omitempty"`
	NightlyPrice int         `json:"nightlyPrice"` // Giá mỗi đêm tại thời điểm đặt
	PriceSource  string      `json:"priceSource"`  // regular hoặc promotion, chốt lúc đặt
	TotalPrice   int         `json:"totalPrice"`   // Tổng giá = số đêm * giá mỗi đêm
	CreatedAt    time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
}
