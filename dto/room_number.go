package dto

import "time"

type RoomNumberResponse struct {
	ID         uint      `json:"id"`
	RoomTypeID uint      `json:"roomTypeId"`
	RoomNumber string    `json:"roomNumber"`
	Status     int       `json:"status"`
	IsFree     *bool     `json:"isFree,omitempty"` // Chỉ trả khi có khoảng ngày yêu cầu
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CreateRoomNumberRequest là DTO cho request tạo phòng
type CreateRoomNumberRequest struct {
	RoomTypeID uint   `json:"roomTypeId" binding:"required"`
	RoomNumber string `json:"roomNumber" binding:"required"`
}

// RoomNumberRequest là DTO cho request cập nhật phòng. Status là con trỏ để
// phân biệt không gửi với gửi giá trị 0.
type RoomNumberRequest struct {
	ID         uint   `json:"id"`
	RoomNumber string `json:"roomNumber"`
	Status     *int   `json:"status"`
}
