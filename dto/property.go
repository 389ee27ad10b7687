package dto

import (
	"encoding/json"
	"time"
)

type PropertyResponse struct {
	ID        uint      `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	District  string    `json:"district"`
	Price     int       `json:"price"`
	Status    int       `json:"status"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PropertyDetail là DTO cho thông tin chi tiết của property
type PropertyDetail struct {
	ID               uint               `json:"id"`
	Code             string             `json:"code"`
	Name             string             `json:"name"`
	Address          string             `json:"address"`
	City             string             `json:"city"`
	District         string             `json:"district"`
	ShortDescription string             `json:"shortDescription"`
	Description      string             `json:"description"`
	Price            int                `json:"price"`
	Status           int                `json:"status"`
	Avatar           string             `json:"avatar"`
	Img              json.RawMessage    `json:"img"`
	TimeCheckIn      string             `json:"timeCheckIn"`
	TimeCheckOut     string             `json:"timeCheckOut"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
	RoomTypes        []RoomTypeResponse `json:"roomTypes"`
}

// DetailedPropertyResponse là DTO cho kết quả tìm kiếm theo thành phố, kèm
// giá thấp nhất và tình trạng phòng trong khoảng ngày yêu cầu
type DetailedPropertyResponse struct {
	ID          uint                        `json:"id"`
	Code        string                      `json:"code"`
	Name        string                      `json:"name"`
	Address     string                      `json:"address"`
	City        string                      `json:"city"`
	District    string                      `json:"district"`
	Avatar      string                      `json:"avatar"`
	LowestPrice int                         `json:"lowestPrice"`
	PriceSource string                      `json:"priceSource"`
	Promotion   *PromotionInfo              `json:"promotion,omitempty"`
	RoomTypes   []AvailableRoomTypeResponse `json:"roomTypes"`
}

// CreatePropertyRequest là DTO cho request tạo property
type CreatePropertyRequest struct {
	Code             string          `json:"code" binding:"required"`
	Name             string          `json:"name" binding:"required"`
	Address          string          `json:"address"`
	City             string          `json:"city" binding:"required"`
	District         string          `json:"district"`
	ShortDescription string          `json:"shortDescription"`
	Description      string          `json:"description"`
	Avatar           string          `json:"avatar"`
	Img              json.RawMessage `json:"img"`
	TimeCheckIn      string          `json:"timeCheckIn"`
	TimeCheckOut     string          `json:"timeCheckOut"`
}

// PropertySearchFilters là bộ lọc tìm kiếm property lưu lại giữa các lần gọi
type PropertySearchFilters struct {
	City     string     `json:"city"`
	District string     `json:"district"`
	Name     string     `json:"name"`
	PriceMin *int       `json:"priceMin"`
	PriceMax *int       `json:"priceMax"`
	FromDate *time.Time `json:"fromDate"`
	ToDate   *time.Time `json:"toDate"`
	Status   *int       `json:"status"`
}
