package dto

import (
	"encoding/json"
	"time"
)

type RoomTypeResponse struct {
	ID           uint      `json:"id"`
	PropertyID   uint      `json:"propertyId"`
	Name         string    `json:"name"`
	BasePrice    int       `json:"basePrice"`
	QuantityRoom int       `json:"quantityRoom"`
	NumBed       int       `json:"numBed"`
	NumTolet     int       `json:"numTolet"`
	Acreage      int       `json:"acreage"`
	People       int       `json:"people"`
	Status       int       `json:"status"`
	Avatar       string    `json:"avatar"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PromotionInfo là thông tin khuyến mãi thắng trong kết quả giá thấp nhất
type PromotionInfo struct {
	NameOfSale     string `json:"nameOfSale"`
	DiscountType   string `json:"discountType"`
	DiscountAmount int    `json:"discountAmount"`
	RoomNumber     string `json:"roomNumber"`
	RoomTypeName   string `json:"roomTypeName"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
}

// AvailableRoomTypeResponse là DTO cho loại phòng kèm tình trạng trống và
// giá thấp nhất trong khoảng ngày yêu cầu
type AvailableRoomTypeResponse struct {
	ID             uint           `json:"id"`
	PropertyID     uint           `json:"propertyId"`
	Name           string         `json:"name"`
	BasePrice      int            `json:"basePrice"`
	QuantityRoom   int            `json:"quantityRoom"`
	NumBed         int            `json:"numBed"`
	People         int            `json:"people"`
	Avatar         string         `json:"avatar"`
	AvailableRooms int            `json:"availableRooms"`
	IsAvailable    bool           `json:"isAvailable"`
	LowestPrice    int            `json:"lowestPrice"`
	PriceSource    string         `json:"priceSource"`
	Promotion      *PromotionInfo `json:"promotion,omitempty"`
	FreeRooms      []string       `json:"freeRooms,omitempty"`
}

// CreateRoomTypeRequest là DTO cho request tạo loại phòng
type CreateRoomTypeRequest struct {
	PropertyID   uint            `json:"propertyId" binding:"required"`
	Name         string          `json:"name" binding:"required"`
	BasePrice    int             `json:"basePrice" binding:"required"`
	QuantityRoom int             `json:"quantityRoom" binding:"required"`
	NumBed       int             `json:"numBed"`
	NumTolet     int             `json:"numTolet"`
	Acreage      int             `json:"acreage"`
	People       int             `json:"people"`
	Description  string          `json:"description"`
	Avatar       string          `json:"avatar"`
	Img          json.RawMessage `json:"img"`
}

// RoomTypeRequest là DTO cho request cập nhật loại phòng
type RoomTypeRequest struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	BasePrice    int             `json:"basePrice"`
	QuantityRoom int             `json:"quantityRoom"`
	NumBed       int             `json:"numBed"`
	NumTolet     int             `json:"numTolet"`
	Acreage      int             `json:"acreage"`
	People       int             `json:"people"`
	Description  string          `json:"description"`
	Status       int             `json:"status"`
	Avatar       string          `json:"avatar"`
	Img          json.RawMessage `json:"img"`
}
