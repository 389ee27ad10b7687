package dto

import "time"

// PriceRuleRequest là DTO cho request tạo hoặc cập nhật khuyến mãi.
// Ngày theo định dạng dd/mm/yyyy, cả hai đầu đều tính.
type PriceRuleRequest struct {
	ID             uint   `json:"id"`
	RoomNumberID   uint   `json:"roomNumberId"`
	NameOfSale     string `json:"nameOfSale"`
	DiscountType   string `json:"discountType"`
	DiscountAmount int    `json:"discountAmount"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	Status         int    `json:"status"`
}

type PriceRuleResponse struct {
	ID             uint      `json:"id"`
	RoomNumberID   uint      `json:"roomNumberId"`
	NameOfSale     string    `json:"nameOfSale"`
	DiscountType   string    `json:"discountType"`
	DiscountAmount int       `json:"discountAmount"`
	FinalPrice     int       `json:"finalPrice"`
	StartDate      string    `json:"startDate"`
	EndDate        string    `json:"endDate"`
	Status         int       `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
