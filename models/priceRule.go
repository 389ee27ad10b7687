package models

import (
	"fmt"
	"time"
)

// Discount type
const (
	DiscountTypePercentage = "percentage"
	DiscountTypeNominal    = "nominal"
)

type PriceRule struct {
	ID             uint      `json:"id" gorm:"primaryKey"`       // ID cho khuyến mãi
	RoomNumberID   uint      `json:"roomNumberId" gorm:"index"`  // Phòng áp dụng khuyến mãi
	NameOfSale     string    `json:"nameOfSale"`                 // Tên chương trình khuyến mãi
	DiscountType   string    `json:"discountType"`               // percentage hoặc nominal
	DiscountAmount int       `json:"discountAmount"`             // Mức giảm (% hoặc số tiền)
	FinalPrice     int       `json:"finalPrice"`                 // Giá sau giảm, tính sẵn lúc tạo
	StartDate      time.Time `json:"startDate" gorm:"index"`     // Ngày bắt đầu (tính cả ngày này)
	EndDate        time.Time `json:"endDate" gorm:"index"`       // Ngày kết thúc (tính cả ngày này)
	Status         int       `json:"status" gorm:"default:1"`    // Trạng thái của chương trình
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (p *PriceRule) ValidateStatus() error {
	if p.Status < 0 || p.Status > 1 {
		return fmt.Errorf("invalid Status: %d, must be either 0 or 1", p.Status)
	}
	return nil
}

func (p *PriceRule) ValidateDiscountType() error {
	if p.DiscountType != DiscountTypePercentage && p.DiscountType != DiscountTypeNominal {
		return fmt.Errorf("invalid DiscountType: %s, must be percentage or nominal", p.DiscountType)
	}
	return nil
}
