package models

import (
	"fmt"
	"time"
)

type RoomNumber struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	RoomTypeID uint        `json:"roomTypeId" gorm:"index"`
	RoomNumber string      `json:"roomNumber"` // Mã hiển thị của phòng, ví dụ "A101"
	Status     int         `json:"status" gorm:"default:0"`
	CreatedAt  time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
	PriceRules []PriceRule `json:"priceRules" gorm:"foreignKey:RoomNumberID"`
}

func (r *RoomNumber) ValidateStatus() error {
	if r.Status < 0 || r.Status > 1 {
		return fmt.Errorf("invalid Status: %d, must be either 0 or 1", r.Status)
	}
	return nil
}
