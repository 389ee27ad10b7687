package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type RoomType struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	PropertyID   uint            `json:"propertyId"`
	Name         string          `json:"name"`
	BasePrice    int             `json:"basePrice"`    // Giá gốc cho mỗi đêm
	QuantityRoom int             `json:"quantityRoom"` // Tổng số phòng vật lý của loại này
	NumBed       int             `json:"numBed"`
	NumTolet     int             `json:"numTolet"`
	Acreage      int             `json:"acreage"`
	People       int             `json:"people"`
	Description  string          `json:"description"`
	Status       int             `json:"status" gorm:"default:0"`
	Avatar       string          `json:"avatar"`
	Img          json.RawMessage `json:"img" gorm:"type:json"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Parent       Property        `json:"parent" gorm:"foreignKey:PropertyID"`
	RoomNumbers  []RoomNumber    `json:"roomNumbers" gorm:"foreignKey:RoomTypeID"`
}

func (r *RoomType) ValidateStatus() error {
	if r.Status < 0 || r.Status > 2 {
		return fmt.Errorf("invalid Status: %d, must be between 0 and 2", r.Status)
	}
	return nil
}
