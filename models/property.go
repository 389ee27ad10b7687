package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type Property struct {
	ID               uint            `json:"id" gorm:"primaryKey"` // ID cho property
	Code             string          `json:"code" gorm:"uniqueIndex"`
	UserID           uint            `json:"userId"` // ID của tenant sở hữu
	Name             string          `json:"name"`
	Address          string          `json:"address"`
	City             string          `json:"city"`
	District         string          `json:"district"`
	ShortDescription string          `json:"shortDescription"`
	Description      string          `json:"description"`
	Status           int             `json:"status"`
	Avatar           string          `json:"avatar"`
	Img              json.RawMessage `json:"img" gorm:"type:json"`
	Price            int             `json:"price"` // Giá phòng thấp nhất, cập nhật lại khi room type/price rule thay đổi
	TimeCheckIn      string          `json:"timeCheckIn"`
	TimeCheckOut     string          `json:"timeCheckOut"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	User             User            `json:"user" gorm:"foreignKey:UserID"`
	RoomTypes        []RoomType      `json:"roomTypes" gorm:"foreignKey:PropertyID"`
}

func (p *Property) ValidateStatus() error {
	if p.Status < 0 || p.Status > 2 {
		return fmt.Errorf("invalid Status: %d, must be between 0 and 2", p.Status)
	}
	return nil
}
