package models

import (
	"time"

	"gorm.io/gorm"
)

type Painting struct {
	ID                  uint           `gorm:"primaryKey" json:"id"`
	Title               string         `gorm:"size:255;not null" json:"title"`
	Artist              string         `gorm:"size:255;not null" json:"artist"`
	Description         string         `gorm:"type:text;not null" json:"description"`
	Price               float64        `gorm:"not null" json:"price"`
	ImageURL            string         `gorm:"size:512;not null" json:"imageUrl"`
	Dimensions          string         `gorm:"size:100;not null" json:"dimensions"`
	Medium              string         `gorm:"size:50;not null" json:"medium"`
	IsAvailable         bool           `gorm:"not null" json:"isAvailable"`
	CommissionAvailable bool           `gorm:"not null" json:"commissionAvailable"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Painting) TableName() string { return "paintings" }
