package models

import (
	"time"

	"gorm.io/gorm"
)

// Bouquet is a chocolate bouquet arrangement.
type Bouquet struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Description   string         `gorm:"type:text;not null" json:"description"`
	Price         float64        `gorm:"not null" json:"price"`
	ImageURL      string         `gorm:"size:512;not null" json:"imageUrl"`
	ChocolateType string         `gorm:"size:255;not null" json:"chocolateType"`
	Size          string         `gorm:"size:20;not null" json:"size"` // Small, Medium, Large
	Occasion      string         `gorm:"size:255" json:"occasion,omitempty"`
	IsAvailable   bool           `gorm:"not null" json:"isAvailable"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Bouquet) TableName() string { return "bouquets" }
