package models

import (
	"time"

	"gorm.io/gorm"
)

type Cake struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Flavor      string         `gorm:"size:255;not null" json:"flavor"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Price       float64        `gorm:"not null" json:"price"`
	Servings    int            `gorm:"not null" json:"servings"`
	ImageURL    string         `gorm:"size:512;not null" json:"imageUrl"`
	Category    string         `gorm:"size:20;not null" json:"category"` // Classic, Premium, Custom
	IsAvailable bool           `gorm:"not null" json:"isAvailable"`
	Tags        StringList     `gorm:"type:text" json:"tags"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Cake) TableName() string { return "cakes" }
