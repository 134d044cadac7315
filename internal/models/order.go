package models

import (
	"time"

	"gorm.io/gorm"
)

// Order is a custom cake request from the public form. It is a lead, not a
// transaction: nothing but soft-delete state changes after creation.
type Order struct {
	ID                    uint           `gorm:"primaryKey" json:"id"`
	Name                  string         `gorm:"size:255;not null" json:"name"`
	Email                 string         `gorm:"size:255;not null" json:"email"`
	Phone                 string         `gorm:"size:50;not null" json:"phone"`
	EventDate             time.Time      `gorm:"not null" json:"eventDate"`
	NumberOfGuests        int            `json:"numberOfGuests,omitempty"`
	CakeSizePreference    string         `gorm:"size:20" json:"cakeSizePreference,omitempty"`
	CakeDesignDescription string         `gorm:"type:text;not null" json:"cakeDesignDescription"`
	Budget                string         `gorm:"size:20" json:"budget,omitempty"`
	CreatedAt             time.Time      `json:"createdAt"`
	UpdatedAt             time.Time      `json:"updatedAt"`
	DeletedAt             gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Order) TableName() string { return "orders" }
