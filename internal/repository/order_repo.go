package repository

import (
	"artistry/internal/models"

	"gorm.io/gorm"
)

type OrderRepository struct {
	*Store[models.Order]
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{NewStore[models.Order](db, "cake_size_preference", "name", "email")}
}
