package repository

import (
	"artistry/internal/models"

	"gorm.io/gorm"
)

type CakeRepository struct {
	*Store[models.Cake]
}

func NewCakeRepository(db *gorm.DB) *CakeRepository {
	return &CakeRepository{NewStore[models.Cake](db, "category", "name", "flavor")}
}
