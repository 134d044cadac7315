package repository

import (
	"artistry/internal/models"

	"gorm.io/gorm"
)

type BouquetRepository struct {
	*Store[models.Bouquet]
}

func NewBouquetRepository(db *gorm.DB) *BouquetRepository {
	return &BouquetRepository{NewStore[models.Bouquet](db, "size", "name", "chocolate_type")}
}
