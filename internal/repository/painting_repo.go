package repository

import (
	"artistry/internal/models"

	"gorm.io/gorm"
)

type PaintingRepository struct {
	*Store[models.Painting]
}

func NewPaintingRepository(db *gorm.DB) *PaintingRepository {
	return &PaintingRepository{NewStore[models.Painting](db, "medium", "title", "artist")}
}
