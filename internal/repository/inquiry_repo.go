package repository

import (
	"artistry/internal/models"

	"gorm.io/gorm"
)

type InquiryRepository struct {
	*Store[models.Inquiry]
}

func NewInquiryRepository(db *gorm.DB) *InquiryRepository {
	return &InquiryRepository{NewStore[models.Inquiry](db, "", "name", "subject")}
}

// CountUnread feeds the dashboard badge.
func (r *InquiryRepository) CountUnread() (int64, error) {
	var n int64
	err := r.Store.db.Model(&models.Inquiry{}).Where("is_read = ?", false).Count(&n).Error
	return n, err
}
