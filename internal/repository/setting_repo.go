package repository

import (
	"artistry/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

func (r *SettingRepository) Get(key string) (string, error) {
	var s models.Setting
	if err := r.db.Where("`key` = ?", key).First(&s).Error; err != nil {
		return "", err
	}
	return s.Value, nil
}

// Set upserts one key. Settings writes are per-key on purpose: a bulk PUT
// is a loop of these, not a transaction.
func (r *SettingRepository) Set(key, value string) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&models.Setting{Key: key, Value: value}).Error
}

func (r *SettingRepository) GetAll() ([]models.Setting, error) {
	var list []models.Setting
	err := r.db.Order("`key` ASC").Find(&list).Error
	return list, err
}

// SeedDefaults inserts the listed keys with empty JSON string values if
// absent, so a fresh install serves a stable settings shape.
func (r *SettingRepository) SeedDefaults(keys []string) error {
	for _, k := range keys {
		var count int64
		r.db.Model(&models.Setting{}).Where("`key` = ?", k).Count(&count)
		if count == 0 {
			if err := r.db.Create(&models.Setting{Key: k, Value: `""`}).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
