package repository

import (
	"mathlearn_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// Upsert 按 (user_id, topic) 写入进度，已存在则覆盖
func (r *ProgressRepository) Upsert(userID uint, topic string, progress int) error {
	row := &model.UserProgress{
		UserID:   userID,
		Topic:    topic,
		Progress: progress,
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "topic"}},
		DoUpdates: clause.AssignmentColumns([]string{"progress", "updated_at"}),
	}).Create(row).Error
}

func (r *ProgressRepository) FindByUser(userID uint) ([]model.UserProgress, error) {
	var rows []model.UserProgress
	err := r.DB.Where("user_id = ?", userID).Order("topic asc").Find(&rows).Error
	return rows, err
}
