package repository

import (
	"mathlearn_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type ActionLogRepository struct {
	DB *gorm.DB
}

func NewActionLogRepository(db *gorm.DB) *ActionLogRepository {
	return &ActionLogRepository{DB: db}
}

func (r *ActionLogRepository) Append(userID uint, action string) error {
	return r.DB.Create(&model.ActionLog{
		UserID:    userID,
		Action:    action,
		Timestamp: time.Now(),
	}).Error
}

func (r *ActionLogRepository) List(page, limit int) ([]model.ActionLog, int64, error) {
	var logs []model.ActionLog
	var total int64
	query := r.DB.Model(&model.ActionLog{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("timestamp desc").Offset(offset).Limit(limit).Find(&logs).Error
	return logs, total, err
}
