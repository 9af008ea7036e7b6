package repository

import (
	"mathlearn_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

// ResultRepository 答题记录仓库，只追加
type ResultRepository struct {
	DB *gorm.DB
}

func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{DB: db}
}

func (r *ResultRepository) Append(userID uint, topic, category string, correct bool, ts time.Time) error {
	result := &model.TestResult{
		UserID:    userID,
		Topic:     topic,
		Category:  category,
		Correct:   correct,
		Timestamp: ts,
	}
	return r.DB.Create(result).Error
}

func (r *ResultRepository) FindByUser(userID uint) ([]model.TestResult, error) {
	var results []model.TestResult
	err := r.DB.Where("user_id = ?", userID).Order("timestamp desc").Find(&results).Error
	return results, err
}
