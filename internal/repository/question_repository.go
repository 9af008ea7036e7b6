package repository

import (
	"mathlearn_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(q *model.Question) error {
	return r.DB.Create(q).Error
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.First(&q, id).Error
	return &q, err
}

// FindByTopic 按入库顺序返回某主题的全部题目
func (r *QuestionRepository) FindByTopic(topic string) ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.Where("topic = ?", topic).Order("id asc").Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) AllTopics() ([]string, error) {
	var topics []string
	err := r.DB.Model(&model.Question{}).Distinct("topic").Order("topic asc").Pluck("topic", &topics).Error
	return topics, err
}

// TopicsByCategory 分类为空时返回全部主题
func (r *QuestionRepository) TopicsByCategory(category string) ([]string, error) {
	if category == "" {
		return r.AllTopics()
	}
	var topics []string
	err := r.DB.Model(&model.Question{}).
		Where("category = ?", category).
		Distinct("topic").Order("topic asc").
		Pluck("topic", &topics).Error
	return topics, err
}

func (r *QuestionRepository) List(page, limit int, topic string) ([]model.Question, int64, error) {
	var qs []model.Question
	var total int64
	query := r.DB.Model(&model.Question{})
	if topic != "" {
		query = query.Where("topic = ?", topic)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("id asc").Offset(offset).Limit(limit).Find(&qs).Error
	return qs, total, err
}

func (r *QuestionRepository) Update(q *model.Question) error {
	return r.DB.Save(q).Error
}

func (r *QuestionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Question{}, id).Error
}
