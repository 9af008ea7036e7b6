package repository

import (
	"mathlearn_backend/internal/model"

	"gorm.io/gorm"
)

type MaterialRepository struct {
	DB *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) *MaterialRepository {
	return &MaterialRepository{DB: db}
}

func (r *MaterialRepository) Create(m *model.Material) error {
	return r.DB.Create(m).Error
}

func (r *MaterialRepository) FindByID(id uint) (*model.Material, error) {
	var m model.Material
	err := r.DB.First(&m, id).Error
	return &m, err
}

func (r *MaterialRepository) FindAll() ([]model.Material, error) {
	var ms []model.Material
	err := r.DB.Order("category asc, topic asc").Find(&ms).Error
	return ms, err
}

func (r *MaterialRepository) FindByCategory(category string) ([]model.Material, error) {
	var ms []model.Material
	err := r.DB.Where("category = ?", category).Order("topic asc").Find(&ms).Error
	return ms, err
}

func (r *MaterialRepository) Update(m *model.Material) error {
	return r.DB.Save(m).Error
}

func (r *MaterialRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Material{}, id).Error
}
