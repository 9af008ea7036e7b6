package model

// swagger:model Material
type Material struct {
	BaseModel
	Topic         string  `gorm:"size:100;index;not null" json:"topic"`
	Content       string  `gorm:"type:text" json:"content"`
	FilePath      string  `gorm:"size:255" json:"filePath"`
	Category      string  `gorm:"size:50;index" json:"category"`
	VideoDuration float64 `gorm:"default:0" json:"videoDuration,omitempty"`
	ThumbnailPath string  `gorm:"size:255" json:"thumbnailPath,omitempty"`
}

func (Material) TableName() string {
	return "materials"
}

// swagger:model Category
type Category struct {
	BaseModel
	Name string `gorm:"size:50;unique;not null" json:"name"`
}

func (Category) TableName() string {
	return "categories"
}
