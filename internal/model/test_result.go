package model

import "time"

// TestResult 一条答题记录，只追加不修改
// swagger:model TestResult
type TestResult struct {
	BaseModel
	UserID    uint      `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Topic     string    `gorm:"size:100;index;not null" json:"topic"`
	Category  string    `gorm:"size:50" json:"category"`
	Correct   bool      `gorm:"not null" json:"correct"`
	Timestamp time.Time `gorm:"index;not null" json:"timestamp"`
}

func (TestResult) TableName() string {
	return "test_results"
}
