package model

import "time"

// ActionLog 用户操作审计记录
// swagger:model ActionLog
type ActionLog struct {
	BaseModel
	UserID    uint      `gorm:"index;type:bigint unsigned" json:"userId"`
	Action    string    `gorm:"type:text;not null" json:"action"`
	Timestamp time.Time `gorm:"index;not null" json:"timestamp"`
}

func (ActionLog) TableName() string {
	return "action_logs"
}
