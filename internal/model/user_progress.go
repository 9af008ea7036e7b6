package model

// UserProgress 每个 (user, topic) 一行，0-100
// swagger:model UserProgress
type UserProgress struct {
	BaseModel
	UserID   uint   `gorm:"uniqueIndex:idx_user_topic;type:bigint unsigned;not null" json:"userId"`
	Topic    string `gorm:"uniqueIndex:idx_user_topic;size:100;not null" json:"topic"`
	Progress int    `gorm:"default:0" json:"progress"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}
