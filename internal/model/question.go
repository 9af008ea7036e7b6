package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

type QuestionKind string

const (
	MultipleChoice QuestionKind = "multiple_choice"
	OpenEnded      QuestionKind = "open_ended"
)

// StringList 以JSON数组形式存储的字符串列表
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("unsupported type for StringList")
}

// swagger:model Question
type Question struct {
	BaseModel
	Topic         string       `gorm:"size:100;index;not null" json:"topic"`
	Category      string       `gorm:"size:50;index" json:"category"`
	Prompt        string       `gorm:"type:text;not null" json:"prompt"`
	CorrectAnswer string       `gorm:"size:255;not null" json:"-"`
	WrongAnswers  StringList   `gorm:"type:json" json:"-"`
	Kind          QuestionKind `gorm:"size:50;default:'multiple_choice'" json:"kind"`
}

func (Question) TableName() string {
	return "questions"
}
