package service

import (
	"strings"

	"mathlearn_backend/internal/model"
	"mathlearn_backend/internal/util"
)

// QuestionOutcome 单题作答结果
type QuestionOutcome struct {
	QuestionID    uint   `json:"questionId"`
	Topic         string `json:"topic"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	Correct       bool   `json:"correct"`
}

// TestSession 一次测验的全部过程状态。
// 题目列表在创建时快照固定，此后题库的修改不影响进行中的测验。
// Position 每次作答或跳过严格加一；Position == len(Questions) 即完成。
type TestSession struct {
	UserID       uint
	Topic        string
	Category     string
	Mixed        bool
	Questions    []model.Question
	Position     int
	CorrectCount int
	Outcomes     []QuestionOutcome
}

// NewTestSession 调用方必须保证 questions 非空
func NewTestSession(userID uint, topic, category string, mixed bool, questions []model.Question) *TestSession {
	snapshot := make([]model.Question, len(questions))
	copy(snapshot, questions)

	return &TestSession{
		UserID:    userID,
		Topic:     topic,
		Category:  category,
		Mixed:     mixed,
		Questions: snapshot,
	}
}

func (s *TestSession) Total() int {
	return len(s.Questions)
}

func (s *TestSession) Completed() bool {
	return s.Position >= len(s.Questions)
}

func (s *TestSession) CurrentQuestion() (*model.Question, error) {
	if s.Completed() {
		return nil, util.ErrSessionComplete
	}
	return &s.Questions[s.Position], nil
}

// SubmitAnswer 去除首尾空白后不区分大小写比对，推进到下一题
func (s *TestSession) SubmitAnswer(response string) (*QuestionOutcome, error) {
	q, err := s.CurrentQuestion()
	if err != nil {
		return nil, err
	}

	correct := strings.EqualFold(strings.TrimSpace(response), strings.TrimSpace(q.CorrectAnswer))

	outcome := QuestionOutcome{
		QuestionID:    q.ID,
		Topic:         q.Topic,
		UserAnswer:    response,
		CorrectAnswer: q.CorrectAnswer,
		Correct:       correct,
	}

	if correct {
		s.CorrectCount++
	}
	s.Outcomes = append(s.Outcomes, outcome)
	s.Position++

	return &outcome, nil
}

// Skip 跳过当前题：不计分、不记录结果，只推进位置
func (s *TestSession) Skip() error {
	if s.Completed() {
		return util.ErrSessionComplete
	}
	s.Position++
	return nil
}

// Score 百分制得分，分母包含被跳过的题目
func (s *TestSession) Score() (float64, error) {
	if !s.Completed() {
		return 0, util.ErrSessionNotComplete
	}
	return float64(s.CorrectCount) / float64(len(s.Questions)) * 100, nil
}
