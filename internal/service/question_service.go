package service

import (
	"errors"

	"mathlearn_backend/internal/model"
	"mathlearn_backend/internal/repository"
	"mathlearn_backend/internal/util"

	"gorm.io/gorm"
)

// QuestionService 题库维护：教师端增删改查
type QuestionService struct {
	QuestionRepo *repository.QuestionRepository
}

func NewQuestionService(questionRepo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{QuestionRepo: questionRepo}
}

// QuestionRequest 题目新增/修改请求
type QuestionRequest struct {
	Topic         string   `json:"topic" binding:"required"`
	Category      string   `json:"category" binding:"required"`
	Prompt        string   `json:"prompt" binding:"required"`
	CorrectAnswer string   `json:"correctAnswer" binding:"required"`
	WrongAnswers  []string `json:"wrongAnswers"`
	Kind          string   `json:"kind" binding:"omitempty,oneof=multiple_choice open_ended"`
}

func (s *QuestionService) Create(req QuestionRequest) (*model.Question, error) {
	kind := model.QuestionKind(req.Kind)
	if kind == "" {
		kind = model.MultipleChoice
	}
	if kind == model.MultipleChoice && len(req.WrongAnswers) == 0 {
		return nil, errors.New("multiple choice question needs wrong answers")
	}

	q := &model.Question{
		Topic:         req.Topic,
		Category:      req.Category,
		Prompt:        req.Prompt,
		CorrectAnswer: req.CorrectAnswer,
		WrongAnswers:  req.WrongAnswers,
		Kind:          kind,
	}
	if err := s.QuestionRepo.Create(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) Get(id uint) (*model.Question, error) {
	q, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) List(page, limit int, topic string) ([]model.Question, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.QuestionRepo.List(page, limit, topic)
}

func (s *QuestionService) Update(id uint, req QuestionRequest) (*model.Question, error) {
	q, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	q.Topic = req.Topic
	q.Category = req.Category
	q.Prompt = req.Prompt
	q.CorrectAnswer = req.CorrectAnswer
	q.WrongAnswers = req.WrongAnswers
	if req.Kind != "" {
		q.Kind = model.QuestionKind(req.Kind)
	}

	if err := s.QuestionRepo.Update(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.QuestionRepo.Delete(id)
}

// Topics 现有全部主题
func (s *QuestionService) Topics() ([]string, error) {
	return s.QuestionRepo.AllTopics()
}
