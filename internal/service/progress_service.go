package service

import (
	"fmt"

	"mathlearn_backend/internal/model"
	"mathlearn_backend/internal/util"
)

// ProgressStore 学习进度读写接口
type ProgressStore interface {
	Upsert(userID uint, topic string, progress int) error
	FindByUser(userID uint) ([]model.UserProgress, error)
}

// ProgressService 维护 (user, topic) 维度的学习进度。
// 进度值由调用方决定何时写入，引擎不会从答题记录自动推导。
type ProgressService struct {
	Progress ProgressStore
	Logs     ActionRecorder
}

func NewProgressService(progress ProgressStore, logs ActionRecorder) *ProgressService {
	return &ProgressService{Progress: progress, Logs: logs}
}

// UpdateProgress 幂等写入：相同值重复调用效果不变
func (s *ProgressService) UpdateProgress(userID uint, topic string, progress int) error {
	if progress < 0 || progress > 100 {
		return util.ErrInvalidProgress
	}

	if err := s.Progress.Upsert(userID, topic, progress); err != nil {
		return err
	}

	if s.Logs != nil {
		_ = s.Logs.Append(userID, fmt.Sprintf("progress updated: %s -> %d%%", topic, progress))
	}
	return nil
}

func (s *ProgressService) GetProgress(userID uint) ([]model.UserProgress, error) {
	return s.Progress.FindByUser(userID)
}
