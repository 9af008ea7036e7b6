package service

import (
	"sort"
	"sync"

	"mathlearn_backend/internal/model"
)

// AttemptSource 历史答题记录读取接口
type AttemptSource interface {
	FindByUser(userID uint) ([]model.TestResult, error)
}

// AnalyticsService 把历史答题记录聚合成主题正确率和薄弱主题视图
type AnalyticsService struct {
	Results AttemptSource

	mu        sync.RWMutex
	threshold float64 // 正确率低于该值的主题视为薄弱
}

func NewAnalyticsService(results AttemptSource, threshold float64) *AnalyticsService {
	return &AnalyticsService{
		Results:   results,
		threshold: threshold,
	}
}

// SetThreshold 配置热更新时替换薄弱主题阈值
func (s *AnalyticsService) SetThreshold(threshold float64) {
	s.mu.Lock()
	s.threshold = threshold
	s.mu.Unlock()
}

func (s *AnalyticsService) Threshold() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.threshold
}

// TopicStat 单个主题的答题统计
type TopicStat struct {
	Topic       string  `json:"topic"`
	Attempts    int     `json:"attempts"`
	Correct     int     `json:"correct"`
	SuccessRate float64 `json:"successRate"` // 百分比
}

func (s *AnalyticsService) aggregate(userID uint) (map[string]*TopicStat, error) {
	results, err := s.Results.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	stats := make(map[string]*TopicStat)
	for _, r := range results {
		st, ok := stats[r.Topic]
		if !ok {
			st = &TopicStat{Topic: r.Topic}
			stats[r.Topic] = st
		}
		st.Attempts++
		if r.Correct {
			st.Correct++
		}
	}

	for _, st := range stats {
		st.SuccessRate = float64(st.Correct) / float64(st.Attempts) * 100
	}

	return stats, nil
}

// WeakTopics 正确率低于阈值的主题，按名称排序。
// 没有任何答题记录的主题不会出现（既不算薄弱也不算掌握）。
// 不设最小样本量：单次答错即会把主题标记为薄弱，直到被后续正确答题摊薄。
func (s *AnalyticsService) WeakTopics(userID uint) ([]string, error) {
	stats, err := s.aggregate(userID)
	if err != nil {
		return nil, err
	}

	threshold := s.Threshold()
	weak := make([]string, 0)
	for topic, st := range stats {
		if st.SuccessRate < threshold*100 {
			weak = append(weak, topic)
		}
	}
	sort.Strings(weak)
	return weak, nil
}

// SuccessRatesByTopic 每个主题的正确率（百分比），用于展示和导出
func (s *AnalyticsService) SuccessRatesByTopic(userID uint) (map[string]float64, error) {
	stats, err := s.aggregate(userID)
	if err != nil {
		return nil, err
	}

	rates := make(map[string]float64, len(stats))
	for topic, st := range stats {
		rates[topic] = st.SuccessRate
	}
	return rates, nil
}

// TopicStats 教师端视图：按主题排序的完整统计
func (s *AnalyticsService) TopicStats(userID uint) ([]TopicStat, error) {
	stats, err := s.aggregate(userID)
	if err != nil {
		return nil, err
	}

	out := make([]TopicStat, 0, len(stats))
	for _, st := range stats {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Topic < out[j].Topic })
	return out, nil
}

// History 用户的原始答题记录，按时间倒序
func (s *AnalyticsService) History(userID uint) ([]model.TestResult, error) {
	return s.Results.FindByUser(userID)
}
