package service

import (
	"fmt"
	"sync"
	"time"

	"mathlearn_backend/internal/model"
	"mathlearn_backend/internal/util"
	"mathlearn_backend/pkg/logger"
	"mathlearn_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// AttemptSink 答题记录写入接口
type AttemptSink interface {
	Append(userID uint, topic, category string, correct bool, ts time.Time) error
}

// ActionRecorder 审计日志写入接口
type ActionRecorder interface {
	Append(userID uint, action string) error
}

// SessionService 管理进行中的测验：每个用户同一时刻最多一个会话，
// 会话只存在于内存里，结束或被新会话替换后即丢弃
type SessionService struct {
	Generator *TestGenerator
	Results   AttemptSink
	Logs      ActionRecorder

	mu       sync.RWMutex
	sessions map[uint]*TestSession
}

func NewSessionService(generator *TestGenerator, results AttemptSink, logs ActionRecorder) *SessionService {
	return &SessionService{
		Generator: generator,
		Results:   results,
		Logs:      logs,
		sessions:  make(map[uint]*TestSession),
	}
}

// QuestionView 展示给学生的题面，候选答案每次展示都重新打乱
type QuestionView struct {
	Number   int      `json:"number"` // 从 1 开始
	Total    int      `json:"total"`
	ID       uint     `json:"id"`
	Topic    string   `json:"topic"`
	Category string   `json:"category"`
	Prompt   string   `json:"prompt"`
	Kind     string   `json:"kind"`
	Options  []string `json:"options,omitempty"`
}

// AnswerResult 一次作答的返回：会话状态已推进，Persisted 标记落库是否成功
type AnswerResult struct {
	Outcome   QuestionOutcome `json:"outcome"`
	Position  int             `json:"position"`
	Total     int             `json:"total"`
	Completed bool            `json:"completed"`
	Persisted bool            `json:"persisted"`
}

// SessionSummary 完成后的结果汇总
type SessionSummary struct {
	Topic        string            `json:"topic,omitempty"`
	Category     string            `json:"category,omitempty"`
	Mixed        bool              `json:"mixed"`
	CorrectCount int               `json:"correctCount"`
	Total        int               `json:"total"`
	Score        float64           `json:"score"`
	Outcomes     []QuestionOutcome `json:"outcomes"`
}

// StartTopicTest 按主题开始测验，题库为空时返回 ErrEmptyQuestionPool
func (s *SessionService) StartTopicTest(userID uint, topic string) (*QuestionView, error) {
	questions, err := s.Generator.GenerateTest(topic)
	if err != nil {
		return nil, err
	}
	return s.start(userID, topic, "", false, questions)
}

// StartMixedTest 按分类开始混合测验
func (s *SessionService) StartMixedTest(userID uint, category string) (*QuestionView, error) {
	questions, err := s.Generator.GenerateMixedTest(category)
	if err != nil {
		return nil, err
	}
	return s.start(userID, "", category, true, questions)
}

func (s *SessionService) start(userID uint, topic, category string, mixed bool, questions []model.Question) (*QuestionView, error) {
	if len(questions) == 0 {
		return nil, util.ErrEmptyQuestionPool
	}

	session := NewTestSession(userID, topic, category, mixed, questions)

	s.mu.Lock()
	s.sessions[userID] = session
	monitoring.ActiveSessions.Set(float64(len(s.sessions)))
	s.mu.Unlock()

	scope := topic
	if mixed {
		scope = category
	}
	if s.Logs != nil {
		_ = s.Logs.Append(userID, fmt.Sprintf("started test: %s", scope))
	}

	return s.view(session)
}

// Current 返回当前题面；同一题重复请求会得到不同的选项顺序
func (s *SessionService) Current(userID uint) (*QuestionView, error) {
	session, err := s.get(userID)
	if err != nil {
		return nil, err
	}
	return s.view(session)
}

// Answer 作答当前题。比对和推进先完成，然后同步写入答题记录；
// 写入失败不回滚内存状态，也不重试，错误原样返回由调用方决定提示方式
func (s *SessionService) Answer(userID uint, response string) (*AnswerResult, error) {
	session, err := s.get(userID)
	if err != nil {
		return nil, err
	}

	q, err := session.CurrentQuestion()
	if err != nil {
		return nil, err
	}
	category := q.Category

	outcome, err := session.SubmitAnswer(response)
	if err != nil {
		return nil, err
	}

	result := &AnswerResult{
		Outcome:   *outcome,
		Position:  session.Position,
		Total:     session.Total(),
		Completed: session.Completed(),
		Persisted: true,
	}

	if err := s.Results.Append(userID, outcome.Topic, category, outcome.Correct, time.Now()); err != nil {
		result.Persisted = false
		logger.Log.Error("failed to persist attempt",
			zap.Uint("userId", userID),
			zap.String("topic", outcome.Topic),
			zap.Error(err))
		return result, err
	}

	monitoring.AttemptsRecorded.WithLabelValues(fmt.Sprintf("%t", outcome.Correct)).Inc()
	return result, nil
}

// Skip 跳过当前题：不计分，也不会产生答题记录
func (s *SessionService) Skip(userID uint) (*AnswerResult, error) {
	session, err := s.get(userID)
	if err != nil {
		return nil, err
	}

	if err := session.Skip(); err != nil {
		return nil, err
	}

	return &AnswerResult{
		Position:  session.Position,
		Total:     session.Total(),
		Completed: session.Completed(),
		Persisted: true,
	}, nil
}

// Summary 完成后的成绩汇总，未完成时返回 ErrSessionNotComplete
func (s *SessionService) Summary(userID uint) (*SessionSummary, error) {
	session, err := s.get(userID)
	if err != nil {
		return nil, err
	}

	score, err := session.Score()
	if err != nil {
		return nil, err
	}

	outcomes := make([]QuestionOutcome, len(session.Outcomes))
	copy(outcomes, session.Outcomes)

	return &SessionSummary{
		Topic:        session.Topic,
		Category:     session.Category,
		Mixed:        session.Mixed,
		CorrectCount: session.CorrectCount,
		Total:        session.Total(),
		Score:        score,
		Outcomes:     outcomes,
	}, nil
}

// Discard 丢弃用户的当前会话（主动放弃或查看完结果后清理）
func (s *SessionService) Discard(userID uint) {
	s.mu.Lock()
	delete(s.sessions, userID)
	monitoring.ActiveSessions.Set(float64(len(s.sessions)))
	s.mu.Unlock()
}

func (s *SessionService) get(userID uint) (*TestSession, error) {
	s.mu.RLock()
	session, ok := s.sessions[userID]
	s.mu.RUnlock()
	if !ok {
		return nil, util.ErrNoActiveSession
	}
	return session, nil
}

func (s *SessionService) view(session *TestSession) (*QuestionView, error) {
	q, err := session.CurrentQuestion()
	if err != nil {
		return nil, err
	}

	return &QuestionView{
		Number:   session.Position + 1,
		Total:    session.Total(),
		ID:       q.ID,
		Topic:    q.Topic,
		Category: q.Category,
		Prompt:   q.Prompt,
		Kind:     string(q.Kind),
		Options:  s.Generator.ShuffleOptions(q),
	}, nil
}
