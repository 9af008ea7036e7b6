package service

import (
	"math/rand"
	"sync"

	"mathlearn_backend/internal/config"
	"mathlearn_backend/internal/model"
)

// QuestionSource 出题所需的题库读取接口
type QuestionSource interface {
	FindByTopic(topic string) ([]model.Question, error)
	TopicsByCategory(category string) ([]string, error)
}

// TestGenerator 从题库抽取有界、可复现的题目子集
type TestGenerator struct {
	Questions QuestionSource

	mu  sync.Mutex
	cfg config.TestConfig
	rng *rand.Rand
}

// NewTestGenerator 随机源由调用方注入，测试中传入固定种子即可复现抽样
func NewTestGenerator(questions QuestionSource, cfg config.TestConfig, src rand.Source) *TestGenerator {
	return &TestGenerator{
		Questions: questions,
		cfg:       cfg,
		rng:       rand.New(src),
	}
}

// SetConfig 配置热更新时替换出题参数
func (g *TestGenerator) SetConfig(cfg config.TestConfig) {
	g.mu.Lock()
	g.cfg = cfg
	g.mu.Unlock()
}

func (g *TestGenerator) config() config.TestConfig {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cfg
}

// GenerateTest 按主题出题：题量不足时按入库顺序返回全部题目，
// 否则等概率无放回抽取 QuestionsPerTest 道
func (g *TestGenerator) GenerateTest(topic string) ([]model.Question, error) {
	cfg := g.config()
	pool, err := g.Questions.FindByTopic(topic)
	if err != nil {
		return nil, err
	}

	if len(pool) < cfg.QuestionsPerTest {
		out := make([]model.Question, len(pool))
		copy(out, pool)
		return out, nil
	}

	return g.sample(pool, cfg.QuestionsPerTest), nil
}

// GenerateMixedTest 按分类出混合题：每个主题最多贡献 QuestionsPerTopic 道，
// 再从合并后的池里抽取最多 QuestionsPerTest 道
func (g *TestGenerator) GenerateMixedTest(category string) ([]model.Question, error) {
	cfg := g.config()
	topics, err := g.Questions.TopicsByCategory(category)
	if err != nil {
		return nil, err
	}

	var combined []model.Question
	for _, topic := range topics {
		pool, err := g.Questions.FindByTopic(topic)
		if err != nil {
			return nil, err
		}
		if len(pool) == 0 {
			continue
		}
		n := cfg.QuestionsPerTopic
		if len(pool) < n {
			n = len(pool)
		}
		combined = append(combined, g.sample(pool, n)...)
	}

	if len(combined) == 0 {
		return nil, nil
	}

	n := cfg.QuestionsPerTest
	if len(combined) < n {
		n = len(combined)
	}
	return g.sample(combined, n), nil
}

// sample 无放回等概率抽取 n 道，不修改原切片
func (g *TestGenerator) sample(pool []model.Question, n int) []model.Question {
	g.mu.Lock()
	perm := g.rng.Perm(len(pool))
	g.mu.Unlock()

	out := make([]model.Question, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, pool[idx])
	}
	return out
}

// ShuffleOptions 每次展示时重新打乱候选答案（正确答案 + 干扰项）
func (g *TestGenerator) ShuffleOptions(q *model.Question) []string {
	if q.Kind != model.MultipleChoice {
		return nil
	}

	options := make([]string, 0, len(q.WrongAnswers)+1)
	options = append(options, q.CorrectAnswer)
	options = append(options, q.WrongAnswers...)

	g.mu.Lock()
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	g.mu.Unlock()

	return options
}
