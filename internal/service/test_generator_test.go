package service

import (
	"math/rand"
	"testing"

	"mathlearn_backend/internal/config"
	"mathlearn_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQuestionSource struct {
	order     []string
	questions map[string][]model.Question
}

func (f *fakeQuestionSource) FindByTopic(topic string) ([]model.Question, error) {
	out := make([]model.Question, len(f.questions[topic]))
	copy(out, f.questions[topic])
	return out, nil
}

func (f *fakeQuestionSource) TopicsByCategory(category string) ([]string, error) {
	if category == "" {
		return f.order, nil
	}
	var topics []string
	for _, topic := range f.order {
		if len(f.questions[topic]) > 0 && f.questions[topic][0].Category == category {
			topics = append(topics, topic)
		}
	}
	return topics, nil
}

func makeQuestions(topic, category string, startID uint, n int) []model.Question {
	qs := make([]model.Question, 0, n)
	for i := 0; i < n; i++ {
		q := model.Question{
			Topic:         topic,
			Category:      category,
			Prompt:        "prompt",
			CorrectAnswer: "yes",
			WrongAnswers:  model.StringList{"no", "maybe"},
			Kind:          model.MultipleChoice,
		}
		q.ID = startID + uint(i)
		qs = append(qs, q)
	}
	return qs
}

func newSource(topics map[string][]model.Question, order ...string) *fakeQuestionSource {
	return &fakeQuestionSource{order: order, questions: topics}
}

func defaultTestConfig() config.TestConfig {
	return config.TestConfig{
		QuestionsPerTest:   5,
		QuestionsPerTopic:  2,
		WeakTopicThreshold: 0.7,
	}
}

func TestGenerateTestSmallPoolReturnsAllInOrder(t *testing.T) {
	src := newSource(map[string][]model.Question{
		"Logic": makeQuestions("Logic", "Logic", 1, 3),
	}, "Logic")
	g := NewTestGenerator(src, defaultTestConfig(), rand.NewSource(1))

	qs, err := g.GenerateTest("Logic")
	require.NoError(t, err)
	require.Len(t, qs, 3)
	for i, q := range qs {
		assert.Equal(t, uint(i+1), q.ID)
	}
}

func TestGenerateTestSamplesWithoutDuplicates(t *testing.T) {
	src := newSource(map[string][]model.Question{
		"Graphs": makeQuestions("Graphs", "Graphs", 10, 8),
	}, "Graphs")
	g := NewTestGenerator(src, defaultTestConfig(), rand.NewSource(42))

	qs, err := g.GenerateTest("Graphs")
	require.NoError(t, err)
	require.Len(t, qs, 5)

	seen := make(map[uint]bool)
	for _, q := range qs {
		assert.False(t, seen[q.ID], "question %d drawn twice", q.ID)
		seen[q.ID] = true
		assert.GreaterOrEqual(t, q.ID, uint(10))
		assert.Less(t, q.ID, uint(18))
	}
}

func TestGenerateTestDeterministicWithSeed(t *testing.T) {
	pool := map[string][]model.Question{
		"Sets": makeQuestions("Sets", "Set theory", 1, 10),
	}

	first := NewTestGenerator(newSource(pool, "Sets"), defaultTestConfig(), rand.NewSource(7))
	second := NewTestGenerator(newSource(pool, "Sets"), defaultTestConfig(), rand.NewSource(7))

	a, err := first.GenerateTest("Sets")
	require.NoError(t, err)
	b, err := second.GenerateTest("Sets")
	require.NoError(t, err)

	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].ID, b[i].ID)
	}
}

func TestGenerateTestEmptyPool(t *testing.T) {
	src := newSource(map[string][]model.Question{}, "Logic")
	g := NewTestGenerator(src, defaultTestConfig(), rand.NewSource(1))

	qs, err := g.GenerateTest("Unknown")
	require.NoError(t, err)
	assert.Empty(t, qs)
}

func TestGenerateMixedTestCapsPerTopicAndTotal(t *testing.T) {
	src := newSource(map[string][]model.Question{
		"Logic":  makeQuestions("Logic", "Discrete", 1, 4),
		"Sets":   makeQuestions("Sets", "Discrete", 100, 4),
		"Graphs": makeQuestions("Graphs", "Discrete", 200, 4),
	}, "Logic", "Sets", "Graphs")
	g := NewTestGenerator(src, defaultTestConfig(), rand.NewSource(3))

	qs, err := g.GenerateMixedTest("")
	require.NoError(t, err)
	require.Len(t, qs, 5)

	perTopic := make(map[string]int)
	seen := make(map[uint]bool)
	for _, q := range qs {
		perTopic[q.Topic]++
		assert.False(t, seen[q.ID])
		seen[q.ID] = true
	}
	for topic, n := range perTopic {
		assert.LessOrEqual(t, n, 2, "topic %s contributed %d questions", topic, n)
	}
}

func TestGenerateMixedTestSmallTopics(t *testing.T) {
	src := newSource(map[string][]model.Question{
		"Logic": makeQuestions("Logic", "Discrete", 1, 1),
		"Sets":  makeQuestions("Sets", "Discrete", 50, 1),
	}, "Logic", "Sets")
	g := NewTestGenerator(src, defaultTestConfig(), rand.NewSource(1))

	qs, err := g.GenerateMixedTest("")
	require.NoError(t, err)
	assert.Len(t, qs, 2)
}

func TestGenerateMixedTestEmptyPool(t *testing.T) {
	src := newSource(map[string][]model.Question{}, "Logic")
	g := NewTestGenerator(src, defaultTestConfig(), rand.NewSource(1))

	qs, err := g.GenerateMixedTest("")
	require.NoError(t, err)
	assert.Empty(t, qs)
}

func TestGenerateMixedTestFiltersByCategory(t *testing.T) {
	src := newSource(map[string][]model.Question{
		"Logic":  makeQuestions("Logic", "Discrete", 1, 2),
		"Graphs": makeQuestions("Graphs", "Other", 100, 2),
	}, "Logic", "Graphs")
	g := NewTestGenerator(src, defaultTestConfig(), rand.NewSource(1))

	qs, err := g.GenerateMixedTest("Discrete")
	require.NoError(t, err)
	require.NotEmpty(t, qs)
	for _, q := range qs {
		assert.Equal(t, "Discrete", q.Category)
	}
}

func TestShuffleOptionsContainsAllCandidates(t *testing.T) {
	g := NewTestGenerator(newSource(nil), defaultTestConfig(), rand.NewSource(9))

	q := &model.Question{
		CorrectAnswer: "2^n",
		WrongAnswers:  model.StringList{"n^2", "n!", "2n"},
		Kind:          model.MultipleChoice,
	}

	options := g.ShuffleOptions(q)
	require.Len(t, options, 4)
	assert.ElementsMatch(t, []string{"2^n", "n^2", "n!", "2n"}, options)
}

func TestShuffleOptionsOpenEnded(t *testing.T) {
	g := NewTestGenerator(newSource(nil), defaultTestConfig(), rand.NewSource(9))

	q := &model.Question{
		CorrectAnswer: "16",
		Kind:          model.OpenEnded,
	}

	assert.Nil(t, g.ShuffleOptions(q))
}

func TestSetConfigTakesEffect(t *testing.T) {
	src := newSource(map[string][]model.Question{
		"Logic": makeQuestions("Logic", "Logic", 1, 10),
	}, "Logic")
	g := NewTestGenerator(src, defaultTestConfig(), rand.NewSource(5))

	cfg := defaultTestConfig()
	cfg.QuestionsPerTest = 3
	g.SetConfig(cfg)

	qs, err := g.GenerateTest("Logic")
	require.NoError(t, err)
	assert.Len(t, qs, 3)
}
