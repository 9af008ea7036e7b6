package service

import (
	"testing"

	"mathlearn_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttempts struct {
	results []model.TestResult
}

func (f *fakeAttempts) FindByUser(userID uint) ([]model.TestResult, error) {
	var out []model.TestResult
	for _, r := range f.results {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func results(userID uint, topic string, outcomes ...bool) []model.TestResult {
	rs := make([]model.TestResult, 0, len(outcomes))
	for _, correct := range outcomes {
		rs = append(rs, model.TestResult{UserID: userID, Topic: topic, Correct: correct})
	}
	return rs
}

func TestWeakTopicsBelowThreshold(t *testing.T) {
	attempts := &fakeAttempts{results: results(1, "Logic", true, false)}
	svc := NewAnalyticsService(attempts, 0.7)

	weak, err := svc.WeakTopics(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Logic"}, weak)
}

func TestWeakTopicsOmitsMasteredTopics(t *testing.T) {
	attempts := &fakeAttempts{results: results(1, "Sets", true, true, true)}
	svc := NewAnalyticsService(attempts, 0.7)

	weak, err := svc.WeakTopics(1)
	require.NoError(t, err)
	assert.Empty(t, weak)
}

func TestWeakTopicsExcludesUnattemptedTopics(t *testing.T) {
	// 没有任何答题记录的用户：既不薄弱也不掌握
	svc := NewAnalyticsService(&fakeAttempts{}, 0.7)

	weak, err := svc.WeakTopics(1)
	require.NoError(t, err)
	assert.Empty(t, weak)
}

func TestWeakTopicsSorted(t *testing.T) {
	rs := append(results(1, "Sets", false), results(1, "Graphs", false)...)
	rs = append(rs, results(1, "Logic", false)...)
	svc := NewAnalyticsService(&fakeAttempts{results: rs}, 0.7)

	weak, err := svc.WeakTopics(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Graphs", "Logic", "Sets"}, weak)
}

func TestWeakTopicsBoundary(t *testing.T) {
	// 正确率恰好等于阈值时不算薄弱
	rs := append(results(1, "Logic", true, true, true, true, true, true, true), results(1, "Logic", false, false, false)...)
	svc := NewAnalyticsService(&fakeAttempts{results: rs}, 0.7)

	weak, err := svc.WeakTopics(1)
	require.NoError(t, err)
	assert.Empty(t, weak)
}

func TestSuccessRatesByTopic(t *testing.T) {
	rs := append(results(1, "Sets", true, false, false, true), results(1, "Logic", true)...)
	svc := NewAnalyticsService(&fakeAttempts{results: rs}, 0.7)

	rates, err := svc.SuccessRatesByTopic(1)
	require.NoError(t, err)
	require.Len(t, rates, 2)
	assert.InDelta(t, 50.0, rates["Sets"], 0.001)
	assert.InDelta(t, 100.0, rates["Logic"], 0.001)
}

func TestTopicStatsSortedWithCounts(t *testing.T) {
	rs := append(results(1, "Sets", true, false), results(1, "Graphs", true, true, false)...)
	svc := NewAnalyticsService(&fakeAttempts{results: rs}, 0.7)

	stats, err := svc.TopicStats(1)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, "Graphs", stats[0].Topic)
	assert.Equal(t, 3, stats[0].Attempts)
	assert.Equal(t, 2, stats[0].Correct)
	assert.InDelta(t, 66.666, stats[0].SuccessRate, 0.01)

	assert.Equal(t, "Sets", stats[1].Topic)
	assert.Equal(t, 2, stats[1].Attempts)
}

func TestAnalyticsIsolatedPerUser(t *testing.T) {
	rs := append(results(1, "Logic", false), results(2, "Logic", true, true)...)
	svc := NewAnalyticsService(&fakeAttempts{results: rs}, 0.7)

	weak, err := svc.WeakTopics(2)
	require.NoError(t, err)
	assert.Empty(t, weak)

	weak, err = svc.WeakTopics(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Logic"}, weak)
}

func TestSetThreshold(t *testing.T) {
	attempts := &fakeAttempts{results: results(1, "Logic", true, false)}
	svc := NewAnalyticsService(attempts, 0.7)

	svc.SetThreshold(0.4)

	weak, err := svc.WeakTopics(1)
	require.NoError(t, err)
	assert.Empty(t, weak)
}
