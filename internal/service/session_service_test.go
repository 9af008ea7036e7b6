package service

import (
	"errors"
	"math/rand"
	"os"
	"testing"
	"time"

	"mathlearn_backend/internal/model"
	"mathlearn_backend/internal/util"
	"mathlearn_backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

type attempt struct {
	userID  uint
	topic   string
	correct bool
}

type fakeSink struct {
	attempts []attempt
	failErr  error
}

func (f *fakeSink) Append(userID uint, topic, category string, correct bool, ts time.Time) error {
	if f.failErr != nil {
		return f.failErr
	}
	f.attempts = append(f.attempts, attempt{userID: userID, topic: topic, correct: correct})
	return nil
}

type fakeRecorder struct {
	actions []string
}

func (f *fakeRecorder) Append(userID uint, action string) error {
	f.actions = append(f.actions, action)
	return nil
}

// 两道题的小题池：少于单次测验题量时按入库顺序返回，测试可预期题目顺序
func newTestSessionService(sink *fakeSink) *SessionService {
	src := newSource(map[string][]model.Question{
		"Logic": sessionQuestions(),
	}, "Logic")
	g := NewTestGenerator(src, defaultTestConfig(), rand.NewSource(1))
	return NewSessionService(g, sink, &fakeRecorder{})
}

func TestStartTopicTestReturnsFirstQuestion(t *testing.T) {
	svc := newTestSessionService(&fakeSink{})

	view, err := svc.StartTopicTest(1, "Logic")
	require.NoError(t, err)
	assert.Equal(t, 1, view.Number)
	assert.Equal(t, 2, view.Total)
	assert.Equal(t, "Logic", view.Topic)
	assert.NotEmpty(t, view.Prompt)
	assert.ElementsMatch(t, []string{"Yes", "No"}, view.Options)
}

func TestStartTopicTestEmptyPool(t *testing.T) {
	svc := newTestSessionService(&fakeSink{})

	_, err := svc.StartTopicTest(1, "Unknown")
	assert.ErrorIs(t, err, util.ErrEmptyQuestionPool)
}

func TestStartReplacesExistingSession(t *testing.T) {
	svc := newTestSessionService(&fakeSink{})

	_, err := svc.StartTopicTest(1, "Logic")
	require.NoError(t, err)
	_, err = svc.Answer(1, "yes")
	require.NoError(t, err)

	// 重新开始后会话回到第一题
	view, err := svc.StartTopicTest(1, "Logic")
	require.NoError(t, err)
	assert.Equal(t, 1, view.Number)
}

func TestAnswerPersistsAttempt(t *testing.T) {
	sink := &fakeSink{}
	svc := newTestSessionService(sink)

	_, err := svc.StartTopicTest(1, "Logic")
	require.NoError(t, err)

	result, err := svc.Answer(1, "yes")
	require.NoError(t, err)
	assert.True(t, result.Outcome.Correct)
	assert.True(t, result.Persisted)
	assert.Equal(t, 1, result.Position)
	assert.False(t, result.Completed)

	require.Len(t, sink.attempts, 1)
	assert.Equal(t, uint(1), sink.attempts[0].userID)
	assert.Equal(t, "Logic", sink.attempts[0].topic)
	assert.True(t, sink.attempts[0].correct)
}

func TestSkipNeverPersists(t *testing.T) {
	sink := &fakeSink{}
	svc := newTestSessionService(sink)

	_, err := svc.StartTopicTest(1, "Logic")
	require.NoError(t, err)

	result, err := svc.Skip(1)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Position)
	assert.Empty(t, sink.attempts)
}

func TestAnswerStorageFailureStillAdvances(t *testing.T) {
	sink := &fakeSink{failErr: errors.New("db down")}
	svc := newTestSessionService(sink)

	_, err := svc.StartTopicTest(1, "Logic")
	require.NoError(t, err)

	result, err := svc.Answer(1, "yes")
	require.Error(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Persisted)
	assert.True(t, result.Outcome.Correct)
	assert.Equal(t, 1, result.Position)

	// 会话已推进到第二题，不会重复出同一题
	view, err := svc.Current(1)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Number)
}

func TestSummaryAfterCompletion(t *testing.T) {
	svc := newTestSessionService(&fakeSink{})

	_, err := svc.StartTopicTest(1, "Logic")
	require.NoError(t, err)

	_, err = svc.Answer(1, "yes")
	require.NoError(t, err)
	_, err = svc.Skip(1)
	require.NoError(t, err)

	summary, err := svc.Summary(1)
	require.NoError(t, err)
	assert.Equal(t, "Logic", summary.Topic)
	assert.False(t, summary.Mixed)
	assert.Equal(t, 1, summary.CorrectCount)
	assert.Equal(t, 2, summary.Total)
	assert.InDelta(t, 50.0, summary.Score, 0.001)
	assert.Len(t, summary.Outcomes, 1)
}

func TestSummaryBeforeCompletion(t *testing.T) {
	svc := newTestSessionService(&fakeSink{})

	_, err := svc.StartTopicTest(1, "Logic")
	require.NoError(t, err)

	_, err = svc.Summary(1)
	assert.ErrorIs(t, err, util.ErrSessionNotComplete)
}

func TestNoActiveSession(t *testing.T) {
	svc := newTestSessionService(&fakeSink{})

	_, err := svc.Current(1)
	assert.ErrorIs(t, err, util.ErrNoActiveSession)

	_, err = svc.Answer(1, "yes")
	assert.ErrorIs(t, err, util.ErrNoActiveSession)

	_, err = svc.Skip(1)
	assert.ErrorIs(t, err, util.ErrNoActiveSession)
}

func TestDiscardDropsSession(t *testing.T) {
	svc := newTestSessionService(&fakeSink{})

	_, err := svc.StartTopicTest(1, "Logic")
	require.NoError(t, err)

	svc.Discard(1)

	_, err = svc.Current(1)
	assert.ErrorIs(t, err, util.ErrNoActiveSession)
}

func TestSessionsIsolatedPerUser(t *testing.T) {
	svc := newTestSessionService(&fakeSink{})

	_, err := svc.StartTopicTest(1, "Logic")
	require.NoError(t, err)
	_, err = svc.StartTopicTest(2, "Logic")
	require.NoError(t, err)

	_, err = svc.Answer(1, "yes")
	require.NoError(t, err)

	view, err := svc.Current(2)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Number)
}
