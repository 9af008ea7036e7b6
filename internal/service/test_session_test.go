package service

import (
	"testing"

	"mathlearn_backend/internal/model"
	"mathlearn_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionQuestions() []model.Question {
	q1 := model.Question{Topic: "Logic", Prompt: "p and q", CorrectAnswer: "Yes", Kind: model.MultipleChoice, WrongAnswers: model.StringList{"No"}}
	q1.ID = 1
	q2 := model.Question{Topic: "Logic", Prompt: "p or q", CorrectAnswer: "No", Kind: model.MultipleChoice, WrongAnswers: model.StringList{"Yes"}}
	q2.ID = 2
	return []model.Question{q1, q2}
}

func TestSessionAdvancesExactlyOncePerEvent(t *testing.T) {
	s := NewTestSession(1, "Logic", "", false, sessionQuestions())

	assert.Equal(t, 0, s.Position)
	assert.False(t, s.Completed())

	_, err := s.SubmitAnswer("yes")
	require.NoError(t, err)
	assert.Equal(t, 1, s.Position)
	assert.False(t, s.Completed())

	require.NoError(t, s.Skip())
	assert.Equal(t, 2, s.Position)
	assert.True(t, s.Completed())
}

func TestSubmitAnswerMatchingIgnoresCaseAndWhitespace(t *testing.T) {
	s := NewTestSession(1, "Logic", "", false, sessionQuestions())

	outcome, err := s.SubmitAnswer("  YES ")
	require.NoError(t, err)
	assert.True(t, outcome.Correct)
	assert.Equal(t, "  YES ", outcome.UserAnswer)
	assert.Equal(t, "Yes", outcome.CorrectAnswer)
	assert.Equal(t, 1, s.CorrectCount)
}

func TestSubmitAnswerWrong(t *testing.T) {
	s := NewTestSession(1, "Logic", "", false, sessionQuestions())

	outcome, err := s.SubmitAnswer("no")
	require.NoError(t, err)
	assert.False(t, outcome.Correct)
	assert.Equal(t, 0, s.CorrectCount)
	assert.Equal(t, uint(1), outcome.QuestionID)
}

func TestSkipDoesNotScoreOrRecord(t *testing.T) {
	s := NewTestSession(1, "Logic", "", false, sessionQuestions())

	require.NoError(t, s.Skip())
	assert.Equal(t, 0, s.CorrectCount)
	assert.Empty(t, s.Outcomes)
}

func TestScoreCountsSkippedInDenominator(t *testing.T) {
	s := NewTestSession(1, "Logic", "", false, sessionQuestions())

	_, err := s.SubmitAnswer("yes")
	require.NoError(t, err)
	require.NoError(t, s.Skip())

	score, err := s.Score()
	require.NoError(t, err)
	assert.InDelta(t, 50.0, score, 0.001)
	assert.Len(t, s.Outcomes, 1)
}

func TestScoreBeforeCompletion(t *testing.T) {
	s := NewTestSession(1, "Logic", "", false, sessionQuestions())

	_, err := s.Score()
	assert.ErrorIs(t, err, util.ErrSessionNotComplete)
}

func TestCompletedSessionRejectsFurtherEvents(t *testing.T) {
	s := NewTestSession(1, "Logic", "", false, sessionQuestions()[:1])

	_, err := s.SubmitAnswer("yes")
	require.NoError(t, err)
	require.True(t, s.Completed())

	_, err = s.SubmitAnswer("yes")
	assert.ErrorIs(t, err, util.ErrSessionComplete)
	assert.ErrorIs(t, s.Skip(), util.ErrSessionComplete)

	_, err = s.CurrentQuestion()
	assert.ErrorIs(t, err, util.ErrSessionComplete)
}

func TestSessionSnapshotsQuestions(t *testing.T) {
	questions := sessionQuestions()
	s := NewTestSession(1, "Logic", "", false, questions)

	// 创建后修改原切片不影响会话
	questions[0].CorrectAnswer = "changed"

	outcome, err := s.SubmitAnswer("yes")
	require.NoError(t, err)
	assert.True(t, outcome.Correct)
}

func TestPerfectScore(t *testing.T) {
	s := NewTestSession(1, "Logic", "", false, sessionQuestions())

	_, err := s.SubmitAnswer("yes")
	require.NoError(t, err)
	_, err = s.SubmitAnswer("no")
	require.NoError(t, err)

	score, err := s.Score()
	require.NoError(t, err)
	assert.InDelta(t, 100.0, score, 0.001)
	assert.Equal(t, 2, s.CorrectCount)
}
