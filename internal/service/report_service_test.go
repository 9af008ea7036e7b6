package service

import (
	"testing"

	"mathlearn_backend/internal/config"
	"mathlearn_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func reportConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{Report: config.ReportConfig{Dir: t.TempDir()}}
}

func reportUser() *model.User {
	user := &model.User{Name: "Alice", Email: "alice@example.com"}
	user.ID = 1
	return user
}

func TestExportSessionReport(t *testing.T) {
	svc := NewReportService(NewAnalyticsService(&fakeAttempts{}, 0.7), reportConfig(t))

	summary := &SessionSummary{
		Topic:        "Logic",
		CorrectCount: 1,
		Total:        2,
		Score:        50.0,
		Outcomes: []QuestionOutcome{
			{QuestionID: 1, Topic: "Logic", UserAnswer: "yes", CorrectAnswer: "Yes", Correct: true},
			{QuestionID: 2, Topic: "Logic", UserAnswer: "no", CorrectAnswer: "Yes", Correct: false},
		},
	}

	path, err := svc.ExportSessionReport(reportUser(), summary)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue("Sheet1", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Alice", name)

	topic, err := f.GetCellValue("Sheet1", "B3")
	require.NoError(t, err)
	assert.Equal(t, "Logic", topic)

	score, err := f.GetCellValue("Sheet1", "B4")
	require.NoError(t, err)
	assert.Equal(t, "50.0%", score)

	answer, err := f.GetCellValue("Sheet1", "C9")
	require.NoError(t, err)
	assert.Equal(t, "yes", answer)
}

func TestExportUserReport(t *testing.T) {
	rs := append(results(1, "Sets", true, false, false, true), results(1, "Logic", true)...)
	svc := NewReportService(NewAnalyticsService(&fakeAttempts{results: rs}, 0.7), reportConfig(t))

	path, err := svc.ExportUserReport(reportUser())
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	// 主题统计按名称排序，Logic 在前
	topic, err := f.GetCellValue("Sheet1", "A6")
	require.NoError(t, err)
	assert.Equal(t, "Logic", topic)

	topic, err = f.GetCellValue("Sheet1", "A7")
	require.NoError(t, err)
	assert.Equal(t, "Sets", topic)
}
