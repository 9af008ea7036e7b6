package service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"mathlearn_backend/internal/config"
	"mathlearn_backend/internal/model"

	"github.com/xuri/excelize/v2"
)

// ReportService 生成 XLSX 报表：单次测验明细、个人学习报告
type ReportService struct {
	Analytics *AnalyticsService
	Cfg       *config.Config
}

func NewReportService(analytics *AnalyticsService, cfg *config.Config) *ReportService {
	return &ReportService{Analytics: analytics, Cfg: cfg}
}

const reportSheet = "Sheet1"

// ExportSessionReport 把一次完成的测验写成 XLSX，返回文件路径
func (s *ReportService) ExportSessionReport(user *model.User, summary *SessionSummary) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue(reportSheet, "A1", "Test report")
	f.SetCellValue(reportSheet, "A2", "Student")
	f.SetCellValue(reportSheet, "B2", user.Name)
	f.SetCellValue(reportSheet, "A3", "Topic")
	if summary.Mixed {
		f.SetCellValue(reportSheet, "B3", "Mixed test")
	} else {
		f.SetCellValue(reportSheet, "B3", summary.Topic)
	}
	f.SetCellValue(reportSheet, "A4", "Score")
	f.SetCellValue(reportSheet, "B4", fmt.Sprintf("%.1f%%", summary.Score))
	f.SetCellValue(reportSheet, "A5", "Correct")
	f.SetCellValue(reportSheet, "B5", fmt.Sprintf("%d / %d", summary.CorrectCount, summary.Total))
	f.SetCellValue(reportSheet, "A6", "Date")
	f.SetCellValue(reportSheet, "B6", time.Now().Format("2006-01-02 15:04:05"))

	headers := []string{"#", "Topic", "Your answer", "Correct answer", "Result"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 8)
		f.SetCellValue(reportSheet, cell, h)
	}

	for i, outcome := range summary.Outcomes {
		row := 9 + i
		verdict := "wrong"
		if outcome.Correct {
			verdict = "correct"
		}
		values := []interface{}{i + 1, outcome.Topic, outcome.UserAnswer, outcome.CorrectAnswer, verdict}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(reportSheet, cell, v)
		}
	}

	return s.save(f, fmt.Sprintf("test_report_u%d_%s.xlsx", user.ID, time.Now().Format("20060102150405")))
}

// ExportUserReport 导出用户的主题统计和薄弱主题
func (s *ReportService) ExportUserReport(user *model.User) (string, error) {
	stats, err := s.Analytics.TopicStats(user.ID)
	if err != nil {
		return "", err
	}
	weak, err := s.Analytics.WeakTopics(user.ID)
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue(reportSheet, "A1", "Progress report")
	f.SetCellValue(reportSheet, "A2", "Student")
	f.SetCellValue(reportSheet, "B2", user.Name)
	f.SetCellValue(reportSheet, "A3", "Date")
	f.SetCellValue(reportSheet, "B3", time.Now().Format("2006-01-02 15:04:05"))

	headers := []string{"Topic", "Attempts", "Correct", "Success rate"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 5)
		f.SetCellValue(reportSheet, cell, h)
	}

	row := 6
	for _, st := range stats {
		values := []interface{}{st.Topic, st.Attempts, st.Correct, fmt.Sprintf("%.1f%%", st.SuccessRate)}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(reportSheet, cell, v)
		}
		row++
	}

	row++
	f.SetCellValue(reportSheet, fmt.Sprintf("A%d", row), "Weak topics")
	if len(weak) == 0 {
		f.SetCellValue(reportSheet, fmt.Sprintf("B%d", row), "none")
	}
	for i, topic := range weak {
		f.SetCellValue(reportSheet, fmt.Sprintf("B%d", row+i), topic)
	}

	return s.save(f, fmt.Sprintf("progress_report_u%d_%s.xlsx", user.ID, time.Now().Format("20060102150405")))
}

func (s *ReportService) save(f *excelize.File, filename string) (string, error) {
	if err := os.MkdirAll(s.Cfg.Report.Dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(s.Cfg.Report.Dir, filename)
	if err := f.SaveAs(path); err != nil {
		return "", err
	}
	return path, nil
}
