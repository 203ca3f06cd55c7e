package service

import (
	"context"
	"fmt"
	"io"

	"github.com/csexamtest/examtest-backend/internal/model"
	"github.com/xuri/excelize/v2"
)

// ResultsSheet is the worksheet name of the results export.
const ResultsSheet = "Results"

var resultHeaders = []interface{}{
	"Student ID", "Student Name", "Email", "Course", "Course Code",
	"Score", "Correct Answers", "Total Questions", "Time Spent (s)", "Completed At",
}

// ExportService renders reports as spreadsheets.
type ExportService struct {
	dashboard DashboardStore
}

// NewExportService creates a new ExportService.
func NewExportService(dashboard DashboardStore) *ExportService {
	return &ExportService{dashboard: dashboard}
}

// WriteStudentResults writes every completed attempt as an xlsx workbook to w.
func (s *ExportService) WriteStudentResults(ctx context.Context, w io.Writer) error {
	results, err := s.dashboard.GetStudentResults(ctx)
	if err != nil {
		return err
	}
	return writeResultsWorkbook(w, results)
}

func writeResultsWorkbook(w io.Writer, results []model.StudentResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ResultsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(ResultsSheet, "A1", &resultHeaders); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range results {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			r.StudentID, r.StudentName, r.Email, r.CourseName, r.CourseCode,
			r.Score, r.CorrectAnswers, r.TotalQuestions, r.TimeSpent,
			r.CompletedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		if err := f.SetSheetRow(ResultsSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(ResultsSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}

	_, err := f.WriteTo(w)
	return err
}
