package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fmuoria/job-match-agent/internal/models"
	"github.com/xuri/excelize/v2"
)

// ExportToExcel generates an Excel file with ranked job matches.
func ExportToExcel(report models.MatchReport, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	// Ensure output path has .xlsx extension
	if !strings.HasSuffix(strings.ToLower(outputPath), ".xlsx") {
		outputPath = outputPath + ".xlsx"
	}

	// Clean the path for cross-platform compatibility (Windows paths)
	outputPath = filepath.Clean(outputPath)

	summarySheet := "Summary"
	jobsSheet := "Ranked Jobs"

	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(jobsSheet); err != nil {
		return fmt.Errorf("failed to create jobs sheet: %w", err)
	}

	if err := createSummarySheet(f, summarySheet, report); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	if err := createRankedJobsSheet(f, jobsSheet, report.Jobs); err != nil {
		return fmt.Errorf("failed to create ranked jobs sheet: %w", err)
	}

	// Try to save the file directly
	if err := f.SaveAs(outputPath); err != nil {
		// If direct save fails, try buffer write fallback
		var buf bytes.Buffer
		if writeErr := f.Write(&buf); writeErr != nil {
			return fmt.Errorf("failed to save Excel file: direct save failed (%v), buffer write also failed: %w", err, writeErr)
		}

		if fileErr := os.WriteFile(outputPath, buf.Bytes(), 0644); fileErr != nil {
			return fmt.Errorf("failed to save Excel file: direct save failed (%v), file write failed: %w", err, fileErr)
		}
	}

	return nil
}

// createSummarySheet writes run metadata and match statistics.
func createSummarySheet(f *excelize.File, sheetName string, report models.MatchReport) error {
	f.SetColWidth(sheetName, "A", "A", 25)
	f.SetColWidth(sheetName, "B", "B", 50)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	labelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}

	f.SetCellValue(sheetName, "A1", "Job Match Report")
	f.SetCellStyle(sheetName, "A1", "B1", headerStyle)
	f.MergeCell(sheetName, "A1", "B1")

	rows := []struct {
		label string
		value interface{}
	}{
		{"Search Query:", report.Query},
		{"Location:", report.Location},
		{"Resume:", report.ResumePath},
		{"Generated:", report.Timestamp},
		{"Jobs Fetched:", report.TotalFetched},
		{"Jobs Ranked:", len(report.Jobs)},
	}

	row := 3
	for _, r := range rows {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), r.label)
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), labelStyle)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.value)
		row++
	}

	return nil
}

// createRankedJobsSheet writes one row per job in rank order.
func createRankedJobsSheet(f *excelize.File, sheetName string, jobs []models.Job) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	headers := []string{"Rank", "Title", "Company", "Location", "Employment Type", "Publisher", "Similarity Score"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	f.SetColWidth(sheetName, "B", "C", 35)
	f.SetColWidth(sheetName, "D", "F", 20)

	for i, job := range jobs {
		row := i + 2
		values := []interface{}{i + 1, job.Title, job.Company, job.Location, job.EmploymentType, job.Publisher, job.SimilarityScore}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			f.SetCellValue(sheetName, cell, value)
		}
	}

	return nil
}
