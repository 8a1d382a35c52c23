// Package export renders reports as downloadable CSV or XLSX files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/mmynk/tutorbooks/internal/backoffice"
	"github.com/mmynk/tutorbooks/internal/models"
)

// Format is a file format a report can be exported to.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat returns the Format named by s. An empty s selects CSV.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported export format %q, use csv or xlsx", s)
	}
}

// ContentType is the MIME type of files in format f.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

// Filename names the export of a financial report covering r.
func Filename(r models.DateRange, f Format) string {
	return fmt.Sprintf("financial_report_%s_to_%s.%s", r.From, r.To, f)
}

// Money is a currency amount, rendered with two decimals.
type Money float64

// Hours is an hour count, rendered with one decimal.
type Hours float64

// Section is one titled table of a report.
type Section struct {
	Title  string
	Header []string
	Rows   [][]any
}

// FinancialSections lays out a financial report as tables.
func FinancialSections(rep *backoffice.FinancialReport) []Section {
	sum := rep.Summary
	summary := Section{
		Title:  "Summary",
		Header: []string{"Metric", "Value"},
		Rows: [][]any{
			{"Period", fmt.Sprintf("%s to %s", rep.Period.From, rep.Period.To)},
			{"Total Revenue", Money(sum.TotalRevenue)},
			{"Total Salary Cost", Money(sum.TotalSalaryCost)},
			{"Total Other Expenses", Money(sum.TotalExpenses)},
			{"Net Profit", Money(sum.NetProfit)},
			{"Profit Margin %", Money(sum.ProfitMargin)},
			{"Hours Sold", Hours(sum.TotalHoursSold)},
			{"Hours Taught", Hours(sum.TotalHoursTaught)},
		},
	}

	courses := Section{
		Title:  "Course Analysis",
		Header: []string{"Course", "Teacher", "Enrollment", "Revenue", "Salary Cost", "Net Profit", "Hours Sold", "Hours Taught", "Outstanding Balance"},
	}
	for _, c := range rep.Courses {
		courses.Rows = append(courses.Rows, []any{
			c.CourseName, c.TeacherName, c.EnrollmentCount,
			Money(c.Revenue), Money(c.SalaryCost), Money(c.NetProfit),
			Hours(c.HoursSold), Hours(c.HoursTaught), Hours(c.OutstandingBalance),
		})
	}

	teachers := Section{
		Title:  "Teacher Analysis",
		Header: []string{"Teacher", "Hours Taught", "Salary Earned", "Sessions Count", "Signed Hours", "Remaining Hours"},
	}
	for _, t := range rep.Teachers {
		teachers.Rows = append(teachers.Rows, []any{
			t.TeacherName, Hours(t.TotalHours), Money(t.TotalSalary), t.SessionCount,
			Hours(t.SignedHours), Hours(t.RemainingHours),
		})
	}

	monthly := Section{
		Title:  "Monthly Trend",
		Header: []string{"Month", "Revenue", "Salary", "Expenses", "Profit"},
	}
	for _, m := range rep.Monthly {
		monthly.Rows = append(monthly.Rows, []any{
			m.Month, Money(m.Revenue), Money(m.Salary), Money(m.Expenses), Money(m.Profit),
		})
	}

	return []Section{summary, courses, teachers, monthly}
}

// Write renders sections to w in format f.
func Write(w io.Writer, f Format, sections []Section) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, sections)
	case FormatXLSX:
		return WriteXLSX(w, sections)
	default:
		return fmt.Errorf("unsupported export format %q", f)
	}
}

// WriteCSV writes sections one after another, each preceded by its title
// and separated by a blank line.
func WriteCSV(w io.Writer, sections []Section) error {
	cw := csv.NewWriter(w)
	for i, s := range sections {
		if i > 0 {
			if err := cw.Write([]string{""}); err != nil {
				return err
			}
		}
		if err := cw.Write([]string{s.Title}); err != nil {
			return err
		}
		if err := cw.Write(s.Header); err != nil {
			return err
		}
		for _, row := range s.Rows {
			record := make([]string, len(row))
			for j, v := range row {
				record[j] = formatCell(v)
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatCell(v any) string {
	switch v := v.(type) {
	case Money:
		return strconv.FormatFloat(float64(v), 'f', 2, 64)
	case Hours:
		return strconv.FormatFloat(float64(v), 'f', 1, 64)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// WriteXLSX writes one worksheet per section with a bold header row.
func WriteXLSX(w io.Writer, sections []Section) error {
	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, s := range sections {
		sheet := s.Title
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return fmt.Errorf("failed to name sheet %q: %w", sheet, err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to add sheet %q: %w", sheet, err)
		}

		headerRow := make([]any, len(s.Header))
		for j, h := range s.Header {
			headerRow[j] = h
		}
		if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
			return fmt.Errorf("failed to write header of %q: %w", sheet, err)
		}
		if err := f.SetRowStyle(sheet, 1, 1, header); err != nil {
			return fmt.Errorf("failed to style header of %q: %w", sheet, err)
		}

		for j, row := range s.Rows {
			cell, err := excelize.CoordinatesToCellName(1, j+2)
			if err != nil {
				return err
			}
			values := make([]any, len(row))
			for k, v := range row {
				values[k] = xlsxValue(v)
			}
			if err := f.SetSheetRow(sheet, cell, &values); err != nil {
				return fmt.Errorf("failed to write row %d of %q: %w", j+2, sheet, err)
			}
		}

		last, err := excelize.ColumnNumberToName(max(len(s.Header), 1))
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, "A", last, 18); err != nil {
			return fmt.Errorf("failed to size columns of %q: %w", sheet, err)
		}
	}

	f.SetActiveSheet(0)
	return f.Write(w)
}

func xlsxValue(v any) any {
	switch v := v.(type) {
	case Money:
		return math.Round(float64(v)*100) / 100
	case Hours:
		return math.Round(float64(v)*10) / 10
	default:
		return v
	}
}
