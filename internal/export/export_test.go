package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mmynk/tutorbooks/internal/backoffice"
	"github.com/mmynk/tutorbooks/internal/calculator"
	"github.com/mmynk/tutorbooks/internal/models"
)

func testReport() *backoffice.FinancialReport {
	return &backoffice.FinancialReport{
		Period: models.DateRange{
			From: models.NewDate(2024, 3, 1),
			To:   models.NewDate(2024, 3, 31),
		},
		Summary: calculator.Summary{
			TotalRevenue:    250,
			TotalSalaryCost: 50,
			TotalExpenses:   25.5,
			NetProfit:       174.5,
		},
		Courses: []calculator.CourseFigures{
			{CourseName: "Math Level 1", TeacherName: "Alice Johnson", EnrollmentCount: 1, Revenue: 250, SalaryCost: 50, HoursTaught: 2, OutstandingBalance: 3},
		},
		Teachers: []calculator.TeacherFigures{
			{TeacherName: "Alice Johnson", TotalHours: 2, TotalSalary: 50, SessionCount: 1},
		},
		Monthly: []calculator.MonthFigures{
			{Month: "2024-03", Revenue: 250, Salary: 50, Expenses: 25.5, Profit: 174.5},
		},
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = ParseFormat("xlsx")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	_, err = ParseFormat("pdf")
	assert.Error(t, err)
}

func TestFilename(t *testing.T) {
	r := testReport().Period
	assert.Equal(t, "financial_report_2024-03-01_to_2024-03-31.csv", Filename(r, FormatCSV))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, FinancialSections(testReport())))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Summary\nMetric,Value\nPeriod,2024-03-01 to 2024-03-31\n"))
	assert.Contains(t, out, "Total Other Expenses,25.50\n")
	assert.Contains(t, out, "Math Level 1,Alice Johnson,1,250.00,50.00,0.00,0.0,2.0,3.0\n")
	assert.Contains(t, out, "\nTeacher Analysis\n")
	assert.Contains(t, out, "2024-03,250.00,50.00,25.50,174.50\n")
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatXLSX, FinancialSections(testReport())))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "Course Analysis", "Teacher Analysis", "Monthly Trend"}, f.GetSheetList())

	v, err := f.GetCellValue("Course Analysis", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Math Level 1", v)

	v, err = f.GetCellValue("Summary", "B3")
	require.NoError(t, err)
	assert.Equal(t, "250", v)
}
