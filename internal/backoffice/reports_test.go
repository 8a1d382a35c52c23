package backoffice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/tutorbooks/internal/calculator"
	"github.com/mmynk/tutorbooks/internal/models"
)

func TestParseRange(t *testing.T) {
	r, err := ParseRange("2024-01-01", "")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", r.From.String())
	assert.True(t, r.To.IsZero())

	_, err = ParseRange("2024-13-01", "")
	assert.Equal(t, KindValidationFailed, KindOf(err))

	_, err = ParseRange("2024-02-01", "2024-01-01")
	assert.Equal(t, KindValidationFailed, KindOf(err))
}

// newReportFixture records in March 2024 a 10h payment at 25/h (250 paid),
// a 2h session paid 50 and a 40 expense, plus a January payment of 100.
func newReportFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	f := newFixture(t, 0)

	_, err := f.svc.CreatePayment(ctx, PaymentInput{
		Date: "2024-01-15", StudentID: f.student.ID, CourseID: f.course.ID,
		PurchasedHours: 4, AmountPaid: 100,
	})
	require.NoError(t, err)
	_, err = f.svc.CreatePayment(ctx, PaymentInput{
		Date: "2024-03-02", StudentID: f.student.ID, CourseID: f.course.ID,
		PurchasedHours: 10, AmountPaid: 250, PaymentMethod: "Card",
	})
	require.NoError(t, err)
	_, err = f.svc.CreateSession(ctx, f.session("09:00", "11:00"))
	require.NoError(t, err)
	_, err = f.svc.CreateExpense(ctx, ExpenseInput{Date: "2024-03-10", Item: "Books", Amount: 40})
	require.NoError(t, err)
	return f
}

func TestFinancialReport(t *testing.T) {
	ctx := context.Background()
	f := newReportFixture(t)

	t.Run("defaults to the last 30 days", func(t *testing.T) {
		got, err := f.svc.FinancialReport(ctx, models.DateRange{})
		require.NoError(t, err)
		assert.Equal(t, "2024-02-19", got.Period.From.String())
		assert.Equal(t, "2024-03-20", got.Period.To.String())

		assert.Equal(t, 250.0, got.Summary.TotalRevenue)
		assert.Equal(t, 50.0, got.Summary.TotalSalaryCost)
		assert.Equal(t, 40.0, got.Summary.TotalExpenses)
		assert.Equal(t, 160.0, got.Summary.NetProfit)
		assert.Equal(t, []string{"2024-02", "2024-03"}, monthKeys(got.Monthly))

		require.Len(t, got.Courses, 1)
		assert.Equal(t, 250.0, got.Courses[0].Revenue)
		assert.Equal(t, 12.0, got.Courses[0].OutstandingBalance)
		require.Len(t, got.Teachers, 1)
		assert.Equal(t, 2.0, got.Teachers[0].TotalHours)
	})

	t.Run("explicit range", func(t *testing.T) {
		r, err := ParseRange("2024-01-01", "2024-01-31")
		require.NoError(t, err)
		got, err := f.svc.FinancialReport(ctx, r)
		require.NoError(t, err)
		assert.Equal(t, 100.0, got.Summary.TotalRevenue)
		assert.Equal(t, 0.0, got.Summary.TotalSalaryCost)
		assert.Equal(t, 1, got.Summary.PaymentCount)
	})
}

func monthKeys(months []calculator.MonthFigures) []string {
	keys := make([]string, 0, len(months))
	for _, m := range months {
		keys = append(keys, m.Month)
	}
	return keys
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	f := newReportFixture(t)

	_, err := f.svc.CreateStudent(ctx, StudentInput{
		Name: "Daisy Miller", Gender: "F", Birthdate: "2011-07-07",
		Balances: map[string]float64{"Math Level 1": 1.5, "English Level 1": 0},
	})
	require.NoError(t, err)

	got, err := f.svc.Dashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, "2024-03-01", got.Period.From.String())
	assert.Equal(t, 250.0, got.CurrentMonth.TotalRevenue)
	assert.Equal(t, 1, got.CurrentMonth.SessionCount)

	require.Len(t, got.Chart, dashboardMonths)
	assert.Equal(t, "2023-10", got.Chart[0].Month)
	assert.Equal(t, "2024-03", got.Chart[5].Month)
	assert.Equal(t, 100.0, got.Chart[3].Revenue)

	assert.Equal(t, Totals{Students: 2, Teachers: 1, Courses: 1}, got.Totals)

	require.Len(t, got.LowBalanceAlerts, 2)
	for _, alert := range got.LowBalanceAlerts {
		assert.Equal(t, "Daisy Miller", alert.StudentName)
		assert.Less(t, alert.Balance, models.DefaultLowBalanceThreshold)
	}
}

func TestAttendanceAndStats(t *testing.T) {
	ctx := context.Background()
	f := newReportFixture(t)

	_, err := f.svc.CreateTeacher(ctx, TeacherInput{Name: "Idle Teacher"})
	require.NoError(t, err)

	t.Run("attendance lists teachers who taught", func(t *testing.T) {
		got, err := f.svc.AttendanceReport(ctx, models.DateRange{})
		require.NoError(t, err)
		require.Len(t, got.Teachers, 1)
		assert.Equal(t, "Alice Johnson", got.Teachers[0].TeacherName)
		assert.Equal(t, 2.0, got.TotalHours)
		assert.Equal(t, 50.0, got.TotalSalary)
	})

	t.Run("course stats", func(t *testing.T) {
		got, err := f.svc.CourseStats(ctx, f.course.ID, models.DateRange{})
		require.NoError(t, err)
		assert.Equal(t, 350.0, got.Revenue)
		assert.Equal(t, 2.0, got.HoursTaught)
		assert.Equal(t, 1, got.SessionCount)
		assert.Equal(t, 2.0, got.AverageSessionLength)

		_, err = f.svc.CourseStats(ctx, "missing", models.DateRange{})
		assert.Equal(t, KindNotFound, KindOf(err))
	})

	t.Run("teacher stats", func(t *testing.T) {
		got, err := f.svc.TeacherStats(ctx, f.teacher.ID, models.DateRange{})
		require.NoError(t, err)
		assert.Equal(t, 50.0, got.TotalSalary)
		assert.Equal(t, 1, got.SessionCount)
	})

	t.Run("session summary", func(t *testing.T) {
		got, err := f.svc.SessionSummary(ctx, models.DateRange{})
		require.NoError(t, err)
		assert.Equal(t, 1, got.SessionCount)
		assert.Equal(t, 25.0, got.AverageSalaryPerHour)
		assert.Equal(t, SessionBucket{Sessions: 1, Hours: 2, SalaryCost: 50}, got.ByTeacher["Alice Johnson"])
		assert.Equal(t, SessionBucket{Sessions: 1, Hours: 2, SalaryCost: 50}, got.ByCourse["Math Level 1"])
	})
}
