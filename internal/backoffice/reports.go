package backoffice

import (
	"context"

	"github.com/mmynk/tutorbooks/internal/calculator"
	"github.com/mmynk/tutorbooks/internal/models"
	"github.com/mmynk/tutorbooks/internal/storage"
)

const (
	defaultReportDays = 30
	dashboardMonths   = 6
)

// ParseRange parses optional "YYYY-MM-DD" bounds. An empty bound stays open.
func ParseRange(start, end string) (models.DateRange, error) {
	var r models.DateRange
	var err error
	if start != "" {
		if r.From, err = models.ParseDate(start); err != nil {
			return r, invalidField("start_date", "invalid start_date format, use YYYY-MM-DD")
		}
	}
	if end != "" {
		if r.To, err = models.ParseDate(end); err != nil {
			return r, invalidField("end_date", "invalid end_date format, use YYYY-MM-DD")
		}
	}
	if !r.From.IsZero() && !r.To.IsZero() && r.From.After(r.To) {
		return r, invalidField("start_date", "start_date must not be after end_date")
	}
	return r, nil
}

// reportRange closes an open range: the end defaults to today and the start
// to 30 days before the end.
func (s *Service) reportRange(r models.DateRange) models.DateRange {
	if r.To.IsZero() {
		r.To = s.today()
	}
	if r.From.IsZero() {
		r.From = r.To.AddDays(-defaultReportDays)
	}
	return r
}

// loadLedger reads the facts dated within r that match f, plus every
// student, teacher and course.
func (s *Service) loadLedger(ctx context.Context, r models.DateRange, f storage.FactFilter, withExpenses bool) (*calculator.Ledger, error) {
	f.Range = r
	payments, err := s.store.ListPayments(ctx, f)
	if err != nil {
		return nil, err
	}
	sessions, err := s.store.ListSessions(ctx, f)
	if err != nil {
		return nil, err
	}
	var expenses []models.Expense
	if withExpenses {
		if expenses, err = s.store.ListExpenses(ctx, storage.ExpenseFilter{Range: r}); err != nil {
			return nil, err
		}
	}
	refs, err := loadRefs(ctx, s.store)
	if err != nil {
		return nil, err
	}
	return &calculator.Ledger{
		Payments: payments,
		Sessions: sessions,
		Expenses: expenses,
		Students: refs.students,
		Teachers: refs.teachers,
		Courses:  refs.courses,
	}, nil
}

// FinancialReport is the income statement of a period with its breakdowns.
type FinancialReport struct {
	Period   models.DateRange            `json:"period"`
	Summary  calculator.Summary          `json:"summary"`
	Courses  []calculator.CourseFigures  `json:"course_analysis"`
	Teachers []calculator.TeacherFigures `json:"teacher_analysis"`
	Monthly  []calculator.MonthFigures   `json:"monthly_trend"`
}

// FinancialReport folds the payments, sessions and expenses of r into
// revenue, costs and profit. An open range defaults to the last 30 days.
// Per-course outstanding balances are current, not as of the period end.
func (s *Service) FinancialReport(ctx context.Context, r models.DateRange) (*FinancialReport, error) {
	r = s.reportRange(r)
	ledger, err := s.loadLedger(ctx, r, storage.FactFilter{}, true)
	if err != nil {
		return nil, fromStore(err, "report", "")
	}
	return &FinancialReport{
		Period:   r,
		Summary:  ledger.Summarize(),
		Courses:  ledger.ByCourse(),
		Teachers: ledger.ByTeacher(),
		Monthly:  ledger.Monthly(monthsBetween(r.From, r.To)),
	}, nil
}

func monthsBetween(from, to models.Date) []string {
	var months []string
	for m := from.StartOfMonth(); !m.After(to); m = m.AddMonths(1) {
		months = append(months, m.MonthKey())
	}
	return months
}

// LowBalanceAlert flags a student whose balance for a course is below the threshold.
type LowBalanceAlert struct {
	StudentID   string  `json:"student_id"`
	StudentName string  `json:"student_name"`
	CourseName  string  `json:"course_name"`
	Balance     float64 `json:"balance"`
}

// Totals counts the center's entities.
type Totals struct {
	Students int `json:"students"`
	Teachers int `json:"teachers"`
	Courses  int `json:"courses"`
}

// Dashboard summarizes the current month and the recent trend.
type Dashboard struct {
	Period           models.DateRange          `json:"period"`
	CurrentMonth     calculator.Summary        `json:"current_month"`
	Chart            []calculator.MonthFigures `json:"chart_data"`
	LowBalanceAlerts []LowBalanceAlert         `json:"low_balance_alerts"`
	Totals           Totals                    `json:"totals"`
}

// Dashboard returns month-to-date figures, the last six calendar months, the
// balances under the low-balance threshold and entity counts.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	today := s.today()
	monthToDate := models.DateRange{From: today.StartOfMonth(), To: today}
	chartRange := models.DateRange{From: today.AddMonths(1 - dashboardMonths), To: today.EndOfMonth()}

	ledger, err := s.loadLedger(ctx, chartRange, storage.FactFilter{}, true)
	if err != nil {
		return nil, fromStore(err, "dashboard", "")
	}

	d := &Dashboard{
		Period:           monthToDate,
		CurrentMonth:     ledger.Between(monthToDate).Summarize(),
		Chart:            ledger.Monthly(calculator.MonthsEndingAt(today, dashboardMonths)),
		LowBalanceAlerts: []LowBalanceAlert{},
		Totals: Totals{
			Students: len(ledger.Students),
			Teachers: len(ledger.Teachers),
			Courses:  len(ledger.Courses),
		},
	}

	students, err := s.store.ListStudents(ctx, storage.StudentFilter{})
	if err != nil {
		return nil, fromStore(err, "dashboard", "")
	}
	for _, student := range students {
		for _, course := range student.Balances.Courses() {
			if student.Balances.IsLow(course, s.lowBalance) {
				d.LowBalanceAlerts = append(d.LowBalanceAlerts, LowBalanceAlert{
					StudentID:   student.ID,
					StudentName: student.Name,
					CourseName:  course,
					Balance:     student.Balances.Get(course),
				})
			}
		}
	}
	return d, nil
}

// AttendanceReport lists, per teacher who taught in the period, hours,
// salary, sessions and courses.
type AttendanceReport struct {
	Period      models.DateRange            `json:"period"`
	Teachers    []calculator.TeacherFigures `json:"teachers"`
	TotalHours  float64                     `json:"total_hours"`
	TotalSalary float64                     `json:"total_salary"`
}

// AttendanceReport reports teacher activity within r. An open range defaults to the last 30 days.
func (s *Service) AttendanceReport(ctx context.Context, r models.DateRange) (*AttendanceReport, error) {
	r = s.reportRange(r)
	ledger, err := s.loadLedger(ctx, r, storage.FactFilter{}, false)
	if err != nil {
		return nil, fromStore(err, "report", "")
	}

	out := &AttendanceReport{Period: r, Teachers: []calculator.TeacherFigures{}}
	for _, t := range ledger.ByTeacher() {
		if t.SessionCount == 0 {
			continue
		}
		out.Teachers = append(out.Teachers, t)
		out.TotalHours += t.TotalHours
		out.TotalSalary += t.TotalSalary
	}
	return out, nil
}

// CourseStats is one course's figures over a period.
type CourseStats struct {
	Period models.DateRange `json:"period"`
	calculator.CourseFigures
	BaseRate             float64 `json:"base_rate"`
	SessionCount         int     `json:"sessions_count"`
	AverageSessionLength float64 `json:"average_session_length"`
}

// CourseStats reports a course's revenue, hours and salary cost within r.
// An open range is left open.
func (s *Service) CourseStats(ctx context.Context, id string, r models.DateRange) (*CourseStats, error) {
	course, err := s.store.GetCourse(ctx, id)
	if err != nil {
		return nil, fromStore(err, "course", id)
	}
	ledger, err := s.loadLedger(ctx, r, storage.FactFilter{CourseID: id}, false)
	if err != nil {
		return nil, fromStore(err, "course", id)
	}

	out := &CourseStats{Period: r, BaseRate: course.BaseRate, SessionCount: len(ledger.Sessions)}
	for _, c := range ledger.ByCourse() {
		if c.CourseID == id {
			out.CourseFigures = c
		}
	}
	if out.SessionCount > 0 {
		out.AverageSessionLength = round2(out.HoursTaught / float64(out.SessionCount))
	}
	return out, nil
}

// TeacherStats reports a teacher's hours and salary within r. An open range is left open.
func (s *Service) TeacherStats(ctx context.Context, id string, r models.DateRange) (*calculator.TeacherFigures, error) {
	if _, err := s.store.GetTeacher(ctx, id); err != nil {
		return nil, fromStore(err, "teacher", id)
	}
	ledger, err := s.loadLedger(ctx, r, storage.FactFilter{TeacherID: id}, false)
	if err != nil {
		return nil, fromStore(err, "teacher", id)
	}
	for _, t := range ledger.ByTeacher() {
		if t.TeacherID == id {
			return &t, nil
		}
	}
	return nil, notFound("teacher", id)
}
