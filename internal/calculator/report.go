package calculator

import (
	"sort"

	"github.com/mmynk/tutorbooks/internal/models"
)

// Ledger is an in-memory snapshot of the facts a report is folded from.
// Payments, Sessions and Expenses are the fact rows; the maps are lookups by ID.
type Ledger struct {
	Payments []models.Payment
	Sessions []models.Session
	Expenses []models.Expense

	Students map[string]*models.Student
	Teachers map[string]*models.Teacher
	Courses  map[string]*models.Course
}

// Summary holds the headline figures of a period.
type Summary struct {
	TotalRevenue     float64 `json:"total_revenue"`
	TotalSalaryCost  float64 `json:"total_salary_cost"`
	TotalExpenses    float64 `json:"total_expenses"`
	TotalCosts       float64 `json:"total_costs"`
	NetProfit        float64 `json:"net_profit"`
	ProfitMargin     float64 `json:"profit_margin"`
	TotalHoursTaught float64 `json:"total_hours_taught"`
	TotalHoursSold   float64 `json:"total_hours_sold"`
	PaymentCount     int     `json:"payment_count"`
	SessionCount     int     `json:"session_count"`
	ExpenseCount     int     `json:"expense_count"`
}

// CourseFigures is one course's slice of a period.
type CourseFigures struct {
	CourseID    string  `json:"course_id"`
	CourseName  string  `json:"course_name"`
	TeacherName string  `json:"teacher_name,omitempty"`
	Revenue     float64 `json:"revenue"`
	SalaryCost  float64 `json:"salary_cost"`
	NetProfit   float64 `json:"net_profit"`
	HoursTaught float64 `json:"hours_taught"`
	HoursSold   float64 `json:"hours_sold"`
	// EnrollmentCount is the number of distinct students who paid for the course in the period.
	EnrollmentCount int `json:"enrollment_count"`
	// OutstandingBalance is the sum of every student's current balance for the
	// course. It is a snapshot taken when the report runs and ignores the period.
	OutstandingBalance float64 `json:"outstanding_balance"`
}

// TeacherFigures is one teacher's slice of a period.
type TeacherFigures struct {
	TeacherID    string  `json:"teacher_id"`
	TeacherName  string  `json:"teacher_name"`
	TotalHours   float64 `json:"total_hours"`
	TotalSalary  float64 `json:"total_salary"`
	SessionCount int     `json:"sessions_count"`
	// SignedHours is the hours sold on payments credited to the teacher.
	SignedHours float64 `json:"signed_hours"`
	// RemainingHours is SignedHours minus TotalHours and may be negative.
	RemainingHours float64            `json:"remaining_hours"`
	CoursesTaught  []string           `json:"courses_taught"`
	Rates          map[string]float64 `json:"rates"`
}

// MonthFigures is one calendar month of a trend series.
type MonthFigures struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Salary   float64 `json:"salary"`
	Expenses float64 `json:"expenses"`
	Costs    float64 `json:"costs"`
	Profit   float64 `json:"profit"`
}

// Between returns a ledger restricted to facts dated within r.
// The lookup maps are shared with l.
func (l *Ledger) Between(r models.DateRange) *Ledger {
	out := &Ledger{Students: l.Students, Teachers: l.Teachers, Courses: l.Courses}
	for _, p := range l.Payments {
		if r.Contains(p.Date) {
			out.Payments = append(out.Payments, p)
		}
	}
	for _, s := range l.Sessions {
		if r.Contains(s.Date) {
			out.Sessions = append(out.Sessions, s)
		}
	}
	for _, e := range l.Expenses {
		if r.Contains(e.Date) {
			out.Expenses = append(out.Expenses, e)
		}
	}
	return out
}

// SessionRate returns the rate a session is paid at: the session teacher's
// rate for the student's grade.
func (l *Ledger) SessionRate(s *models.Session) float64 {
	teacher := l.Teachers[s.TeacherID]
	if teacher == nil {
		return 0
	}
	grade := ""
	if student := l.Students[s.StudentID]; student != nil {
		grade = student.Grade
	}
	return ResolveRate(teacher, grade)
}

// SalaryCost returns hours × resolved rate for a session.
func (l *Ledger) SalaryCost(s *models.Session) float64 {
	return s.Hours * l.SessionRate(s)
}

// Summarize folds every fact in the ledger into headline figures.
func (l *Ledger) Summarize() Summary {
	var sum Summary
	for _, p := range l.Payments {
		sum.TotalRevenue += p.AmountPaid
		sum.TotalHoursSold += p.PurchasedHours
	}
	for i := range l.Sessions {
		sum.TotalSalaryCost += l.SalaryCost(&l.Sessions[i])
		sum.TotalHoursTaught += l.Sessions[i].Hours
	}
	for _, e := range l.Expenses {
		sum.TotalExpenses += e.Amount
	}
	sum.TotalCosts = sum.TotalSalaryCost + sum.TotalExpenses
	sum.NetProfit = sum.TotalRevenue - sum.TotalCosts
	if sum.TotalRevenue > 0 {
		sum.ProfitMargin = sum.NetProfit / sum.TotalRevenue * 100
	}
	sum.PaymentCount = len(l.Payments)
	sum.SessionCount = len(l.Sessions)
	sum.ExpenseCount = len(l.Expenses)
	return sum
}

// ByCourse breaks the ledger down per course, ordered by course name.
// Every known course is listed, including those with no activity.
func (l *Ledger) ByCourse() []CourseFigures {
	figures := make(map[string]*CourseFigures, len(l.Courses))
	enrolled := make(map[string]map[string]struct{}, len(l.Courses))
	get := func(courseID string) *CourseFigures {
		f, ok := figures[courseID]
		if !ok {
			f = &CourseFigures{CourseID: courseID, CourseName: courseID}
			if c := l.Courses[courseID]; c != nil {
				f.CourseName = c.Name
				if c.HasTeacher() {
					if t := l.Teachers[*c.TeacherID]; t != nil {
						f.TeacherName = t.Name
					}
				}
			}
			figures[courseID] = f
			enrolled[courseID] = map[string]struct{}{}
		}
		return f
	}

	for id := range l.Courses {
		get(id)
	}
	for _, p := range l.Payments {
		f := get(p.CourseID)
		f.Revenue += p.AmountPaid
		f.HoursSold += p.PurchasedHours
		enrolled[p.CourseID][p.StudentID] = struct{}{}
	}
	for i := range l.Sessions {
		s := &l.Sessions[i]
		f := get(s.CourseID)
		f.SalaryCost += l.SalaryCost(s)
		f.HoursTaught += s.Hours
	}

	out := make([]CourseFigures, 0, len(figures))
	for id, f := range figures {
		f.NetProfit = f.Revenue - f.SalaryCost
		f.EnrollmentCount = len(enrolled[id])
		for _, student := range l.Students {
			f.OutstandingBalance += student.Balances.Get(f.CourseName)
		}
		out = append(out, *f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CourseName < out[j].CourseName })
	return out
}

// ByTeacher breaks the ledger down per teacher, ordered by teacher name.
// Every known teacher is listed, including those with no activity.
func (l *Ledger) ByTeacher() []TeacherFigures {
	figures := make(map[string]*TeacherFigures, len(l.Teachers))
	courses := make(map[string]map[string]struct{}, len(l.Teachers))
	get := func(teacherID string) *TeacherFigures {
		f, ok := figures[teacherID]
		if !ok {
			f = &TeacherFigures{TeacherID: teacherID, TeacherName: teacherID}
			if t := l.Teachers[teacherID]; t != nil {
				f.TeacherName = t.Name
				f.Rates = t.AllRates()
			}
			figures[teacherID] = f
			courses[teacherID] = map[string]struct{}{}
		}
		return f
	}

	for id := range l.Teachers {
		get(id)
	}
	for _, p := range l.Payments {
		if p.TeacherID == "" {
			continue
		}
		get(p.TeacherID).SignedHours += p.PurchasedHours
	}
	for i := range l.Sessions {
		s := &l.Sessions[i]
		f := get(s.TeacherID)
		f.TotalHours += s.Hours
		f.TotalSalary += l.SalaryCost(s)
		f.SessionCount++
		name := s.CourseID
		if c := l.Courses[s.CourseID]; c != nil {
			name = c.Name
		}
		courses[s.TeacherID][name] = struct{}{}
	}

	out := make([]TeacherFigures, 0, len(figures))
	for id, f := range figures {
		f.RemainingHours = f.SignedHours - f.TotalHours
		f.CoursesTaught = sortedKeys(courses[id])
		out = append(out, *f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TeacherName < out[j].TeacherName })
	return out
}

// Monthly buckets the ledger by calendar month for each month key in months.
// Facts outside those months are ignored.
func (l *Ledger) Monthly(months []string) []MonthFigures {
	buckets := make(map[string]*MonthFigures, len(months))
	out := make([]MonthFigures, len(months))
	for i, m := range months {
		out[i].Month = m
		buckets[m] = &out[i]
	}

	for _, p := range l.Payments {
		if b := buckets[p.Date.MonthKey()]; b != nil {
			b.Revenue += p.AmountPaid
		}
	}
	for i := range l.Sessions {
		s := &l.Sessions[i]
		if b := buckets[s.Date.MonthKey()]; b != nil {
			b.Salary += l.SalaryCost(s)
		}
	}
	for _, e := range l.Expenses {
		if b := buckets[e.Date.MonthKey()]; b != nil {
			b.Expenses += e.Amount
		}
	}
	for i := range out {
		out[i].Costs = out[i].Salary + out[i].Expenses
		out[i].Profit = out[i].Revenue - out[i].Costs
	}
	return out
}

// MonthsEndingAt returns n month keys, oldest first, ending with end's month.
func MonthsEndingAt(end models.Date, n int) []string {
	months := make([]string, n)
	for i := 0; i < n; i++ {
		months[i] = end.AddMonths(i - n + 1).MonthKey()
	}
	return months
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
