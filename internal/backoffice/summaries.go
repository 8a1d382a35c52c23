package backoffice

import (
	"context"

	"github.com/mmynk/tutorbooks/internal/models"
	"github.com/mmynk/tutorbooks/internal/storage"
)

const unknownName = "Unknown"

// Bucket counts records and sums their amounts.
type Bucket struct {
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

func (b *Bucket) add(amount float64) {
	b.Count++
	b.Amount = round2(b.Amount + amount)
}

// PaymentSummary totals the payments of a period.
type PaymentSummary struct {
	Period            models.DateRange  `json:"period"`
	TotalRevenue      float64           `json:"total_revenue"`
	TotalHoursSold    float64           `json:"total_hours_sold"`
	TotalDiscounts    float64           `json:"total_discounts"`
	PaymentCount      int               `json:"payment_count"`
	AveragePayment    float64           `json:"average_payment"`
	AverageHourlyRate float64           `json:"average_hourly_rate"`
	Methods           map[string]Bucket `json:"payment_methods"`
}

// PaymentSummary totals the payments dated within r, broken down by payment method.
func (s *Service) PaymentSummary(ctx context.Context, r models.DateRange) (*PaymentSummary, error) {
	payments, err := s.store.ListPayments(ctx, storage.FactFilter{Range: r})
	if err != nil {
		return nil, fromStore(err, "payment", "")
	}

	out := &PaymentSummary{Period: r, Methods: map[string]Bucket{}, PaymentCount: len(payments)}
	for _, p := range payments {
		out.TotalRevenue += p.AmountPaid
		out.TotalHoursSold += p.PurchasedHours
		out.TotalDiscounts += p.Discount

		b := out.Methods[p.PaymentMethod]
		b.add(p.AmountPaid)
		out.Methods[p.PaymentMethod] = b
	}
	if out.PaymentCount > 0 {
		out.AveragePayment = round2(out.TotalRevenue / float64(out.PaymentCount))
	}
	if out.TotalHoursSold > 0 {
		out.AverageHourlyRate = round2(out.TotalRevenue / out.TotalHoursSold)
	}
	out.TotalRevenue = round2(out.TotalRevenue)
	out.TotalHoursSold = round2(out.TotalHoursSold)
	out.TotalDiscounts = round2(out.TotalDiscounts)
	return out, nil
}

// SessionBucket aggregates the sessions of one teacher or course.
type SessionBucket struct {
	Sessions   int     `json:"sessions"`
	Hours      float64 `json:"hours"`
	SalaryCost float64 `json:"salary_cost"`
}

// SessionSummary totals the sessions of a period.
type SessionSummary struct {
	Period               models.DateRange         `json:"period"`
	TotalHours           float64                  `json:"total_hours"`
	TotalSalaryCost      float64                  `json:"total_salary_cost"`
	SessionCount         int                      `json:"session_count"`
	AverageSessionLength float64                  `json:"average_session_length"`
	AverageSalaryPerHour float64                  `json:"average_salary_per_hour"`
	ByTeacher            map[string]SessionBucket `json:"teacher_breakdown"`
	ByCourse             map[string]SessionBucket `json:"course_breakdown"`
}

// SessionSummary totals the sessions dated within r, keyed by teacher and by course name.
func (s *Service) SessionSummary(ctx context.Context, r models.DateRange) (*SessionSummary, error) {
	ledger, err := s.loadLedger(ctx, r, storage.FactFilter{}, false)
	if err != nil {
		return nil, fromStore(err, "session", "")
	}

	out := &SessionSummary{
		Period:       r,
		SessionCount: len(ledger.Sessions),
		ByTeacher:    map[string]SessionBucket{},
		ByCourse:     map[string]SessionBucket{},
	}
	tally := func(m map[string]SessionBucket, key string, hours, cost float64) {
		b := m[key]
		b.Sessions++
		b.Hours = round2(b.Hours + hours)
		b.SalaryCost = round2(b.SalaryCost + cost)
		m[key] = b
	}
	for i := range ledger.Sessions {
		session := &ledger.Sessions[i]
		cost := ledger.SalaryCost(session)
		out.TotalHours += session.Hours
		out.TotalSalaryCost += cost

		teacher := unknownName
		if t, ok := ledger.Teachers[session.TeacherID]; ok {
			teacher = t.Name
		}
		course := unknownName
		if c, ok := ledger.Courses[session.CourseID]; ok {
			course = c.Name
		}
		tally(out.ByTeacher, teacher, session.Hours, cost)
		tally(out.ByCourse, course, session.Hours, cost)
	}
	if out.SessionCount > 0 {
		out.AverageSessionLength = round2(out.TotalHours / float64(out.SessionCount))
	}
	if out.TotalHours > 0 {
		out.AverageSalaryPerHour = round2(out.TotalSalaryCost / out.TotalHours)
	}
	out.TotalHours = round2(out.TotalHours)
	out.TotalSalaryCost = round2(out.TotalSalaryCost)
	return out, nil
}

// ExpenseSummary totals the expenses of a period.
type ExpenseSummary struct {
	Period         models.DateRange  `json:"period"`
	TotalAmount    float64           `json:"total_amount"`
	ExpenseCount   int               `json:"expense_count"`
	AverageExpense float64           `json:"average_expense"`
	ByCategory     map[string]Bucket `json:"category_breakdown"`
	ByMonth        map[string]Bucket `json:"monthly_breakdown"`
}

// ExpenseSummary totals the expenses dated within r by category and by month.
func (s *Service) ExpenseSummary(ctx context.Context, r models.DateRange) (*ExpenseSummary, error) {
	expenses, err := s.store.ListExpenses(ctx, storage.ExpenseFilter{Range: r})
	if err != nil {
		return nil, fromStore(err, "expense", "")
	}

	out := &ExpenseSummary{
		Period:       r,
		ExpenseCount: len(expenses),
		ByCategory:   map[string]Bucket{},
		ByMonth:      map[string]Bucket{},
	}
	for _, e := range expenses {
		out.TotalAmount += e.Amount

		category := e.Category
		if category == "" {
			category = models.DefaultExpenseCategory
		}
		b := out.ByCategory[category]
		b.add(e.Amount)
		out.ByCategory[category] = b

		m := out.ByMonth[e.Date.MonthKey()]
		m.add(e.Amount)
		out.ByMonth[e.Date.MonthKey()] = m
	}
	if out.ExpenseCount > 0 {
		out.AverageExpense = round2(out.TotalAmount / float64(out.ExpenseCount))
	}
	out.TotalAmount = round2(out.TotalAmount)
	return out, nil
}
