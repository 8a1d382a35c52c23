package service

import (
	"github.com/mmynk/tutorbooks/internal/backoffice"
	"github.com/mmynk/tutorbooks/internal/calculator"
	"github.com/mmynk/tutorbooks/internal/models"
	"github.com/mmynk/tutorbooks/pkg/api"
)

func mapSlice[S, D any](in []S, f func(S) D) []D {
	out := make([]D, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}

func mapValues[K comparable, S, D any](in map[K]S, f func(S) D) map[K]D {
	out := make(map[K]D, len(in))
	for k, v := range in {
		out[k] = f(v)
	}
	return out
}

func toStaff(s *models.Staff) *api.Staff {
	return &api.Staff{
		ID:          s.ID,
		Email:       s.Email,
		DisplayName: s.DisplayName,
		Role:        s.Role,
		CreatedAt:   s.CreatedAt,
	}
}

func toStudent(s *models.Student, today models.Date) *api.Student {
	balances := map[string]float64(s.Balances.Clone())
	if balances == nil {
		balances = map[string]float64{}
	}
	return &api.Student{
		ID:        s.ID,
		Name:      s.Name,
		Gender:    s.Gender,
		Birthdate: s.Birthdate.String(),
		Age:       s.Age(today),
		Grade:     s.Grade,
		Parent:    s.Parent,
		Contact:   s.Contact,
		Balances:  balances,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toTeacher(t *models.Teacher) *api.Teacher {
	rates := map[string]float64(t.GradeRates)
	if rates == nil {
		rates = map[string]float64{}
	}
	return &api.Teacher{
		ID:          t.ID,
		Name:        t.Name,
		DefaultRate: t.DefaultRate,
		GradeRates:  rates,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toCourse(c *models.Course) *api.Course {
	out := &api.Course{
		ID:        c.ID,
		Name:      c.Name,
		BaseRate:  c.BaseRate,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.HasTeacher() {
		out.TeacherID = *c.TeacherID
	}
	return out
}

func toSession(d *backoffice.SessionDetail) *api.Session {
	return &api.Session{
		ID:                d.ID,
		Date:              d.Date.String(),
		StudentID:         d.StudentID,
		StudentName:       d.StudentName,
		CourseID:          d.CourseID,
		CourseName:        d.CourseName,
		TeacherID:         d.TeacherID,
		TeacherName:       d.TeacherName,
		StartTime:         d.StartTime,
		EndTime:           d.EndTime,
		Hours:             d.Hours,
		DurationFormatted: d.DurationFormatted,
		Rate:              d.Rate,
		SalaryCost:        d.SalaryCost,
		Notes:             d.Notes,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

func toPayment(d *backoffice.PaymentDetail) *api.Payment {
	return &api.Payment{
		ID:                 d.ID,
		Date:               d.Date.String(),
		StudentID:          d.StudentID,
		StudentName:        d.StudentName,
		CourseID:           d.CourseID,
		CourseName:         d.CourseName,
		TeacherID:          d.TeacherID,
		TeacherName:        d.TeacherName,
		HourlyRate:         d.HourlyRate,
		PurchasedHours:     d.PurchasedHours,
		Discount:           d.Discount,
		AmountPaid:         d.AmountPaid,
		PaymentMethod:      d.PaymentMethod,
		ExpectedAmount:     d.ExpectedAmount,
		DiscountPercentage: d.DiscountPercentage,
		IsOverpaid:         d.IsOverpaid,
		IsUnderpaid:        d.IsUnderpaid,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

func toExpense(e *models.Expense) *api.Expense {
	return &api.Expense{
		ID:          e.ID,
		Date:        e.Date.String(),
		Item:        e.Item,
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toPeriod(r models.DateRange) api.Period {
	return api.Period{StartDate: r.From.String(), EndDate: r.To.String()}
}

func toCourseFigures(c calculator.CourseFigures) api.CourseFigures {
	return api.CourseFigures(c)
}

func toTeacherFigures(t calculator.TeacherFigures) api.TeacherFigures {
	if t.CoursesTaught == nil {
		t.CoursesTaught = []string{}
	}
	return api.TeacherFigures(t)
}

func toMonthFigures(m calculator.MonthFigures) api.MonthFigures {
	return api.MonthFigures(m)
}

func toBucket(b backoffice.Bucket) api.Bucket {
	return api.Bucket(b)
}

func toSessionBucket(b backoffice.SessionBucket) api.SessionBucket {
	return api.SessionBucket(b)
}
