package backoffice

import (
	"context"
	"strings"

	"github.com/mmynk/tutorbooks/internal/calculator"
	"github.com/mmynk/tutorbooks/internal/models"
	"github.com/mmynk/tutorbooks/internal/storage"
)

// PaymentInput holds the fields of a new payment.
type PaymentInput struct {
	// Date defaults to today when empty.
	Date      string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	StudentID string `json:"student_id" validate:"required"`
	CourseID  string `json:"course_id" validate:"required"`
	// TeacherID defaults to the course's teacher when empty.
	TeacherID string `json:"teacher_id"`
	// HourlyRate overrides the rate resolved from the course, its teacher and the student's grade.
	HourlyRate     *float64 `json:"hourly_rate" validate:"omitnil,gt=0"`
	PurchasedHours float64  `json:"purchased_hours" validate:"gt=0"`
	Discount       float64  `json:"discounted_tuition" validate:"gte=0"`
	AmountPaid     float64  `json:"amount_paid" validate:"gte=0"`
	PaymentMethod  string   `json:"payment_method" validate:"max=50"`
}

// PaymentUpdate changes the fields that are set.
type PaymentUpdate struct {
	PaymentMethod  *string  `json:"payment_method" validate:"omitnil,notblank,max=50"`
	AmountPaid     *float64 `json:"amount_paid" validate:"omitnil,gte=0"`
	Discount       *float64 `json:"discounted_tuition" validate:"omitnil,gte=0"`
	PurchasedHours *float64 `json:"purchased_hours" validate:"omitnil,gt=0"`
}

// PaymentDetail is a payment with its names and derived amounts.
type PaymentDetail struct {
	models.Payment
	StudentName        string  `json:"student_name"`
	CourseName         string  `json:"course_name"`
	TeacherName        string  `json:"teacher_name"`
	ExpectedAmount     float64 `json:"expected_amount"`
	DiscountPercentage float64 `json:"discount_percentage"`
	IsOverpaid         bool    `json:"is_overpaid"`
	IsUnderpaid        bool    `json:"is_underpaid"`
}

func newPaymentDetail(p *models.Payment, studentName, courseName, teacherName string) *PaymentDetail {
	return &PaymentDetail{
		Payment:            *p,
		StudentName:        studentName,
		CourseName:         courseName,
		TeacherName:        teacherName,
		ExpectedAmount:     p.ExpectedAmount(),
		DiscountPercentage: round2(p.DiscountPercentage()),
		IsOverpaid:         p.IsOverpaid(),
		IsUnderpaid:        p.IsUnderpaid(),
	}
}

// validatePayment checks the rules that span several payment fields.
func validatePayment(p *models.Payment) error {
	if p.Discount > p.GrossTuition()+balanceEpsilon {
		return invalidField("discounted_tuition", "discount cannot exceed total tuition")
	}
	return nil
}

// CreatePayment records a purchase of hours and credits them to the
// student's balance for the course.
func (s *Service) CreatePayment(ctx context.Context, in PaymentInput) (*PaymentDetail, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	date := s.today()
	if in.Date != "" {
		date, _ = models.ParseDate(in.Date)
	}
	method := strings.TrimSpace(in.PaymentMethod)
	if method == "" {
		method = models.DefaultPaymentMethod
	}

	var out *PaymentDetail
	err := s.inTx(ctx, "payment", "", func(q storage.Queries, changes *[]ledgerChange) error {
		student, err := q.GetStudent(ctx, in.StudentID)
		if err != nil {
			return fromStore(err, "student", in.StudentID)
		}
		course, err := q.GetCourse(ctx, in.CourseID)
		if err != nil {
			return fromStore(err, "course", in.CourseID)
		}
		var courseTeacher *models.Teacher
		if course.HasTeacher() {
			if courseTeacher, err = q.GetTeacher(ctx, *course.TeacherID); err != nil {
				return fromStore(err, "teacher", *course.TeacherID)
			}
		}
		teacher := courseTeacher
		if id := strings.TrimSpace(in.TeacherID); id != "" && (teacher == nil || teacher.ID != id) {
			if teacher, err = q.GetTeacher(ctx, id); err != nil {
				return fromStore(err, "teacher", id)
			}
		}
		if teacher == nil {
			return invalidField("teacher_id", "no teacher assigned to this course")
		}

		rate := calculator.ResolveCourseRate(course, courseTeacher, student)
		if in.HourlyRate != nil {
			rate = *in.HourlyRate
		}
		if rate <= 0 {
			return invalidField("hourly_rate", "hourly rate must be positive")
		}

		payment := &models.Payment{
			Date:           date,
			StudentID:      student.ID,
			CourseID:       course.ID,
			TeacherID:      teacher.ID,
			HourlyRate:     rate,
			PurchasedHours: in.PurchasedHours,
			Discount:       in.Discount,
			AmountPaid:     in.AmountPaid,
			PaymentMethod:  method,
		}
		if err := validatePayment(payment); err != nil {
			return err
		}

		if _, err := applyBalance(ctx, q, student, course.Name, payment.PurchasedHours, changes); err != nil {
			return err
		}
		if err := q.CreatePayment(ctx, payment); err != nil {
			return fromStore(err, "payment", payment.ID)
		}
		out = newPaymentDetail(payment, student.Name, course.Name, teacher.Name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetPayment returns a payment with its names and derived amounts.
func (s *Service) GetPayment(ctx context.Context, id string) (*PaymentDetail, error) {
	payment, err := s.store.GetPayment(ctx, id)
	if err != nil {
		return nil, fromStore(err, "payment", id)
	}
	r, err := loadRefs(ctx, s.store)
	if err != nil {
		return nil, fromStore(err, "payment", id)
	}
	return newPaymentDetail(payment, r.studentName(payment.StudentID), r.courseName(payment.CourseID), r.teacherName(payment.TeacherID)), nil
}

// ListPayments returns payments matching f, newest first.
func (s *Service) ListPayments(ctx context.Context, f storage.FactFilter) ([]PaymentDetail, error) {
	payments, err := s.store.ListPayments(ctx, f)
	if err != nil {
		return nil, fromStore(err, "payments", "")
	}
	r, err := loadRefs(ctx, s.store)
	if err != nil {
		return nil, fromStore(err, "payments", "")
	}
	out := make([]PaymentDetail, 0, len(payments))
	for i := range payments {
		p := &payments[i]
		out = append(out, *newPaymentDetail(p, r.studentName(p.StudentID), r.courseName(p.CourseID), r.teacherName(p.TeacherID)))
	}
	return out, nil
}

// UpdatePayment changes a payment. A change in purchased hours is applied to
// the student's balance; a decrease is floored at zero rather than rejected.
func (s *Service) UpdatePayment(ctx context.Context, id string, in PaymentUpdate) (*PaymentDetail, error) {
	if err := check(in); err != nil {
		return nil, err
	}

	var out *PaymentDetail
	err := s.inTx(ctx, "payment", id, func(q storage.Queries, changes *[]ledgerChange) error {
		payment, err := q.GetPayment(ctx, id)
		if err != nil {
			return fromStore(err, "payment", id)
		}
		student, err := q.GetStudent(ctx, payment.StudentID)
		if err != nil {
			return fromStore(err, "student", payment.StudentID)
		}
		course, err := q.GetCourse(ctx, payment.CourseID)
		if err != nil {
			return fromStore(err, "course", payment.CourseID)
		}
		teacherName := ""
		if payment.TeacherID != "" {
			if teacher, err := q.GetTeacher(ctx, payment.TeacherID); err == nil {
				teacherName = teacher.Name
			}
		}

		oldHours := payment.PurchasedHours
		if in.PaymentMethod != nil {
			payment.PaymentMethod = *trimmed(in.PaymentMethod)
		}
		if in.AmountPaid != nil {
			payment.AmountPaid = *in.AmountPaid
		}
		if in.Discount != nil {
			payment.Discount = *in.Discount
		}
		if in.PurchasedHours != nil {
			payment.PurchasedHours = *in.PurchasedHours
		}
		if err := validatePayment(payment); err != nil {
			return err
		}

		if delta := payment.PurchasedHours - oldHours; delta != 0 {
			if _, err := applyBalance(ctx, q, student, course.Name, delta, changes); err != nil {
				return err
			}
		}
		if err := q.UpdatePayment(ctx, payment); err != nil {
			return fromStore(err, "payment", id)
		}
		out = newPaymentDetail(payment, student.Name, course.Name, teacherName)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeletePayment removes a payment and debits its purchased hours from the
// student's balance, floored at zero.
func (s *Service) DeletePayment(ctx context.Context, id string) error {
	return s.inTx(ctx, "payment", id, func(q storage.Queries, changes *[]ledgerChange) error {
		payment, err := q.GetPayment(ctx, id)
		if err != nil {
			return fromStore(err, "payment", id)
		}
		student, err := q.GetStudent(ctx, payment.StudentID)
		if err != nil {
			return fromStore(err, "student", payment.StudentID)
		}
		course, err := q.GetCourse(ctx, payment.CourseID)
		if err != nil {
			return fromStore(err, "course", payment.CourseID)
		}
		if _, err := applyBalance(ctx, q, student, course.Name, -payment.PurchasedHours, changes); err != nil {
			return err
		}
		if err := q.DeletePayment(ctx, id); err != nil {
			return fromStore(err, "payment", id)
		}
		return nil
	})
}
