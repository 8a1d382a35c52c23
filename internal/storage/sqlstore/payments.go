package sqlstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tutorbooks/internal/models"
	"github.com/mmynk/tutorbooks/internal/storage"
)

const paymentColumns = `id, date, student_id, course_id, COALESCE(teacher_id, '') AS teacher_id,
	hourly_rate, purchased_hours, discounted_tuition, amount_paid, payment_method, created_at, updated_at`

// CreatePayment persists a new payment, generating its ID if unset.
func (q *Queries) CreatePayment(ctx context.Context, p *models.Payment) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	p.CreatedAt, p.UpdatedAt = now, now

	_, err := q.exec(ctx, `
		INSERT INTO payments (id, date, student_id, course_id, teacher_id, hourly_rate, purchased_hours,
			discounted_tuition, amount_paid, payment_method, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.Date, p.StudentID, p.CourseID, nullString(p.TeacherID), p.HourlyRate, p.PurchasedHours,
		p.Discount, p.AmountPaid, p.PaymentMethod, p.CreatedAt, p.UpdatedAt)
	return wrap(err, "insert payment")
}

// GetPayment retrieves a payment by ID.
func (q *Queries) GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	var p models.Payment
	if err := q.get(ctx, &p, `SELECT `+paymentColumns+` FROM payments WHERE id = ?`, id); err != nil {
		return nil, wrap(err, "get payment "+id)
	}
	return &p, nil
}

// ListPayments returns payments newest first.
func (q *Queries) ListPayments(ctx context.Context, f storage.FactFilter) ([]models.Payment, error) {
	w := factWhere(f)
	payments := []models.Payment{}
	if err := q.selectAll(ctx, &payments, `SELECT `+paymentColumns+` FROM payments`+w.String()+` ORDER BY date DESC, created_at DESC, id`, w.args...); err != nil {
		return nil, wrap(err, "list payments")
	}
	return payments, nil
}

// UpdatePayment writes every mutable payment field.
func (q *Queries) UpdatePayment(ctx context.Context, p *models.Payment) error {
	p.UpdatedAt = time.Now().Unix()
	err := q.execOne(ctx, `
		UPDATE payments
		SET payment_method = ?, amount_paid = ?, discounted_tuition = ?, purchased_hours = ?, updated_at = ?
		WHERE id = ?
	`, p.PaymentMethod, p.AmountPaid, p.Discount, p.PurchasedHours, p.UpdatedAt, p.ID)
	return wrap(err, "update payment "+p.ID)
}

// DeletePayment removes a payment.
func (q *Queries) DeletePayment(ctx context.Context, id string) error {
	return wrap(q.execOne(ctx, `DELETE FROM payments WHERE id = ?`, id), "delete payment "+id)
}

// CountPayments returns the number of payments matching f.
func (q *Queries) CountPayments(ctx context.Context, f storage.FactFilter) (int, error) {
	w := factWhere(f)
	n, err := q.count(ctx, `SELECT COUNT(*) FROM payments`+w.String(), w.args...)
	return n, wrap(err, "count payments")
}
