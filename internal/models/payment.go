package models

// DefaultPaymentMethod is used when a payment is recorded without a method.
const DefaultPaymentMethod = "Cash"

// Payment represents a purchase of hours for a course.
// Recording it credits PurchasedHours to the student's balance.
type Payment struct {
	ID        string `db:"id" json:"id"`
	Date      Date   `db:"date" json:"date"`
	StudentID string `db:"student_id" json:"student_id"`
	CourseID  string `db:"course_id" json:"course_id"`
	TeacherID string `db:"teacher_id" json:"teacher_id"`

	// HourlyRate is a snapshot of the rate charged when the payment was taken.
	HourlyRate float64 `db:"hourly_rate" json:"hourly_rate"`

	PurchasedHours float64 `db:"purchased_hours" json:"purchased_hours"`

	// Discount is subtracted from the gross tuition (PurchasedHours × HourlyRate).
	Discount float64 `db:"discounted_tuition" json:"discounted_tuition"`

	AmountPaid    float64 `db:"amount_paid" json:"amount_paid"`
	PaymentMethod string  `db:"payment_method" json:"payment_method"`

	CreatedAt int64 `db:"created_at" json:"created_at"`
	UpdatedAt int64 `db:"updated_at" json:"updated_at"`
}

// GrossTuition is the undiscounted price of the purchased hours.
func (p *Payment) GrossTuition() float64 {
	return p.PurchasedHours * p.HourlyRate
}

// ExpectedAmount is the gross tuition minus the discount.
func (p *Payment) ExpectedAmount() float64 {
	return p.GrossTuition() - p.Discount
}

// DiscountPercentage is the discount as a percentage of gross tuition.
func (p *Payment) DiscountPercentage() float64 {
	if gross := p.GrossTuition(); gross > 0 {
		return p.Discount / gross * 100
	}
	return 0
}

func (p *Payment) IsOverpaid() bool  { return p.AmountPaid > p.ExpectedAmount() }
func (p *Payment) IsUnderpaid() bool { return p.AmountPaid < p.ExpectedAmount() }
