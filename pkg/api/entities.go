// Package api holds the JSON messages exchanged with the tutorbooks Connect services.
//
// The *Fields and *Patch types carry the same fields, in the same order, as
// the matching backoffice inputs so handlers can convert them directly.
package api

// Staff is a back-office account.
type Staff struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	CreatedAt   int64  `json:"created_at"`
}

// Student is a learner with per-course hour balances.
type Student struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Gender    string             `json:"gender"`
	Birthdate string             `json:"birthdate"`
	Age       int                `json:"age"`
	Grade     string             `json:"grade"`
	Parent    string             `json:"parent"`
	Contact   string             `json:"contact"`
	Balances  map[string]float64 `json:"balances"`
	CreatedAt int64              `json:"created_at"`
	UpdatedAt int64              `json:"updated_at"`
}

type StudentFields struct {
	Name      string             `json:"name"`
	Gender    string             `json:"gender"`
	Birthdate string             `json:"birthdate"`
	Grade     string             `json:"grade"`
	Parent    string             `json:"parent"`
	Contact   string             `json:"contact"`
	Balances  map[string]float64 `json:"balances,omitempty"`
}

type StudentPatch struct {
	Name      *string `json:"name,omitempty"`
	Gender    *string `json:"gender,omitempty"`
	Birthdate *string `json:"birthdate,omitempty"`
	Grade     *string `json:"grade,omitempty"`
	Parent    *string `json:"parent,omitempty"`
	Contact   *string `json:"contact,omitempty"`
}

// Balance is a student's balance for one course.
type Balance struct {
	StudentID    string  `json:"student_id"`
	StudentName  string  `json:"student_name"`
	StudentGrade string  `json:"student_grade"`
	CourseName   string  `json:"course_name"`
	Balance      float64 `json:"balance"`
	IsLow        bool    `json:"is_low_balance"`
}

// Teacher is paid per taught hour at a default or grade-specific rate.
type Teacher struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	DefaultRate float64            `json:"default_rate"`
	GradeRates  map[string]float64 `json:"grade_rates"`
	CreatedAt   int64              `json:"created_at"`
	UpdatedAt   int64              `json:"updated_at"`
}

type TeacherFields struct {
	Name        string             `json:"name"`
	DefaultRate *float64           `json:"default_rate,omitempty"`
	GradeRates  map[string]float64 `json:"grade_rates,omitempty"`
}

type TeacherPatch struct {
	Name        *string            `json:"name,omitempty"`
	DefaultRate *float64           `json:"default_rate,omitempty"`
	GradeRates  map[string]float64 `json:"grade_rates,omitempty"`
}

// Course is a subject with a base hourly rate and an optional teacher.
type Course struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	BaseRate  float64 `json:"base_rate"`
	TeacherID string  `json:"teacher_id"`
	CreatedAt int64   `json:"created_at"`
	UpdatedAt int64   `json:"updated_at"`
}

type CourseFields struct {
	Name      string  `json:"name"`
	BaseRate  float64 `json:"base_rate"`
	TeacherID string  `json:"teacher_id,omitempty"`
}

type CoursePatch struct {
	Name      *string  `json:"name,omitempty"`
	BaseRate  *float64 `json:"base_rate,omitempty"`
	TeacherID *string  `json:"teacher_id,omitempty"`
}

// Session is a taught lesson.
type Session struct {
	ID                string  `json:"id"`
	Date              string  `json:"date"`
	StudentID         string  `json:"student_id"`
	StudentName       string  `json:"student_name"`
	CourseID          string  `json:"course_id"`
	CourseName        string  `json:"course_name"`
	TeacherID         string  `json:"teacher_id"`
	TeacherName       string  `json:"teacher_name"`
	StartTime         string  `json:"start_time"`
	EndTime           string  `json:"end_time"`
	Hours             float64 `json:"hours"`
	DurationFormatted string  `json:"duration_formatted"`
	Rate              float64 `json:"rate"`
	SalaryCost        float64 `json:"salary_cost"`
	Notes             string  `json:"notes"`
	CreatedAt         int64   `json:"created_at"`
	UpdatedAt         int64   `json:"updated_at"`
}

type SessionFields struct {
	Date      string `json:"date,omitempty"`
	StudentID string `json:"student_id"`
	CourseID  string `json:"course_id"`
	TeacherID string `json:"teacher_id,omitempty"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Notes     string `json:"notes,omitempty"`
}

type SessionPatch struct {
	Date      *string `json:"date,omitempty"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// Payment is a purchase of hours.
type Payment struct {
	ID                 string  `json:"id"`
	Date               string  `json:"date"`
	StudentID          string  `json:"student_id"`
	StudentName        string  `json:"student_name"`
	CourseID           string  `json:"course_id"`
	CourseName         string  `json:"course_name"`
	TeacherID          string  `json:"teacher_id"`
	TeacherName        string  `json:"teacher_name"`
	HourlyRate         float64 `json:"hourly_rate"`
	PurchasedHours     float64 `json:"purchased_hours"`
	Discount           float64 `json:"discounted_tuition"`
	AmountPaid         float64 `json:"amount_paid"`
	PaymentMethod      string  `json:"payment_method"`
	ExpectedAmount     float64 `json:"expected_amount"`
	DiscountPercentage float64 `json:"discount_percentage"`
	IsOverpaid         bool    `json:"is_overpaid"`
	IsUnderpaid        bool    `json:"is_underpaid"`
	CreatedAt          int64   `json:"created_at"`
	UpdatedAt          int64   `json:"updated_at"`
}

type PaymentFields struct {
	Date           string   `json:"date,omitempty"`
	StudentID      string   `json:"student_id"`
	CourseID       string   `json:"course_id"`
	TeacherID      string   `json:"teacher_id,omitempty"`
	HourlyRate     *float64 `json:"hourly_rate,omitempty"`
	PurchasedHours float64  `json:"purchased_hours"`
	Discount       float64  `json:"discounted_tuition"`
	AmountPaid     float64  `json:"amount_paid"`
	PaymentMethod  string   `json:"payment_method,omitempty"`
}

type PaymentPatch struct {
	PaymentMethod  *string  `json:"payment_method,omitempty"`
	AmountPaid     *float64 `json:"amount_paid,omitempty"`
	Discount       *float64 `json:"discounted_tuition,omitempty"`
	PurchasedHours *float64 `json:"purchased_hours,omitempty"`
}

// Expense is a running cost of the center.
type Expense struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Item        string  `json:"item"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	CreatedAt   int64   `json:"created_at"`
	UpdatedAt   int64   `json:"updated_at"`
}

type ExpenseFields struct {
	Date        string  `json:"date,omitempty"`
	Item        string  `json:"item"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description,omitempty"`
}

type ExpensePatch struct {
	Date        *string  `json:"date,omitempty"`
	Item        *string  `json:"item,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Description *string  `json:"description,omitempty"`
}
