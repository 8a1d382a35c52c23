package api

// Empty is returned by calls that have nothing to report besides success.
type Empty struct{}

// IDRequest addresses one record.
type IDRequest struct {
	ID string `json:"id"`
}

// RangeRequest carries optional "YYYY-MM-DD" period bounds.
type RangeRequest struct {
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// Auth

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Staff *Staff `json:"staff"`
	Token string `json:"token"`
}

type MeRequest struct{}

type MeResponse struct {
	Staff *Staff `json:"staff"`
}

// Students

type CreateStudentRequest struct {
	StudentFields
}

type UpdateStudentRequest struct {
	ID string `json:"id"`
	StudentPatch
}

type StudentResponse struct {
	Student *Student `json:"student"`
}

type ListStudentsRequest struct {
	Search string `json:"search,omitempty"`
	Grade  string `json:"grade,omitempty"`
}

type ListStudentsResponse struct {
	Students []*Student `json:"students"`
}

type ListGradesRequest struct{}

type ListGradesResponse struct {
	Grades []string `json:"grades"`
}

type GetStudentBalanceRequest struct {
	StudentID  string `json:"student_id"`
	CourseName string `json:"course_name"`
}

type BalanceResponse struct {
	Balance *Balance `json:"balance"`
}

type AdjustStudentBalanceRequest struct {
	StudentID   string  `json:"student_id"`
	CourseName  string  `json:"course_name"`
	HoursChange float64 `json:"hours_change"`
}

type AdjustStudentBalanceResponse struct {
	Balance     *Balance `json:"balance"`
	OldBalance  float64  `json:"old_balance"`
	HoursChange float64  `json:"hours_change"`
}

// Teachers

type CreateTeacherRequest struct {
	TeacherFields
}

type UpdateTeacherRequest struct {
	ID string `json:"id"`
	TeacherPatch
}

type TeacherResponse struct {
	Teacher *Teacher `json:"teacher"`
}

type SearchRequest struct {
	Search string `json:"search,omitempty"`
}

type ListTeachersResponse struct {
	Teachers []*Teacher `json:"teachers"`
}

type SetGradeRateRequest struct {
	TeacherID string  `json:"teacher_id"`
	Grade     string  `json:"grade"`
	Rate      float64 `json:"rate"`
}

type StatsRequest struct {
	ID        string `json:"id"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

type TeacherStatsResponse struct {
	Period *Period         `json:"period"`
	Stats  *TeacherFigures `json:"stats"`
}

// Courses

type CreateCourseRequest struct {
	CourseFields
}

type UpdateCourseRequest struct {
	ID string `json:"id"`
	CoursePatch
}

type CourseResponse struct {
	Course *Course `json:"course"`
}

type ListCoursesResponse struct {
	Courses []*Course `json:"courses"`
}

type CourseStatsResponse struct {
	Period               *Period        `json:"period"`
	Stats                *CourseFigures `json:"stats"`
	BaseRate             float64        `json:"base_rate"`
	SessionCount         int            `json:"sessions_count"`
	AverageSessionLength float64        `json:"average_session_length"`
}

// Facts share one filter shape.

type ListFactsRequest struct {
	StudentID string `json:"student_id,omitempty"`
	CourseID  string `json:"course_id,omitempty"`
	TeacherID string `json:"teacher_id,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// Sessions

type CreateSessionRequest struct {
	SessionFields
}

type UpdateSessionRequest struct {
	ID string `json:"id"`
	SessionPatch
}

type SessionResponse struct {
	Session *Session `json:"session"`
}

type ListSessionsResponse struct {
	Sessions []*Session `json:"sessions"`
}

// Payments

type CreatePaymentRequest struct {
	PaymentFields
}

type UpdatePaymentRequest struct {
	ID string `json:"id"`
	PaymentPatch
}

type PaymentResponse struct {
	Payment *Payment `json:"payment"`
}

type ListPaymentsResponse struct {
	Payments []*Payment `json:"payments"`
}

// Expenses

type CreateExpenseRequest struct {
	ExpenseFields
}

type UpdateExpenseRequest struct {
	ID string `json:"id"`
	ExpensePatch
}

type ExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type ListExpensesRequest struct {
	Category  string `json:"category,omitempty"`
	Search    string `json:"search,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

type ListExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
}

type ListCategoriesRequest struct{}

type ListCategoriesResponse struct {
	Categories []string `json:"categories"`
}
