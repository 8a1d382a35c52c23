package api

// Period is the inclusive date range a report covers. Empty bounds are open.
type Period struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

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

type CourseFigures struct {
	CourseID           string  `json:"course_id"`
	CourseName         string  `json:"course_name"`
	TeacherName        string  `json:"teacher_name,omitempty"`
	Revenue            float64 `json:"revenue"`
	SalaryCost         float64 `json:"salary_cost"`
	NetProfit          float64 `json:"net_profit"`
	HoursTaught        float64 `json:"hours_taught"`
	HoursSold          float64 `json:"hours_sold"`
	EnrollmentCount    int     `json:"enrollment_count"`
	OutstandingBalance float64 `json:"outstanding_balance"`
}

type TeacherFigures struct {
	TeacherID      string             `json:"teacher_id"`
	TeacherName    string             `json:"teacher_name"`
	TotalHours     float64            `json:"total_hours"`
	TotalSalary    float64            `json:"total_salary"`
	SessionCount   int                `json:"sessions_count"`
	SignedHours    float64            `json:"signed_hours"`
	RemainingHours float64            `json:"remaining_hours"`
	CoursesTaught  []string           `json:"courses_taught"`
	Rates          map[string]float64 `json:"rates"`
}

type MonthFigures struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Salary   float64 `json:"salary"`
	Expenses float64 `json:"expenses"`
	Costs    float64 `json:"costs"`
	Profit   float64 `json:"profit"`
}

type FinancialReport struct {
	Period   Period           `json:"period"`
	Summary  Summary          `json:"summary"`
	Courses  []CourseFigures  `json:"course_analysis"`
	Teachers []TeacherFigures `json:"teacher_analysis"`
	Monthly  []MonthFigures   `json:"monthly_trend"`
}

type LowBalanceAlert struct {
	StudentID   string  `json:"student_id"`
	StudentName string  `json:"student_name"`
	CourseName  string  `json:"course_name"`
	Balance     float64 `json:"balance"`
}

type Totals struct {
	Students int `json:"students"`
	Teachers int `json:"teachers"`
	Courses  int `json:"courses"`
}

type DashboardRequest struct{}

type Dashboard struct {
	Period           Period            `json:"period"`
	CurrentMonth     Summary           `json:"current_month"`
	Chart            []MonthFigures    `json:"chart_data"`
	LowBalanceAlerts []LowBalanceAlert `json:"low_balance_alerts"`
	Totals           Totals            `json:"totals"`
}

type AttendanceReport struct {
	Period      Period           `json:"period"`
	Teachers    []TeacherFigures `json:"teachers"`
	TotalHours  float64          `json:"total_hours"`
	TotalSalary float64          `json:"total_salary"`
}

// Bucket counts records and sums their amounts.
type Bucket struct {
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

type PaymentSummary struct {
	Period            Period            `json:"period"`
	TotalRevenue      float64           `json:"total_revenue"`
	TotalHoursSold    float64           `json:"total_hours_sold"`
	TotalDiscounts    float64           `json:"total_discounts"`
	PaymentCount      int               `json:"payment_count"`
	AveragePayment    float64           `json:"average_payment"`
	AverageHourlyRate float64           `json:"average_hourly_rate"`
	Methods           map[string]Bucket `json:"payment_methods"`
}

type SessionBucket struct {
	Sessions   int     `json:"sessions"`
	Hours      float64 `json:"hours"`
	SalaryCost float64 `json:"salary_cost"`
}

type SessionSummary struct {
	Period               Period                   `json:"period"`
	TotalHours           float64                  `json:"total_hours"`
	TotalSalaryCost      float64                  `json:"total_salary_cost"`
	SessionCount         int                      `json:"session_count"`
	AverageSessionLength float64                  `json:"average_session_length"`
	AverageSalaryPerHour float64                  `json:"average_salary_per_hour"`
	ByTeacher            map[string]SessionBucket `json:"teacher_breakdown"`
	ByCourse             map[string]SessionBucket `json:"course_breakdown"`
}

type ExpenseSummary struct {
	Period         Period            `json:"period"`
	TotalAmount    float64           `json:"total_amount"`
	ExpenseCount   int               `json:"expense_count"`
	AverageExpense float64           `json:"average_expense"`
	ByCategory     map[string]Bucket `json:"category_breakdown"`
	ByMonth        map[string]Bucket `json:"monthly_breakdown"`
}
