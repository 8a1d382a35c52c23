package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/tutorbooks/internal/auth"
	"github.com/mmynk/tutorbooks/internal/backoffice"
	"github.com/mmynk/tutorbooks/internal/models"
	"github.com/mmynk/tutorbooks/internal/storage/sqlstore"
	"github.com/mmynk/tutorbooks/pkg/api"
	"github.com/mmynk/tutorbooks/pkg/api/apiconnect"
)

const (
	testEmail    = "admin@example.com"
	testPassword = "correct horse"
)

var testToday = models.NewDate(2024, time.March, 20)

type testClients struct {
	url      string
	token    string
	auth     apiconnect.AuthServiceClient
	students apiconnect.StudentServiceClient
	teachers apiconnect.TeacherServiceClient
	courses  apiconnect.CourseServiceClient
	sessions apiconnect.SessionServiceClient
	payments apiconnect.PaymentServiceClient
	expenses apiconnect.ExpenseServiceClient
	reports  apiconnect.ReportServiceClient
}

// bearer returns a client interceptor that sends token on every call.
func bearer(token string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			req.Header().Set("Authorization", "Bearer "+token)
			return next(ctx, req)
		}
	}
}

// setupTestServer starts a server on a fresh SQLite database, logs in as the
// seeded admin and returns clients carrying the issued token.
func setupTestServer(t *testing.T) *testClients {
	t.Helper()
	ctx := context.Background()

	store, err := sqlstore.OpenSQLite(ctx, filepath.Join(t.TempDir(), "service.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	authenticator := auth.NewPasswordAuthenticator(store)
	if _, err := authenticator.Register(ctx, testEmail, "Admin", testPassword, models.RoleAdmin); err != nil {
		t.Fatalf("failed to register staff: %v", err)
	}

	mux := http.NewServeMux()
	Mount(mux, Deps{
		Backoffice:    backoffice.New(store, backoffice.WithClock(func() models.Date { return testToday })),
		Authenticator: authenticator,
		Staff:         store,
		JWT:           auth.NewJWTManager("test-secret", time.Hour),
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	c := &testClients{
		url:  server.URL,
		auth: apiconnect.NewAuthServiceClient(http.DefaultClient, server.URL),
	}
	login, err := c.auth.Login(ctx, connect.NewRequest(&api.LoginRequest{Email: testEmail, Password: testPassword}))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	c.token = login.Msg.Token

	opt := connect.WithInterceptors(bearer(c.token))
	c.auth = apiconnect.NewAuthServiceClient(http.DefaultClient, server.URL, opt)
	c.students = apiconnect.NewStudentServiceClient(http.DefaultClient, server.URL, opt)
	c.teachers = apiconnect.NewTeacherServiceClient(http.DefaultClient, server.URL, opt)
	c.courses = apiconnect.NewCourseServiceClient(http.DefaultClient, server.URL, opt)
	c.sessions = apiconnect.NewSessionServiceClient(http.DefaultClient, server.URL, opt)
	c.payments = apiconnect.NewPaymentServiceClient(http.DefaultClient, server.URL, opt)
	c.expenses = apiconnect.NewExpenseServiceClient(http.DefaultClient, server.URL, opt)
	c.reports = apiconnect.NewReportServiceClient(http.DefaultClient, server.URL, opt)
	return c
}

type testCatalog struct {
	teacher *api.Teacher
	course  *api.Course
	student *api.Student
}

// seedCatalog creates one teacher, one course taught by them and one student
// holding openingHours of that course.
func seedCatalog(t *testing.T, c *testClients, openingHours float64) testCatalog {
	t.Helper()
	ctx := context.Background()

	teacher, err := c.teachers.CreateTeacher(ctx, connect.NewRequest(&api.CreateTeacherRequest{
		TeacherFields: api.TeacherFields{Name: "Alice Johnson"},
	}))
	if err != nil {
		t.Fatalf("CreateTeacher failed: %v", err)
	}
	course, err := c.courses.CreateCourse(ctx, connect.NewRequest(&api.CreateCourseRequest{
		CourseFields: api.CourseFields{Name: "Math Level 1", BaseRate: 30, TeacherID: teacher.Msg.Teacher.ID},
	}))
	if err != nil {
		t.Fatalf("CreateCourse failed: %v", err)
	}
	student, err := c.students.CreateStudent(ctx, connect.NewRequest(&api.CreateStudentRequest{
		StudentFields: api.StudentFields{
			Name:      "Charlie Brown",
			Gender:    "M",
			Birthdate: "2014-05-01",
			Grade:     "Grade 3",
			Balances:  map[string]float64{"Math Level 1": openingHours},
		},
	}))
	if err != nil {
		t.Fatalf("CreateStudent failed: %v", err)
	}
	return testCatalog{teacher: teacher.Msg.Teacher, course: course.Msg.Course, student: student.Msg.Student}
}

func balanceOf(t *testing.T, c *testClients, cat testCatalog) float64 {
	t.Helper()
	resp, err := c.students.GetStudentBalance(context.Background(), connect.NewRequest(&api.GetStudentBalanceRequest{
		StudentID:  cat.student.ID,
		CourseName: cat.course.Name,
	}))
	if err != nil {
		t.Fatalf("GetStudentBalance failed: %v", err)
	}
	return resp.Msg.Balance.Balance
}

func TestLogin(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	me, err := c.auth.Me(ctx, connect.NewRequest(&api.MeRequest{}))
	if err != nil {
		t.Fatalf("Me failed: %v", err)
	}
	if me.Msg.Staff.Email != testEmail {
		t.Errorf("expected %s, got %s", testEmail, me.Msg.Staff.Email)
	}
	if me.Msg.Staff.Role != models.RoleAdmin {
		t.Errorf("expected admin role, got %s", me.Msg.Staff.Role)
	}

	anon := apiconnect.NewAuthServiceClient(http.DefaultClient, c.url)
	_, err = anon.Login(ctx, connect.NewRequest(&api.LoginRequest{Email: testEmail, Password: "wrong password"}))
	if connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Errorf("expected Unauthenticated for a wrong password, got %v", err)
	}
	_, err = anon.Login(ctx, connect.NewRequest(&api.LoginRequest{Email: testEmail}))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Errorf("expected InvalidArgument for a missing password, got %v", err)
	}
}

func TestRequiresToken(t *testing.T) {
	c := setupTestServer(t)

	anon := apiconnect.NewStudentServiceClient(http.DefaultClient, c.url)
	_, err := anon.ListStudents(context.Background(), connect.NewRequest(&api.ListStudentsRequest{}))
	if connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Errorf("expected Unauthenticated, got %v", err)
	}
}

func TestSessionLedger(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	cat := seedCatalog(t, c, 1)

	newSession := func(start, end string) *connect.Request[api.CreateSessionRequest] {
		return connect.NewRequest(&api.CreateSessionRequest{SessionFields: api.SessionFields{
			StudentID: cat.student.ID,
			CourseID:  cat.course.ID,
			StartTime: start,
			EndTime:   end,
		}})
	}

	_, err := c.sessions.CreateSession(ctx, newSession("10:00", "11:30"))
	if connect.CodeOf(err) != connect.CodeFailedPrecondition {
		t.Fatalf("expected FailedPrecondition, got %v", err)
	}
	if kind := ErrorKind(err); kind != backoffice.KindInsufficientBalance {
		t.Errorf("expected kind %s, got %s", backoffice.KindInsufficientBalance, kind)
	}
	if got := balanceOf(t, c, cat); got != 1 {
		t.Errorf("rejected session changed the balance to %v", got)
	}

	if _, err := c.payments.CreatePayment(ctx, connect.NewRequest(&api.CreatePaymentRequest{PaymentFields: api.PaymentFields{
		StudentID:      cat.student.ID,
		CourseID:       cat.course.ID,
		PurchasedHours: 5,
		AmountPaid:     150,
		PaymentMethod:  "Cash",
	}})); err != nil {
		t.Fatalf("CreatePayment failed: %v", err)
	}
	if got := balanceOf(t, c, cat); got != 6 {
		t.Errorf("expected balance 6 after payment, got %v", got)
	}

	created, err := c.sessions.CreateSession(ctx, newSession("10:00", "11:30"))
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	session := created.Msg.Session
	if session.Hours != 1.5 {
		t.Errorf("expected 1.5 hours, got %v", session.Hours)
	}
	if session.Date != testToday.String() {
		t.Errorf("expected date %s, got %s", testToday, session.Date)
	}
	if session.TeacherID != cat.teacher.ID {
		t.Errorf("expected the course teacher, got %q", session.TeacherID)
	}
	if got := balanceOf(t, c, cat); got != 4.5 {
		t.Errorf("expected balance 4.5 after session, got %v", got)
	}

	end := "12:00"
	if _, err := c.sessions.UpdateSession(ctx, connect.NewRequest(&api.UpdateSessionRequest{
		ID:           session.ID,
		SessionPatch: api.SessionPatch{EndTime: &end},
	})); err != nil {
		t.Fatalf("UpdateSession failed: %v", err)
	}
	if got := balanceOf(t, c, cat); got != 4 {
		t.Errorf("expected balance 4 after lengthening the session, got %v", got)
	}

	list, err := c.sessions.ListSessions(ctx, connect.NewRequest(&api.ListFactsRequest{StudentID: cat.student.ID}))
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(list.Msg.Sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(list.Msg.Sessions))
	}
	if list.Msg.Sessions[0].StudentName != "Charlie Brown" {
		t.Errorf("expected student name, got %q", list.Msg.Sessions[0].StudentName)
	}

	if _, err := c.sessions.DeleteSession(ctx, connect.NewRequest(&api.IDRequest{ID: session.ID})); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}
	if got := balanceOf(t, c, cat); got != 6 {
		t.Errorf("expected balance 6 after delete, got %v", got)
	}
	_, err = c.sessions.GetSession(ctx, connect.NewRequest(&api.IDRequest{ID: session.ID}))
	if connect.CodeOf(err) != connect.CodeNotFound {
		t.Errorf("expected NotFound, got %v", err)
	}
}

func TestValidationErrors(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	_, err := c.students.CreateStudent(ctx, connect.NewRequest(&api.CreateStudentRequest{
		StudentFields: api.StudentFields{Name: "Daisy", Gender: "X", Birthdate: "2015-01-01"},
	}))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
	if kind := ErrorKind(err); kind != backoffice.KindValidationFailed {
		t.Errorf("expected kind %s, got %s", backoffice.KindValidationFailed, kind)
	}
	var cerr *connect.Error
	if !errors.As(err, &cerr) {
		t.Fatalf("expected a connect error, got %T", err)
	}
	if fields := cerr.Meta().Get(ErrorFieldsHeader); !strings.Contains(fields, `"gender"`) {
		t.Errorf("expected gender in %s, got %q", ErrorFieldsHeader, fields)
	}

	_, err = c.reports.GetFinancialReport(ctx, connect.NewRequest(&api.RangeRequest{StartDate: "2024-13-01"}))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Errorf("expected InvalidArgument for a bad date, got %v", err)
	}

	_, err = c.teachers.GetTeacher(ctx, connect.NewRequest(&api.IDRequest{ID: "missing"}))
	if connect.CodeOf(err) != connect.CodeNotFound {
		t.Errorf("expected NotFound, got %v", err)
	}
}

func TestTeacherAndCourseRPCs(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	cat := seedCatalog(t, c, 0)

	_, err := c.teachers.CreateTeacher(ctx, connect.NewRequest(&api.CreateTeacherRequest{
		TeacherFields: api.TeacherFields{Name: "Alice Johnson"},
	}))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Errorf("expected InvalidArgument for a duplicate name, got %v", err)
	}

	rated, err := c.teachers.SetGradeRate(ctx, connect.NewRequest(&api.SetGradeRateRequest{
		TeacherID: cat.teacher.ID, Grade: "Grade 3", Rate: 40,
	}))
	if err != nil {
		t.Fatalf("SetGradeRate failed: %v", err)
	}
	if rated.Msg.Teacher.GradeRates["Grade 3"] != 40 {
		t.Errorf("expected grade rate 40, got %v", rated.Msg.Teacher.GradeRates)
	}

	_, err = c.teachers.DeleteTeacher(ctx, connect.NewRequest(&api.IDRequest{ID: cat.teacher.ID}))
	if connect.CodeOf(err) != connect.CodeAlreadyExists {
		t.Errorf("expected a conflict deleting an assigned teacher, got %v", err)
	}

	list, err := c.courses.ListCourses(ctx, connect.NewRequest(&api.SearchRequest{Search: "math"}))
	if err != nil {
		t.Fatalf("ListCourses failed: %v", err)
	}
	if len(list.Msg.Courses) != 1 {
		t.Errorf("expected 1 course, got %d", len(list.Msg.Courses))
	}

	stats, err := c.courses.GetCourseStats(ctx, connect.NewRequest(&api.StatsRequest{ID: cat.course.ID}))
	if err != nil {
		t.Fatalf("GetCourseStats failed: %v", err)
	}
	if stats.Msg.BaseRate != 30 {
		t.Errorf("expected base rate 30, got %v", stats.Msg.BaseRate)
	}
}

func TestReportRPCs(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	cat := seedCatalog(t, c, 1)

	if _, err := c.payments.CreatePayment(ctx, connect.NewRequest(&api.CreatePaymentRequest{PaymentFields: api.PaymentFields{
		StudentID:      cat.student.ID,
		CourseID:       cat.course.ID,
		PurchasedHours: 5,
		AmountPaid:     150,
	}})); err != nil {
		t.Fatalf("CreatePayment failed: %v", err)
	}
	if _, err := c.expenses.CreateExpense(ctx, connect.NewRequest(&api.CreateExpenseRequest{ExpenseFields: api.ExpenseFields{
		Item: "Whiteboard markers", Amount: 20, Category: "Supplies",
	}})); err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}

	report, err := c.reports.GetFinancialReport(ctx, connect.NewRequest(&api.RangeRequest{
		StartDate: "2024-03-01", EndDate: "2024-03-31",
	}))
	if err != nil {
		t.Fatalf("GetFinancialReport failed: %v", err)
	}
	if report.Msg.Summary.TotalRevenue != 150 {
		t.Errorf("expected revenue 150, got %v", report.Msg.Summary.TotalRevenue)
	}
	if report.Msg.Summary.TotalExpenses != 20 {
		t.Errorf("expected expenses 20, got %v", report.Msg.Summary.TotalExpenses)
	}

	dash, err := c.reports.GetDashboard(ctx, connect.NewRequest(&api.DashboardRequest{}))
	if err != nil {
		t.Fatalf("GetDashboard failed: %v", err)
	}
	if dash.Msg.Totals != (api.Totals{Students: 1, Teachers: 1, Courses: 1}) {
		t.Errorf("unexpected totals %+v", dash.Msg.Totals)
	}
	if len(dash.Msg.Chart) != 6 {
		t.Errorf("expected 6 chart months, got %d", len(dash.Msg.Chart))
	}

	categories, err := c.expenses.ListExpenseCategories(ctx, connect.NewRequest(&api.ListCategoriesRequest{}))
	if err != nil {
		t.Fatalf("ListExpenseCategories failed: %v", err)
	}
	if len(categories.Msg.Categories) != 1 || categories.Msg.Categories[0] != "Supplies" {
		t.Errorf("unexpected categories %v", categories.Msg.Categories)
	}

	summary, err := c.payments.GetPaymentSummary(ctx, connect.NewRequest(&api.RangeRequest{}))
	if err != nil {
		t.Fatalf("GetPaymentSummary failed: %v", err)
	}
	if summary.Msg.PaymentCount != 1 {
		t.Errorf("expected 1 payment, got %d", summary.Msg.PaymentCount)
	}
}

func TestExportHandler(t *testing.T) {
	c := setupTestServer(t)

	get := func(query, token string) *http.Response {
		t.Helper()
		req, err := http.NewRequest(http.MethodGet, c.url+ExportPath+query, nil)
		if err != nil {
			t.Fatalf("failed to build request: %v", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		t.Cleanup(func() { resp.Body.Close() })
		return resp
	}

	if resp := get("?start_date=2024-03-01&end_date=2024-03-31", ""); resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 without a token, got %d", resp.StatusCode)
	}
	if resp := get("?start_date=2024-03-01", c.token); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 without end_date, got %d", resp.StatusCode)
	}
	if resp := get("?start_date=2024-03-01&end_date=2024-03-31&format=pdf", c.token); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for an unknown format, got %d", resp.StatusCode)
	}

	bad := get("?start_date=2024-04-01&end_date=2024-03-01", c.token)
	if bad.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for a reversed range, got %d", bad.StatusCode)
	}
	if kind := bad.Header.Get(ErrorKindHeader); kind != string(backoffice.KindValidationFailed) {
		t.Errorf("expected %s kind, got %q", backoffice.KindValidationFailed, kind)
	}

	resp := get("?start_date=2024-03-01&end_date=2024-03-31&format=xlsx", c.token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "financial_report_2024-03-01_to_2024-03-31.xlsx") {
		t.Errorf("unexpected Content-Disposition %q", cd)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("unexpected Content-Type %q", ct)
	}
}
