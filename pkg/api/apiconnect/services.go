package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tutorbooks/pkg/api"
)

// Package is the fully-qualified name prefix of every service.
const Package = "tutorbooks.v1"

// Fully-qualified service names.
const (
	AuthServiceName    = Package + ".AuthService"
	StudentServiceName = Package + ".StudentService"
	TeacherServiceName = Package + ".TeacherService"
	CourseServiceName  = Package + ".CourseService"
	SessionServiceName = Package + ".SessionService"
	PaymentServiceName = Package + ".PaymentService"
	ExpenseServiceName = Package + ".ExpenseService"
	ReportServiceName  = Package + ".ReportService"
)

// Procedure paths, in the form "/<service name>/<method>".
const (
	AuthServiceLoginProcedure                    = "/" + AuthServiceName + "/Login"
	AuthServiceMeProcedure                       = "/" + AuthServiceName + "/Me"
	StudentServiceCreateStudentProcedure         = "/" + StudentServiceName + "/CreateStudent"
	StudentServiceGetStudentProcedure            = "/" + StudentServiceName + "/GetStudent"
	StudentServiceListStudentsProcedure          = "/" + StudentServiceName + "/ListStudents"
	StudentServiceUpdateStudentProcedure         = "/" + StudentServiceName + "/UpdateStudent"
	StudentServiceDeleteStudentProcedure         = "/" + StudentServiceName + "/DeleteStudent"
	StudentServiceListGradesProcedure            = "/" + StudentServiceName + "/ListGrades"
	StudentServiceGetStudentBalanceProcedure     = "/" + StudentServiceName + "/GetStudentBalance"
	StudentServiceAdjustStudentBalanceProcedure  = "/" + StudentServiceName + "/AdjustStudentBalance"
	TeacherServiceCreateTeacherProcedure         = "/" + TeacherServiceName + "/CreateTeacher"
	TeacherServiceGetTeacherProcedure            = "/" + TeacherServiceName + "/GetTeacher"
	TeacherServiceListTeachersProcedure          = "/" + TeacherServiceName + "/ListTeachers"
	TeacherServiceUpdateTeacherProcedure         = "/" + TeacherServiceName + "/UpdateTeacher"
	TeacherServiceDeleteTeacherProcedure         = "/" + TeacherServiceName + "/DeleteTeacher"
	TeacherServiceSetGradeRateProcedure          = "/" + TeacherServiceName + "/SetGradeRate"
	TeacherServiceGetTeacherStatsProcedure       = "/" + TeacherServiceName + "/GetTeacherStats"
	CourseServiceCreateCourseProcedure           = "/" + CourseServiceName + "/CreateCourse"
	CourseServiceGetCourseProcedure              = "/" + CourseServiceName + "/GetCourse"
	CourseServiceListCoursesProcedure            = "/" + CourseServiceName + "/ListCourses"
	CourseServiceUpdateCourseProcedure           = "/" + CourseServiceName + "/UpdateCourse"
	CourseServiceDeleteCourseProcedure           = "/" + CourseServiceName + "/DeleteCourse"
	CourseServiceGetCourseStatsProcedure         = "/" + CourseServiceName + "/GetCourseStats"
	SessionServiceCreateSessionProcedure         = "/" + SessionServiceName + "/CreateSession"
	SessionServiceGetSessionProcedure            = "/" + SessionServiceName + "/GetSession"
	SessionServiceListSessionsProcedure          = "/" + SessionServiceName + "/ListSessions"
	SessionServiceUpdateSessionProcedure         = "/" + SessionServiceName + "/UpdateSession"
	SessionServiceDeleteSessionProcedure         = "/" + SessionServiceName + "/DeleteSession"
	SessionServiceGetSessionSummaryProcedure     = "/" + SessionServiceName + "/GetSessionSummary"
	PaymentServiceCreatePaymentProcedure         = "/" + PaymentServiceName + "/CreatePayment"
	PaymentServiceGetPaymentProcedure            = "/" + PaymentServiceName + "/GetPayment"
	PaymentServiceListPaymentsProcedure          = "/" + PaymentServiceName + "/ListPayments"
	PaymentServiceUpdatePaymentProcedure         = "/" + PaymentServiceName + "/UpdatePayment"
	PaymentServiceDeletePaymentProcedure         = "/" + PaymentServiceName + "/DeletePayment"
	PaymentServiceGetPaymentSummaryProcedure     = "/" + PaymentServiceName + "/GetPaymentSummary"
	ExpenseServiceCreateExpenseProcedure         = "/" + ExpenseServiceName + "/CreateExpense"
	ExpenseServiceGetExpenseProcedure            = "/" + ExpenseServiceName + "/GetExpense"
	ExpenseServiceListExpensesProcedure          = "/" + ExpenseServiceName + "/ListExpenses"
	ExpenseServiceUpdateExpenseProcedure         = "/" + ExpenseServiceName + "/UpdateExpense"
	ExpenseServiceDeleteExpenseProcedure         = "/" + ExpenseServiceName + "/DeleteExpense"
	ExpenseServiceListExpenseCategoriesProcedure = "/" + ExpenseServiceName + "/ListExpenseCategories"
	ExpenseServiceGetExpenseSummaryProcedure     = "/" + ExpenseServiceName + "/GetExpenseSummary"
	ReportServiceGetFinancialReportProcedure     = "/" + ReportServiceName + "/GetFinancialReport"
	ReportServiceGetDashboardProcedure           = "/" + ReportServiceName + "/GetDashboard"
	ReportServiceGetAttendanceReportProcedure    = "/" + ReportServiceName + "/GetAttendanceReport"
)

func unimplemented(procedure string) error {
	return connect.NewError(connect.CodeUnimplemented, errors.New(procedure+" is not implemented"))
}

// mount routes the procedures of one service to their handlers.
func mount(service string, handlers map[string]http.Handler) (string, http.Handler) {
	return "/" + service + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := handlers[r.URL.Path]; ok {
			h.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}

// AuthServiceClient is a client for the AuthService.
type AuthServiceClient interface {
	Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error)
	Me(context.Context, *connect.Request[api.MeRequest]) (*connect.Response[api.MeResponse], error)
}

// NewAuthServiceClient returns a client for the AuthService served at baseURL.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AuthServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	option := clientOptions(opts)
	return &authServiceClient{
		login: connect.NewClient[api.LoginRequest, api.LoginResponse](httpClient, baseURL+AuthServiceLoginProcedure, option),
		me:    connect.NewClient[api.MeRequest, api.MeResponse](httpClient, baseURL+AuthServiceMeProcedure, option),
	}
}

type authServiceClient struct {
	login *connect.Client[api.LoginRequest, api.LoginResponse]
	me    *connect.Client[api.MeRequest, api.MeResponse]
}

func (c *authServiceClient) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

func (c *authServiceClient) Me(ctx context.Context, req *connect.Request[api.MeRequest]) (*connect.Response[api.MeResponse], error) {
	return c.me.CallUnary(ctx, req)
}

// AuthServiceHandler authenticates back-office staff.
type AuthServiceHandler interface {
	Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error)
	Me(context.Context, *connect.Request[api.MeRequest]) (*connect.Response[api.MeResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	option := handlerOptions(opts)
	return mount(AuthServiceName, map[string]http.Handler{
		AuthServiceLoginProcedure: connect.NewUnaryHandler(AuthServiceLoginProcedure, svc.Login, option),
		AuthServiceMeProcedure:    connect.NewUnaryHandler(AuthServiceMeProcedure, svc.Me, option),
	})
}

// UnimplementedAuthServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedAuthServiceHandler struct{}

func (UnimplementedAuthServiceHandler) Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	return nil, unimplemented(AuthServiceLoginProcedure)
}

func (UnimplementedAuthServiceHandler) Me(context.Context, *connect.Request[api.MeRequest]) (*connect.Response[api.MeResponse], error) {
	return nil, unimplemented(AuthServiceMeProcedure)
}

// StudentServiceClient is a client for the StudentService.
type StudentServiceClient interface {
	CreateStudent(context.Context, *connect.Request[api.CreateStudentRequest]) (*connect.Response[api.StudentResponse], error)
	GetStudent(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.StudentResponse], error)
	ListStudents(context.Context, *connect.Request[api.ListStudentsRequest]) (*connect.Response[api.ListStudentsResponse], error)
	UpdateStudent(context.Context, *connect.Request[api.UpdateStudentRequest]) (*connect.Response[api.StudentResponse], error)
	DeleteStudent(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error)
	ListGrades(context.Context, *connect.Request[api.ListGradesRequest]) (*connect.Response[api.ListGradesResponse], error)
	GetStudentBalance(context.Context, *connect.Request[api.GetStudentBalanceRequest]) (*connect.Response[api.BalanceResponse], error)
	AdjustStudentBalance(context.Context, *connect.Request[api.AdjustStudentBalanceRequest]) (*connect.Response[api.AdjustStudentBalanceResponse], error)
}

// NewStudentServiceClient returns a client for the StudentService served at baseURL.
func NewStudentServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) StudentServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	option := clientOptions(opts)
	return &studentServiceClient{
		createStudent:        connect.NewClient[api.CreateStudentRequest, api.StudentResponse](httpClient, baseURL+StudentServiceCreateStudentProcedure, option),
		getStudent:           connect.NewClient[api.IDRequest, api.StudentResponse](httpClient, baseURL+StudentServiceGetStudentProcedure, option),
		listStudents:         connect.NewClient[api.ListStudentsRequest, api.ListStudentsResponse](httpClient, baseURL+StudentServiceListStudentsProcedure, option),
		updateStudent:        connect.NewClient[api.UpdateStudentRequest, api.StudentResponse](httpClient, baseURL+StudentServiceUpdateStudentProcedure, option),
		deleteStudent:        connect.NewClient[api.IDRequest, api.Empty](httpClient, baseURL+StudentServiceDeleteStudentProcedure, option),
		listGrades:           connect.NewClient[api.ListGradesRequest, api.ListGradesResponse](httpClient, baseURL+StudentServiceListGradesProcedure, option),
		getStudentBalance:    connect.NewClient[api.GetStudentBalanceRequest, api.BalanceResponse](httpClient, baseURL+StudentServiceGetStudentBalanceProcedure, option),
		adjustStudentBalance: connect.NewClient[api.AdjustStudentBalanceRequest, api.AdjustStudentBalanceResponse](httpClient, baseURL+StudentServiceAdjustStudentBalanceProcedure, option),
	}
}

type studentServiceClient struct {
	createStudent        *connect.Client[api.CreateStudentRequest, api.StudentResponse]
	getStudent           *connect.Client[api.IDRequest, api.StudentResponse]
	listStudents         *connect.Client[api.ListStudentsRequest, api.ListStudentsResponse]
	updateStudent        *connect.Client[api.UpdateStudentRequest, api.StudentResponse]
	deleteStudent        *connect.Client[api.IDRequest, api.Empty]
	listGrades           *connect.Client[api.ListGradesRequest, api.ListGradesResponse]
	getStudentBalance    *connect.Client[api.GetStudentBalanceRequest, api.BalanceResponse]
	adjustStudentBalance *connect.Client[api.AdjustStudentBalanceRequest, api.AdjustStudentBalanceResponse]
}

func (c *studentServiceClient) CreateStudent(ctx context.Context, req *connect.Request[api.CreateStudentRequest]) (*connect.Response[api.StudentResponse], error) {
	return c.createStudent.CallUnary(ctx, req)
}

func (c *studentServiceClient) GetStudent(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.StudentResponse], error) {
	return c.getStudent.CallUnary(ctx, req)
}

func (c *studentServiceClient) ListStudents(ctx context.Context, req *connect.Request[api.ListStudentsRequest]) (*connect.Response[api.ListStudentsResponse], error) {
	return c.listStudents.CallUnary(ctx, req)
}

func (c *studentServiceClient) UpdateStudent(ctx context.Context, req *connect.Request[api.UpdateStudentRequest]) (*connect.Response[api.StudentResponse], error) {
	return c.updateStudent.CallUnary(ctx, req)
}

func (c *studentServiceClient) DeleteStudent(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error) {
	return c.deleteStudent.CallUnary(ctx, req)
}

func (c *studentServiceClient) ListGrades(ctx context.Context, req *connect.Request[api.ListGradesRequest]) (*connect.Response[api.ListGradesResponse], error) {
	return c.listGrades.CallUnary(ctx, req)
}

func (c *studentServiceClient) GetStudentBalance(ctx context.Context, req *connect.Request[api.GetStudentBalanceRequest]) (*connect.Response[api.BalanceResponse], error) {
	return c.getStudentBalance.CallUnary(ctx, req)
}

func (c *studentServiceClient) AdjustStudentBalance(ctx context.Context, req *connect.Request[api.AdjustStudentBalanceRequest]) (*connect.Response[api.AdjustStudentBalanceResponse], error) {
	return c.adjustStudentBalance.CallUnary(ctx, req)
}

// StudentServiceHandler manages students and their hour balances.
type StudentServiceHandler interface {
	CreateStudent(context.Context, *connect.Request[api.CreateStudentRequest]) (*connect.Response[api.StudentResponse], error)
	GetStudent(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.StudentResponse], error)
	ListStudents(context.Context, *connect.Request[api.ListStudentsRequest]) (*connect.Response[api.ListStudentsResponse], error)
	UpdateStudent(context.Context, *connect.Request[api.UpdateStudentRequest]) (*connect.Response[api.StudentResponse], error)
	DeleteStudent(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error)
	ListGrades(context.Context, *connect.Request[api.ListGradesRequest]) (*connect.Response[api.ListGradesResponse], error)
	GetStudentBalance(context.Context, *connect.Request[api.GetStudentBalanceRequest]) (*connect.Response[api.BalanceResponse], error)
	AdjustStudentBalance(context.Context, *connect.Request[api.AdjustStudentBalanceRequest]) (*connect.Response[api.AdjustStudentBalanceResponse], error)
}

// NewStudentServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewStudentServiceHandler(svc StudentServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	option := handlerOptions(opts)
	return mount(StudentServiceName, map[string]http.Handler{
		StudentServiceCreateStudentProcedure:        connect.NewUnaryHandler(StudentServiceCreateStudentProcedure, svc.CreateStudent, option),
		StudentServiceGetStudentProcedure:           connect.NewUnaryHandler(StudentServiceGetStudentProcedure, svc.GetStudent, option),
		StudentServiceListStudentsProcedure:         connect.NewUnaryHandler(StudentServiceListStudentsProcedure, svc.ListStudents, option),
		StudentServiceUpdateStudentProcedure:        connect.NewUnaryHandler(StudentServiceUpdateStudentProcedure, svc.UpdateStudent, option),
		StudentServiceDeleteStudentProcedure:        connect.NewUnaryHandler(StudentServiceDeleteStudentProcedure, svc.DeleteStudent, option),
		StudentServiceListGradesProcedure:           connect.NewUnaryHandler(StudentServiceListGradesProcedure, svc.ListGrades, option),
		StudentServiceGetStudentBalanceProcedure:    connect.NewUnaryHandler(StudentServiceGetStudentBalanceProcedure, svc.GetStudentBalance, option),
		StudentServiceAdjustStudentBalanceProcedure: connect.NewUnaryHandler(StudentServiceAdjustStudentBalanceProcedure, svc.AdjustStudentBalance, option),
	})
}

// UnimplementedStudentServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedStudentServiceHandler struct{}

func (UnimplementedStudentServiceHandler) CreateStudent(context.Context, *connect.Request[api.CreateStudentRequest]) (*connect.Response[api.StudentResponse], error) {
	return nil, unimplemented(StudentServiceCreateStudentProcedure)
}

func (UnimplementedStudentServiceHandler) GetStudent(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.StudentResponse], error) {
	return nil, unimplemented(StudentServiceGetStudentProcedure)
}

func (UnimplementedStudentServiceHandler) ListStudents(context.Context, *connect.Request[api.ListStudentsRequest]) (*connect.Response[api.ListStudentsResponse], error) {
	return nil, unimplemented(StudentServiceListStudentsProcedure)
}

func (UnimplementedStudentServiceHandler) UpdateStudent(context.Context, *connect.Request[api.UpdateStudentRequest]) (*connect.Response[api.StudentResponse], error) {
	return nil, unimplemented(StudentServiceUpdateStudentProcedure)
}

func (UnimplementedStudentServiceHandler) DeleteStudent(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error) {
	return nil, unimplemented(StudentServiceDeleteStudentProcedure)
}

func (UnimplementedStudentServiceHandler) ListGrades(context.Context, *connect.Request[api.ListGradesRequest]) (*connect.Response[api.ListGradesResponse], error) {
	return nil, unimplemented(StudentServiceListGradesProcedure)
}

func (UnimplementedStudentServiceHandler) GetStudentBalance(context.Context, *connect.Request[api.GetStudentBalanceRequest]) (*connect.Response[api.BalanceResponse], error) {
	return nil, unimplemented(StudentServiceGetStudentBalanceProcedure)
}

func (UnimplementedStudentServiceHandler) AdjustStudentBalance(context.Context, *connect.Request[api.AdjustStudentBalanceRequest]) (*connect.Response[api.AdjustStudentBalanceResponse], error) {
	return nil, unimplemented(StudentServiceAdjustStudentBalanceProcedure)
}

// TeacherServiceClient is a client for the TeacherService.
type TeacherServiceClient interface {
	CreateTeacher(context.Context, *connect.Request[api.CreateTeacherRequest]) (*connect.Response[api.TeacherResponse], error)
	GetTeacher(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.TeacherResponse], error)
	ListTeachers(context.Context, *connect.Request[api.SearchRequest]) (*connect.Response[api.ListTeachersResponse], error)
	UpdateTeacher(context.Context, *connect.Request[api.UpdateTeacherRequest]) (*connect.Response[api.TeacherResponse], error)
	DeleteTeacher(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error)
	SetGradeRate(context.Context, *connect.Request[api.SetGradeRateRequest]) (*connect.Response[api.TeacherResponse], error)
	GetTeacherStats(context.Context, *connect.Request[api.StatsRequest]) (*connect.Response[api.TeacherStatsResponse], error)
}

// NewTeacherServiceClient returns a client for the TeacherService served at baseURL.
func NewTeacherServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) TeacherServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	option := clientOptions(opts)
	return &teacherServiceClient{
		createTeacher:   connect.NewClient[api.CreateTeacherRequest, api.TeacherResponse](httpClient, baseURL+TeacherServiceCreateTeacherProcedure, option),
		getTeacher:      connect.NewClient[api.IDRequest, api.TeacherResponse](httpClient, baseURL+TeacherServiceGetTeacherProcedure, option),
		listTeachers:    connect.NewClient[api.SearchRequest, api.ListTeachersResponse](httpClient, baseURL+TeacherServiceListTeachersProcedure, option),
		updateTeacher:   connect.NewClient[api.UpdateTeacherRequest, api.TeacherResponse](httpClient, baseURL+TeacherServiceUpdateTeacherProcedure, option),
		deleteTeacher:   connect.NewClient[api.IDRequest, api.Empty](httpClient, baseURL+TeacherServiceDeleteTeacherProcedure, option),
		setGradeRate:    connect.NewClient[api.SetGradeRateRequest, api.TeacherResponse](httpClient, baseURL+TeacherServiceSetGradeRateProcedure, option),
		getTeacherStats: connect.NewClient[api.StatsRequest, api.TeacherStatsResponse](httpClient, baseURL+TeacherServiceGetTeacherStatsProcedure, option),
	}
}

type teacherServiceClient struct {
	createTeacher   *connect.Client[api.CreateTeacherRequest, api.TeacherResponse]
	getTeacher      *connect.Client[api.IDRequest, api.TeacherResponse]
	listTeachers    *connect.Client[api.SearchRequest, api.ListTeachersResponse]
	updateTeacher   *connect.Client[api.UpdateTeacherRequest, api.TeacherResponse]
	deleteTeacher   *connect.Client[api.IDRequest, api.Empty]
	setGradeRate    *connect.Client[api.SetGradeRateRequest, api.TeacherResponse]
	getTeacherStats *connect.Client[api.StatsRequest, api.TeacherStatsResponse]
}

func (c *teacherServiceClient) CreateTeacher(ctx context.Context, req *connect.Request[api.CreateTeacherRequest]) (*connect.Response[api.TeacherResponse], error) {
	return c.createTeacher.CallUnary(ctx, req)
}

func (c *teacherServiceClient) GetTeacher(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.TeacherResponse], error) {
	return c.getTeacher.CallUnary(ctx, req)
}

func (c *teacherServiceClient) ListTeachers(ctx context.Context, req *connect.Request[api.SearchRequest]) (*connect.Response[api.ListTeachersResponse], error) {
	return c.listTeachers.CallUnary(ctx, req)
}

func (c *teacherServiceClient) UpdateTeacher(ctx context.Context, req *connect.Request[api.UpdateTeacherRequest]) (*connect.Response[api.TeacherResponse], error) {
	return c.updateTeacher.CallUnary(ctx, req)
}

func (c *teacherServiceClient) DeleteTeacher(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error) {
	return c.deleteTeacher.CallUnary(ctx, req)
}

func (c *teacherServiceClient) SetGradeRate(ctx context.Context, req *connect.Request[api.SetGradeRateRequest]) (*connect.Response[api.TeacherResponse], error) {
	return c.setGradeRate.CallUnary(ctx, req)
}

func (c *teacherServiceClient) GetTeacherStats(ctx context.Context, req *connect.Request[api.StatsRequest]) (*connect.Response[api.TeacherStatsResponse], error) {
	return c.getTeacherStats.CallUnary(ctx, req)
}

// TeacherServiceHandler manages teachers and their pay rates.
type TeacherServiceHandler interface {
	CreateTeacher(context.Context, *connect.Request[api.CreateTeacherRequest]) (*connect.Response[api.TeacherResponse], error)
	GetTeacher(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.TeacherResponse], error)
	ListTeachers(context.Context, *connect.Request[api.SearchRequest]) (*connect.Response[api.ListTeachersResponse], error)
	UpdateTeacher(context.Context, *connect.Request[api.UpdateTeacherRequest]) (*connect.Response[api.TeacherResponse], error)
	DeleteTeacher(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error)
	SetGradeRate(context.Context, *connect.Request[api.SetGradeRateRequest]) (*connect.Response[api.TeacherResponse], error)
	GetTeacherStats(context.Context, *connect.Request[api.StatsRequest]) (*connect.Response[api.TeacherStatsResponse], error)
}

// NewTeacherServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewTeacherServiceHandler(svc TeacherServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	option := handlerOptions(opts)
	return mount(TeacherServiceName, map[string]http.Handler{
		TeacherServiceCreateTeacherProcedure:   connect.NewUnaryHandler(TeacherServiceCreateTeacherProcedure, svc.CreateTeacher, option),
		TeacherServiceGetTeacherProcedure:      connect.NewUnaryHandler(TeacherServiceGetTeacherProcedure, svc.GetTeacher, option),
		TeacherServiceListTeachersProcedure:    connect.NewUnaryHandler(TeacherServiceListTeachersProcedure, svc.ListTeachers, option),
		TeacherServiceUpdateTeacherProcedure:   connect.NewUnaryHandler(TeacherServiceUpdateTeacherProcedure, svc.UpdateTeacher, option),
		TeacherServiceDeleteTeacherProcedure:   connect.NewUnaryHandler(TeacherServiceDeleteTeacherProcedure, svc.DeleteTeacher, option),
		TeacherServiceSetGradeRateProcedure:    connect.NewUnaryHandler(TeacherServiceSetGradeRateProcedure, svc.SetGradeRate, option),
		TeacherServiceGetTeacherStatsProcedure: connect.NewUnaryHandler(TeacherServiceGetTeacherStatsProcedure, svc.GetTeacherStats, option),
	})
}

// UnimplementedTeacherServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedTeacherServiceHandler struct{}

func (UnimplementedTeacherServiceHandler) CreateTeacher(context.Context, *connect.Request[api.CreateTeacherRequest]) (*connect.Response[api.TeacherResponse], error) {
	return nil, unimplemented(TeacherServiceCreateTeacherProcedure)
}

func (UnimplementedTeacherServiceHandler) GetTeacher(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.TeacherResponse], error) {
	return nil, unimplemented(TeacherServiceGetTeacherProcedure)
}

func (UnimplementedTeacherServiceHandler) ListTeachers(context.Context, *connect.Request[api.SearchRequest]) (*connect.Response[api.ListTeachersResponse], error) {
	return nil, unimplemented(TeacherServiceListTeachersProcedure)
}

func (UnimplementedTeacherServiceHandler) UpdateTeacher(context.Context, *connect.Request[api.UpdateTeacherRequest]) (*connect.Response[api.TeacherResponse], error) {
	return nil, unimplemented(TeacherServiceUpdateTeacherProcedure)
}

func (UnimplementedTeacherServiceHandler) DeleteTeacher(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error) {
	return nil, unimplemented(TeacherServiceDeleteTeacherProcedure)
}

func (UnimplementedTeacherServiceHandler) SetGradeRate(context.Context, *connect.Request[api.SetGradeRateRequest]) (*connect.Response[api.TeacherResponse], error) {
	return nil, unimplemented(TeacherServiceSetGradeRateProcedure)
}

func (UnimplementedTeacherServiceHandler) GetTeacherStats(context.Context, *connect.Request[api.StatsRequest]) (*connect.Response[api.TeacherStatsResponse], error) {
	return nil, unimplemented(TeacherServiceGetTeacherStatsProcedure)
}

// CourseServiceClient is a client for the CourseService.
type CourseServiceClient interface {
	CreateCourse(context.Context, *connect.Request[api.CreateCourseRequest]) (*connect.Response[api.CourseResponse], error)
	GetCourse(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.CourseResponse], error)
	ListCourses(context.Context, *connect.Request[api.SearchRequest]) (*connect.Response[api.ListCoursesResponse], error)
	UpdateCourse(context.Context, *connect.Request[api.UpdateCourseRequest]) (*connect.Response[api.CourseResponse], error)
	DeleteCourse(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error)
	GetCourseStats(context.Context, *connect.Request[api.StatsRequest]) (*connect.Response[api.CourseStatsResponse], error)
}

// NewCourseServiceClient returns a client for the CourseService served at baseURL.
func NewCourseServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) CourseServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	option := clientOptions(opts)
	return &courseServiceClient{
		createCourse:   connect.NewClient[api.CreateCourseRequest, api.CourseResponse](httpClient, baseURL+CourseServiceCreateCourseProcedure, option),
		getCourse:      connect.NewClient[api.IDRequest, api.CourseResponse](httpClient, baseURL+CourseServiceGetCourseProcedure, option),
		listCourses:    connect.NewClient[api.SearchRequest, api.ListCoursesResponse](httpClient, baseURL+CourseServiceListCoursesProcedure, option),
		updateCourse:   connect.NewClient[api.UpdateCourseRequest, api.CourseResponse](httpClient, baseURL+CourseServiceUpdateCourseProcedure, option),
		deleteCourse:   connect.NewClient[api.IDRequest, api.Empty](httpClient, baseURL+CourseServiceDeleteCourseProcedure, option),
		getCourseStats: connect.NewClient[api.StatsRequest, api.CourseStatsResponse](httpClient, baseURL+CourseServiceGetCourseStatsProcedure, option),
	}
}

type courseServiceClient struct {
	createCourse   *connect.Client[api.CreateCourseRequest, api.CourseResponse]
	getCourse      *connect.Client[api.IDRequest, api.CourseResponse]
	listCourses    *connect.Client[api.SearchRequest, api.ListCoursesResponse]
	updateCourse   *connect.Client[api.UpdateCourseRequest, api.CourseResponse]
	deleteCourse   *connect.Client[api.IDRequest, api.Empty]
	getCourseStats *connect.Client[api.StatsRequest, api.CourseStatsResponse]
}

func (c *courseServiceClient) CreateCourse(ctx context.Context, req *connect.Request[api.CreateCourseRequest]) (*connect.Response[api.CourseResponse], error) {
	return c.createCourse.CallUnary(ctx, req)
}

func (c *courseServiceClient) GetCourse(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.CourseResponse], error) {
	return c.getCourse.CallUnary(ctx, req)
}

func (c *courseServiceClient) ListCourses(ctx context.Context, req *connect.Request[api.SearchRequest]) (*connect.Response[api.ListCoursesResponse], error) {
	return c.listCourses.CallUnary(ctx, req)
}

func (c *courseServiceClient) UpdateCourse(ctx context.Context, req *connect.Request[api.UpdateCourseRequest]) (*connect.Response[api.CourseResponse], error) {
	return c.updateCourse.CallUnary(ctx, req)
}

func (c *courseServiceClient) DeleteCourse(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error) {
	return c.deleteCourse.CallUnary(ctx, req)
}

func (c *courseServiceClient) GetCourseStats(ctx context.Context, req *connect.Request[api.StatsRequest]) (*connect.Response[api.CourseStatsResponse], error) {
	return c.getCourseStats.CallUnary(ctx, req)
}

// CourseServiceHandler manages courses.
type CourseServiceHandler interface {
	CreateCourse(context.Context, *connect.Request[api.CreateCourseRequest]) (*connect.Response[api.CourseResponse], error)
	GetCourse(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.CourseResponse], error)
	ListCourses(context.Context, *connect.Request[api.SearchRequest]) (*connect.Response[api.ListCoursesResponse], error)
	UpdateCourse(context.Context, *connect.Request[api.UpdateCourseRequest]) (*connect.Response[api.CourseResponse], error)
	DeleteCourse(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error)
	GetCourseStats(context.Context, *connect.Request[api.StatsRequest]) (*connect.Response[api.CourseStatsResponse], error)
}

// NewCourseServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewCourseServiceHandler(svc CourseServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	option := handlerOptions(opts)
	return mount(CourseServiceName, map[string]http.Handler{
		CourseServiceCreateCourseProcedure:   connect.NewUnaryHandler(CourseServiceCreateCourseProcedure, svc.CreateCourse, option),
		CourseServiceGetCourseProcedure:      connect.NewUnaryHandler(CourseServiceGetCourseProcedure, svc.GetCourse, option),
		CourseServiceListCoursesProcedure:    connect.NewUnaryHandler(CourseServiceListCoursesProcedure, svc.ListCourses, option),
		CourseServiceUpdateCourseProcedure:   connect.NewUnaryHandler(CourseServiceUpdateCourseProcedure, svc.UpdateCourse, option),
		CourseServiceDeleteCourseProcedure:   connect.NewUnaryHandler(CourseServiceDeleteCourseProcedure, svc.DeleteCourse, option),
		CourseServiceGetCourseStatsProcedure: connect.NewUnaryHandler(CourseServiceGetCourseStatsProcedure, svc.GetCourseStats, option),
	})
}

// UnimplementedCourseServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedCourseServiceHandler struct{}

func (UnimplementedCourseServiceHandler) CreateCourse(context.Context, *connect.Request[api.CreateCourseRequest]) (*connect.Response[api.CourseResponse], error) {
	return nil, unimplemented(CourseServiceCreateCourseProcedure)
}

func (UnimplementedCourseServiceHandler) GetCourse(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.CourseResponse], error) {
	return nil, unimplemented(CourseServiceGetCourseProcedure)
}

func (UnimplementedCourseServiceHandler) ListCourses(context.Context, *connect.Request[api.SearchRequest]) (*connect.Response[api.ListCoursesResponse], error) {
	return nil, unimplemented(CourseServiceListCoursesProcedure)
}

func (UnimplementedCourseServiceHandler) UpdateCourse(context.Context, *connect.Request[api.UpdateCourseRequest]) (*connect.Response[api.CourseResponse], error) {
	return nil, unimplemented(CourseServiceUpdateCourseProcedure)
}

func (UnimplementedCourseServiceHandler) DeleteCourse(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error) {
	return nil, unimplemented(CourseServiceDeleteCourseProcedure)
}

func (UnimplementedCourseServiceHandler) GetCourseStats(context.Context, *connect.Request[api.StatsRequest]) (*connect.Response[api.CourseStatsResponse], error) {
	return nil, unimplemented(CourseServiceGetCourseStatsProcedure)
}

// SessionServiceClient is a client for the SessionService.
type SessionServiceClient interface {
	CreateSession(context.Context, *connect.Request[api.CreateSessionRequest]) (*connect.Response[api.SessionResponse], error)
	GetSession(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.SessionResponse], error)
	ListSessions(context.Context, *connect.Request[api.ListFactsRequest]) (*connect.Response[api.ListSessionsResponse], error)
	UpdateSession(context.Context, *connect.Request[api.UpdateSessionRequest]) (*connect.Response[api.SessionResponse], error)
	DeleteSession(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error)
	GetSessionSummary(context.Context, *connect.Request[api.RangeRequest]) (*connect.Response[api.SessionSummary], error)
}

// NewSessionServiceClient returns a client for the SessionService served at baseURL.
func NewSessionServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SessionServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	option := clientOptions(opts)
	return &sessionServiceClient{
		createSession:     connect.NewClient[api.CreateSessionRequest, api.SessionResponse](httpClient, baseURL+SessionServiceCreateSessionProcedure, option),
		getSession:        connect.NewClient[api.IDRequest, api.SessionResponse](httpClient, baseURL+SessionServiceGetSessionProcedure, option),
		listSessions:      connect.NewClient[api.ListFactsRequest, api.ListSessionsResponse](httpClient, baseURL+SessionServiceListSessionsProcedure, option),
		updateSession:     connect.NewClient[api.UpdateSessionRequest, api.SessionResponse](httpClient, baseURL+SessionServiceUpdateSessionProcedure, option),
		deleteSession:     connect.NewClient[api.IDRequest, api.Empty](httpClient, baseURL+SessionServiceDeleteSessionProcedure, option),
		getSessionSummary: connect.NewClient[api.RangeRequest, api.SessionSummary](httpClient, baseURL+SessionServiceGetSessionSummaryProcedure, option),
	}
}

type sessionServiceClient struct {
	createSession     *connect.Client[api.CreateSessionRequest, api.SessionResponse]
	getSession        *connect.Client[api.IDRequest, api.SessionResponse]
	listSessions      *connect.Client[api.ListFactsRequest, api.ListSessionsResponse]
	updateSession     *connect.Client[api.UpdateSessionRequest, api.SessionResponse]
	deleteSession     *connect.Client[api.IDRequest, api.Empty]
	getSessionSummary *connect.Client[api.RangeRequest, api.SessionSummary]
}

func (c *sessionServiceClient) CreateSession(ctx context.Context, req *connect.Request[api.CreateSessionRequest]) (*connect.Response[api.SessionResponse], error) {
	return c.createSession.CallUnary(ctx, req)
}

func (c *sessionServiceClient) GetSession(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.SessionResponse], error) {
	return c.getSession.CallUnary(ctx, req)
}

func (c *sessionServiceClient) ListSessions(ctx context.Context, req *connect.Request[api.ListFactsRequest]) (*connect.Response[api.ListSessionsResponse], error) {
	return c.listSessions.CallUnary(ctx, req)
}

func (c *sessionServiceClient) UpdateSession(ctx context.Context, req *connect.Request[api.UpdateSessionRequest]) (*connect.Response[api.SessionResponse], error) {
	return c.updateSession.CallUnary(ctx, req)
}

func (c *sessionServiceClient) DeleteSession(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error) {
	return c.deleteSession.CallUnary(ctx, req)
}

func (c *sessionServiceClient) GetSessionSummary(ctx context.Context, req *connect.Request[api.RangeRequest]) (*connect.Response[api.SessionSummary], error) {
	return c.getSessionSummary.CallUnary(ctx, req)
}

// SessionServiceHandler records taught sessions against student balances.
type SessionServiceHandler interface {
	CreateSession(context.Context, *connect.Request[api.CreateSessionRequest]) (*connect.Response[api.SessionResponse], error)
	GetSession(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.SessionResponse], error)
	ListSessions(context.Context, *connect.Request[api.ListFactsRequest]) (*connect.Response[api.ListSessionsResponse], error)
	UpdateSession(context.Context, *connect.Request[api.UpdateSessionRequest]) (*connect.Response[api.SessionResponse], error)
	DeleteSession(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error)
	GetSessionSummary(context.Context, *connect.Request[api.RangeRequest]) (*connect.Response[api.SessionSummary], error)
}

// NewSessionServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewSessionServiceHandler(svc SessionServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	option := handlerOptions(opts)
	return mount(SessionServiceName, map[string]http.Handler{
		SessionServiceCreateSessionProcedure:     connect.NewUnaryHandler(SessionServiceCreateSessionProcedure, svc.CreateSession, option),
		SessionServiceGetSessionProcedure:        connect.NewUnaryHandler(SessionServiceGetSessionProcedure, svc.GetSession, option),
		SessionServiceListSessionsProcedure:      connect.NewUnaryHandler(SessionServiceListSessionsProcedure, svc.ListSessions, option),
		SessionServiceUpdateSessionProcedure:     connect.NewUnaryHandler(SessionServiceUpdateSessionProcedure, svc.UpdateSession, option),
		SessionServiceDeleteSessionProcedure:     connect.NewUnaryHandler(SessionServiceDeleteSessionProcedure, svc.DeleteSession, option),
		SessionServiceGetSessionSummaryProcedure: connect.NewUnaryHandler(SessionServiceGetSessionSummaryProcedure, svc.GetSessionSummary, option),
	})
}

// UnimplementedSessionServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedSessionServiceHandler struct{}

func (UnimplementedSessionServiceHandler) CreateSession(context.Context, *connect.Request[api.CreateSessionRequest]) (*connect.Response[api.SessionResponse], error) {
	return nil, unimplemented(SessionServiceCreateSessionProcedure)
}

func (UnimplementedSessionServiceHandler) GetSession(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.SessionResponse], error) {
	return nil, unimplemented(SessionServiceGetSessionProcedure)
}

func (UnimplementedSessionServiceHandler) ListSessions(context.Context, *connect.Request[api.ListFactsRequest]) (*connect.Response[api.ListSessionsResponse], error) {
	return nil, unimplemented(SessionServiceListSessionsProcedure)
}

func (UnimplementedSessionServiceHandler) UpdateSession(context.Context, *connect.Request[api.UpdateSessionRequest]) (*connect.Response[api.SessionResponse], error) {
	return nil, unimplemented(SessionServiceUpdateSessionProcedure)
}

func (UnimplementedSessionServiceHandler) DeleteSession(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error) {
	return nil, unimplemented(SessionServiceDeleteSessionProcedure)
}

func (UnimplementedSessionServiceHandler) GetSessionSummary(context.Context, *connect.Request[api.RangeRequest]) (*connect.Response[api.SessionSummary], error) {
	return nil, unimplemented(SessionServiceGetSessionSummaryProcedure)
}

// PaymentServiceClient is a client for the PaymentService.
type PaymentServiceClient interface {
	CreatePayment(context.Context, *connect.Request[api.CreatePaymentRequest]) (*connect.Response[api.PaymentResponse], error)
	GetPayment(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.PaymentResponse], error)
	ListPayments(context.Context, *connect.Request[api.ListFactsRequest]) (*connect.Response[api.ListPaymentsResponse], error)
	UpdatePayment(context.Context, *connect.Request[api.UpdatePaymentRequest]) (*connect.Response[api.PaymentResponse], error)
	DeletePayment(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error)
	GetPaymentSummary(context.Context, *connect.Request[api.RangeRequest]) (*connect.Response[api.PaymentSummary], error)
}

// NewPaymentServiceClient returns a client for the PaymentService served at baseURL.
func NewPaymentServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) PaymentServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	option := clientOptions(opts)
	return &paymentServiceClient{
		createPayment:     connect.NewClient[api.CreatePaymentRequest, api.PaymentResponse](httpClient, baseURL+PaymentServiceCreatePaymentProcedure, option),
		getPayment:        connect.NewClient[api.IDRequest, api.PaymentResponse](httpClient, baseURL+PaymentServiceGetPaymentProcedure, option),
		listPayments:      connect.NewClient[api.ListFactsRequest, api.ListPaymentsResponse](httpClient, baseURL+PaymentServiceListPaymentsProcedure, option),
		updatePayment:     connect.NewClient[api.UpdatePaymentRequest, api.PaymentResponse](httpClient, baseURL+PaymentServiceUpdatePaymentProcedure, option),
		deletePayment:     connect.NewClient[api.IDRequest, api.Empty](httpClient, baseURL+PaymentServiceDeletePaymentProcedure, option),
		getPaymentSummary: connect.NewClient[api.RangeRequest, api.PaymentSummary](httpClient, baseURL+PaymentServiceGetPaymentSummaryProcedure, option),
	}
}

type paymentServiceClient struct {
	createPayment     *connect.Client[api.CreatePaymentRequest, api.PaymentResponse]
	getPayment        *connect.Client[api.IDRequest, api.PaymentResponse]
	listPayments      *connect.Client[api.ListFactsRequest, api.ListPaymentsResponse]
	updatePayment     *connect.Client[api.UpdatePaymentRequest, api.PaymentResponse]
	deletePayment     *connect.Client[api.IDRequest, api.Empty]
	getPaymentSummary *connect.Client[api.RangeRequest, api.PaymentSummary]
}

func (c *paymentServiceClient) CreatePayment(ctx context.Context, req *connect.Request[api.CreatePaymentRequest]) (*connect.Response[api.PaymentResponse], error) {
	return c.createPayment.CallUnary(ctx, req)
}

func (c *paymentServiceClient) GetPayment(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.PaymentResponse], error) {
	return c.getPayment.CallUnary(ctx, req)
}

func (c *paymentServiceClient) ListPayments(ctx context.Context, req *connect.Request[api.ListFactsRequest]) (*connect.Response[api.ListPaymentsResponse], error) {
	return c.listPayments.CallUnary(ctx, req)
}

func (c *paymentServiceClient) UpdatePayment(ctx context.Context, req *connect.Request[api.UpdatePaymentRequest]) (*connect.Response[api.PaymentResponse], error) {
	return c.updatePayment.CallUnary(ctx, req)
}

func (c *paymentServiceClient) DeletePayment(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error) {
	return c.deletePayment.CallUnary(ctx, req)
}

func (c *paymentServiceClient) GetPaymentSummary(ctx context.Context, req *connect.Request[api.RangeRequest]) (*connect.Response[api.PaymentSummary], error) {
	return c.getPaymentSummary.CallUnary(ctx, req)
}

// PaymentServiceHandler records purchases of hours.
type PaymentServiceHandler interface {
	CreatePayment(context.Context, *connect.Request[api.CreatePaymentRequest]) (*connect.Response[api.PaymentResponse], error)
	GetPayment(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.PaymentResponse], error)
	ListPayments(context.Context, *connect.Request[api.ListFactsRequest]) (*connect.Response[api.ListPaymentsResponse], error)
	UpdatePayment(context.Context, *connect.Request[api.UpdatePaymentRequest]) (*connect.Response[api.PaymentResponse], error)
	DeletePayment(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error)
	GetPaymentSummary(context.Context, *connect.Request[api.RangeRequest]) (*connect.Response[api.PaymentSummary], error)
}

// NewPaymentServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewPaymentServiceHandler(svc PaymentServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	option := handlerOptions(opts)
	return mount(PaymentServiceName, map[string]http.Handler{
		PaymentServiceCreatePaymentProcedure:     connect.NewUnaryHandler(PaymentServiceCreatePaymentProcedure, svc.CreatePayment, option),
		PaymentServiceGetPaymentProcedure:        connect.NewUnaryHandler(PaymentServiceGetPaymentProcedure, svc.GetPayment, option),
		PaymentServiceListPaymentsProcedure:      connect.NewUnaryHandler(PaymentServiceListPaymentsProcedure, svc.ListPayments, option),
		PaymentServiceUpdatePaymentProcedure:     connect.NewUnaryHandler(PaymentServiceUpdatePaymentProcedure, svc.UpdatePayment, option),
		PaymentServiceDeletePaymentProcedure:     connect.NewUnaryHandler(PaymentServiceDeletePaymentProcedure, svc.DeletePayment, option),
		PaymentServiceGetPaymentSummaryProcedure: connect.NewUnaryHandler(PaymentServiceGetPaymentSummaryProcedure, svc.GetPaymentSummary, option),
	})
}

// UnimplementedPaymentServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedPaymentServiceHandler struct{}

func (UnimplementedPaymentServiceHandler) CreatePayment(context.Context, *connect.Request[api.CreatePaymentRequest]) (*connect.Response[api.PaymentResponse], error) {
	return nil, unimplemented(PaymentServiceCreatePaymentProcedure)
}

func (UnimplementedPaymentServiceHandler) GetPayment(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.PaymentResponse], error) {
	return nil, unimplemented(PaymentServiceGetPaymentProcedure)
}

func (UnimplementedPaymentServiceHandler) ListPayments(context.Context, *connect.Request[api.ListFactsRequest]) (*connect.Response[api.ListPaymentsResponse], error) {
	return nil, unimplemented(PaymentServiceListPaymentsProcedure)
}

func (UnimplementedPaymentServiceHandler) UpdatePayment(context.Context, *connect.Request[api.UpdatePaymentRequest]) (*connect.Response[api.PaymentResponse], error) {
	return nil, unimplemented(PaymentServiceUpdatePaymentProcedure)
}

func (UnimplementedPaymentServiceHandler) DeletePayment(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error) {
	return nil, unimplemented(PaymentServiceDeletePaymentProcedure)
}

func (UnimplementedPaymentServiceHandler) GetPaymentSummary(context.Context, *connect.Request[api.RangeRequest]) (*connect.Response[api.PaymentSummary], error) {
	return nil, unimplemented(PaymentServiceGetPaymentSummaryProcedure)
}

// ExpenseServiceClient is a client for the ExpenseService.
type ExpenseServiceClient interface {
	CreateExpense(context.Context, *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.ExpenseResponse], error)
	GetExpense(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.ExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error)
	UpdateExpense(context.Context, *connect.Request[api.UpdateExpenseRequest]) (*connect.Response[api.ExpenseResponse], error)
	DeleteExpense(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error)
	ListExpenseCategories(context.Context, *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error)
	GetExpenseSummary(context.Context, *connect.Request[api.RangeRequest]) (*connect.Response[api.ExpenseSummary], error)
}

// NewExpenseServiceClient returns a client for the ExpenseService served at baseURL.
func NewExpenseServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ExpenseServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	option := clientOptions(opts)
	return &expenseServiceClient{
		createExpense:         connect.NewClient[api.CreateExpenseRequest, api.ExpenseResponse](httpClient, baseURL+ExpenseServiceCreateExpenseProcedure, option),
		getExpense:            connect.NewClient[api.IDRequest, api.ExpenseResponse](httpClient, baseURL+ExpenseServiceGetExpenseProcedure, option),
		listExpenses:          connect.NewClient[api.ListExpensesRequest, api.ListExpensesResponse](httpClient, baseURL+ExpenseServiceListExpensesProcedure, option),
		updateExpense:         connect.NewClient[api.UpdateExpenseRequest, api.ExpenseResponse](httpClient, baseURL+ExpenseServiceUpdateExpenseProcedure, option),
		deleteExpense:         connect.NewClient[api.IDRequest, api.Empty](httpClient, baseURL+ExpenseServiceDeleteExpenseProcedure, option),
		listExpenseCategories: connect.NewClient[api.ListCategoriesRequest, api.ListCategoriesResponse](httpClient, baseURL+ExpenseServiceListExpenseCategoriesProcedure, option),
		getExpenseSummary:     connect.NewClient[api.RangeRequest, api.ExpenseSummary](httpClient, baseURL+ExpenseServiceGetExpenseSummaryProcedure, option),
	}
}

type expenseServiceClient struct {
	createExpense         *connect.Client[api.CreateExpenseRequest, api.ExpenseResponse]
	getExpense            *connect.Client[api.IDRequest, api.ExpenseResponse]
	listExpenses          *connect.Client[api.ListExpensesRequest, api.ListExpensesResponse]
	updateExpense         *connect.Client[api.UpdateExpenseRequest, api.ExpenseResponse]
	deleteExpense         *connect.Client[api.IDRequest, api.Empty]
	listExpenseCategories *connect.Client[api.ListCategoriesRequest, api.ListCategoriesResponse]
	getExpenseSummary     *connect.Client[api.RangeRequest, api.ExpenseSummary]
}

func (c *expenseServiceClient) CreateExpense(ctx context.Context, req *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.ExpenseResponse], error) {
	return c.createExpense.CallUnary(ctx, req)
}

func (c *expenseServiceClient) GetExpense(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.ExpenseResponse], error) {
	return c.getExpense.CallUnary(ctx, req)
}

func (c *expenseServiceClient) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

func (c *expenseServiceClient) UpdateExpense(ctx context.Context, req *connect.Request[api.UpdateExpenseRequest]) (*connect.Response[api.ExpenseResponse], error) {
	return c.updateExpense.CallUnary(ctx, req)
}

func (c *expenseServiceClient) DeleteExpense(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error) {
	return c.deleteExpense.CallUnary(ctx, req)
}

func (c *expenseServiceClient) ListExpenseCategories(ctx context.Context, req *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error) {
	return c.listExpenseCategories.CallUnary(ctx, req)
}

func (c *expenseServiceClient) GetExpenseSummary(ctx context.Context, req *connect.Request[api.RangeRequest]) (*connect.Response[api.ExpenseSummary], error) {
	return c.getExpenseSummary.CallUnary(ctx, req)
}

// ExpenseServiceHandler records running costs.
type ExpenseServiceHandler interface {
	CreateExpense(context.Context, *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.ExpenseResponse], error)
	GetExpense(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.ExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error)
	UpdateExpense(context.Context, *connect.Request[api.UpdateExpenseRequest]) (*connect.Response[api.ExpenseResponse], error)
	DeleteExpense(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error)
	ListExpenseCategories(context.Context, *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error)
	GetExpenseSummary(context.Context, *connect.Request[api.RangeRequest]) (*connect.Response[api.ExpenseSummary], error)
}

// NewExpenseServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewExpenseServiceHandler(svc ExpenseServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	option := handlerOptions(opts)
	return mount(ExpenseServiceName, map[string]http.Handler{
		ExpenseServiceCreateExpenseProcedure:         connect.NewUnaryHandler(ExpenseServiceCreateExpenseProcedure, svc.CreateExpense, option),
		ExpenseServiceGetExpenseProcedure:            connect.NewUnaryHandler(ExpenseServiceGetExpenseProcedure, svc.GetExpense, option),
		ExpenseServiceListExpensesProcedure:          connect.NewUnaryHandler(ExpenseServiceListExpensesProcedure, svc.ListExpenses, option),
		ExpenseServiceUpdateExpenseProcedure:         connect.NewUnaryHandler(ExpenseServiceUpdateExpenseProcedure, svc.UpdateExpense, option),
		ExpenseServiceDeleteExpenseProcedure:         connect.NewUnaryHandler(ExpenseServiceDeleteExpenseProcedure, svc.DeleteExpense, option),
		ExpenseServiceListExpenseCategoriesProcedure: connect.NewUnaryHandler(ExpenseServiceListExpenseCategoriesProcedure, svc.ListExpenseCategories, option),
		ExpenseServiceGetExpenseSummaryProcedure:     connect.NewUnaryHandler(ExpenseServiceGetExpenseSummaryProcedure, svc.GetExpenseSummary, option),
	})
}

// UnimplementedExpenseServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedExpenseServiceHandler struct{}

func (UnimplementedExpenseServiceHandler) CreateExpense(context.Context, *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.ExpenseResponse], error) {
	return nil, unimplemented(ExpenseServiceCreateExpenseProcedure)
}

func (UnimplementedExpenseServiceHandler) GetExpense(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.ExpenseResponse], error) {
	return nil, unimplemented(ExpenseServiceGetExpenseProcedure)
}

func (UnimplementedExpenseServiceHandler) ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	return nil, unimplemented(ExpenseServiceListExpensesProcedure)
}

func (UnimplementedExpenseServiceHandler) UpdateExpense(context.Context, *connect.Request[api.UpdateExpenseRequest]) (*connect.Response[api.ExpenseResponse], error) {
	return nil, unimplemented(ExpenseServiceUpdateExpenseProcedure)
}

func (UnimplementedExpenseServiceHandler) DeleteExpense(context.Context, *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error) {
	return nil, unimplemented(ExpenseServiceDeleteExpenseProcedure)
}

func (UnimplementedExpenseServiceHandler) ListExpenseCategories(context.Context, *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error) {
	return nil, unimplemented(ExpenseServiceListExpenseCategoriesProcedure)
}

func (UnimplementedExpenseServiceHandler) GetExpenseSummary(context.Context, *connect.Request[api.RangeRequest]) (*connect.Response[api.ExpenseSummary], error) {
	return nil, unimplemented(ExpenseServiceGetExpenseSummaryProcedure)
}

// ReportServiceClient is a client for the ReportService.
type ReportServiceClient interface {
	GetFinancialReport(context.Context, *connect.Request[api.RangeRequest]) (*connect.Response[api.FinancialReport], error)
	GetDashboard(context.Context, *connect.Request[api.DashboardRequest]) (*connect.Response[api.Dashboard], error)
	GetAttendanceReport(context.Context, *connect.Request[api.RangeRequest]) (*connect.Response[api.AttendanceReport], error)
}

// NewReportServiceClient returns a client for the ReportService served at baseURL.
func NewReportServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ReportServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	option := clientOptions(opts)
	return &reportServiceClient{
		getFinancialReport:  connect.NewClient[api.RangeRequest, api.FinancialReport](httpClient, baseURL+ReportServiceGetFinancialReportProcedure, option),
		getDashboard:        connect.NewClient[api.DashboardRequest, api.Dashboard](httpClient, baseURL+ReportServiceGetDashboardProcedure, option),
		getAttendanceReport: connect.NewClient[api.RangeRequest, api.AttendanceReport](httpClient, baseURL+ReportServiceGetAttendanceReportProcedure, option),
	}
}

type reportServiceClient struct {
	getFinancialReport  *connect.Client[api.RangeRequest, api.FinancialReport]
	getDashboard        *connect.Client[api.DashboardRequest, api.Dashboard]
	getAttendanceReport *connect.Client[api.RangeRequest, api.AttendanceReport]
}

func (c *reportServiceClient) GetFinancialReport(ctx context.Context, req *connect.Request[api.RangeRequest]) (*connect.Response[api.FinancialReport], error) {
	return c.getFinancialReport.CallUnary(ctx, req)
}

func (c *reportServiceClient) GetDashboard(ctx context.Context, req *connect.Request[api.DashboardRequest]) (*connect.Response[api.Dashboard], error) {
	return c.getDashboard.CallUnary(ctx, req)
}

func (c *reportServiceClient) GetAttendanceReport(ctx context.Context, req *connect.Request[api.RangeRequest]) (*connect.Response[api.AttendanceReport], error) {
	return c.getAttendanceReport.CallUnary(ctx, req)
}

// ReportServiceHandler folds the ledger into financial reports.
type ReportServiceHandler interface {
	GetFinancialReport(context.Context, *connect.Request[api.RangeRequest]) (*connect.Response[api.FinancialReport], error)
	GetDashboard(context.Context, *connect.Request[api.DashboardRequest]) (*connect.Response[api.Dashboard], error)
	GetAttendanceReport(context.Context, *connect.Request[api.RangeRequest]) (*connect.Response[api.AttendanceReport], error)
}

// NewReportServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewReportServiceHandler(svc ReportServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	option := handlerOptions(opts)
	return mount(ReportServiceName, map[string]http.Handler{
		ReportServiceGetFinancialReportProcedure:  connect.NewUnaryHandler(ReportServiceGetFinancialReportProcedure, svc.GetFinancialReport, option),
		ReportServiceGetDashboardProcedure:        connect.NewUnaryHandler(ReportServiceGetDashboardProcedure, svc.GetDashboard, option),
		ReportServiceGetAttendanceReportProcedure: connect.NewUnaryHandler(ReportServiceGetAttendanceReportProcedure, svc.GetAttendanceReport, option),
	})
}

// UnimplementedReportServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedReportServiceHandler struct{}

func (UnimplementedReportServiceHandler) GetFinancialReport(context.Context, *connect.Request[api.RangeRequest]) (*connect.Response[api.FinancialReport], error) {
	return nil, unimplemented(ReportServiceGetFinancialReportProcedure)
}

func (UnimplementedReportServiceHandler) GetDashboard(context.Context, *connect.Request[api.DashboardRequest]) (*connect.Response[api.Dashboard], error) {
	return nil, unimplemented(ReportServiceGetDashboardProcedure)
}

func (UnimplementedReportServiceHandler) GetAttendanceReport(context.Context, *connect.Request[api.RangeRequest]) (*connect.Response[api.AttendanceReport], error) {
	return nil, unimplemented(ReportServiceGetAttendanceReportProcedure)
}
