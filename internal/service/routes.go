package service

import (
	"log/slog"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/tutorbooks/internal/auth"
	"github.com/mmynk/tutorbooks/internal/backoffice"
	"github.com/mmynk/tutorbooks/internal/middleware"
	"github.com/mmynk/tutorbooks/pkg/api/apiconnect"
)

// Deps are the collaborators the RPC handlers need.
type Deps struct {
	Backoffice    *backoffice.Service
	Authenticator auth.Authenticator
	Staff         auth.StaffStorage
	JWT           *auth.JWTManager
	Logger        *slog.Logger
}

// Mount registers every Connect service and the export download on mux.
// All procedures except Login require a bearer token.
func Mount(mux *http.ServeMux, d Deps) {
	interceptors := connect.WithInterceptors(
		middleware.MetricsInterceptor(),
		middleware.RequireAuth(d.JWT, apiconnect.AuthServiceLoginProcedure),
		middleware.LoggingInterceptor(),
	)
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux.Handle(apiconnect.NewAuthServiceHandler(NewAuthService(d.Authenticator, d.Staff, d.JWT, logger), interceptors))
	mux.Handle(apiconnect.NewStudentServiceHandler(NewStudentService(d.Backoffice), interceptors))
	mux.Handle(apiconnect.NewTeacherServiceHandler(NewTeacherService(d.Backoffice), interceptors))
	mux.Handle(apiconnect.NewCourseServiceHandler(NewCourseService(d.Backoffice), interceptors))
	mux.Handle(apiconnect.NewSessionServiceHandler(NewSessionService(d.Backoffice), interceptors))
	mux.Handle(apiconnect.NewPaymentServiceHandler(NewPaymentService(d.Backoffice), interceptors))
	mux.Handle(apiconnect.NewExpenseServiceHandler(NewExpenseService(d.Backoffice), interceptors))
	mux.Handle(apiconnect.NewReportServiceHandler(NewReportService(d.Backoffice), interceptors))

	mux.Handle(ExportPath, middleware.RequireBearer(d.JWT, NewExportHandler(d.Backoffice)))
}
