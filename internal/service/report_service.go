package service

import (
	"context"

	"connectrpc.com/connect"

	"github.com/mmynk/tutorbooks/internal/backoffice"
	"github.com/mmynk/tutorbooks/pkg/api"
	"github.com/mmynk/tutorbooks/pkg/api/apiconnect"
)

// ReportService implements the Connect ReportService.
type ReportService struct {
	bo *backoffice.Service
}

var _ apiconnect.ReportServiceHandler = (*ReportService)(nil)

// NewReportService creates a ReportService backed by bo.
func NewReportService(bo *backoffice.Service) *ReportService {
	return &ReportService{bo: bo}
}

func (s *ReportService) GetFinancialReport(ctx context.Context, req *connect.Request[api.RangeRequest]) (*connect.Response[api.FinancialReport], error) {
	r, err := backoffice.ParseRange(req.Msg.StartDate, req.Msg.EndDate)
	if err != nil {
		return nil, toConnect(err)
	}
	rep, err := s.bo.FinancialReport(ctx, r)
	if err != nil {
		return nil, toConnect(err)
	}
	return connect.NewResponse(&api.FinancialReport{
		Period:   toPeriod(rep.Period),
		Summary:  api.Summary(rep.Summary),
		Courses:  mapSlice(rep.Courses, toCourseFigures),
		Teachers: mapSlice(rep.Teachers, toTeacherFigures),
		Monthly:  mapSlice(rep.Monthly, toMonthFigures),
	}), nil
}

func (s *ReportService) GetDashboard(ctx context.Context, req *connect.Request[api.DashboardRequest]) (*connect.Response[api.Dashboard], error) {
	d, err := s.bo.Dashboard(ctx)
	if err != nil {
		return nil, toConnect(err)
	}
	return connect.NewResponse(&api.Dashboard{
		Period:       toPeriod(d.Period),
		CurrentMonth: api.Summary(d.CurrentMonth),
		Chart:        mapSlice(d.Chart, toMonthFigures),
		LowBalanceAlerts: mapSlice(d.LowBalanceAlerts, func(a backoffice.LowBalanceAlert) api.LowBalanceAlert {
			return api.LowBalanceAlert(a)
		}),
		Totals: api.Totals(d.Totals),
	}), nil
}

func (s *ReportService) GetAttendanceReport(ctx context.Context, req *connect.Request[api.RangeRequest]) (*connect.Response[api.AttendanceReport], error) {
	r, err := backoffice.ParseRange(req.Msg.StartDate, req.Msg.EndDate)
	if err != nil {
		return nil, toConnect(err)
	}
	rep, err := s.bo.AttendanceReport(ctx, r)
	if err != nil {
		return nil, toConnect(err)
	}
	return connect.NewResponse(&api.AttendanceReport{
		Period:      toPeriod(rep.Period),
		Teachers:    mapSlice(rep.Teachers, toTeacherFigures),
		TotalHours:  rep.TotalHours,
		TotalSalary: rep.TotalSalary,
	}), nil
}
