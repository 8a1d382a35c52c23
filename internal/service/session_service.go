package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/tutorbooks/internal/backoffice"
	"github.com/mmynk/tutorbooks/pkg/api"
	"github.com/mmynk/tutorbooks/pkg/api/apiconnect"
)

// SessionService implements the Connect SessionService.
type SessionService struct {
	bo *backoffice.Service
}

var _ apiconnect.SessionServiceHandler = (*SessionService)(nil)

// NewSessionService creates a SessionService backed by bo.
func NewSessionService(bo *backoffice.Service) *SessionService {
	return &SessionService{bo: bo}
}

// CreateSession records a session and debits the student's balance.
func (s *SessionService) CreateSession(ctx context.Context, req *connect.Request[api.CreateSessionRequest]) (*connect.Response[api.SessionResponse], error) {
	slog.Debug("Creating session",
		"student_id", req.Msg.StudentID,
		"course_id", req.Msg.CourseID,
		"start_time", req.Msg.StartTime,
		"end_time", req.Msg.EndTime,
	)
	session, err := s.bo.CreateSession(ctx, backoffice.SessionInput(req.Msg.SessionFields))
	if err != nil {
		return nil, toConnect(err)
	}
	slog.Info("Session created", "session_id", session.ID, "hours", session.Hours)
	return connect.NewResponse(&api.SessionResponse{Session: toSession(session)}), nil
}

func (s *SessionService) GetSession(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.SessionResponse], error) {
	session, err := s.bo.GetSession(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnect(err)
	}
	return connect.NewResponse(&api.SessionResponse{Session: toSession(session)}), nil
}

func (s *SessionService) ListSessions(ctx context.Context, req *connect.Request[api.ListFactsRequest]) (*connect.Response[api.ListSessionsResponse], error) {
	f, err := factFilter(req.Msg)
	if err != nil {
		return nil, toConnect(err)
	}
	sessions, err := s.bo.ListSessions(ctx, f)
	if err != nil {
		return nil, toConnect(err)
	}
	out := make([]*api.Session, len(sessions))
	for i := range sessions {
		out[i] = toSession(&sessions[i])
	}
	return connect.NewResponse(&api.ListSessionsResponse{Sessions: out}), nil
}

// UpdateSession changes a session, applying any hour difference to the balance.
func (s *SessionService) UpdateSession(ctx context.Context, req *connect.Request[api.UpdateSessionRequest]) (*connect.Response[api.SessionResponse], error) {
	session, err := s.bo.UpdateSession(ctx, req.Msg.ID, backoffice.SessionUpdate(req.Msg.SessionPatch))
	if err != nil {
		return nil, toConnect(err)
	}
	slog.Info("Session updated", "session_id", session.ID, "hours", session.Hours)
	return connect.NewResponse(&api.SessionResponse{Session: toSession(session)}), nil
}

// DeleteSession removes a session and credits its hours back.
func (s *SessionService) DeleteSession(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error) {
	if err := s.bo.DeleteSession(ctx, req.Msg.ID); err != nil {
		return nil, toConnect(err)
	}
	slog.Info("Session deleted", "session_id", req.Msg.ID)
	return connect.NewResponse(&api.Empty{}), nil
}

func (s *SessionService) GetSessionSummary(ctx context.Context, req *connect.Request[api.RangeRequest]) (*connect.Response[api.SessionSummary], error) {
	r, err := backoffice.ParseRange(req.Msg.StartDate, req.Msg.EndDate)
	if err != nil {
		return nil, toConnect(err)
	}
	sum, err := s.bo.SessionSummary(ctx, r)
	if err != nil {
		return nil, toConnect(err)
	}
	return connect.NewResponse(&api.SessionSummary{
		Period:               toPeriod(sum.Period),
		TotalHours:           sum.TotalHours,
		TotalSalaryCost:      sum.TotalSalaryCost,
		SessionCount:         sum.SessionCount,
		AverageSessionLength: sum.AverageSessionLength,
		AverageSalaryPerHour: sum.AverageSalaryPerHour,
		ByTeacher:            mapValues(sum.ByTeacher, toSessionBucket),
		ByCourse:             mapValues(sum.ByCourse, toSessionBucket),
	}), nil
}
