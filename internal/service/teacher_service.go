package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/tutorbooks/internal/backoffice"
	"github.com/mmynk/tutorbooks/pkg/api"
	"github.com/mmynk/tutorbooks/pkg/api/apiconnect"
)

// TeacherService implements the Connect TeacherService.
type TeacherService struct {
	bo *backoffice.Service
}

var _ apiconnect.TeacherServiceHandler = (*TeacherService)(nil)

// NewTeacherService creates a TeacherService backed by bo.
func NewTeacherService(bo *backoffice.Service) *TeacherService {
	return &TeacherService{bo: bo}
}

func (s *TeacherService) CreateTeacher(ctx context.Context, req *connect.Request[api.CreateTeacherRequest]) (*connect.Response[api.TeacherResponse], error) {
	teacher, err := s.bo.CreateTeacher(ctx, backoffice.TeacherInput(req.Msg.TeacherFields))
	if err != nil {
		return nil, toConnect(err)
	}
	slog.Info("Teacher created", "teacher_id", teacher.ID, "name", teacher.Name)
	return connect.NewResponse(&api.TeacherResponse{Teacher: toTeacher(teacher)}), nil
}

func (s *TeacherService) GetTeacher(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.TeacherResponse], error) {
	teacher, err := s.bo.GetTeacher(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnect(err)
	}
	return connect.NewResponse(&api.TeacherResponse{Teacher: toTeacher(teacher)}), nil
}

func (s *TeacherService) ListTeachers(ctx context.Context, req *connect.Request[api.SearchRequest]) (*connect.Response[api.ListTeachersResponse], error) {
	teachers, err := s.bo.ListTeachers(ctx, req.Msg.Search)
	if err != nil {
		return nil, toConnect(err)
	}
	out := make([]*api.Teacher, len(teachers))
	for i := range teachers {
		out[i] = toTeacher(&teachers[i])
	}
	return connect.NewResponse(&api.ListTeachersResponse{Teachers: out}), nil
}

func (s *TeacherService) UpdateTeacher(ctx context.Context, req *connect.Request[api.UpdateTeacherRequest]) (*connect.Response[api.TeacherResponse], error) {
	teacher, err := s.bo.UpdateTeacher(ctx, req.Msg.ID, backoffice.TeacherUpdate(req.Msg.TeacherPatch))
	if err != nil {
		return nil, toConnect(err)
	}
	return connect.NewResponse(&api.TeacherResponse{Teacher: toTeacher(teacher)}), nil
}

func (s *TeacherService) DeleteTeacher(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error) {
	if err := s.bo.DeleteTeacher(ctx, req.Msg.ID); err != nil {
		return nil, toConnect(err)
	}
	slog.Info("Teacher deleted", "teacher_id", req.Msg.ID)
	return connect.NewResponse(&api.Empty{}), nil
}

func (s *TeacherService) SetGradeRate(ctx context.Context, req *connect.Request[api.SetGradeRateRequest]) (*connect.Response[api.TeacherResponse], error) {
	teacher, err := s.bo.SetGradeRate(ctx, req.Msg.TeacherID, req.Msg.Grade, req.Msg.Rate)
	if err != nil {
		return nil, toConnect(err)
	}
	return connect.NewResponse(&api.TeacherResponse{Teacher: toTeacher(teacher)}), nil
}

func (s *TeacherService) GetTeacherStats(ctx context.Context, req *connect.Request[api.StatsRequest]) (*connect.Response[api.TeacherStatsResponse], error) {
	r, err := backoffice.ParseRange(req.Msg.StartDate, req.Msg.EndDate)
	if err != nil {
		return nil, toConnect(err)
	}
	stats, err := s.bo.TeacherStats(ctx, req.Msg.ID, r)
	if err != nil {
		return nil, toConnect(err)
	}
	period := toPeriod(r)
	figures := toTeacherFigures(*stats)
	return connect.NewResponse(&api.TeacherStatsResponse{Period: &period, Stats: &figures}), nil
}
