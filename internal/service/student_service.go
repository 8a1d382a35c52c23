package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/tutorbooks/internal/backoffice"
	"github.com/mmynk/tutorbooks/internal/models"
	"github.com/mmynk/tutorbooks/internal/storage"
	"github.com/mmynk/tutorbooks/pkg/api"
	"github.com/mmynk/tutorbooks/pkg/api/apiconnect"
)

// StudentService implements the Connect StudentService.
type StudentService struct {
	bo *backoffice.Service
}

var _ apiconnect.StudentServiceHandler = (*StudentService)(nil)

// NewStudentService creates a StudentService backed by bo.
func NewStudentService(bo *backoffice.Service) *StudentService {
	return &StudentService{bo: bo}
}

func (s *StudentService) student(st *models.Student) *api.Student {
	return toStudent(st, s.bo.Today())
}

func (s *StudentService) CreateStudent(ctx context.Context, req *connect.Request[api.CreateStudentRequest]) (*connect.Response[api.StudentResponse], error) {
	student, err := s.bo.CreateStudent(ctx, backoffice.StudentInput(req.Msg.StudentFields))
	if err != nil {
		return nil, toConnect(err)
	}
	slog.Info("Student created", "student_id", student.ID, "name", student.Name)
	return connect.NewResponse(&api.StudentResponse{Student: s.student(student)}), nil
}

func (s *StudentService) GetStudent(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.StudentResponse], error) {
	student, err := s.bo.GetStudent(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnect(err)
	}
	return connect.NewResponse(&api.StudentResponse{Student: s.student(student)}), nil
}

func (s *StudentService) ListStudents(ctx context.Context, req *connect.Request[api.ListStudentsRequest]) (*connect.Response[api.ListStudentsResponse], error) {
	students, err := s.bo.ListStudents(ctx, storage.StudentFilter{Search: req.Msg.Search, Grade: req.Msg.Grade})
	if err != nil {
		return nil, toConnect(err)
	}
	out := make([]*api.Student, len(students))
	for i := range students {
		out[i] = s.student(&students[i])
	}
	return connect.NewResponse(&api.ListStudentsResponse{Students: out}), nil
}

func (s *StudentService) UpdateStudent(ctx context.Context, req *connect.Request[api.UpdateStudentRequest]) (*connect.Response[api.StudentResponse], error) {
	student, err := s.bo.UpdateStudent(ctx, req.Msg.ID, backoffice.StudentUpdate(req.Msg.StudentPatch))
	if err != nil {
		return nil, toConnect(err)
	}
	return connect.NewResponse(&api.StudentResponse{Student: s.student(student)}), nil
}

func (s *StudentService) DeleteStudent(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error) {
	if err := s.bo.DeleteStudent(ctx, req.Msg.ID); err != nil {
		return nil, toConnect(err)
	}
	slog.Info("Student deleted", "student_id", req.Msg.ID)
	return connect.NewResponse(&api.Empty{}), nil
}

func (s *StudentService) ListGrades(ctx context.Context, req *connect.Request[api.ListGradesRequest]) (*connect.Response[api.ListGradesResponse], error) {
	grades, err := s.bo.ListGrades(ctx)
	if err != nil {
		return nil, toConnect(err)
	}
	return connect.NewResponse(&api.ListGradesResponse{Grades: grades}), nil
}

func (s *StudentService) GetStudentBalance(ctx context.Context, req *connect.Request[api.GetStudentBalanceRequest]) (*connect.Response[api.BalanceResponse], error) {
	view, err := s.bo.GetStudentBalance(ctx, req.Msg.StudentID, req.Msg.CourseName)
	if err != nil {
		return nil, toConnect(err)
	}
	balance := api.Balance(*view)
	return connect.NewResponse(&api.BalanceResponse{Balance: &balance}), nil
}

func (s *StudentService) AdjustStudentBalance(ctx context.Context, req *connect.Request[api.AdjustStudentBalanceRequest]) (*connect.Response[api.AdjustStudentBalanceResponse], error) {
	adj, err := s.bo.AdjustStudentBalance(ctx, req.Msg.StudentID, req.Msg.CourseName, req.Msg.HoursChange)
	if err != nil {
		return nil, toConnect(err)
	}
	slog.Info("Balance adjusted",
		"student_id", adj.StudentID,
		"course", adj.CourseName,
		"old_balance", adj.OldBalance,
		"new_balance", adj.Balance,
	)
	balance := api.Balance(adj.BalanceView)
	return connect.NewResponse(&api.AdjustStudentBalanceResponse{
		Balance:     &balance,
		OldBalance:  adj.OldBalance,
		HoursChange: adj.HoursChange,
	}), nil
}
