package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/tutorbooks/internal/backoffice"
	"github.com/mmynk/tutorbooks/pkg/api"
	"github.com/mmynk/tutorbooks/pkg/api/apiconnect"
)

// CourseService implements the Connect CourseService.
type CourseService struct {
	bo *backoffice.Service
}

var _ apiconnect.CourseServiceHandler = (*CourseService)(nil)

// NewCourseService creates a CourseService backed by bo.
func NewCourseService(bo *backoffice.Service) *CourseService {
	return &CourseService{bo: bo}
}

func (s *CourseService) CreateCourse(ctx context.Context, req *connect.Request[api.CreateCourseRequest]) (*connect.Response[api.CourseResponse], error) {
	course, err := s.bo.CreateCourse(ctx, backoffice.CourseInput(req.Msg.CourseFields))
	if err != nil {
		return nil, toConnect(err)
	}
	slog.Info("Course created", "course_id", course.ID, "name", course.Name)
	return connect.NewResponse(&api.CourseResponse{Course: toCourse(course)}), nil
}

func (s *CourseService) GetCourse(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.CourseResponse], error) {
	course, err := s.bo.GetCourse(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnect(err)
	}
	return connect.NewResponse(&api.CourseResponse{Course: toCourse(course)}), nil
}

func (s *CourseService) ListCourses(ctx context.Context, req *connect.Request[api.SearchRequest]) (*connect.Response[api.ListCoursesResponse], error) {
	courses, err := s.bo.ListCourses(ctx, req.Msg.Search)
	if err != nil {
		return nil, toConnect(err)
	}
	out := make([]*api.Course, len(courses))
	for i := range courses {
		out[i] = toCourse(&courses[i])
	}
	return connect.NewResponse(&api.ListCoursesResponse{Courses: out}), nil
}

func (s *CourseService) UpdateCourse(ctx context.Context, req *connect.Request[api.UpdateCourseRequest]) (*connect.Response[api.CourseResponse], error) {
	course, err := s.bo.UpdateCourse(ctx, req.Msg.ID, backoffice.CourseUpdate(req.Msg.CoursePatch))
	if err != nil {
		return nil, toConnect(err)
	}
	slog.Info("Course updated", "course_id", course.ID, "name", course.Name)
	return connect.NewResponse(&api.CourseResponse{Course: toCourse(course)}), nil
}

func (s *CourseService) DeleteCourse(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error) {
	if err := s.bo.DeleteCourse(ctx, req.Msg.ID); err != nil {
		return nil, toConnect(err)
	}
	slog.Info("Course deleted", "course_id", req.Msg.ID)
	return connect.NewResponse(&api.Empty{}), nil
}

func (s *CourseService) GetCourseStats(ctx context.Context, req *connect.Request[api.StatsRequest]) (*connect.Response[api.CourseStatsResponse], error) {
	r, err := backoffice.ParseRange(req.Msg.StartDate, req.Msg.EndDate)
	if err != nil {
		return nil, toConnect(err)
	}
	stats, err := s.bo.CourseStats(ctx, req.Msg.ID, r)
	if err != nil {
		return nil, toConnect(err)
	}
	period := toPeriod(stats.Period)
	figures := toCourseFigures(stats.CourseFigures)
	return connect.NewResponse(&api.CourseStatsResponse{
		Period:               &period,
		Stats:                &figures,
		BaseRate:             stats.BaseRate,
		SessionCount:         stats.SessionCount,
		AverageSessionLength: stats.AverageSessionLength,
	}), nil
}
