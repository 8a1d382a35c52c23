package backoffice

import (
	"context"

	"github.com/mmynk/tutorbooks/internal/models"
	"github.com/mmynk/tutorbooks/internal/storage"
)

// refs holds every student, teacher and course keyed by ID.
type refs struct {
	students map[string]*models.Student
	teachers map[string]*models.Teacher
	courses  map[string]*models.Course
}

func loadRefs(ctx context.Context, q storage.Queries) (*refs, error) {
	students, err := q.ListStudents(ctx, storage.StudentFilter{})
	if err != nil {
		return nil, err
	}
	teachers, err := q.ListTeachers(ctx, storage.NameFilter{})
	if err != nil {
		return nil, err
	}
	courses, err := q.ListCourses(ctx, storage.NameFilter{})
	if err != nil {
		return nil, err
	}

	r := &refs{
		students: make(map[string]*models.Student, len(students)),
		teachers: make(map[string]*models.Teacher, len(teachers)),
		courses:  make(map[string]*models.Course, len(courses)),
	}
	for i := range students {
		r.students[students[i].ID] = &students[i]
	}
	for i := range teachers {
		r.teachers[teachers[i].ID] = &teachers[i]
	}
	for i := range courses {
		r.courses[courses[i].ID] = &courses[i]
	}
	return r, nil
}

func (r *refs) studentName(id string) string {
	if s := r.students[id]; s != nil {
		return s.Name
	}
	return ""
}

func (r *refs) teacherName(id string) string {
	if t := r.teachers[id]; t != nil {
		return t.Name
	}
	return ""
}

func (r *refs) courseName(id string) string {
	if c := r.courses[id]; c != nil {
		return c.Name
	}
	return ""
}
