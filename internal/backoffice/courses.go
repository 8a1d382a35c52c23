package backoffice

import (
	"context"
	"errors"
	"strings"

	"github.com/mmynk/tutorbooks/internal/models"
	"github.com/mmynk/tutorbooks/internal/storage"
)

// CourseInput holds the fields of a new course.
type CourseInput struct {
	Name      string  `json:"name" validate:"notblank,max=100"`
	BaseRate  float64 `json:"base_rate" validate:"gt=0"`
	TeacherID string  `json:"teacher_id"`
}

// CourseUpdate changes the fields that are set. An empty TeacherID unassigns the teacher.
type CourseUpdate struct {
	Name      *string  `json:"name" validate:"omitnil,notblank,max=100"`
	BaseRate  *float64 `json:"base_rate" validate:"omitnil,gt=0"`
	TeacherID *string  `json:"teacher_id"`
}

// CreateCourse registers a new course. Names are trimmed and must be unique.
func (s *Service) CreateCourse(ctx context.Context, in CourseInput) (*models.Course, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if err := s.ensureCourseNameFree(ctx, s.store, name, ""); err != nil {
		return nil, err
	}

	course := &models.Course{Name: name, BaseRate: in.BaseRate}
	if id := strings.TrimSpace(in.TeacherID); id != "" {
		if _, err := s.store.GetTeacher(ctx, id); err != nil {
			return nil, fromStore(err, "teacher", id)
		}
		course.TeacherID = &id
	}

	if err := s.store.CreateCourse(ctx, course); err != nil {
		return nil, fromStore(err, "course", course.ID)
	}
	return course, nil
}

// GetCourse returns a course by ID.
func (s *Service) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	course, err := s.store.GetCourse(ctx, id)
	if err != nil {
		return nil, fromStore(err, "course", id)
	}
	return course, nil
}

// ListCourses returns courses whose name matches search, ordered by name.
func (s *Service) ListCourses(ctx context.Context, search string) ([]models.Course, error) {
	courses, err := s.store.ListCourses(ctx, storage.NameFilter{Search: search})
	if err != nil {
		return nil, fromStore(err, "courses", "")
	}
	return courses, nil
}

// UpdateCourse changes a course. Renaming a course moves every student's
// balance to the new name in the same unit of work.
func (s *Service) UpdateCourse(ctx context.Context, id string, in CourseUpdate) (*models.Course, error) {
	if err := check(in); err != nil {
		return nil, err
	}

	var course *models.Course
	err := s.inTx(ctx, "course", id, func(q storage.Queries, _ *[]ledgerChange) error {
		var err error
		course, err = q.GetCourse(ctx, id)
		if err != nil {
			return fromStore(err, "course", id)
		}
		oldName := course.Name

		if in.Name != nil {
			name := *trimmed(in.Name)
			if name != oldName {
				if err := s.ensureCourseNameFree(ctx, q, name, id); err != nil {
					return err
				}
			}
			course.Name = name
		}
		if in.BaseRate != nil {
			course.BaseRate = *in.BaseRate
		}
		if in.TeacherID != nil {
			teacherID := strings.TrimSpace(*in.TeacherID)
			if teacherID == "" {
				course.TeacherID = nil
			} else {
				if _, err := q.GetTeacher(ctx, teacherID); err != nil {
					return fromStore(err, "teacher", teacherID)
				}
				course.TeacherID = &teacherID
			}
		}

		if err := q.UpdateCourse(ctx, course); err != nil {
			return fromStore(err, "course", id)
		}
		if course.Name != oldName {
			return renameBalances(ctx, q, oldName, course.Name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return course, nil
}

// renameBalances re-keys every student's balance held under from.
func renameBalances(ctx context.Context, q storage.Queries, from, to string) error {
	students, err := q.ListStudents(ctx, storage.StudentFilter{})
	if err != nil {
		return err
	}
	for i := range students {
		student := &students[i]
		if !student.Balances.Rename(from, to) {
			continue
		}
		if err := q.SaveStudentBalances(ctx, student); err != nil {
			return fromStore(err, "student", student.ID)
		}
	}
	return nil
}

// DeleteCourse removes a course that no payment or session refers to.
func (s *Service) DeleteCourse(ctx context.Context, id string) error {
	return s.inTx(ctx, "course", id, func(q storage.Queries, _ *[]ledgerChange) error {
		if _, err := q.GetCourse(ctx, id); err != nil {
			return fromStore(err, "course", id)
		}
		payments, err := q.CountPayments(ctx, storage.FactFilter{CourseID: id})
		if err != nil {
			return err
		}
		sessions, err := q.CountSessions(ctx, storage.FactFilter{CourseID: id})
		if err != nil {
			return err
		}
		if payments+sessions > 0 {
			return conflict("cannot delete course with associated payments or sessions")
		}
		return q.DeleteCourse(ctx, id)
	})
}

func (s *Service) ensureCourseNameFree(ctx context.Context, q storage.Queries, name, selfID string) error {
	existing, err := q.GetCourseByName(ctx, name)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return nil
	case err != nil:
		return fromStore(err, "course", name)
	case existing.ID != selfID:
		return invalidField("name", "course name already exists")
	}
	return nil
}
