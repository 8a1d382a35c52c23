package backoffice

import (
	"context"
	"errors"
	"strings"

	"github.com/mmynk/tutorbooks/internal/models"
	"github.com/mmynk/tutorbooks/internal/storage"
)

// TeacherInput holds the fields of a new teacher.
type TeacherInput struct {
	Name string `json:"name" validate:"notblank,max=100"`
	// DefaultRate defaults to models.DefaultTeacherRate when nil.
	DefaultRate *float64           `json:"default_rate" validate:"omitnil,gt=0"`
	GradeRates  map[string]float64 `json:"grade_rates" validate:"dive,keys,notblank,endkeys,gte=0"`
}

// TeacherUpdate changes the fields that are set.
type TeacherUpdate struct {
	Name        *string            `json:"name" validate:"omitnil,notblank,max=100"`
	DefaultRate *float64           `json:"default_rate" validate:"omitnil,gt=0"`
	GradeRates  map[string]float64 `json:"grade_rates" validate:"omitnil,dive,keys,notblank,endkeys,gte=0"`
}

// CreateTeacher registers a new teacher. Names must be unique.
func (s *Service) CreateTeacher(ctx context.Context, in TeacherInput) (*models.Teacher, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if err := s.ensureTeacherNameFree(ctx, name, ""); err != nil {
		return nil, err
	}

	teacher := &models.Teacher{Name: name, DefaultRate: models.DefaultTeacherRate, GradeRates: models.GradeRates{}}
	if in.DefaultRate != nil {
		teacher.DefaultRate = *in.DefaultRate
	}
	for grade, rate := range in.GradeRates {
		teacher.GradeRates.Set(strings.TrimSpace(grade), rate)
	}

	if err := s.store.CreateTeacher(ctx, teacher); err != nil {
		return nil, fromStore(err, "teacher", teacher.ID)
	}
	return teacher, nil
}

// GetTeacher returns a teacher by ID.
func (s *Service) GetTeacher(ctx context.Context, id string) (*models.Teacher, error) {
	teacher, err := s.store.GetTeacher(ctx, id)
	if err != nil {
		return nil, fromStore(err, "teacher", id)
	}
	return teacher, nil
}

// ListTeachers returns teachers whose name matches search, ordered by name.
func (s *Service) ListTeachers(ctx context.Context, search string) ([]models.Teacher, error) {
	teachers, err := s.store.ListTeachers(ctx, storage.NameFilter{Search: search})
	if err != nil {
		return nil, fromStore(err, "teachers", "")
	}
	return teachers, nil
}

// UpdateTeacher changes a teacher. A non-nil GradeRates replaces the whole matrix.
func (s *Service) UpdateTeacher(ctx context.Context, id string, in TeacherUpdate) (*models.Teacher, error) {
	if err := check(in); err != nil {
		return nil, err
	}

	teacher, err := s.store.GetTeacher(ctx, id)
	if err != nil {
		return nil, fromStore(err, "teacher", id)
	}
	if in.Name != nil {
		name := *trimmed(in.Name)
		if name != teacher.Name {
			if err := s.ensureTeacherNameFree(ctx, name, id); err != nil {
				return nil, err
			}
		}
		teacher.Name = name
	}
	if in.DefaultRate != nil {
		teacher.DefaultRate = *in.DefaultRate
	}
	if in.GradeRates != nil {
		teacher.GradeRates = models.GradeRates{}
		for grade, rate := range in.GradeRates {
			teacher.GradeRates.Set(strings.TrimSpace(grade), rate)
		}
	}

	if err := s.store.UpdateTeacher(ctx, teacher); err != nil {
		return nil, fromStore(err, "teacher", id)
	}
	return teacher, nil
}

// SetGradeRate sets the teacher's rate for one grade.
func (s *Service) SetGradeRate(ctx context.Context, id, grade string, rate float64) (*models.Teacher, error) {
	grade = strings.TrimSpace(grade)
	if grade == "" {
		return nil, invalidField("grade", "grade cannot be blank")
	}
	if rate < 0 {
		return nil, invalidField("rate", "rate cannot be negative")
	}

	teacher, err := s.store.GetTeacher(ctx, id)
	if err != nil {
		return nil, fromStore(err, "teacher", id)
	}
	teacher.GradeRates.Set(grade, rate)
	if err := s.store.UpdateTeacher(ctx, teacher); err != nil {
		return nil, fromStore(err, "teacher", id)
	}
	return teacher, nil
}

// DeleteTeacher removes a teacher that no course, payment or session refers to.
func (s *Service) DeleteTeacher(ctx context.Context, id string) error {
	return s.inTx(ctx, "teacher", id, func(q storage.Queries, _ *[]ledgerChange) error {
		if _, err := q.GetTeacher(ctx, id); err != nil {
			return fromStore(err, "teacher", id)
		}
		courses, err := q.CountCoursesByTeacher(ctx, id)
		if err != nil {
			return err
		}
		payments, err := q.CountPayments(ctx, storage.FactFilter{TeacherID: id})
		if err != nil {
			return err
		}
		sessions, err := q.CountSessions(ctx, storage.FactFilter{TeacherID: id})
		if err != nil {
			return err
		}
		if courses+payments+sessions > 0 {
			return conflict("cannot delete teacher with associated courses, payments, or sessions")
		}
		return q.DeleteTeacher(ctx, id)
	})
}

func (s *Service) ensureTeacherNameFree(ctx context.Context, name, selfID string) error {
	existing, err := s.store.GetTeacherByName(ctx, name)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return nil
	case err != nil:
		return fromStore(err, "teacher", name)
	case existing.ID != selfID:
		return invalidField("name", "teacher with this name already exists")
	}
	return nil
}
