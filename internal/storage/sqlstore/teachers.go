package sqlstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tutorbooks/internal/models"
	"github.com/mmynk/tutorbooks/internal/storage"
)

const teacherColumns = `id, name, default_rate, grade_rates, created_at, updated_at`

// CreateTeacher persists a new teacher, generating its ID if unset.
func (q *Queries) CreateTeacher(ctx context.Context, t *models.Teacher) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	t.CreatedAt, t.UpdatedAt = now, now
	if t.GradeRates == nil {
		t.GradeRates = models.GradeRates{}
	}

	_, err := q.exec(ctx, `
		INSERT INTO teachers (`+teacherColumns+`) VALUES (?, ?, ?, ?, ?, ?)
	`, t.ID, t.Name, t.DefaultRate, t.GradeRates, t.CreatedAt, t.UpdatedAt)
	return wrap(err, "insert teacher")
}

// GetTeacher retrieves a teacher by ID.
func (q *Queries) GetTeacher(ctx context.Context, id string) (*models.Teacher, error) {
	var t models.Teacher
	if err := q.get(ctx, &t, `SELECT `+teacherColumns+` FROM teachers WHERE id = ?`, id); err != nil {
		return nil, wrap(err, "get teacher "+id)
	}
	return &t, nil
}

// GetTeacherByName retrieves a teacher by exact name.
func (q *Queries) GetTeacherByName(ctx context.Context, name string) (*models.Teacher, error) {
	var t models.Teacher
	if err := q.get(ctx, &t, `SELECT `+teacherColumns+` FROM teachers WHERE name = ?`, name); err != nil {
		return nil, wrap(err, "get teacher by name")
	}
	return &t, nil
}

// ListTeachers returns teachers ordered by name.
func (q *Queries) ListTeachers(ctx context.Context, f storage.NameFilter) ([]models.Teacher, error) {
	var w where
	w.like(f.Search, "name")

	teachers := []models.Teacher{}
	if err := q.selectAll(ctx, &teachers, `SELECT `+teacherColumns+` FROM teachers`+w.String()+` ORDER BY name`, w.args...); err != nil {
		return nil, wrap(err, "list teachers")
	}
	return teachers, nil
}

// UpdateTeacher writes every mutable teacher field.
func (q *Queries) UpdateTeacher(ctx context.Context, t *models.Teacher) error {
	t.UpdatedAt = time.Now().Unix()
	err := q.execOne(ctx, `
		UPDATE teachers SET name = ?, default_rate = ?, grade_rates = ?, updated_at = ? WHERE id = ?
	`, t.Name, t.DefaultRate, t.GradeRates, t.UpdatedAt, t.ID)
	return wrap(err, "update teacher "+t.ID)
}

// DeleteTeacher removes a teacher.
func (q *Queries) DeleteTeacher(ctx context.Context, id string) error {
	return wrap(q.execOne(ctx, `DELETE FROM teachers WHERE id = ?`, id), "delete teacher "+id)
}

// CountTeachers returns the number of teachers.
func (q *Queries) CountTeachers(ctx context.Context) (int, error) {
	n, err := q.count(ctx, `SELECT COUNT(*) FROM teachers`)
	return n, wrap(err, "count teachers")
}
