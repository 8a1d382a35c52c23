package sqlstore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tutorbooks/internal/models"
	"github.com/mmynk/tutorbooks/internal/storage"
)

const studentColumns = `id, name, gender, birthdate, grade, parent, contact, balances, version, created_at, updated_at`

// CreateStudent persists a new student, generating its ID if unset.
func (q *Queries) CreateStudent(ctx context.Context, s *models.Student) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	s.CreatedAt, s.UpdatedAt = now, now
	if s.Balances == nil {
		s.Balances = models.Balances{}
	}

	_, err := q.exec(ctx, `
		INSERT INTO students (`+studentColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, s.ID, s.Name, s.Gender, s.Birthdate, s.Grade, s.Parent, s.Contact, s.Balances, s.Version, s.CreatedAt, s.UpdatedAt)
	return wrap(err, "insert student")
}

// GetStudent retrieves a student by ID.
func (q *Queries) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	var s models.Student
	if err := q.get(ctx, &s, `SELECT `+studentColumns+` FROM students WHERE id = ?`, id); err != nil {
		return nil, wrap(err, "get student "+id)
	}
	return &s, nil
}

// ListStudents returns students ordered by name.
func (q *Queries) ListStudents(ctx context.Context, f storage.StudentFilter) ([]models.Student, error) {
	var w where
	w.like(f.Search, "name", "parent")
	if f.Grade != "" {
		w.add("grade = ?", f.Grade)
	}

	students := []models.Student{}
	if err := q.selectAll(ctx, &students, `SELECT `+studentColumns+` FROM students`+w.String()+` ORDER BY name, id`, w.args...); err != nil {
		return nil, wrap(err, "list students")
	}
	return students, nil
}

// UpdateStudent writes the profile fields of a student.
func (q *Queries) UpdateStudent(ctx context.Context, s *models.Student) error {
	s.UpdatedAt = time.Now().Unix()
	err := q.execOne(ctx, `
		UPDATE students
		SET name = ?, gender = ?, birthdate = ?, grade = ?, parent = ?, contact = ?, updated_at = ?
		WHERE id = ?
	`, s.Name, s.Gender, s.Birthdate, s.Grade, s.Parent, s.Contact, s.UpdatedAt, s.ID)
	return wrap(err, "update student "+s.ID)
}

// SaveStudentBalances writes the balances guarded by the version read with the student.
func (q *Queries) SaveStudentBalances(ctx context.Context, s *models.Student) error {
	now := time.Now().Unix()
	err := q.execOne(ctx, `
		UPDATE students SET balances = ?, version = version + 1, updated_at = ?
		WHERE id = ? AND version = ?
	`, s.Balances, now, s.ID, s.Version)
	if errors.Is(err, storage.ErrNotFound) {
		return storage.ErrStale
	}
	if err != nil {
		return wrap(err, "save balances for student "+s.ID)
	}
	s.Version++
	s.UpdatedAt = now
	return nil
}

// DeleteStudent removes a student; payments and sessions cascade.
func (q *Queries) DeleteStudent(ctx context.Context, id string) error {
	// Explicit deletes keep the cascade working on connections without the foreign_keys pragma.
	if _, err := q.exec(ctx, `DELETE FROM sessions WHERE student_id = ?`, id); err != nil {
		return wrap(err, "delete sessions of student "+id)
	}
	if _, err := q.exec(ctx, `DELETE FROM payments WHERE student_id = ?`, id); err != nil {
		return wrap(err, "delete payments of student "+id)
	}
	return wrap(q.execOne(ctx, `DELETE FROM students WHERE id = ?`, id), "delete student "+id)
}

// ListGrades returns the distinct non-empty grades in use, sorted.
func (q *Queries) ListGrades(ctx context.Context) ([]string, error) {
	grades := []string{}
	if err := q.selectAll(ctx, &grades, `SELECT DISTINCT grade FROM students WHERE grade <> '' ORDER BY grade`); err != nil {
		return nil, wrap(err, "list grades")
	}
	return grades, nil
}

// CountStudents returns the number of students.
func (q *Queries) CountStudents(ctx context.Context) (int, error) {
	n, err := q.count(ctx, `SELECT COUNT(*) FROM students`)
	return n, wrap(err, "count students")
}
