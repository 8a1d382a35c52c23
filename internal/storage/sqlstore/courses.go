package sqlstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tutorbooks/internal/models"
	"github.com/mmynk/tutorbooks/internal/storage"
)

const courseColumns = `id, name, base_rate, teacher_id, created_at, updated_at`

func courseTeacherID(c *models.Course) any {
	if !c.HasTeacher() {
		return nil
	}
	return *c.TeacherID
}

// CreateCourse persists a new course, generating its ID if unset.
func (q *Queries) CreateCourse(ctx context.Context, c *models.Course) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	c.CreatedAt, c.UpdatedAt = now, now

	_, err := q.exec(ctx, `
		INSERT INTO courses (`+courseColumns+`) VALUES (?, ?, ?, ?, ?, ?)
	`, c.ID, c.Name, c.BaseRate, courseTeacherID(c), c.CreatedAt, c.UpdatedAt)
	return wrap(err, "insert course")
}

// GetCourse retrieves a course by ID.
func (q *Queries) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	var c models.Course
	if err := q.get(ctx, &c, `SELECT `+courseColumns+` FROM courses WHERE id = ?`, id); err != nil {
		return nil, wrap(err, "get course "+id)
	}
	return &c, nil
}

// GetCourseByName retrieves a course by exact name.
func (q *Queries) GetCourseByName(ctx context.Context, name string) (*models.Course, error) {
	var c models.Course
	if err := q.get(ctx, &c, `SELECT `+courseColumns+` FROM courses WHERE name = ?`, name); err != nil {
		return nil, wrap(err, "get course by name")
	}
	return &c, nil
}

// ListCourses returns courses ordered by name.
func (q *Queries) ListCourses(ctx context.Context, f storage.NameFilter) ([]models.Course, error) {
	var w where
	w.like(f.Search, "name")

	courses := []models.Course{}
	if err := q.selectAll(ctx, &courses, `SELECT `+courseColumns+` FROM courses`+w.String()+` ORDER BY name`, w.args...); err != nil {
		return nil, wrap(err, "list courses")
	}
	return courses, nil
}

// UpdateCourse writes every mutable course field.
func (q *Queries) UpdateCourse(ctx context.Context, c *models.Course) error {
	c.UpdatedAt = time.Now().Unix()
	err := q.execOne(ctx, `
		UPDATE courses SET name = ?, base_rate = ?, teacher_id = ?, updated_at = ? WHERE id = ?
	`, c.Name, c.BaseRate, courseTeacherID(c), c.UpdatedAt, c.ID)
	return wrap(err, "update course "+c.ID)
}

// DeleteCourse removes a course.
func (q *Queries) DeleteCourse(ctx context.Context, id string) error {
	return wrap(q.execOne(ctx, `DELETE FROM courses WHERE id = ?`, id), "delete course "+id)
}

// CountCourses returns the number of courses.
func (q *Queries) CountCourses(ctx context.Context) (int, error) {
	n, err := q.count(ctx, `SELECT COUNT(*) FROM courses`)
	return n, wrap(err, "count courses")
}

// CountCoursesByTeacher returns the number of courses assigned to a teacher.
func (q *Queries) CountCoursesByTeacher(ctx context.Context, teacherID string) (int, error) {
	n, err := q.count(ctx, `SELECT COUNT(*) FROM courses WHERE teacher_id = ?`, teacherID)
	return n, wrap(err, "count courses of teacher "+teacherID)
}
