package sqlstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tutorbooks/internal/models"
	"github.com/mmynk/tutorbooks/internal/storage"
)

const sessionColumns = `id, date, student_id, course_id, teacher_id, start_time, end_time, hours, notes, created_at, updated_at`

func factWhere(f storage.FactFilter) *where {
	w := &where{}
	if f.StudentID != "" {
		w.add("student_id = ?", f.StudentID)
	}
	if f.CourseID != "" {
		w.add("course_id = ?", f.CourseID)
	}
	if f.TeacherID != "" {
		w.add("teacher_id = ?", f.TeacherID)
	}
	w.dateRange("date", f.Range)
	return w
}

// CreateSession persists a new session, generating its ID if unset.
func (q *Queries) CreateSession(ctx context.Context, s *models.Session) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	s.CreatedAt, s.UpdatedAt = now, now

	_, err := q.exec(ctx, `
		INSERT INTO sessions (`+sessionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, s.ID, s.Date, s.StudentID, s.CourseID, s.TeacherID, s.StartTime, s.EndTime, s.Hours, s.Notes, s.CreatedAt, s.UpdatedAt)
	return wrap(err, "insert session")
}

// GetSession retrieves a session by ID.
func (q *Queries) GetSession(ctx context.Context, id string) (*models.Session, error) {
	var s models.Session
	if err := q.get(ctx, &s, `SELECT `+sessionColumns+` FROM sessions WHERE id = ?`, id); err != nil {
		return nil, wrap(err, "get session "+id)
	}
	return &s, nil
}

// ListSessions returns sessions newest first.
func (q *Queries) ListSessions(ctx context.Context, f storage.FactFilter) ([]models.Session, error) {
	w := factWhere(f)
	sessions := []models.Session{}
	if err := q.selectAll(ctx, &sessions, `SELECT `+sessionColumns+` FROM sessions`+w.String()+` ORDER BY date DESC, start_time DESC, id`, w.args...); err != nil {
		return nil, wrap(err, "list sessions")
	}
	return sessions, nil
}

// UpdateSession writes every mutable session field.
func (q *Queries) UpdateSession(ctx context.Context, s *models.Session) error {
	s.UpdatedAt = time.Now().Unix()
	err := q.execOne(ctx, `
		UPDATE sessions
		SET date = ?, start_time = ?, end_time = ?, hours = ?, notes = ?, updated_at = ?
		WHERE id = ?
	`, s.Date, s.StartTime, s.EndTime, s.Hours, s.Notes, s.UpdatedAt, s.ID)
	return wrap(err, "update session "+s.ID)
}

// DeleteSession removes a session.
func (q *Queries) DeleteSession(ctx context.Context, id string) error {
	return wrap(q.execOne(ctx, `DELETE FROM sessions WHERE id = ?`, id), "delete session "+id)
}

// CountSessions returns the number of sessions matching f.
func (q *Queries) CountSessions(ctx context.Context, f storage.FactFilter) (int, error) {
	w := factWhere(f)
	n, err := q.count(ctx, `SELECT COUNT(*) FROM sessions`+w.String(), w.args...)
	return n, wrap(err, "count sessions")
}
