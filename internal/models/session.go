package models

// MaxSessionHours is the longest session that can be recorded.
const MaxSessionHours = 12.0

// Session represents one taught slot. Its hours were debited from the
// student's balance for the course when it was recorded.
type Session struct {
	ID        string `db:"id" json:"id"`
	Date      Date   `db:"date" json:"date"`
	StudentID string `db:"student_id" json:"student_id"`
	CourseID  string `db:"course_id" json:"course_id"`
	TeacherID string `db:"teacher_id" json:"teacher_id"`

	// StartTime and EndTime are "HH:MM" on a 24-hour clock.
	StartTime string `db:"start_time" json:"start_time"`
	EndTime   string `db:"end_time" json:"end_time"`

	// Hours is derived from StartTime and EndTime when the session is saved.
	Hours float64 `db:"hours" json:"hours"`

	Notes string `db:"notes" json:"notes"`

	CreatedAt int64 `db:"created_at" json:"created_at"`
	UpdatedAt int64 `db:"updated_at" json:"updated_at"`
}
