package models

// Course represents a named offering that hours are purchased and taught against.
type Course struct {
	// ID is the unique identifier for the course (UUID format).
	ID string `db:"id" json:"id"`

	// Name is unique and is the key of Student.Balances.
	Name string `db:"name" json:"name"`

	// BaseRate is the fallback hourly rate used only when no teacher is assigned.
	BaseRate float64 `db:"base_rate" json:"base_rate"`

	// TeacherID is the owning teacher, nil when unassigned.
	TeacherID *string `db:"teacher_id" json:"teacher_id"`

	CreatedAt int64 `db:"created_at" json:"created_at"`
	UpdatedAt int64 `db:"updated_at" json:"updated_at"`
}

// HasTeacher reports whether a teacher is assigned.
func (c *Course) HasTeacher() bool {
	return c.TeacherID != nil && *c.TeacherID != ""
}
