package models

// Student represents a learner and the hours they have left per course.
type Student struct {
	// ID is the unique identifier for the student (UUID format).
	ID string `db:"id" json:"id"`

	Name string `db:"name" json:"name"`

	// Gender is "M" or "F".
	Gender string `db:"gender" json:"gender"`

	Birthdate Date `db:"birthdate" json:"birthdate"`

	// Grade is the enrollment level used as the key into a teacher's rate matrix.
	// Empty means the student has no grade.
	Grade string `db:"grade" json:"grade"`

	Parent  string `db:"parent" json:"parent"`
	Contact string `db:"contact" json:"contact"`

	// Balances holds purchased-but-unused hours per course name.
	Balances Balances `db:"balances" json:"balances"`

	// Version is bumped on every balance write and used as an optimistic lock.
	Version int64 `db:"version" json:"-"`

	CreatedAt int64 `db:"created_at" json:"created_at"`
	UpdatedAt int64 `db:"updated_at" json:"updated_at"`
}

// Age returns the student's age in whole years on the given day.
func (s *Student) Age(on Date) int {
	if s.Birthdate.IsZero() {
		return 0
	}
	born, now := s.Birthdate.Time(), on.Time()
	age := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	return age
}
