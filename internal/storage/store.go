// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/tutorbooks/internal/models"
)

var (
	// ErrNotFound is returned when a record with the requested ID does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a unique key.
	ErrDuplicate = errors.New("duplicate key")
	// ErrReferenced is returned when a delete or write violates a foreign key.
	ErrReferenced = errors.New("record is referenced by other records")
	// ErrStale is returned when a student's balances changed since they were read.
	ErrStale = errors.New("record was modified concurrently")
)

// StudentFilter narrows ListStudents. Zero fields match everything.
type StudentFilter struct {
	// Search matches name or parent, case-insensitively.
	Search string
	Grade  string
}

// NameFilter narrows ListTeachers and ListCourses by a case-insensitive name match.
type NameFilter struct {
	Search string
}

// FactFilter narrows sessions and payments by foreign key and date.
type FactFilter struct {
	StudentID string
	CourseID  string
	TeacherID string
	Range     models.DateRange
}

// ExpenseFilter narrows ListExpenses.
type ExpenseFilter struct {
	Category string
	// Search matches item or description, case-insensitively.
	Search string
	Range  models.DateRange
}

// Queries is the set of record operations available both on a Store and
// inside a unit of work. List methods return records ordered newest first for
// dated facts and by name for everything else.
type Queries interface {
	CreateStudent(ctx context.Context, s *models.Student) error
	GetStudent(ctx context.Context, id string) (*models.Student, error)
	ListStudents(ctx context.Context, f StudentFilter) ([]models.Student, error)
	// UpdateStudent writes profile fields. Balances are left untouched.
	UpdateStudent(ctx context.Context, s *models.Student) error
	// SaveStudentBalances writes s.Balances if the stored version still equals
	// s.Version, then increments s.Version. It returns ErrStale otherwise.
	SaveStudentBalances(ctx context.Context, s *models.Student) error
	// DeleteStudent removes the student together with their payments and sessions.
	DeleteStudent(ctx context.Context, id string) error
	ListGrades(ctx context.Context) ([]string, error)
	CountStudents(ctx context.Context) (int, error)

	CreateTeacher(ctx context.Context, t *models.Teacher) error
	GetTeacher(ctx context.Context, id string) (*models.Teacher, error)
	GetTeacherByName(ctx context.Context, name string) (*models.Teacher, error)
	ListTeachers(ctx context.Context, f NameFilter) ([]models.Teacher, error)
	UpdateTeacher(ctx context.Context, t *models.Teacher) error
	DeleteTeacher(ctx context.Context, id string) error
	CountTeachers(ctx context.Context) (int, error)

	CreateCourse(ctx context.Context, c *models.Course) error
	GetCourse(ctx context.Context, id string) (*models.Course, error)
	GetCourseByName(ctx context.Context, name string) (*models.Course, error)
	ListCourses(ctx context.Context, f NameFilter) ([]models.Course, error)
	UpdateCourse(ctx context.Context, c *models.Course) error
	DeleteCourse(ctx context.Context, id string) error
	CountCourses(ctx context.Context) (int, error)
	CountCoursesByTeacher(ctx context.Context, teacherID string) (int, error)

	CreateSession(ctx context.Context, s *models.Session) error
	GetSession(ctx context.Context, id string) (*models.Session, error)
	ListSessions(ctx context.Context, f FactFilter) ([]models.Session, error)
	UpdateSession(ctx context.Context, s *models.Session) error
	DeleteSession(ctx context.Context, id string) error
	CountSessions(ctx context.Context, f FactFilter) (int, error)

	CreatePayment(ctx context.Context, p *models.Payment) error
	GetPayment(ctx context.Context, id string) (*models.Payment, error)
	ListPayments(ctx context.Context, f FactFilter) ([]models.Payment, error)
	UpdatePayment(ctx context.Context, p *models.Payment) error
	DeletePayment(ctx context.Context, id string) error
	CountPayments(ctx context.Context, f FactFilter) (int, error)

	CreateExpense(ctx context.Context, e *models.Expense) error
	GetExpense(ctx context.Context, id string) (*models.Expense, error)
	ListExpenses(ctx context.Context, f ExpenseFilter) ([]models.Expense, error)
	UpdateExpense(ctx context.Context, e *models.Expense) error
	DeleteExpense(ctx context.Context, id string) error
	ListExpenseCategories(ctx context.Context) ([]string, error)

	CreateStaff(ctx context.Context, s *models.Staff) error
	GetStaff(ctx context.Context, id string) (*models.Staff, error)
	GetStaffByEmail(ctx context.Context, email string) (*models.Staff, error)
}

// Store defines the interface for back-office storage.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	Queries

	// WithTx runs fn inside a transaction. The transaction commits when fn
	// returns nil and rolls back on any error or panic.
	WithTx(ctx context.Context, fn func(q Queries) error) error

	// Close releases any resources held by the store.
	Close() error
}
