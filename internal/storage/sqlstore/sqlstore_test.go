package sqlstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmynk/tutorbooks/internal/models"
	"github.com/mmynk/tutorbooks/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func seedRefs(t *testing.T, store *Store) (*models.Teacher, *models.Course, *models.Student) {
	t.Helper()
	ctx := context.Background()

	teacher := &models.Teacher{Name: "Alice Johnson", DefaultRate: 30, GradeRates: models.GradeRates{"Grade 5": 40}}
	if err := store.CreateTeacher(ctx, teacher); err != nil {
		t.Fatalf("CreateTeacher failed: %v", err)
	}
	course := &models.Course{Name: "Math Level 1", BaseRate: 30, TeacherID: &teacher.ID}
	if err := store.CreateCourse(ctx, course); err != nil {
		t.Fatalf("CreateCourse failed: %v", err)
	}
	student := &models.Student{
		Name:      "Charlie Brown",
		Gender:    "M",
		Birthdate: models.NewDate(2010, time.March, 15),
		Grade:     "Grade 5",
		Parent:    "Lucy Brown",
		Balances:  models.Balances{"Math Level 1": 5},
	}
	if err := store.CreateStudent(ctx, student); err != nil {
		t.Fatalf("CreateStudent failed: %v", err)
	}
	return teacher, course, student
}

func TestStudents(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	_, _, student := seedRefs(t, store)

	t.Run("GetStudent round-trips balances and dates", func(t *testing.T) {
		got, err := store.GetStudent(ctx, student.ID)
		if err != nil {
			t.Fatalf("GetStudent failed: %v", err)
		}
		if got.Balances.Get("Math Level 1") != 5 {
			t.Errorf("balance = %v, want 5", got.Balances.Get("Math Level 1"))
		}
		if got.Birthdate.String() != "2010-03-15" {
			t.Errorf("birthdate = %s", got.Birthdate)
		}
		if got.Grade != "Grade 5" {
			t.Errorf("grade = %q", got.Grade)
		}
	})

	t.Run("GetStudent unknown ID", func(t *testing.T) {
		_, err := store.GetStudent(ctx, "missing")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("SaveStudentBalances bumps version", func(t *testing.T) {
		s, err := store.GetStudent(ctx, student.ID)
		if err != nil {
			t.Fatalf("GetStudent failed: %v", err)
		}
		before := s.Version
		s.Balances.Apply("Math Level 1", -1.5)
		if err := store.SaveStudentBalances(ctx, s); err != nil {
			t.Fatalf("SaveStudentBalances failed: %v", err)
		}
		if s.Version != before+1 {
			t.Errorf("version = %d, want %d", s.Version, before+1)
		}

		reloaded, _ := store.GetStudent(ctx, student.ID)
		if reloaded.Balances.Get("Math Level 1") != 3.5 {
			t.Errorf("balance = %v, want 3.5", reloaded.Balances.Get("Math Level 1"))
		}
	})

	t.Run("SaveStudentBalances rejects a stale copy", func(t *testing.T) {
		a, _ := store.GetStudent(ctx, student.ID)
		b, _ := store.GetStudent(ctx, student.ID)

		a.Balances.Apply("Math Level 1", -1)
		if err := store.SaveStudentBalances(ctx, a); err != nil {
			t.Fatalf("first save failed: %v", err)
		}
		b.Balances.Apply("Math Level 1", -1)
		if err := store.SaveStudentBalances(ctx, b); !errors.Is(err, storage.ErrStale) {
			t.Errorf("second save err = %v, want ErrStale", err)
		}
	})

	t.Run("UpdateStudent leaves balances alone", func(t *testing.T) {
		s, _ := store.GetStudent(ctx, student.ID)
		want := s.Balances.Get("Math Level 1")
		s.Contact = "555-0100"
		s.Balances = models.Balances{"Math Level 1": 99}
		if err := store.UpdateStudent(ctx, s); err != nil {
			t.Fatalf("UpdateStudent failed: %v", err)
		}
		reloaded, _ := store.GetStudent(ctx, student.ID)
		if reloaded.Contact != "555-0100" {
			t.Errorf("contact = %q", reloaded.Contact)
		}
		if reloaded.Balances.Get("Math Level 1") != want {
			t.Errorf("balance = %v, want %v", reloaded.Balances.Get("Math Level 1"), want)
		}
	})

	t.Run("ListStudents filters", func(t *testing.T) {
		other := &models.Student{Name: "Daisy Miller", Gender: "F", Birthdate: models.NewDate(2009, time.August, 22)}
		if err := store.CreateStudent(ctx, other); err != nil {
			t.Fatalf("CreateStudent failed: %v", err)
		}

		all, err := store.ListStudents(ctx, storage.StudentFilter{})
		if err != nil || len(all) != 2 {
			t.Fatalf("ListStudents = %d, %v", len(all), err)
		}
		byParent, _ := store.ListStudents(ctx, storage.StudentFilter{Search: "lucy"})
		if len(byParent) != 1 || byParent[0].ID != student.ID {
			t.Errorf("search by parent = %+v", byParent)
		}
		byGrade, _ := store.ListStudents(ctx, storage.StudentFilter{Grade: "Grade 5"})
		if len(byGrade) != 1 {
			t.Errorf("grade filter = %d, want 1", len(byGrade))
		}
		grades, _ := store.ListGrades(ctx)
		if len(grades) != 1 || grades[0] != "Grade 5" {
			t.Errorf("ListGrades = %v", grades)
		}
	})
}

func TestConstraints(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	teacher, course, _ := seedRefs(t, store)

	t.Run("duplicate teacher name", func(t *testing.T) {
		err := store.CreateTeacher(ctx, &models.Teacher{Name: teacher.Name, DefaultRate: 25})
		if !errors.Is(err, storage.ErrDuplicate) {
			t.Errorf("err = %v, want ErrDuplicate", err)
		}
	})

	t.Run("duplicate course name", func(t *testing.T) {
		err := store.CreateCourse(ctx, &models.Course{Name: course.Name, BaseRate: 10})
		if !errors.Is(err, storage.ErrDuplicate) {
			t.Errorf("err = %v, want ErrDuplicate", err)
		}
	})

	t.Run("delete referenced teacher", func(t *testing.T) {
		err := store.DeleteTeacher(ctx, teacher.ID)
		if !errors.Is(err, storage.ErrReferenced) {
			t.Errorf("err = %v, want ErrReferenced", err)
		}
	})

	t.Run("session for unknown student", func(t *testing.T) {
		err := store.CreateSession(ctx, &models.Session{
			Date: models.NewDate(2024, 1, 1), StudentID: "missing", CourseID: course.ID, TeacherID: teacher.ID,
			StartTime: "10:00", EndTime: "11:00", Hours: 1,
		})
		if !errors.Is(err, storage.ErrReferenced) {
			t.Errorf("err = %v, want ErrReferenced", err)
		}
	})
}

func TestFactsAndCascade(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	teacher, course, student := seedRefs(t, store)

	for i, day := range []int{3, 10, 20} {
		p := &models.Payment{
			Date: models.NewDate(2024, time.February, day), StudentID: student.ID, CourseID: course.ID, TeacherID: teacher.ID,
			HourlyRate: 30, PurchasedHours: float64(i + 1), AmountPaid: 30 * float64(i+1), PaymentMethod: "Cash",
		}
		if err := store.CreatePayment(ctx, p); err != nil {
			t.Fatalf("CreatePayment failed: %v", err)
		}
	}
	unassigned := &models.Payment{
		Date: models.NewDate(2024, time.February, 21), StudentID: student.ID, CourseID: course.ID,
		HourlyRate: 30, PurchasedHours: 1, AmountPaid: 30, PaymentMethod: "Card",
	}
	if err := store.CreatePayment(ctx, unassigned); err != nil {
		t.Fatalf("CreatePayment without teacher failed: %v", err)
	}
	session := &models.Session{
		Date: models.NewDate(2024, time.February, 11), StudentID: student.ID, CourseID: course.ID, TeacherID: teacher.ID,
		StartTime: "10:00", EndTime: "11:30", Hours: 1.5,
	}
	if err := store.CreateSession(ctx, session); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	t.Run("date range is inclusive", func(t *testing.T) {
		got, err := store.ListPayments(ctx, storage.FactFilter{Range: models.DateRange{
			From: models.NewDate(2024, time.February, 10),
			To:   models.NewDate(2024, time.February, 20),
		}})
		if err != nil {
			t.Fatalf("ListPayments failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
		if got[0].Date.String() != "2024-02-20" {
			t.Errorf("first payment date = %s, want newest first", got[0].Date)
		}
	})

	t.Run("payment without teacher reads back empty", func(t *testing.T) {
		got, err := store.GetPayment(ctx, unassigned.ID)
		if err != nil {
			t.Fatalf("GetPayment failed: %v", err)
		}
		if got.TeacherID != "" {
			t.Errorf("teacher = %q, want empty", got.TeacherID)
		}
	})

	t.Run("counts by foreign key", func(t *testing.T) {
		n, err := store.CountPayments(ctx, storage.FactFilter{TeacherID: teacher.ID})
		if err != nil || n != 3 {
			t.Errorf("CountPayments = %d, %v; want 3", n, err)
		}
		n, err = store.CountSessions(ctx, storage.FactFilter{CourseID: course.ID})
		if err != nil || n != 1 {
			t.Errorf("CountSessions = %d, %v; want 1", n, err)
		}
	})

	t.Run("deleting a student removes their facts", func(t *testing.T) {
		if err := store.DeleteStudent(ctx, student.ID); err != nil {
			t.Fatalf("DeleteStudent failed: %v", err)
		}
		n, _ := store.CountPayments(ctx, storage.FactFilter{StudentID: student.ID})
		m, _ := store.CountSessions(ctx, storage.FactFilter{StudentID: student.ID})
		if n != 0 || m != 0 {
			t.Errorf("left %d payments and %d sessions", n, m)
		}
	})
}

func TestWithTx(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	_, _, student := seedRefs(t, store)

	t.Run("rolls back on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := store.WithTx(ctx, func(q storage.Queries) error {
			s, err := q.GetStudent(ctx, student.ID)
			if err != nil {
				return err
			}
			s.Balances.Apply("Math Level 1", -5)
			if err := q.SaveStudentBalances(ctx, s); err != nil {
				return err
			}
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("WithTx err = %v, want boom", err)
		}
		s, _ := store.GetStudent(ctx, student.ID)
		if s.Balances.Get("Math Level 1") != 5 {
			t.Errorf("balance = %v, want 5 after rollback", s.Balances.Get("Math Level 1"))
		}
	})

	t.Run("commits on success", func(t *testing.T) {
		err := store.WithTx(ctx, func(q storage.Queries) error {
			s, err := q.GetStudent(ctx, student.ID)
			if err != nil {
				return err
			}
			s.Balances.Apply("English Level 1", 2)
			return q.SaveStudentBalances(ctx, s)
		})
		if err != nil {
			t.Fatalf("WithTx failed: %v", err)
		}
		s, _ := store.GetStudent(ctx, student.ID)
		if s.Balances.Get("English Level 1") != 2 {
			t.Errorf("balance = %v, want 2", s.Balances.Get("English Level 1"))
		}
	})
}

func TestExpensesAndStaff(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, e := range []*models.Expense{
		{Date: models.NewDate(2024, 3, 1), Item: "Office supplies", Amount: 25.5, Category: "Office"},
		{Date: models.NewDate(2024, 3, 5), Item: "Rent", Amount: 500, Category: "Rent", Description: "March rent"},
	} {
		if err := store.CreateExpense(ctx, e); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}
	}
	got, err := store.ListExpenses(ctx, storage.ExpenseFilter{Search: "march"})
	if err != nil || len(got) != 1 || got[0].Item != "Rent" {
		t.Errorf("search expenses = %+v, %v", got, err)
	}
	categories, _ := store.ListExpenseCategories(ctx)
	if len(categories) != 2 || categories[0] != "Office" {
		t.Errorf("categories = %v", categories)
	}

	staff := models.NewStaff("admin@example.com", "Admin", "hash", models.RoleAdmin)
	if err := store.CreateStaff(ctx, staff); err != nil {
		t.Fatalf("CreateStaff failed: %v", err)
	}
	byEmail, err := store.GetStaffByEmail(ctx, "admin@example.com")
	if err != nil || byEmail.ID != staff.ID || byEmail.Role != models.RoleAdmin {
		t.Errorf("GetStaffByEmail = %+v, %v", byEmail, err)
	}
	if _, err := store.GetStaffByEmail(ctx, "nobody@example.com"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("unknown email err = %v", err)
	}
}
