package backoffice

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/tutorbooks/internal/models"
	"github.com/mmynk/tutorbooks/internal/storage"
	"github.com/mmynk/tutorbooks/internal/storage/sqlstore"
)

var testToday = models.NewDate(2024, time.March, 20)

type fixture struct {
	store   storage.Store
	svc     *Service
	teacher *models.Teacher
	course  *models.Course
	student *models.Student
}

func ptr[T any](v T) *T { return &v }

// newFixture opens a fresh database with one teacher (25/h), a course taught
// by them and a Grade 3 student holding openingHours of that course.
func newFixture(t *testing.T, openingHours float64) *fixture {
	t.Helper()
	ctx := context.Background()

	store, err := sqlstore.OpenSQLite(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	svc := New(store, WithClock(func() models.Date { return testToday }))

	teacher, err := svc.CreateTeacher(ctx, TeacherInput{
		Name:        "Alice Johnson",
		DefaultRate: ptr(25.0),
		GradeRates:  map[string]float64{"Grade 5": 40},
	})
	require.NoError(t, err)

	course, err := svc.CreateCourse(ctx, CourseInput{Name: "Math Level 1", BaseRate: 30, TeacherID: teacher.ID})
	require.NoError(t, err)

	student, err := svc.CreateStudent(ctx, StudentInput{
		Name:      "Charlie Brown",
		Gender:    "M",
		Birthdate: "2014-05-01",
		Grade:     "Grade 3",
		Balances:  map[string]float64{"Math Level 1": openingHours},
	})
	require.NoError(t, err)

	return &fixture{store: store, svc: svc, teacher: teacher, course: course, student: student}
}

func (f *fixture) balance(t *testing.T) float64 {
	t.Helper()
	view, err := f.svc.GetStudentBalance(context.Background(), f.student.ID, f.course.Name)
	require.NoError(t, err)
	return view.Balance
}

func (f *fixture) session(start, end string) SessionInput {
	return SessionInput{
		Date:      "2024-03-18",
		StudentID: f.student.ID,
		CourseID:  f.course.ID,
		StartTime: start,
		EndTime:   end,
	}
}

func TestCreateSession(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects a session the balance does not cover", func(t *testing.T) {
		f := newFixture(t, 1.0)

		_, err := f.svc.CreateSession(ctx, f.session("10:00", "11:30"))
		require.Error(t, err)
		assert.Equal(t, KindInsufficientBalance, KindOf(err))
		assert.Equal(t, "insufficient balance: current 1.0h, required 1.5h", err.Error())

		assert.Equal(t, 1.0, f.balance(t))
		sessions, err := f.svc.ListSessions(ctx, storage.FactFilter{})
		require.NoError(t, err)
		assert.Empty(t, sessions)
	})

	t.Run("debits hours and computes salary", func(t *testing.T) {
		f := newFixture(t, 5)

		got, err := f.svc.CreateSession(ctx, f.session("10:00", "12:00"))
		require.NoError(t, err)
		assert.Equal(t, 2.0, got.Hours)
		assert.Equal(t, f.teacher.ID, got.TeacherID)
		assert.Equal(t, 25.0, got.Rate)
		assert.Equal(t, 50.0, got.SalaryCost)
		assert.Equal(t, "2h", got.DurationFormatted)
		assert.Equal(t, 3.0, f.balance(t))
	})

	t.Run("spans midnight", func(t *testing.T) {
		f := newFixture(t, 5)

		got, err := f.svc.CreateSession(ctx, f.session("23:30", "00:30"))
		require.NoError(t, err)
		assert.Equal(t, 1.0, got.Hours)
	})

	t.Run("defaults date to today", func(t *testing.T) {
		f := newFixture(t, 5)

		in := f.session("10:00", "11:00")
		in.Date = ""
		got, err := f.svc.CreateSession(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, testToday.String(), got.Date.String())
	})

	t.Run("validates times", func(t *testing.T) {
		f := newFixture(t, 5)

		_, err := f.svc.CreateSession(ctx, f.session("10:00", "10:00"))
		assert.Equal(t, KindValidationFailed, KindOf(err))

		_, err = f.svc.CreateSession(ctx, f.session("25:00", "10:00"))
		require.Error(t, err)
		var e *Error
		require.ErrorAs(t, err, &e)
		assert.Contains(t, e.Fields, "start_time")
	})

	t.Run("requires a teacher", func(t *testing.T) {
		f := newFixture(t, 5)
		_, err := f.svc.UpdateCourse(ctx, f.course.ID, CourseUpdate{TeacherID: ptr("")})
		require.NoError(t, err)

		_, err = f.svc.CreateSession(ctx, f.session("10:00", "11:00"))
		assert.Equal(t, KindValidationFailed, KindOf(err))
		assert.Equal(t, 5.0, f.balance(t))
	})

	t.Run("unknown student", func(t *testing.T) {
		f := newFixture(t, 5)
		in := f.session("10:00", "11:00")
		in.StudentID = "missing"

		_, err := f.svc.CreateSession(ctx, in)
		assert.Equal(t, KindNotFound, KindOf(err))
	})
}

func TestUpdateAndDeleteSession(t *testing.T) {
	ctx := context.Background()

	t.Run("delete restores the balance", func(t *testing.T) {
		f := newFixture(t, 5)
		created, err := f.svc.CreateSession(ctx, f.session("10:00", "11:30"))
		require.NoError(t, err)
		assert.Equal(t, 3.5, f.balance(t))

		require.NoError(t, f.svc.DeleteSession(ctx, created.ID))
		assert.Equal(t, 5.0, f.balance(t))

		_, err = f.svc.GetSession(ctx, created.ID)
		assert.Equal(t, KindNotFound, KindOf(err))
	})

	t.Run("increase must be covered", func(t *testing.T) {
		f := newFixture(t, 2)
		created, err := f.svc.CreateSession(ctx, f.session("10:00", "11:00"))
		require.NoError(t, err)

		_, err = f.svc.UpdateSession(ctx, created.ID, SessionUpdate{EndTime: ptr("12:30")})
		assert.Equal(t, KindInsufficientBalance, KindOf(err))
		assert.Equal(t, 1.0, f.balance(t))

		got, err := f.svc.UpdateSession(ctx, created.ID, SessionUpdate{EndTime: ptr("12:00")})
		require.NoError(t, err)
		assert.Equal(t, 2.0, got.Hours)
		assert.Equal(t, 0.0, f.balance(t))
	})

	t.Run("decrease credits back", func(t *testing.T) {
		f := newFixture(t, 5)
		created, err := f.svc.CreateSession(ctx, f.session("10:00", "12:00"))
		require.NoError(t, err)

		got, err := f.svc.UpdateSession(ctx, created.ID, SessionUpdate{StartTime: ptr("11:00"), Notes: ptr("  shortened ")})
		require.NoError(t, err)
		assert.Equal(t, 1.0, got.Hours)
		assert.Equal(t, "shortened", got.Notes)
		assert.Equal(t, 4.0, f.balance(t))
	})
}

func TestPayments(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 0)

	created, err := f.svc.CreatePayment(ctx, PaymentInput{
		Date:           "2024-03-01",
		StudentID:      f.student.ID,
		CourseID:       f.course.ID,
		PurchasedHours: 5,
		Discount:       10,
		AmountPaid:     115,
	})
	require.NoError(t, err)
	assert.Equal(t, 25.0, created.HourlyRate, "teacher default rate for an unlisted grade")
	assert.Equal(t, models.DefaultPaymentMethod, created.PaymentMethod)
	assert.Equal(t, f.teacher.ID, created.TeacherID)
	assert.Equal(t, 115.0, created.ExpectedAmount)
	assert.False(t, created.IsOverpaid)
	assert.False(t, created.IsUnderpaid)
	assert.Equal(t, 5.0, f.balance(t))

	t.Run("update applies the hour difference", func(t *testing.T) {
		got, err := f.svc.UpdatePayment(ctx, created.ID, PaymentUpdate{PurchasedHours: ptr(3.0)})
		require.NoError(t, err)
		assert.Equal(t, 3.0, got.PurchasedHours)
		assert.True(t, got.IsOverpaid)
		assert.Equal(t, 3.0, f.balance(t))
	})

	t.Run("discount above tuition is rejected", func(t *testing.T) {
		_, err := f.svc.UpdatePayment(ctx, created.ID, PaymentUpdate{Discount: ptr(1000.0)})
		assert.Equal(t, KindValidationFailed, KindOf(err))
		assert.Equal(t, 3.0, f.balance(t))
	})

	t.Run("delete floors the balance at zero", func(t *testing.T) {
		_, err := f.svc.CreateSession(ctx, f.session("10:00", "12:00"))
		require.NoError(t, err)
		assert.Equal(t, 1.0, f.balance(t))

		require.NoError(t, f.svc.DeletePayment(ctx, created.ID))
		assert.Equal(t, 0.0, f.balance(t))
	})

	t.Run("grade rate wins", func(t *testing.T) {
		_, err := f.svc.UpdateStudent(ctx, f.student.ID, StudentUpdate{Grade: ptr("Grade 5")})
		require.NoError(t, err)

		got, err := f.svc.CreatePayment(ctx, PaymentInput{
			StudentID:      f.student.ID,
			CourseID:       f.course.ID,
			PurchasedHours: 2,
			AmountPaid:     80,
		})
		require.NoError(t, err)
		assert.Equal(t, 40.0, got.HourlyRate)
		assert.Equal(t, testToday.String(), got.Date.String())
	})

	t.Run("summary", func(t *testing.T) {
		sum, err := f.svc.PaymentSummary(ctx, models.DateRange{})
		require.NoError(t, err)
		assert.Equal(t, 1, sum.PaymentCount)
		assert.Equal(t, 80.0, sum.TotalRevenue)
		assert.Equal(t, 40.0, sum.AverageHourlyRate)
		assert.Equal(t, Bucket{Count: 1, Amount: 80}, sum.Methods[models.DefaultPaymentMethod])
	})
}

func TestAdjustStudentBalance(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 3)

	got, err := f.svc.AdjustStudentBalance(ctx, f.student.ID, "Math Level 1", -5)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got.OldBalance)
	assert.Equal(t, 0.0, got.Balance)
	assert.True(t, got.IsLow)

	got, err = f.svc.AdjustStudentBalance(ctx, f.student.ID, "Piano", 4)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got.Balance)
	assert.False(t, got.IsLow)

	_, err = f.svc.AdjustStudentBalance(ctx, f.student.ID, " ", 1)
	assert.Equal(t, KindValidationFailed, KindOf(err))

	_, err = f.svc.AdjustStudentBalance(ctx, "missing", "Piano", 1)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestStudents(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 3)

	t.Run("validation lists every bad field", func(t *testing.T) {
		_, err := f.svc.CreateStudent(ctx, StudentInput{Name: "  ", Gender: "X", Birthdate: "01/02/2010"})
		require.Error(t, err)
		var e *Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, KindValidationFailed, e.Kind)
		assert.Contains(t, e.Fields, "name")
		assert.Contains(t, e.Fields, "gender")
		assert.Contains(t, e.Fields, "birthdate")
	})

	t.Run("update leaves balances alone", func(t *testing.T) {
		got, err := f.svc.UpdateStudent(ctx, f.student.ID, StudentUpdate{Name: ptr("Charlie B.")})
		require.NoError(t, err)
		assert.Equal(t, "Charlie B.", got.Name)
		assert.Equal(t, 3.0, f.balance(t))
	})

	t.Run("grades merge common and used", func(t *testing.T) {
		_, err := f.svc.CreateStudent(ctx, StudentInput{Name: "Daisy", Gender: "F", Birthdate: "2012-01-01", Grade: "Kindergarten"})
		require.NoError(t, err)

		grades, err := f.svc.ListGrades(ctx)
		require.NoError(t, err)
		assert.Contains(t, grades, "Kindergarten")
		assert.Contains(t, grades, "Grade 3")
		assert.Contains(t, grades, "University")
	})

	t.Run("delete cascades to facts", func(t *testing.T) {
		_, err := f.svc.CreateSession(ctx, f.session("10:00", "11:00"))
		require.NoError(t, err)

		require.NoError(t, f.svc.DeleteStudent(ctx, f.student.ID))
		sessions, err := f.svc.ListSessions(ctx, storage.FactFilter{})
		require.NoError(t, err)
		assert.Empty(t, sessions)

		assert.Equal(t, KindNotFound, KindOf(f.svc.DeleteStudent(ctx, f.student.ID)))
	})
}

func TestTeachersAndCourses(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate names", func(t *testing.T) {
		f := newFixture(t, 0)

		_, err := f.svc.CreateTeacher(ctx, TeacherInput{Name: "Alice Johnson"})
		assert.Equal(t, KindValidationFailed, KindOf(err))

		_, err = f.svc.CreateCourse(ctx, CourseInput{Name: " Math Level 1 ", BaseRate: 20})
		assert.Equal(t, KindValidationFailed, KindOf(err))
	})

	t.Run("default rate", func(t *testing.T) {
		f := newFixture(t, 0)

		got, err := f.svc.CreateTeacher(ctx, TeacherInput{Name: "Bob Smith"})
		require.NoError(t, err)
		assert.Equal(t, models.DefaultTeacherRate, got.DefaultRate)

		got, err = f.svc.SetGradeRate(ctx, got.ID, "Grade 7", 45)
		require.NoError(t, err)
		assert.Equal(t, 45.0, got.GradeRates["Grade 7"])

		_, err = f.svc.SetGradeRate(ctx, got.ID, "", 45)
		assert.Equal(t, KindValidationFailed, KindOf(err))
	})

	t.Run("rename re-keys balances", func(t *testing.T) {
		f := newFixture(t, 4)

		got, err := f.svc.UpdateCourse(ctx, f.course.ID, CourseUpdate{Name: ptr("Algebra")})
		require.NoError(t, err)
		assert.Equal(t, "Algebra", got.Name)

		student, err := f.svc.GetStudent(ctx, f.student.ID)
		require.NoError(t, err)
		assert.Equal(t, 4.0, student.Balances.Get("Algebra"))
		assert.NotContains(t, student.Balances, "Math Level 1")
	})

	t.Run("referenced records cannot be deleted", func(t *testing.T) {
		f := newFixture(t, 4)
		_, err := f.svc.CreateSession(ctx, f.session("10:00", "11:00"))
		require.NoError(t, err)

		assert.Equal(t, KindConflict, KindOf(f.svc.DeleteTeacher(ctx, f.teacher.ID)))
		assert.Equal(t, KindConflict, KindOf(f.svc.DeleteCourse(ctx, f.course.ID)))
	})

	t.Run("unreferenced records are deleted", func(t *testing.T) {
		f := newFixture(t, 0)

		require.NoError(t, f.svc.DeleteCourse(ctx, f.course.ID))
		require.NoError(t, f.svc.DeleteTeacher(ctx, f.teacher.ID))
		_, err := f.svc.GetTeacher(ctx, f.teacher.ID)
		assert.Equal(t, KindNotFound, KindOf(err))
	})
}

func TestExpenses(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 0)

	created, err := f.svc.CreateExpense(ctx, ExpenseInput{Date: "2024-03-05", Item: "Office supplies", Amount: 25.5})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultExpenseCategory, created.Category)

	_, err = f.svc.CreateExpense(ctx, ExpenseInput{Date: "2024-02-10", Item: "Rent", Amount: 500, Category: "Facilities"})
	require.NoError(t, err)

	_, err = f.svc.CreateExpense(ctx, ExpenseInput{Item: "Nothing", Amount: 0})
	assert.Equal(t, KindValidationFailed, KindOf(err))

	categories, err := f.svc.ListExpenseCategories(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"General", "Facilities"}, categories)

	sum, err := f.svc.ExpenseSummary(ctx, models.DateRange{})
	require.NoError(t, err)
	assert.Equal(t, 2, sum.ExpenseCount)
	assert.Equal(t, 525.5, sum.TotalAmount)
	assert.Equal(t, Bucket{Count: 1, Amount: 500}, sum.ByMonth["2024-02"])
	assert.Equal(t, Bucket{Count: 1, Amount: 25.5}, sum.ByCategory["General"])

	got, err := f.svc.UpdateExpense(ctx, created.ID, ExpenseUpdate{Amount: ptr(30.0)})
	require.NoError(t, err)
	assert.Equal(t, 30.0, got.Amount)

	require.NoError(t, f.svc.DeleteExpense(ctx, created.ID))
	assert.Equal(t, KindNotFound, KindOf(f.svc.DeleteExpense(ctx, created.ID)))
}
