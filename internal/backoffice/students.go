package backoffice

import (
	"context"
	"sort"
	"strings"

	"github.com/mmynk/tutorbooks/internal/models"
	"github.com/mmynk/tutorbooks/internal/storage"
)

// CommonGrades are offered as grade choices even when no student uses them yet.
var CommonGrades = []string{
	"Grade 1", "Grade 2", "Grade 3", "Grade 4", "Grade 5", "Grade 6",
	"Grade 7", "Grade 8", "Grade 9", "Grade 10", "Grade 11", "Grade 12",
	"University", "Adult Education",
}

// StudentInput holds the fields of a new student.
type StudentInput struct {
	Name      string `json:"name" validate:"notblank,max=100"`
	Gender    string `json:"gender" validate:"required,oneof=M F"`
	Birthdate string `json:"birthdate" validate:"required,datetime=2006-01-02"`
	Grade     string `json:"grade" validate:"max=50"`
	Parent    string `json:"parent" validate:"max=100"`
	Contact   string `json:"contact" validate:"max=100"`
	// Balances seeds opening hour balances per course name.
	Balances map[string]float64 `json:"balances" validate:"dive,keys,notblank,endkeys,gte=0"`
}

// StudentUpdate changes the profile fields that are set.
// Balances are changed through AdjustStudentBalance, sessions and payments.
type StudentUpdate struct {
	Name      *string `json:"name" validate:"omitnil,notblank,max=100"`
	Gender    *string `json:"gender" validate:"omitnil,oneof=M F"`
	Birthdate *string `json:"birthdate" validate:"omitnil,datetime=2006-01-02"`
	Grade     *string `json:"grade" validate:"omitnil,max=50"`
	Parent    *string `json:"parent" validate:"omitnil,max=100"`
	Contact   *string `json:"contact" validate:"omitnil,max=100"`
}

// BalanceView is a student's balance for one course.
type BalanceView struct {
	StudentID    string  `json:"student_id"`
	StudentName  string  `json:"student_name"`
	StudentGrade string  `json:"student_grade"`
	CourseName   string  `json:"course_name"`
	Balance      float64 `json:"balance"`
	IsLow        bool    `json:"is_low_balance"`
}

// BalanceAdjustment is the outcome of a manual balance change.
type BalanceAdjustment struct {
	BalanceView
	OldBalance  float64 `json:"old_balance"`
	HoursChange float64 `json:"hours_change"`
}

// CreateStudent registers a new student with optional opening balances.
func (s *Service) CreateStudent(ctx context.Context, in StudentInput) (*models.Student, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	birthdate, _ := models.ParseDate(in.Birthdate)

	student := &models.Student{
		Name:      strings.TrimSpace(in.Name),
		Gender:    in.Gender,
		Birthdate: birthdate,
		Grade:     strings.TrimSpace(in.Grade),
		Parent:    strings.TrimSpace(in.Parent),
		Contact:   strings.TrimSpace(in.Contact),
		Balances:  models.Balances{},
	}
	for course, hours := range in.Balances {
		student.Balances.Apply(strings.TrimSpace(course), hours)
	}

	if err := s.store.CreateStudent(ctx, student); err != nil {
		return nil, fromStore(err, "student", student.ID)
	}
	return student, nil
}

// GetStudent returns a student by ID.
func (s *Service) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.store.GetStudent(ctx, id)
	if err != nil {
		return nil, fromStore(err, "student", id)
	}
	return student, nil
}

// ListStudents returns students matching the filter, ordered by name.
func (s *Service) ListStudents(ctx context.Context, f storage.StudentFilter) ([]models.Student, error) {
	students, err := s.store.ListStudents(ctx, f)
	if err != nil {
		return nil, fromStore(err, "students", "")
	}
	return students, nil
}

// UpdateStudent changes a student's profile.
func (s *Service) UpdateStudent(ctx context.Context, id string, in StudentUpdate) (*models.Student, error) {
	if err := check(in); err != nil {
		return nil, err
	}

	student, err := s.store.GetStudent(ctx, id)
	if err != nil {
		return nil, fromStore(err, "student", id)
	}
	if in.Name != nil {
		student.Name = *trimmed(in.Name)
	}
	if in.Gender != nil {
		student.Gender = *in.Gender
	}
	if in.Birthdate != nil {
		student.Birthdate, _ = models.ParseDate(*in.Birthdate)
	}
	if in.Grade != nil {
		student.Grade = *trimmed(in.Grade)
	}
	if in.Parent != nil {
		student.Parent = *trimmed(in.Parent)
	}
	if in.Contact != nil {
		student.Contact = *trimmed(in.Contact)
	}

	if err := s.store.UpdateStudent(ctx, student); err != nil {
		return nil, fromStore(err, "student", id)
	}
	return student, nil
}

// DeleteStudent removes a student together with their sessions and payments.
func (s *Service) DeleteStudent(ctx context.Context, id string) error {
	return s.inTx(ctx, "student", id, func(q storage.Queries, _ *[]ledgerChange) error {
		if _, err := q.GetStudent(ctx, id); err != nil {
			return fromStore(err, "student", id)
		}
		return q.DeleteStudent(ctx, id)
	})
}

// ListGrades returns the grades in use merged with CommonGrades, sorted.
func (s *Service) ListGrades(ctx context.Context) ([]string, error) {
	used, err := s.store.ListGrades(ctx)
	if err != nil {
		return nil, fromStore(err, "grades", "")
	}
	seen := make(map[string]struct{}, len(used)+len(CommonGrades))
	grades := make([]string, 0, len(used)+len(CommonGrades))
	for _, g := range append(used, CommonGrades...) {
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		grades = append(grades, g)
	}
	sort.Strings(grades)
	return grades, nil
}

// GetStudentBalance returns a student's balance for a course name.
func (s *Service) GetStudentBalance(ctx context.Context, id, course string) (*BalanceView, error) {
	student, err := s.store.GetStudent(ctx, id)
	if err != nil {
		return nil, fromStore(err, "student", id)
	}
	view := s.balanceView(student, course)
	return &view, nil
}

// AdjustStudentBalance changes a student's balance for a course name by
// hoursChange. Negative changes are floored at zero, never rejected.
func (s *Service) AdjustStudentBalance(ctx context.Context, id, course string, hoursChange float64) (*BalanceAdjustment, error) {
	course = strings.TrimSpace(course)
	if course == "" {
		return nil, invalidField("course_name", "course_name cannot be blank")
	}

	var out BalanceAdjustment
	err := s.inTx(ctx, "student", id, func(q storage.Queries, changes *[]ledgerChange) error {
		student, err := q.GetStudent(ctx, id)
		if err != nil {
			return fromStore(err, "student", id)
		}
		out.OldBalance = student.Balances.Get(course)
		if _, err := applyBalance(ctx, q, student, course, hoursChange, changes); err != nil {
			return err
		}
		out.BalanceView = s.balanceView(student, course)
		out.HoursChange = hoursChange
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) balanceView(student *models.Student, course string) BalanceView {
	return BalanceView{
		StudentID:    student.ID,
		StudentName:  student.Name,
		StudentGrade: student.Grade,
		CourseName:   course,
		Balance:      student.Balances.Get(course),
		IsLow:        student.Balances.IsLow(course, s.lowBalance),
	}
}
