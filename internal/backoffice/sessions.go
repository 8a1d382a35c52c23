package backoffice

import (
	"context"
	"strings"

	"github.com/mmynk/tutorbooks/internal/calculator"
	"github.com/mmynk/tutorbooks/internal/metrics"
	"github.com/mmynk/tutorbooks/internal/models"
	"github.com/mmynk/tutorbooks/internal/storage"
)

// SessionInput holds the fields of a new session.
type SessionInput struct {
	// Date defaults to today when empty.
	Date      string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	StudentID string `json:"student_id" validate:"required"`
	CourseID  string `json:"course_id" validate:"required"`
	// TeacherID defaults to the course's teacher when empty.
	TeacherID string `json:"teacher_id"`
	StartTime string `json:"start_time" validate:"required,clock"`
	EndTime   string `json:"end_time" validate:"required,clock"`
	Notes     string `json:"notes" validate:"max=1000"`
}

// SessionUpdate changes the fields that are set.
type SessionUpdate struct {
	Date      *string `json:"date" validate:"omitnil,datetime=2006-01-02"`
	StartTime *string `json:"start_time" validate:"omitnil,clock"`
	EndTime   *string `json:"end_time" validate:"omitnil,clock"`
	Notes     *string `json:"notes" validate:"omitnil,max=1000"`
}

// SessionDetail is a session with its names and derived pay.
type SessionDetail struct {
	models.Session
	StudentName       string  `json:"student_name"`
	CourseName        string  `json:"course_name"`
	TeacherName       string  `json:"teacher_name"`
	Rate              float64 `json:"rate"`
	SalaryCost        float64 `json:"salary_cost"`
	DurationFormatted string  `json:"duration_formatted"`
}

func newSessionDetail(session *models.Session, student *models.Student, course *models.Course, teacher *models.Teacher) *SessionDetail {
	d := &SessionDetail{
		Session:           *session,
		DurationFormatted: calculator.FormatDuration(session.Hours),
	}
	grade := ""
	if student != nil {
		d.StudentName = student.Name
		grade = student.Grade
	}
	if course != nil {
		d.CourseName = course.Name
	}
	if teacher != nil {
		d.TeacherName = teacher.Name
		d.Rate = calculator.ResolveRate(teacher, grade)
	}
	d.SalaryCost = session.Hours * d.Rate
	return d
}

// sessionHours computes and range-checks the length of a session.
func sessionHours(start, end string) (float64, error) {
	if _, err := calculator.ParseClock(start); err != nil {
		return 0, invalidField("start_time", "time format must be HH:MM")
	}
	if _, err := calculator.ParseClock(end); err != nil {
		return 0, invalidField("end_time", "time format must be HH:MM")
	}
	hours, err := calculator.SessionHours(start, end)
	if err != nil {
		return 0, err
	}
	if hours <= 0 {
		return 0, invalidField("end_time", "end time must be after start time")
	}
	if hours > models.MaxSessionHours {
		return 0, invalidField("end_time", "session duration cannot exceed 12 hours")
	}
	return hours, nil
}

// CreateSession records a taught session and debits its hours from the
// student's balance for the course. It fails with KindInsufficientBalance,
// changing nothing, when the balance does not cover the session.
func (s *Service) CreateSession(ctx context.Context, in SessionInput) (*SessionDetail, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	date := s.today()
	if in.Date != "" {
		date, _ = models.ParseDate(in.Date)
	}

	var out *SessionDetail
	err := s.inTx(ctx, "session", "", func(q storage.Queries, changes *[]ledgerChange) error {
		student, err := q.GetStudent(ctx, in.StudentID)
		if err != nil {
			return fromStore(err, "student", in.StudentID)
		}
		course, err := q.GetCourse(ctx, in.CourseID)
		if err != nil {
			return fromStore(err, "course", in.CourseID)
		}
		teacherID := strings.TrimSpace(in.TeacherID)
		if teacherID == "" && course.HasTeacher() {
			teacherID = *course.TeacherID
		}
		if teacherID == "" {
			return invalidField("teacher_id", "no teacher assigned to this course")
		}
		teacher, err := q.GetTeacher(ctx, teacherID)
		if err != nil {
			return fromStore(err, "teacher", teacherID)
		}

		hours, err := sessionHours(in.StartTime, in.EndTime)
		if err != nil {
			return err
		}
		if balance := student.Balances.Get(course.Name); !covers(balance, hours) {
			metrics.InsufficientBalance.Inc()
			return insufficient("insufficient balance: current %.1fh, required %.1fh", balance, hours)
		}

		if _, err := applyBalance(ctx, q, student, course.Name, -hours, changes); err != nil {
			return err
		}
		session := &models.Session{
			Date:      date,
			StudentID: student.ID,
			CourseID:  course.ID,
			TeacherID: teacher.ID,
			StartTime: strings.TrimSpace(in.StartTime),
			EndTime:   strings.TrimSpace(in.EndTime),
			Hours:     hours,
			Notes:     strings.TrimSpace(in.Notes),
		}
		if err := q.CreateSession(ctx, session); err != nil {
			return fromStore(err, "session", session.ID)
		}
		out = newSessionDetail(session, student, course, teacher)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetSession returns a session with its names and derived pay.
func (s *Service) GetSession(ctx context.Context, id string) (*SessionDetail, error) {
	session, err := s.store.GetSession(ctx, id)
	if err != nil {
		return nil, fromStore(err, "session", id)
	}
	student, err := s.store.GetStudent(ctx, session.StudentID)
	if err != nil {
		return nil, fromStore(err, "student", session.StudentID)
	}
	course, err := s.store.GetCourse(ctx, session.CourseID)
	if err != nil {
		return nil, fromStore(err, "course", session.CourseID)
	}
	teacher, err := s.store.GetTeacher(ctx, session.TeacherID)
	if err != nil {
		return nil, fromStore(err, "teacher", session.TeacherID)
	}
	return newSessionDetail(session, student, course, teacher), nil
}

// ListSessions returns sessions matching f, newest first.
func (s *Service) ListSessions(ctx context.Context, f storage.FactFilter) ([]SessionDetail, error) {
	sessions, err := s.store.ListSessions(ctx, f)
	if err != nil {
		return nil, fromStore(err, "sessions", "")
	}
	r, err := loadRefs(ctx, s.store)
	if err != nil {
		return nil, fromStore(err, "sessions", "")
	}
	out := make([]SessionDetail, 0, len(sessions))
	for i := range sessions {
		ss := &sessions[i]
		out = append(out, *newSessionDetail(ss, r.students[ss.StudentID], r.courses[ss.CourseID], r.teachers[ss.TeacherID]))
	}
	return out, nil
}

// UpdateSession changes a session. When the times change, the hour
// difference is applied to the student's balance: an increase must be covered
// by the balance, a decrease is credited back.
func (s *Service) UpdateSession(ctx context.Context, id string, in SessionUpdate) (*SessionDetail, error) {
	if err := check(in); err != nil {
		return nil, err
	}

	var out *SessionDetail
	err := s.inTx(ctx, "session", id, func(q storage.Queries, changes *[]ledgerChange) error {
		session, err := q.GetSession(ctx, id)
		if err != nil {
			return fromStore(err, "session", id)
		}
		student, err := q.GetStudent(ctx, session.StudentID)
		if err != nil {
			return fromStore(err, "student", session.StudentID)
		}
		course, err := q.GetCourse(ctx, session.CourseID)
		if err != nil {
			return fromStore(err, "course", session.CourseID)
		}
		teacher, err := q.GetTeacher(ctx, session.TeacherID)
		if err != nil {
			return fromStore(err, "teacher", session.TeacherID)
		}

		if in.Date != nil {
			session.Date, _ = models.ParseDate(*in.Date)
		}
		if in.Notes != nil {
			session.Notes = *trimmed(in.Notes)
		}
		if in.StartTime != nil || in.EndTime != nil {
			if in.StartTime != nil {
				session.StartTime = *trimmed(in.StartTime)
			}
			if in.EndTime != nil {
				session.EndTime = *trimmed(in.EndTime)
			}
			hours, err := sessionHours(session.StartTime, session.EndTime)
			if err != nil {
				return err
			}

			delta := hours - session.Hours
			if delta > 0 {
				if balance := student.Balances.Get(course.Name); !covers(balance, delta) {
					metrics.InsufficientBalance.Inc()
					return insufficient("insufficient balance for increase: available %.1fh, required %.1fh", balance, delta)
				}
			}
			if delta != 0 {
				if _, err := applyBalance(ctx, q, student, course.Name, -delta, changes); err != nil {
					return err
				}
			}
			session.Hours = hours
		}

		if err := q.UpdateSession(ctx, session); err != nil {
			return fromStore(err, "session", id)
		}
		out = newSessionDetail(session, student, course, teacher)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteSession removes a session and credits its hours back to the student.
func (s *Service) DeleteSession(ctx context.Context, id string) error {
	return s.inTx(ctx, "session", id, func(q storage.Queries, changes *[]ledgerChange) error {
		session, err := q.GetSession(ctx, id)
		if err != nil {
			return fromStore(err, "session", id)
		}
		if session.Hours > 0 {
			student, err := q.GetStudent(ctx, session.StudentID)
			if err != nil {
				return fromStore(err, "student", session.StudentID)
			}
			course, err := q.GetCourse(ctx, session.CourseID)
			if err != nil {
				return fromStore(err, "course", session.CourseID)
			}
			if _, err := applyBalance(ctx, q, student, course.Name, session.Hours, changes); err != nil {
				return err
			}
		}
		if err := q.DeleteSession(ctx, id); err != nil {
			return fromStore(err, "session", id)
		}
		return nil
	})
}
