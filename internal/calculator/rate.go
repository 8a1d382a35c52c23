package calculator

import "github.com/mmynk/tutorbooks/internal/models"

// RateInput is what the rate rules look at.
type RateInput struct {
	Teacher *models.Teacher
	Course  *models.Course
	Grade   string
}

// RateRule yields a rate when it applies to the input.
type RateRule struct {
	Name  string
	Apply func(in RateInput) (float64, bool)
}

// Rate rule names, in evaluation order.
const (
	RuleGradeRate      = "grade_rate"
	RuleTeacherDefault = "teacher_default"
	RuleCourseBase     = "course_base"
)

// rateRules is evaluated top to bottom; the first rule that applies wins.
var rateRules = []RateRule{
	{
		Name: RuleGradeRate,
		Apply: func(in RateInput) (float64, bool) {
			if in.Teacher == nil {
				return 0, false
			}
			return in.Teacher.GradeRates.Lookup(in.Grade)
		},
	},
	{
		Name: RuleTeacherDefault,
		Apply: func(in RateInput) (float64, bool) {
			if in.Teacher == nil {
				return 0, false
			}
			return in.Teacher.DefaultRate, true
		},
	},
	{
		Name: RuleCourseBase,
		Apply: func(in RateInput) (float64, bool) {
			if in.Course == nil {
				return 0, false
			}
			return in.Course.BaseRate, true
		},
	},
}

// EvaluateRate runs the rate rules in order and returns the first match
// along with the name of the rule that produced it.
// It returns ("", 0) when no rule applies, i.e. there is neither a teacher nor a course.
func EvaluateRate(in RateInput) (rule string, rate float64) {
	for _, r := range rateRules {
		if v, ok := r.Apply(in); ok {
			return r.Name, v
		}
	}
	return "", 0
}

// ResolveRate returns the teacher's rate for a grade, falling back to the
// teacher's default rate when the grade is empty or has no entry.
func ResolveRate(teacher *models.Teacher, grade string) float64 {
	_, rate := EvaluateRate(RateInput{Teacher: teacher, Grade: grade})
	return rate
}

// ResolveCourseRate returns the rate charged for a course: the course teacher's
// rate for the student's grade when the course has a teacher, otherwise the
// course base rate. teacher must be the course's assigned teacher or nil.
// student may be nil.
func ResolveCourseRate(course *models.Course, teacher *models.Teacher, student *models.Student) float64 {
	in := RateInput{Course: course}
	if course != nil && course.HasTeacher() {
		in.Teacher = teacher
	}
	if student != nil {
		in.Grade = student.Grade
	}
	_, rate := EvaluateRate(in)
	return rate
}
