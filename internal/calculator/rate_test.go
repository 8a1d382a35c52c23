package calculator

import (
	"testing"

	"github.com/mmynk/tutorbooks/internal/models"
)

func strPtr(s string) *string { return &s }

func TestResolveRate(t *testing.T) {
	teacher := &models.Teacher{DefaultRate: 30, GradeRates: models.GradeRates{"Grade 5": 40}}

	tests := []struct {
		name  string
		grade string
		want  float64
	}{
		{name: "grade with its own rate", grade: "Grade 5", want: 40},
		{name: "grade without a rate", grade: "Grade 9", want: 30},
		{name: "no grade", grade: "", want: 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveRate(teacher, tt.grade); got != tt.want {
				t.Errorf("ResolveRate(%q) = %v, want %v", tt.grade, got, tt.want)
			}
		})
	}
}

func TestResolveCourseRate(t *testing.T) {
	graded := &models.Teacher{ID: "t1", DefaultRate: 30, GradeRates: models.GradeRates{"Grade 3": 25}}
	plain := &models.Teacher{ID: "t2", DefaultRate: 35}

	tests := []struct {
		name    string
		course  *models.Course
		teacher *models.Teacher
		student *models.Student
		want    float64
	}{
		{
			name:    "course without teacher uses base rate",
			course:  &models.Course{BaseRate: 20},
			student: &models.Student{Grade: "Grade 3"},
			want:    20,
		},
		{
			name:    "teacher grade rate wins over base rate",
			course:  &models.Course{BaseRate: 20, TeacherID: strPtr("t1")},
			teacher: graded,
			student: &models.Student{Grade: "Grade 3"},
			want:    25,
		},
		{
			name:    "teacher default when grade has no entry",
			course:  &models.Course{BaseRate: 20, TeacherID: strPtr("t1")},
			teacher: graded,
			student: &models.Student{Grade: "Grade 7"},
			want:    30,
		},
		{
			name:    "teacher with empty grade map uses teacher default",
			course:  &models.Course{BaseRate: 20, TeacherID: strPtr("t2")},
			teacher: plain,
			student: &models.Student{Grade: "Grade 3"},
			want:    35,
		},
		{
			name:    "no student uses teacher default",
			course:  &models.Course{BaseRate: 20, TeacherID: strPtr("t1")},
			teacher: graded,
			want:    30,
		},
		{
			name:    "teacher passed for unassigned course is ignored",
			course:  &models.Course{BaseRate: 20},
			teacher: graded,
			student: &models.Student{Grade: "Grade 3"},
			want:    20,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveCourseRate(tt.course, tt.teacher, tt.student); got != tt.want {
				t.Errorf("ResolveCourseRate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateRateReportsRule(t *testing.T) {
	teacher := &models.Teacher{DefaultRate: 30, GradeRates: models.GradeRates{"Grade 5": 40}}
	course := &models.Course{BaseRate: 20}

	if rule, _ := EvaluateRate(RateInput{Teacher: teacher, Course: course, Grade: "Grade 5"}); rule != RuleGradeRate {
		t.Errorf("rule = %q, want %q", rule, RuleGradeRate)
	}
	if rule, _ := EvaluateRate(RateInput{Teacher: teacher, Course: course}); rule != RuleTeacherDefault {
		t.Errorf("rule = %q, want %q", rule, RuleTeacherDefault)
	}
	if rule, _ := EvaluateRate(RateInput{Course: course, Grade: "Grade 5"}); rule != RuleCourseBase {
		t.Errorf("rule = %q, want %q", rule, RuleCourseBase)
	}
	if rule, rate := EvaluateRate(RateInput{}); rule != "" || rate != 0 {
		t.Errorf("empty input = %q %v, want no match", rule, rate)
	}
}
