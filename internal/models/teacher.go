package models

import (
	"database/sql/driver"
	"fmt"
)

// DefaultTeacherRate is the hourly rate given to a teacher created without one.
const DefaultTeacherRate = 30.0

// GradeRates maps a grade label (e.g. "Grade 5") to a teacher's hourly rate for it.
type GradeRates map[string]float64

// Lookup returns the rate set for grade and whether one is set.
func (g GradeRates) Lookup(grade string) (float64, bool) {
	if grade == "" {
		return 0, false
	}
	rate, ok := g[grade]
	return rate, ok
}

// Set stores rate for grade.
func (g *GradeRates) Set(grade string, rate float64) {
	if *g == nil {
		*g = make(GradeRates)
	}
	(*g)[grade] = rate
}

// Value stores the rates as a JSON object.
func (g GradeRates) Value() (driver.Value, error) {
	return marshalHoursMap(g)
}

// Scan reads a JSON object column.
func (g *GradeRates) Scan(src any) error {
	m, err := unmarshalHoursMap(src)
	if err != nil {
		return fmt.Errorf("scan grade rates: %w", err)
	}
	*g = m
	return nil
}

// Teacher represents a tutor and the rate matrix used to pay them.
type Teacher struct {
	// ID is the unique identifier for the teacher (UUID format).
	ID string `db:"id" json:"id"`

	// Name is the teacher's display name. Unique across teachers.
	Name string `db:"name" json:"name"`

	// DefaultRate is the hourly rate used when no grade-specific rate applies.
	DefaultRate float64 `db:"default_rate" json:"default_rate"`

	// GradeRates holds grade-specific overrides of DefaultRate.
	GradeRates GradeRates `db:"grade_rates" json:"grade_rates"`

	CreatedAt int64 `db:"created_at" json:"created_at"`
	UpdatedAt int64 `db:"updated_at" json:"updated_at"`
}

// AllRates returns the grade rates plus the default rate under "Default".
func (t *Teacher) AllRates() map[string]float64 {
	rates := make(map[string]float64, len(t.GradeRates)+1)
	for grade, rate := range t.GradeRates {
		rates[grade] = rate
	}
	rates["Default"] = t.DefaultRate
	return rates
}
