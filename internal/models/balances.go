package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

// DefaultLowBalanceThreshold is the hour count under which a balance is flagged as low.
const DefaultLowBalanceThreshold = 2.0

// Balances maps a course name to the hours a student has purchased but not used yet.
//
// Every read and write of a student's hours goes through these methods so the
// floor-at-zero rule lives in exactly one place. A course with no entry has a
// balance of 0.
type Balances map[string]float64

// Get returns the balance for course, or 0 when the course has no entry.
func (b Balances) Get(course string) float64 {
	return b[course]
}

// Apply adds delta to the balance for course and returns the new balance.
// The result is floored at zero: a debit larger than the remaining balance
// drops the excess instead of going negative, so callers that need an
// "insufficient balance" answer must check Get before debiting.
func (b *Balances) Apply(course string, delta float64) float64 {
	if *b == nil {
		*b = make(Balances)
	}
	next := math.Max(0, (*b)[course]+delta)
	(*b)[course] = next
	return next
}

// IsLow reports whether the balance for course is below threshold.
func (b Balances) IsLow(course string, threshold float64) bool {
	return b.Get(course) < threshold
}

// Rename moves the balance held under from to to, adding to any balance
// already held under to. It reports whether an entry was moved.
func (b Balances) Rename(from, to string) bool {
	if from == to {
		return false
	}
	hours, ok := b[from]
	if !ok {
		return false
	}
	delete(b, from)
	b[to] += hours
	return true
}

// Courses returns the course names with an entry, sorted.
func (b Balances) Courses() []string {
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy.
func (b Balances) Clone() Balances {
	out := make(Balances, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Value stores the balances as a JSON object.
func (b Balances) Value() (driver.Value, error) {
	return marshalHoursMap(b)
}

// Scan reads a JSON object column.
func (b *Balances) Scan(src any) error {
	m, err := unmarshalHoursMap(src)
	if err != nil {
		return fmt.Errorf("scan balances: %w", err)
	}
	*b = m
	return nil
}

func marshalHoursMap[M ~map[string]float64](m M) (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func unmarshalHoursMap(src any) (map[string]float64, error) {
	var data []byte
	switch v := src.(type) {
	case nil:
		return map[string]float64{}, nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return nil, fmt.Errorf("unsupported column type %T", src)
	}
	m := map[string]float64{}
	if len(data) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}
