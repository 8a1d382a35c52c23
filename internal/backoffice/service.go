// Package backoffice implements the tutoring center's use cases: entity
// management, the session and payment ledger, and reports.
//
// Every method returns either a result or an *Error whose Kind tells the
// caller how to react. Operations that change a student's hour balance run in
// a single storage unit of work together with the fact record they belong to.
package backoffice

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/mmynk/tutorbooks/internal/metrics"
	"github.com/mmynk/tutorbooks/internal/models"
	"github.com/mmynk/tutorbooks/internal/storage"
)

// balanceEpsilon absorbs float noise when comparing hour balances.
const balanceEpsilon = 1e-9

// Service implements the back-office use cases.
type Service struct {
	store      storage.Store
	lowBalance float64
	today      func() models.Date
}

// Option configures a Service.
type Option func(*Service)

// WithLowBalanceThreshold sets the hour count under which balances are reported as low.
func WithLowBalanceThreshold(hours float64) Option {
	return func(s *Service) {
		if hours > 0 {
			s.lowBalance = hours
		}
	}
}

// WithClock overrides how the service determines the current day.
func WithClock(today func() models.Date) Option {
	return func(s *Service) { s.today = today }
}

// New creates a Service backed by store.
func New(store storage.Store, opts ...Option) *Service {
	s := &Service{
		store:      store,
		lowBalance: models.DefaultLowBalanceThreshold,
		today:      models.Today,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today returns the current day as seen by the service.
func (s *Service) Today() models.Date {
	return s.today()
}

// LowBalanceThreshold returns the configured low-balance threshold in hours.
func (s *Service) LowBalanceThreshold() float64 {
	return s.lowBalance
}

// ledgerChange is a committed balance delta, recorded in metrics after commit.
type ledgerChange struct {
	course string
	delta  float64
}

// inTx runs fn in a unit of work. Any error that is not already an *Error is
// mapped through fromStore so internals never leak to callers.
func (s *Service) inTx(ctx context.Context, entity, id string, fn func(q storage.Queries, changes *[]ledgerChange) error) error {
	var changes []ledgerChange
	err := s.store.WithTx(ctx, func(q storage.Queries) error {
		changes = changes[:0]
		return fn(q, &changes)
	})
	if err != nil {
		if errors.Is(err, storage.ErrStale) {
			metrics.StaleWrites.Inc()
		}
		return fromStore(err, entity, id)
	}
	for _, c := range changes {
		metrics.RecordBalanceChange(c.course, c.delta)
	}
	return nil
}

// applyBalance changes a student's balance for course by delta (floored at
// zero) and saves it under the student's version check. The effective change
// is appended to changes.
func applyBalance(ctx context.Context, q storage.Queries, student *models.Student, course string, delta float64, changes *[]ledgerChange) (float64, error) {
	before := student.Balances.Get(course)
	after := student.Balances.Apply(course, delta)
	if err := q.SaveStudentBalances(ctx, student); err != nil {
		return 0, fromStore(err, "student", student.ID)
	}
	if effective := after - before; effective != 0 {
		*changes = append(*changes, ledgerChange{course: course, delta: effective})
	}
	return after, nil
}

// covers reports whether balance is enough for required hours.
func covers(balance, required float64) bool {
	return balance+balanceEpsilon >= required
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
