package backoffice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/tutorbooks/internal/models"
	"github.com/mmynk/tutorbooks/internal/storage"
)

// wrappedStore hands every unit of work a Queries decorated by wrap.
type wrappedStore struct {
	storage.Store
	wrap func(storage.Queries) storage.Queries
}

func (s wrappedStore) WithTx(ctx context.Context, fn func(q storage.Queries) error) error {
	return s.Store.WithTx(ctx, func(q storage.Queries) error {
		return fn(s.wrap(q))
	})
}

// failingSessionWrites fails every session insert after the balance has been written.
type failingSessionWrites struct {
	storage.Queries
}

func (failingSessionWrites) CreateSession(context.Context, *models.Session) error {
	return errors.New("disk I/O error")
}

// staleStudentReads returns students carrying an outdated version.
type staleStudentReads struct {
	storage.Queries
}

func (q staleStudentReads) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	student, err := q.Queries.GetStudent(ctx, id)
	if err != nil {
		return nil, err
	}
	student.Version--
	return student, nil
}

func TestSessionRollback(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		wrap func(storage.Queries) storage.Queries
		kind Kind
	}{
		{
			name: "failed session insert undoes the debit",
			wrap: func(q storage.Queries) storage.Queries { return failingSessionWrites{q} },
			kind: KindInternal,
		},
		{
			name: "stale student version is a conflict",
			wrap: func(q storage.Queries) storage.Queries { return staleStudentReads{q} },
			kind: KindConflict,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 5)
			svc := New(wrappedStore{Store: f.store, wrap: tt.wrap}, WithClock(func() models.Date { return testToday }))

			_, err := svc.CreateSession(ctx, f.session("10:00", "12:00"))
			require.Error(t, err)
			assert.Equal(t, tt.kind, KindOf(err))

			assert.Equal(t, 5.0, f.balance(t))
			sessions, err := f.svc.ListSessions(ctx, storage.FactFilter{})
			require.NoError(t, err)
			assert.Empty(t, sessions)
		})
	}
}

func TestSessionHoursNamesField(t *testing.T) {
	tests := []struct {
		start, end string
		field      string
	}{
		{"9am", "10:00", "start_time"},
		{"09:00", "25:00", "end_time"},
		{"09:00", "09:00", "end_time"},
	}
	for _, tt := range tests {
		_, err := sessionHours(tt.start, tt.end)
		var berr *Error
		require.ErrorAs(t, err, &berr, "%s-%s", tt.start, tt.end)
		assert.Equal(t, KindValidationFailed, berr.Kind)
		assert.Contains(t, berr.Fields, tt.field, "%s-%s", tt.start, tt.end)
		assert.Len(t, berr.Fields, 1)
	}
}
