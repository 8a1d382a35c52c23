package sqlstore

import (
	"context"

	"github.com/mmynk/tutorbooks/internal/models"
)

const staffColumns = `id, email, display_name, password_hash, role, created_at, updated_at`

// CreateStaff inserts a new staff account.
func (q *Queries) CreateStaff(ctx context.Context, s *models.Staff) error {
	query := `
		INSERT INTO staff (` + staffColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := q.exec(ctx, query,
		s.ID,
		s.Email,
		s.DisplayName,
		s.PasswordHash,
		s.Role,
		s.CreatedAt,
		s.UpdatedAt,
	)
	return wrap(err, "create staff")
}

// GetStaff retrieves a staff account by ID.
func (q *Queries) GetStaff(ctx context.Context, id string) (*models.Staff, error) {
	var s models.Staff
	if err := q.get(ctx, &s, `SELECT `+staffColumns+` FROM staff WHERE id = ?`, id); err != nil {
		return nil, wrap(err, "get staff by id")
	}
	return &s, nil
}

// GetStaffByEmail retrieves a staff account by email address.
func (q *Queries) GetStaffByEmail(ctx context.Context, email string) (*models.Staff, error) {
	var s models.Staff
	if err := q.get(ctx, &s, `SELECT `+staffColumns+` FROM staff WHERE email = ?`, email); err != nil {
		return nil, wrap(err, "get staff by email")
	}
	return &s, nil
}
