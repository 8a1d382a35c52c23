package sqlstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tutorbooks/internal/models"
	"github.com/mmynk/tutorbooks/internal/storage"
)

const expenseColumns = `id, date, item, amount, category, description, created_at, updated_at`

// CreateExpense persists a new expense, generating its ID if unset.
func (q *Queries) CreateExpense(ctx context.Context, e *models.Expense) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	e.CreatedAt, e.UpdatedAt = now, now

	_, err := q.exec(ctx, `
		INSERT INTO expenses (`+expenseColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.Date, e.Item, e.Amount, e.Category, e.Description, e.CreatedAt, e.UpdatedAt)
	return wrap(err, "insert expense")
}

// GetExpense retrieves an expense by ID.
func (q *Queries) GetExpense(ctx context.Context, id string) (*models.Expense, error) {
	var e models.Expense
	if err := q.get(ctx, &e, `SELECT `+expenseColumns+` FROM expenses WHERE id = ?`, id); err != nil {
		return nil, wrap(err, "get expense "+id)
	}
	return &e, nil
}

// ListExpenses returns expenses newest first.
func (q *Queries) ListExpenses(ctx context.Context, f storage.ExpenseFilter) ([]models.Expense, error) {
	var w where
	if f.Category != "" {
		w.add("category = ?", f.Category)
	}
	w.like(f.Search, "item", "description")
	w.dateRange("date", f.Range)

	expenses := []models.Expense{}
	if err := q.selectAll(ctx, &expenses, `SELECT `+expenseColumns+` FROM expenses`+w.String()+` ORDER BY date DESC, created_at DESC, id`, w.args...); err != nil {
		return nil, wrap(err, "list expenses")
	}
	return expenses, nil
}

// UpdateExpense writes every mutable expense field.
func (q *Queries) UpdateExpense(ctx context.Context, e *models.Expense) error {
	e.UpdatedAt = time.Now().Unix()
	err := q.execOne(ctx, `
		UPDATE expenses SET date = ?, item = ?, amount = ?, category = ?, description = ?, updated_at = ?
		WHERE id = ?
	`, e.Date, e.Item, e.Amount, e.Category, e.Description, e.UpdatedAt, e.ID)
	return wrap(err, "update expense "+e.ID)
}

// DeleteExpense removes an expense.
func (q *Queries) DeleteExpense(ctx context.Context, id string) error {
	return wrap(q.execOne(ctx, `DELETE FROM expenses WHERE id = ?`, id), "delete expense "+id)
}

// ListExpenseCategories returns the distinct categories in use, sorted.
func (q *Queries) ListExpenseCategories(ctx context.Context) ([]string, error) {
	categories := []string{}
	if err := q.selectAll(ctx, &categories, `SELECT DISTINCT category FROM expenses ORDER BY category`); err != nil {
		return nil, wrap(err, "list expense categories")
	}
	return categories, nil
}
