package backoffice

import (
	"context"
	"strings"

	"github.com/mmynk/tutorbooks/internal/models"
	"github.com/mmynk/tutorbooks/internal/storage"
)

// ExpenseInput holds the fields of a new expense.
type ExpenseInput struct {
	// Date defaults to today when empty.
	Date        string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Item        string  `json:"item" validate:"notblank,max=200"`
	Amount      float64 `json:"amount" validate:"gt=0"`
	Category    string  `json:"category" validate:"max=100"`
	Description string  `json:"description" validate:"max=500"`
}

// ExpenseUpdate changes the fields that are set.
type ExpenseUpdate struct {
	Date        *string  `json:"date" validate:"omitnil,datetime=2006-01-02"`
	Item        *string  `json:"item" validate:"omitnil,notblank,max=200"`
	Amount      *float64 `json:"amount" validate:"omitnil,gt=0"`
	Category    *string  `json:"category" validate:"omitnil,max=100"`
	Description *string  `json:"description" validate:"omitnil,max=500"`
}

// CreateExpense records a running cost.
func (s *Service) CreateExpense(ctx context.Context, in ExpenseInput) (*models.Expense, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	expense := &models.Expense{
		Date:        s.today(),
		Item:        strings.TrimSpace(in.Item),
		Amount:      in.Amount,
		Category:    strings.TrimSpace(in.Category),
		Description: strings.TrimSpace(in.Description),
	}
	if in.Date != "" {
		expense.Date, _ = models.ParseDate(in.Date)
	}
	if expense.Category == "" {
		expense.Category = models.DefaultExpenseCategory
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, fromStore(err, "expense", expense.ID)
	}
	return expense, nil
}

// GetExpense returns an expense by ID.
func (s *Service) GetExpense(ctx context.Context, id string) (*models.Expense, error) {
	expense, err := s.store.GetExpense(ctx, id)
	if err != nil {
		return nil, fromStore(err, "expense", id)
	}
	return expense, nil
}

// ListExpenses returns expenses matching f, newest first.
func (s *Service) ListExpenses(ctx context.Context, f storage.ExpenseFilter) ([]models.Expense, error) {
	expenses, err := s.store.ListExpenses(ctx, f)
	if err != nil {
		return nil, fromStore(err, "expenses", "")
	}
	return expenses, nil
}

// UpdateExpense changes an expense.
func (s *Service) UpdateExpense(ctx context.Context, id string, in ExpenseUpdate) (*models.Expense, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	expense, err := s.store.GetExpense(ctx, id)
	if err != nil {
		return nil, fromStore(err, "expense", id)
	}
	if in.Date != nil {
		expense.Date, _ = models.ParseDate(*in.Date)
	}
	if in.Item != nil {
		expense.Item = *trimmed(in.Item)
	}
	if in.Amount != nil {
		expense.Amount = *in.Amount
	}
	if in.Category != nil {
		expense.Category = *trimmed(in.Category)
		if expense.Category == "" {
			expense.Category = models.DefaultExpenseCategory
		}
	}
	if in.Description != nil {
		expense.Description = *trimmed(in.Description)
	}

	if err := s.store.UpdateExpense(ctx, expense); err != nil {
		return nil, fromStore(err, "expense", id)
	}
	return expense, nil
}

// DeleteExpense removes an expense.
func (s *Service) DeleteExpense(ctx context.Context, id string) error {
	if err := s.store.DeleteExpense(ctx, id); err != nil {
		return fromStore(err, "expense", id)
	}
	return nil
}

// ListExpenseCategories returns the categories in use, sorted.
func (s *Service) ListExpenseCategories(ctx context.Context) ([]string, error) {
	categories, err := s.store.ListExpenseCategories(ctx)
	if err != nil {
		return nil, fromStore(err, "expense categories", "")
	}
	return categories, nil
}
