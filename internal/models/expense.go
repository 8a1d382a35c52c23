package models

// DefaultExpenseCategory is used when an expense is recorded without a category.
const DefaultExpenseCategory = "General"

// Expense is a running cost of the center. It never touches student balances.
type Expense struct {
	ID          string  `db:"id" json:"id"`
	Date        Date    `db:"date" json:"date"`
	Item        string  `db:"item" json:"item"`
	Amount      float64 `db:"amount" json:"amount"`
	Category    string  `db:"category" json:"category"`
	Description string  `db:"description" json:"description"`

	CreatedAt int64 `db:"created_at" json:"created_at"`
	UpdatedAt int64 `db:"updated_at" json:"updated_at"`
}
