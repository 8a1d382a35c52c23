package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/tutorbooks/internal/backoffice"
	"github.com/mmynk/tutorbooks/internal/storage"
	"github.com/mmynk/tutorbooks/pkg/api"
	"github.com/mmynk/tutorbooks/pkg/api/apiconnect"
)

// ExpenseService implements the Connect ExpenseService.
type ExpenseService struct {
	bo *backoffice.Service
}

var _ apiconnect.ExpenseServiceHandler = (*ExpenseService)(nil)

// NewExpenseService creates an ExpenseService backed by bo.
func NewExpenseService(bo *backoffice.Service) *ExpenseService {
	return &ExpenseService{bo: bo}
}

func (s *ExpenseService) CreateExpense(ctx context.Context, req *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.ExpenseResponse], error) {
	expense, err := s.bo.CreateExpense(ctx, backoffice.ExpenseInput(req.Msg.ExpenseFields))
	if err != nil {
		return nil, toConnect(err)
	}
	slog.Info("Expense created", "expense_id", expense.ID, "amount", expense.Amount)
	return connect.NewResponse(&api.ExpenseResponse{Expense: toExpense(expense)}), nil
}

func (s *ExpenseService) GetExpense(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.ExpenseResponse], error) {
	expense, err := s.bo.GetExpense(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnect(err)
	}
	return connect.NewResponse(&api.ExpenseResponse{Expense: toExpense(expense)}), nil
}

func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	r, err := backoffice.ParseRange(req.Msg.StartDate, req.Msg.EndDate)
	if err != nil {
		return nil, toConnect(err)
	}
	expenses, err := s.bo.ListExpenses(ctx, storage.ExpenseFilter{
		Category: req.Msg.Category,
		Search:   req.Msg.Search,
		Range:    r,
	})
	if err != nil {
		return nil, toConnect(err)
	}
	out := make([]*api.Expense, len(expenses))
	for i := range expenses {
		out[i] = toExpense(&expenses[i])
	}
	return connect.NewResponse(&api.ListExpensesResponse{Expenses: out}), nil
}

func (s *ExpenseService) UpdateExpense(ctx context.Context, req *connect.Request[api.UpdateExpenseRequest]) (*connect.Response[api.ExpenseResponse], error) {
	expense, err := s.bo.UpdateExpense(ctx, req.Msg.ID, backoffice.ExpenseUpdate(req.Msg.ExpensePatch))
	if err != nil {
		return nil, toConnect(err)
	}
	return connect.NewResponse(&api.ExpenseResponse{Expense: toExpense(expense)}), nil
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error) {
	if err := s.bo.DeleteExpense(ctx, req.Msg.ID); err != nil {
		return nil, toConnect(err)
	}
	slog.Info("Expense deleted", "expense_id", req.Msg.ID)
	return connect.NewResponse(&api.Empty{}), nil
}

func (s *ExpenseService) ListExpenseCategories(ctx context.Context, req *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error) {
	categories, err := s.bo.ListExpenseCategories(ctx)
	if err != nil {
		return nil, toConnect(err)
	}
	return connect.NewResponse(&api.ListCategoriesResponse{Categories: categories}), nil
}

func (s *ExpenseService) GetExpenseSummary(ctx context.Context, req *connect.Request[api.RangeRequest]) (*connect.Response[api.ExpenseSummary], error) {
	r, err := backoffice.ParseRange(req.Msg.StartDate, req.Msg.EndDate)
	if err != nil {
		return nil, toConnect(err)
	}
	sum, err := s.bo.ExpenseSummary(ctx, r)
	if err != nil {
		return nil, toConnect(err)
	}
	return connect.NewResponse(&api.ExpenseSummary{
		Period:         toPeriod(sum.Period),
		TotalAmount:    sum.TotalAmount,
		ExpenseCount:   sum.ExpenseCount,
		AverageExpense: sum.AverageExpense,
		ByCategory:     mapValues(sum.ByCategory, toBucket),
		ByMonth:        mapValues(sum.ByMonth, toBucket),
	}), nil
}
