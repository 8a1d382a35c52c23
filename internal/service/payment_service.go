package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/tutorbooks/internal/backoffice"
	"github.com/mmynk/tutorbooks/pkg/api"
	"github.com/mmynk/tutorbooks/pkg/api/apiconnect"
)

// PaymentService implements the Connect PaymentService.
type PaymentService struct {
	bo *backoffice.Service
}

var _ apiconnect.PaymentServiceHandler = (*PaymentService)(nil)

// NewPaymentService creates a PaymentService backed by bo.
func NewPaymentService(bo *backoffice.Service) *PaymentService {
	return &PaymentService{bo: bo}
}

// CreatePayment records a purchase and credits the student's balance.
func (s *PaymentService) CreatePayment(ctx context.Context, req *connect.Request[api.CreatePaymentRequest]) (*connect.Response[api.PaymentResponse], error) {
	payment, err := s.bo.CreatePayment(ctx, backoffice.PaymentInput(req.Msg.PaymentFields))
	if err != nil {
		return nil, toConnect(err)
	}
	slog.Info("Payment created",
		"payment_id", payment.ID,
		"student_id", payment.StudentID,
		"hours", payment.PurchasedHours,
		"amount", payment.AmountPaid,
	)
	return connect.NewResponse(&api.PaymentResponse{Payment: toPayment(payment)}), nil
}

func (s *PaymentService) GetPayment(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.PaymentResponse], error) {
	payment, err := s.bo.GetPayment(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnect(err)
	}
	return connect.NewResponse(&api.PaymentResponse{Payment: toPayment(payment)}), nil
}

func (s *PaymentService) ListPayments(ctx context.Context, req *connect.Request[api.ListFactsRequest]) (*connect.Response[api.ListPaymentsResponse], error) {
	f, err := factFilter(req.Msg)
	if err != nil {
		return nil, toConnect(err)
	}
	payments, err := s.bo.ListPayments(ctx, f)
	if err != nil {
		return nil, toConnect(err)
	}
	out := make([]*api.Payment, len(payments))
	for i := range payments {
		out[i] = toPayment(&payments[i])
	}
	return connect.NewResponse(&api.ListPaymentsResponse{Payments: out}), nil
}

func (s *PaymentService) UpdatePayment(ctx context.Context, req *connect.Request[api.UpdatePaymentRequest]) (*connect.Response[api.PaymentResponse], error) {
	payment, err := s.bo.UpdatePayment(ctx, req.Msg.ID, backoffice.PaymentUpdate(req.Msg.PaymentPatch))
	if err != nil {
		return nil, toConnect(err)
	}
	slog.Info("Payment updated", "payment_id", payment.ID, "hours", payment.PurchasedHours)
	return connect.NewResponse(&api.PaymentResponse{Payment: toPayment(payment)}), nil
}

func (s *PaymentService) DeletePayment(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error) {
	if err := s.bo.DeletePayment(ctx, req.Msg.ID); err != nil {
		return nil, toConnect(err)
	}
	slog.Info("Payment deleted", "payment_id", req.Msg.ID)
	return connect.NewResponse(&api.Empty{}), nil
}

func (s *PaymentService) GetPaymentSummary(ctx context.Context, req *connect.Request[api.RangeRequest]) (*connect.Response[api.PaymentSummary], error) {
	r, err := backoffice.ParseRange(req.Msg.StartDate, req.Msg.EndDate)
	if err != nil {
		return nil, toConnect(err)
	}
	sum, err := s.bo.PaymentSummary(ctx, r)
	if err != nil {
		return nil, toConnect(err)
	}
	return connect.NewResponse(&api.PaymentSummary{
		Period:            toPeriod(sum.Period),
		TotalRevenue:      sum.TotalRevenue,
		TotalHoursSold:    sum.TotalHoursSold,
		TotalDiscounts:    sum.TotalDiscounts,
		PaymentCount:      sum.PaymentCount,
		AveragePayment:    sum.AveragePayment,
		AverageHourlyRate: sum.AverageHourlyRate,
		Methods:           mapValues(sum.Methods, toBucket),
	}), nil
}
