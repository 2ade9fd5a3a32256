package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/darlingboutique/boutique-backend/internal/logger"
	"github.com/darlingboutique/boutique-backend/internal/payment"
)

// InvalidPhoneError is returned when the phone number does not match the
// selected payment method. Nothing is persisted in that case.
type InvalidPhoneError struct {
	Method payment.Method
}

func (e InvalidPhoneError) Error() string {
	return fmt.Sprintf("invalid phone number for %s", e.Method)
}

// PaymentError is a gateway decline or rejection. The order already exists
// and has been moved to cancelled when this is returned.
type PaymentError struct {
	Reason string
}

func (e PaymentError) Error() string {
	return "payment failed: " + e.Reason
}

// CreateInput is the accepted checkout request.
type CreateInput struct {
	Items         []Item
	PaymentMethod payment.Method
	PhoneNumber   string
	UserID        *string
	SessionID     *string
}

// Service drives the order lifecycle: validate, persist pending, pay,
// persist the terminal state, clear the originating cart.
type Service struct {
	repo           Repository
	carts          CartStore
	gateway        payment.Gateway
	paymentTimeout time.Duration
}

func NewService(repo Repository, carts CartStore, gateway payment.Gateway, paymentTimeout time.Duration) *Service {
	return &Service{repo: repo, carts: carts, gateway: gateway, paymentTimeout: paymentTimeout}
}

// Create runs one checkout attempt. Every path that fails to confirm the
// order after the pending insert leaves it cancelled and reports a reason;
// an order is never returned stuck in pending.
func (s *Service) Create(ctx context.Context, in CreateInput) (Order, error) {
	if !payment.ValidatePhoneNumber(in.PhoneNumber, in.PaymentMethod) {
		return Order{}, InvalidPhoneError{Method: in.PaymentMethod}
	}

	// The total is always recomputed server-side from the submitted
	// snapshots; a client-sent total is never trusted.
	var total float64
	for _, item := range in.Items {
		total += item.Subtotal
	}

	now := time.Now().UTC()
	id := uuid.NewString()
	ord := Order{
		ID:            id,
		Number:        "DRB" + strings.ToUpper(id[:8]),
		UserID:        in.UserID,
		SessionID:     in.SessionID,
		Items:         in.Items,
		Total:         total,
		PaymentMethod: in.PaymentMethod,
		PhoneNumber:   in.PhoneNumber,
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Insert(ctx, ord); err != nil {
		return Order{}, fmt.Errorf("persist pending order: %w", err)
	}

	payCtx, cancel := context.WithTimeout(ctx, s.paymentTimeout)
	defer cancel()

	res := s.gateway.Process(payCtx, payment.Request{
		PhoneNumber: in.PhoneNumber,
		Amount:      total,
		Method:      in.PaymentMethod,
		OrderNumber: ord.Number,
	})

	if !res.Success {
		s.cancelOrder(ctx, &ord)
		return Order{}, PaymentError{Reason: res.Error}
	}

	ord.Status = StatusConfirmed
	ord.UpdatedAt = time.Now().UTC()
	if err := s.repo.Replace(ctx, ord.ID, ord); err != nil {
		s.cancelOrder(ctx, &ord)
		return Order{}, fmt.Errorf("confirm order: %w", err)
	}

	if ord.SessionID != nil && *ord.SessionID != "" {
		if err := s.carts.DeleteBySession(ctx, *ord.SessionID); err != nil {
			// the order is already confirmed; a leftover cart is not fatal
			logger.L().Warn("clear cart after checkout",
				zap.String("order_id", ord.ID),
				zap.String("session_id", *ord.SessionID),
				zap.Error(err))
		}
	}

	return ord, nil
}

// GetByID returns a single order.
func (s *Service) GetByID(ctx context.Context, id string) (Order, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns orders matching the filter, newest first.
func (s *Service) List(ctx context.Context, f Filter) ([]Order, error) {
	return s.repo.Find(ctx, f)
}

// adminStatuses are the transitions allowed through the administrative
// update; pending and confirmed are reserved for the payment flow.
var adminStatuses = map[Status]bool{
	StatusProcessing: true,
	StatusShipped:    true,
	StatusDelivered:  true,
	StatusCancelled:  true,
}

// UpdateStatus applies a manual status transition to an existing order.
func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) (Order, error) {
	if !adminStatuses[status] {
		return Order{}, fmt.Errorf("invalid status: %s", status)
	}

	ord, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Order{}, err
	}

	ord.Status = status
	ord.UpdatedAt = time.Now().UTC()
	if err := s.repo.Replace(ctx, id, ord); err != nil {
		return Order{}, err
	}
	return ord, nil
}

// cancelOrder moves an order to cancelled best-effort. A failed write is
// logged rather than surfaced so the original failure reason reaches the
// caller.
func (s *Service) cancelOrder(ctx context.Context, ord *Order) {
	ord.Status = StatusCancelled
	ord.UpdatedAt = time.Now().UTC()
	if err := s.repo.Replace(ctx, ord.ID, *ord); err != nil {
		logger.L().Error("cancel order",
			zap.String("order_id", ord.ID),
			zap.Error(err))
	}
}
