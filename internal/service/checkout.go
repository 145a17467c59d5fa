package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pizza-shop-backend/internal/cart"
	"pizza-shop-backend/internal/client"
	"pizza-shop-backend/internal/dto"
	"pizza-shop-backend/internal/model"
	"pizza-shop-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const chargeCurrency = "USD"

// maxLineQuantity bounds a single line, including after duplicate ids are
// merged, keeping quantities far from int32 overflow.
const maxLineQuantity = 1000

type CheckoutService interface {
	// SubmitDeferredOrder places a cash/pickup order. No external calls.
	SubmitDeferredOrder(ctx context.Context, req *dto.OrderRequest) (string, error)

	// SubmitPaidOrder charges the card through Square, then persists the
	// order. All-or-nothing with respect to order visibility: a declined
	// or failed charge creates no order.
	SubmitPaidOrder(ctx context.Context, req *dto.PaymentOrderRequest) (string, error)

	GetOrder(ctx context.Context, orderID string) (*model.Order, error)
}

type checkoutServiceImpl struct {
	orderRepo    repository.OrderRepository
	pizzaRepo    repository.PizzaRepository
	squareClient client.SquareClient
	logger       *zap.Logger
}

func NewCheckoutService(
	orderRepo repository.OrderRepository,
	pizzaRepo repository.PizzaRepository,
	squareClient client.SquareClient,
	logger *zap.Logger,
) CheckoutService {
	return &checkoutServiceImpl{
		orderRepo:    orderRepo,
		pizzaRepo:    pizzaRepo,
		squareClient: squareClient,
		logger:       logger,
	}
}

func (s *checkoutServiceImpl) SubmitDeferredOrder(ctx context.Context, req *dto.OrderRequest) (string, error) {
	method := model.PaymentMethod(req.PaymentMethod)
	if method != model.PaymentMethodCash && method != model.PaymentMethodPickup {
		return "", model.NewValidationError("payment method must be cash or pickup, got %q", req.PaymentMethod)
	}

	order, err := s.buildOrder(ctx, req, method)
	if err != nil {
		return "", err
	}
	order.Status = model.OrderStatusPending

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return "", &model.StorageError{Err: err}
	}

	s.logger.Info("order placed",
		zap.String("order_id", order.OrderID),
		zap.String("payment_method", string(method)),
		zap.String("total_amount", order.TotalAmount.String()),
	)

	return order.OrderID, nil
}

func (s *checkoutServiceImpl) SubmitPaidOrder(ctx context.Context, req *dto.PaymentOrderRequest) (string, error) {
	if model.PaymentMethod(req.PaymentMethod) != model.PaymentMethodOnline {
		return "", model.NewValidationError("payment method must be online, got %q", req.PaymentMethod)
	}
	if strings.TrimSpace(req.PaymentToken) == "" {
		return "", model.NewValidationError("payment token is required")
	}

	order, err := s.buildOrder(ctx, &req.OrderRequest, model.PaymentMethodOnline)
	if err != nil {
		return "", err
	}

	if !s.squareClient.Configured() {
		return "", model.ErrGatewayNotConfigured
	}

	// Charge the rounded minor-unit amount; the float total never reaches
	// the gateway. The gateway call is the only suspension point and no
	// lock is held across it.
	payment, err := s.squareClient.CreatePayment(ctx, &client.CreatePaymentRequest{
		SourceID:         req.PaymentToken,
		IdempotencyKey:   idempotencyKey(req.AttemptID),
		AmountMinorUnits: MinorUnits(order.TotalAmount),
		Currency:         chargeCurrency,
	})
	if err != nil {
		return "", asPaymentError(err)
	}

	order.Status = model.OrderStatusPaid
	order.PaymentID = payment.PaymentID
	order.PaymentStatus = payment.Status

	if err := s.orderRepo.Create(ctx, order); err != nil {
		// Money captured, no order record. Never retry the charge or the
		// insert; surface for manual reconciliation.
		s.logger.Error("payment captured but order not recorded",
			zap.String("order_id", order.OrderID),
			zap.String("payment_id", payment.PaymentID),
			zap.Error(err),
		)
		return "", &model.PaymentError{
			Charged:   true,
			PaymentID: payment.PaymentID,
			Err:       err,
		}
	}

	s.logger.Info("card payment successful",
		zap.String("order_id", order.OrderID),
		zap.String("payment_id", payment.PaymentID),
		zap.String("payment_status", payment.Status),
	)

	return order.OrderID, nil
}

func (s *checkoutServiceImpl) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	return s.orderRepo.FindByOrderID(ctx, orderID)
}

// buildOrder validates the request and materializes an order snapshot.
// Line items are normalized through the cart (duplicate ids merged), unit
// prices are taken from the catalog rather than the client, and the
// client-sent total must match the recomputed one to the cent.
func (s *checkoutServiceImpl) buildOrder(ctx context.Context, req *dto.OrderRequest, method model.PaymentMethod) (*model.Order, error) {
	if len(req.Pizzas) == 0 {
		return nil, model.NewValidationError("cart is empty")
	}
	if strings.TrimSpace(req.FullName) == "" {
		return nil, model.NewValidationError("full name is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, model.NewValidationError("email is required")
	}
	if strings.TrimSpace(req.PhoneNumber) == "" {
		return nil, model.NewValidationError("phone number is required")
	}
	if method != model.PaymentMethodPickup && strings.TrimSpace(req.Address) == "" {
		return nil, model.NewValidationError("delivery address is required")
	}

	pizzaIDs := make([]string, 0, len(req.Pizzas))
	for _, item := range req.Pizzas {
		if item == nil {
			return nil, model.NewValidationError("line items must not be null")
		}
		if item.Quantity < 1 {
			return nil, model.NewValidationError("quantity for %q must be at least 1", item.ID)
		}
		if item.Quantity > maxLineQuantity {
			return nil, model.NewValidationError("quantity for %q exceeds the limit of %d", item.ID, maxLineQuantity)
		}
		pizzaIDs = append(pizzaIDs, item.ID)
	}

	pizzas, err := s.pizzaRepo.FindByIDs(ctx, pizzaIDs)
	if err != nil {
		return nil, fmt.Errorf("look up pizzas: %w", err)
	}
	catalog := make(map[string]*model.Pizza, len(pizzas))
	for _, p := range pizzas {
		catalog[p.ID] = p
	}

	basket := cart.New()
	for _, item := range req.Pizzas {
		p, ok := catalog[item.ID]
		if !ok {
			return nil, model.NewValidationError("unknown pizza %q", item.ID)
		}
		if !item.Price.Equal(p.Price) {
			return nil, model.NewValidationError("price for %q does not match the menu", item.ID)
		}

		if line, ok := basket.Line(item.ID); ok {
			merged := int64(line.Quantity) + int64(item.Quantity)
			if merged > maxLineQuantity {
				return nil, model.NewValidationError("quantity for %q exceeds the limit of %d", item.ID, maxLineQuantity)
			}
			basket.SetQuantity(item.ID, int32(merged))
			continue
		}
		basket.Add(cart.LineItem{ID: p.ID, Name: p.Name, UnitPrice: p.Price})
		basket.SetQuantity(item.ID, item.Quantity)
	}

	total := basket.Total()
	if !req.TotalAmount.Equal(total) {
		return nil, model.NewValidationError("total amount %s does not match the order total %s", req.TotalAmount, total)
	}

	items := make([]model.OrderItem, 0, basket.Len())
	for _, line := range basket.Lines() {
		items = append(items, model.OrderItem{
			PizzaID:   line.ID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}

	return &model.Order{
		OrderID:       uuid.NewString(),
		FullName:      strings.TrimSpace(req.FullName),
		Email:         strings.TrimSpace(req.Email),
		Address:       strings.TrimSpace(req.Address),
		PhoneNumber:   strings.TrimSpace(req.PhoneNumber),
		PaymentMethod: method,
		TotalAmount:   total,
		CreatedAt:     time.Now().UTC(),
		Items:         items,
	}, nil
}

// MinorUnits converts a decimal amount to integer cents, rounding half
// away from zero: 10.005 → 1001.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// idempotencyKey derives a stable key from the client's attempt id when
// present, so retries of the same logical submission dedupe at the gateway.
// Without one, every call is a fresh charge attempt.
func idempotencyKey(attemptID string) string {
	if attemptID == "" {
		return uuid.NewString()
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("checkout-attempt:"+attemptID)).String()
}

func asPaymentError(err error) *model.PaymentError {
	var gwErr *client.GatewayError
	if errors.As(err, &gwErr) {
		return &model.PaymentError{Detail: gwErr.Detail, Err: err}
	}
	return &model.PaymentError{Err: err}
}
