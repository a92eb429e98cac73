package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/girishsunnykumar006-arch/bitesaver/internal/catalog"
	"github.com/girishsunnykumar006-arch/bitesaver/internal/checkout"
	"github.com/girishsunnykumar006-arch/bitesaver/internal/domain"
	"github.com/girishsunnykumar006-arch/bitesaver/internal/events"
	"github.com/girishsunnykumar006-arch/bitesaver/internal/repository"
	"github.com/girishsunnykumar006-arch/bitesaver/internal/validate"
)

// EventPublisher is the slice of the Kafka producer the service needs.
type EventPublisher interface {
	PublishOrderPlaced(events.OrderPlacedEvent) error
	PublishSellerApplied(events.SellerAppliedEvent) error
}

// StorefrontService orchestrates the session-scoped storefront flows: sign
// in/out, cart mutation against the catalog, checkout and seller onboarding.
// All state lives in the session passed in; the service itself is stateless
// apart from its collaborators.
type StorefrontService struct {
	catalog    *catalog.Catalog
	orderRepo  *repository.OrderRepository
	calculator *checkout.Calculator
	processor  *checkout.Processor
	producer   EventPublisher
	logger     *zap.Logger
}

func NewStorefrontService(
	cat *catalog.Catalog,
	orderRepo *repository.OrderRepository,
	calculator *checkout.Calculator,
	processor *checkout.Processor,
	producer EventPublisher,
	logger *zap.Logger,
) *StorefrontService {
	return &StorefrontService{
		catalog:    cat,
		orderRepo:  orderRepo,
		calculator: calculator,
		processor:  processor,
		producer:   producer,
		logger:     logger,
	}
}

// SignIn runs the credential format checks and, on success, flips the
// session's identity gate. No credential store exists; the gate trusts any
// input that passes the format checks.
func (s *StorefrontService) SignIn(sess *repository.Session, req domain.SignInRequest) (domain.User, validate.FieldErrors) {
	if errs := validate.SignIn(req); !errs.OK() {
		return domain.User{}, errs
	}

	user := domain.User{Email: req.Email}
	sess.Identity.Login(user)
	s.logger.Info("Session signed in",
		zap.String("session_id", sess.ID),
		zap.String("email", user.Email))
	return user, nil
}

func (s *StorefrontService) SignUp(sess *repository.Session, req domain.SignUpRequest) (domain.User, validate.FieldErrors) {
	if errs := validate.SignUp(req); !errs.OK() {
		return domain.User{}, errs
	}

	user := domain.User{Email: req.Email, Name: req.Name}
	sess.Identity.Login(user)
	s.logger.Info("Session signed up",
		zap.String("session_id", sess.ID),
		zap.String("email", user.Email))
	return user, nil
}

func (s *StorefrontService) SignOut(sess *repository.Session) {
	sess.Identity.Logout()
	s.logger.Info("Session signed out", zap.String("session_id", sess.ID))
}

// AddToCart resolves the catalog key and merges the entry into the session's
// cart. Adding is a gated action: logged-out sessions get ErrNotLoggedIn,
// which the HTTP layer turns into a sign-in redirect.
func (s *StorefrontService) AddToCart(sess *repository.Session, key domain.ItemKey) error {
	if !sess.Identity.IsLoggedIn() {
		return domain.ErrNotLoggedIn
	}

	entry, err := s.catalog.Entry(key)
	if err != nil {
		return err
	}
	return sess.Cart.Add(entry)
}

func (s *StorefrontService) RemoveFromCart(sess *repository.Session, key domain.ItemKey) {
	sess.Cart.Remove(key)
}

func (s *StorefrontService) UpdateQuantity(sess *repository.Session, key domain.ItemKey, quantity int) {
	sess.Cart.UpdateQuantity(key, quantity)
}

func (s *StorefrontService) ClearCart(sess *repository.Session) {
	sess.Cart.Clear()
}

func (s *StorefrontService) Cart(sess *repository.Session) domain.CartSummary {
	return sess.Cart.Summary()
}

// Quote derives the checkout totals for the session's current cart.
func (s *StorefrontService) Quote(sess *repository.Session) domain.OrderTotals {
	return s.calculator.ComputeTotals(sess.Cart.TotalPrice())
}

// PlaceOrder runs the full checkout flow: gate check, empty-cart check,
// delivery form validation, totals, simulated processing, then clears the
// cart on success. Field errors are reported separately from flow errors.
func (s *StorefrontService) PlaceOrder(ctx context.Context, sess *repository.Session, req domain.PlaceOrderRequest, requestID string) (*domain.Order, validate.FieldErrors, error) {
	user, ok := sess.Identity.User()
	if !ok {
		return nil, nil, domain.ErrNotLoggedIn
	}

	summary := sess.Cart.Summary()
	if len(summary.Items) == 0 {
		return nil, nil, domain.ErrEmptyCart
	}

	if errs := validate.Delivery(req.Delivery); !errs.OK() {
		return nil, errs, nil
	}

	payment := req.PaymentMethod
	if payment == "" {
		payment = domain.PaymentCashOnDelivery
	}

	order := &domain.Order{
		OrderID:       uuid.New().String(),
		Email:         user.Email,
		Items:         summary.Items,
		Totals:        s.calculator.ComputeTotals(summary.TotalPrice),
		Delivery:      req.Delivery,
		PaymentMethod: payment,
		Status:        domain.OrderStatusPending,
		PlacedAt:      time.Now(),
	}

	if err := s.processor.Process(ctx, order); err != nil {
		return nil, nil, fmt.Errorf("order processing aborted: %w", err)
	}

	s.orderRepo.SaveOrder(order)

	event := events.OrderPlacedEvent{
		EventID:    uuid.New().String(),
		OrderID:    order.OrderID,
		Email:      order.Email,
		TotalItems: summary.TotalItems,
		GrandTotal: order.Totals.GrandTotal.String(),
		Payment:    string(payment),
		Timestamp:  time.Now(),
		RequestID:  requestID,
	}
	if err := s.producer.PublishOrderPlaced(event); err != nil {
		// Publish failures do not fail the order; the event stream is
		// eventually consistent with the order log.
		s.logger.Error("Failed to publish order event",
			zap.String("order_id", order.OrderID),
			zap.Error(err))
	}

	sess.Cart.Clear()

	s.logger.Info("Order placed",
		zap.String("order_id", order.OrderID),
		zap.String("email", order.Email),
		zap.Int("total_items", summary.TotalItems),
		zap.String("grand_total", order.Totals.GrandTotal.String()))

	return order, nil, nil
}

func (s *StorefrontService) GetOrder(orderID string) (*domain.Order, error) {
	return s.orderRepo.GetOrder(orderID)
}

// ApplySeller validates both form steps at once and runs the application
// through the same simulated processing boundary as checkout.
func (s *StorefrontService) ApplySeller(ctx context.Context, app domain.SellerApplication, requestID string) (*domain.SellerApplicationResponse, validate.FieldErrors, error) {
	errs := validate.SellerDetails(app)
	for field, msg := range validate.SellerItems(app) {
		errs[field] = msg
	}
	if !errs.OK() {
		return nil, errs, nil
	}

	if err := s.processor.Wait(ctx); err != nil {
		return nil, nil, fmt.Errorf("application processing aborted: %w", err)
	}

	resp := &domain.SellerApplicationResponse{
		ApplicationID: uuid.New().String(),
		Status:        "RECEIVED",
		Message:       "Application submitted successfully",
	}

	event := events.SellerAppliedEvent{
		EventID:       uuid.New().String(),
		ApplicationID: resp.ApplicationID,
		BusinessName:  app.BusinessName,
		BusinessType:  app.BusinessType,
		ItemCount:     len(app.FoodItems),
		Timestamp:     time.Now(),
		RequestID:     requestID,
	}
	if err := s.producer.PublishSellerApplied(event); err != nil {
		s.logger.Error("Failed to publish seller event",
			zap.String("application_id", resp.ApplicationID),
			zap.Error(err))
	}

	s.logger.Info("Seller application received",
		zap.String("application_id", resp.ApplicationID),
		zap.String("business_name", app.BusinessName))

	return resp, nil, nil
}
