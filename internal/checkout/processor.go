package checkout

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/girishsunnykumar006-arch/bitesaver/internal/domain"
)

// Processor stands in for the payment/fulfilment exchange a real backend
// would perform at order placement. It resolves after a bounded delay so the
// storefront keeps the request/response shape a live integration would have.
type Processor struct {
	delay  time.Duration
	logger *zap.Logger
}

func NewProcessor(delay time.Duration, logger *zap.Logger) *Processor {
	return &Processor{delay: delay, logger: logger}
}

// Wait blocks for the configured delay or until the context is cancelled.
func (p *Processor) Wait(ctx context.Context) error {
	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Process confirms the order after the configured delay. Cancelling the
// context aborts the wait and leaves the order status untouched.
func (p *Processor) Process(ctx context.Context, order *domain.Order) error {
	if err := p.Wait(ctx); err != nil {
		return err
	}

	order.Status = domain.OrderStatusConfirmed
	p.logger.Info("Order confirmed",
		zap.String("order_id", order.OrderID),
		zap.String("grand_total", order.Totals.GrandTotal.String()))
	return nil
}
