package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	orderTopic  = "order-events"
	sellerTopic = "seller-events"
)

// Producer publishes storefront events to Kafka. With no brokers configured
// it degrades to a no-op so the service can run standalone; order placement
// never fails on a publish error either way.
type Producer struct {
	orderWriter  *kafka.Writer
	sellerWriter *kafka.Writer
	logger       *zap.Logger
}

func NewProducer(brokers string, logger *zap.Logger) *Producer {
	p := &Producer{logger: logger}
	if brokers == "" {
		logger.Info("Kafka brokers not configured, event publishing disabled")
		return p
	}

	p.orderWriter = &kafka.Writer{
		Addr:     kafka.TCP(brokers),
		Topic:    orderTopic,
		Balancer: &kafka.LeastBytes{},
	}
	p.sellerWriter = &kafka.Writer{
		Addr:     kafka.TCP(brokers),
		Topic:    sellerTopic,
		Balancer: &kafka.LeastBytes{},
	}
	return p
}

func (p *Producer) PublishOrderPlaced(event OrderPlacedEvent) error {
	if p.orderWriter == nil {
		return nil
	}
	if err := p.publish(p.orderWriter, event.EventID, event); err != nil {
		p.logger.Error("Failed to publish order event",
			zap.String("event_id", event.EventID),
			zap.String("order_id", event.OrderID),
			zap.Error(err))
		return err
	}
	p.logger.Info("Order event published",
		zap.String("event_id", event.EventID),
		zap.String("order_id", event.OrderID))
	return nil
}

func (p *Producer) PublishSellerApplied(event SellerAppliedEvent) error {
	if p.sellerWriter == nil {
		return nil
	}
	if err := p.publish(p.sellerWriter, event.EventID, event); err != nil {
		p.logger.Error("Failed to publish seller event",
			zap.String("event_id", event.EventID),
			zap.Error(err))
		return err
	}
	p.logger.Info("Seller event published",
		zap.String("event_id", event.EventID),
		zap.String("application_id", event.ApplicationID))
	return nil
}

func (p *Producer) publish(w *kafka.Writer, key string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: data,
	})
}

func (p *Producer) Enabled() bool {
	return p.orderWriter != nil
}

func (p *Producer) Close() error {
	for _, w := range []*kafka.Writer{p.orderWriter, p.sellerWriter} {
		if w == nil {
			continue
		}
		if err := w.Close(); err != nil {
			return err
		}
	}
	return nil
}
