package metrics

import (
	"context"

	"github.com/osse101/SpinForge_Go/internal/domain"
	"github.com/osse101/SpinForge_Go/internal/event"
	"github.com/osse101/SpinForge_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all engine events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.SpinCompleted,
		event.FreeSpinsTriggered,
		event.NFTDropped,
		event.ShardsAwarded,
		event.ShardsRedeemed,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.SpinCompleted:
		var p domain.SpinCompletedPayload
		if p, err = event.DecodePayload[domain.SpinCompletedPayload](evt.Payload); err == nil {
			mode := string(p.Mode)
			SpinsTotal.WithLabelValues(mode, string(p.Tier)).Inc()
			WageredTotal.WithLabelValues(mode).Add(p.Wagered)
			PaidTotal.WithLabelValues(mode).Add(p.Payout)
		}

	case event.FreeSpinsTriggered:
		var p domain.FreeSpinsTriggeredPayload
		if p, err = event.DecodePayload[domain.FreeSpinsTriggeredPayload](evt.Payload); err == nil {
			FreeSpinsTriggered.WithLabelValues(string(p.Mode)).Inc()
		}

	case event.NFTDropped:
		var p domain.NFTDroppedPayload
		if p, err = event.DecodePayload[domain.NFTDroppedPayload](evt.Payload); err == nil {
			NFTDrops.WithLabelValues(string(p.Drop.Tier)).Inc()
		}

	case event.ShardsAwarded:
		var p domain.ShardsAwardedPayload
		if p, err = event.DecodePayload[domain.ShardsAwardedPayload](evt.Payload); err == nil {
			for _, a := range p.Awards {
				ShardsAwarded.WithLabelValues(string(a.Tier)).Add(float64(a.Count))
			}
		}

	case event.ShardsRedeemed:
		var p domain.ShardsRedeemedPayload
		if p, err = event.DecodePayload[domain.ShardsRedeemedPayload](evt.Payload); err == nil {
			ShardsRedeemed.WithLabelValues(string(p.Tier)).Inc()
		}
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
