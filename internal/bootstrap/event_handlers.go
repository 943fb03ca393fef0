package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/SpinForge_Go/internal/domain"
	"github.com/osse101/SpinForge_Go/internal/event"
	"github.com/osse101/SpinForge_Go/internal/logger"
	"github.com/osse101/SpinForge_Go/internal/metrics"
)

// RegisterEventHandlers wires the metrics collector and the reward audit log
// onto the bus.
func RegisterEventHandlers(bus event.Bus) error {
	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(bus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	bus.Subscribe(event.NFTDropped, auditNFTDrop)
	bus.Subscribe(event.ShardsRedeemed, auditRedemption)
	slog.Info(LogMsgRewardAuditRegistered)
	return nil
}

// auditNFTDrop records every collectible that left the prize pool.
func auditNFTDrop(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[domain.NFTDroppedPayload](evt.Payload)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgAuditNFTDrop,
		"user_id", p.UserID,
		"game_id", p.GameID,
		"mode", p.Mode,
		"tier", p.Drop.Tier,
		"collectible", p.Drop.Collectible,
		"estimated_value", p.Drop.EstimatedValue,
		"forced", p.Drop.Forced)
	return nil
}

func auditRedemption(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[domain.ShardsRedeemedPayload](evt.Payload)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgAuditRedemption, "user_id", p.UserID, "tier", p.Tier, "shards", p.Required)
	return nil
}
