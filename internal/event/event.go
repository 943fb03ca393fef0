package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/SpinForge_Go/internal/domain"
)

// Type names an event kind
type Type string

// Engine event types
const (
	SpinCompleted      Type = domain.EventTypeSpinCompleted
	FreeSpinsTriggered Type = domain.EventTypeFreeSpinsTriggered
	NFTDropped         Type = domain.EventTypeNFTDropped
	ShardsAwarded      Type = domain.EventTypeShardsAwarded
	ShardsRedeemed     Type = domain.EventTypeShardsRedeemed
)

// Metadata carries small routing labels alongside the payload
type Metadata map[string]any

// Event is the envelope published on a Bus. Payload is a domain payload
// struct in process and generic JSON after a trip through the dead-letter file.
type Event struct {
	ID         string    `json:"id"`
	Version    string    `json:"version"`
	Type       Type      `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
	Metadata   Metadata  `json:"metadata,omitempty"`
}

// GetMetadataValue returns the label under key, or nil
func (e Event) GetMetadataValue(key string) any {
	return e.Metadata[key]
}

func newEvent(t Type, payload any, meta Metadata) Event {
	return Event{
		ID:         uuid.NewString(),
		Version:    EventSchemaVersion,
		Type:       t,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
		Metadata:   meta,
	}
}

// NewSpinCompletedEvent creates a spin.completed event
func NewSpinCompletedEvent(p domain.SpinCompletedPayload) Event {
	return newEvent(SpinCompleted, p, Metadata{"mode": string(p.Mode), "tier": string(p.Tier)})
}

// NewFreeSpinsTriggeredEvent creates a freespins.triggered event
func NewFreeSpinsTriggeredEvent(p domain.FreeSpinsTriggeredPayload) Event {
	return newEvent(FreeSpinsTriggered, p, Metadata{"mode": string(p.Mode)})
}

// NewNFTDroppedEvent creates an nft.dropped event
func NewNFTDroppedEvent(p domain.NFTDroppedPayload) Event {
	return newEvent(NFTDropped, p, Metadata{"mode": string(p.Mode), "tier": string(p.Drop.Tier)})
}

// NewShardsAwardedEvent creates a shards.awarded event
func NewShardsAwardedEvent(p domain.ShardsAwardedPayload) Event {
	return newEvent(ShardsAwarded, p, nil)
}

// NewShardsRedeemedEvent creates a shards.redeemed event
func NewShardsRedeemedEvent(p domain.ShardsRedeemedPayload) Event {
	return newEvent(ShardsRedeemed, p, Metadata{"tier": string(p.Tier)})
}

// Handler consumes one event
type Handler func(ctx context.Context, event Event) error

// Bus fans events out to subscribers by type
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus delivers synchronously on the publishing goroutine
type MemoryBus struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{handlers: make(map[Type][]Handler)}
}

// Publish runs every subscriber in subscription order. A failing handler
// does not stop the rest; all failures come back joined.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, h := range handlers {
		if err := h(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%s %s: %w", ErrMsgHandlersFailed, event.Type, errors.Join(errs...))
}

// Subscribe appends handler to eventType's subscribers
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.mu.Unlock()
}
