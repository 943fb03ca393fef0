package slots

import (
	"sync"

	"github.com/osse101/SpinForge_Go/internal/domain"
	"github.com/osse101/SpinForge_Go/internal/gameconfig"
)

// freeRound is an active bonus round. Free spins replay the stake of the
// spin that triggered them.
type freeRound struct {
	state domain.FreeSpinState
	bet   float64
}

// roundBook tracks bonus rounds per user and mode
type roundBook struct {
	mu     sync.Mutex
	rounds map[string]freeRound
}

func newRoundBook() *roundBook {
	return &roundBook{rounds: make(map[string]freeRound)}
}

func roundKey(userID string, mode domain.GridMode) string {
	return userID + "|" + string(mode)
}

func (b *roundBook) get(userID string, mode domain.GridMode) (freeRound, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	r, ok := b.rounds[roundKey(userID, mode)]
	return r, ok && r.state.Active && r.state.Remaining > 0
}

func (b *roundBook) put(userID string, mode domain.GridMode, r freeRound) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !r.state.Active || r.state.Remaining <= 0 {
		delete(b.rounds, roundKey(userID, mode))
		return
	}
	b.rounds[roundKey(userID, mode)] = r
}

// advance computes the round after one spin. awarded is the number of spins
// added by this spin, 0 when nothing triggered.
func advance(cur freeRound, active bool, isFree bool, specials int, bet float64, cfg gameconfig.FreeSpinConfig) (next freeRound, awarded int, retrigger bool) {
	next = cur
	triggered := specials >= cfg.TriggerCount

	if isFree {
		next.state.Remaining--
		if triggered && cfg.RetriggerSpins > 0 {
			next.state.Remaining += cfg.RetriggerSpins
			next.state.TotalAwarded += cfg.RetriggerSpins
			awarded, retrigger = cfg.RetriggerSpins, true
		}
		if next.state.Remaining <= 0 {
			next.state = domain.FreeSpinState{}
		}
		return next, awarded, retrigger
	}

	if !triggered || cfg.Spins <= 0 {
		return next, 0, false
	}
	if !active {
		next = freeRound{bet: bet}
	}
	next.state.Active = true
	next.state.Remaining += cfg.Spins
	next.state.TotalAwarded += cfg.Spins
	return next, cfg.Spins, false
}
