package domain

import "time"

// RTP scopes
const (
	RTPScopeGlobal = "global"
	RTPScopeUser   = "user"
)

// RTPState is the running return-to-player ledger for one scope.
// Version increases on every successful update and backs compare-and-swap.
type RTPState struct {
	Scope        string    `json:"scope"`
	Spins        int64     `json:"spins"`
	TotalWagered float64   `json:"total_wagered"`
	TotalPaid    float64   `json:"total_paid"`
	WinStreak    int       `json:"win_streak"`
	LossStreak   int       `json:"loss_streak"`
	Version      int64     `json:"version"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CurrentRTP is paid / wagered, 0 before anything was wagered.
func (s RTPState) CurrentRTP() float64 {
	if s.TotalWagered <= 0 {
		return 0
	}
	return s.TotalPaid / s.TotalWagered
}

// Apply returns the successor state after one spin. A win is any payout above zero.
func (s RTPState) Apply(wagered, payout float64, now time.Time) RTPState {
	next := s
	next.TotalWagered += wagered
	next.TotalPaid += payout
	next.Spins++
	if payout > 0 {
		next.WinStreak++
		next.LossStreak = 0
	} else {
		next.LossStreak++
		next.WinStreak = 0
	}
	next.Version++
	next.UpdatedAt = now
	return next
}

// RTPScopeKey builds the state key for a user under the configured scope.
func RTPScopeKey(scope string, mode GridMode, userID string) string {
	if scope == RTPScopeUser {
		return string(mode) + ":user:" + userID
	}
	return string(mode) + ":" + RTPScopeGlobal
}
