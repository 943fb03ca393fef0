package simulation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/osse101/SpinForge_Go/internal/domain"
	"github.com/osse101/SpinForge_Go/internal/pricing"
	"github.com/osse101/SpinForge_Go/internal/rtp"
	"github.com/osse101/SpinForge_Go/internal/slots"
	"github.com/osse101/SpinForge_Go/internal/utils"
	"github.com/osse101/SpinForge_Go/internal/worker"
)

// Options controls a Monte-Carlo run
type Options struct {
	Modes   []domain.GridMode
	Profile string
	Spins   int
	Workers int
	Seed    int64
}

// ModeReport aggregates the spins of one mode
type ModeReport struct {
	Mode             domain.GridMode `json:"mode"`
	Profile          string          `json:"profile"`
	PaidSpins        int64           `json:"paid_spins"`
	FreeSpins        int64           `json:"free_spins"`
	Wins             int64           `json:"wins"`
	Wagered          float64         `json:"wagered"`
	Paid             float64         `json:"paid"`
	RTP              float64         `json:"rtp"`
	HitRate          float64         `json:"hit_rate"`
	MaxWinMultiplier float64         `json:"max_win_multiplier"`
	FreeSpinTriggers int64           `json:"free_spin_triggers"`
	NFTDrops         int64           `json:"nft_drops"`
	ShardAwards      int64           `json:"shard_awards"`
	TargetRTP        float64         `json:"target_rtp"`
	TheoreticalRTP   float64         `json:"theoretical_rtp"`
}

// Report is the result of a run
type Report struct {
	Seed     int64        `json:"seed"`
	Workers  int          `json:"workers"`
	Modes    []ModeReport `json:"modes"`
	Duration string       `json:"duration"`
}

// Run plays opts.Spins paid spins per mode, split into one chunk per worker.
// Every chunk owns its controller state and random streams derived from
// opts.Seed, so equal options give equal reports regardless of scheduling.
func Run(ctx context.Context, engine *slots.Engine, calc *pricing.Calculator, opts Options) (*Report, error) {
	if opts.Workers < 1 {
		opts.Workers = DefaultWorkers
	}
	if len(opts.Modes) == 0 {
		opts.Modes = domain.GridModes
	}

	start := time.Now()
	slog.Info(LogMsgSimulationStarted, "modes", opts.Modes, "spins", opts.Spins, "workers", opts.Workers, "seed", opts.Seed)

	chunks := make([][]*chunk, len(opts.Modes))
	pool := worker.NewPool(opts.Workers, opts.Workers*len(opts.Modes))
	pool.Start(ctx)
	for m, mode := range opts.Modes {
		for i, spins := range split(opts.Spins, opts.Workers) {
			c := &chunk{
				engine:  engine,
				mode:    mode,
				profile: opts.Profile,
				spins:   spins,
				index:   m*opts.Workers + i,
				seed:    opts.Seed,
			}
			chunks[m] = append(chunks[m], c)
			pool.Enqueue(c)
		}
	}
	pool.Stop()

	if failed := pool.Failed(); failed > 0 {
		var errs []error
		for _, row := range chunks {
			for _, c := range row {
				if c.err != nil {
					errs = append(errs, c.err)
				}
			}
		}
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
		}
		return nil, fmt.Errorf("%s (%d): %w", ErrMsgChunksIncomplete, failed, errors.Join(errs...))
	}

	report := &Report{Seed: opts.Seed, Workers: opts.Workers}
	for m, mode := range opts.Modes {
		mr := merge(mode, chunks[m])
		if _, profile, err := engine.Bundle.Modes[mode].Profile(opts.Profile); err == nil {
			mr.Profile = profile
		}
		mr.TargetRTP = engine.Bundle.TargetRTP
		if calc != nil {
			theo, err := calc.TheoreticalRTP(mode, opts.Profile)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", ErrContextTheoretical, err)
			}
			if !math.IsInf(theo, 0) {
				mr.TheoreticalRTP = theo
			}
		}
		report.Modes = append(report.Modes, mr)
	}
	report.Duration = time.Since(start).Round(time.Millisecond).String()

	slog.Info(LogMsgSimulationFinished, "duration", report.Duration)
	return report, nil
}

// split divides total into n parts, the first ones taking the remainder
func split(total, n int) []int {
	parts := make([]int, n)
	for i := range parts {
		parts[i] = total / n
		if i < total%n {
			parts[i]++
		}
	}
	return parts
}

// merge sums the chunk tallies of one mode
func merge(mode domain.GridMode, chunks []*chunk) ModeReport {
	mr := ModeReport{Mode: mode}
	for _, c := range chunks {
		t := c.tally
		mr.PaidSpins += t.paidSpins
		mr.FreeSpins += t.freeSpins
		mr.Wins += t.wins
		mr.Wagered += t.wagered
		mr.Paid += t.paid
		mr.FreeSpinTriggers += t.triggers
		mr.NFTDrops += t.drops
		mr.ShardAwards += t.shards
		if t.maxWin > mr.MaxWinMultiplier {
			mr.MaxWinMultiplier = t.maxWin
		}
	}
	if mr.Wagered > 0 {
		mr.RTP = mr.Paid / mr.Wagered
	}
	if played := mr.PaidSpins + mr.FreeSpins; played > 0 {
		mr.HitRate = float64(mr.Wins) / float64(played)
	}
	return mr
}

// tally counts the outcome of a chunk
type tally struct {
	paidSpins int64
	freeSpins int64
	wins      int64
	triggers  int64
	drops     int64
	shards    int64
	wagered   float64
	paid      float64
	maxWin    float64
}

func (t *tally) add(res *domain.GameResult, bet float64) {
	if res.Payout > 0 {
		t.wins++
	}
	t.paid += res.Payout
	if bet > 0 {
		if m := res.Payout / bet; m > t.maxWin {
			t.maxWin = m
		}
	}
	if res.Metadata.NFTDrop != nil {
		t.drops++
	}
	for _, a := range res.Metadata.ShardAwards {
		t.shards += int64(a.Count)
	}
}

// chunk is one worker job: an isolated player spinning one mode
type chunk struct {
	engine  *slots.Engine
	mode    domain.GridMode
	profile string
	spins   int
	index   int
	seed    int64

	tally tally
	err   error
}

// Process implements worker.Job
func (c *chunk) Process(ctx context.Context) error {
	c.err = c.run(ctx)
	return c.err
}

func (c *chunk) run(ctx context.Context) error {
	b := c.engine.Bundle
	controller := rtp.NewController(b.TargetRTP, b.Controller, rtp.NewMemoryStore(),
		utils.NewSeededSource(utils.DeriveSeed(c.seed, 2*c.index+1)))
	svc := slots.NewService(c.engine, controller, nil, nil, nil,
		utils.NewSeededSource(utils.DeriveSeed(c.seed, 2*c.index)))

	userID := fmt.Sprintf("%s%d", userPrefix, c.index)
	bet := b.Modes[c.mode].ReferenceBet

	for i := 0; i < c.spins; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := svc.ResolveSpin(ctx, slots.SpinRequest{
			UserID:        userID,
			BetAmount:     bet,
			Mode:          c.mode,
			UserSpinCount: i,
			Volatility:    c.profile,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", ErrContextPaidSpin, err)
		}
		c.tally.paidSpins++
		c.tally.wagered += bet
		c.tally.add(res, bet)

		if fs := svc.FreeSpins(userID, c.mode); fs != nil && fs.Active {
			c.tally.triggers++
		}
		for fs := svc.FreeSpins(userID, c.mode); fs != nil && fs.Active && fs.Remaining > 0; fs = svc.FreeSpins(userID, c.mode) {
			res, err := svc.ResolveSpin(ctx, slots.SpinRequest{
				UserID:        userID,
				Mode:          c.mode,
				FreeSpin:      true,
				UserSpinCount: i,
				Volatility:    c.profile,
			})
			if err != nil {
				return fmt.Errorf("%s: %w", ErrContextFreeSpin, err)
			}
			c.tally.freeSpins++
			c.tally.add(res, bet)
		}
	}

	slog.Debug(LogMsgChunkFinished, "mode", c.mode, "index", c.index, "spins", c.spins)
	return nil
}
