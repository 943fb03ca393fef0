package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/SpinForge_Go/internal/config"
	"github.com/osse101/SpinForge_Go/internal/domain"
	"github.com/osse101/SpinForge_Go/internal/gameconfig"
	"github.com/osse101/SpinForge_Go/internal/logger"
	"github.com/osse101/SpinForge_Go/internal/pricing"
	"github.com/osse101/SpinForge_Go/internal/simulation"
	"github.com/osse101/SpinForge_Go/internal/slots"
	"github.com/osse101/SpinForge_Go/internal/utils"
	"github.com/osse101/SpinForge_Go/internal/validation"
)

func main() {
	configPath := flag.String("config", config.ConfigPathEngine, "Path to engine tuning file")
	schemaPath := flag.String("schema", config.ConfigPathEngineSchema, "Path to engine tuning JSON schema")
	spins := flag.Int("spins", 1000000, "Paid spins per mode")
	workers := flag.Int("workers", simulation.DefaultWorkers, "Number of parallel workers")
	seed := flag.Int64("seed", 1, "Base seed for every random stream")
	modes := flag.String("modes", "", "Comma separated grid modes (default all)")
	profile := flag.String("volatility", "", "Volatility profile (default per mode)")
	outputPath := flag.String("out", "", "Write the JSON report to this path")
	baselinePath := flag.String("compare", "", "Compare against a report written by an earlier -out")
	logLevel := flag.String("log-level", logger.LogLevelWarn, "Log level")
	flag.Parse()

	logger.InitLogger(logger.NewConfig(*logLevel, logger.LogFormatText, logger.SimulatorServiceName, logger.DefaultVersion, logger.EnvironmentLocal, false))

	bundle, err := gameconfig.Load(*configPath, *schemaPath, validation.NewSchemaValidator())
	if err != nil {
		log.Fatalf("Failed to load engine config: %v", err)
	}
	if err := validation.ValidateBundle(bundle).Err(); err != nil {
		log.Fatalf("Invalid engine config: %v", err)
	}
	engine, err := slots.NewEngine(bundle)
	if err != nil {
		log.Fatalf("Failed to build engine: %v", err)
	}

	selected, err := parseModes(*modes)
	if err != nil {
		log.Fatalf("Invalid -modes: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	calc := pricing.NewCalculator(bundle, engine.Multipliers, engine.Economy.Catalog())
	report, err := simulation.Run(ctx, engine, calc, simulation.Options{
		Modes:   selected,
		Profile: *profile,
		Spins:   *spins,
		Workers: *workers,
		Seed:    *seed,
	})
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	printReport(report)

	if *baselinePath != "" {
		baseline, err := utils.LoadJSON[simulation.Report](*baselinePath)
		if err != nil {
			log.Fatalf("Failed to load baseline: %v", err)
		}
		printComparison(report, &baseline)
	}

	if *outputPath != "" {
		if err := utils.SaveJSON(*outputPath, report); err != nil {
			log.Fatalf("Failed to write report: %v", err)
		}
		fmt.Printf("Report written to %s\n", *outputPath)
	}
}

func parseModes(s string) ([]domain.GridMode, error) {
	if s == "" {
		return nil, nil
	}
	var modes []domain.GridMode
	for _, part := range strings.Split(s, ",") {
		mode, err := domain.ParseGridMode(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		modes = append(modes, mode)
	}
	return modes, nil
}

func printReport(r *simulation.Report) {
	p := message.NewPrinter(language.English)
	p.Printf("Seed %d, %d workers, %s\n\n", r.Seed, r.Workers, r.Duration)
	for _, m := range r.Modes {
		p.Printf("%s (%s)\n", m.Mode, m.Profile)
		p.Printf("  paid spins      %d\n", m.PaidSpins)
		p.Printf("  free spins      %d (%d triggers)\n", m.FreeSpins, m.FreeSpinTriggers)
		p.Printf("  wagered         %.2f\n", m.Wagered)
		p.Printf("  paid            %.2f\n", m.Paid)
		p.Printf("  rtp             %.4f (target %.4f, theoretical %.4f)\n", m.RTP, m.TargetRTP, m.TheoreticalRTP)
		p.Printf("  hit rate        %.4f\n", m.HitRate)
		p.Printf("  max win         %.1fx\n", m.MaxWinMultiplier)
		p.Printf("  nft drops       %d\n", m.NFTDrops)
		p.Printf("  shard awards    %d\n\n", m.ShardAwards)
	}
}

func printComparison(current, baseline *simulation.Report) {
	p := message.NewPrinter(language.English)
	p.Printf("Compared with seed %d\n", baseline.Seed)
	for _, m := range current.Modes {
		var prev *simulation.ModeReport
		for i := range baseline.Modes {
			if baseline.Modes[i].Mode == m.Mode {
				prev = &baseline.Modes[i]
				break
			}
		}
		if prev == nil {
			p.Printf("  %s  not in baseline\n", m.Mode)
			continue
		}
		p.Printf("  %s  rtp %+.4f  hit rate %+.4f  nft drops %+d\n",
			m.Mode, m.RTP-prev.RTP, m.HitRate-prev.HitRate, m.NFTDrops-prev.NFTDrops)
	}
}
