package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/appengine-ltd/tank-survival/internal/game"
	"github.com/appengine-ltd/tank-survival/internal/parser"
	"github.com/appengine-ltd/tank-survival/internal/ui"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// envOverrides adjusts the default balance sheet from the environment.
// Unset variables leave the defaults alone; validation happens when the
// session is created.
type envOverrides struct {
	Seed         *int64         `env:"TANK_SEED"`
	StartFuel    *int           `env:"TANK_START_FUEL"`
	StartShells  *int           `env:"TANK_START_SHELLS"`
	StartGuns    *int           `env:"TANK_START_GUNS"`
	StartCrew    *int           `env:"TANK_START_CREW"`
	StartParts   *int           `env:"TANK_START_PARTS"`
	StartAmmo    *int           `env:"TANK_START_AMMO"`
	FuelBurn     *float64       `env:"TANK_FUEL_BURN_PER_SEC"`
	BreakdownMin *time.Duration `env:"TANK_BREAKDOWN_MIN"`
	BreakdownMax *time.Duration `env:"TANK_BREAKDOWN_MAX"`
}

func loadConfig() (game.Config, error) {
	cfg := game.DefaultConfig()

	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return game.Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if o.Seed != nil {
		cfg.Seed = *o.Seed
	}
	if o.StartFuel != nil {
		cfg.Start.Fuel = *o.StartFuel
	}
	if o.StartShells != nil {
		cfg.Start.Shells = *o.StartShells
	}
	if o.StartGuns != nil {
		cfg.Start.Guns = *o.StartGuns
	}
	if o.StartCrew != nil {
		cfg.Start.Crew = *o.StartCrew
	}
	if o.StartParts != nil {
		cfg.Start.Parts = *o.StartParts
	}
	if o.StartAmmo != nil {
		cfg.Start.Ammo = *o.StartAmmo
	}
	if o.FuelBurn != nil {
		cfg.FuelBurnPerSecond = *o.FuelBurn
	}
	if o.BreakdownMin != nil {
		cfg.BreakdownMin = *o.BreakdownMin
	}
	if o.BreakdownMax != nil {
		cfg.BreakdownMax = *o.BreakdownMax
	}
	return cfg, nil
}

func main() {
	var (
		showVersion bool
		headless    bool
		seed        int64
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.BoolVar(&headless, "headless", false, "run the plain-text prompt instead of the TUI")
	flag.Int64Var(&seed, "seed", 0, "simulation seed (0 = wall clock)")
	flag.Parse()

	if showVersion {
		fmt.Printf("Tank Survival %s (%s) %s\n", version, commit, date)
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	if headless {
		if err := runHeadless(cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	app := ui.NewApp(ui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		Game:      cfg,
	})
	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runHeadless is a turn-based prompt: the clock only advances through
// the wait command, which suits scripted play and debugging.
func runHeadless(cfg game.Config) error {
	session, err := game.NewSession(cfg)
	if err != nil {
		return err
	}
	p := parser.New()

	fmt.Println("The MkV rumbles across no man's land. Type help for commands, quit to leave.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		intent := p.Parse(scanner.Text())
		if intent.Verb == "quit" {
			return nil
		}
		if !intent.Matched() {
			if intent.Suggestion != "" {
				fmt.Printf("Unclear order. Did you mean %q?\n", intent.Suggestion)
			} else {
				fmt.Println("Unclear order. Type help for commands.")
			}
			continue
		}

		res := session.ExecuteCommand(intent.Command())
		if !res.Handled {
			fmt.Println("Unclear order. Type help for commands.")
			continue
		}
		fmt.Println(res.Message)
	}
}
