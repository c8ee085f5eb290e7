package game

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// IntRange is an inclusive [Min, Max] integer range.
type IntRange struct {
	Min int
	Max int
}

func (r IntRange) valid() bool {
	return r.Min >= 0 && r.Max >= r.Min
}

func (r IntRange) roll(rng *rand.Rand) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.IntN(r.Max-r.Min+1)
}

// StartingResources seeds the ledger for a fresh session.
type StartingResources struct {
	Fuel   int
	Shells int
	Guns   int
	Crew   int
	Parts  int
	Ammo   int
}

// LootRanges bounds the procedural population of a level. Parts carry a
// hard floor of one regardless of the configured range, so a breakdown
// is always fixable.
type LootRanges struct {
	Zombies   IntRange
	FuelCans  IntRange
	Shells    IntRange
	Parts     IntRange
	AmmoBoxes IntRange
}

// ScavengeTuning holds the risk-formula constants shared by every mode.
type ScavengeTuning struct {
	ZombiePenalty float64
	GunBonus      float64
	ChanceMin     float64
	ChanceMax     float64
}

// Config carries every tunable the front end may set at session start.
// Mid-game changes are not supported.
type Config struct {
	// Seed 0 resolves to the wall clock at session creation.
	Seed int64

	Start StartingResources

	FuelBurnPerSecond float64
	BreakdownMin      time.Duration
	BreakdownMax      time.Duration

	Loot         LootRanges
	FuelCanYield IntRange
	AmmoPerBox   int

	CannonShellCost     int
	MachineGunBurstCost int

	Scavenge ScavengeTuning
}

// DefaultConfig is the stock balance sheet.
func DefaultConfig() Config {
	return Config{
		Start: StartingResources{
			Fuel:   200,
			Shells: 6,
			Guns:   4,
			Crew:   4,
			Parts:  0,
			Ammo:   200,
		},
		FuelBurnPerSecond: 1,
		BreakdownMin:      30 * time.Second,
		BreakdownMax:      180 * time.Second,
		Loot: LootRanges{
			Zombies:   IntRange{Min: 0, Max: 8},
			FuelCans:  IntRange{Min: 1, Max: 5},
			Shells:    IntRange{Min: 0, Max: 4},
			Parts:     IntRange{Min: 1, Max: 2},
			AmmoBoxes: IntRange{Min: 0, Max: 2},
		},
		FuelCanYield:        IntRange{Min: 10, Max: 100},
		AmmoPerBox:          100,
		CannonShellCost:     1,
		MachineGunBurstCost: 33,
		Scavenge: ScavengeTuning{
			ZombiePenalty: 0.05,
			GunBonus:      0.15,
			ChanceMin:     0.05,
			ChanceMax:     0.95,
		},
	}
}

func (c Config) Validate() error {
	if c.Start.Fuel < 0 || c.Start.Shells < 0 || c.Start.Guns < 0 ||
		c.Start.Parts < 0 || c.Start.Ammo < 0 {
		return fmt.Errorf("starting resources must not be negative: %+v", c.Start)
	}
	if c.Start.Crew < 1 {
		return fmt.Errorf("starting crew must be at least 1, got %d", c.Start.Crew)
	}
	if c.FuelBurnPerSecond <= 0 {
		return fmt.Errorf("fuel burn rate must be positive, got %v", c.FuelBurnPerSecond)
	}
	if c.BreakdownMin <= 0 || c.BreakdownMax < c.BreakdownMin {
		return fmt.Errorf("invalid breakdown window [%v, %v]", c.BreakdownMin, c.BreakdownMax)
	}
	ranges := map[string]IntRange{
		"zombies":        c.Loot.Zombies,
		"fuel cans":      c.Loot.FuelCans,
		"shells":         c.Loot.Shells,
		"parts":          c.Loot.Parts,
		"ammo boxes":     c.Loot.AmmoBoxes,
		"fuel can yield": c.FuelCanYield,
	}
	for name, r := range ranges {
		if !r.valid() {
			return fmt.Errorf("invalid %s range [%d, %d]", name, r.Min, r.Max)
		}
	}
	if c.FuelCanYield.Min < 1 {
		return fmt.Errorf("fuel can yield must be at least 1, got %d", c.FuelCanYield.Min)
	}
	if c.AmmoPerBox < 1 {
		return fmt.Errorf("ammo per box must be at least 1, got %d", c.AmmoPerBox)
	}
	if c.CannonShellCost < 1 || c.MachineGunBurstCost < 1 {
		return fmt.Errorf("weapon costs must be at least 1, got cannon %d, mg %d",
			c.CannonShellCost, c.MachineGunBurstCost)
	}
	t := c.Scavenge
	if t.ZombiePenalty < 0 || t.GunBonus < 0 {
		return fmt.Errorf("scavenge modifiers must not be negative: %+v", t)
	}
	if t.ChanceMin < 0 || t.ChanceMax > 1 || t.ChanceMax < t.ChanceMin {
		return fmt.Errorf("invalid scavenge chance clamp [%v, %v]", t.ChanceMin, t.ChanceMax)
	}
	return nil
}
