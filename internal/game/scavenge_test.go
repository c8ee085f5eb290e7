package game

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

// scriptedSource serves fixed 64-bit words first, then falls back to a
// real PCG stream so rejection-sampling draws always terminate.
type scriptedSource struct {
	script   []uint64
	fallback *rand.PCG
}

func newScriptedSource(script ...uint64) *scriptedSource {
	return &scriptedSource{script: script, fallback: rand.NewPCG(11, 12)}
}

func (s *scriptedSource) Uint64() uint64 {
	if len(s.script) > 0 {
		v := s.script[0]
		s.script = s.script[1:]
		return v
	}
	return s.fallback.Uint64()
}

// The survival roll is the first draw of a scavenge resolution; zero
// forces survival, all-ones forces death.
const (
	drawSurvive = uint64(0)
	drawDie     = ^uint64(0)
)

func forceNextDraw(s *Session, word uint64) {
	s.rng = rand.New(newScriptedSource(word))
}

func itemsPool(fuelCans, shells, parts, ammoBoxes int) LootPool {
	var p LootPool
	add := func(kind ItemKind, n int) {
		// Pile everything at the left slit; placement does not matter
		// to scavenge resolution.
		p.stocks[VantageLeft].items[kind] = n
		p.items[kind] = n
	}
	add(ItemFuelCan, fuelCans)
	add(ItemShell, shells)
	add(ItemPart, parts)
	add(ItemAmmoBox, ammoBoxes)
	return p
}

func TestScavengeQuickSurvivalGrantsLoot(t *testing.T) {
	s := newTestSession(t, nil)
	levelWithPool(t, s, itemsPool(0, 1, 2, 0))
	forceNextDraw(s, drawSurvive)

	ledgerBefore := s.Snapshot().Ledger
	out, err := s.Scavenge(RiskQuick, false)
	if err != nil {
		t.Fatalf("scavenge: %v", err)
	}

	if !out.Survived {
		t.Fatal("forced survival draw did not survive")
	}
	if out.Chance != 0.75 {
		t.Fatalf("chance = %v, want 0.75 with no zombies", out.Chance)
	}
	// Three items at 1/3 caps the take at exactly one.
	if got := out.Haul.ItemCount(); got != 1 {
		t.Fatalf("haul items = %d, want 1", got)
	}
	if s.pool.TotalItems() != 2 {
		t.Fatalf("pool items = %d, want 2", s.pool.TotalItems())
	}

	after := s.Snapshot().Ledger
	if after.Crew != ledgerBefore.Crew {
		t.Fatal("crew changed on survival")
	}
	if after.Shells != ledgerBefore.Shells+out.Haul.Shells ||
		after.Parts != ledgerBefore.Parts+out.Haul.Parts {
		t.Fatalf("ledger not credited per haul: before %+v, after %+v, haul %+v",
			ledgerBefore, after, out.Haul)
	}
}

func TestScavengeLootIsNeverDoubleSpent(t *testing.T) {
	for seed := int64(1); seed <= 100; seed++ {
		s := newTestSession(t, func(cfg *Config) {
			cfg.Seed = seed
		})
		if err := s.StopDriving(); err != nil {
			t.Fatalf("stop: %v", err)
		}
		forceNextDraw(s, drawSurvive)

		before := s.Snapshot()
		out, err := s.Scavenge(RiskGreedy, false)
		if err != nil {
			t.Fatalf("seed %d: scavenge: %v", seed, err)
		}
		after := s.Snapshot()

		removed := before.Pool.FuelCans + before.Pool.Shells + before.Pool.Parts + before.Pool.AmmoBoxes -
			(after.Pool.FuelCans + after.Pool.Shells + after.Pool.Parts + after.Pool.AmmoBoxes)
		if removed != out.Haul.ItemCount() {
			t.Fatalf("seed %d: removed %d items but hauled %d", seed, removed, out.Haul.ItemCount())
		}
		if after.Ledger.Shells-before.Ledger.Shells != out.Haul.Shells ||
			after.Ledger.Parts-before.Ledger.Parts != out.Haul.Parts ||
			after.Ledger.Fuel-before.Ledger.Fuel != out.Haul.Fuel ||
			after.Ledger.Ammo-before.Ledger.Ammo != out.Haul.Ammo {
			t.Fatalf("seed %d: ledger deltas do not match haul %+v", seed, out.Haul)
		}
		poolConsistent(t, &s.pool)

		// The take is bounded by the mode's fraction of what was there.
		total := before.Pool.FuelCans + before.Pool.Shells + before.Pool.Parts + before.Pool.AmmoBoxes
		maxTake := max(1, int(math.Ceil(float64(total)*RiskGreedy.lootFraction())))
		if out.Haul.ItemCount() < 1 || out.Haul.ItemCount() > maxTake {
			t.Fatalf("seed %d: take %d outside [1, %d]", seed, out.Haul.ItemCount(), maxTake)
		}
	}
}

func TestScavengeDeathCostsOneCrew(t *testing.T) {
	s := newTestSession(t, nil)
	levelWithPool(t, s, itemsPool(1, 1, 1, 1))
	forceNextDraw(s, drawDie)

	poolBefore := s.pool.TotalItems()
	crewBefore := s.Snapshot().Ledger.Crew

	out, err := s.Scavenge(RiskModerate, false)
	if err != nil {
		t.Fatalf("scavenge: %v", err)
	}
	if out.Survived {
		t.Fatal("forced death draw survived")
	}
	if got := s.Snapshot().Ledger.Crew; got != crewBefore-1 {
		t.Fatalf("crew = %d, want %d", got, crewBefore-1)
	}
	if out.Haul != (Haul{}) {
		t.Fatalf("haul = %+v, want empty on death", out.Haul)
	}
	if s.pool.TotalItems() != poolBefore {
		t.Fatal("pool changed on a failed scavenge")
	}
}

func TestScavengeGunCommitment(t *testing.T) {
	t.Run("refunded on survival", func(t *testing.T) {
		s := newTestSession(t, nil)
		levelWithPool(t, s, itemsPool(1, 1, 1, 1))
		forceNextDraw(s, drawSurvive)

		gunsBefore := s.Snapshot().Ledger.Guns
		out, err := s.Scavenge(RiskQuick, true)
		if err != nil {
			t.Fatalf("scavenge: %v", err)
		}
		if !out.GunCommitted || out.GunLost {
			t.Fatalf("outcome = %+v, want committed and refunded gun", out)
		}
		if out.Chance != 0.90 {
			t.Fatalf("chance = %v, want 0.75 + 0.15 gun bonus", out.Chance)
		}
		if got := s.Snapshot().Ledger.Guns; got != gunsBefore {
			t.Fatalf("guns = %d, want %d after refund", got, gunsBefore)
		}
	})

	t.Run("lost on death", func(t *testing.T) {
		s := newTestSession(t, nil)
		levelWithPool(t, s, itemsPool(1, 1, 1, 1))
		forceNextDraw(s, drawDie)

		gunsBefore := s.Snapshot().Ledger.Guns
		out, err := s.Scavenge(RiskQuick, true)
		if err != nil {
			t.Fatalf("scavenge: %v", err)
		}
		if !out.GunCommitted || !out.GunLost {
			t.Fatalf("outcome = %+v, want committed and lost gun", out)
		}
		if got := s.Snapshot().Ledger.Guns; got != gunsBefore-1 {
			t.Fatalf("guns = %d, want %d", got, gunsBefore-1)
		}
	})

	t.Run("degrades silently without stock", func(t *testing.T) {
		s := newTestSession(t, func(cfg *Config) {
			cfg.Start.Guns = 0
		})
		levelWithPool(t, s, itemsPool(1, 1, 1, 1))
		forceNextDraw(s, drawSurvive)

		out, err := s.Scavenge(RiskQuick, true)
		if err != nil {
			t.Fatalf("scavenge: %v", err)
		}
		if out.GunCommitted {
			t.Fatal("committed a gun that does not exist")
		}
		if out.Chance != 0.75 {
			t.Fatalf("chance = %v, want no gun bonus applied", out.Chance)
		}
		if got := s.Snapshot().Ledger.Guns; got != 0 {
			t.Fatalf("guns = %d, want 0", got)
		}
	})
}

func TestScavengeChanceClamped(t *testing.T) {
	s := newTestSession(t, nil)
	levelWithPool(t, s, itemsPool(1, 0, 1, 0))

	// A horde drags greedy below the floor.
	s.pool.stocks[VantageLeft].zombies = 30
	s.pool.zombies = 30
	if got := s.survivalChance(RiskGreedy, false); got != 0.05 {
		t.Fatalf("chance = %v, want clamp floor 0.05", got)
	}

	// No zombies and an outsized gun bonus hit the ceiling.
	s.pool.stocks[VantageLeft].zombies = 0
	s.pool.zombies = 0
	s.cfg.Scavenge.GunBonus = 0.5
	if got := s.survivalChance(RiskQuick, true); got != 0.95 {
		t.Fatalf("chance = %v, want clamp ceiling 0.95", got)
	}
}

func TestScavengeDeathOfLastCrewEndsTheGame(t *testing.T) {
	s := newTestSession(t, func(cfg *Config) {
		cfg.Start.Crew = 1
	})
	levelWithPool(t, s, itemsPool(1, 1, 1, 1))
	forceNextDraw(s, drawDie)

	out, err := s.Scavenge(RiskQuick, false)
	if err != nil {
		t.Fatalf("scavenge: %v", err)
	}
	if !out.GameOver || !s.GameOver() {
		t.Fatal("expected game over when the last crew member dies")
	}

	// No further mutating command is accepted.
	if _, err := s.Scavenge(RiskQuick, false); !errors.Is(err, ErrGameOver) {
		t.Fatalf("scavenge err = %v, want ErrGameOver", err)
	}
	if err := s.StartDriving(); !errors.Is(err, ErrGameOver) {
		t.Fatalf("start err = %v, want ErrGameOver", err)
	}
	if err := s.FixEngine(); !errors.Is(err, ErrGameOver) {
		t.Fatalf("fix err = %v, want ErrGameOver", err)
	}
	if _, err := s.ShootZombie(VantageLeft, WeaponCannon); !errors.Is(err, ErrGameOver) {
		t.Fatalf("shoot err = %v, want ErrGameOver", err)
	}
}

func TestScavengePreconditions(t *testing.T) {
	s := newTestSession(t, nil)
	if _, err := s.Scavenge(RiskQuick, false); !errors.Is(err, ErrNotInLevel) {
		t.Fatalf("err = %v, want ErrNotInLevel", err)
	}

	levelWithPool(t, s, LootPool{})
	if _, err := s.Scavenge(RiskQuick, false); !errors.Is(err, ErrNothingToScavenge) {
		t.Fatalf("err = %v, want ErrNothingToScavenge", err)
	}

	s.pool = itemsPool(1, 0, 1, 0)
	s.ledger.Crew = 0
	if _, err := s.Scavenge(RiskQuick, false); !errors.Is(err, ErrNoCrew) {
		t.Fatalf("err = %v, want ErrNoCrew", err)
	}
}
