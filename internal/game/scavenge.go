package game

import "math"

// RiskMode fixes how far the scavenger ranges from the tank. The table
// is closed; modes are not extensible at runtime.
type RiskMode int

const (
	RiskQuick RiskMode = iota
	RiskModerate
	RiskGreedy
)

func (m RiskMode) String() string {
	switch m {
	case RiskQuick:
		return "quick"
	case RiskModerate:
		return "moderate"
	case RiskGreedy:
		return "greedy"
	default:
		return "unknown"
	}
}

func (m RiskMode) baseChance() float64 {
	switch m {
	case RiskQuick:
		return 0.75
	case RiskModerate:
		return 0.50
	default:
		return 0.33
	}
}

func (m RiskMode) lootFraction() float64 {
	switch m {
	case RiskQuick:
		return 1.0 / 3.0
	case RiskModerate:
		return 0.5
	default:
		return 1.0
	}
}

// Haul is what a surviving scavenger brings back. FuelCans/AmmoBoxes
// count containers; Fuel/Ammo are the rolled yields inside them.
type Haul struct {
	FuelCans  int
	Fuel      int
	Shells    int
	Parts     int
	AmmoBoxes int
	Ammo      int
}

// ItemCount is the number of pool items consumed by the haul.
func (h Haul) ItemCount() int {
	return h.FuelCans + h.Shells + h.Parts + h.AmmoBoxes
}

// Outcome is the full resolution of one scavenge attempt.
type Outcome struct {
	Survived     bool
	Chance       float64
	GunCommitted bool
	GunLost      bool
	Haul         Haul
	GameOver     bool
}

func (s *Session) survivalChance(mode RiskMode, gunCommitted bool) float64 {
	t := s.cfg.Scavenge
	chance := mode.baseChance() - float64(s.pool.Zombies())*t.ZombiePenalty
	if gunCommitted {
		chance += t.GunBonus
	}
	return clampFloat(chance, t.ChanceMin, t.ChanceMax)
}

// Scavenge sends exactly one crew member into no man's land and resolves
// synchronously. A committed gun is debited before the draw, refunded on
// survival and lost with the scavenger otherwise. All loot yields are
// credited to the ledger in one go once resolution is settled.
func (s *Session) Scavenge(mode RiskMode, commitGun bool) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gameOver {
		return Outcome{}, ErrGameOver
	}
	if s.phase != PhaseLevel {
		return Outcome{}, ErrNotInLevel
	}
	if s.ledger.Crew < 1 {
		return Outcome{}, ErrNoCrew
	}
	if s.pool.TotalItems() == 0 {
		return Outcome{}, ErrNothingToScavenge
	}

	// Asking for a gun with none spare quietly degrades to going out
	// bare-handed; it is not an error.
	gunCommitted := commitGun && s.ledger.Debit(ResourceGuns, 1)

	out := Outcome{GunCommitted: gunCommitted}
	out.Chance = s.survivalChance(mode, gunCommitted)
	out.Survived = s.rng.Float64() < out.Chance

	if !out.Survived {
		out.GunLost = gunCommitted
		s.ledger.Debit(ResourceCrew, 1)
		if s.ledger.IsGameOver() {
			s.gameOver = true
			out.GameOver = true
		}
		return out, nil
	}

	if gunCommitted {
		s.ledger.Credit(ResourceGuns, 1)
	}

	total := s.pool.TotalItems()
	maxTake := max(1, int(math.Ceil(float64(total)*mode.lootFraction())))
	take := 1 + s.rng.IntN(maxTake)

	for i := 0; i < take; i++ {
		kinds := s.pool.kindsWithStock()
		if len(kinds) == 0 {
			break
		}
		kind := kinds[s.rng.IntN(len(kinds))]
		s.pool.removeItem(kind, s.rng)
		switch kind {
		case ItemFuelCan:
			out.Haul.FuelCans++
			out.Haul.Fuel += s.cfg.FuelCanYield.roll(s.rng)
		case ItemShell:
			out.Haul.Shells++
		case ItemPart:
			out.Haul.Parts++
		case ItemAmmoBox:
			out.Haul.AmmoBoxes++
			out.Haul.Ammo += s.cfg.AmmoPerBox
		}
	}

	s.ledger.Credit(ResourceFuel, out.Haul.Fuel)
	s.ledger.Credit(ResourceShells, out.Haul.Shells)
	s.ledger.Credit(ResourceParts, out.Haul.Parts)
	s.ledger.Credit(ResourceAmmo, out.Haul.Ammo)

	return out, nil
}
