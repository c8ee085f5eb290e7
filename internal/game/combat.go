package game

import "fmt"

// Weapon selects which gun answers a shot command. The cannon spends one
// shell; the machine gun spends a fixed ammo burst.
type Weapon int

const (
	WeaponCannon Weapon = iota
	WeaponMachineGun
)

func (w Weapon) String() string {
	switch w {
	case WeaponCannon:
		return "cannon"
	case WeaponMachineGun:
		return "machine gun"
	default:
		return "unknown weapon"
	}
}

// ShotResult reports one trigger pull. ZombiesRemaining is the aggregate
// across the whole level, not just the targeted slit.
type ShotResult struct {
	Killed           bool
	ZombiesRemaining int
}

// ShootZombie fires at the nearest zombie visible from a slit. Aiming at
// empty ground is free: the consumable is only spent when a zombie is
// actually there. The cannon cannot reach the driver slit.
func (s *Session) ShootZombie(v Vantage, w Weapon) (ShotResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gameOver {
		return ShotResult{}, ErrGameOver
	}
	if s.phase != PhaseLevel {
		return ShotResult{}, ErrNotInLevel
	}
	if v < 0 || v >= numVantages {
		return ShotResult{}, fmt.Errorf("unknown vantage %d", v)
	}
	if w == WeaponCannon && v == VantageDriver {
		return ShotResult{}, ErrNoCannonArc
	}

	if s.pool.ZombiesAt(v) == 0 {
		return ShotResult{Killed: false, ZombiesRemaining: s.pool.Zombies()}, nil
	}

	switch w {
	case WeaponCannon:
		if !s.ledger.Debit(ResourceShells, s.cfg.CannonShellCost) {
			return ShotResult{}, ErrInsufficientAmmo
		}
	case WeaponMachineGun:
		if !s.ledger.Debit(ResourceAmmo, s.cfg.MachineGunBurstCost) {
			return ShotResult{}, ErrInsufficientAmmo
		}
	default:
		return ShotResult{}, fmt.Errorf("unknown weapon %d", w)
	}

	s.pool.killZombieAt(v)
	return ShotResult{Killed: true, ZombiesRemaining: s.pool.Zombies()}, nil
}
