package game

// Resource identifies one counter in the tank's ledger.
type Resource int

const (
	ResourceFuel Resource = iota
	ResourceShells
	ResourceGuns
	ResourceCrew
	ResourceParts
	ResourceAmmo
)

func (r Resource) String() string {
	switch r {
	case ResourceFuel:
		return "fuel"
	case ResourceShells:
		return "shells"
	case ResourceGuns:
		return "guns"
	case ResourceCrew:
		return "crew"
	case ResourceParts:
		return "parts"
	case ResourceAmmo:
		return "ammo"
	default:
		return "unknown"
	}
}

// Ledger holds the tank's stores. Counters never go negative; Debit
// rejects any draw that would overshoot the balance and leaves the
// counter untouched.
type Ledger struct {
	Fuel   int
	Shells int
	Guns   int
	Crew   int
	Parts  int
	Ammo   int
}

func (l *Ledger) counter(kind Resource) *int {
	switch kind {
	case ResourceFuel:
		return &l.Fuel
	case ResourceShells:
		return &l.Shells
	case ResourceGuns:
		return &l.Guns
	case ResourceCrew:
		return &l.Crew
	case ResourceParts:
		return &l.Parts
	case ResourceAmmo:
		return &l.Ammo
	default:
		return nil
	}
}

func (l *Ledger) Balance(kind Resource) int {
	if c := l.counter(kind); c != nil {
		return *c
	}
	return 0
}

func (l *Ledger) Credit(kind Resource, amount int) {
	if amount <= 0 {
		return
	}
	if c := l.counter(kind); c != nil {
		*c += amount
	}
}

// Debit reports whether the draw succeeded. Callers wanting a
// user-facing error precheck the balance themselves.
func (l *Ledger) Debit(kind Resource, amount int) bool {
	if amount < 0 {
		return false
	}
	c := l.counter(kind)
	if c == nil || *c < amount {
		return false
	}
	*c -= amount
	return true
}

// IsGameOver reports the terminal condition: nobody left alive inside.
func (l *Ledger) IsGameOver() bool {
	return l.Crew == 0
}
