package game

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Phase is the tank's top-level lifecycle state.
type Phase int

const (
	PhaseDriving Phase = iota
	PhaseLevel
)

func (p Phase) String() string {
	switch p {
	case PhaseDriving:
		return "driving"
	case PhaseLevel:
		return "stopped"
	default:
		return "unknown"
	}
}

// StopReason records why the tank entered a level.
type StopReason int

const (
	ReasonBreakdown StopReason = iota
	ReasonOutOfFuel
	ReasonManualStop
)

func (r StopReason) String() string {
	switch r {
	case ReasonBreakdown:
		return "engine breakdown"
	case ReasonOutOfFuel:
		return "out of fuel"
	case ReasonManualStop:
		return "manual stop"
	default:
		return "unknown"
	}
}

// Transition reports what, if anything, a Tick forced.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionOutOfFuel
	TransitionBreakdown
)

// Session is the whole game state: ledger, lifecycle, loot pool and
// clocks, owned by the host and threaded through every call. A single
// mutex serializes all mutation so a concurrent front end (render loop
// vs. tick timer) stays consistent; counters and pool state are
// cross-referenced within single logical operations.
type Session struct {
	mu  sync.Mutex
	cfg Config
	rng *rand.Rand

	ledger       Ledger
	phase        Phase
	reason       StopReason
	engineBroken bool
	pool         LootPool

	driveElapsed      float64 // seconds since driving resumed
	breakdownDeadline float64 // driving seconds until the engine gives out
	burnCarry         float64 // fractional fuel not yet debited

	gameOver bool
}

func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	s := &Session{cfg: cfg, rng: seededRNG(cfg.Seed)}
	s.reset()
	return s, nil
}

// Reset tears the run down and starts fresh with the same configuration
// and random stream. It is the only command accepted after game over.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *Session) reset() {
	s.ledger = Ledger{
		Fuel:   s.cfg.Start.Fuel,
		Shells: s.cfg.Start.Shells,
		Guns:   s.cfg.Start.Guns,
		Crew:   s.cfg.Start.Crew,
		Parts:  s.cfg.Start.Parts,
		Ammo:   s.cfg.Start.Ammo,
	}
	s.engineBroken = false
	s.pool = LootPool{}
	s.gameOver = false
	s.resumeDriving()
}

func (s *Session) resumeDriving() {
	s.phase = PhaseDriving
	s.driveElapsed = 0
	s.burnCarry = 0
	s.breakdownDeadline = s.rollBreakdownDeadline()
}

func (s *Session) rollBreakdownDeadline() float64 {
	lo := s.cfg.BreakdownMin.Seconds()
	hi := s.cfg.BreakdownMax.Seconds()
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}

func (s *Session) enterLevel(reason StopReason) {
	s.phase = PhaseLevel
	s.reason = reason
	s.engineBroken = reason == ReasonBreakdown
	s.pool = generatePool(s.cfg, s.rng)
}

// Tick advances fuel burn and the breakdown clock while driving. The
// host loop calls it; any forced stop comes back as a value instead of a
// callback. Fuel depletion wins over the breakdown deadline when both
// land on the same tick.
func (s *Session) Tick(dt time.Duration) Transition {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gameOver || s.phase != PhaseDriving || dt <= 0 {
		return TransitionNone
	}

	s.burnCarry += dt.Seconds() * s.cfg.FuelBurnPerSecond
	if whole := int(s.burnCarry); whole > 0 {
		s.burnCarry -= float64(whole)
		if !s.ledger.Debit(ResourceFuel, whole) {
			s.ledger.Fuel = 0
		}
	}

	if s.ledger.Fuel <= 0 {
		s.enterLevel(ReasonOutOfFuel)
		return TransitionOutOfFuel
	}

	s.driveElapsed += dt.Seconds()
	if s.driveElapsed >= s.breakdownDeadline {
		s.enterLevel(ReasonBreakdown)
		return TransitionBreakdown
	}

	return TransitionNone
}

// StopDriving pulls the tank up by choice. Never blocked while driving.
func (s *Session) StopDriving() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gameOver {
		return ErrGameOver
	}
	if s.phase != PhaseDriving {
		return ErrNotDriving
	}
	s.enterLevel(ReasonManualStop)
	return nil
}

// StartDriving resumes the drive, discarding whatever is left outside
// and redrawing the breakdown deadline.
func (s *Session) StartDriving() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gameOver {
		return ErrGameOver
	}
	if s.phase != PhaseLevel {
		return ErrAlreadyDriving
	}
	if s.engineBroken {
		return ErrEngineStillBroken
	}
	if s.ledger.Fuel <= 0 {
		return ErrNoFuel
	}
	s.pool = LootPool{}
	s.resumeDriving()
	return nil
}

// FixEngine patches a breakdown with one scavenged part. It does not
// resume driving; start is a separate command.
func (s *Session) FixEngine() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gameOver {
		return ErrGameOver
	}
	if s.phase != PhaseLevel {
		return ErrNotInLevel
	}
	if !s.engineBroken {
		return ErrNotBroken
	}
	if !s.ledger.Debit(ResourceParts, 1) {
		return ErrInsufficientParts
	}
	s.engineBroken = false
	return nil
}

// LevelState is the lifecycle portion of a snapshot. Reason is only
// meaningful while Active.
type LevelState struct {
	Active       bool
	Reason       StopReason
	EngineBroken bool
}

// Snapshot is a consistent read of the whole session for the front end.
type Snapshot struct {
	Ledger   Ledger
	Level    LevelState
	Pool     PoolSnapshot
	GameOver bool
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Ledger:   s.ledger,
		GameOver: s.gameOver,
	}
	if s.phase == PhaseLevel {
		snap.Level = LevelState{
			Active:       true,
			Reason:       s.reason,
			EngineBroken: s.engineBroken,
		}
		snap.Pool = s.pool.snapshot()
	}
	return snap
}

func (s *Session) GameOver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gameOver
}

// Config returns the (immutable) tuning the session was created with.
func (s *Session) Config() Config {
	return s.cfg
}
