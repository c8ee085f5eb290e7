package game

import "errors"

// Precondition failures surfaced to the front end. All of these are
// recoverable; the caller retries once the precondition is satisfied.
// ErrGameOver is terminal for the session: only Reset is accepted after it.
var (
	ErrEngineStillBroken = errors.New("the engine is broken; fix it before starting")
	ErrNoFuel            = errors.New("no fuel; scavenge some before starting")
	ErrNotBroken         = errors.New("the engine is not broken")
	ErrInsufficientParts = errors.New("not enough parts to fix the engine")
	ErrInsufficientAmmo  = errors.New("not enough ammunition")
	ErrNoCrew            = errors.New("no crew left to send")
	ErrNothingToScavenge = errors.New("nothing left outside worth scavenging")
	ErrNotInLevel        = errors.New("the tank is driving; stop first")
	ErrNotDriving        = errors.New("the tank is already stopped")
	ErrAlreadyDriving    = errors.New("the tank is already driving")
	ErrNoCannonArc       = errors.New("the cannon cannot traverse to the driver slit")
	ErrGameOver          = errors.New("all crew are dead; the tank has fallen silent")
)
