package game

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CommandResult carries a handled flag and a player-facing message back
// to whichever front end issued the command.
type CommandResult struct {
	Handled bool
	Message string
}

// ExecuteCommand maps one line of player input onto the session API.
// Front ends normalise/fuzzy-match input before calling; unhandled input
// comes back with Handled=false so the caller can suggest alternatives.
func (s *Session) ExecuteCommand(raw string) CommandResult {
	fields := strings.Fields(strings.TrimSpace(strings.ToLower(raw)))
	if len(fields) == 0 {
		return CommandResult{Handled: false}
	}

	switch fields[0] {
	case "help", "commands":
		return CommandResult{
			Handled: true,
			Message: "Commands: status, look [driver|left|right], stop, start, fix, " +
				"shoot <driver|left|right> [cannon|mg], scavenge <quick|moderate|greedy> [gun], " +
				"wait [seconds], reset.",
		}
	case "status":
		return s.statusCommand()
	case "look":
		return s.lookCommand(fields[1:])
	case "stop", "halt":
		return s.resultFor(s.StopDriving(),
			"The tank grinds to a halt. No man's land waits outside.")
	case "start", "drive":
		return s.resultFor(s.StartDriving(),
			"The engine turns over and the tank lurches forward.")
	case "fix", "repair":
		return s.resultFor(s.FixEngine(),
			"You patch the engine with scavenged parts. It should run again.")
	case "shoot", "fire":
		return s.shootCommand(fields[1:])
	case "scavenge":
		return s.scavengeCommand(fields[1:])
	case "wait":
		return s.waitCommand(fields[1:])
	case "reset", "restart":
		s.Reset()
		return CommandResult{Handled: true, Message: "A fresh crew, a fresh tank. Driving."}
	default:
		return CommandResult{Handled: false}
	}
}

func (s *Session) resultFor(err error, okMessage string) CommandResult {
	if err != nil {
		return CommandResult{Handled: true, Message: err.Error()}
	}
	return CommandResult{Handled: true, Message: okMessage}
}

func (s *Session) statusCommand() CommandResult {
	snap := s.Snapshot()
	state := "DRIVING"
	if snap.GameOver {
		state = "GAME OVER"
	} else if snap.Level.Active {
		state = fmt.Sprintf("STOPPED (%s)", snap.Level.Reason)
		if snap.Level.EngineBroken {
			state += ", engine broken"
		}
	}
	return CommandResult{
		Handled: true,
		Message: fmt.Sprintf("%s | fuel %d, parts %d, shells %d, ammo %d, guns %d, crew %d",
			state, snap.Ledger.Fuel, snap.Ledger.Parts, snap.Ledger.Shells,
			snap.Ledger.Ammo, snap.Ledger.Guns, snap.Ledger.Crew),
	}
}

func (s *Session) lookCommand(args []string) CommandResult {
	snap := s.Snapshot()
	if !snap.Level.Active {
		return CommandResult{Handled: true, Message: "Scenery blurs past the slits. Nothing to pick out while driving."}
	}

	if len(args) > 0 {
		v, ok := parseVantage(args[0])
		if !ok {
			return CommandResult{Handled: true, Message: fmt.Sprintf("Unknown slit: %s. Try driver, left or right.", args[0])}
		}
		view := snap.Pool.Vantages[v]
		return CommandResult{
			Handled: true,
			Message: fmt.Sprintf("Through the %s: %d zombies, %d fuel cans, %d shells, %d parts, %d ammo boxes.",
				v, view.Zombies, view.FuelCans, view.Shells, view.Parts, view.AmmoBoxes),
		}
	}

	return CommandResult{
		Handled: true,
		Message: fmt.Sprintf("No man's land: %d zombies, %d fuel cans, %d shells, %d parts, %d ammo boxes scattered outside.",
			snap.Pool.Zombies, snap.Pool.FuelCans, snap.Pool.Shells, snap.Pool.Parts, snap.Pool.AmmoBoxes),
	}
}

func (s *Session) shootCommand(args []string) CommandResult {
	if len(args) == 0 {
		return CommandResult{Handled: true, Message: "Usage: shoot <driver|left|right> [cannon|mg]"}
	}
	v, ok := parseVantage(args[0])
	if !ok {
		return CommandResult{Handled: true, Message: fmt.Sprintf("Unknown slit: %s. Try driver, left or right.", args[0])}
	}

	// The driver slit only mounts the machine gun.
	weapon := WeaponCannon
	if v == VantageDriver {
		weapon = WeaponMachineGun
	}
	if len(args) > 1 {
		w, ok := parseWeapon(args[1])
		if !ok {
			return CommandResult{Handled: true, Message: fmt.Sprintf("Unknown weapon: %s. Try cannon or mg.", args[1])}
		}
		weapon = w
	}

	res, err := s.ShootZombie(v, weapon)
	if err != nil {
		return CommandResult{Handled: true, Message: err.Error()}
	}
	if !res.Killed {
		return CommandResult{Handled: true, Message: "Nothing but mud out there. You hold fire."}
	}
	return CommandResult{
		Handled: true,
		Message: fmt.Sprintf("The %s roars. A zombie drops. %d remain outside.", weapon, res.ZombiesRemaining),
	}
}

func (s *Session) scavengeCommand(args []string) CommandResult {
	if len(args) == 0 {
		return CommandResult{Handled: true, Message: "Usage: scavenge <quick|moderate|greedy> [gun]"}
	}
	mode, ok := parseRiskMode(args[0])
	if !ok {
		return CommandResult{Handled: true, Message: fmt.Sprintf("Unknown approach: %s. Try quick, moderate or greedy.", args[0])}
	}
	commitGun := false
	for _, arg := range args[1:] {
		if arg == "gun" || arg == "armed" {
			commitGun = true
		}
	}

	out, err := s.Scavenge(mode, commitGun)
	if err != nil {
		return CommandResult{Handled: true, Message: err.Error()}
	}

	if !out.Survived {
		msg := "The scavenger does not return. A shape vanishes into the haze and does not come back."
		if out.GunLost {
			msg += " The gun is gone with them."
		}
		if out.GameOver {
			msg += " All crew are dead. The tank falls silent."
		}
		return CommandResult{Handled: true, Message: msg}
	}

	gains := make([]string, 0, 4)
	if out.Haul.Parts > 0 {
		gains = append(gains, fmt.Sprintf("%+d parts", out.Haul.Parts))
	}
	if out.Haul.Shells > 0 {
		gains = append(gains, fmt.Sprintf("%+d shells", out.Haul.Shells))
	}
	if out.Haul.Fuel > 0 {
		gains = append(gains, fmt.Sprintf("%+d fuel", out.Haul.Fuel))
	}
	if out.Haul.Ammo > 0 {
		gains = append(gains, fmt.Sprintf("%+d ammo", out.Haul.Ammo))
	}
	haul := "empty-handed"
	if len(gains) > 0 {
		haul = strings.Join(gains, ", ")
	}
	return CommandResult{
		Handled: true,
		Message: fmt.Sprintf("The scavenger returns, mud-streaked and breathing hard: %s (chance was %d%%).",
			haul, int(out.Chance*100)),
	}
}

func (s *Session) waitCommand(args []string) CommandResult {
	seconds := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return CommandResult{Handled: true, Message: "Usage: wait [seconds]"}
		}
		seconds = n
	}

	for i := 0; i < seconds; i++ {
		switch s.Tick(time.Second) {
		case TransitionOutOfFuel:
			return CommandResult{Handled: true, Message: fmt.Sprintf(
				"After %ds the engine coughs dry. Out of fuel. The tank rolls to a stop.", i+1)}
		case TransitionBreakdown:
			return CommandResult{Handled: true, Message: fmt.Sprintf(
				"After %ds something bangs hard under the deck. Engine breakdown. The tank shudders to a stop.", i+1)}
		}
	}
	if s.Snapshot().Level.Active {
		return CommandResult{Handled: true, Message: fmt.Sprintf("%ds pass. The wind moans over the hull.", seconds)}
	}
	return CommandResult{Handled: true, Message: fmt.Sprintf("%ds pass. The engine drones on.", seconds)}
}

func parseVantage(token string) (Vantage, bool) {
	switch token {
	case "driver", "d", "front":
		return VantageDriver, true
	case "left", "l":
		return VantageLeft, true
	case "right", "r":
		return VantageRight, true
	default:
		return 0, false
	}
}

func parseWeapon(token string) (Weapon, bool) {
	switch token {
	case "cannon", "shell":
		return WeaponCannon, true
	case "mg", "machinegun", "machine-gun", "gun":
		return WeaponMachineGun, true
	default:
		return 0, false
	}
}

func parseRiskMode(token string) (RiskMode, bool) {
	switch token {
	case "quick":
		return RiskQuick, true
	case "moderate", "medium":
		return RiskModerate, true
	case "greedy":
		return RiskGreedy, true
	default:
		return 0, false
	}
}
