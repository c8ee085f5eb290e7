package parser

import "github.com/agnivade/levenshtein"

// Registry maps every known verb and alias onto its canonical command.
type Registry struct {
	canonical map[string]string
}

func NewRegistry() *Registry {
	return &Registry{canonical: make(map[string]string)}
}

func (r *Registry) RegisterCommand(c CommandDef) {
	verb := normaliseInput(c.Canonical)
	if verb == "" {
		return
	}
	r.canonical[verb] = verb
	for _, a := range c.Aliases {
		if alias := normaliseInput(a); alias != "" {
			r.canonical[alias] = verb
		}
	}
}

func (r *Registry) exact(token string) (string, bool) {
	verb, ok := r.canonical[token]
	return verb, ok
}

// nearest scores the token against every registered verb and alias,
// returning the best canonical command and its similarity in [0, 1].
func (r *Registry) nearest(token string) (string, float64) {
	best := ""
	bestScore := 0.0
	for alias, verb := range r.canonical {
		dist := levenshtein.ComputeDistance(token, alias)
		longest := max(len(token), len(alias))
		if longest == 0 {
			continue
		}
		score := 1.0 - float64(dist)/float64(longest)
		if score > bestScore {
			best = verb
			bestScore = score
		}
	}
	return best, bestScore
}

// DefaultRegistry carries the tank's command vocabulary.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, c := range []CommandDef{
		{Canonical: "status", Aliases: []string{"inventory", "resources", "stats"}},
		{Canonical: "look", Aliases: []string{"inspect", "examine", "peek"}},
		{Canonical: "stop", Aliases: []string{"halt", "brake"}},
		{Canonical: "start", Aliases: []string{"drive", "go", "move"}},
		{Canonical: "fix", Aliases: []string{"repair", "mend", "patch"}},
		{Canonical: "shoot", Aliases: []string{"fire", "attack", "kill"}},
		{Canonical: "scavenge", Aliases: []string{"loot", "forage", "send"}},
		{Canonical: "wait", Aliases: []string{"rest", "idle"}},
		{Canonical: "reset", Aliases: []string{"restart", "again"}},
		{Canonical: "help", Aliases: []string{"commands"}},
		{Canonical: "quit", Aliases: []string{"exit", "leave"}},
	} {
		r.RegisterCommand(c)
	}
	return r
}
