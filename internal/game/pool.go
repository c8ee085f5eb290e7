package game

import "math/rand/v2"

// Vantage is a vision slit looking out onto no man's land. Zombies and
// items are placed per vantage; combat only reaches what the current
// slit can see, while scavenge risk reads the whole field.
type Vantage int

const (
	VantageDriver Vantage = iota
	VantageLeft
	VantageRight

	numVantages = 3
)

func (v Vantage) String() string {
	switch v {
	case VantageDriver:
		return "driver slit"
	case VantageLeft:
		return "left gunner slit"
	case VantageRight:
		return "right gunner slit"
	default:
		return "unknown slit"
	}
}

// ItemKind is one scavengeable item type in the pool.
type ItemKind int

const (
	ItemFuelCan ItemKind = iota
	ItemShell
	ItemPart
	ItemAmmoBox

	numItemKinds = 4
)

func (k ItemKind) String() string {
	switch k {
	case ItemFuelCan:
		return "fuel can"
	case ItemShell:
		return "shell"
	case ItemPart:
		return "part"
	case ItemAmmoBox:
		return "ammo box"
	default:
		return "unknown item"
	}
}

type vantageStock struct {
	items   [numItemKinds]int
	zombies int
}

// LootPool is the per-level inventory of scavengeable items and zombies.
// Invariant: each aggregate counter equals the sum of its per-vantage
// stocks at all times.
type LootPool struct {
	items   [numItemKinds]int
	zombies int
	stocks  [numVantages]vantageStock
}

// generatePool rolls a fresh pool for a level, scattering each instance
// across the three slits uniformly at random.
func generatePool(cfg Config, rng *rand.Rand) LootPool {
	var p LootPool

	place := func(kind ItemKind, n int) {
		for i := 0; i < n; i++ {
			v := Vantage(rng.IntN(numVantages))
			p.stocks[v].items[kind]++
			p.items[kind]++
		}
	}

	place(ItemPart, max(1, cfg.Loot.Parts.roll(rng)))
	place(ItemFuelCan, cfg.Loot.FuelCans.roll(rng))
	place(ItemShell, cfg.Loot.Shells.roll(rng))
	place(ItemAmmoBox, cfg.Loot.AmmoBoxes.roll(rng))

	for i, n := 0, cfg.Loot.Zombies.roll(rng); i < n; i++ {
		v := Vantage(rng.IntN(numVantages))
		p.stocks[v].zombies++
		p.zombies++
	}

	return p
}

func (p *LootPool) Zombies() int {
	return p.zombies
}

func (p *LootPool) ZombiesAt(v Vantage) int {
	if v < 0 || v >= numVantages {
		return 0
	}
	return p.stocks[v].zombies
}

func (p *LootPool) Count(kind ItemKind) int {
	if kind < 0 || kind >= numItemKinds {
		return 0
	}
	return p.items[kind]
}

func (p *LootPool) CountAt(v Vantage, kind ItemKind) int {
	if v < 0 || v >= numVantages || kind < 0 || kind >= numItemKinds {
		return 0
	}
	return p.stocks[v].items[kind]
}

// TotalItems counts everything scavengeable; zombies are not loot.
func (p *LootPool) TotalItems() int {
	total := 0
	for _, n := range p.items {
		total += n
	}
	return total
}

func (p *LootPool) kindsWithStock() []ItemKind {
	kinds := make([]ItemKind, 0, numItemKinds)
	for k := ItemKind(0); k < numItemKinds; k++ {
		if p.items[k] > 0 {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

func (p *LootPool) killZombieAt(v Vantage) bool {
	if v < 0 || v >= numVantages || p.stocks[v].zombies == 0 {
		return false
	}
	p.stocks[v].zombies--
	p.zombies--
	return true
}

// removeItem takes one instance of kind off the field, pulling it from a
// uniformly chosen slit that still has stock.
func (p *LootPool) removeItem(kind ItemKind, rng *rand.Rand) bool {
	if kind < 0 || kind >= numItemKinds || p.items[kind] == 0 {
		return false
	}
	holders := make([]Vantage, 0, numVantages)
	for v := Vantage(0); v < numVantages; v++ {
		if p.stocks[v].items[kind] > 0 {
			holders = append(holders, v)
		}
	}
	v := holders[rng.IntN(len(holders))]
	p.stocks[v].items[kind]--
	p.items[kind]--
	return true
}

// VantageView is the read-only contents of one slit.
type VantageView struct {
	FuelCans  int
	Shells    int
	Parts     int
	AmmoBoxes int
	Zombies   int
}

// PoolSnapshot is the read-only aggregate plus per-slit breakdown the
// front end renders from.
type PoolSnapshot struct {
	FuelCans  int
	Shells    int
	Parts     int
	AmmoBoxes int
	Zombies   int
	Vantages  [numVantages]VantageView
}

func (p *LootPool) snapshot() PoolSnapshot {
	snap := PoolSnapshot{
		FuelCans:  p.items[ItemFuelCan],
		Shells:    p.items[ItemShell],
		Parts:     p.items[ItemPart],
		AmmoBoxes: p.items[ItemAmmoBox],
		Zombies:   p.zombies,
	}
	for v := Vantage(0); v < numVantages; v++ {
		snap.Vantages[v] = VantageView{
			FuelCans:  p.stocks[v].items[ItemFuelCan],
			Shells:    p.stocks[v].items[ItemShell],
			Parts:     p.stocks[v].items[ItemPart],
			AmmoBoxes: p.stocks[v].items[ItemAmmoBox],
			Zombies:   p.stocks[v].zombies,
		}
	}
	return snap
}
