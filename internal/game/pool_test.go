package game

import "testing"

// poolConsistent verifies the aggregate counters against the per-slit
// stocks.
func poolConsistent(t *testing.T, p *LootPool) {
	t.Helper()

	var items [numItemKinds]int
	zombies := 0
	for v := Vantage(0); v < numVantages; v++ {
		for k := ItemKind(0); k < numItemKinds; k++ {
			items[k] += p.stocks[v].items[k]
		}
		zombies += p.stocks[v].zombies
	}
	for k := ItemKind(0); k < numItemKinds; k++ {
		if items[k] != p.items[k] {
			t.Fatalf("%v aggregate %d != per-slit sum %d", k, p.items[k], items[k])
		}
	}
	if zombies != p.zombies {
		t.Fatalf("zombie aggregate %d != per-slit sum %d", p.zombies, zombies)
	}
}

func TestGeneratePoolAlwaysHasAPart(t *testing.T) {
	cfg := DefaultConfig()
	// Force a range that would roll zero without the floor.
	cfg.Loot.Parts = IntRange{Min: 0, Max: 0}

	for seed := int64(1); seed <= 200; seed++ {
		p := generatePool(cfg, seededRNG(seed))
		if p.Count(ItemPart) < 1 {
			t.Fatalf("seed %d: pool has %d parts, want >= 1", seed, p.Count(ItemPart))
		}
		poolConsistent(t, &p)
	}
}

func TestGeneratePoolRespectsRanges(t *testing.T) {
	cfg := DefaultConfig()

	for seed := int64(1); seed <= 200; seed++ {
		p := generatePool(cfg, seededRNG(seed))

		checks := []struct {
			name string
			got  int
			r    IntRange
		}{
			{"zombies", p.Zombies(), cfg.Loot.Zombies},
			{"fuel cans", p.Count(ItemFuelCan), cfg.Loot.FuelCans},
			{"shells", p.Count(ItemShell), cfg.Loot.Shells},
			{"parts", p.Count(ItemPart), cfg.Loot.Parts},
			{"ammo boxes", p.Count(ItemAmmoBox), cfg.Loot.AmmoBoxes},
		}
		for _, c := range checks {
			if c.got < c.r.Min || c.got > c.r.Max {
				t.Fatalf("seed %d: %s = %d outside [%d, %d]", seed, c.name, c.got, c.r.Min, c.r.Max)
			}
		}
	}
}

func TestPoolRemoveItemKeepsAggregatesConsistent(t *testing.T) {
	rng := seededRNG(7)
	p := generatePool(DefaultConfig(), rng)

	for p.TotalItems() > 0 {
		kinds := p.kindsWithStock()
		kind := kinds[rng.IntN(len(kinds))]
		if !p.removeItem(kind, rng) {
			t.Fatalf("removeItem(%v) failed with stock %d", kind, p.Count(kind))
		}
		poolConsistent(t, &p)
	}
	if p.removeItem(ItemPart, rng) {
		t.Fatal("removeItem succeeded on an empty pool")
	}
}

func TestPoolKillZombieAt(t *testing.T) {
	var p LootPool
	p.stocks[VantageLeft].zombies = 2
	p.zombies = 2

	if p.killZombieAt(VantageRight) {
		t.Fatal("killed a zombie at an empty slit")
	}
	if !p.killZombieAt(VantageLeft) {
		t.Fatal("failed to kill a visible zombie")
	}
	if p.Zombies() != 1 || p.ZombiesAt(VantageLeft) != 1 {
		t.Fatalf("zombies = %d (left %d), want 1 and 1", p.Zombies(), p.ZombiesAt(VantageLeft))
	}
	poolConsistent(t, &p)
}
