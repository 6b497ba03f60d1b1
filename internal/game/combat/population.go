package combat

import (
	"github.com/cory-johannsen/skirmish/internal/game/arena"
	"github.com/cory-johannsen/skirmish/internal/game/creature"
)

// CreatureCount returns how many creatures an encounter seeded by tmpl starts with.
//
// In standard situations (open world, a dungeon parent, or forced) the count
// is drawn from [1,8]; a draw of 1 is replaced by a roll over
// [EncounterSize, 2*EncounterSize] when the template has a size, else by 8.
// Counts above twice the party size are re-rolled over [1,16]. Elsewhere a
// guard brings two per party member and anything else comes alone.
//
// Precondition: src is non-nil.
// Postcondition: Returns 0 for a nil tmpl or partySize < 1; otherwise
// 1 <= n <= min(2*partySize, arena.MaxCreatures) in standard situations.
func CreatureCount(tmpl *creature.Template, standard bool, partySize int, src Source) int {
	if tmpl == nil || partySize < 1 {
		return 0
	}
	var n int
	if standard {
		n = src.Intn(8) + 1
		if n == 1 {
			if size := tmpl.EncounterSize; size > 0 {
				n = src.Intn(size+1) + size
			} else {
				n = 8
			}
		}
		for n > 2*partySize {
			n = src.Intn(arena.MaxCreatures) + 1
		}
	} else if tmpl.ID == creature.GuardID {
		n = partySize * 2
	} else {
		n = 1
	}
	return min(n, arena.MaxCreatures)
}

// FillTable assigns count creatures to random free slots. A pirate is
// replaced by its land counterpart, the rogue, when the catalog has one.
// Every creature but the last may be promoted to the base template's leader
// (1 in 8) or the leader's leader (1 in 32) when the leader differs from the
// base template.
//
// Precondition: count <= arena.MaxCreatures; catalog and src are non-nil.
// Postcondition: exactly count slots are filled, at least one with the base template.
func FillTable(tmpl *creature.Template, count int, catalog *creature.Catalog, src Source) [arena.MaxCreatures]*creature.Template {
	var table [arena.MaxCreatures]*creature.Template
	if tmpl == nil || count <= 0 {
		return table
	}
	if count > arena.MaxCreatures {
		panic("combat: FillTable precondition violated: count exceeds creature slots")
	}
	base := tmpl
	if base.ID == creature.PirateID {
		if rogue, ok := catalog.ByID(creature.RogueID); ok {
			base = rogue
		}
	}
	leader := catalog.Leader(base)
	for i := 0; i < count; i++ {
		current := base
		j := src.Intn(arena.MaxCreatures)
		for table[j] != nil {
			j = src.Intn(arena.MaxCreatures)
		}
		if leader != base && i != count-1 {
			if src.Intn(32) == 0 {
				current = catalog.Leader(leader)
			} else if src.Intn(8) == 0 {
				current = leader
			}
		}
		table[j] = current
	}
	return table
}
