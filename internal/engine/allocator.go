package engine

import (
	"log"
	"strings"

	"HoopsSentinel/internal/model"
)

// candidate wraps a player in the allocation pool with an assigned flag, so
// fill passes never mutate a list they are iterating.
type candidate struct {
	model.Player
	assigned bool
}

// assignment pairs a pool candidate with the active slot it holds. The slot
// class drives which window signal later passes judge the occupant by.
type assignment struct {
	player *candidate
	slot   string
	class  model.SlotClass
}

// Allocate assigns the roster to active, bench, and IL outputs for the day.
//
// Players already sitting on an IL-type slot pass through to OnIL untouched.
// The rest are filled in two phases (stable slots on the 30-day signal, flex
// slots on the 14-day one), adjusted by a single game-day swap pass, and the
// leftovers are benched best-first up to bench capacity.
//
// teamsPlayingToday sets HasGameToday per player by team code; pass nil when
// the roster records already carry the flag.
func (e *Engine) Allocate(roster []model.Player, untouchables map[string]float64, teamsPlayingToday map[string]bool) model.Lineup {
	var onIL []model.ILEntry
	pool := make([]*candidate, 0, len(roster))

	for _, p := range roster {
		if model.IsILSlot(p.CurrentSlot) {
			onIL = append(onIL, model.ILEntry{
				Name:   p.Name,
				Slot:   p.CurrentSlot,
				Rank30: p.Rank30,
				Rank14: p.Rank14,
				Status: p.Status,
			})
			continue
		}
		if teamsPlayingToday != nil {
			p.HasGameToday = teamsPlayingToday[p.Team]
		}
		p.Untouchable = untouchables[p.Name] > 0
		pool = append(pool, &candidate{Player: p})
	}

	var active []assignment
	active = e.fillPhase(active, pool, model.StableFillOrder, model.ClassStable)
	active = e.fillPhase(active, pool, model.FlexFillOrder, model.ClassFlex)
	e.gameDaySwaps(active, pool)
	bench := e.fillBench(pool)

	lineup := model.Lineup{OnIL: onIL, Bench: bench}
	for _, a := range active {
		lineup.Active = append(lineup.Active, e.entryFor(a.player, a.slot, a.class))
	}
	return lineup
}

// fillPhase assigns the best remaining eligible candidate to each slot in
// order. A slot with no eligible candidate is simply left unfilled.
func (e *Engine) fillPhase(active []assignment, pool []*candidate, order []string, class model.SlotClass) []assignment {
	w := windowFor(class)
	for _, code := range order {
		best := bestForSlot(pool, code, w)
		if best == nil {
			continue
		}
		best.assigned = true
		active = append(active, assignment{player: best, slot: code, class: class})
	}
	return active
}

// bestForSlot picks the best unassigned eligible candidate by the selection
// rule. First-best wins on ties, preserving input order.
func bestForSlot(pool []*candidate, slot string, w window) *candidate {
	var best *candidate
	var bestKey float64
	for _, c := range pool {
		if c.assigned || !model.EligibleForSlot(c.Positions, slot) {
			continue
		}
		key := selectionKey(&c.Player, w)
		if best == nil || key < bestKey {
			best, bestKey = c, key
		}
	}
	return best
}

// expendTier orders active slots by how cheaply they can be vacated:
// utility slots first, the remaining flex slots next, stable core slots last.
func expendTier(slot string, class model.SlotClass) int {
	switch {
	case slot == model.SlotUtil:
		return 0
	case class == model.ClassFlex:
		return 1
	default:
		return 2
	}
}

// gameDaySwaps promotes unassigned players who play today over active
// occupants who do not. Each qualifying candidate gets one shot, in
// best-first order; a displaced occupant only returns via the bench fill,
// never by re-running the pass.
func (e *Engine) gameDaySwaps(active []assignment, pool []*candidate) {
	var cands []*candidate
	for _, c := range pool {
		if !c.assigned && c.HasGameToday && !c.Status.HardOut() {
			cands = append(cands, c)
		}
	}
	sortBestFirst(cands, windowRecent)

	for _, cand := range cands {
		for tier := 0; tier <= 2; tier++ {
			target := worstInTier(active, cand, tier)
			if target == nil {
				continue
			}
			displaced := target.player
			displaced.assigned = false
			cand.assigned = true
			target.player = cand
			log.Printf("[INFO] game-day swap: %s in for %s at %s", cand.Name, displaced.Name, target.slot)
			break
		}
	}
}

// worstInTier finds the most expendable displacement target in one tier: an
// occupant without a game today, in a slot the candidate is eligible for,
// worst-ranked by the slot's own window signal.
func worstInTier(active []assignment, cand *candidate, tier int) *assignment {
	var worst *assignment
	var worstKey float64
	for i := range active {
		a := &active[i]
		if expendTier(a.slot, a.class) != tier || a.player.HasGameToday {
			continue
		}
		if !model.EligibleForSlot(cand.Positions, a.slot) {
			continue
		}
		key := selectionKey(&a.player.Player, windowFor(a.class))
		if worst == nil || key > worstKey {
			worst, worstKey = a, key
		}
	}
	return worst
}

// fillBench places all remaining unassigned players best-first into bench
// slots. Overflow beyond capacity is dropped with a diagnostic, never an
// error: a 13-player roster should fit, but a bigger one must not crash.
func (e *Engine) fillBench(pool []*candidate) []model.LineupEntry {
	var remaining []*candidate
	for _, c := range pool {
		if !c.assigned {
			remaining = append(remaining, c)
		}
	}
	sortBestFirst(remaining, windowStable)

	var bench []model.LineupEntry
	for i, c := range remaining {
		if i >= e.cfg.BenchSlots {
			var dropped []string
			for _, d := range remaining[i:] {
				dropped = append(dropped, d.Name)
			}
			log.Printf("[WARN] %d unassigned players exceed bench capacity %d, dropping: %s",
				len(remaining)-e.cfg.BenchSlots, e.cfg.BenchSlots, strings.Join(dropped, ", "))
			break
		}
		c.assigned = true
		bench = append(bench, e.entryFor(c, model.SlotBench, model.ClassFlex))
	}
	return bench
}

func (e *Engine) entryFor(c *candidate, slot string, class model.SlotClass) model.LineupEntry {
	lowRank := c.Rank30.OrSentinel() > e.cfg.LowRankThreshold
	if slot != model.SlotBench && class != model.ClassStable {
		// Flex starters are picked on the 14-day signal; a 30-day flag there
		// is noise.
		lowRank = false
	}
	return model.LineupEntry{
		Name:               c.Name,
		Slot:               slot,
		Class:              class,
		Positions:          c.Positions,
		Rank30:             c.Rank30,
		Rank14:             c.Rank14,
		Score:              c.Score,
		HasGameToday:       c.HasGameToday,
		GamesRemainingWeek: c.GamesRemainingWeek,
		Status:             c.Status,
		Untouchable:        c.Untouchable,
		FlagLowRank:        lowRank,
		FlagInjured:        c.Status.GameImpacting(),
	}
}
