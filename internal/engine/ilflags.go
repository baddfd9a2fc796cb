package engine

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"HoopsSentinel/internal/model"
)

// droppableFloor stands in for a missing composite score when ranking drop
// candidates: an unscored bench player is the most droppable of all.
const droppableFloor = -999.0

// CheckILFlags surfaces pending injury-list actions for the roster.
//
// A player with a hard-out designation sitting outside the IL should move in;
// a player on the IL whose designation has cleared can return. Move
// suggestions are capped at the league's free IL capacity. When bench data is
// supplied, each activation carries a recommendation for which bench player
// to cut. Recommendations only; no roster moves are performed.
func (e *Engine) CheckILFlags(roster []model.Player, bench []model.LineupEntry, untouchables map[string]float64) model.ILFlags {
	var flags model.ILFlags

	occupied := 0
	for _, p := range roster {
		if model.IsILSlot(p.CurrentSlot) {
			occupied++
		}
	}
	free := e.cfg.ILCapacity - occupied
	if free < 0 {
		free = 0
	}

	for _, p := range roster {
		switch {
		case p.Status.RequiresIL() && !model.IsILSlot(p.CurrentSlot):
			flags.MoveToIL = append(flags.MoveToIL, model.ILMove{
				Name:        p.Name,
				Status:      p.Status,
				CurrentSlot: p.CurrentSlot,
				Action:      fmt.Sprintf("Move %s (%s) -> IL [status: %s]", p.Name, p.CurrentSlot, p.Status),
			})

		case model.IsILSlot(p.CurrentSlot) && p.Status.Healthy():
			entry := model.ILActivation{
				Name:        p.Name,
				CurrentSlot: p.CurrentSlot,
				Positions:   p.Positions,
				Score:       p.Score,
				Action:      fmt.Sprintf("Activate %s from %s [status: healthy]", p.Name, p.CurrentSlot),
			}
			if bench != nil {
				if drop := recommendDrop(&p, bench, untouchables); drop != nil {
					entry.Drop = drop
					entry.Action += fmt.Sprintf(" — consider dropping %s (%s)", drop.Name, drop.Reason)
				}
			}
			flags.ActivateFromIL = append(flags.ActivateFromIL, entry)
		}
	}

	// The platform cannot accept more IL moves than slots exist.
	if len(flags.MoveToIL) > free {
		skipped := make([]string, 0, len(flags.MoveToIL)-free)
		for _, m := range flags.MoveToIL[free:] {
			skipped = append(skipped, m.Name)
		}
		log.Printf("[WARN] IL is full (%d/%d), skipping move suggestion for: %s",
			occupied, e.cfg.ILCapacity, strings.Join(skipped, ", "))
		flags.MoveToIL = flags.MoveToIL[:free]
	}

	return flags
}

// recommendDrop picks the single best bench player to cut so the returning
// player has a spot. Lowest composite score wins (missing score = most
// droppable); ties break toward the worse 14-day rank; a small extra nudge
// goes to candidates whose positions overlap the returning player's, since
// cutting them frees the right type of slot. Untouchables are never
// candidates.
func recommendDrop(returning *model.Player, bench []model.LineupEntry, untouchables map[string]float64) *model.DropCandidate {
	type scored struct {
		entry   *model.LineupEntry
		key     float64
		rank14  int
		overlap bool
	}

	var cands []scored
	for i := range bench {
		b := &bench[i]
		if untouchables[b.Name] > 0 {
			continue
		}

		key := droppableFloor
		if b.Score.Known {
			key = b.Score.Value
		}
		overlap := positionsOverlap(returning.Positions, b.Positions)
		if overlap {
			key -= 0.5
		}
		rank14 := 0
		if b.Rank14.Known {
			rank14 = b.Rank14.Value
		}
		cands = append(cands, scored{entry: b, key: key, rank14: rank14, overlap: overlap})
	}
	if len(cands) == 0 {
		return nil
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].key != cands[j].key {
			return cands[i].key < cands[j].key
		}
		return cands[i].rank14 > cands[j].rank14
	})
	best := cands[0]

	var reasons []string
	if best.entry.Score.Known {
		reasons = append(reasons, fmt.Sprintf("score: %.1f", best.entry.Score.Value))
	} else {
		reasons = append(reasons, "no composite score")
	}
	if best.rank14 > 0 {
		reasons = append(reasons, fmt.Sprintf("rank14: %d", best.rank14))
	}
	if best.overlap {
		reasons = append(reasons, "position overlap")
	}

	return &model.DropCandidate{
		Name:      best.entry.Name,
		Positions: best.entry.Positions,
		Score:     best.entry.Score,
		Rank14:    best.entry.Rank14,
		Reason:    strings.Join(reasons, ", "),
	}
}

func positionsOverlap(a, b []string) bool {
	for _, pa := range a {
		for _, pb := range b {
			if pa == pb {
				return true
			}
		}
	}
	return false
}
