package engine

import (
	"log"
	"sort"

	"HoopsSentinel/internal/model"
)

// qualifies applies the free-agent baseline filter for one window: the
// designation must not disqualify, the window rank must be inside the
// ceiling, and the minutes/games floors apply only when the underlying data
// is known. A zero value means "unknown", not "fails the floor".
func (e *Engine) qualifies(fa *model.Player, w window) bool {
	if fa.Status.DisqualifiesPickup() {
		return false
	}
	if windowRank(fa, w).OrSentinel() > e.cfg.WaiverRankCeiling {
		return false
	}
	if fa.MPG > 0 && fa.MPG < e.cfg.WaiverMinMPG {
		return false
	}
	if fa.GamesLast30 > 0 && fa.GamesLast30 < e.cfg.WaiverMinGames {
		return false
	}
	return true
}

// ScanActiveUpgrades finds free agents that would upgrade an active-lineup
// spot, compared on the 30-day window. Results carry one opportunity per free
// agent (the best), sorted by descending improvement. Untouchable incumbents
// stay in the comparison pool but are tagged so the report can warn.
func (e *Engine) ScanActiveUpgrades(freeAgents []model.Player, active []model.LineupEntry, untouchables map[string]float64) []model.Opportunity {
	qualified := 0
	var opps []model.Opportunity

	for i := range freeAgents {
		fa := &freeAgents[i]
		if !e.qualifies(fa, windowStable) {
			continue
		}
		qualified++

		for j := range active {
			cur := &active[j]
			if !model.EligibleForSlot(fa.Positions, cur.Slot) {
				continue
			}

			improvement, ok := compareScored(fa.Score, cur.Score, fa.Rank30, cur.Rank30)
			if !ok || improvement <= 0 {
				continue
			}

			opps = append(opps, model.Opportunity{
				Name:               fa.Name,
				Positions:          fa.Positions,
				Rank:               fa.Rank30,
				MPG:                fa.MPG,
				PercentOwned:       fa.PercentOwned,
				Score:              fa.Score,
				ReplaceName:        cur.Name,
				ReplaceRank:        cur.Rank30,
				ReplaceSlot:        cur.Slot,
				Improvement:        improvement,
				UntouchableReplace: untouchables[cur.Name] > 0,
			})
		}
	}

	deduped := dedupeBest(opps)
	log.Printf("[INFO] waiver: %d FAs qualified, %d active-upgrade opportunities", qualified, len(deduped))
	return deduped
}

// ScanBenchUpgrades finds free agents that would upgrade a bench spot,
// compared on the 14-day window. When both sides carry composite scores and
// remaining-game counts, the comparison uses weekly value (score x games
// remaining this week) instead of raw score.
func (e *Engine) ScanBenchUpgrades(freeAgents []model.Player, bench []model.LineupEntry, untouchables map[string]float64) []model.Opportunity {
	qualified := 0
	var opps []model.Opportunity

	for i := range freeAgents {
		fa := &freeAgents[i]
		if !e.qualifies(fa, windowRecent) {
			continue
		}
		qualified++

		faCat := benchCategory(fa.Positions)
		var faWeekly model.Score
		if fa.Score.Known && fa.GamesRemainingWeek > 0 {
			faWeekly = model.NewScore(fa.Score.Value * float64(fa.GamesRemainingWeek))
		}

		for j := range bench {
			cur := &bench[j]
			// The FA must share a position with the incumbent, or at least
			// fill the same bench category.
			if !positionsOverlap(fa.Positions, cur.Positions) && faCat != benchCategory(cur.Positions) {
				continue
			}

			var improvement float64
			switch {
			case faWeekly.Known && cur.Score.Known:
				curWeekly := 0.0
				if cur.GamesRemainingWeek > 0 {
					curWeekly = cur.Score.Value * float64(cur.GamesRemainingWeek)
				}
				improvement = faWeekly.Value - curWeekly
			case fa.Score.Known && fa.Score.Value <= 0:
				// A non-positive composite score never beats an unscored
				// incumbent.
				continue
			default:
				improvement = float64(cur.Rank14.OrSentinel() - fa.Rank14.OrSentinel())
			}
			if improvement <= 0 {
				continue
			}

			fit := faCat
			if fit == "" {
				fit = "?"
			}
			opps = append(opps, model.Opportunity{
				Name:               fa.Name,
				Positions:          fa.Positions,
				Rank:               fa.Rank14,
				MPG:                fa.MPG,
				PercentOwned:       fa.PercentOwned,
				Score:              fa.Score,
				GamesRemaining:     fa.GamesRemainingWeek,
				WeeklyValue:        faWeekly,
				ReplaceName:        cur.Name,
				ReplaceRank:        cur.Rank14,
				PositionFit:        fit,
				Improvement:        improvement,
				UntouchableReplace: untouchables[cur.Name] > 0,
			})
		}
	}

	deduped := dedupeBest(opps)
	log.Printf("[INFO] waiver: %d FAs qualified, %d bench-upgrade opportunities", qualified, len(deduped))
	return deduped
}

// compareScored computes the improvement of a free agent over an incumbent:
// composite scores when both sides have them, otherwise window ranks (lower
// is better). A free agent with a non-positive score is never recommended
// over an unscored incumbent.
func compareScored(faScore, curScore model.Score, faRank, curRank model.Rank) (float64, bool) {
	switch {
	case faScore.Known && curScore.Known:
		return faScore.Value - curScore.Value, true
	case faScore.Known && faScore.Value <= 0:
		return 0, false
	default:
		return float64(curRank.OrSentinel() - faRank.OrSentinel()), true
	}
}

// dedupeBest keeps the single highest-improvement opportunity per free agent
// and sorts the survivors by descending improvement.
func dedupeBest(opps []model.Opportunity) []model.Opportunity {
	best := make(map[string]model.Opportunity)
	order := make([]string, 0, len(opps))
	for _, o := range opps {
		prev, seen := best[o.Name]
		if !seen {
			order = append(order, o.Name)
		}
		if !seen || o.Improvement > prev.Improvement {
			best[o.Name] = o
		}
	}

	out := make([]model.Opportunity, 0, len(best))
	for _, name := range order {
		out = append(out, best[name])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Improvement > out[j].Improvement
	})
	return out
}
