package engine

import (
	"fmt"
	"strings"

	"HoopsSentinel/internal/model"
)

// BuildAlerts collects the freeform alert strings surfaced at the top of the
// daily report: pending IL actions, injured or low-ranked starters, a missed
// bench-shape target, and starters without a game today.
func (e *Engine) BuildAlerts(lineup *model.Lineup, flags *model.ILFlags, shape *model.BenchShape) []string {
	var alerts []string

	for _, m := range flags.MoveToIL {
		alerts = append(alerts, m.Action)
	}
	for _, a := range flags.ActivateFromIL {
		alerts = append(alerts, a.Action)
	}

	for _, p := range lineup.Active {
		if p.FlagInjured {
			alerts = append(alerts, fmt.Sprintf(
				"%s is in active slot %q but has status %q — consider sitting or moving to IL.",
				p.Name, p.Slot, p.Status))
		}
	}

	for _, p := range lineup.Active {
		if p.FlagLowRank {
			alerts = append(alerts, fmt.Sprintf(
				"%s (slot %s) has a 30-day rank of %d — outside top %d.",
				p.Name, p.Slot, p.Rank30.OrSentinel(), e.cfg.LowRankThreshold))
		}
	}

	if !shape.TargetMet {
		alerts = append(alerts, "Bench shape target not met: "+shape.Summary)
	}

	var noGame []string
	for _, p := range lineup.Active {
		if !p.HasGameToday && !p.Status.HardOut() {
			noGame = append(noGame, p.Name)
		}
	}
	if len(noGame) > 0 {
		alerts = append(alerts, "Active players with no game today: "+strings.Join(noGame, ", "))
	}

	return alerts
}
