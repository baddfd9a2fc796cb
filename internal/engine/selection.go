package engine

import (
	"sort"

	"HoopsSentinel/internal/model"
)

// untouchableBonus places protected players ahead of any non-untouchable
// with an equal or worse signal, under either signal kind.
const untouchableBonus = 10000

// window selects which platform rank backs the selection rule when no
// composite score is available.
type window int

const (
	windowStable window = iota // 30-day
	windowRecent               // 14-day
)

func windowFor(class model.SlotClass) window {
	if class == model.ClassFlex {
		return windowRecent
	}
	return windowStable
}

func windowRank(p *model.Player, w window) model.Rank {
	if w == windowRecent {
		return p.Rank14
	}
	return p.Rank30
}

// selectionKey is the single best-first ordering used everywhere: ascending,
// lower = better. A composite score wins when present (negated so the best
// score sorts first); otherwise the window rank, with a missing rank pushed
// to the sentinel.
func selectionKey(p *model.Player, w window) float64 {
	var key float64
	if p.Score.Known {
		key = -p.Score.Value
	} else {
		key = float64(windowRank(p, w).OrSentinel())
	}
	if p.Untouchable {
		key -= untouchableBonus
	}
	return key
}

// sortBestFirst orders candidates by selectionKey. The sort is stable, so
// ties fall back to input order.
func sortBestFirst(cands []*candidate, w window) {
	sort.SliceStable(cands, func(i, j int) bool {
		return selectionKey(&cands[i].Player, w) < selectionKey(&cands[j].Player, w)
	})
}
