package engine

import (
	"testing"

	"HoopsSentinel/internal/model"
)

func freeAgent(name string, positions []string, r30, r14 int) model.Player {
	return model.Player{
		Name:        name,
		Positions:   positions,
		Status:      model.StatusHealthy,
		Rank30:      model.NewRank(r30),
		Rank14:      model.NewRank(r14),
		MPG:         32.0,
		GamesLast30: 12,
	}
}

func activeEntry(name string, slot string, positions []string, r30 int) model.LineupEntry {
	return model.LineupEntry{
		Name:      name,
		Slot:      slot,
		Positions: positions,
		Rank30:    model.NewRank(r30),
	}
}

func TestScanActiveUpgrades_DedupKeepsBest(t *testing.T) {
	fas := []model.Player{freeAgent("Hot Guard", []string{"PG", "SG"}, 40, 35)}
	active := []model.LineupEntry{
		activeEntry("Weak PG", model.SlotPG, []string{"PG"}, 80),
		activeEntry("Weaker SG", model.SlotSG, []string{"SG"}, 95),
	}

	e := New(DefaultConfig())
	opps := e.ScanActiveUpgrades(fas, active, nil)

	if len(opps) != 1 {
		t.Fatalf("expected one opportunity per free agent, got %d", len(opps))
	}
	if opps[0].ReplaceName != "Weaker SG" {
		t.Errorf("dedup must keep the higher improvement, got replace=%s", opps[0].ReplaceName)
	}
	if opps[0].Improvement != 55 {
		t.Errorf("improvement = %.1f, want 55", opps[0].Improvement)
	}
}

func TestScanActiveUpgrades_QualificationFilter(t *testing.T) {
	outFA := freeAgent("Hurt FA", []string{"SF"}, 20, 18)
	outFA.Status = model.StatusOut

	lowMinutes := freeAgent("Bench Warmer", []string{"SF"}, 30, 25)
	lowMinutes.MPG = 12.0

	unknownMinutes := freeAgent("Unknown Minutes", []string{"SF"}, 30, 25)
	unknownMinutes.MPG = 0 // unknown, not a floor failure

	outsideCeiling := freeAgent("Deep Cut", []string{"SF"}, 150, 140)

	active := []model.LineupEntry{
		activeEntry("Weak SF", model.SlotSF, []string{"SF"}, 90),
	}

	e := New(DefaultConfig())
	opps := e.ScanActiveUpgrades([]model.Player{outFA, lowMinutes, unknownMinutes, outsideCeiling}, active, nil)

	if len(opps) != 1 || opps[0].Name != "Unknown Minutes" {
		t.Fatalf("only the unknown-minutes FA should qualify, got %+v", opps)
	}
}

func TestScanActiveUpgrades_NonPositiveScoreNeverBeatsUnscored(t *testing.T) {
	fa := freeAgent("Negative Score", []string{"C"}, 10, 10)
	fa.Score = model.NewScore(-0.4)

	active := []model.LineupEntry{
		activeEntry("Unscored Centre", model.SlotC, []string{"C"}, 90),
	}

	e := New(DefaultConfig())
	if opps := e.ScanActiveUpgrades([]model.Player{fa}, active, nil); len(opps) != 0 {
		t.Errorf("non-positive score must never beat an unscored incumbent, got %+v", opps)
	}
}

func TestScanActiveUpgrades_ScoreComparisonAndUntouchableTag(t *testing.T) {
	fa := freeAgent("Scored FA", []string{"PG"}, 30, 28)
	fa.Score = model.NewScore(5.0)

	incumbent := activeEntry("Protected PG", model.SlotPG, []string{"PG"}, 10)
	incumbent.Score = model.NewScore(3.5)

	e := New(DefaultConfig())
	opps := e.ScanActiveUpgrades([]model.Player{fa}, []model.LineupEntry{incumbent},
		map[string]float64{"Protected PG": 99.0})

	if len(opps) != 1 {
		t.Fatalf("expected 1 opportunity, got %d", len(opps))
	}
	if got := opps[0].Improvement; got != 1.5 {
		t.Errorf("score improvement = %.2f, want 1.50", got)
	}
	if !opps[0].UntouchableReplace {
		t.Error("untouchable incumbents stay in the pool but must be tagged")
	}
}

func TestScanActiveUpgrades_SortedDescending(t *testing.T) {
	fas := []model.Player{
		freeAgent("Small Upgrade", []string{"PG"}, 70, 65),
		freeAgent("Big Upgrade", []string{"SG"}, 20, 18),
	}
	active := []model.LineupEntry{
		activeEntry("PG Guy", model.SlotPG, []string{"PG"}, 80),
		activeEntry("SG Guy", model.SlotSG, []string{"SG"}, 85),
	}

	e := New(DefaultConfig())
	opps := e.ScanActiveUpgrades(fas, active, nil)

	if len(opps) != 2 {
		t.Fatalf("expected 2 opportunities, got %d", len(opps))
	}
	if opps[0].Name != "Big Upgrade" || opps[1].Name != "Small Upgrade" {
		t.Errorf("results must sort by descending improvement: %+v", opps)
	}
}

func TestScanBenchUpgrades_WeeklyValue(t *testing.T) {
	fa := freeAgent("Streamer", []string{"PG", "G"}, 40, 35)
	fa.Score = model.NewScore(4.2)
	fa.GamesRemainingWeek = 3

	bench := model.LineupEntry{
		Name:               "Fringe Guard",
		Slot:               model.SlotBench,
		Positions:          []string{"PG", "G"},
		Rank14:             model.NewRank(115),
		Score:              model.NewScore(0.5),
		GamesRemainingWeek: 2,
	}

	e := New(DefaultConfig())
	opps := e.ScanBenchUpgrades([]model.Player{fa}, []model.LineupEntry{bench}, nil)

	if len(opps) != 1 {
		t.Fatalf("expected 1 opportunity, got %d", len(opps))
	}
	o := opps[0]
	if !o.WeeklyValue.Known || o.WeeklyValue.Value != 12.6 {
		t.Errorf("weekly value = %+v, want 12.6", o.WeeklyValue)
	}
	// 4.2*3 - 0.5*2 = 11.6
	if o.Improvement != 11.6 {
		t.Errorf("improvement = %.2f, want 11.60", o.Improvement)
	}
	if o.PositionFit != "G" {
		t.Errorf("position fit = %q, want G", o.PositionFit)
	}
}

func TestScanBenchUpgrades_CategoryFallbackMatch(t *testing.T) {
	// No shared position codes, but both classify as forwards.
	fa := freeAgent("Combo Forward", []string{"SF"}, 40, 30)
	bench := model.LineupEntry{
		Name:      "Other Forward",
		Slot:      model.SlotBench,
		Positions: []string{"PF"},
		Rank14:    model.NewRank(90),
	}

	e := New(DefaultConfig())
	opps := e.ScanBenchUpgrades([]model.Player{fa}, []model.LineupEntry{bench}, nil)

	if len(opps) != 1 {
		t.Fatalf("same bench category must be comparable, got %d opportunities", len(opps))
	}
	if opps[0].Improvement != 60 {
		t.Errorf("rank improvement = %.1f, want 60", opps[0].Improvement)
	}
}

func TestScanBenchUpgrades_UsesRecentWindowCeiling(t *testing.T) {
	// Inside the 30-day ceiling but outside the 14-day one: bench scan
	// filters on the recent window.
	fa := freeAgent("Fading", []string{"C"}, 50, 120)
	bench := model.LineupEntry{
		Name:      "Bench Big",
		Slot:      model.SlotBench,
		Positions: []string{"C"},
		Rank14:    model.NewRank(200),
	}

	e := New(DefaultConfig())
	if opps := e.ScanBenchUpgrades([]model.Player{fa}, []model.LineupEntry{bench}, nil); len(opps) != 0 {
		t.Errorf("FA outside the 14-day ceiling must not qualify, got %+v", opps)
	}
}
