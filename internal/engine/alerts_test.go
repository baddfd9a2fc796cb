package engine

import (
	"strings"
	"testing"

	"HoopsSentinel/internal/model"
)

func TestBuildAlerts(t *testing.T) {
	lineup := model.Lineup{
		Active: []model.LineupEntry{
			{Name: "Hurting Star", Slot: model.SlotPF, Status: model.StatusQuestionable, FlagInjured: true, HasGameToday: true},
			{Name: "Slumping Guard", Slot: model.SlotPG, Rank30: model.NewRank(85), FlagLowRank: true, HasGameToday: true},
			{Name: "Resting Wing", Slot: model.SlotSF, Status: model.StatusHealthy, HasGameToday: false},
		},
	}
	flags := model.ILFlags{
		MoveToIL: []model.ILMove{{Name: "Broken Big", Action: "Move Broken Big (C) -> IL [status: INJ]"}},
	}
	shape := model.BenchShape{TargetMet: false, Summary: "G: 0/1 (NEED) | F: 1/1 (OK) | C: 1/1 (OK)"}

	e := New(DefaultConfig())
	alerts := e.BuildAlerts(&lineup, &flags, &shape)

	if len(alerts) != 5 {
		t.Fatalf("expected 5 alerts, got %d: %v", len(alerts), alerts)
	}
	joined := strings.Join(alerts, "\n")
	for _, want := range []string{
		"Move Broken Big (C) -> IL",
		"Hurting Star",
		"30-day rank of 85",
		"Bench shape target not met",
		"Resting Wing",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("alerts missing %q:\n%s", want, joined)
		}
	}
}

func TestBuildAlerts_QuietWhenClean(t *testing.T) {
	lineup := model.Lineup{
		Active: []model.LineupEntry{
			{Name: "Fine", Slot: model.SlotPG, Status: model.StatusHealthy, HasGameToday: true},
		},
	}
	shape := model.BenchShape{TargetMet: true, Summary: "G: 1/1 (OK) | F: 1/1 (OK) | C: 1/1 (OK)"}

	e := New(DefaultConfig())
	if alerts := e.BuildAlerts(&lineup, &model.ILFlags{}, &shape); len(alerts) != 0 {
		t.Errorf("expected no alerts, got %v", alerts)
	}
}
