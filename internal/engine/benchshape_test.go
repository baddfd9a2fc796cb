package engine

import (
	"testing"

	"HoopsSentinel/internal/model"
)

func benchEntry(name string, positions ...string) model.LineupEntry {
	return model.LineupEntry{Name: name, Slot: model.SlotBench, Positions: positions}
}

func TestCheckBenchShape_MissingForward(t *testing.T) {
	e := New(DefaultConfig())
	shape := e.CheckBenchShape([]model.LineupEntry{
		benchEntry("Big", "C"),
		benchEntry("Small", "PG", "G"),
	})

	if shape.Counts["C"] != 1 || shape.Counts["G"] != 1 || shape.Counts["F"] != 0 {
		t.Errorf("unexpected counts: %v", shape.Counts)
	}
	if shape.TargetMet {
		t.Error("shape without a forward must not meet the target")
	}
	want := "G: 1/1 (OK) | F: 0/1 (NEED) | C: 1/1 (OK)"
	if shape.Summary != want {
		t.Errorf("summary = %q, want %q", shape.Summary, want)
	}
}

func TestCheckBenchShape_TargetMet(t *testing.T) {
	e := New(DefaultConfig())
	shape := e.CheckBenchShape([]model.LineupEntry{
		benchEntry("Big", "PF", "C"),
		benchEntry("Wing", "SF", "F"),
		benchEntry("Small", "SG"),
	})

	if !shape.TargetMet {
		t.Errorf("one of each should meet the target, counts: %v", shape.Counts)
	}
}

func TestBenchCategory_CentrePriority(t *testing.T) {
	tests := []struct {
		positions []string
		want      string
	}{
		{[]string{"PF", "C"}, "C"},
		{[]string{"SF", "PF"}, "F"},
		{[]string{"PG", "SG"}, "G"},
		{[]string{"SG", "SF"}, "F"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := benchCategory(tt.positions); got != tt.want {
			t.Errorf("benchCategory(%v) = %q, want %q", tt.positions, got, tt.want)
		}
	}
}
