package recorder

import (
	"path/filepath"
	"testing"
	"time"

	"HoopsSentinel/internal/model"
)

func TestSQLiteRecorder_RecordRun(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	r, err := NewSQLiteRecorder(dbPath)
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	defer r.Close()

	rep := &model.Report{
		Date: time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC),
		Lineup: model.Lineup{
			Active: []model.LineupEntry{
				{Name: "Point God", Slot: "PG", Rank30: model.NewRank(12), HasGameToday: true},
			},
			Bench: []model.LineupEntry{
				{Name: "Deep Cut", Slot: "BN"},
			},
		},
		BenchShape: model.BenchShape{Summary: "G: 1/1 (OK)", TargetMet: true},
		ILFlags: model.ILFlags{
			MoveToIL: []model.ILMove{{Name: "Broken Big", Status: model.StatusInjured, CurrentSlot: "BN"}},
		},
		ActiveUpgrades: []model.Opportunity{
			{Name: "Hot FA", Rank: model.NewRank(30), MPG: 32.1, ReplaceName: "Deep Cut", Improvement: 40},
		},
		Alerts: []string{"something happened"},
	}

	if err := r.RecordRun(&RunRecord{Report: rep}); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}

	var runs, entries, flags, opps int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&runs); err != nil {
		t.Fatalf("count runs: %v", err)
	}
	if err := r.db.QueryRow("SELECT COUNT(*) FROM lineup_entries").Scan(&entries); err != nil {
		t.Fatalf("count entries: %v", err)
	}
	if err := r.db.QueryRow("SELECT COUNT(*) FROM il_flags").Scan(&flags); err != nil {
		t.Fatalf("count il flags: %v", err)
	}
	if err := r.db.QueryRow("SELECT COUNT(*) FROM waiver_opportunities").Scan(&opps); err != nil {
		t.Fatalf("count opportunities: %v", err)
	}

	if runs != 1 || entries != 2 || flags != 1 || opps != 1 {
		t.Errorf("unexpected row counts: runs=%d entries=%d flags=%d opps=%d", runs, entries, flags, opps)
	}

	// Unknown ranks should land as NULL, not sentinel values.
	var nullRanks int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM lineup_entries WHERE rank_30day IS NULL").Scan(&nullRanks); err != nil {
		t.Fatalf("count null ranks: %v", err)
	}
	if nullRanks != 1 {
		t.Errorf("expected 1 NULL rank_30day, got %d", nullRanks)
	}
}
