package collector

import (
	"context"
	"errors"
	"testing"

	"HoopsSentinel/internal/model"
)

func TestCollect_AttachesSignals(t *testing.T) {
	mock := &MockProvider{
		Roster: []model.Player{
			{Name: "Jayson Tatum", Team: "BOS", Positions: []string{"SF", "PF"}},
			{Name: "Unknown Guy", Team: "XXX", Positions: []string{"C"}},
		},
		FreeAgents: []model.Player{
			{Name: "Naz Reid", Team: "MIN", Positions: []string{"C"}},
		},
		Rankings: map[string]Ranking{
			"Jayson Tatum": {Score: 11.2, CatValues: map[string]float64{"PTS": 1.8}},
			"Naz Reid":     {Score: 3.1},
		},
		Today:     map[string]bool{"BOS": true, "MIN": true},
		Remaining: map[string]int{"BOS": 3, "MIN": 2},
	}
	c := NewCollector(mock, mock, mock, 50)

	snap, err := c.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	tatum := snap.Roster[0]
	if !tatum.Score.Known || tatum.Score.Value != 11.2 {
		t.Errorf("expected Tatum score 11.2, got %+v", tatum.Score)
	}
	if !tatum.HasGameToday {
		t.Error("expected Tatum to have a game today")
	}
	if tatum.GamesRemainingWeek != 3 {
		t.Errorf("expected 3 games remaining, got %d", tatum.GamesRemainingWeek)
	}

	unknown := snap.Roster[1]
	if unknown.Score.Known {
		t.Error("player missing from rankings should keep unknown score")
	}
	if unknown.HasGameToday || unknown.GamesRemainingWeek != 0 {
		t.Error("player on unscheduled team should carry zero schedule signals")
	}

	reid := snap.FreeAgents[0]
	if !reid.Score.Known || reid.GamesRemainingWeek != 2 {
		t.Errorf("free agents should get signals attached too, got %+v", reid)
	}
}

func TestCollect_RosterErrorIsFatal(t *testing.T) {
	mock := &MockProvider{RosterErr: errors.New("platform down")}
	c := NewCollector(mock, mock, mock, 50)

	if _, err := c.Collect(context.Background()); err == nil {
		t.Fatal("expected error when roster fetch fails")
	}
}

func TestCollect_DegradesWithoutRankingsAndSchedule(t *testing.T) {
	mock := &MockProvider{
		Roster:      []model.Player{{Name: "Solo", Team: "LAL", Positions: []string{"PG"}}},
		RankingsErr: errors.New("quota exceeded"),
		ScheduleErr: errors.New("timeout"),
	}
	c := NewCollector(mock, mock, mock, 50)

	snap, err := c.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect should tolerate rankings/schedule failures: %v", err)
	}
	if snap.Roster[0].Score.Known {
		t.Error("score should be unknown when rankings fail")
	}
	if snap.TeamsToday != nil {
		t.Error("teams-today map should be nil when schedule fails")
	}
}

func TestCollect_FreeAgentLimit(t *testing.T) {
	mock := &MockProvider{
		Roster: []model.Player{{Name: "Solo", Team: "LAL"}},
		FreeAgents: []model.Player{
			{Name: "A"}, {Name: "B"}, {Name: "C"},
		},
	}
	c := NewCollector(mock, mock, mock, 2)

	snap, err := c.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(snap.FreeAgents) != 2 {
		t.Errorf("expected 2 free agents, got %d", len(snap.FreeAgents))
	}
}
