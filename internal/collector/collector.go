package collector

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"HoopsSentinel/internal/model"
)

// Snapshot is everything the daily run needs, fetched once.
type Snapshot struct {
	Roster         []model.Player
	FreeAgents     []model.Player
	TeamsToday     map[string]bool
	GamesRemaining map[string]int
	FetchedAt      time.Time
}

// Collector gathers the day's data from all providers and stitches the
// ranking and schedule signals onto each player record.
type Collector struct {
	Platform       PlatformProvider
	Rankings       RankingsProvider
	Schedule       ScheduleProvider
	FreeAgentLimit int
}

// NewCollector creates a new Collector.
func NewCollector(platform PlatformProvider, rankings RankingsProvider, schedule ScheduleProvider, faLimit int) *Collector {
	return &Collector{
		Platform:       platform,
		Rankings:       rankings,
		Schedule:       schedule,
		FreeAgentLimit: faLimit,
	}
}

// Collect fetches roster, free agents, rankings, and schedule concurrently.
// Rankings and schedule failures degrade to warnings; the roster fetch is the
// only hard requirement.
func (c *Collector) Collect(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{FetchedAt: time.Now()}

	var rankings map[string]Ranking

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		roster, err := c.Platform.FetchRoster(gctx)
		if err != nil {
			return fmt.Errorf("fetch roster: %w", err)
		}
		snap.Roster = roster
		return nil
	})
	g.Go(func() error {
		fas, err := c.Platform.FetchFreeAgents(gctx, c.FreeAgentLimit)
		if err != nil {
			log.Printf("[WARN] free agent fetch failed: %v, skipping waiver scan", err)
			return nil
		}
		snap.FreeAgents = fas
		return nil
	})
	g.Go(func() error {
		r, err := c.Rankings.FetchRankings(gctx)
		if err != nil {
			log.Printf("[WARN] rankings fetch failed: %v, composite scores unavailable", err)
			return nil
		}
		rankings = r
		return nil
	})
	g.Go(func() error {
		today, err := c.Schedule.TeamsPlayingToday(gctx)
		if err != nil {
			log.Printf("[WARN] schedule fetch failed: %v, game-day signals unavailable", err)
			return nil
		}
		snap.TeamsToday = today
		remaining, err := c.Schedule.GamesRemainingThisWeek(gctx)
		if err != nil {
			log.Printf("[WARN] weekly schedule fetch failed: %v", err)
			return nil
		}
		snap.GamesRemaining = remaining
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	attach(snap.Roster, rankings, snap.TeamsToday, snap.GamesRemaining)
	attach(snap.FreeAgents, rankings, snap.TeamsToday, snap.GamesRemaining)

	log.Printf("[INFO] collected snapshot: %d rostered, %d free agents, %d teams playing today (source: %s)",
		len(snap.Roster), len(snap.FreeAgents), len(snap.TeamsToday), c.Platform.Name())
	return snap, nil
}

// attach joins ranking and schedule data onto player records by exact name
// and team abbreviation. Players absent from a feed keep their zero values.
func attach(players []model.Player, rankings map[string]Ranking, today map[string]bool, remaining map[string]int) {
	for i := range players {
		p := &players[i]
		if r, ok := rankings[p.Name]; ok {
			p.Score = model.NewScore(r.Score)
			p.CatValues = r.CatValues
		}
		if today != nil {
			p.HasGameToday = today[p.Team]
		}
		if remaining != nil {
			p.GamesRemainingWeek = remaining[p.Team]
		}
	}
}
