package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"HoopsSentinel/internal/collector"
	"HoopsSentinel/internal/engine"
	"HoopsSentinel/internal/model"
	"HoopsSentinel/internal/notifier"
	"HoopsSentinel/internal/recorder"
	"HoopsSentinel/internal/untouchables"
)

// Scheduler manages the daily report cron task.
type Scheduler struct {
	Cron             *cron.Cron
	Collector        *collector.Collector
	Engine           *engine.Engine
	Notifier         notifier.Notifier
	Recorder         recorder.Recorder
	UntouchablesFile string
	Ctx              context.Context

	// now allows tests to pin the clock.
	now func() time.Time
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, eng *engine.Engine, n notifier.Notifier, rec recorder.Recorder, untouchablesFile string) *Scheduler {
	return &Scheduler{
		Cron:             cron.New(cron.WithSeconds()),
		Collector:        col,
		Engine:           eng,
		Notifier:         n,
		Recorder:         rec,
		UntouchablesFile: untouchablesFile,
		Ctx:              ctx,
		now:              time.Now,
	}
}

// RegisterAll registers the daily report task and the weekly
// untouchables-refresh reminder.
func (s *Scheduler) RegisterAll(dailyCron, weeklyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyTask); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	if _, err := s.Cron.AddFunc(weeklyCron, s.weeklyUntouchablesReminder); err != nil {
		return fmt.Errorf("register weekly reminder: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunDailyNow executes the daily task immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunDailyNow() {
	s.dailyTask()
}

func (s *Scheduler) dailyTask() {
	log.Println("[INFO] running daily report task")
	report, err := s.BuildReport(s.Ctx)
	if err != nil {
		log.Printf("[ERROR] daily report: %v", err)
		return
	}

	html := notifier.FormatDailyReport(report)
	if err := s.Notifier.SendWithRetry(s.Ctx, notifier.Subject(report), html, 3); err != nil {
		log.Printf("[ERROR] send report: %v", err)
	}

	if err := s.Recorder.RecordRun(&recorder.RunRecord{Report: report}); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}
}

// weeklyUntouchablesReminder nudges the owner when the protected-player list
// is empty at the start of a fantasy week. The list is maintained by hand;
// an empty one usually means the refresh was forgotten.
func (s *Scheduler) weeklyUntouchablesReminder() {
	unt := untouchables.Load(s.UntouchablesFile)
	if len(unt) > 0 {
		log.Printf("[INFO] weekly check: %d untouchables on file", len(unt))
		return
	}
	log.Printf("[WARN] untouchables list is empty, sending refresh reminder")
	body := fmt.Sprintf("<p>The untouchables list at <code>%s</code> is empty. "+
		"Refresh it before tonight's report or every player is fair game for drop suggestions.</p>",
		s.UntouchablesFile)
	if err := s.Notifier.SendWithRetry(s.Ctx, "Untouchables list needs a refresh", body, 3); err != nil {
		log.Printf("[ERROR] send reminder: %v", err)
	}
}

// BuildReport runs the full pipeline once: collect, allocate, advise, scan.
func (s *Scheduler) BuildReport(ctx context.Context) (*model.Report, error) {
	snap, err := s.Collector.Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("collect: %w", err)
	}

	unt := untouchables.Load(s.UntouchablesFile)

	lineup := s.Engine.Allocate(snap.Roster, unt, snap.TeamsToday)
	shape := s.Engine.CheckBenchShape(lineup.Bench)
	ilFlags := s.Engine.CheckILFlags(snap.Roster, lineup.Bench, unt)
	activeUpgrades := s.Engine.ScanActiveUpgrades(snap.FreeAgents, lineup.Active, unt)
	benchUpgrades := s.Engine.ScanBenchUpgrades(snap.FreeAgents, lineup.Bench, unt)
	alerts := s.Engine.BuildAlerts(&lineup, &ilFlags, &shape)

	today := s.now()
	report := &model.Report{
		Date:                today,
		IncludeUntouchables: today.Weekday() == time.Monday,
		Untouchables:        unt,
		Lineup:              lineup,
		BenchShape:          shape,
		ILFlags:             ilFlags,
		ActiveUpgrades:      activeUpgrades,
		BenchUpgrades:       benchUpgrades,
		Alerts:              alerts,
	}
	log.Printf("[INFO] report built: %d active, %d bench, %d IL, %d alerts",
		len(lineup.Active), len(lineup.Bench), len(lineup.OnIL), len(alerts))
	return report, nil
}
