package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"

	_ "modernc.org/sqlite"

	"HoopsSentinel/internal/model"
)

// SQLiteRecorder persists run history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance while the bot writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			run_date        TEXT NOT NULL,
			timestamp       INTEGER NOT NULL,
			active_count    INTEGER,
			bench_count     INTEGER,
			il_count        INTEGER,
			bench_shape     TEXT,
			bench_shape_met INTEGER,
			alert_count     INTEGER,
			alerts          TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_date ON runs(run_date)`,

		`CREATE TABLE IF NOT EXISTS lineup_entries (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id        INTEGER NOT NULL REFERENCES runs(id),
			player_name   TEXT NOT NULL,
			slot          TEXT NOT NULL,
			is_bench      INTEGER NOT NULL,
			rank_30day    INTEGER,
			rank_14day    INTEGER,
			score         REAL,
			has_game      INTEGER,
			status        TEXT,
			untouchable   INTEGER,
			flag_low_rank INTEGER,
			flag_injured  INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_lineup_run ON lineup_entries(run_id)`,

		`CREATE TABLE IF NOT EXISTS il_flags (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id       INTEGER NOT NULL REFERENCES runs(id),
			player_name  TEXT NOT NULL,
			flag_type    TEXT NOT NULL,
			current_slot TEXT,
			status       TEXT,
			action       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_il_run ON il_flags(run_id)`,

		`CREATE TABLE IF NOT EXISTS waiver_opportunities (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id       INTEGER NOT NULL REFERENCES runs(id),
			scan_type    TEXT NOT NULL,
			fa_name      TEXT NOT NULL,
			fa_rank      INTEGER,
			fa_mpg       REAL,
			replace_name TEXT,
			replace_slot TEXT,
			improvement  REAL,
			weekly_value REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_waiver_run ON waiver_opportunities(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordRun inserts one daily run and its detail rows in a transaction.
func (r *SQLiteRecorder) RecordRun(rec *RunRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rep := rec.Report
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	shapeMet := 0
	if rep.BenchShape.TargetMet {
		shapeMet = 1
	}
	res, err := tx.Exec(`INSERT INTO runs
		(run_date, timestamp, active_count, bench_count, il_count, bench_shape, bench_shape_met, alert_count, alerts)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		rep.Date.Format("2006-01-02"), rep.Date.Unix(),
		len(rep.Lineup.Active), len(rep.Lineup.Bench), len(rep.Lineup.OnIL),
		rep.BenchShape.Summary, shapeMet,
		len(rep.Alerts), strings.Join(rep.Alerts, "\n"),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("run id: %w", err)
	}

	insertEntry := func(e model.LineupEntry, isBench int) error {
		_, err := tx.Exec(`INSERT INTO lineup_entries
			(run_id, player_name, slot, is_bench, rank_30day, rank_14day, score,
			 has_game, status, untouchable, flag_low_rank, flag_injured)
			VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
			runID, e.Name, e.Slot, isBench,
			nullRank(e.Rank30), nullRank(e.Rank14), nullScore(e.Score),
			boolInt(e.HasGameToday), string(e.Status), boolInt(e.Untouchable),
			boolInt(e.FlagLowRank), boolInt(e.FlagInjured),
		)
		return err
	}
	for _, e := range rep.Lineup.Active {
		if err := insertEntry(e, 0); err != nil {
			return fmt.Errorf("insert active entry: %w", err)
		}
	}
	for _, e := range rep.Lineup.Bench {
		if err := insertEntry(e, 1); err != nil {
			return fmt.Errorf("insert bench entry: %w", err)
		}
	}

	for _, m := range rep.ILFlags.MoveToIL {
		if _, err := tx.Exec(`INSERT INTO il_flags
			(run_id, player_name, flag_type, current_slot, status, action)
			VALUES (?,?,?,?,?,?)`,
			runID, m.Name, "move_to_il", m.CurrentSlot, string(m.Status), m.Action,
		); err != nil {
			return fmt.Errorf("insert il move: %w", err)
		}
	}
	for _, a := range rep.ILFlags.ActivateFromIL {
		if _, err := tx.Exec(`INSERT INTO il_flags
			(run_id, player_name, flag_type, current_slot, status, action)
			VALUES (?,?,?,?,?,?)`,
			runID, a.Name, "activate", a.CurrentSlot, string(model.StatusHealthy), a.Action,
		); err != nil {
			return fmt.Errorf("insert il activation: %w", err)
		}
	}

	insertOpp := func(o model.Opportunity, scanType string) error {
		_, err := tx.Exec(`INSERT INTO waiver_opportunities
			(run_id, scan_type, fa_name, fa_rank, fa_mpg, replace_name, replace_slot, improvement, weekly_value)
			VALUES (?,?,?,?,?,?,?,?,?)`,
			runID, scanType, o.Name, nullRank(o.Rank), o.MPG,
			o.ReplaceName, o.ReplaceSlot, o.Improvement, nullScore(o.WeeklyValue),
		)
		return err
	}
	for _, o := range rep.ActiveUpgrades {
		if err := insertOpp(o, "active"); err != nil {
			return fmt.Errorf("insert active opportunity: %w", err)
		}
	}
	for _, o := range rep.BenchUpgrades {
		if err := insertOpp(o, "bench"); err != nil {
			return fmt.Errorf("insert bench opportunity: %w", err)
		}
	}

	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}

func nullRank(rk model.Rank) any {
	if !rk.Known {
		return nil
	}
	return rk.Value
}

func nullScore(s model.Score) any {
	if !s.Known {
		return nil
	}
	return s.Value
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
