// Package ledger keeps a SQLite record of generation runs so a seed can be
// replayed and its per-player digests compared.
package ledger

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/Miro-n1/archipelago-manuals/internal/multiworld"
)

var ErrRunNotFound = errors.New("run not found")

type Ledger struct {
	conn *sqlx.DB
}

// RunRecord is one recorded generation.
type RunRecord struct {
	RunID     string `db:"run_id"`
	Seed      int64  `db:"seed"`
	StartedAt int64  `db:"started_at"`
	Players   int    `db:"players"`
}

func (r RunRecord) Started() time.Time { return time.Unix(0, r.StartedAt) }

// Entry is one player's row of a run. Settings holds the resolved option
// values as JSON. Digest is empty when curation failed, in which case
// Failure holds the error text.
type Entry struct {
	RunID    string `db:"run_id"`
	Slot     int    `db:"slot"`
	Name     string `db:"name"`
	Game     string `db:"game"`
	Settings string `db:"settings_json"`
	Digest   string `db:"digest"`
	Failure  string `db:"failure"`
}

// Open opens or creates a ledger database at path.
func Open(path string) (*Ledger, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	l := &Ledger{conn: conn}
	if err := l.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return l, nil
}

func (l *Ledger) Close() error {
	return l.conn.Close()
}

func (l *Ledger) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		run_id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		started_at INTEGER NOT NULL,
		players INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS curations (
		run_id TEXT NOT NULL REFERENCES runs(run_id),
		slot INTEGER NOT NULL,
		name TEXT NOT NULL,
		game TEXT NOT NULL,
		settings_json TEXT NOT NULL,
		digest TEXT NOT NULL,
		failure TEXT NOT NULL,
		PRIMARY KEY (run_id, slot)
	);

	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
	`
	_, err := l.conn.Exec(schema)
	return err
}

// Record stores a report and every outcome in it.
func (l *Ledger) Record(r *multiworld.Report) error {
	tx, err := l.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	run := RunRecord{
		RunID:     r.RunID.String(),
		Seed:      r.Seed,
		StartedAt: r.Started.UnixNano(),
		Players:   len(r.Outcomes),
	}
	if _, err := tx.NamedExec(`INSERT INTO runs (run_id, seed, started_at, players)
		VALUES (:run_id, :seed, :started_at, :players)`, run); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, o := range r.Outcomes {
		settings, err := json.Marshal(o.Values)
		if err != nil {
			return fmt.Errorf("slot %d settings: %w", o.Player.Slot, err)
		}
		e := Entry{
			RunID:    run.RunID,
			Slot:     o.Player.Slot,
			Name:     o.Player.Name,
			Game:     o.Player.Game,
			Settings: string(settings),
		}
		if o.Err != nil {
			e.Failure = o.Err.Error()
		} else {
			e.Digest = o.Result.Snapshot.Digest()
		}
		if _, err := tx.NamedExec(`INSERT INTO curations (run_id, slot, name, game, settings_json, digest, failure)
			VALUES (:run_id, :slot, :name, :game, :settings_json, :digest, :failure)`, e); err != nil {
			return fmt.Errorf("insert slot %d: %w", e.Slot, err)
		}
	}
	return tx.Commit()
}

// Run loads a recorded run and its entries ordered by slot.
func (l *Ledger) Run(id uuid.UUID) (RunRecord, []Entry, error) {
	var run RunRecord
	err := l.conn.Get(&run, "SELECT run_id, seed, started_at, players FROM runs WHERE run_id = ?", id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return RunRecord{}, nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return RunRecord{}, nil, err
	}
	var entries []Entry
	if err := l.conn.Select(&entries, `SELECT run_id, slot, name, game, settings_json, digest, failure
		FROM curations WHERE run_id = ? ORDER BY slot`, run.RunID); err != nil {
		return RunRecord{}, nil, err
	}
	return run, entries, nil
}

// Recent lists the latest runs, newest first.
func (l *Ledger) Recent(limit int) ([]RunRecord, error) {
	var runs []RunRecord
	err := l.conn.Select(&runs, `SELECT run_id, seed, started_at, players
		FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	return runs, err
}

// Players rebuilds the player list of recorded entries for a replay.
func Players(entries []Entry) ([]multiworld.Player, error) {
	out := make([]multiworld.Player, 0, len(entries))
	for _, e := range entries {
		var values map[string]int
		if err := json.Unmarshal([]byte(e.Settings), &values); err != nil {
			return nil, fmt.Errorf("slot %d settings: %w", e.Slot, err)
		}
		var settings map[string]any
		if values != nil {
			settings = make(map[string]any, len(values))
			for k, v := range values {
				settings[k] = v
			}
		}
		out = append(out, multiworld.Player{Slot: e.Slot, Name: e.Name, Game: e.Game, Settings: settings})
	}
	return out, nil
}

// Mismatch is a slot whose replayed digest differs from the recorded one.
type Mismatch struct {
	Slot int
	Want string
	Got  string
}

// Verify compares a replay against recorded entries. Slots that failed both
// times match; a slot missing from the replay is a mismatch.
func Verify(entries []Entry, replay *multiworld.Report) []Mismatch {
	got := make(map[int]string, len(replay.Outcomes))
	for _, o := range replay.Outcomes {
		if o.Err == nil {
			got[o.Player.Slot] = o.Result.Snapshot.Digest()
		} else {
			got[o.Player.Slot] = ""
		}
	}
	var out []Mismatch
	for _, e := range entries {
		g, ok := got[e.Slot]
		if !ok || g != e.Digest {
			out = append(out, Mismatch{Slot: e.Slot, Want: e.Digest, Got: g})
		}
	}
	return out
}
