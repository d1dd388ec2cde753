package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/twiced-technology-gmbh/choremate/internal/chore"
	"github.com/twiced-technology-gmbh/choremate/internal/forecast"
)

// pragmas are applied to every connection through the DSN.
const pragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS chores (
		chore_id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT UNIQUE NOT NULL,
		created INTEGER NOT NULL DEFAULT 0,
		first_completion INTEGER NOT NULL DEFAULT 0,
		last_completion INTEGER NOT NULL DEFAULT 0,
		mean_interval INTEGER NOT NULL DEFAULT 0,
		mad_less INTEGER NOT NULL DEFAULT 0,
		mad_more INTEGER NOT NULL DEFAULT 0,
		next_due INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS intervals (
		interval_id INTEGER PRIMARY KEY AUTOINCREMENT,
		chore_id INTEGER NOT NULL,
		duration INTEGER NOT NULL,
		FOREIGN KEY (chore_id) REFERENCES chores(chore_id) ON DELETE CASCADE
	)`,
	"CREATE INDEX IF NOT EXISTS idx_intervals_chore ON intervals(chore_id)",
}

const choreColumns = `chore_id, name, created, first_completion, last_completion,
	mean_interval, mad_less, mad_more, next_due,
	(SELECT COUNT(*) FROM intervals WHERE intervals.chore_id = chores.chore_id)`

// SQLite is a Store backed by a single SQLite file.
type SQLite struct {
	path string
	db   *sql.DB
}

var _ Store = (*SQLite)(nil)

// Open opens (creating if needed) the database at path and ensures the schema.
func Open(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil { //nolint:mnd // directory permissions
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?"+pragmas)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// One connection keeps per-connection pragmas and write ordering simple.
	db.SetMaxOpenConns(1)

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("creating schema: %w", err)
		}
	}
	return &SQLite{path: path, db: db}, nil
}

// Path returns the database file path.
func (s *SQLite) Path() string { return s.path }

// Close implements Store.
func (s *SQLite) Close() error { return s.db.Close() }

// CreateChore implements Store.
func (s *SQLite) CreateChore(name string, created time.Time) (int64, error) {
	res, err := s.db.Exec("INSERT INTO chores (name, created) VALUES (?, ?)", name, created.Unix())
	if err != nil {
		if isUnique(err) {
			return 0, chore.DuplicateName(name)
		}
		return 0, fmt.Errorf("inserting chore: %w", err)
	}
	return res.LastInsertId()
}

// DeleteChore implements Store.
func (s *SQLite) DeleteChore(id int64) error {
	res, err := s.db.Exec("DELETE FROM chores WHERE chore_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting chore: %w", err)
	}
	return affected(res, chore.NotFound(id))
}

// RenameChore implements Store.
func (s *SQLite) RenameChore(id int64, name string) error {
	res, err := s.db.Exec("UPDATE chores SET name = ? WHERE chore_id = ?", name, id)
	if err != nil {
		if isUnique(err) {
			return chore.DuplicateName(name)
		}
		return fmt.Errorf("renaming chore: %w", err)
	}
	return affected(res, chore.NotFound(id))
}

// GetChore implements Store.
func (s *SQLite) GetChore(id int64) (*chore.Chore, error) {
	row := s.db.QueryRow("SELECT "+choreColumns+" FROM chores WHERE chore_id = ?", id)
	c, err := scanChore(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, chore.NotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("reading chore: %w", err)
	}
	return c, nil
}

// ListChores implements Store.
func (s *SQLite) ListChores() ([]*chore.Chore, error) {
	rows, err := s.db.Query("SELECT " + choreColumns +
		" FROM chores ORDER BY next_due - mad_less, next_due, name, chore_id")
	if err != nil {
		return nil, fmt.Errorf("listing chores: %w", err)
	}
	defer rows.Close()

	var chores []*chore.Chore
	for rows.Next() {
		c, err := scanChore(rows)
		if err != nil {
			return nil, fmt.Errorf("reading chore: %w", err)
		}
		chores = append(chores, c)
	}
	return chores, rows.Err()
}

// AppendInterval implements Store.
func (s *SQLite) AppendInterval(choreID, seconds int64) (int64, error) {
	if err := s.requireChore(choreID); err != nil {
		return 0, err
	}
	res, err := s.db.Exec("INSERT INTO intervals (chore_id, duration) VALUES (?, ?)", choreID, seconds)
	if err != nil {
		return 0, fmt.Errorf("inserting interval: %w", err)
	}
	return res.LastInsertId()
}

// GetInterval implements Store.
func (s *SQLite) GetInterval(id int64) (*chore.Interval, error) {
	var iv chore.Interval
	err := s.db.QueryRow("SELECT interval_id, chore_id, duration FROM intervals WHERE interval_id = ?", id).
		Scan(&iv.ID, &iv.ChoreID, &iv.Duration)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, chore.IntervalNotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("reading interval: %w", err)
	}
	return &iv, nil
}

// ListIntervals implements Store. A missing chore is a ChoreNotFound error
// rather than an empty list.
func (s *SQLite) ListIntervals(choreID int64) ([]chore.Interval, error) {
	if err := s.requireChore(choreID); err != nil {
		return nil, err
	}
	rows, err := s.db.Query("SELECT interval_id, chore_id, duration FROM intervals"+
		" WHERE chore_id = ? ORDER BY interval_id DESC", choreID)
	if err != nil {
		return nil, fmt.Errorf("listing intervals: %w", err)
	}
	defer rows.Close()

	var out []chore.Interval
	for rows.Next() {
		var iv chore.Interval
		if err := rows.Scan(&iv.ID, &iv.ChoreID, &iv.Duration); err != nil {
			return nil, fmt.Errorf("reading interval: %w", err)
		}
		out = append(out, iv)
	}
	return out, rows.Err()
}

// UpdateIntervalDuration implements Store.
func (s *SQLite) UpdateIntervalDuration(id, seconds int64) error {
	res, err := s.db.Exec("UPDATE intervals SET duration = ? WHERE interval_id = ?", seconds, id)
	if err != nil {
		return fmt.Errorf("updating interval: %w", err)
	}
	return affected(res, chore.IntervalNotFound(id))
}

// DeleteInterval implements Store.
func (s *SQLite) DeleteInterval(id int64) error {
	res, err := s.db.Exec("DELETE FROM intervals WHERE interval_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting interval: %w", err)
	}
	return affected(res, chore.IntervalNotFound(id))
}

// SetDerivedFields implements Store.
func (s *SQLite) SetDerivedFields(id int64, f forecast.Forecast) error {
	res, err := s.db.Exec(`UPDATE chores
		SET mean_interval = ?, mad_less = ?, mad_more = ?, next_due = ?
		WHERE chore_id = ?`, f.MeanInterval, f.MadLess, f.MadMore, f.NextDue, id)
	if err != nil {
		return fmt.Errorf("updating forecast: %w", err)
	}
	return affected(res, chore.NotFound(id))
}

// SetLastCompletion implements Store.
func (s *SQLite) SetLastCompletion(id int64, t time.Time) error {
	return s.setTime(id, "last_completion", t)
}

// SetFirstCompletion implements Store.
func (s *SQLite) SetFirstCompletion(id int64, t time.Time) error {
	return s.setTime(id, "first_completion", t)
}

// Reset implements Store.
func (s *SQLite) Reset() error {
	// Intervals go with their chores through the cascade.
	if _, err := s.db.Exec("DELETE FROM chores"); err != nil {
		return fmt.Errorf("clearing chores: %w", err)
	}
	return nil
}

func (s *SQLite) setTime(id int64, column string, t time.Time) error {
	res, err := s.db.Exec("UPDATE chores SET "+column+" = ? WHERE chore_id = ?", t.Unix(), id)
	if err != nil {
		return fmt.Errorf("updating %s: %w", column, err)
	}
	return affected(res, chore.NotFound(id))
}

func (s *SQLite) requireChore(id int64) error {
	var one int
	err := s.db.QueryRow("SELECT 1 FROM chores WHERE chore_id = ?", id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return chore.NotFound(id)
	}
	if err != nil {
		return fmt.Errorf("reading chore: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanChore(row scanner) (*chore.Chore, error) {
	var (
		c                        chore.Chore
		created, first, last, nx int64
	)
	err := row.Scan(&c.ID, &c.Name, &created, &first, &last,
		&c.MeanInterval, &c.MadLess, &c.MadMore, &nx, &c.NumIntervals)
	if err != nil {
		return nil, err
	}
	c.Created = time.Unix(created, 0)
	c.FirstCompletion = chore.FromUnix(first)
	c.LastCompletion = chore.FromUnix(last)
	c.NextDue = chore.FromUnix(nx)
	return &c, nil
}

func affected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

func isUnique(err error) bool {
	var se *sqlite.Error
	return errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}
