package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteConfig struct {
	OnDisk    bool
	Directory string
}

type SQLiteStorage struct {
	SQLiteConfig

	db *sql.DB
}

func NewSQLiteStorage(cfg ...SQLiteConfig) (*SQLiteStorage, error) {
	onDisk := false
	directory := ""
	if len(cfg) > 0 {
		onDisk = cfg[0].OnDisk
		directory = cfg[0].Directory
	}

	sourceName := ":memory:"
	if onDisk {
		sourceName = directory + "/nextbus.db"
	}

	db, err := sql.Open("sqlite3", sourceName)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS timetable (
    route TEXT NOT NULL,
    stop TEXT NOT NULL,
    imported_at TIMESTAMP NOT NULL,
PRIMARY KEY (route)
);

CREATE TABLE IF NOT EXISTS departure (
    route TEXT NOT NULL,
    seq INTEGER NOT NULL,
    hhmm TEXT NOT NULL,
PRIMARY KEY (route, seq)
);`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating timetable tables: %w", err)
	}

	return &SQLiteStorage{
		SQLiteConfig: SQLiteConfig{
			OnDisk:    onDisk,
			Directory: directory,
		},
		db: db,
	}, nil
}

func (s *SQLiteStorage) ListRoutes() ([]string, error) {
	rows, err := s.db.Query(`SELECT route FROM timetable ORDER BY route`)
	if err != nil {
		return nil, fmt.Errorf("listing routes: %w", err)
	}
	defer rows.Close()

	routes := []string{}
	for rows.Next() {
		var route string
		if err := rows.Scan(&route); err != nil {
			return nil, fmt.Errorf("scanning route: %w", err)
		}
		routes = append(routes, route)
	}

	return routes, nil
}

func (s *SQLiteStorage) ReadTimetable(route string) (*Timetable, error) {
	tt := &Timetable{Route: route}

	row := s.db.QueryRow(`
SELECT stop, imported_at
FROM timetable
WHERE route = ?`, route)

	err := row.Scan(&tt.Stop, &tt.ImportedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("reading timetable: %w", err)
	}
	tt.ImportedAt = tt.ImportedAt.UTC()

	rows, err := s.db.Query(`
SELECT hhmm
FROM departure
WHERE route = ?
ORDER BY seq`, route)
	if err != nil {
		return nil, fmt.Errorf("reading departures: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var hhmm string
		if err := rows.Scan(&hhmm); err != nil {
			return nil, fmt.Errorf("scanning departure: %w", err)
		}
		tt.Departures = append(tt.Departures, hhmm)
	}

	return tt, nil
}

func (s *SQLiteStorage) WriteTimetable(tt *Timetable) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`DELETE FROM departure WHERE route = ?`, tt.Route)
	if err != nil {
		return fmt.Errorf("clearing departures: %w", err)
	}

	_, err = tx.Exec(`DELETE FROM timetable WHERE route = ?`, tt.Route)
	if err != nil {
		return fmt.Errorf("clearing timetable: %w", err)
	}

	_, err = tx.Exec(`
INSERT INTO timetable (route, stop, imported_at)
VALUES (?, ?, ?)`,
		tt.Route, tt.Stop, tt.ImportedAt.UTC())
	if err != nil {
		return fmt.Errorf("writing timetable: %w", err)
	}

	for seq, hhmm := range tt.Departures {
		_, err = tx.Exec(`
INSERT INTO departure (route, seq, hhmm)
VALUES (?, ?, ?)`,
			tt.Route, seq, hhmm)
		if err != nil {
			return fmt.Errorf("writing departure: %w", err)
		}
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("committing: %w", err)
	}

	return nil
}

func (s *SQLiteStorage) DeleteTimetable(route string) error {
	res, err := s.db.Exec(`DELETE FROM timetable WHERE route = ?`, route)
	if err != nil {
		return fmt.Errorf("deleting timetable: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting timetable: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	_, err = s.db.Exec(`DELETE FROM departure WHERE route = ?`, route)
	if err != nil {
		return fmt.Errorf("deleting departures: %w", err)
	}

	return nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
