package storage

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

type PSQLStorage struct {
	db *sql.DB
}

// Creates a new Postgres Storage using the provided connection string.
//
// If clearDB is true, the database will be cleared on startup. You
// probably only want this for testing.
func NewPSQLStorage(connStr string, clearDB bool) (*PSQLStorage, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	if clearDB {
		_, err = db.Exec(`
DROP TABLE IF EXISTS timetable;
DROP TABLE IF EXISTS departure;
`)
		if err != nil {
			return nil, fmt.Errorf("clearing db: %w", err)
		}
	}

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS timetable (
    route TEXT NOT NULL,
    stop TEXT NOT NULL,
    imported_at TIMESTAMPTZ NOT NULL,
    PRIMARY KEY (route)
);

CREATE TABLE IF NOT EXISTS departure (
    route TEXT NOT NULL,
    seq INTEGER NOT NULL,
    hhmm TEXT NOT NULL,
    PRIMARY KEY (route, seq)
);`)
	if err != nil {
		return nil, fmt.Errorf("creating timetable tables: %w", err)
	}

	return &PSQLStorage{
		db: db,
	}, nil
}

func (s *PSQLStorage) ListRoutes() ([]string, error) {
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

func (s *PSQLStorage) ReadTimetable(route string) (*Timetable, error) {
	tt := &Timetable{Route: route}

	row := s.db.QueryRow(`
SELECT stop, imported_at
FROM timetable
WHERE route = $1`, route)

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
WHERE route = $1
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

func (s *PSQLStorage) WriteTimetable(tt *Timetable) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`DELETE FROM departure WHERE route = $1`, tt.Route)
	if err != nil {
		return fmt.Errorf("clearing departures: %w", err)
	}

	_, err = tx.Exec(`DELETE FROM timetable WHERE route = $1`, tt.Route)
	if err != nil {
		return fmt.Errorf("clearing timetable: %w", err)
	}

	_, err = tx.Exec(`
INSERT INTO timetable (route, stop, imported_at)
VALUES ($1, $2, $3)`,
		tt.Route, tt.Stop, tt.ImportedAt.UTC())
	if err != nil {
		return fmt.Errorf("writing timetable: %w", err)
	}

	stmt, err := tx.Prepare(pq.CopyIn("departure", "route", "seq", "hhmm"))
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for seq, hhmm := range tt.Departures {
		_, err = stmt.Exec(tt.Route, seq, hhmm)
		if err != nil {
			return fmt.Errorf("COPY departure: %w", err)
		}
	}

	_, err = stmt.Exec()
	if err != nil {
		return fmt.Errorf("executing statement: %w", err)
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("committing: %w", err)
	}

	return nil
}

func (s *PSQLStorage) DeleteTimetable(route string) error {
	res, err := s.db.Exec(`DELETE FROM timetable WHERE route = $1`, route)
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

	_, err = s.db.Exec(`DELETE FROM departure WHERE route = $1`, route)
	if err != nil {
		return fmt.Errorf("deleting departures: %w", err)
	}

	return nil
}

func (s *PSQLStorage) Close() error {
	err := s.db.Close()
	if err != nil {
		return fmt.Errorf("failed to close db: %w", err)
	}
	return nil
}
