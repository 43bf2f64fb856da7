package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const memoryDSN = ":memory:"

type seedPopularPlace struct {
	Name string
	Lat  float64
	Lon  float64
}

type seedPlace struct {
	Key       string
	Lat       float64
	Lon       float64
	PlaceName string
	Country   string
	Region    string
	City      string
}

// Shown on the frontend landing map, in display order.
var popularPlaces = []seedPopularPlace{
	{"Monterey Bay", 36.7783, -119.4179},
	{"Great Barrier Reef", -18.2871, 147.6992},
	{"Maldives", 3.2028, 73.2207},
	{"Hawaiian Islands", 19.8968, -155.5828},
	{"Mediterranean Sea", 35.0, 18.0},
	{"Caribbean Sea", 15.0, -75.0},
	{"Red Sea", 22.0, 38.0},
	{"Bermuda Triangle", 25.0, -71.0},
	{"Mariana Trench", 11.35, 142.2},
	{"Antarctic Ocean", -60.0, 0.0},
}

// Keys are lower-case lookup names.
var geocodePlaces = []seedPlace{
	{"miami beach", 25.7907, -80.1300, "Miami Beach, FL, USA", "USA", "Florida", "Miami Beach"},
	{"monterey bay", 36.7783, -119.4179, "Monterey Bay, CA, USA", "USA", "California", "Monterey"},
	{"great barrier reef", -18.2871, 147.6992, "Great Barrier Reef, Australia", "Australia", "Queensland", "Cairns"},
	{"maldives", 3.2028, 73.2207, "Maldives", "Maldives", "Indian Ocean", "Malé"},
	{"hawaii", 19.8968, -155.5828, "Hawaiian Islands, USA", "USA", "Hawaii", "Honolulu"},
	{"mediterranean", 35.0, 18.0, "Mediterranean Sea", "International Waters", "Mediterranean", "Mediterranean Sea"},
	{"caribbean", 15.0, -75.0, "Caribbean Sea", "International Waters", "Caribbean", "Caribbean Sea"},
	{"red sea", 22.0, 38.0, "Red Sea", "International Waters", "Red Sea", "Red Sea"},
	{"bermuda", 25.0, -71.0, "Bermuda Triangle", "International Waters", "North Atlantic", "Bermuda Triangle"},
	{"mariana trench", 11.35, 142.2, "Mariana Trench", "International Waters", "Pacific Ocean", "Mariana Trench"},
}

const schema = `
	CREATE TABLE IF NOT EXISTS popular_place (
		rank INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		lat  REAL NOT NULL,
		lon  REAL NOT NULL
	);
	CREATE TABLE IF NOT EXISTS place (
		place_key  TEXT PRIMARY KEY,
		lat        REAL NOT NULL,
		lon        REAL NOT NULL,
		place_name TEXT NOT NULL,
		country    TEXT NOT NULL,
		region     TEXT NOT NULL,
		city       TEXT NOT NULL
	);
`

// OpenPlaceDB opens the gazetteer and seeds it. An empty dsn gives an
// in-memory database, which only lives as long as its single connection.
func OpenPlaceDB(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		dsn = memoryDSN
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open place db: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := seedPlaceDB(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func seedPlaceDB(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create place schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	popStm, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO popular_place (rank, name, lat, lon) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer popStm.Close()

	for i, p := range popularPlaces {
		if _, err := popStm.ExecContext(ctx, i+1, p.Name, p.Lat, p.Lon); err != nil {
			return fmt.Errorf("seed popular place %q: %w", p.Name, err)
		}
	}

	placeStm, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO place (place_key, lat, lon, place_name, country, region, city)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer placeStm.Close()

	for _, p := range geocodePlaces {
		if _, err := placeStm.ExecContext(ctx, p.Key, p.Lat, p.Lon, p.PlaceName, p.Country, p.Region, p.City); err != nil {
			return fmt.Errorf("seed place %q: %w", p.Key, err)
		}
	}

	return tx.Commit()
}
