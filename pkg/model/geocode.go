// Model for the static place gazetteer

package model

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

var ErrPlaceNotFound = errors.New("place not found")

type PopularPlace struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type Place struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	PlaceName string  `json:"place_name"`
	Country   string  `json:"country"`
	Region    string  `json:"region"`
	City      string  `json:"city"`
}

// GetPopularPlaces lists the landing map locations in display order.
func GetPopularPlaces(ctx context.Context, db *sql.DB) ([]PopularPlace, error) {

	qstring := `SELECT name, lat, lon FROM popular_place ORDER BY rank;`

	stm, err := db.PrepareContext(ctx, qstring)
	if err != nil {
		return nil, err
	}
	defer stm.Close()

	rows, err := stm.QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]PopularPlace, 0, 10)

	for rows.Next() {
		var p PopularPlace
		if err := rows.Scan(&p.Name, &p.Lat, &p.Lon); err != nil {
			return nil, err
		}
		results = append(results, p)
	}

	return results, rows.Err()
}

// Geocode looks a place up by name, ignoring case and surrounding spaces.
func Geocode(ctx context.Context, db *sql.DB, name string) (*Place, error) {

	key := strings.ToLower(strings.TrimSpace(name))

	qstring := `SELECT lat, lon, place_name, country, region, city FROM place WHERE place_key = ?;`

	stm, err := db.PrepareContext(ctx, qstring)
	if err != nil {
		return nil, err
	}
	defer stm.Close()

	var p Place
	err = stm.QueryRowContext(ctx, key).Scan(&p.Latitude, &p.Longitude, &p.PlaceName, &p.Country, &p.Region, &p.City)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlaceNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}
