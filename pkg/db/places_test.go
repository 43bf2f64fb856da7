package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenPlaceDBInMemory(t *testing.T) {
	ctx := context.Background()
	placeDB, err := OpenPlaceDB(ctx, "")
	require.NoError(t, err)
	defer placeDB.Close()

	var popular, places int
	require.NoError(t, placeDB.QueryRowContext(ctx, `SELECT count(*) FROM popular_place`).Scan(&popular))
	require.NoError(t, placeDB.QueryRowContext(ctx, `SELECT count(*) FROM place`).Scan(&places))

	assert.Equal(t, len(popularPlaces), popular)
	assert.Equal(t, len(geocodePlaces), places)
}

func TestOpenPlaceDBSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "places.db")

	first, err := OpenPlaceDB(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := OpenPlaceDB(ctx, dsn)
	require.NoError(t, err)
	defer second.Close()

	var places int
	require.NoError(t, second.QueryRowContext(ctx, `SELECT count(*) FROM place`).Scan(&places))
	assert.Equal(t, len(geocodePlaces), places)

	var city string
	require.NoError(t, second.QueryRowContext(ctx,
		`SELECT city FROM place WHERE place_key = ?`, "maldives").Scan(&city))
	assert.Equal(t, "Malé", city)
}
