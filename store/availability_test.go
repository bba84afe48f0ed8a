// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/courtcaptain/models"
	"github.com/danielhkuo/courtcaptain/store"
	"github.com/danielhkuo/courtcaptain/testutil"
)

func TestAvailabilityAddDedupes(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	avail := store.NewAvailabilityStore(conn)
	ctx := context.Background()

	added, err := avail.Add(ctx, models.Saturday, "Court 1", "9:00-10:00")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = avail.Add(ctx, models.Saturday, "Court 1", "9:00-10:00")
	require.NoError(t, err)
	assert.False(t, added)

	// Same slot on another day is a different triple
	added, err = avail.Add(ctx, models.Sunday, "Court 1", "9:00-10:00")
	require.NoError(t, err)
	assert.True(t, added)

	assert.Equal(t, 2, testutil.CountRows(t, conn, "availability"))
}

func TestAvailabilityAddValidation(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	avail := store.NewAvailabilityStore(conn)
	ctx := context.Background()

	_, err := avail.Add(ctx, "Friday", "Court 1", "9am")
	assert.ErrorIs(t, err, store.ErrInvalidDay)

	_, err = avail.Add(ctx, models.Saturday, "Court 12", "9am")
	assert.ErrorIs(t, err, store.ErrInvalidCourt)

	added, err := avail.Add(ctx, models.Saturday, "Court 1", "   ")
	require.NoError(t, err)
	assert.False(t, added)
}

func TestAvailabilityListDaySortsSlots(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	avail := store.NewAvailabilityStore(conn)

	testutil.SeedAvailability(t, conn, models.Saturday, "Court 2", "TBD", "10:00-11:00", "9:00-10:00")
	testutil.SeedAvailability(t, conn, models.Sunday, "Court 3", "8:00-9:00")

	got, err := avail.ListDay(context.Background(), models.Saturday)
	require.NoError(t, err)
	assert.Equal(t, models.AvailabilityMap{
		"Court 2": {"9:00-10:00", "10:00-11:00", "TBD"},
	}, got)
}

func TestAvailabilityReplaceDay(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	avail := store.NewAvailabilityStore(conn)
	ctx := context.Background()

	testutil.SeedAvailability(t, conn, models.Saturday, "Court 1", "7:00-8:00")
	testutil.SeedAvailability(t, conn, models.Sunday, "Court 1", "7:00-8:00")

	n, err := avail.ReplaceDay(ctx, models.Saturday, models.AvailabilityMap{
		"Court 4": {"9:00-10:00", "9:00-10:00", "10:00-11:00"},
		"Other":   {"noon"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	sat, err := avail.ListDay(ctx, models.Saturday)
	require.NoError(t, err)
	assert.Equal(t, models.AvailabilityMap{
		"Court 4": {"9:00-10:00", "10:00-11:00"},
		"Other":   {"noon"},
	}, sat)

	// Other days are untouched
	sun, err := avail.ListDay(ctx, models.Sunday)
	require.NoError(t, err)
	assert.Equal(t, []string{"7:00-8:00"}, sun["Court 1"])
}

func TestAvailabilityReplaceDayRejectsUnknownCourt(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	avail := store.NewAvailabilityStore(conn)
	ctx := context.Background()

	testutil.SeedAvailability(t, conn, models.Saturday, "Court 1", "7:00-8:00")

	_, err := avail.ReplaceDay(ctx, models.Saturday, models.AvailabilityMap{"Court 99": {"9am"}})
	assert.ErrorIs(t, err, store.ErrInvalidCourt)

	_, err = avail.ReplaceDay(ctx, "Monday", models.AvailabilityMap{})
	assert.ErrorIs(t, err, store.ErrInvalidDay)

	// Nothing changed
	assert.Equal(t, 1, testutil.CountRows(t, conn, "availability"))
}

func TestAvailabilityClear(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	avail := store.NewAvailabilityStore(conn)
	ctx := context.Background()

	testutil.SeedAvailability(t, conn, models.Saturday, "Court 1", "7:00-8:00", "8:00-9:00")
	testutil.SeedAvailability(t, conn, models.Sunday, "Court 2", "7:00-8:00")

	n, err := avail.Clear(ctx, models.Saturday)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, 1, testutil.CountRows(t, conn, "availability"))

	n, err = avail.Clear(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, 0, testutil.CountRows(t, conn, "availability"))

	_, err = avail.Clear(ctx, "Tuesday")
	assert.ErrorIs(t, err, store.ErrInvalidDay)
}

func TestSortSlots(t *testing.T) {
	slots := []string{"open", "1pm-2pm", "9:00-10:00", "9:00-9:30"}
	store.SortSlots(slots)
	assert.Equal(t, []string{"9:00-10:00", "9:00-9:30", "1pm-2pm", "open"}, slots)
}
