// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/courtcaptain/models"
	"github.com/danielhkuo/courtcaptain/store"
	"github.com/danielhkuo/courtcaptain/testutil"
)

func TestIngestAvailability(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewIngestHandler(db)

	testutil.SeedAvailability(t, db, models.Saturday, "Court 7", "6:00-7:00")
	testutil.SeedAvailability(t, db, models.Sunday, "Court 1", "8:00-9:00")

	req := testutil.MakeRequest("POST", "/ingest/availability", models.IngestRequest{
		Day: "saturday",
		Courts: map[string][]string{
			"court 1":               {"9:00 AM - 10:00 AM", "9:00 am-10:00 am", "Full"},
			"Indoor Court 5 (Hard)": {"11:00-12:00"},
			"Court 12":              {"1:00-2:00"},
			"Pool":                  {"3:00-4:00"},
		},
	}, nil)
	w := httptest.NewRecorder()
	handler.Availability(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.IngestResponse
	testutil.AssertJSON(t, w, &resp)
	assert.Equal(t, models.Saturday, resp.Day)
	assert.Equal(t, 2, resp.Imported)
	assert.Equal(t, map[string]int{"Court 1": 1, "Court 5": 1}, resp.Courts)
	assert.Equal(t, []string{"Court 12", "Pool"}, resp.Skipped)

	avails := store.NewAvailabilityStore(db)
	sat, err := avails.ListDay(context.Background(), models.Saturday)
	require.NoError(t, err)
	assert.Equal(t, models.AvailabilityMap{
		"Court 1": {"9:00 am-10:00 am"},
		"Court 5": {"11:00-12:00"},
	}, sat, "Saturday is replaced, including Court 7")

	sun, err := avails.ListDay(context.Background(), models.Sunday)
	require.NoError(t, err)
	assert.Equal(t, []string{"8:00-9:00"}, sun["Court 1"], "other days are untouched")
}

func TestIngestAvailabilityErrors(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{"invalid JSON", `{"day":`, http.StatusBadRequest},
		{"missing day", `{"courts":{"Court 1":["9-10"]}}`, http.StatusBadRequest},
		{"missing courts", `{"day":"Saturday"}`, http.StatusBadRequest},
		{"invalid day", `{"day":"Monday","courts":{"Court 1":["9-10"]}}`, http.StatusBadRequest},
		{"no known courts", `{"day":"Saturday","courts":{"Pool":["9-10"],"Gym":["10-11"]}}`, http.StatusUnprocessableEntity},
		{"empty courts", `{"day":"Saturday","courts":{}}`, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testutil.SetupTestDB(t)
			handler := NewIngestHandler(db)
			testutil.SeedAvailability(t, db, models.Saturday, "Court 2", "9:00-10:00")

			req := httptest.NewRequest("POST", "/ingest/availability", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			handler.Availability(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			assert.NotEmpty(t, resp.Message)

			// Rejected imports change nothing
			assert.Equal(t, 1, testutil.CountRows(t, db, "availability"))
		})
	}
}
