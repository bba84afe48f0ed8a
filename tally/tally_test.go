// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/courtcaptain/models"
)

func vote(name string, day models.Day, option string) models.Vote {
	return models.Vote{Name: name, Day: day, Option: option}
}

func TestComputeEmpty(t *testing.T) {
	for _, mode := range []string{models.ModeTime, models.ModeCourt} {
		t.Run(mode, func(t *testing.T) {
			result := Compute(nil, mode)
			assert.Equal(t, 0, result.TotalVoters)
			assert.Nil(t, result.Top)
			assert.False(t, result.QuorumMet)
			assert.Empty(t, result.Buckets)
		})
	}
}

func TestComputeTimeMode(t *testing.T) {
	votes := []models.Vote{
		vote("Alice", models.Sunday, "9-10am"),
		vote("Bob", models.Sunday, "9:00-10:00am"),
		vote("Carol", models.Saturday, "6-7pm"),
		vote("Dan", models.Saturday, "whenever"),
	}

	result := Compute(votes, models.ModeTime)

	assert.Equal(t, 4, result.TotalVoters)
	assert.True(t, result.QuorumMet)
	require.Len(t, result.Buckets, 2)
	require.NotNil(t, result.Top)

	// Same window under different text shares one bucket, first text kept
	assert.Equal(t, models.Sunday, result.Top.Day)
	assert.Equal(t, "9-10am", result.Top.Option)
	assert.Equal(t, 2, result.Top.Count)
	assert.Equal(t, []string{"Alice", "Bob"}, result.Top.Voters)
	require.NotNil(t, result.Top.Window)
	assert.Equal(t, models.Window{Start: 540, End: 600}, *result.Top.Window)

	assert.Equal(t, models.Saturday, result.Buckets[1].Day)
	assert.Equal(t, 1, result.Buckets[1].Count)
}

func TestComputeUnparseableOnly(t *testing.T) {
	result := Compute([]models.Vote{vote("Alice", models.Saturday, "whenever")}, models.ModeTime)

	assert.Equal(t, 1, result.TotalVoters)
	assert.Nil(t, result.Top)
	assert.Empty(t, result.Buckets)
}

func TestComputeTimeModeSaturdayWinsTie(t *testing.T) {
	votes := []models.Vote{
		vote("Alice", models.Sunday, "9am"),
		vote("Bob", models.Saturday, "9am"),
	}

	result := Compute(votes, models.ModeTime)

	require.NotNil(t, result.Top)
	assert.Equal(t, models.Saturday, result.Top.Day)
}

func TestComputeTimeModeFirstSeenWinsFullTie(t *testing.T) {
	votes := []models.Vote{
		vote("Alice", models.Saturday, "6pm"),
		vote("Bob", models.Saturday, "9am"),
	}

	result := Compute(votes, models.ModeTime)

	require.NotNil(t, result.Top)
	assert.Equal(t, "6pm", result.Top.Option)
}

func TestComputeCourtMode(t *testing.T) {
	tests := []struct {
		name      string
		votes     []models.Vote
		wantDay   models.Day
		wantCourt string
	}{
		{
			name: "higher count beats preference",
			votes: []models.Vote{
				vote("a", models.Sunday, "Outdoor B"),
				vote("b", models.Sunday, "Outdoor B"),
				vote("c", models.Saturday, "Court 1"),
			},
			wantDay:   models.Sunday,
			wantCourt: "Outdoor B",
		},
		{
			name: "preferred beats non-preferred on equal count",
			votes: []models.Vote{
				vote("a", models.Saturday, "Court 5"),
				vote("b", models.Sunday, "Court 4"),
			},
			wantDay:   models.Sunday,
			wantCourt: "Court 4",
		},
		{
			name: "declaration order within preferred tier",
			votes: []models.Vote{
				vote("a", models.Saturday, "Court 3"),
				vote("b", models.Saturday, "Court 2"),
			},
			wantDay:   models.Saturday,
			wantCourt: "Court 2",
		},
		{
			name: "declaration order within other tier",
			votes: []models.Vote{
				vote("a", models.Saturday, "Other"),
				vote("b", models.Saturday, "Court 6"),
			},
			wantDay:   models.Saturday,
			wantCourt: "Court 6",
		},
		{
			name: "saturday beats sunday on same court",
			votes: []models.Vote{
				vote("a", models.Sunday, "Court 1"),
				vote("b", models.Saturday, "Court 1"),
			},
			wantDay:   models.Saturday,
			wantCourt: "Court 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Compute(tt.votes, models.ModeCourt)
			require.NotNil(t, result.Top)
			assert.Equal(t, tt.wantDay, result.Top.Day)
			assert.Equal(t, tt.wantCourt, result.Top.Court)
		})
	}
}

func TestComputeCourtModeIgnoresUnknownCourt(t *testing.T) {
	result := Compute([]models.Vote{vote("a", models.Saturday, "Court 99")}, models.ModeCourt)

	assert.Equal(t, 1, result.TotalVoters)
	assert.Nil(t, result.Top)
}

func TestTotalVotersNormalizesNames(t *testing.T) {
	votes := []models.Vote{
		vote("Alice", models.Saturday, "9am"),
		vote("  alice ", models.Saturday, "9am"),
		vote("ALICE", models.Sunday, "9am"),
		vote("Bob", models.Saturday, "9am"),
	}

	result := Compute(votes, models.ModeTime)

	assert.Equal(t, 2, result.TotalVoters)
	assert.False(t, result.QuorumMet)
}

func TestQuorumThreshold(t *testing.T) {
	for n := 0; n <= 5; n++ {
		var votes []models.Vote
		for i := 0; i < n; i++ {
			votes = append(votes, vote(fmt.Sprintf("voter%d", i), models.Saturday, "9am"))
		}

		result := Compute(votes, models.ModeTime)
		assert.Equal(t, n >= 4, result.QuorumMet, "voters=%d", n)
	}
}

func TestRankIsCountFirst(t *testing.T) {
	buckets := []models.Bucket{
		{Day: models.Saturday, Court: "Court 1", Count: 1},
		{Day: models.Sunday, Court: "Other", Count: 3},
		{Day: models.Saturday, Court: "Court 2", Count: 2},
	}

	Rank(buckets)

	assert.Equal(t, []int{3, 2, 1}, []int{buckets[0].Count, buckets[1].Count, buckets[2].Count})
}
