// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"sort"
	"strconv"
	"strings"

	"github.com/danielhkuo/courtcaptain/models"
)

type bucketKey struct {
	day    models.Day
	option string
}

// Compute aggregates votes into ranked buckets for the given voting mode.
// Votes are bucketed in the order given, which decides the first-seen
// display text and the final tie-break.
func Compute(votes []models.Vote, mode string) models.Tally {
	voters := make(map[string]struct{})
	index := make(map[bucketKey]int)
	var buckets []models.Bucket

	for _, v := range votes {
		key := models.NormalizeName(v.Name)
		if key == "" {
			continue
		}
		voters[key] = struct{}{}

		option := strings.TrimSpace(v.Option)
		bk, bucket, ok := bucketFor(v.Day, option, mode)
		if !ok {
			// Counted as a voter, but contributes no bucket
			continue
		}

		if i, seen := index[bk]; seen {
			buckets[i].Count++
			buckets[i].Voters = append(buckets[i].Voters, strings.TrimSpace(v.Name))
			continue
		}

		bucket.Count = 1
		bucket.Voters = []string{strings.TrimSpace(v.Name)}
		index[bk] = len(buckets)
		buckets = append(buckets, bucket)
	}

	Rank(buckets)

	result := models.Tally{
		TotalVoters: len(voters),
		Buckets:     buckets,
		QuorumMet:   len(voters) >= models.QuorumThreshold,
	}
	if len(buckets) > 0 {
		top := buckets[0]
		result.Top = &top
	}
	if result.Buckets == nil {
		result.Buckets = []models.Bucket{}
	}

	return result
}

// bucketFor builds the aggregation key and an empty bucket for one vote.
func bucketFor(day models.Day, option, mode string) (bucketKey, models.Bucket, bool) {
	if !models.ValidDay(string(day)) {
		return bucketKey{}, models.Bucket{}, false
	}

	if mode == models.ModeCourt {
		if !models.ValidCourt(option) {
			return bucketKey{}, models.Bucket{}, false
		}
		return bucketKey{day: day, option: option},
			models.Bucket{Day: day, Option: option, Court: option},
			true
	}

	w, ok := ParseWindow(option)
	if !ok {
		return bucketKey{}, models.Bucket{}, false
	}
	win := w
	return bucketKey{day: day, option: windowKey(w)},
		models.Bucket{Day: day, Option: option, Window: &win},
		true
}

func windowKey(w models.Window) string {
	return strconv.Itoa(w.Start) + "-" + strconv.Itoa(w.End)
}

// Rank sorts buckets in place by the tie-break order. Buckets that compare
// equal keep their input order.
func Rank(buckets []models.Bucket) {
	sort.SliceStable(buckets, func(i, j int) bool {
		a, b := buckets[i], buckets[j]

		// 1. Higher vote count wins
		if a.Count != b.Count {
			return a.Count > b.Count
		}

		// 2. Lower court preference rank wins
		ra, rb := bucketPreference(a), bucketPreference(b)
		if ra != rb {
			return ra < rb
		}

		// 3. Saturday before Sunday
		return dayRank(a.Day) < dayRank(b.Day)
	})
}

// bucketPreference is zero for time buckets, which carry no court.
func bucketPreference(b models.Bucket) int {
	if b.Court == "" {
		return 0
	}
	return models.PreferenceRank(b.Court)
}

func dayRank(d models.Day) int {
	if d == models.Saturday {
		return 0
	}
	return 1
}
