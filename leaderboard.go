package main

import (
	"sort"
	"strings"
)

// LeaderboardEntry is one ranked row. Sample classmates are shipped
// in-memory; only the current user's row is derived from stored data.
type LeaderboardEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Initials string `json:"initials"`
	Score    int    `json:"score"`
	Tests    int    `json:"tests"`
	Avg      int    `json:"avg"`
	Trend    int    `json:"trend"`
}

var sampleClassmates = []LeaderboardEntry{
	{ID: "u1", Name: "Aaron Yusay", Initials: "AY", Score: 2540, Tests: 38, Avg: 89, Trend: 2},
	{ID: "u2", Name: "Aldwyn Reano", Initials: "AR", Score: 2490, Tests: 37, Avg: 88, Trend: 2},
	{ID: "u3", Name: "Miles Edades", Initials: "ME", Score: 2430, Tests: 36, Avg: 87, Trend: 1},
	{ID: "u4", Name: "Daffy Santiago", Initials: "DS", Score: 2380, Tests: 35, Avg: 86, Trend: -1},
	{ID: "u5", Name: "Greg Dela Cruz", Initials: "GD", Score: 2360, Tests: 34, Avg: 85, Trend: 0},
}

// BuildLeaderboard merges the current user's computed row with the
// sample classmates, sorted by score descending.
func BuildLeaderboard(repo *QuizRepository, current User) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(sampleClassmates)+1)
	entries = append(entries, selfEntry(repo, current))
	entries = append(entries, sampleClassmates...)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries
}

// FilterLeaderboard keeps entries whose name contains the query,
// case-insensitively. An empty query keeps everything.
func FilterLeaderboard(entries []LeaderboardEntry, query string) []LeaderboardEntry {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return entries
	}
	out := make([]LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Name), query) {
			out = append(out, e)
		}
	}
	return out
}

// selfEntry crafts the current user's row from their saved quizzes.
// The scoring heuristic mirrors the original dashboard: enough quizzes
// authored nudges the score and average upward.
func selfEntry(repo *QuizRepository, current User) LeaderboardEntry {
	name := current.Username
	if name == "" {
		name = "Guest"
	}

	tests := 0
	for _, q := range repo.LoadAll() {
		if q.Owner == OwnerUser {
			tests++
		}
	}
	if tests == 0 {
		return LeaderboardEntry{ID: "me", Name: name, Initials: initials(name), Score: 2850, Tests: 45, Avg: 95, Trend: 3}
	}
	avg := 80 + tests
	if avg > 98 {
		avg = 98
	}
	score := 2500 + tests*40 + avg*2
	return LeaderboardEntry{ID: "me", Name: name, Initials: initials(name), Score: score, Tests: tests, Avg: avg, Trend: 4}
}

// initials takes up to two uppercase initials from a display name.
func initials(name string) string {
	var out []rune
	for _, part := range strings.Fields(name) {
		r := []rune(part)[0]
		out = append(out, []rune(strings.ToUpper(string(r)))...)
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}
