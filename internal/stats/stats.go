// Package stats aggregates a flattened message table into per-user counts
// and resolves opaque user IDs to display names for presentation.
package stats

import (
	"sort"

	"github.com/hgebre/slackstats/internal/extract"
	"github.com/hgebre/slackstats/internal/slack"
)

// Counts maps a user ID (or, after resolution, a display name) to a count.
type Counts map[string]int

// Report holds the four independent per-user aggregations over a table.
type Report struct {
	Messages Counts // messages sent, by sender
	Replies  Counts // reply occurrences, by replying user
	Mentions Counts // mentions received, by mentioned user
	Links    Counts // links posted, summed by sender
}

// Aggregate computes all four groupings in one pass over the table.
// Reply and mention tallies only consider rows whose lists are non-nil;
// link counts are summed per sender, so every sender gets an entry even
// when all their messages carried zero links.
func Aggregate(t *extract.Table) Report {
	r := Report{
		Messages: Counts{},
		Replies:  Counts{},
		Mentions: Counts{},
		Links:    Counts{},
	}
	for _, row := range t.Rows {
		r.Messages[row.User]++
		for _, reply := range row.Replies {
			r.Replies[reply.User]++
		}
		for _, user := range row.Mentions {
			r.Mentions[user]++
		}
		r.Links[row.User] += row.LinkCount
	}
	return r
}

// NamedCount is one leaderboard entry after directory resolution.
type NamedCount struct {
	Name  string
	Count int
}

// ResolveNames re-keys a count mapping by display name via the directory,
// silently dropping IDs the directory does not know, and returns the entries
// sorted descending by count (ascending by name on ties, for determinism).
func ResolveNames(counts Counts, dir slack.Directory) []NamedCount {
	resolved := make([]NamedCount, 0, len(counts))
	for id, n := range counts {
		name, ok := dir[id]
		if !ok {
			continue
		}
		resolved = append(resolved, NamedCount{Name: name, Count: n})
	}
	sort.Slice(resolved, func(i, j int) bool {
		if resolved[i].Count != resolved[j].Count {
			return resolved[i].Count > resolved[j].Count
		}
		return resolved[i].Name < resolved[j].Name
	})
	return resolved
}

// Top returns the first n entries, or all of them when n <= 0 or exceeds
// the slice.
func Top(entries []NamedCount, n int) []NamedCount {
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[:n]
}
