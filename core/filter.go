package core

import (
	"sort"

	"github.com/hamidzr/recents/model"
	"github.com/sahilm/fuzzy"
)

// FilterEntries fuzzy-matches entries against query and returns the matches
// sorted by score, ties broken by original position. An empty query returns
// the input unchanged.
func FilterEntries(entries []model.RecentEntry, query string) []model.RecentEntry {
	if query == "" {
		return entries
	}
	texts := make([]string, len(entries))
	for i, entry := range entries {
		texts[i] = entry.Text
	}

	matches := fuzzy.Find(query, texts)
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score == matches[j].Score {
			return matches[i].Index < matches[j].Index
		}
		return matches[i].Score > matches[j].Score
	})

	results := make([]model.RecentEntry, 0, len(matches))
	for _, match := range matches {
		results = append(results, entries[match.Index])
	}
	return results
}
