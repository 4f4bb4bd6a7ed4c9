package model

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// RecentEntry is a single remembered search query and the time it was
// recorded.
type RecentEntry struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// NewRecentEntry stamps a query with the current time.
func NewRecentEntry(text string) RecentEntry {
	return RecentEntry{Text: text, Timestamp: time.Now()}
}

// IsValid reports whether the entry is allowed to be persisted.
func (e RecentEntry) IsValid() bool {
	return strings.TrimSpace(e.Text) != ""
}

// timestamp layouts accepted when reading persisted data. Payloads written
// by other frontends sometimes carry date-only stamps.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DecodeEntries parses a persisted history payload. The payload is expected
// to be a JSON array of objects with at least a text and a timestamp field;
// anything else degrades to an empty result rather than an error. Elements
// missing a non-empty text or a parseable timestamp are dropped, preserving
// the order of the survivors.
func DecodeEntries(raw string) []RecentEntry {
	if !gjson.Valid(raw) {
		return nil
	}
	parsed := gjson.Parse(raw)
	if !parsed.IsArray() {
		return nil
	}
	var entries []RecentEntry
	for _, elem := range parsed.Array() {
		text := elem.Get("text")
		stamp := elem.Get("timestamp")
		if text.Type != gjson.String || stamp.Type != gjson.String {
			continue
		}
		when, ok := parseTimestamp(stamp.Str)
		if !ok {
			continue
		}
		entry := RecentEntry{Text: text.Str, Timestamp: when}
		if !entry.IsValid() {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// EncodeEntries serializes entries to the persisted payload shape: a JSON
// array of {text, timestamp} objects with RFC 3339 timestamps.
func EncodeEntries(entries []RecentEntry) (string, error) {
	if entries == nil {
		entries = []RecentEntry{}
	}
	serialized, err := json.Marshal(entries)
	if err != nil {
		return "", err
	}
	return string(serialized), nil
}
