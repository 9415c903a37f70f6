package models

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// escapePathKey makes a raw JSON object key safe to use as a gjson/sjson
// path component.
func escapePathKey(key string) string {
	replacer := strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`, "|", `\|`)
	return replacer.Replace(key)
}

// MergeExtra merges open-ended extension fields back into a serialized JSON
// object at the top level. Known fields in data win over extras with the
// same key.
func MergeExtra(data []byte, extra map[string]any) ([]byte, error) {
	merged := data
	for key, value := range extra {
		if gjson.GetBytes(merged, escapePathKey(key)).Exists() {
			continue
		}
		var err error
		merged, err = sjson.SetBytes(merged, escapePathKey(key), value)
		if err != nil {
			return nil, err
		}
	}
	return merged, nil
}

// SplitExtra collects the top-level fields of a JSON object that are not in
// the known set. Returns nil when nothing unknown is present.
func SplitExtra(data []byte, known map[string]struct{}) map[string]any {
	var extra map[string]any
	gjson.ParseBytes(data).ForEach(func(key, value gjson.Result) bool {
		if _, ok := known[key.String()]; ok {
			return true
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[key.String()] = value.Value()
		return true
	})
	return extra
}

// ParseTimestamp parses the timestamp strings Jira sends on entities, which
// vary between RFC 3339 and a few close cousins.
func ParseTimestamp(value string) (time.Time, error) {
	return dateparse.ParseAny(value)
}

// UniqueIssueKeys flattens per-entity issue-key lists and drops duplicates,
// keeping first-seen order.
func UniqueIssueKeys(keyLists ...[]string) []string {
	return lo.Uniq(lo.Flatten(keyLists))
}
