package util

import "strings"

// SplitList splits a comma separated answer into trimmed lower-case items, dropping blanks
func SplitList(s string) []string {
	var items []string

	for _, item := range strings.Split(s, ",") {
		item = strings.ToLower(strings.TrimSpace(item))
		if item != "" {
			items = append(items, item)
		}
	}

	return items
}
