// Package commtemplate serves communication templates and fills their
// {{placeholders}}.
package commtemplate

import (
	"regexp"
	"slices"
)

var placeholderRe = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_.]+)\s*\}\}`)

// Render replaces each {{key}} with values[key]. Placeholders without a
// value are left as written and their keys returned in first-seen order.
func Render(body string, values map[string]string) (string, []string) {
	var missing []string
	out := placeholderRe.ReplaceAllStringFunc(body, func(m string) string {
		key := placeholderRe.FindStringSubmatch(m)[1]
		if v, ok := values[key]; ok {
			return v
		}
		if !slices.Contains(missing, key) {
			missing = append(missing, key)
		}
		return m
	})
	return out, missing
}

// Placeholders lists the distinct keys used in body.
func Placeholders(body string) []string {
	var keys []string
	for _, m := range placeholderRe.FindAllStringSubmatch(body, -1) {
		if !slices.Contains(keys, m[1]) {
			keys = append(keys, m[1])
		}
	}
	return keys
}
