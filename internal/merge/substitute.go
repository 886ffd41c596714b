// Package merge fills certificate templates from training data by replacing
// placeholder fields in the raw text of a document part.
//
// Substitution works on the serialized part, not on the object model. A
// placeholder that the editor split across several runs is therefore not found
// and stays in the output unchanged.
package merge

import (
	"regexp"
	"sort"
	"strings"
)

// FieldBinding maps a placeholder to its replacement. Placeholders match
// case-insensitively.
type FieldBinding struct {
	Placeholder string
	Value       string
}

// Substitute replaces every case-insensitive occurrence of each placeholder in
// text with its value.
//
// All placeholders are matched by one pattern in a single scan, so replacement
// values are never scanned again and the order of bindings does not matter for
// distinct names. When one name contains another the longer one wins; when a
// name is bound twice the first binding wins. Placeholders that do not occur
// leave the text untouched.
func Substitute(text string, bindings []FieldBinding) string {
	re := compile(bindings)
	if re == nil {
		return text
	}
	return re.ReplaceAllStringFunc(text, func(match string) string {
		for _, b := range bindings {
			if strings.EqualFold(b.Placeholder, match) {
				return b.Value
			}
		}
		return match
	})
}

func compile(bindings []FieldBinding) *regexp.Regexp {
	names := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if b.Placeholder != "" {
			names = append(names, b.Placeholder)
		}
	}
	if len(names) == 0 {
		return nil
	}
	// leftmost-first alternation: try longer names first
	sort.SliceStable(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = regexp.QuoteMeta(n)
	}
	return regexp.MustCompile("(?i)(?:" + strings.Join(quoted, "|") + ")")
}

// Conflicts lists the bindings whose result could depend on application order
// under chained replacement: a placeholder contained in another placeholder, or
// a placeholder that occurs in some binding's value.
func Conflicts(bindings []FieldBinding) []string {
	var out []string
	for i, a := range bindings {
		if a.Placeholder == "" {
			continue
		}
		needle := strings.ToLower(a.Placeholder)
		for j, b := range bindings {
			if i != j && b.Placeholder != "" && strings.Contains(strings.ToLower(b.Placeholder), needle) {
				out = append(out, a.Placeholder+" is contained in placeholder "+b.Placeholder)
			}
			if strings.Contains(strings.ToLower(b.Value), needle) {
				out = append(out, a.Placeholder+" occurs in the value of "+b.Placeholder)
			}
		}
	}
	return out
}
