package catalog

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Suggest returns up to n class names close to text by edit distance,
// nearest first and in catalog order among ties. Names further than half
// the text length (plus one) are not considered close. It is meant for
// "did you mean" hints when a search comes back empty.
func Suggest(c *Catalog, text string, n int) []string {
	text = strings.ToLower(strings.TrimSpace(text))
	if c == nil || text == "" || n <= 0 {
		return nil
	}

	type candidate struct {
		name string
		dist int
	}

	limit := utf8.RuneCountInString(text)/2 + 1
	seen := make(map[string]bool)
	var candidates []candidate
	c.Walk(func(_ Path, e Entry) bool {
		if seen[e.ClassName] {
			return true
		}
		seen[e.ClassName] = true
		d := levenshtein.ComputeDistance(text, strings.ToLower(e.ClassName))
		if d <= limit {
			candidates = append(candidates, candidate{name: e.ClassName, dist: d})
		}
		return true
	})

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})

	if len(candidates) > n {
		candidates = candidates[:n]
	}
	out := make([]string, len(candidates))
	for i, cand := range candidates {
		out[i] = cand.name
	}
	return out
}
