package shell

import (
	"sort"
	"strings"

	fuzzysearch "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sahilm/fuzzy"
)

// maxTypoDistance bounds the edit distance of typo suggestions.
const maxTypoDistance = 3

// suggest returns up to limit known command names resembling input.
// Subsequence matches win; edit distance covers plain typos.
func suggest(input string, limit int) []string {
	input = strings.ToUpper(strings.TrimSpace(input))
	if input == "" || limit < 1 {
		return nil
	}

	names := commandNames()

	var result []string
	for _, m := range fuzzy.Find(input, names) {
		result = append(result, m.Str)
		if len(result) == limit {
			return result
		}
	}
	if len(result) > 0 {
		return result
	}

	type candidate struct {
		name     string
		distance int
	}
	var candidates []candidate
	for _, name := range names {
		d := fuzzysearch.LevenshteinDistance(input, name)
		if d <= maxTypoDistance {
			candidates = append(candidates, candidate{name: name, distance: d})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	for _, c := range candidates {
		result = append(result, c.name)
		if len(result) == limit {
			break
		}
	}
	return result
}
