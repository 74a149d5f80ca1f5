package tui

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"biodex/internal/species"
)

// searchThreshold is the minimum name similarity for a fuzzy match when
// the query is not a substring of either name.
const searchThreshold = 0.55

// rankSpecies filters and orders the list by how well each record's names
// match the query. Substring matches always qualify; otherwise the best
// levenshtein similarity across both names decides.
func rankSpecies(query string, list []species.Species) []species.Species {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return list
	}

	type scored struct {
		sp    species.Species
		score float64
	}
	var matches []scored
	for _, sp := range list {
		best := 0.0
		for _, name := range candidateNames(sp) {
			if s := nameScore(q, name); s > best {
				best = s
			}
		}
		if best > 0 {
			matches = append(matches, scored{sp: sp, score: best})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].score > matches[j].score })

	out := make([]species.Species, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.sp)
	}
	return out
}

func candidateNames(sp species.Species) []string {
	names := []string{strings.ToLower(sp.ScientificName)}
	if sp.CommonName != nil {
		names = append(names, strings.ToLower(*sp.CommonName))
	}
	return names
}

// nameScore returns 0 for a non-match, otherwise a value in (0, 2] where
// substring hits outrank pure edit-distance similarity.
func nameScore(q, name string) float64 {
	if name == "" {
		return 0
	}
	if strings.Contains(name, q) {
		// Earlier hits score higher so prefix matches sort first.
		pos := strings.Index(name, q)
		return 2 - float64(pos)/float64(len(name))
	}
	longest := len(name)
	if len(q) > longest {
		longest = len(q)
	}
	sim := 1 - float64(levenshtein.ComputeDistance(q, name))/float64(longest)
	if sim < searchThreshold {
		return 0
	}
	return sim
}
