package matcher

import (
	"regexp"
	"strings"
)

// Name quality scoring, used when merging duplicate records: the record
// keeps the best-scoring name and the rest become alternate names.

var (
	coordinateName = regexp.MustCompile(`^-?\d+\.\d+,-?\d+\.\d+$`)
	properNoun     = regexp.MustCompile(`[A-Z][a-z]+`)

	genericNames = []string{"house", "building", "place", "location", "point", "site"}

	descriptiveSuffixes = []string{
		"factory", "hospital", "school", "church", "theater", "theatre",
		"mill", "farm", "brewery", "county", "poorhouse",
	}
)

// ScoreName rates a name's quality; higher is better. Coordinate literals
// and generic labels score low, proper nouns and descriptive suffixes earn
// bonuses.
func ScoreName(name string) int {
	if name == "" {
		return 0
	}

	score := len(name)

	if coordinateName.MatchString(name) {
		score = 1
	}
	if len(name) < 5 {
		score -= 10
	}

	lower := strings.ToLower(strings.TrimSpace(name))
	for _, g := range genericNames {
		if lower == g {
			score -= 20
			break
		}
	}

	score += len(properNoun.FindAllString(name, -1)) * 5

	for _, suffix := range descriptiveSuffixes {
		if strings.Contains(lower, suffix) {
			score += 10
		}
	}

	return score
}

// BestName picks the highest-scoring non-blank name. Earlier names win
// score ties so the outcome is stable.
func BestName(names []string) string {
	best := ""
	bestScore := 0
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		if s := ScoreName(n); best == "" || s > bestScore {
			best = n
			bestScore = s
		}
	}
	return best
}

// AlternateNames collects the remaining names after BestName, dropping
// blanks, coordinate literals, and case-insensitive duplicates. The result
// joins with " | " for storage in a single column.
func AlternateNames(names []string, primary string) string {
	seen := map[string]bool{strings.ToLower(primary): true}
	var out []string
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || coordinateName.MatchString(n) {
			continue
		}
		lower := strings.ToLower(n)
		if seen[lower] {
			continue
		}
		seen[lower] = true
		out = append(out, n)
	}
	return strings.Join(out, " | ")
}
