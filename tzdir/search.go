package tzdir

import (
	"sort"
	"strings"
)

// Scoring weights for Rank. An exact abbreviation match dominates every other
// signal; the name checks score independently and add on top, so an entry can
// match on both its abbreviation and its display name.
const (
	scoreAbbrevExact  = 10000
	scoreAbbrevPrefix = 4
	scoreNamePrefix   = 10
	scoreNameContains = 3
)

// Rank scores every directory entry against query and returns the matches
// ordered by descending score, ties broken by display name. All matching is
// case-insensitive. A blank query matches nothing: the search panel is hidden
// until the user types.
//
// Rank is a pure function of its arguments; it never mutates dir and may be
// re-run on every keystroke.
func Rank(query string, dir []Info) []Info {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	type match struct {
		info  Info
		score int
	}
	var matches []match
	for _, info := range dir {
		score := abbrevScore(info.Abbreviations, q)
		name := strings.ToLower(info.Display)
		if strings.HasPrefix(name, q) {
			score += scoreNamePrefix
		} else if strings.Contains(name, q) {
			score += scoreNameContains
		}
		if score > 0 {
			matches = append(matches, match{info: info, score: score})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].info.Display < matches[j].info.Display
	})

	out := make([]Info, len(matches))
	for i, m := range matches {
		out[i] = m.info
	}
	return out
}

// abbrevScore returns the abbreviation component of an entry's score.
func abbrevScore(abbrevs []string, q string) int {
	prefix := false
	for _, a := range abbrevs {
		al := strings.ToLower(a)
		if al == q {
			return scoreAbbrevExact
		}
		if strings.HasPrefix(al, q) {
			prefix = true
		}
	}
	if prefix {
		return scoreAbbrevPrefix
	}
	return 0
}
