package ledger

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Match is a friend scored against a finder query. Score is in [0,1].
type Match struct {
	Friend Friend
	Score  float64
}

// Rank orders friends by how closely their name matches query. Names that
// start with the query come first, then the rest by edit-distance similarity.
// Ties keep collection order. An empty query returns every friend unscored.
func Rank(query string, friends []Friend) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Match, 0, len(friends))
	for _, f := range friends {
		out = append(out, Match{Friend: f, Score: similarity(q, strings.ToLower(f.Name))})
	}
	if q == "" {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		pi := strings.HasPrefix(strings.ToLower(out[i].Friend.Name), q)
		pj := strings.HasPrefix(strings.ToLower(out[j].Friend.Name), q)
		if pi != pj {
			return pi
		}
		return out[i].Score > out[j].Score
	})
	return out
}

func similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	longest := max(len([]rune(a)), len([]rune(b)))
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}
