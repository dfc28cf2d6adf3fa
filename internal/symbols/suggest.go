package symbols

import "sort"

// maxSuggestDistance bounds the Levenshtein search: spec §7 has the
// did-you-mean search give up once every candidate is farther than this
// from the misspelled name, rather than always returning the closest
// match in the whole scope stack.
const maxSuggestDistance = 3

// Suggest searches stack, innermost scope first, for the name closest to
// target by edit distance, for a "did you mean" diagnostic note. Ties
// within a single scope are broken lexicographically; a scope closer to
// the reference always wins over a more distant one, even if the more
// distant scope has a closer spelling.
func (t *Table) Suggest(stack Stack, target string) (string, bool) {
	for _, sc := range stack {
		scope := t.Scope(sc)
		if scope == nil {
			continue
		}
		names := scope.Names()
		if len(names) == 0 {
			continue
		}
		sort.Strings(names)
		best := ""
		bestDist := maxSuggestDistance + 1
		for _, n := range names {
			d := levenshtein(target, n)
			if d < bestDist {
				bestDist = d
				best = n
			}
		}
		if bestDist <= maxSuggestDistance {
			return best, true
		}
	}
	return "", false
}

// levenshtein computes the classic edit distance between a and b.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	n, m := len(ra), len(rb)
	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}
	prev := make([]int, m+1)
	cur := make([]int, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = j
	}
	for i := 1; i <= n; i++ {
		cur[0] = i
		for j := 1; j <= m; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := cur[j-1] + 1
			sub := prev[j-1] + cost
			cur[j] = min3(del, ins, sub)
		}
		prev, cur = cur, prev
	}
	return prev[m]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
