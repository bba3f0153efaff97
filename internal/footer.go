package internal

import (
	"sort"
	"strings"
)

// Footer is a candidate shared footer string and its estimated frequency.
type Footer struct {
	Text  string
	Count int
}

// FindFooters returns the n most probable shared footer strings across the
// bodies, ranked by estimated frequency.
//
// Bodies are reversed and sorted lexically so strings sharing a suffix
// become adjacent; only adjacent pairs are compared (a deliberate greedy
// approximation, not all pairs). Each pair contributes its line-granular
// common suffix as a candidate. Candidates that are strictly longer and
// rarer than a substring candidate fold their counts into the shorter one.
// Empty bodies are skipped; empty input yields no candidates.
func FindFooters(bodies []string, n int) []Footer {
	reversed := make([]string, 0, len(bodies))
	for _, b := range bodies {
		if b == "" {
			continue
		}
		reversed = append(reversed, reverseString(b))
	}
	if len(reversed) < 2 || n <= 0 {
		return nil
	}
	sort.Strings(reversed)

	counts := make(map[string]int)
	for i := 1; i < len(reversed); i++ {
		head := commonLineHead(reversed[i-1], reversed[i])
		cand := strings.TrimSpace(reverseString(head))
		counts[cand]++
	}

	mergeFooterCounts(counts)

	candidates := make([]Footer, 0, len(counts))
	for text, count := range counts {
		candidates = append(candidates, Footer{Text: text, Count: count})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Count != candidates[j].Count {
			return candidates[i].Count > candidates[j].Count
		}
		return candidates[i].Text > candidates[j].Text
	})

	if len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}

// mergeFooterCounts folds any candidate that is strictly longer and less
// frequent than a substring candidate into that substring.
func mergeFooterCounts(counts map[string]int) {
	type entry struct {
		text  string
		count int
	}
	order := make([]entry, 0, len(counts))
	for text, count := range counts {
		order = append(order, entry{text, count})
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].count != order[j].count {
			return order[i].count > order[j].count
		}
		return order[i].text > order[j].text
	})

	for _, e := range order {
		if e.text == "" {
			continue
		}
		if _, ok := counts[e.text]; !ok {
			continue // already folded into a shorter candidate
		}
		for other, m := range counts {
			if other == e.text {
				continue
			}
			if e.count > m && strings.Contains(other, e.text) {
				counts[e.text] += m
				delete(counts, other)
			}
		}
	}
}

// commonLineHead returns the longest common prefix of a and b measured in
// whole lines.
func commonLineHead(a, b string) string {
	la := strings.Split(a, "\n")
	lb := strings.Split(b, "\n")
	limit := len(la)
	if len(lb) < limit {
		limit = len(lb)
	}
	i := 0
	for i < limit && la[i] == lb[i] {
		i++
	}
	return strings.Join(la[:i], "\n")
}

func reverseString(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
