package match

import (
	"sort"
	"strings"
)

// Candidate is a known name scored against an unknown one.
type Candidate struct {
	Name string
	// Score is the similarity in [0, 1]; higher is closer.
	Score float64
}

// CandidateList is sorted by descending score, then by name.
type CandidateList []Candidate

// Rank scores every name in names against target. Exact case-insensitive
// matches score 1; otherwise the higher of the raw and the normalized
// similarity is used.
func Rank(target string, names []string) CandidateList {
	list := make(CandidateList, 0, len(names))
	for _, name := range names {
		list = append(list, Candidate{Name: name, Score: score(target, name)})
	}

	sort.Sort(list)

	return list
}

func score(target, name string) float64 {
	if strings.EqualFold(target, name) {
		return 1
	}

	return max(
		Similarity(strings.ToLower(target), strings.ToLower(name)),
		NameSimilarity(target, name),
	)
}

func (c CandidateList) Len() int      { return len(c) }
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Best returns the top candidate, or nil for an empty list.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// Top returns at most n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// AboveThreshold returns the candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var out CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			out = append(out, cand)
		}
	}

	return out
}

// IsAmbiguous reports whether the two best candidates are closer than
// threshold.
func (c CandidateList) IsAmbiguous(threshold float64) bool {
	if len(c) < 2 {
		return false
	}

	return c[0].Score-c[1].Score < threshold
}

// DefaultSuggestThreshold is the minimum score Suggest accepts.
const DefaultSuggestThreshold = 0.6

// Suggest returns the known name closest to target, or "" when none is
// close enough to be a plausible typo.
func Suggest(target string, names []string) string {
	best := Rank(target, names).Best()
	if best == nil || best.Score < DefaultSuggestThreshold {
		return ""
	}

	return best.Name
}
