package domain

import (
	"math"
	"sort"
	"strings"
)

const (
	// Scoring weights
	ScoreExactMatch     = 100.0
	ScorePrefixMatch    = 75.0
	ScoreSubstringMatch = 50.0
	ScoreFuzzyMatch     = 25.0

	// Position bonus (earlier title words are better)
	ScorePositionBonus = 10.0

	// Exact full-title match bonus (huge boost)
	ScoreExactTitleBonus = 200.0

	// Matches on kind or category count for less than title matches
	ScoreMetaWeight = 0.4

	// Score given to every entry accepted by a filter-only query
	ScoreFilterOnly = 1.0

	// Usage weight (redirect counter contributes to final score)
	ScoreUsageWeight = 0.1
)

// Candidate represents an entry candidate with its match score
type Candidate struct {
	Entry        *Entry
	LexicalScore float64 // Score from fuzzy matching
	UsageScore   float64 // Score from usage learning
	TotalScore   float64 // Combined score
}

// ScoreEntry calculates the match score for an entry against a query.
// Every free-text fragment must match somewhere, otherwise the score is 0.
func ScoreEntry(query *Query, entry *Entry) float64 {
	if query == nil || entry == nil || query.Empty() {
		return 0.0
	}
	if !query.Accepts(entry) {
		return 0.0
	}
	if len(query.Fragments) == 0 {
		return ScoreFilterOnly
	}

	title := strings.ToLower(strings.TrimSpace(entry.Title))
	if strings.Join(query.Fragments, " ") == title {
		return ScoreExactMatch + ScoreExactTitleBonus
	}

	words := TitleWords(entry.Title)
	meta := append(TitleWords(entry.Kind), TitleWords(entry.Category)...)

	var totalScore float64
	for _, qFrag := range query.Fragments {
		best := 0.0
		for i, w := range words {
			if s := scoreFragment(qFrag, w, i); s > best {
				best = s
			}
		}
		if best == 0.0 {
			for i, w := range meta {
				if s := scoreFragment(qFrag, w, i) * ScoreMetaWeight; s > best {
					best = s
				}
			}
		}
		if best == 0.0 {
			return 0.0
		}
		totalScore += best
	}

	return totalScore
}

// scoreFragment scores a single query fragment against a title word
func scoreFragment(queryFrag, word string, position int) float64 {
	queryFrag = normalizeFragment(queryFrag)
	word = normalizeFragment(word)

	if queryFrag == "" || word == "" {
		return 0.0
	}

	// Exact match
	if queryFrag == word {
		return ScoreExactMatch + calculatePositionBonus(position)
	}

	// Prefix match
	if strings.HasPrefix(word, queryFrag) {
		return ScorePrefixMatch + calculatePositionBonus(position)
	}

	// Substring match
	if strings.Contains(word, queryFrag) {
		index := strings.Index(word, queryFrag)
		// Earlier substring matches get higher score
		substringBonus := ScorePositionBonus * (1.0 - float64(index)/float64(len(word)))
		return ScoreSubstringMatch + substringBonus
	}

	// Fuzzy match only for fragments long enough to mean something
	if len(queryFrag) < 3 {
		return 0.0
	}
	similarity := calculateSimilarity(queryFrag, word)
	if similarity > 0.75 {
		return ScoreFuzzyMatch * similarity
	}

	return 0.0
}

// calculatePositionBonus gives bonus for earlier positions
func calculatePositionBonus(position int) float64 {
	return ScorePositionBonus * math.Exp(-float64(position)*0.3)
}

// calculateSimilarity calculates fuzzy similarity between two strings
func calculateSimilarity(s1, s2 string) float64 {
	if s1 == "" || s2 == "" {
		return 0.0
	}

	// Simple similarity: ratio of matching characters
	matches := 0
	for _, c := range s1 {
		if strings.ContainsRune(s2, c) {
			matches++
		}
	}

	return float64(matches) / float64(len([]rune(s1)))
}

// NewCandidate scores one entry, combining lexical and usage scores.
// It returns nil for disabled entries and entries that do not match.
func NewCandidate(query *Query, entry *Entry) *Candidate {
	if entry == nil || entry.Disabled {
		return nil
	}

	lexicalScore := ScoreEntry(query, entry)
	if lexicalScore == 0.0 {
		return nil
	}

	// Calculate usage score (logarithmic to prevent dominance)
	usageScore := 0.0
	if entry.Counter > 0 {
		usageScore = math.Log10(float64(entry.Counter)+1) * ScoreUsageWeight * 100
	}

	return &Candidate{
		Entry:        entry,
		LexicalScore: lexicalScore,
		UsageScore:   usageScore,
		TotalScore:   lexicalScore + usageScore,
	}
}

// RankEntries ranks entry candidates by combining lexical and usage scores
func RankEntries(query *Query, entries []*Entry) []*Candidate {
	candidates := make([]*Candidate, 0, len(entries))

	for _, entry := range entries {
		if c := NewCandidate(query, entry); c != nil {
			candidates = append(candidates, c)
		}
	}

	sortCandidates(candidates)

	return candidates
}

// sortCandidates sorts candidates by total score (descending).
// Ties are broken by category then title so results are stable across reloads.
func sortCandidates(candidates []*Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.TotalScore != b.TotalScore {
			return a.TotalScore > b.TotalScore
		}
		if a.Entry.Category != b.Entry.Category {
			return a.Entry.Category < b.Entry.Category
		}
		return a.Entry.Title < b.Entry.Title
	})
}

// FindBestEntry finds the best matching entry for a query
func FindBestEntry(query *Query, entries []*Entry) *Entry {
	candidates := RankEntries(query, entries)
	if len(candidates) == 0 {
		return nil
	}
	return candidates[0].Entry
}
