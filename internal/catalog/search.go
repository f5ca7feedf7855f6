package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/osse101/RaidCompanion_Go/internal/domain"
)

// Match sources, strongest first
const (
	MatchExact  = "exact"
	MatchPrefix = "prefix"
	MatchSubstr = "substring"
	MatchFuzzy  = "fuzzy"
)

// Match is a scored item search hit
type Match struct {
	Item   *domain.Item `json:"item"`
	Score  float64      `json:"score"`
	Source string       `json:"source"`
}

// FindItem searches items by id and by name resolved in lang.
// Exact, prefix and substring hits rank above typo-tolerant fuzzy hits.
func FindItem(c *domain.Catalog, query, lang string, limit int) []Match {
	q := normalize(query)
	if c == nil || q == "" {
		return nil
	}

	var matches []Match
	for i := range c.Items {
		item := &c.Items[i]
		best := Match{}
		for _, cand := range candidates(item, lang) {
			if m, ok := score(q, cand); ok && m.Score > best.Score {
				best = m
			}
		}
		if best.Score > 0 {
			best.Item = item
			matches = append(matches, best)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score == matches[j].Score {
			return matches[i].Item.ID < matches[j].Item.ID
		}
		return matches[i].Score > matches[j].Score
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func candidates(item *domain.Item, lang string) []string {
	out := []string{normalize(item.ID), normalize(item.Name.Resolve(lang))}
	if lang != domain.DefaultLanguage {
		out = append(out, normalize(item.Name.Resolve(domain.DefaultLanguage)))
	}
	return out
}

func score(query, cand string) (Match, bool) {
	switch {
	case cand == "":
		return Match{}, false
	case cand == query:
		return Match{Score: 1, Source: MatchExact}, true
	case strings.HasPrefix(cand, query):
		return Match{Score: 0.9, Source: MatchPrefix}, true
	case strings.Contains(cand, query):
		return Match{Score: 0.8, Source: MatchSubstr}, true
	}

	if len(query) < 3 {
		return Match{}, false
	}
	dist := levenshtein.ComputeDistance(query, cand)
	if dist > fuzzyLimit(len(cand)) {
		return Match{}, false
	}
	return Match{Score: 0.72 - 0.08*float64(dist), Source: MatchFuzzy}, true
}

func fuzzyLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// normalize lowercases and folds separators so "Metal Parts" and "metal_parts" compare equal
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", " ", "-", " ").Replace(s)
}
