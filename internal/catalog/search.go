package catalog

import (
	"strings"
	"unicode/utf8"
)

const (
	// minQueryLen is the minimum query length, in runes, before search runs.
	minQueryLen = 3

	// maxResults caps how many matches a search returns.
	maxResults = 10
)

// ResultKind tells whether a search result matched an area or a single
// question.
type ResultKind int

const (
	MatchArea ResultKind = iota
	MatchQuestion
)

// SearchResult is one search hit. Question is zero-valued for area
// matches.
type SearchResult struct {
	Kind     ResultKind
	Area     *Area
	Question Question
}

// Search returns up to maxResults hits for the query, case-insensitively:
// first areas whose title or description matches, then questions whose
// text matches, in catalog order. Queries shorter than three runes
// return no results.
func Search(query string) []SearchResult {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minQueryLen {
		return nil
	}
	needle := strings.ToLower(query)

	var results []SearchResult
	for i := range areas {
		if strings.Contains(strings.ToLower(areas[i].Title), needle) ||
			strings.Contains(strings.ToLower(areas[i].Description), needle) {
			results = append(results, SearchResult{Kind: MatchArea, Area: &areas[i]})
			if len(results) == maxResults {
				return results
			}
		}
	}
	for i := range areas {
		for _, q := range areas[i].Questions {
			if strings.Contains(strings.ToLower(q.Text), needle) {
				results = append(results, SearchResult{Kind: MatchQuestion, Area: &areas[i], Question: q})
				if len(results) == maxResults {
					return results
				}
			}
		}
	}
	return results
}

// FilterAreas returns the areas whose title, description, or any
// question text contains the query, case-insensitively. An empty query
// returns the full catalog.
func FilterAreas(query string) []Area {
	query = strings.TrimSpace(query)
	if query == "" {
		return areas
	}
	needle := strings.ToLower(query)

	var matched []Area
	for _, a := range areas {
		if areaMatches(a, needle) {
			matched = append(matched, a)
		}
	}
	return matched
}

func areaMatches(a Area, needle string) bool {
	if strings.Contains(strings.ToLower(a.Title), needle) ||
		strings.Contains(strings.ToLower(a.Description), needle) {
		return true
	}
	for _, q := range a.Questions {
		if strings.Contains(strings.ToLower(q.Text), needle) {
			return true
		}
	}
	return false
}
