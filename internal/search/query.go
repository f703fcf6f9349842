package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
)

// SearchParams configures a search query. Empty filters are inactive.
type SearchParams struct {
	Query         string
	Category      string
	Style         string
	Weather       string
	FavoritesOnly bool

	Limit  int
	Offset int
}

// DefaultLimit is used when SearchParams.Limit is not positive.
const DefaultLimit = 20

// SearchResult represents the search results.
type SearchResult struct {
	Query  string      `json:"query"`
	Total  uint64      `json:"total"`
	TookMs int64       `json:"tookMs"`
	Hits   []SearchHit `json:"hits"`
}

// SearchHit represents a single matching item.
type SearchHit struct {
	ID         string            `json:"id"`
	Score      float64           `json:"score"`
	Name       string            `json:"name"`
	Highlights map[string]string `json:"highlights,omitempty"`
}

// IDs returns hit ids in rank order.
func (r *SearchResult) IDs() []string {
	ids := make([]string, len(r.Hits))
	for i, hit := range r.Hits {
		ids[i] = hit.ID
	}
	return ids
}

// Search executes a search query ranked by relevance.
func (s *SearchIndex) Search(ctx context.Context, params SearchParams) (*SearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	limit := params.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	searchRequest := bleve.NewSearchRequestOptions(buildSearchQuery(params), limit, params.Offset, false)
	searchRequest.SortBy([]string{"-_score", "id"})
	searchRequest.Fields = []string{"name"}
	searchRequest.Highlight = bleve.NewHighlight()
	searchRequest.Highlight.AddField("name")

	searchResult, err := s.index.SearchInContext(ctx, searchRequest)
	if err != nil {
		return nil, fmt.Errorf("execute search: %w", err)
	}

	result := &SearchResult{
		Query:  params.Query,
		Total:  searchResult.Total,
		TookMs: searchResult.Took.Milliseconds(),
		Hits:   make([]SearchHit, 0, len(searchResult.Hits)),
	}

	for _, hit := range searchResult.Hits {
		searchHit := SearchHit{
			ID:    hit.ID,
			Score: hit.Score,
		}
		if n, ok := hit.Fields["name"].(string); ok {
			searchHit.Name = n
		}
		if len(hit.Fragments) > 0 {
			searchHit.Highlights = make(map[string]string)
			for field, fragments := range hit.Fragments {
				if len(fragments) > 0 {
					searchHit.Highlights[field] = fragments[0]
				}
			}
		}
		result.Hits = append(result.Hits, searchHit)
	}

	return result, nil
}

// buildSearchQuery constructs the Bleve query from params.
// Free text matches name (boosted), color and notes, with fuzzy and prefix
// matching on the name for typos and partial input.
func buildSearchQuery(params SearchParams) query.Query {
	var queries []query.Query

	text := strings.TrimSpace(params.Query)
	if text != "" {
		lowered := strings.ToLower(text)

		nameMatch := bleve.NewMatchQuery(text)
		nameMatch.SetField("name")
		nameMatch.SetBoost(3.0)

		colorMatch := bleve.NewMatchQuery(text)
		colorMatch.SetField("color")
		colorMatch.SetBoost(1.5)

		notesMatch := bleve.NewMatchQuery(text)
		notesMatch.SetField("notes")

		fuzzyQuery := bleve.NewFuzzyQuery(lowered)
		fuzzyQuery.SetFuzziness(1)
		fuzzyQuery.SetField("name")
		fuzzyQuery.SetBoost(0.8)

		textQueries := []query.Query{nameMatch, colorMatch, notesMatch, fuzzyQuery}

		// Prefix query for autocomplete (minimum 2 chars)
		if len(lowered) >= 2 {
			prefixQuery := bleve.NewPrefixQuery(lowered)
			prefixQuery.SetField("name")
			prefixQuery.SetBoost(0.5)
			textQueries = append(textQueries, prefixQuery)
		}

		queries = append(queries, bleve.NewDisjunctionQuery(textQueries...))
	}

	for field, value := range map[string]string{
		"category": params.Category,
		"style":    params.Style,
		"weather":  params.Weather,
	} {
		if value == "" || value == "all" {
			continue
		}
		tq := bleve.NewTermQuery(value)
		tq.SetField(field)
		queries = append(queries, tq)
	}

	if params.FavoritesOnly {
		fq := bleve.NewBoolFieldQuery(true)
		fq.SetField("favorite")
		queries = append(queries, fq)
	}

	switch len(queries) {
	case 0:
		return bleve.NewMatchAllQuery()
	case 1:
		return queries[0]
	default:
		return bleve.NewConjunctionQuery(queries...)
	}
}
