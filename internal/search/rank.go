package search

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ShreyasBadgujar/hotel-booking/internal/model"
)

// ErrEmptyQuery is returned when the query contains no tokens.
var ErrEmptyQuery = errors.New("search: query must be a non-empty string")

const (
	maxResults = 10

	// A token occurring anywhere in the document text scores textWeight;
	// occurring in the title as well adds titleBonus on top. Presence only:
	// repeated occurrences of the same token do not score again.
	textWeight = 1.0
	titleBonus = 1.5
)

// ScoredResult pairs a document with its query score.
type ScoredResult struct {
	Document Document
	Score    float64
	Rank     int // 1-based position after sorting and truncation
}

// Search tokenizes the query and ranks the documents by weighted term
// overlap. It returns at most ten results in descending score order (ties
// keep corpus enumeration order) along with a human-readable context blob,
// one line per result. A query with no matches yields an empty result set
// and an empty context, not an error.
func Search(query string, docs []Document) ([]ScoredResult, string, error) {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return nil, "", ErrEmptyQuery
	}

	results := make([]ScoredResult, 0, len(docs))
	for _, doc := range docs {
		text := strings.ToLower(doc.Text)
		title := strings.ToLower(doc.Title)

		var score float64
		for _, tok := range tokens {
			if strings.Contains(text, tok) {
				score += textWeight
				if strings.Contains(title, tok) {
					score += titleBonus
				}
			}
		}
		if score > 0 {
			results = append(results, ScoredResult{Document: doc, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	for i := range results {
		results[i].Rank = i + 1
	}

	return results, buildContext(results), nil
}

// Tokenize lower-cases the query and splits it on whitespace runs.
func Tokenize(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

func buildContext(results []ScoredResult) string {
	lines := make([]string, 0, len(results))
	for _, r := range results {
		switch p := r.Document.Payload.(type) {
		case model.Hotel:
			lines = append(lines, fmt.Sprintf(
				"Hotel %d: %s | Address: %s, %s. Contact: %s.",
				r.Rank, p.Name, p.Address, p.City, p.Contact))
		case roomPayload:
			lines = append(lines, fmt.Sprintf(
				"Room %d: %s | PricePerNight: %s | Amenities: %s",
				r.Rank, p.RoomType, FormatPrice(p.PricePerNight), strings.Join(p.Amenities, ", ")))
		}
	}
	return strings.Join(lines, "\n")
}
