// Package catalog turns the movie list into the filtered, ordered view shown
// on the home page.
package catalog

import (
	"slices"
	"sort"
	"strings"

	"movie-review/internal/data/entity"
)

// SortKey selects the ordering of a listing.
type SortKey string

const (
	SortRecent SortKey = "recent"
	SortOld    SortKey = "old"
	SortBest   SortKey = "best"
	SortWorst  SortKey = "worst"
)

// ParseSortKey maps a query value to a SortKey. Empty means recent; anything
// unrecognised is kept as-is and leaves the input order untouched.
func ParseSortKey(s string) SortKey {
	if s == "" {
		return SortRecent
	}
	return SortKey(strings.ToLower(s))
}

// Query describes a listing request.
type Query struct {
	Search string
	Genres []string
	Sort   SortKey
}

// Apply filters and orders movies without modifying the input slice.
//
// Both timestamp keys sort ascending and "recent" is the reversal. Both rating
// keys also sort ascending, but only "best" is reversed, so "worst" lists the
// lowest rating first.
func Apply(movies []*entity.Movie, q Query) []*entity.Movie {
	search := strings.ToLower(q.Search)

	out := make([]*entity.Movie, 0, len(movies))
	for _, m := range movies {
		if m == nil || !strings.Contains(strings.ToLower(m.Name), search) {
			continue
		}
		if len(q.Genres) > 0 && !hasAnyGenre(m.Genres, q.Genres) {
			continue
		}
		out = append(out, m)
	}

	switch q.Sort {
	case SortRecent, SortOld:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	case SortBest, SortWorst:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating < out[j].Rating
		})
	default:
		return out
	}

	if q.Sort == SortRecent || q.Sort == SortBest {
		slices.Reverse(out)
	}

	return out
}

func hasAnyGenre(movieGenres, wanted []string) bool {
	for _, g := range movieGenres {
		if slices.Contains(wanted, g) {
			return true
		}
	}
	return false
}
