package catalog

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"movie-review/internal/data/entity"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func movie(name string, rating float64, age time.Duration, genres ...string) *entity.Movie {
	return &entity.Movie{
		Base:   entity.Base{ID: uuid.New(), CreatedAt: t0.Add(age)},
		Name:   name,
		Rating: rating,
		Genres: genres,
	}
}

func names(movies []*entity.Movie) []string {
	out := make([]string, len(movies))
	for i, m := range movies {
		out[i] = m.Name
	}
	return out
}

func fixture() []*entity.Movie {
	return []*entity.Movie{
		movie("Dune", 8, 0, "sci-fi", "drama"),
		movie("Clue", 6, time.Hour, "comedy"),
		movie("Alien", 9, 2*time.Hour, "sci-fi", "horror"),
		movie("Heat", 6, 3*time.Hour, "crime"),
	}
}

func TestApply_SearchExample(t *testing.T) {
	movies := []*entity.Movie{
		movie("Dune", 8, 0, "sci-fi"),
		movie("Clue", 6, time.Hour, "comedy"),
	}

	got := Apply(movies, Query{Search: "du", Sort: SortRecent})
	assert.Equal(t, []string{"Dune"}, names(got))

	got = Apply(movies, Query{Sort: SortRecent})
	assert.Equal(t, []string{"Clue", "Dune"}, names(got))
}

func TestApply_SearchIsCaseInsensitive(t *testing.T) {
	for _, m := range fixture() {
		got := Apply(fixture(), Query{Search: m.Name[1:3], Sort: SortOld})
		assert.Contains(t, names(got), m.Name)
	}

	got := Apply(fixture(), Query{Search: "ALI"})
	assert.Equal(t, []string{"Alien"}, names(got))

	assert.Empty(t, Apply(fixture(), Query{Search: "zzz"}))
}

func TestApply_GenreFilter(t *testing.T) {
	tests := []struct {
		name   string
		genres []string
		want   []string
	}{
		{"empty set is a no-op", nil, []string{"Dune", "Clue", "Alien", "Heat"}},
		{"single genre", []string{"sci-fi"}, []string{"Dune", "Alien"}},
		{"or match", []string{"comedy", "crime"}, []string{"Clue", "Heat"}},
		{"no intersection", []string{"western"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(fixture(), Query{Genres: tt.genres, Sort: SortOld})
			if diff := cmp.Diff(tt.want, names(got)); diff != "" {
				t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApply_Sorting(t *testing.T) {
	tests := []struct {
		sort SortKey
		want []string
	}{
		{SortRecent, []string{"Heat", "Alien", "Clue", "Dune"}},
		{SortOld, []string{"Dune", "Clue", "Alien", "Heat"}},
		// Clue and Heat tie at 6: ascending keeps input order, best reverses it.
		{SortBest, []string{"Alien", "Dune", "Heat", "Clue"}},
		{SortWorst, []string{"Clue", "Heat", "Dune", "Alien"}},
		{SortKey("unknown"), []string{"Dune", "Clue", "Alien", "Heat"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.sort), func(t *testing.T) {
			got := Apply(fixture(), Query{Sort: tt.sort})
			if diff := cmp.Diff(tt.want, names(got)); diff != "" {
				t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApply_TimestampOrderInvariants(t *testing.T) {
	recent := Apply(fixture(), Query{Sort: SortRecent})
	for i := 1; i < len(recent); i++ {
		assert.False(t, recent[i].CreatedAt.After(recent[i-1].CreatedAt))
	}

	old := Apply(fixture(), Query{Sort: SortOld})
	for i := 1; i < len(old); i++ {
		assert.False(t, old[i].CreatedAt.Before(old[i-1].CreatedAt))
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	in := fixture()
	before := names(in)

	Apply(in, Query{Sort: SortBest})

	assert.Equal(t, before, names(in))
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortRecent, ParseSortKey(""))
	assert.Equal(t, SortBest, ParseSortKey("BEST"))
	assert.Equal(t, SortKey("random"), ParseSortKey("random"))
}
