package search

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GranblueTeam_Go/internal/domain"
)

func TestParseQuery(t *testing.T) {
	q := url.Values{}
	q.Set(KeyQuery, "bahamut")
	q.Set(KeyElement, "2,3")
	q.Set(KeyRarity, "3")
	q.Set(KeyProficiency1, "0")
	q.Set(KeyExtra, "true")
	q.Set(KeyPage, "2")

	r, err := ParseQuery(ObjectWeapons, q)
	require.NoError(t, err)

	assert.Equal(t, ObjectWeapons, r.Object)
	assert.Equal(t, "bahamut", r.Query)
	assert.Nil(t, r.Filters.Element)
	assert.Equal(t, []int{2, 3}, r.Filters.Elements)
	assert.Equal(t, []int{3}, r.Filters.Rarity)
	require.NotNil(t, r.Filters.Proficiency1)
	assert.Equal(t, 0, *r.Filters.Proficiency1, "explicit zero is kept")
	assert.Nil(t, r.Filters.Proficiency2)
	assert.True(t, r.Filters.Extra)
	assert.False(t, r.Filters.Subaura)
	assert.Equal(t, 2, r.Page)
}

func TestParseQuery_ScalarElement(t *testing.T) {
	r, err := ParseQuery(ObjectSummons, url.Values{KeyElement: {"6"}})
	require.NoError(t, err)
	require.NotNil(t, r.Filters.Element)
	assert.Equal(t, 6, *r.Filters.Element)
	assert.Empty(t, r.Filters.Elements)
}

func TestParseQuery_Invalid(t *testing.T) {
	tests := []struct {
		name string
		q    url.Values
	}{
		{"page", url.Values{KeyPage: {"two"}}},
		{"list", url.Values{KeySeries: {"1,x"}}},
		{"scalar", url.Values{KeyRecency: {"soon"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseQuery(ObjectCharacters, tt.q)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestParseQuery_InvertsBuildQuery(t *testing.T) {
	element := 2
	recency := 86400
	original := Request{
		Object: ObjectCharacters,
		Query:  "zeta",
		Locale: "ja",
		Filters: Filters{
			Element: &element,
			Rarity:  []int{2, 3},
			Race:    []int{1},
			Recency: &recency,
			Subaura: true,
		},
		Page: 3,
		Per:  50,
	}

	parsed, err := ParseQuery(ObjectCharacters, BuildQuery(original))
	require.NoError(t, err)
	assert.Equal(t, BuildPayload(original), BuildPayload(parsed))
}

func TestParseQuery_MatchesPostedFilters(t *testing.T) {
	fromQuery, err := ParseQuery(ObjectWeapons, url.Values{KeyElement: {"2"}})
	require.NoError(t, err)

	posted := Request{Object: ObjectWeapons, Filters: Filters{Elements: []int{2}}}

	assert.Equal(t, FilterParams(posted.Filters), FilterParams(fromQuery.Filters))
}
