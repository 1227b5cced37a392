package search

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestBuildPayload_ScalarElementEmptySeries(t *testing.T) {
	payload := BuildPayload(Request{
		Object:  ObjectWeapons,
		Filters: Filters{Element: intPtr(2), Series: []int{}},
	})

	assert.Equal(t, 2, payload.Search.Filters[KeyElement])
	assert.NotContains(t, payload.Search.Filters, KeySeries)

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"search":{"query":"","locale":"en","filters":{"element":2}},"page":1,"per":20}`, string(data))
}

func TestFilterParams_OmitsEmptyValues(t *testing.T) {
	params := FilterParams(Filters{
		Elements:    []int{},
		Rarity:      nil,
		Series:      []int{},
		Proficiency: []int{},
		Race:        []int{},
		Season:      nil,
		Extra:       false,
		Subaura:     false,
	})

	assert.Empty(t, params)
}

func TestFilterParams(t *testing.T) {
	tests := []struct {
		name     string
		filters  Filters
		expected map[string]interface{}
	}{
		{
			name:     "multi-select lists are comma joined",
			filters:  Filters{Rarity: []int{2, 3}, Proficiency: []int{1, 9}, Race: []int{4}},
			expected: map[string]interface{}{KeyRarity: "2,3", KeyProficiency: "1,9", KeyRace: "4"},
		},
		{
			name:     "element list when no single element",
			filters:  Filters{Elements: []int{1, 6}},
			expected: map[string]interface{}{KeyElement: "1,6"},
		},
		{
			name:     "one-entry element list matches the scalar",
			filters:  Filters{Elements: []int{2}},
			expected: map[string]interface{}{KeyElement: 2},
		},
		{
			name:     "single element takes precedence",
			filters:  Filters{Element: intPtr(3), Elements: []int{1, 6}},
			expected: map[string]interface{}{KeyElement: 3},
		},
		{
			name:     "explicit zero is kept",
			filters:  Filters{Element: intPtr(0), Proficiency1: intPtr(0)},
			expected: map[string]interface{}{KeyElement: 0, KeyProficiency1: 0},
		},
		{
			name:     "toggles and recency",
			filters:  Filters{Extra: true, Subaura: true, Recency: intPtr(86400)},
			expected: map[string]interface{}{KeyExtra: true, KeySubaura: true, KeyRecency: 86400},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FilterParams(tt.filters))
		})
	}
}

func TestPagination(t *testing.T) {
	tests := []struct {
		name      string
		page, per int
		wantPage  int
		wantPer   int
	}{
		{"defaults", 0, 0, 1, 20},
		{"passthrough", 3, 50, 3, 50},
		{"per capped", 1, 500, 1, 100},
		{"negative page", -2, 10, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, per := Request{Page: tt.page, Per: tt.per}.Pagination()
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPer, per)
		})
	}
}

func TestBuildQuery(t *testing.T) {
	q := BuildQuery(Request{
		Object:  ObjectCharacters,
		Query:   "  katalina ",
		Locale:  "ja",
		Filters: Filters{Element: intPtr(3), Rarity: []int{3}, Extra: true},
		Page:    2,
	})

	assert.Equal(t, "katalina", q.Get(KeyQuery))
	assert.Equal(t, "ja", q.Get(KeyLocale))
	assert.Equal(t, "3", q.Get(KeyElement))
	assert.Equal(t, "3", q.Get(KeyRarity))
	assert.Equal(t, "true", q.Get(KeyExtra))
	assert.Equal(t, "2", q.Get(KeyPage))
	assert.Equal(t, "20", q.Get(KeyPer))
	assert.False(t, q.Has(KeySubaura))
	assert.False(t, q.Has(KeySeries))
	assert.False(t, q.Has(KeyJob))
}
