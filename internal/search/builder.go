package search

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/osse101/GranblueTeam_Go/internal/domain"
)

// Filters holds the filter selections made in the search UI.
// Slices are multi-select checkboxes; pointers are single selections where nil means unset
// and zero is a real value; bools are toggles that only count when on.
type Filters struct {
	Element      *int  `json:"element,omitempty" validate:"omitempty,min=0,max=6"`
	Elements     []int `json:"elements,omitempty" validate:"omitempty,dive,min=0,max=6"`
	Rarity       []int `json:"rarity,omitempty" validate:"omitempty,dive,min=1,max=3"`
	Series       []int `json:"series,omitempty" validate:"omitempty,dive,min=0"`
	Proficiency  []int `json:"proficiency,omitempty" validate:"omitempty,dive,min=0,max=10"`
	Proficiency1 *int  `json:"proficiency1,omitempty" validate:"omitempty,min=0,max=10"`
	Proficiency2 *int  `json:"proficiency2,omitempty" validate:"omitempty,min=0,max=10"`
	Race         []int `json:"race,omitempty" validate:"omitempty,dive,min=0"`
	Season       []int `json:"season,omitempty" validate:"omitempty,dive,min=0"`
	Recency      *int  `json:"recency,omitempty" validate:"omitempty,min=0"`
	Extra        bool  `json:"extra,omitempty"`
	Subaura      bool  `json:"subaura,omitempty"`
}

// Request is a search submitted to the gateway
type Request struct {
	Object  string  `json:"object" validate:"required,oneof=characters weapons summons job_skills guidebooks"`
	Query   string  `json:"query" validate:"max=100"`
	Job     string  `json:"job,omitempty" validate:"omitempty,max=64"`
	Locale  string  `json:"locale,omitempty" validate:"omitempty,oneof=en ja"`
	Filters Filters `json:"filters"`
	Page    int     `json:"page,omitempty" validate:"omitempty,min=1"`
	Per     int     `json:"per,omitempty" validate:"omitempty,min=1,max=100"`
}

// Payload is the backend search body
type Payload struct {
	Search Criteria `json:"search"`
	Page   int      `json:"page"`
	Per    int      `json:"per"`
}

// Criteria is the inner search object of the backend body
type Criteria struct {
	Query   string                 `json:"query"`
	Locale  string                 `json:"locale"`
	Job     string                 `json:"job,omitempty"`
	Filters map[string]interface{} `json:"filters"`
}

// Pagination returns page and per with defaults applied
func (r Request) Pagination() (page, per int) {
	page, per = r.Page, r.Per
	if page < 1 {
		page = domain.DefaultSearchPage
	}
	if per < 1 {
		per = domain.DefaultSearchPer
	}
	if per > domain.MaxSearchPer {
		per = domain.MaxSearchPer
	}
	return page, per
}

// FilterParams flattens filters into backend keys.
// Empty slices, false toggles and nil selections produce no key.
func FilterParams(f Filters) map[string]interface{} {
	params := make(map[string]interface{})

	// a one-entry element list is the same filter as the scalar form
	switch {
	case f.Element != nil:
		params[KeyElement] = *f.Element
	case len(f.Elements) == 1:
		params[KeyElement] = f.Elements[0]
	case len(f.Elements) > 1:
		params[KeyElement] = joinIDs(f.Elements)
	}
	putList(params, KeyRarity, f.Rarity)
	putList(params, KeySeries, f.Series)
	putList(params, KeyProficiency, f.Proficiency)
	putList(params, KeyRace, f.Race)
	putList(params, KeySeason, f.Season)
	putScalar(params, KeyProficiency1, f.Proficiency1)
	putScalar(params, KeyProficiency2, f.Proficiency2)
	putScalar(params, KeyRecency, f.Recency)
	if f.Extra {
		params[KeyExtra] = true
	}
	if f.Subaura {
		params[KeySubaura] = true
	}

	return params
}

// BuildPayload returns the JSON body for the backend search endpoint
func BuildPayload(r Request) Payload {
	page, per := r.Pagination()
	locale := r.Locale
	if locale == "" {
		locale = domain.LocaleEnglish
	}
	return Payload{
		Search: Criteria{
			Query:   strings.TrimSpace(r.Query),
			Locale:  locale,
			Job:     r.Job,
			Filters: FilterParams(r.Filters),
		},
		Page: page,
		Per:  per,
	}
}

// BuildQuery returns the same search as URL query parameters
func BuildQuery(r Request) url.Values {
	payload := BuildPayload(r)
	q := url.Values{}

	if payload.Search.Query != "" {
		q.Set(KeyQuery, payload.Search.Query)
	}
	q.Set(KeyLocale, payload.Search.Locale)
	if payload.Search.Job != "" {
		q.Set(KeyJob, payload.Search.Job)
	}
	for key, value := range payload.Search.Filters {
		switch v := value.(type) {
		case int:
			q.Set(key, strconv.Itoa(v))
		case bool:
			q.Set(key, strconv.FormatBool(v))
		case string:
			q.Set(key, v)
		}
	}
	q.Set(KeyPage, strconv.Itoa(payload.Page))
	q.Set(KeyPer, strconv.Itoa(payload.Per))

	return q
}

func putList(params map[string]interface{}, key string, ids []int) {
	if len(ids) > 0 {
		params[key] = joinIDs(ids)
	}
}

func putScalar(params map[string]interface{}, key string, value *int) {
	if value != nil {
		params[key] = *value
	}
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
