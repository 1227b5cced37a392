package search

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/osse101/GranblueTeam_Go/internal/domain"
)

// ParseQuery reads a search from URL query parameters, the inverse of BuildQuery.
// An element value with a comma is a multi-select list; a bare value is the scalar filter.
func ParseQuery(object string, q url.Values) (Request, error) {
	r := Request{
		Object: object,
		Query:  q.Get(KeyQuery),
		Locale: q.Get(KeyLocale),
		Job:    q.Get(KeyJob),
	}

	var err error
	if r.Page, err = optionalInt(q, KeyPage); err != nil {
		return Request{}, err
	}
	if r.Per, err = optionalInt(q, KeyPer); err != nil {
		return Request{}, err
	}

	f := &r.Filters
	if raw := q.Get(KeyElement); raw != "" {
		if strings.Contains(raw, ",") {
			if f.Elements, err = parseIDs(KeyElement, raw); err != nil {
				return Request{}, err
			}
		} else if f.Element, err = scalar(q, KeyElement); err != nil {
			return Request{}, err
		}
	}

	lists := []struct {
		key    string
		target *[]int
	}{
		{KeyRarity, &f.Rarity},
		{KeySeries, &f.Series},
		{KeyProficiency, &f.Proficiency},
		{KeyRace, &f.Race},
		{KeySeason, &f.Season},
	}
	for _, l := range lists {
		if raw := q.Get(l.key); raw != "" {
			if *l.target, err = parseIDs(l.key, raw); err != nil {
				return Request{}, err
			}
		}
	}

	if f.Proficiency1, err = scalar(q, KeyProficiency1); err != nil {
		return Request{}, err
	}
	if f.Proficiency2, err = scalar(q, KeyProficiency2); err != nil {
		return Request{}, err
	}
	if f.Recency, err = scalar(q, KeyRecency); err != nil {
		return Request{}, err
	}

	f.Extra = q.Get(KeyExtra) == "true"
	f.Subaura = q.Get(KeySubaura) == "true"

	return r, nil
}

func optionalInt(q url.Values, key string) (int, error) {
	raw := q.Get(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q", domain.ErrInvalidInput, key, raw)
	}
	return n, nil
}

func scalar(q url.Values, key string) (*int, error) {
	if q.Get(key) == "" {
		return nil, nil
	}
	n, err := optionalInt(q, key)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func parseIDs(key, raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %q", domain.ErrInvalidInput, key, raw)
		}
		ids = append(ids, n)
	}
	return ids, nil
}
