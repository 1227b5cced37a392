package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/osse101/GranblueTeam_Go/internal/backend"
	"github.com/osse101/GranblueTeam_Go/internal/domain"
	"github.com/osse101/GranblueTeam_Go/internal/logger"
	"github.com/osse101/GranblueTeam_Go/internal/metrics"
)

// Fetcher is the part of the backend client the catalog needs
type Fetcher interface {
	GetCatalogObject(ctx context.Context, resource, id, locale string) (*backend.Response, error)
	ListCatalog(ctx context.Context, resource string, query url.Values, locale string) (*backend.Response, error)
	JobSkills(ctx context.Context, jobID, locale string) (*backend.Response, error)
	JobAccessories(ctx context.Context, jobID, locale string) (*backend.Response, error)
}

// Service serves catalog reads through a read-through cache.
// Catalog objects are immutable between deploys, so bodies are cached verbatim.
type Service interface {
	Get(ctx context.Context, resource, id, locale string) ([]byte, error)
	List(ctx context.Context, resource string, query url.Values, locale string) ([]byte, error)
	JobSkills(ctx context.Context, jobID, locale string) ([]byte, error)
	JobAccessories(ctx context.Context, jobID, locale string) ([]byte, error)
	Invalidate(resource, id string)
	GetStats() CacheStats
}

type service struct {
	fetcher Fetcher
	cache   *bodyCache
}

// NewService creates a caching catalog service
func NewService(fetcher Fetcher, cfg CacheConfig) Service {
	return &service{
		fetcher: fetcher,
		cache:   newBodyCache(cfg),
	}
}

// IsDetailResource reports whether resource supports GET /{resource}/{id}
func IsDetailResource(resource string) bool {
	switch resource {
	case backend.ResourceCharacters, backend.ResourceWeapons, backend.ResourceSummons,
		backend.ResourceJobs, backend.ResourceRaids, backend.ResourceGuidebooks:
		return true
	default:
		return false
	}
}

// IsListResource reports whether resource supports GET /{resource}
func IsListResource(resource string) bool {
	switch resource {
	case backend.ResourceJobs, backend.ResourceRaids, backend.ResourceRaidGroups,
		backend.ResourceGuidebooks, backend.ResourceWeaponKeys:
		return true
	default:
		return false
	}
}

func (s *service) Get(ctx context.Context, resource, id, locale string) ([]byte, error) {
	if !IsDetailResource(resource) {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, resource)
	}
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: id", domain.ErrMissingParam)
	}
	key := detailKey(resource, id, locale)
	return s.readThrough(ctx, resource, key, func() (*backend.Response, error) {
		return s.fetcher.GetCatalogObject(ctx, resource, id, locale)
	})
}

func (s *service) List(ctx context.Context, resource string, query url.Values, locale string) ([]byte, error) {
	if !IsListResource(resource) {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, resource)
	}
	key := listKey(resource, query, locale)
	return s.readThrough(ctx, resource, key, func() (*backend.Response, error) {
		return s.fetcher.ListCatalog(ctx, resource, query, locale)
	})
}

func (s *service) JobSkills(ctx context.Context, jobID, locale string) ([]byte, error) {
	if strings.TrimSpace(jobID) == "" {
		return nil, fmt.Errorf("%w: job id", domain.ErrMissingParam)
	}
	key := detailKey(backend.ResourceJobs, jobID+keySep+backend.ResourceSkills, locale)
	return s.readThrough(ctx, backend.ResourceSkills, key, func() (*backend.Response, error) {
		return s.fetcher.JobSkills(ctx, jobID, locale)
	})
}

func (s *service) JobAccessories(ctx context.Context, jobID, locale string) ([]byte, error) {
	if strings.TrimSpace(jobID) == "" {
		return nil, fmt.Errorf("%w: job id", domain.ErrMissingParam)
	}
	key := detailKey(backend.ResourceJobs, jobID+keySep+backend.ResourceAccessories, locale)
	return s.readThrough(ctx, backend.ResourceAccessories, key, func() (*backend.Response, error) {
		return s.fetcher.JobAccessories(ctx, jobID, locale)
	})
}

// Invalidate drops every cached body for one catalog object in all locales
func (s *service) Invalidate(resource, id string) {
	prefix := resource + keySep + id + keySep
	removed := s.cache.Invalidate(func(key string) bool {
		return strings.HasPrefix(key, prefix)
	})
	logger.Debug(LogMsgCacheInvalidated, "resource", resource, "id", id, "removed", removed)
}

func (s *service) GetStats() CacheStats {
	return s.cache.GetStats()
}

func (s *service) readThrough(ctx context.Context, kind, key string, fetch func() (*backend.Response, error)) ([]byte, error) {
	if body, ok := s.cache.Get(key); ok {
		metrics.CatalogCacheLookups.WithLabelValues(kind, metrics.ResultHit).Inc()
		return body, nil
	}
	metrics.CatalogCacheLookups.WithLabelValues(kind, metrics.ResultMiss).Inc()

	resp, err := fetch()
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, resp.Body)
	logger.FromContext(ctx).Debug(LogMsgCacheFilled, "key", key, "bytes", len(resp.Body))
	return resp.Body, nil
}

func detailKey(resource, id, locale string) string {
	return resource + keySep + id + keySep + normalizeLocale(locale)
}

func listKey(resource string, query url.Values, locale string) string {
	return resource + keySep + keyList + keySep + query.Encode() + keySep + normalizeLocale(locale)
}

func normalizeLocale(locale string) string {
	if locale == "" {
		return domain.LocaleEnglish
	}
	return locale
}
