package server

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"gitlab.ozon.dev/safariproxd/webserver/internal/metrics"
	"gitlab.ozon.dev/safariproxd/webserver/pkg/cache"
)

//go:embed static/*.html
var defaultPages embed.FS

type PageSource interface {
	Page(name string) ([]byte, error)
}

// Pages serves page bodies from a directory, falling back to the built-in
// pages for files the directory does not have. Bodies are cached.
type Pages struct {
	dir     string
	cache   *cache.LRUCache[string, []byte]
	metrics metrics.MetricsProvider
}

func NewPages(dir string, cacheConfig cache.Config, m metrics.MetricsProvider) *Pages {
	if m == nil {
		m = metrics.NewNoOpProvider()
	}
	return &Pages{
		dir:     dir,
		cache:   cache.New[string, []byte](cacheConfig),
		metrics: m,
	}
}

func (p *Pages) Page(name string) ([]byte, error) {
	body, hit, err := p.cache.GetOrLoad(name, func() ([]byte, error) {
		return p.load(name)
	})
	if err != nil {
		return nil, err
	}
	p.metrics.PageCacheLookup(hit)
	return body, nil
}

// CleanupExpired drops stale cache entries so edited files are picked up.
func (p *Pages) CleanupExpired() {
	p.cache.CleanupExpired()
}

func (p *Pages) CacheSize() int {
	return p.cache.Size()
}

func (p *Pages) load(name string) ([]byte, error) {
	if filepath.Base(name) != name {
		return nil, errors.Wrapf(ErrPageNotFound, "invalid page name %q", name)
	}

	if p.dir != "" {
		body, err := os.ReadFile(filepath.Join(p.dir, name))
		if err == nil {
			return body, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, "read page %s", name)
		}
	}

	body, err := defaultPages.ReadFile("static/" + name)
	if err != nil {
		return nil, errors.Wrapf(ErrPageNotFound, "page %s", name)
	}
	return body, nil
}
