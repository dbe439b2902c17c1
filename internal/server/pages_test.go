package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.ozon.dev/safariproxd/webserver/pkg/cache"
)

func TestPages_Page(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, IndexPage), []byte("custom index"), 0o600))

	pages := NewPages(dir, cache.Config{MaxSize: 4, TTL: time.Minute}, nil)

	tests := []struct {
		name    string
		page    string
		check   func(t *testing.T, body []byte)
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name: "Success_FromDirectory",
			page: IndexPage,
			check: func(t *testing.T, body []byte) {
				assert.Equal(t, "custom index", string(body))
			},
			wantErr: assert.NoError,
		},
		{
			name: "Success_EmbeddedFallback",
			page: NotFoundPage,
			check: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), "Oops!")
			},
			wantErr: assert.NoError,
		},
		{
			name: "Fail_Unknown",
			page: "missing.html",
			wantErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorIs(t, err, ErrPageNotFound)
			},
		},
		{
			name: "Fail_PathTraversal",
			page: "../secret.html",
			wantErr: func(t assert.TestingT, err error, _ ...interface{}) bool {
				return assert.ErrorIs(t, err, ErrPageNotFound)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			body, err := pages.Page(tt.page)
			if !tt.wantErr(t, err) || err != nil {
				return
			}
			tt.check(t, body)
		})
	}
}

func TestPages_Cached(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, IndexPage)
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o600))

	pages := NewPages(dir, cache.Config{MaxSize: 4}, nil)
	body, err := pages.Page(IndexPage)
	require.NoError(t, err)
	assert.Equal(t, "v1", string(body))

	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o600))
	body, err = pages.Page(IndexPage)
	require.NoError(t, err)
	assert.Equal(t, "v1", string(body), "second read must come from cache")
	assert.Equal(t, 1, pages.CacheSize())
}
