// Package services holds the object store contract and the listing logic
// that turns one bucket prefix into a directory listing with signed links.
package services

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/jnises/bitte/internal/models"
	"github.com/jnises/bitte/internal/resolver"
	"github.com/jnises/bitte/internal/utils"
)

// DefaultMaxPages caps the pagination loop per request. A store that keeps
// returning continuation tokens past this is treated as misbehaving.
const DefaultMaxPages = 1000

// ListerOptions configures a Lister. All fields are read-only after New.
type ListerOptions struct {
	// TTL is how long generated links stay valid.
	TTL time.Duration
	// MaxPages bounds pages fetched per List call. Zero means DefaultMaxPages.
	MaxPages int
	// Delimiter separates path segments in the bucket's key namespace.
	Delimiter string
}

// Lister enumerates the immediate children of a prefix and attaches a
// presigned GET URL to every object. It holds no per-request state; one
// Lister serves concurrent requests.
type Lister struct {
	store     ObjectStore
	ttl       time.Duration
	maxPages  int
	delimiter string
}

func NewLister(store ObjectStore, opts ListerOptions) *Lister {
	maxPages := opts.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	delimiter := opts.Delimiter
	if delimiter == "" {
		delimiter = "/"
	}
	return &Lister{
		store:     store,
		ttl:       opts.TTL,
		maxPages:  maxPages,
		delimiter: delimiter,
	}
}

// List enumerates prefix one level deep, following the store's continuation
// tokens until exhausted. Folders precede objects; within each group the
// store's order is preserved and pages are concatenated as fetched. A
// non-root prefix that matches nothing yields ErrPrefixNotFound; a prefix
// whose only content was its own folder marker is a valid empty listing.
func (l *Lister) List(ctx context.Context, prefix resolver.Prefix) (models.Listing, error) {
	base := string(prefix)
	listing := models.Listing{Prefix: base}
	sawEntry := false

	token := ""
	for page := 0; ; page++ {
		if page >= l.maxPages {
			return models.Listing{}, ErrTooManyPages
		}
		if err := ctx.Err(); err != nil {
			return models.Listing{}, err
		}

		res, err := l.store.ListPage(ctx, base, token)
		if err != nil {
			return models.Listing{}, &StoreUnavailableError{Err: err}
		}

		for _, cp := range res.CommonPrefixes {
			sawEntry = true
			rel, ok := strings.CutPrefix(cp, base)
			if !ok {
				slog.Warn("common prefix outside listed prefix", "prefix", base, "common", cp)
				continue
			}
			name := strings.TrimSuffix(rel, l.delimiter)
			if name == "" {
				continue
			}
			listing.Folders = append(listing.Folders, models.FolderInfo{
				Name:   name,
				Prefix: cp,
			})
		}

		for _, obj := range res.Objects {
			sawEntry = true
			if strings.HasSuffix(obj.Key, l.delimiter) {
				// Folder marker objects are not listable children.
				continue
			}
			name, ok := strings.CutPrefix(obj.Key, base)
			if !ok {
				slog.Warn("key outside listed prefix", "prefix", base, "key", obj.Key)
				continue
			}
			signed, err := l.store.SignGet(ctx, obj.Key, l.ttl)
			if err != nil {
				return models.Listing{}, &StoreUnavailableError{Err: err}
			}
			listing.Objects = append(listing.Objects, models.ObjectLink{
				Name:          name,
				Key:           obj.Key,
				Size:          obj.Size,
				FormattedSize: utils.FormatFileSize(obj.Size),
				LastModified:  obj.LastModified,
				URL:           signed.String(),
				ExpiresAt:     time.Now().Add(l.ttl),
			})
		}

		token = res.NextToken
		if token == "" {
			break
		}
	}

	if base != "" && !sawEntry {
		return models.Listing{}, ErrPrefixNotFound
	}
	return listing, nil
}

// Presign signs a GET for a single key, for redirecting object requests.
func (l *Lister) Presign(ctx context.Context, key string) (*url.URL, time.Time, error) {
	signed, err := l.store.SignGet(ctx, key, l.ttl)
	if err != nil {
		return nil, time.Time{}, &StoreUnavailableError{Err: err}
	}
	return signed, time.Now().Add(l.ttl), nil
}
