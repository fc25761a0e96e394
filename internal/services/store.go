package services

import (
	"context"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// DefaultPageSize is the number of keys requested per listing page.
const DefaultPageSize = 1000

// ObjectAttrs describes one object returned by a listing page.
type ObjectAttrs struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// Page is a single page of a delimited listing. CommonPrefixes are the
// immediate child prefixes; Objects are the keys directly under the
// requested prefix. NextToken is empty when no further pages exist.
type Page struct {
	CommonPrefixes []string
	Objects        []ObjectAttrs
	NextToken      string
}

// ObjectStore is the narrow contract the listing logic needs from a storage
// provider: one page of a delimited enumeration, and a presigned GET URL.
type ObjectStore interface {
	ListPage(ctx context.Context, prefix, continuationToken string) (Page, error)
	SignGet(ctx context.Context, key string, ttl time.Duration) (*url.URL, error)
}

// StoreOptions configures the production MinIO-backed store.
type StoreOptions struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	Delimiter string
	PageSize  int
}

// MinioStore implements ObjectStore on top of minio-go's low level API.
type MinioStore struct {
	core      *minio.Core
	bucket    string
	delimiter string
	pageSize  int
}

// NewMinioStore connects to an S3-compatible endpoint. With empty static
// keys the usual AWS credential sources are consulted instead.
func NewMinioStore(opts StoreOptions) (*MinioStore, error) {
	creds := credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, "")
	if opts.AccessKey == "" {
		creds = credentials.NewChainCredentials([]credentials.Provider{
			&credentials.EnvAWS{},
			&credentials.FileAWSCredentials{},
			&credentials.IAM{},
		})
	}

	core, err := minio.NewCore(opts.Endpoint, &minio.Options{
		Creds:  creds,
		Secure: opts.UseSSL,
		Region: opts.Region,
	})
	if err != nil {
		return nil, err
	}

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &MinioStore{
		core:      core,
		bucket:    opts.Bucket,
		delimiter: opts.Delimiter,
		pageSize:  pageSize,
	}, nil
}

// ListPage fetches one ListObjectsV2 page. The continuation token is the
// store's own opaque cursor, passed back verbatim.
func (s *MinioStore) ListPage(ctx context.Context, prefix, continuationToken string) (Page, error) {
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}

	res, err := s.core.ListObjectsV2(s.bucket, prefix, "", continuationToken, s.delimiter, s.pageSize)
	if err != nil {
		return Page{}, err
	}

	page := Page{NextToken: res.NextContinuationToken}
	for _, cp := range res.CommonPrefixes {
		page.CommonPrefixes = append(page.CommonPrefixes, cp.Prefix)
	}
	for _, obj := range res.Contents {
		page.Objects = append(page.Objects, ObjectAttrs{
			Key:          obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}
	return page, nil
}

// SignGet produces a presigned GET URL the store's own endpoint will honor
// without further authentication, valid for ttl from now.
func (s *MinioStore) SignGet(ctx context.Context, key string, ttl time.Duration) (*url.URL, error) {
	return s.core.PresignedGetObject(ctx, s.bucket, key, ttl, nil)
}
