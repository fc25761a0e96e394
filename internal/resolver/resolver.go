// Package resolver turns raw request paths into validated bucket prefixes.
package resolver

import (
	"errors"
	"net/url"
	"strings"
)

var (
	// ErrTraversal is returned for paths containing "." or ".." segments.
	ErrTraversal = errors.New("path traversal attempt")
	// ErrInvalidEncoding is returned when percent-decoding the path fails.
	ErrInvalidEncoding = errors.New("invalid path encoding")
)

// Prefix is a normalized key prefix inside the bucket's flat namespace.
// It is either empty (bucket root) or terminated by the delimiter.
type Prefix string

// Resolved is the outcome of resolving a request path.
type Resolved struct {
	// Key is the normalized path with no leading or trailing delimiter.
	// Empty for the bucket root.
	Key string
	// Dir reports whether the request addressed a virtual directory
	// (trailing delimiter, or the root) rather than an object.
	Dir bool

	delimiter string
}

// Prefix returns the listing prefix for a directory request: the key
// terminated by the delimiter, or "" for the root.
func (r Resolved) Prefix() Prefix {
	if r.Key == "" {
		return ""
	}
	return Prefix(r.Key + r.delimiter)
}

// Resolve decodes and normalizes the raw path component of a request URL.
// It strips a single leading delimiter, collapses repeated delimiters and
// rejects any "." or ".." segment so that a malicious path is never
// forwarded to the store. Pure; performs no I/O.
func Resolve(rawPath, delimiter string) (Resolved, error) {
	decoded, err := url.PathUnescape(rawPath)
	if err != nil {
		return Resolved{}, ErrInvalidEncoding
	}

	dir := decoded == "" || strings.HasSuffix(decoded, delimiter)

	var segments []string
	for _, seg := range strings.Split(decoded, delimiter) {
		switch seg {
		case "":
			// Leading, trailing or repeated delimiter.
			continue
		case ".", "..":
			return Resolved{}, ErrTraversal
		}
		segments = append(segments, seg)
	}

	return Resolved{
		Key:       strings.Join(segments, delimiter),
		Dir:       dir || len(segments) == 0,
		delimiter: delimiter,
	}, nil
}
