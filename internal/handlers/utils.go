package handlers

import (
	"strings"

	"github.com/jnises/bitte/internal/models"
)

// ParentPrefix returns the prefix one level up from a delimiter-terminated
// prefix. The second result is false for the bucket root, which has no
// parent. The parent of a top-level prefix is the root ("").
func ParentPrefix(prefix, delimiter string) (string, bool) {
	trimmed, ok := strings.CutSuffix(prefix, delimiter)
	if !ok {
		return "", false
	}
	if i := strings.LastIndex(trimmed, delimiter); i >= 0 {
		return trimmed[:i+len(delimiter)], true
	}
	return "", true
}

// Breadcrumbs splits a prefix into navigation crumbs, one per segment, each
// carrying the cumulative prefix up to and including that segment.
func Breadcrumbs(prefix, delimiter string) []models.Breadcrumb {
	if prefix == "" {
		return nil
	}
	var crumbs []models.Breadcrumb
	path := ""
	for _, part := range strings.Split(strings.TrimSuffix(prefix, delimiter), delimiter) {
		if part == "" {
			continue
		}
		path += part + delimiter
		crumbs = append(crumbs, models.Breadcrumb{Name: part, Path: path})
	}
	return crumbs
}
