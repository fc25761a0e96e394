// Package models contains data structures shared between the listing
// service and the handlers.
package models

import "time"

// FolderInfo is one virtual subdirectory (a common prefix one level deep).
type FolderInfo struct {
	Name   string `json:"name"`
	Prefix string `json:"prefix"`
}

// ObjectLink is a leaf object together with its presigned retrieval URL.
type ObjectLink struct {
	Name          string    `json:"name"`
	Key           string    `json:"key"`
	Size          int64     `json:"size"`
	FormattedSize string    `json:"formatted_size"`
	LastModified  time.Time `json:"last_modified"`
	URL           string    `json:"url"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// Listing is the assembled result of enumerating one prefix. Folders come
// before objects; within each group the store's returned order is preserved.
type Listing struct {
	Prefix  string       `json:"prefix"`
	Folders []FolderInfo `json:"folders"`
	Objects []ObjectLink `json:"objects"`
}

// Breadcrumb for navigation
type Breadcrumb struct {
	Name string `json:"name"`
	Path string `json:"path"`
}
