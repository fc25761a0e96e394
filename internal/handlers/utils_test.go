package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jnises/bitte/internal/models"
)

func TestParentPrefix(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		want   string
		wantOK bool
	}{
		{"root has no parent", "", "", false},
		{"top level folder", "asdf/", "", true},
		{"nested folder", "asdf/qwer/", "asdf/", true},
		{"deeply nested", "a/b/c/", "a/b/", true},
		{"not delimiter terminated", "asdf", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParentPrefix(tt.prefix, "/")
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBreadcrumbs(t *testing.T) {
	assert.Nil(t, Breadcrumbs("", "/"))

	crumbs := Breadcrumbs("a/sub/deeper/", "/")
	assert.Equal(t, []models.Breadcrumb{
		{Name: "a", Path: "a/"},
		{Name: "sub", Path: "a/sub/"},
		{Name: "deeper", Path: "a/sub/deeper/"},
	}, crumbs)
}
