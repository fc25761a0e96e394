package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRoot(t *testing.T) {
	for _, raw := range []string{"", "/"} {
		res, err := Resolve(raw, "/")
		require.NoError(t, err, "raw=%q", raw)
		assert.Equal(t, "", res.Key)
		assert.True(t, res.Dir)
		assert.Equal(t, Prefix(""), res.Prefix())
	}
}

func TestResolveNormalizes(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantKey    string
		wantDir    bool
		wantPrefix Prefix
	}{
		{"object at root", "/b.txt", "b.txt", false, ""},
		{"directory", "/a/", "a", true, "a/"},
		{"nested directory", "/a/sub/", "a/sub", true, "a/sub/"},
		{"nested object", "/a/file1.txt", "a/file1.txt", false, ""},
		{"no leading delimiter", "a/", "a", true, "a/"},
		{"repeated delimiters", "//a///sub//", "a/sub", true, "a/sub/"},
		{"percent encoded", "/a%20b/", "a b", true, "a b/"},
		{"encoded delimiter ends dir", "/a%2F", "a", true, "a/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Resolve(tt.raw, "/")
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, res.Key)
			assert.Equal(t, tt.wantDir, res.Dir)
			if tt.wantDir {
				assert.Equal(t, tt.wantPrefix, res.Prefix())
			}
		})
	}
}

func TestResolveRejectsDotSegments(t *testing.T) {
	tests := []string{
		"/..",
		"/../",
		"/a/../../etc",
		"/a/..",
		"/./a",
		"/a/./b",
		"/%2e%2e/",
		"/a/%2E%2E/b",
		"/%2e/",
	}
	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			_, err := Resolve(raw, "/")
			assert.ErrorIs(t, err, ErrTraversal)
		})
	}
}

func TestResolveRejectsBadEncoding(t *testing.T) {
	for _, raw := range []string{"/a%zz", "/%", "/a%2"} {
		_, err := Resolve(raw, "/")
		assert.ErrorIs(t, err, ErrInvalidEncoding, "raw=%q", raw)
	}
}

// Resolving the prefix a resolution produced must yield the same prefix.
func TestResolveIdempotent(t *testing.T) {
	for _, raw := range []string{"", "/", "/a/", "/a/sub/", "//a//b//", "/a%20b/"} {
		first, err := Resolve(raw, "/")
		require.NoError(t, err)
		second, err := Resolve(string(first.Prefix()), "/")
		require.NoError(t, err)
		assert.Equal(t, first.Prefix(), second.Prefix(), "raw=%q", raw)
	}
}
