package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersioned_GetSet(t *testing.T) {
	c := New[[]string]()

	_, v, ok := c.Get("all")
	assert.False(t, ok)
	assert.Equal(t, uint64(1), v)

	assert.True(t, c.Set("all", v, []string{"a"}))
	got, _, ok := c.Get("all")
	assert.True(t, ok)
	assert.Equal(t, []string{"a"}, got)
}

func TestVersioned_InvalidateDropsEntries(t *testing.T) {
	c := New[int]()
	c.Set("k", c.Version(), 1)

	next := c.Invalidate()
	assert.Equal(t, uint64(2), next)

	_, v, ok := c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, next, v)
}

func TestVersioned_StaleSetIsDropped(t *testing.T) {
	c := New[int]()
	_, v, _ := c.Get("k")

	c.Invalidate()

	assert.False(t, c.Set("k", v, 42), "value read before the write must not be cached")
	_, _, ok := c.Get("k")
	assert.False(t, ok)
}

func TestETagMatches(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		version uint64
		want    bool
	}{
		{"empty", "", 3, false},
		{"same weak tag", ETag(3), 3, true},
		{"strong form", `"v3"`, 3, true},
		{"other version", ETag(2), 3, false},
		{"list", `W/"v1", W/"v3"`, 3, true},
		{"wildcard", "*", 9, true},
		{"garbage", `W/"abc"`, 3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.header, tt.version))
		})
	}
}
