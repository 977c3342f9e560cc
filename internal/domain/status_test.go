package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveStatus(t *testing.T) {
	assert.Equal(t, StatusPublished, DeriveStatus(true))
	assert.Equal(t, StatusPending, DeriveStatus(false))
}

func TestDeriveFlag(t *testing.T) {
	assert.True(t, DeriveFlag(StatusPublished))
	assert.False(t, DeriveFlag(StatusPending))
	assert.False(t, DeriveFlag(StatusInProgress))
	assert.False(t, DeriveFlag(Status("garbage")))
}

func TestParseStatus(t *testing.T) {
	for _, s := range ValidContentStatuses {
		got, err := ParseStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	for _, raw := range []string{"", "Published", "in_progress", "done", "draft"} {
		_, err := ParseStatus(raw)
		assert.True(t, errors.Is(err, ErrInvalidStatus), "ParseStatus(%q) should fail", raw)
	}
}

func TestFlagStatusRoundTrip(t *testing.T) {
	t.Run("flags survive flag -> status -> flag for all four combinations", func(t *testing.T) {
		for _, es := range []bool{false, true} {
			for _, en := range []bool{false, true} {
				gotEs := DeriveFlag(DeriveStatus(es))
				gotEn := DeriveFlag(DeriveStatus(en))
				assert.Equal(t, es, gotEs)
				assert.Equal(t, en, gotEn)
			}
		}
	})

	t.Run("in-progress is lost through status -> flag -> status", func(t *testing.T) {
		got := DeriveStatus(DeriveFlag(StatusInProgress))
		assert.Equal(t, StatusPending, got)
		assert.NotEqual(t, StatusInProgress, got)
	})
}
