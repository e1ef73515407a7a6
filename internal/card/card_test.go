package card

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReversedLeavesOriginalUntouched(t *testing.T) {
	c := Card{ID: "major_arcana.00", ImagePath: "/img/fool.png"}

	r := c.Reversed()

	require.True(t, r.IsReversed)
	require.False(t, c.IsReversed)
	require.Equal(t, c.ImagePath, r.ImagePath)
	require.Equal(t, "reversed", r.Orientation())
	require.Equal(t, "upright", c.Orientation())
}

func TestIsMinor(t *testing.T) {
	require.True(t, Card{Type: "minor_arcana"}.IsMinor())
	require.False(t, Card{Type: "major_arcana"}.IsMinor())
}
