package collections

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type ordinal int

func (o ordinal) Ordinal() int { return int(o) }

func TestInOrder(t *testing.T) {
	require.True(t, InOrder([]ordinal{0, 1, 2}))
	require.True(t, InOrder([]ordinal{}))
	require.False(t, InOrder([]ordinal{1, 0}))
}
