package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		s, err := Open(TypeMemory, "")
		require.NoError(t, err)
		assert.IsType(t, &MemoryStore{}, s)
		assert.NoError(t, s.Close())
	})

	t.Run("unknown type", func(t *testing.T) {
		s, err := Open("redis", "")
		assert.Error(t, err)
		assert.Nil(t, s)
	})
}
