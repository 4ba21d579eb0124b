package remote

import (
	"testing"

	"github.com/LeJamon/goswtc/internal/amount"
	"github.com/LeJamon/goswtc/internal/tx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathCache(t *testing.T) {
	c, err := NewPathCache(2)
	require.NoError(t, err)

	// sha1("[]")
	assert.Equal(t, "97d170e1550eee4afc0af065b78cda302a97674c", PathKey([]byte("[]")))

	k1 := c.Put([]byte(`[[{"currency":"CNY"}]]`), tx.PathChoice{Choice: amount.Scalar("1")})
	k2 := c.Put([]byte(`[]`), tx.PathChoice{Choice: amount.Scalar("2")})
	assert.Len(t, k1, 40)

	got, ok := c.Path(k1)
	require.True(t, ok)
	assert.Equal(t, amount.Scalar("1"), got.Choice)

	c.Put([]byte(`[[]]`), tx.PathChoice{})
	assert.Equal(t, 2, c.Len())
	_, ok = c.Path(k2)
	assert.False(t, ok, "least recently used entry evicted")

	_, err = NewPathCache(0)
	assert.Error(t, err)
}
