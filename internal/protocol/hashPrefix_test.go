package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPrefixes(t *testing.T) {
	assert.Equal(t, uint32(0x53545800), HashPrefixTxSign)
	assert.Equal(t, uint32(0x54584E00), HashPrefixTransactionID)
	assert.Equal(t, uint32(0x534D5400), HashPrefixTxMultiSign)
}
