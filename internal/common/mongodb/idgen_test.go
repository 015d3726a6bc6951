package mongodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectIDGenerator_RoundTripsThroughParseID(t *testing.T) {
	id, err := NewObjectIDGenerator().NewID()
	require.NoError(t, err)
	assert.Len(t, id, 24)

	oid, ok := ParseID(id)
	require.True(t, ok)
	assert.Equal(t, id, oid.Hex())
}

func TestParseID_RejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "123", "8c0b6f1e-2f44-4c8b-9a51-2c1f5f3b7d10", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		_, ok := ParseID(in)
		assert.False(t, ok, in)
	}
}
