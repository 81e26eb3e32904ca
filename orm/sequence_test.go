package orm

import (
	"bytes"
	"testing"

	"github.com/iov-one/remit/remittest"
	"github.com/iov-one/remit/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	cases := map[string]struct {
		bucket     string
		name       string
		increments uint64
	}{
		"a few":       {"events", "id", 22},
		"other name":  {"events", "nonce", 11},
		"many values": {"wallets", "id", 300},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			s := NewSequence(tc.bucket, tc.name)

			latest, err := s.Latest(db)
			require.NoError(t, err)
			assert.Equal(t, uint64(0), latest)

			var last []byte
			for i := uint64(1); i <= tc.increments; i++ {
				raw, err := s.NextVal(db)
				require.NoError(t, err)
				// raw bytes must grow as well, we use them to index stuff
				assert.Equal(t, 1, bytes.Compare(raw, last))
				assert.Equal(t, remittest.SequenceID(i), raw)
				last = raw
			}

			latest, err = s.Latest(db)
			require.NoError(t, err)
			assert.Equal(t, tc.increments, latest)

			next, err := s.NextInt(db)
			require.NoError(t, err)
			assert.Equal(t, tc.increments+1, next)
		})
	}
}

func TestSequencesAreIndependent(t *testing.T) {
	db := store.MemStore()
	a := NewSequence("events", "id")
	b := NewSequence("events", "other")

	_, err := a.NextInt(db)
	require.NoError(t, err)
	_, err = a.NextInt(db)
	require.NoError(t, err)

	val, err := b.NextInt(db)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), val)
}
