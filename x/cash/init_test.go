package cash

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/remittest"
	"github.com/iov-one/remit/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitState(t *testing.T) {
	addr := remittest.RandomAddr(t)
	bz, err := json.Marshal([]GenesisAccount{{Address: addr, Coins: 150}})
	require.NoError(t, err)

	// hardcode
	bz2 := []byte(`[{"address":"0102030405060708090021222324252627282930", "coins": 7},
		{"address":"0102030405060708090021222324252627282930", "coins": 3}]`)
	addr2 := remit.Address{1, 2, 3, 4, 5, 6, 7, 8, 9, 0, 0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27, 0x28, 0x29, 0x30}

	cases := map[string]struct {
		opts    remit.Options
		isError bool
		acct    remit.Address
		coins   uint64
	}{
		"no prob if no data":  {remit.Options{}, false, nil, 0},
		"other section":       {remit.Options{"foo": []byte(`"bar"`)}, false, nil, 0},
		"bad format":          {remit.Options{"cash": []byte(`{"address": "1234"}`)}, true, nil, 0},
		"missing address":     {remit.Options{"cash": []byte(`[{"coins": 123}]`)}, true, nil, 0},
		"a real account":      {remit.Options{"cash": bz}, false, addr, 150},
		"accounts are summed": {remit.Options{"cash": bz2}, false, addr2, 10},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			kv := store.MemStore()
			err := Initializer{}.FromGenesis(tc.opts, kv)
			if tc.isError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			if tc.acct != nil {
				got, err := NewController().Balance(kv, tc.acct)
				require.NoError(t, err)
				assert.Equal(t, tc.coins, got)
			}
		})
	}
}
