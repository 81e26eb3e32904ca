package remittance

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/remittest"
	"github.com/iov-one/remit/remittest/assert"
)

func TestGenesis(t *testing.T) {
	owner := remittest.RandomAddr(t)

	cases := map[string]struct {
		genesis string
		wantErr *errors.Error
	}{
		"valid configuration": {
			genesis: fmt.Sprintf(`{"conf": {"remittance": {"owner": %q, "paused": true, "nonce": 7}}}`, owner),
		},
		"missing configuration": {
			genesis: `{"conf": {}}`,
			wantErr: errors.ErrNotFound,
		},
		"missing owner": {
			genesis: `{"conf": {"remittance": {"paused": true}}}`,
			wantErr: errors.ErrEmpty,
		},
		"null owner": {
			genesis: `{"conf": {"remittance": {"owner": "0000000000000000000000000000000000000000"}}}`,
			wantErr: errors.ErrInput,
		},
		"malformed owner": {
			genesis: `{"conf": {"remittance": {"owner": "zz"}}}`,
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts remit.Options
			assert.Nil(t, json.Unmarshal([]byte(tc.genesis), &opts))

			db := remittest.MemStore()
			err := Initializer{}.FromGenesis(opts, db)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr != nil {
				return
			}

			c, err := Load(db)
			assert.Nil(t, err)
			assert.Equal(t, owner, c.Owner())
			assert.Equal(t, true, c.IsPaused())
			assert.Equal(t, ContractAddress(owner, 7), c.Address())
		})
	}
}
