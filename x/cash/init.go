package cash

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from genesis file
// use remit.Address, so address in hex, not base64
type GenesisAccount struct {
	Address remit.Address `json:"address"`
	Coins   uint64        `json:"coins"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ remit.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts remit.Options, kv remit.KVStore) error {
	accts := []GenesisAccount{}
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return err
	}
	ctrl := NewController()
	for i, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		if err := ctrl.IssueCoins(kv, acct.Address, acct.Coins); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
	}
	return nil
}
