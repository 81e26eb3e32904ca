package remittance

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/gconf"
)

// Initializer fulfils the Initializer interface to construct the contract
// from the genesis file. The configuration is read from conf.remittance:
//
//   "conf": {
//     "remittance": {"owner": "<hex address>", "paused": false, "nonce": 0}
//   }
type Initializer struct{}

var _ remit.Initializer = Initializer{}

// FromGenesis validates the configuration and saves it to the database.
func (Initializer) FromGenesis(opts remit.Options, db remit.KVStore) error {
	return gconf.InitConfig(db, opts, pkg, &Configuration{})
}
