package cash

import (
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/orm"
)

// BucketName is where we store the wallets
const BucketName = "cash"

// Wallet holds the value units owned by a single address.
type Wallet struct {
	Coins uint64
}

var _ orm.Model = (*Wallet)(nil)

// Validate rejects empty wallets, those are removed from the store instead.
func (w *Wallet) Validate() error {
	if w.Coins == 0 {
		return errors.Wrap(errors.ErrEmpty, "wallet")
	}
	return nil
}

// NewBucket returns a bucket for managing wallets.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, nil)
}
