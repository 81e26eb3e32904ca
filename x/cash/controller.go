package cash

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/orm"
)

// Controller is the functionality needed by other extensions to move value
// between wallets.
type Controller interface {
	Balance(store remit.ReadOnlyKVStore, addr remit.Address) (uint64, error)
	MoveCoins(store remit.KVStore, src, dest remit.Address, amount uint64) error
	IssueCoins(store remit.KVStore, dest remit.Address, amount uint64) error
}

// BaseController is the default implementation of Controller.
type BaseController struct {
	bucket orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns a controller storing wallets in the default bucket.
func NewController() BaseController {
	return BaseController{bucket: NewBucket()}
}

// Balance returns the amount held by a given address. An address that never
// received anything holds zero.
func (c BaseController) Balance(store remit.ReadOnlyKVStore, addr remit.Address) (uint64, error) {
	if err := addr.Validate(); err != nil {
		return 0, errors.Wrap(err, "address")
	}
	var w Wallet
	switch err := c.bucket.One(store, addr, &w); {
	case err == nil:
		return w.Coins, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, errors.Wrap(err, "cannot load wallet")
	}
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't have sufficient coins, it fails.
func (c BaseController) MoveCoins(store remit.KVStore, src, dest remit.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "non positive amount")
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}

	have, err := c.Balance(store, src)
	if err != nil {
		return errors.Wrap(err, "source")
	}
	if have < amount {
		return errors.Wrapf(errors.ErrInsufficientAmount, "have %d, want %d", have, amount)
	}
	if src.Equals(dest) {
		return nil
	}

	got, err := c.Balance(store, dest)
	if err != nil {
		return errors.Wrap(err, "destination")
	}
	if got+amount < got {
		return errors.Wrap(errors.ErrOverflow, "destination wallet")
	}

	if err := c.save(store, src, have-amount); err != nil {
		return err
	}
	return c.save(store, dest, got+amount)
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
func (c BaseController) IssueCoins(store remit.KVStore, dest remit.Address, amount uint64) error {
	got, err := c.Balance(store, dest)
	if err != nil {
		return err
	}
	if got+amount < got {
		return errors.Wrap(errors.ErrOverflow, "wallet")
	}
	return c.save(store, dest, got+amount)
}

// save writes the wallet state, removing wallets that became empty.
func (c BaseController) save(store remit.KVStore, addr remit.Address, coins uint64) error {
	if coins == 0 {
		err := c.bucket.Delete(store, addr)
		if err != nil && !errors.ErrNotFound.Is(err) {
			return errors.Wrap(err, "cannot delete wallet")
		}
		return nil
	}
	if err := c.bucket.Put(store, addr, &Wallet{Coins: coins}); err != nil {
		return errors.Wrap(err, "cannot save wallet")
	}
	return nil
}
