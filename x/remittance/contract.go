package remittance

import (
	"context"
	"sync"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/gconf"
	"github.com/iov-one/remit/x/cash"
	"github.com/tendermint/tendermint/libs/log"
)

// Config is what the owner decides when constructing a contract.
type Config struct {
	Paused bool
	Nonce  uint64
}

// Result is returned by every successful operation.
type Result struct {
	Events []Event
}

// Contract is a single remittance instance on top of a store.
//
// All operations are serialized. Each one runs in a cache wrap of the store
// that is written only if the operation succeeds, so a failed operation
// leaves no trace.
type Contract struct {
	mu   sync.Mutex
	db   remit.CacheableKVStore
	conf Configuration

	bank     cash.Controller
	deposit  DepositHandler
	withdraw WithdrawHandler
	events   eventLog

	subMu sync.Mutex
	subs  map[int]chan<- Event
	subID int
}

// Construct creates a new contract in db, owned by the caller set in the
// context. A store can hold a single contract.
func Construct(ctx context.Context, db remit.CacheableKVStore, c Config) (*Contract, error) {
	owner, ok := remit.GetCaller(ctx)
	if !ok {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no caller to own the contract")
	}

	switch _, err := loadConf(db); {
	case err == nil:
		return nil, errors.Wrap(errors.ErrDuplicate, "contract already constructed")
	case !errors.ErrNotFound.Is(err):
		return nil, err
	}

	conf := Configuration{
		Owner:  owner,
		Paused: c.Paused,
		Nonce:  c.Nonce,
	}
	cache := db.CacheWrap()
	if err := gconf.Save(cache, pkg, &conf); err != nil {
		cache.Discard()
		return nil, errors.Wrap(err, "cannot save configuration")
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "cannot write configuration")
	}

	remit.GetLogger(ctx).Info("contract constructed",
		"module", pkg,
		"owner", owner,
		"address", conf.Address(),
		"paused", conf.Paused)
	return newContract(db, conf), nil
}

// Load returns the contract previously constructed in db.
func Load(db remit.CacheableKVStore) (*Contract, error) {
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	return newContract(db, *conf), nil
}

func newContract(db remit.CacheableKVStore, conf Configuration) *Contract {
	bank := cash.NewController()
	return &Contract{
		db:       db,
		conf:     conf,
		bank:     bank,
		deposit:  NewDepositHandler(bank),
		withdraw: NewWithdrawHandler(bank),
		events:   newEventLog(),
		subs:     make(map[int]chan<- Event),
	}
}

// Owner returns the identity allowed to deposit.
func (c *Contract) Owner() remit.Address {
	return c.conf.Owner.Clone()
}

// IsPaused returns the paused flag. It has no effect on any operation.
func (c *Contract) IsPaused() bool {
	return c.conf.Paused
}

// Address returns the address of the account holding the escrowed value.
func (c *Contract) Address() remit.Address {
	return c.conf.Address()
}

// GenerateHash returns the key an escrow for the recipient must be
// deposited under, to be redeemed with both secrets.
func (c *Contract) GenerateHash(recipient remit.Address, secretA, secretB []byte) EscrowKey {
	return GenerateHash(c.conf.Address(), recipient, secretA, secretB)
}

// Deposit locks the value for the recipient under the key. Only the owner
// can deposit. The value is taken from the owner account.
func (c *Contract) Deposit(ctx context.Context, msg *DepositMsg) (*Result, error) {
	ctx = remit.WithLogInfo(ctx, "module", pkg, "op", "deposit", "key", msg.Key, "amount", msg.Amount)
	return c.execute(ctx, func(db remit.KVStore) ([]Event, error) {
		return c.deposit.Deliver(ctx, db, msg)
	})
}

// Withdraw pays out the escrow locked for the caller with both secrets.
func (c *Contract) Withdraw(ctx context.Context, msg *WithdrawMsg) (*Result, error) {
	ctx = remit.WithLogInfo(ctx, "module", pkg, "op", "withdraw")
	return c.execute(ctx, func(db remit.KVStore) ([]Event, error) {
		return c.withdraw.Deliver(ctx, db, msg)
	})
}

// execute runs fn in isolation. All changes are written only if fn
// succeeds. Subscribers receive the events in the order the operations were
// committed.
func (c *Contract) execute(ctx context.Context, fn func(remit.KVStore) ([]Event, error)) (*Result, error) {
	logger := remit.GetLogger(ctx)

	c.mu.Lock()
	events, err := c.apply(fn)
	if err != nil {
		c.mu.Unlock()
		logger.Info("operation rejected", "err", err)
		return nil, err
	}
	// Hand over to the subscribers lock before releasing the state lock, so
	// that no later operation can notify first.
	c.subMu.Lock()
	c.mu.Unlock()
	c.notify(logger, events)
	c.subMu.Unlock()

	for _, e := range events {
		logger.Info("operation committed", "event", e.Name())
	}
	return &Result{Events: events}, nil
}

// apply must be called with c.mu held.
func (c *Contract) apply(fn func(remit.KVStore) ([]Event, error)) (events []Event, err error) {
	cache := c.db.CacheWrap()
	defer func() {
		if err != nil {
			cache.Discard()
		}
	}()
	defer errors.Recover(&err)

	events, err = fn(cache)
	if err != nil {
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "cannot write changes")
	}
	return events, nil
}

// Lookup returns the escrow stored under the key. A key that was never used
// returns an empty escrow.
func (c *Contract) Lookup(key EscrowKey) (*Escrow, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	var escrow Escrow
	switch err := c.deposit.bucket.One(c.db, key, &escrow); {
	case err == nil:
		return &escrow, nil
	case errors.ErrNotFound.Is(err):
		return &Escrow{}, nil
	default:
		return nil, err
	}
}

// Balance returns the value held by the contract, the sum of all escrows.
func (c *Contract) Balance() (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bank.Balance(c.db, c.conf.Address())
}

// AccountBalance returns the value held by any account.
func (c *Contract) AccountBalance(addr remit.Address) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bank.Balance(c.db, addr)
}

// Events returns all events emitted by the contract, oldest first.
func (c *Contract) Events() ([]Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.events.All(c.db)
}

// Subscribe registers a channel that receives every event emitted after
// this call, in the same order as Events returns them. Delivery does not
// block: when the channel is full the event is skipped, use a buffered
// channel. The returned function cancels the subscription.
func (c *Contract) Subscribe(ch chan<- Event) (cancel func()) {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	id := c.subID
	c.subID++
	c.subs[id] = ch
	return func() {
		c.subMu.Lock()
		delete(c.subs, id)
		c.subMu.Unlock()
	}
}

// notify must be called with c.subMu held.
func (c *Contract) notify(logger log.Logger, events []Event) {
	for _, e := range events {
		for id, ch := range c.subs {
			select {
			case ch <- e:
			default:
				logger.Error("subscriber too slow, event skipped", "subscriber", id, "event", e.Name())
			}
		}
	}
}
