package remittance

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/orm"
	amino "github.com/tendermint/go-amino"
)

// cdc serializes everything this package stores. Events are stored as an
// interface and must be registered.
var cdc = amino.NewCodec()

func init() {
	cdc.RegisterInterface((*Event)(nil), nil)
	cdc.RegisterConcrete(DepositLogged{}, "remittance/DepositLogged", nil)
	cdc.RegisterConcrete(WithdrawalLogged{}, "remittance/WithdrawalLogged", nil)
}

// Event is an append only record of a successful operation.
type Event interface {
	orm.Model
	// Name returns the event kind.
	Name() string
}

// DepositLogged is emitted by every successful deposit.
type DepositLogged struct {
	Sender    remit.Address `json:"sender"`
	Amount    uint64        `json:"amount"`
	Key       EscrowKey     `json:"key"`
	Recipient remit.Address `json:"recipient"`
}

var _ Event = DepositLogged{}

func (DepositLogged) Name() string { return "DepositLogged" }

func (e DepositLogged) Validate() error {
	if err := e.Sender.Validate(); err != nil {
		return errors.Wrap(err, "sender")
	}
	if err := e.Recipient.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	if e.Amount == 0 {
		return errors.Wrap(errors.ErrAmount, "amount")
	}
	return e.Key.Validate()
}

// WithdrawalLogged is emitted by every successful withdrawal.
type WithdrawalLogged struct {
	Sender remit.Address `json:"sender"`
	Key    EscrowKey     `json:"key"`
	Amount uint64        `json:"amount"`
}

var _ Event = WithdrawalLogged{}

func (WithdrawalLogged) Name() string { return "WithdrawalLogged" }

func (e WithdrawalLogged) Validate() error {
	if err := e.Sender.Validate(); err != nil {
		return errors.Wrap(err, "sender")
	}
	if e.Amount == 0 {
		return errors.Wrap(errors.ErrAmount, "amount")
	}
	return e.Key.Validate()
}

// eventLog stores events in the order they were emitted.
type eventLog struct {
	bucket orm.ModelBucket
	seq    orm.Sequence
}

func newEventLog() eventLog {
	return eventLog{
		bucket: orm.NewModelBucket(eventBucket, cdc),
		seq:    orm.NewSequence(eventBucket, "id"),
	}
}

// Append stores the event under the next sequence value.
func (l eventLog) Append(db remit.KVStore, e Event) error {
	id, err := l.seq.NextVal(db)
	if err != nil {
		return errors.Wrap(err, "event sequence")
	}
	if err := l.bucket.Put(db, id, e); err != nil {
		return errors.Wrapf(err, "cannot store %s event", e.Name())
	}
	return nil
}

// All returns all events ever stored, oldest first.
func (l eventLog) All(db remit.ReadOnlyKVStore) ([]Event, error) {
	var events []Event
	if _, err := l.bucket.List(db, &events); err != nil {
		return nil, errors.Wrap(err, "cannot list events")
	}
	return events, nil
}
