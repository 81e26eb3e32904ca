package remittance

import (
	"encoding/binary"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/orm"
)

const (
	// pkg is the name configuration is stored under.
	pkg = "remittance"

	escrowBucket = "escrow"
	eventBucket  = "events"
)

// Escrow is a single ledger entry: value locked for a recipient.
type Escrow struct {
	Amount    uint64        `json:"amount"`
	Recipient remit.Address `json:"recipient"`
}

var _ orm.Model = (*Escrow)(nil)

// Validate ensures the escrow belongs to someone. A zero amount is valid,
// that is the state of an escrow after the withdrawal.
func (e *Escrow) Validate() error {
	if err := e.Recipient.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	return nil
}

// IsActive returns true if the escrow still holds value.
func (e *Escrow) IsActive() bool {
	return e.Amount > 0
}

// NewEscrowBucket returns the bucket escrows are stored in, by key.
func NewEscrowBucket() orm.ModelBucket {
	return orm.NewModelBucket(escrowBucket, cdc)
}

// Configuration is the state of the contract that is not part of the ledger.
// It is written once when the contract is constructed.
type Configuration struct {
	// Owner is the only identity allowed to deposit.
	Owner remit.Address `json:"owner"`
	// Paused is stored and exposed as is. It does not gate any operation.
	Paused bool `json:"paused"`
	// Nonce tells apart the contracts of the same owner.
	Nonce uint64 `json:"nonce"`
}

// Validate ensures the configuration has an owner.
func (c *Configuration) Validate() error {
	if err := c.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if c.Owner.IsZero() {
		return errors.Wrap(errors.ErrInput, "owner cannot be the null identity")
	}
	return nil
}

// Address returns the address of the contract account. It holds the value
// of all escrows and separates the keys of different contract instances.
func (c *Configuration) Address() remit.Address {
	return ContractAddress(c.Owner, c.Nonce)
}

// ContractAddress returns the address of the contract created by the owner
// with a given nonce.
func ContractAddress(owner remit.Address, nonce uint64) remit.Address {
	data := make([]byte, len(owner)+8)
	copy(data, owner)
	binary.BigEndian.PutUint64(data[len(owner):], nonce)
	return remit.NewCondition("remit", "contract", data).Address()
}
