package remittance

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
)

// DepositMsg locks Amount for Recipient under Key. The key must be computed
// with GenerateHash for this contract.
type DepositMsg struct {
	Key       EscrowKey     `json:"key"`
	Recipient remit.Address `json:"recipient"`
	Amount    uint64        `json:"amount"`
}

// Validate checks the message content, first failure wins: recipient, then
// amount, then key.
func (m *DepositMsg) Validate() error {
	if m.Recipient.IsZero() {
		return errors.Wrap(ErrInvalidRecipient, "null identity")
	}
	if err := m.Recipient.Validate(); err != nil {
		return errors.Wrapf(ErrInvalidRecipient, "%s", err)
	}
	if m.Amount == 0 {
		return errors.Wrap(ErrInvalidAmount, "must be greater than zero")
	}
	if err := m.Key.Validate(); err != nil {
		return errors.Wrap(err, "key")
	}
	return nil
}

// WithdrawMsg redeems the escrow locked for the caller with both secrets.
// Secrets have no size limit, any pair a key can be generated from redeems
// it.
type WithdrawMsg struct {
	SecretA []byte `json:"secret_a"`
	SecretB []byte `json:"secret_b"`
}
