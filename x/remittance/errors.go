package remittance

import (
	"github.com/iov-one/remit/errors"
)

// remittance takes 1100-1120
var (
	// ErrPermissionDenied is returned when a deposit is requested by
	// anyone but the owner of the contract.
	ErrPermissionDenied = errors.Register(1100, "permission denied")

	// ErrInvalidRecipient is returned when a deposit names the null
	// identity or a malformed address as the recipient.
	ErrInvalidRecipient = errors.Register(1101, "invalid recipient")

	// ErrInvalidAmount is returned when a deposit carries no value.
	ErrInvalidAmount = errors.Register(1102, "invalid amount")

	// ErrWithdrawalDenied is returned for every withdrawal that cannot be
	// honored: unknown key, wrong secrets, wrong caller or an escrow that
	// was already paid out.
	ErrWithdrawalDenied = errors.Register(1103, "withdrawal denied")

	// ErrEscrowEmpty refines ErrWithdrawalDenied for an escrow that was
	// already paid out. Errors of this kind match both.
	ErrEscrowEmpty = errors.Register(1104, "escrow already empty")

	// ErrEscrowActive is returned when a deposit targets a key that still
	// holds value.
	ErrEscrowActive = errors.Register(1105, "escrow still active")

	// ErrInvalidKey is returned for an escrow key of a wrong size.
	ErrInvalidKey = errors.Register(1106, "invalid escrow key")
)

// errEscrowEmpty returns an error that is both ErrWithdrawalDenied and
// ErrEscrowEmpty.
func errEscrowEmpty(key EscrowKey) error {
	return errors.Wrapf(errors.Append(ErrWithdrawalDenied, ErrEscrowEmpty), "escrow %s", key)
}
