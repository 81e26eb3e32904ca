package remittance

import (
	"context"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/gconf"
	"github.com/iov-one/remit/orm"
	"github.com/iov-one/remit/x/cash"
)

// loadConf returns the configuration of the contract stored in db.
func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, pkg, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}

//---- deposit

// DepositHandler locks the value sent by the owner under a key.
type DepositHandler struct {
	bucket orm.ModelBucket
	bank   cash.Controller
	events eventLog
}

// NewDepositHandler returns a handler moving value with the given
// controller.
func NewDepositHandler(bank cash.Controller) DepositHandler {
	return DepositHandler{
		bucket: NewEscrowBucket(),
		bank:   bank,
		events: newEventLog(),
	}
}

// Deliver stores the escrow and moves the value from the owner to the
// contract account if all conditions are met.
func (h DepositHandler) Deliver(ctx context.Context, db remit.KVStore, msg *DepositMsg) ([]Event, error) {
	conf, caller, err := h.validate(ctx, db, msg)
	if err != nil {
		return nil, err
	}

	escrow := &Escrow{Amount: msg.Amount, Recipient: msg.Recipient}
	if err := h.bucket.Put(db, msg.Key, escrow); err != nil {
		return nil, errors.Wrap(err, "cannot save escrow")
	}
	if err := h.bank.MoveCoins(db, caller, conf.Address(), msg.Amount); err != nil {
		return nil, errors.Wrap(err, "cannot fund escrow")
	}

	event := DepositLogged{
		Sender:    caller,
		Amount:    msg.Amount,
		Key:       msg.Key,
		Recipient: msg.Recipient,
	}
	if err := h.events.Append(db, event); err != nil {
		return nil, err
	}
	return []Event{event}, nil
}

// validate checks, in order: the caller is the owner, the message is well
// formed and the key does not hold a live escrow.
func (h DepositHandler) validate(ctx context.Context, db remit.KVStore, msg *DepositMsg) (*Configuration, remit.Address, error) {
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}

	caller, ok := remit.GetCaller(ctx)
	if !ok || !caller.Equals(conf.Owner) {
		return nil, nil, errors.Wrap(ErrPermissionDenied, "only the owner can deposit")
	}

	if err := msg.Validate(); err != nil {
		return nil, nil, err
	}

	var prev Escrow
	switch err := h.bucket.One(db, msg.Key, &prev); {
	case errors.ErrNotFound.Is(err):
		// a fresh key
	case err != nil:
		return nil, nil, errors.Wrap(err, "cannot load escrow")
	case prev.IsActive():
		return nil, nil, errors.Wrapf(ErrEscrowActive, "escrow %s holds %d", msg.Key, prev.Amount)
	}
	return conf, caller, nil
}

//---- withdraw

// WithdrawHandler pays out the escrow of the caller.
type WithdrawHandler struct {
	bucket orm.ModelBucket
	bank   cash.Controller
	events eventLog
}

// NewWithdrawHandler returns a handler moving value with the given
// controller.
func NewWithdrawHandler(bank cash.Controller) WithdrawHandler {
	return WithdrawHandler{
		bucket: NewEscrowBucket(),
		bank:   bank,
		events: newEventLog(),
	}
}

// Deliver zeroes the escrow and only then pays the full amount to the
// caller.
func (h WithdrawHandler) Deliver(ctx context.Context, db remit.KVStore, msg *WithdrawMsg) ([]Event, error) {
	conf, caller, key, escrow, err := h.validate(ctx, db, msg)
	if err != nil {
		return nil, err
	}

	amount := escrow.Amount
	escrow.Amount = 0
	if err := h.bucket.Put(db, key, escrow); err != nil {
		return nil, errors.Wrap(err, "cannot save escrow")
	}
	if err := h.bank.MoveCoins(db, conf.Address(), caller, amount); err != nil {
		return nil, errors.Wrap(err, "cannot pay out escrow")
	}

	event := WithdrawalLogged{
		Sender: caller,
		Key:    key,
		Amount: amount,
	}
	if err := h.events.Append(db, event); err != nil {
		return nil, err
	}
	return []Event{event}, nil
}

// validate derives the key from the caller and the secrets and ensures the
// escrow under it can be paid out to the caller.
func (h WithdrawHandler) validate(ctx context.Context, db remit.KVStore, msg *WithdrawMsg) (*Configuration, remit.Address, EscrowKey, *Escrow, error) {
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	caller, ok := remit.GetCaller(ctx)
	if !ok || caller.IsZero() {
		return nil, nil, nil, nil, errors.Wrap(ErrWithdrawalDenied, "no caller")
	}

	key := GenerateHash(conf.Address(), caller, msg.SecretA, msg.SecretB)
	var escrow Escrow
	switch err := h.bucket.One(db, key, &escrow); {
	case errors.ErrNotFound.Is(err):
		return nil, nil, nil, nil, errors.Wrap(ErrWithdrawalDenied, "no escrow for the caller and secrets")
	case err != nil:
		return nil, nil, nil, nil, errors.Wrap(err, "cannot load escrow")
	}
	// The recipient is part of the key, a mismatch means a key collision
	// with an escrow of someone else.
	if !escrow.Recipient.Equals(caller) {
		return nil, nil, nil, nil, errors.Wrap(ErrWithdrawalDenied, "escrow belongs to another recipient")
	}
	if !escrow.IsActive() {
		return nil, nil, nil, nil, errEscrowEmpty(key)
	}
	return conf, caller, key, &escrow, nil
}
