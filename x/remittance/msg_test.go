package remittance

import (
	"testing"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/remittest"
)

func TestDepositMsgValidate(t *testing.T) {
	recipient := remittest.RandomAddr(t)
	key := GenerateHash(remittest.RandomAddr(t), recipient, []byte("a"), []byte("b"))

	cases := map[string]struct {
		msg     DepositMsg
		wantErr *errors.Error
	}{
		"valid": {
			msg:     DepositMsg{Key: key, Recipient: recipient, Amount: 1},
			wantErr: nil,
		},
		"nil recipient": {
			msg:     DepositMsg{Key: key, Recipient: nil, Amount: 1},
			wantErr: ErrInvalidRecipient,
		},
		"zero recipient": {
			msg:     DepositMsg{Key: key, Recipient: make(remit.Address, remit.AddressLength), Amount: 1},
			wantErr: ErrInvalidRecipient,
		},
		"malformed recipient": {
			msg:     DepositMsg{Key: key, Recipient: remit.Address("short"), Amount: 1},
			wantErr: ErrInvalidRecipient,
		},
		"zero amount": {
			msg:     DepositMsg{Key: key, Recipient: recipient, Amount: 0},
			wantErr: ErrInvalidAmount,
		},
		"recipient is checked before amount": {
			msg:     DepositMsg{Key: key, Recipient: nil, Amount: 0},
			wantErr: ErrInvalidRecipient,
		},
		"missing key": {
			msg:     DepositMsg{Key: nil, Recipient: recipient, Amount: 1},
			wantErr: ErrInvalidKey,
		},
		"amount is checked before key": {
			msg:     DepositMsg{Key: EscrowKey("short"), Recipient: recipient, Amount: 0},
			wantErr: ErrInvalidAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected validation error: %+v", err)
			}
		})
	}
}
