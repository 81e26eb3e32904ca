package main

import (
	"bytes"
	"fmt"
	"os"
	"testing"

	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/remittest"
	"github.com/iov-one/remit/x/remittance"
	"github.com/stretchr/testify/require"
)

func TestEnv(t *testing.T) {
	const name = "REMITCLI_TEST_ENV"
	os.Unsetenv(name)
	require.Equal(t, "fallback", env(name, "fallback"))

	os.Setenv(name, "")
	defer os.Unsetenv(name)
	require.Equal(t, "", env(name, "fallback"))
}

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "error", "none"} {
		_, err := newLogger(level)
		require.NoError(t, err, level)
	}
	_, err := newLogger("loud")
	require.Error(t, err)
}

func TestWriteEvents(t *testing.T) {
	sender := remittest.RandomAddr(t)
	key := remittance.GenerateHash(remittest.RandomAddr(t), sender, nil, nil)

	var out bytes.Buffer
	events := []remittance.Event{
		remittance.WithdrawalLogged{Sender: sender, Key: key, Amount: 3},
	}
	require.NoError(t, writeEvents(&out, events))
	want := `{"type":"WithdrawalLogged","event":{"sender":"` + sender.String() + `","key":"` + key.String() + `","amount":3}}` + "\n"
	require.Equal(t, want, out.String())
}

func TestOpError(t *testing.T) {
	err := opError("withdraw", remittance.ErrWithdrawalDenied)
	require.Equal(t, "withdraw rejected (code 1103): withdrawal denied", err.Error())

	err = opError("deposit", fmt.Errorf("disk on fire"))
	require.Equal(t, "deposit rejected (code 1): internal error", err.Error())

	err = opError("withdraw", errors.Wrap(errors.ErrPanic, "nil map"))
	require.Equal(t, "withdraw rejected (code 1): internal error", err.Error())
}
