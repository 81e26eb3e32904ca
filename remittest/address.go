/*
Package remittest provides helpers for testing code built on top of the
remit packages: random identities, sequence IDs and ready to use stores.
*/
package remittest

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"testing"

	"github.com/iov-one/remit"
)

// RandomAddr returns a valid random address generated on the fly.
func RandomAddr(t testing.TB) remit.Address {
	t.Helper()
	raw := make([]byte, remit.AddressLength)
	if _, err := rand.Read(raw); err != nil {
		t.Fatalf("cannot generate a random address: %s", err)
	}
	a := remit.Address(raw)
	if err := a.Validate(); err != nil {
		t.Fatalf("generated address is not a valid address: %s", err)
	}
	return a
}

// DecodeAddr takes a hex encoded address string and returns it's raw
// representation. This function ensures that returned value is a valid
// address.
func DecodeAddr(t testing.TB, encoded string) remit.Address {
	t.Helper()
	raw, err := hex.DecodeString(encoded)
	if err != nil {
		t.Fatalf("cannot decode hex string: %s", err)
	}
	a := remit.Address(raw)
	if err := a.Validate(); err != nil {
		t.Fatalf("decoded string is not a valid address: %s", err)
	}
	return a
}

// ParseAddress takes an address in a human readable format and returns its
// binary representation, failing the test on error.
func ParseAddress(t testing.TB, encodedAddress string) remit.Address {
	t.Helper()

	addr, err := remit.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}

// SequenceID returns an encoded sequence value as used by the orm sequences.
func SequenceID(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}
