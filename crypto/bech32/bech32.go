// Package bech32 converts binary payloads, most notably account addresses,
// to and from their human readable bech32 representation.
package bech32

import (
	"github.com/btcsuite/btcutil/bech32"
	"github.com/iov-one/remit/errors"
)

// HRP is the human readable part used for all remit addresses.
const HRP = "remit"

// Decode converts given bech32 encoded representation into raw payload and a
// human readable part.
func Decode(raw string) (string, []byte, error) {
	hrp, payload, err := bech32.Decode(raw)
	if err != nil {
		return "", nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	payload, err = bech32.ConvertBits(payload, 5, 8, false)
	if err != nil {
		return "", nil, errors.Wrapf(errors.ErrInput, "convert bits: %s", err)
	}
	return hrp, payload, nil
}

// Encode converts given bytes into bech32 encoded representation.
func Encode(hrp string, payload []byte) (string, error) {
	payload, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInput, "convert bits: %s", err)
	}
	raw, err := bech32.Encode(hrp, payload)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInput, "bech32 encode: %s", err)
	}
	return raw, nil
}

// DecodeHRP works like Decode but fails unless the human readable part is
// the expected one.
func DecodeHRP(raw, wantHRP string) ([]byte, error) {
	hrp, payload, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	if hrp != wantHRP {
		return nil, errors.Wrapf(errors.ErrInput, "want %q prefix, got %q", wantHRP, hrp)
	}
	return payload, nil
}
