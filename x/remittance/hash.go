package remittance

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"io"
	"strings"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	"golang.org/x/crypto/sha3"
)

// KeyLength is the size of an escrow key, the size of a Keccak-256 digest.
const KeyLength = 32

// hashDomain is the first chunk of every hashed message.
const hashDomain = "remittance"

// EscrowKey is the primary key of the escrow ledger.
type EscrowKey []byte

// GenerateHash derives the key an escrow for the recipient is stored under,
// bound to the contract instance. It is deterministic and pure:
//
//   keccak256("remittance" | contract | recipient | len(a) | a | len(b) | b)
//
// Lengths are 8 byte big endian, so that bytes cannot be shifted between the
// two secrets without changing the key.
func GenerateHash(contract, recipient remit.Address, secretA, secretB []byte) EscrowKey {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(hashDomain))
	h.Write(contract)
	h.Write(recipient)
	writeChunk(h, secretA)
	writeChunk(h, secretB)
	return h.Sum(nil)
}

func writeChunk(w io.Writer, chunk []byte) {
	var size [8]byte
	binary.BigEndian.PutUint64(size[:], uint64(len(chunk)))
	w.Write(size[:])
	w.Write(chunk)
}

// Validate returns an error if the key is not KeyLength long.
func (k EscrowKey) Validate() error {
	if len(k) == 0 {
		return errors.Wrap(ErrInvalidKey, "empty")
	}
	if len(k) != KeyLength {
		return errors.Wrapf(ErrInvalidKey, "want %d bytes, got %d", KeyLength, len(k))
	}
	return nil
}

// Equals checks if two keys are the same.
func (k EscrowKey) Equals(o EscrowKey) bool {
	return bytes.Equal(k, o)
}

// String returns the hex representation of the key.
func (k EscrowKey) String() string {
	return strings.ToUpper(hex.EncodeToString(k))
}

// MarshalJSON provides a hex representation for JSON,
// to override the standard base64 []byte encoding
func (k EscrowKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *EscrowKey) UnmarshalJSON(raw []byte) error {
	var enc string
	if err := json.Unmarshal(raw, &enc); err != nil {
		return errors.Wrap(errors.ErrInput, "cannot decode json")
	}
	key, err := ParseKey(enc)
	if err != nil {
		return err
	}
	*k = key
	return nil
}

// ParseKey decodes a hex encoded escrow key. An optional "0x" prefix is
// accepted.
func ParseKey(enc string) (EscrowKey, error) {
	enc = strings.TrimPrefix(strings.TrimPrefix(enc, "0x"), "0X")
	raw, err := hex.DecodeString(enc)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidKey, "cannot decode hex: %s", err)
	}
	key := EscrowKey(raw)
	if err := key.Validate(); err != nil {
		return nil, err
	}
	return key, nil
}

// Set implements flag.Value.
func (k *EscrowKey) Set(raw string) error {
	key, err := ParseKey(raw)
	if err != nil {
		return err
	}
	*k = key
	return nil
}
